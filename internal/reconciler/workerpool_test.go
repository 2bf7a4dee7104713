package reconciler

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettlementPool(t *testing.T) {
	tests := []struct {
		name           string
		numTasks       int
		numWorkers     int
		expectedErrors int
	}{
		{
			name:           "settlements drain through the pool",
			numTasks:       5,
			numWorkers:     2,
			expectedErrors: 0,
		},
		{
			name:           "failing settlement does not stall the pool",
			numTasks:       2,
			numWorkers:     2,
			expectedErrors: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := NewSettlementPool(tt.numWorkers)

			var mu sync.Mutex
			var executed int
			var errorCount int

			for i := 0; i < tt.numTasks; i++ {
				task := func(i int) SettlementTask {
					return func() error {
						if i == tt.numTasks-1 && tt.expectedErrors > 0 {
							mu.Lock()
							errorCount++
							mu.Unlock()
							return assert.AnError
						}
						mu.Lock()
						executed++
						mu.Unlock()
						return nil
					}
				}(i)

				err := pool.Submit(context.Background(), task)
				require.NoError(t, err, "failed to submit settlement")
			}

			pool.Close()

			assert.Equal(t, tt.numTasks-tt.expectedErrors, executed, "number of executed settlements does not match")
			assert.Equal(t, tt.expectedErrors, errorCount, "number of errors does not match")
		})
	}
}

func TestSettlementPool_SubmitAfterCancel(t *testing.T) {
	pool := NewSettlementPool(1)
	defer pool.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := pool.Submit(ctx, func() error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
}
