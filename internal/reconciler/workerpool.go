package reconciler

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

type SettlementPoolI interface {
	Submit(ctx context.Context, task SettlementTask) error
	Close()
}

type SettlementTask func() error

// SettlementPool bounds how many ticket settlements run against the vault at
// once. The queue is sized to the worker count, so a slow custody backend
// applies backpressure to the poll loop instead of letting work pile up.
type SettlementPool struct {
	tasks chan SettlementTask
	wg    sync.WaitGroup
	once  sync.Once
}

func NewSettlementPool(workers int) *SettlementPool {
	p := &SettlementPool{tasks: make(chan SettlementTask, workers)}
	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go p.worker()
	}
	return p
}

func (p *SettlementPool) worker() {
	defer p.wg.Done()
	for task := range p.tasks {
		if err := task(); err != nil {
			zap.L().Error("Ticket settlement failed", zap.Error(err))
		}
	}
}

func (p *SettlementPool) Submit(ctx context.Context, task SettlementTask) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case p.tasks <- task:
		return nil
	}
}

// Close stops intake and waits for in-flight settlements to drain.
func (p *SettlementPool) Close() {
	p.once.Do(func() {
		close(p.tasks)
	})
	p.wg.Wait()
}
