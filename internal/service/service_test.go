package service

import (
	"testing"

	"github.com/alphapoints/platform/internal/pg"
	"github.com/alphapoints/platform/internal/repo"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mockDB.Close()
	mockTxManager := pg.NewMockTXManager(ctrl)

	repos := repo.New(mockDB, mockTxManager)
	services := New(repos, mockTxManager)

	assert.NotNil(t, services.LedgerService)
	assert.NotNil(t, services.EventService)
	assert.NotNil(t, services.EscrowService)
	assert.NotNil(t, services.OracleService)
	assert.NotNil(t, services.WithdrawalService)
	assert.NotNil(t, services.CapService)
}
