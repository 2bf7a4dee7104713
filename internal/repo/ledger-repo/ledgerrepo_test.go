package ledgerrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/alphapoints/platform/internal/domain"
	"github.com/alphapoints/platform/internal/pg"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()
	defer ctrl.Finish()

	return repo, mockDB, mockTxManager
}

func TestRepository_FindBalance(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		accountID string
		mockSetup func()
		expectErr bool
		result    *domain.Balance
	}{
		{
			name:      "Existing account returns balance",
			accountID: "acc-1",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "account_id", "available", "locked", "created_at"}).
					AddRow(1, "acc-1", uint64(1000), uint64(200), now)
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, account_id, available, locked, created_at`)).
					WithArgs("acc-1").
					WillReturnRows(rows)
			},
			result: &domain.Balance{ID: 1, AccountID: "acc-1", Available: 1000, Locked: 200, CreatedAt: now},
		},
		{
			name:      "Unknown account returns nil",
			accountID: "acc-missing",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, account_id, available, locked, created_at`)).
					WithArgs("acc-missing").
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name:      "Database error",
			accountID: "acc-1",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, account_id, available, locked, created_at`)).
					WithArgs("acc-1").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			balance, err := repo.FindBalance(context.Background(), tt.accountID)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, balance)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_CreateBalance(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()

	t.Run("New balance starts at zero", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id", "account_id", "available", "locked", "created_at"}).
			AddRow(7, "acc-new", uint64(0), uint64(0), now)
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO balances (account_id, available, locked)`)).
			WithArgs("acc-new").
			WillReturnRows(rows)

		balance, err := repo.CreateBalance(context.Background(), "acc-new")
		assert.NoError(t, err)
		assert.Equal(t, "acc-new", balance.AccountID)
		assert.Equal(t, uint64(0), balance.Available)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_SaveBalance(t *testing.T) {
	repo, mock, _ := NewMock(t)

	t.Run("Balance persisted", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`SET available = $1, locked = $2`)).
			WithArgs(uint64(500), uint64(100), "acc-1").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.SaveBalance(context.Background(), &domain.Balance{AccountID: "acc-1", Available: 500, Locked: 100})
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`SET available = $1, locked = $2`)).
			WithArgs(uint64(500), uint64(100), "acc-1").
			WillReturnError(errors.New("database error"))

		err := repo.SaveBalance(context.Background(), &domain.Balance{AccountID: "acc-1", Available: 500, Locked: 100})
		assert.Error(t, err)
	})
}

func TestRepository_Supply(t *testing.T) {
	repo, mock, _ := NewMock(t)

	t.Run("Supply read", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"total"}).AddRow(uint64(123456))
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT total FROM supply WHERE id = 1`)).
			WillReturnRows(rows)

		supply, err := repo.Supply(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, uint64(123456), supply)
	})

	t.Run("Supply persisted", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`SET total = $1`)).
			WithArgs(uint64(999)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.SaveSupply(context.Background(), 999)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
