package escrowrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/alphapoints/platform/internal/domain"
	"github.com/alphapoints/platform/internal/pg"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()
	defer ctrl.Finish()

	return repo, mockDB
}

func TestRepository_CreateVault(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Now()

	t.Run("Vault created with zero balance", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id", "asset_type", "balance", "created_at"}).
			AddRow(1, "STAKED_SOL", uint64(0), createdAt)
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO vaults (asset_type, balance)`)).
			WithArgs("STAKED_SOL").
			WillReturnRows(rows)

		vault, err := repo.CreateVault(context.Background(), "STAKED_SOL")
		assert.NoError(t, err)
		assert.Equal(t, "STAKED_SOL", vault.AssetType)
		assert.Equal(t, uint64(0), vault.Balance)
	})

	t.Run("Duplicate asset type maps to the sentinel", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO vaults (asset_type, balance)`)).
			WithArgs("STAKED_SOL").
			WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

		vault, err := repo.CreateVault(context.Background(), "STAKED_SOL")
		assert.ErrorIs(t, err, ErrDuplicateAssetType)
		assert.Nil(t, vault)
	})
}

func TestRepository_FindVault(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Now()

	t.Run("Vault found", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id", "asset_type", "balance", "created_at"}).
			AddRow(1, "STAKED_SOL", uint64(1000), createdAt)
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, asset_type, balance, created_at`)).
			WithArgs("STAKED_SOL").
			WillReturnRows(rows)

		vault, err := repo.FindVault(context.Background(), "STAKED_SOL")
		assert.NoError(t, err)
		assert.Equal(t, uint64(1000), vault.Balance)
	})

	t.Run("Unknown asset type returns nil", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, asset_type, balance, created_at`)).
			WithArgs("UNKNOWN").
			WillReturnError(pgx.ErrNoRows)

		vault, err := repo.FindVault(context.Background(), "UNKNOWN")
		assert.NoError(t, err)
		assert.Nil(t, vault)
	})
}

func TestRepository_FindVaultForUpdate(t *testing.T) {
	repo, mock := NewMock(t)

	rows := pgxmock.NewRows([]string{"id", "asset_type", "balance", "created_at"}).
		AddRow(1, "STAKED_SOL", uint64(500), time.Now())
	mock.ExpectQuery(regexp.QuoteMeta(`FOR UPDATE`)).
		WithArgs("STAKED_SOL").
		WillReturnRows(rows)

	vault, err := repo.FindVaultForUpdate(context.Background(), "STAKED_SOL")
	assert.NoError(t, err)
	assert.Equal(t, uint64(500), vault.Balance)
}

func TestRepository_SaveVault(t *testing.T) {
	repo, mock := NewMock(t)
	vault := &domain.Vault{ID: 1, AssetType: "STAKED_SOL", Balance: 1500}

	t.Run("Balance persisted", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`SET balance = $1`)).
			WithArgs(uint64(1500), "STAKED_SOL").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.SaveVault(context.Background(), vault)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`SET balance = $1`)).
			WithArgs(uint64(1500), "STAKED_SOL").
			WillReturnError(errors.New("database error"))

		err := repo.SaveVault(context.Background(), vault)
		assert.Error(t, err)
	})
}
