package ledgerrepo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/alphapoints/platform/internal/domain"
	"github.com/alphapoints/platform/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func (r *Repository) FindBalance(ctx context.Context, accountID string) (*domain.Balance, error) {
	query := `
        SELECT id, account_id, available, locked, created_at
        FROM balances
        WHERE account_id = $1
    `
	return r.scanBalance(r.db.QueryRow(ctx, query, accountID))
}

// FindBalanceForUpdate locks the balance row for the rest of the enclosing
// transaction, serializing concurrent mutations per account.
func (r *Repository) FindBalanceForUpdate(ctx context.Context, accountID string) (*domain.Balance, error) {
	query := `
        SELECT id, account_id, available, locked, created_at
        FROM balances
        WHERE account_id = $1
        FOR UPDATE
    `
	return r.scanBalance(r.db.QueryRow(ctx, query, accountID))
}

func (r *Repository) CreateBalance(ctx context.Context, accountID string) (*domain.Balance, error) {
	query := `
        INSERT INTO balances (account_id, available, locked)
        VALUES ($1, 0, 0)
        RETURNING id, account_id, available, locked, created_at
    `
	row := r.db.QueryRow(ctx, query, accountID)
	var balance domain.Balance
	err := row.Scan(&balance.ID, &balance.AccountID, &balance.Available, &balance.Locked, &balance.CreatedAt)
	if err != nil {
		zap.L().Error("failed to create balance", zap.Error(err))
		return nil, err
	}
	return &balance, nil
}

func (r *Repository) SaveBalance(ctx context.Context, balance *domain.Balance) error {
	query := `
		UPDATE balances
		SET available = $1, locked = $2
		WHERE account_id = $3
	`
	_, err := r.db.Exec(ctx, query, balance.Available, balance.Locked, balance.AccountID)
	if err != nil {
		zap.L().Error("failed to save balance", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Supply(ctx context.Context) (uint64, error) {
	return r.scanSupply(r.db.QueryRow(ctx, `SELECT total FROM supply WHERE id = 1`))
}

func (r *Repository) SupplyForUpdate(ctx context.Context) (uint64, error) {
	return r.scanSupply(r.db.QueryRow(ctx, `SELECT total FROM supply WHERE id = 1 FOR UPDATE`))
}

func (r *Repository) SaveSupply(ctx context.Context, total uint64) error {
	query := `
		UPDATE supply
		SET total = $1
		WHERE id = 1
	`
	_, err := r.db.Exec(ctx, query, total)
	if err != nil {
		zap.L().Error("failed to save supply", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) scanBalance(row pgx.Row) (*domain.Balance, error) {
	var balance domain.Balance
	err := row.Scan(&balance.ID, &balance.AccountID, &balance.Available, &balance.Locked, &balance.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to scan balance", zap.Error(err))
		return nil, err
	}
	return &balance, nil
}

func (r *Repository) scanSupply(row pgx.Row) (uint64, error) {
	var total uint64
	if err := row.Scan(&total); err != nil {
		zap.L().Error("failed to scan supply", zap.Error(err))
		return 0, err
	}
	return total, nil
}
