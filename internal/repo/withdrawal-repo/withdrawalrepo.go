package withdrawalrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/alphapoints/platform/internal/domain"
	"github.com/alphapoints/platform/internal/pg"
)

var ErrDuplicateStakeID = errors.New("pending withdrawal already exists for stake")

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Insert(ctx context.Context, ticket *domain.WithdrawalTicket) (*domain.WithdrawalTicket, error) {
	query := `
		INSERT INTO pending_withdrawals (stake_id, account_id, asset_type, expected_amount, matures_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, ticket.StakeID, ticket.AccountID, ticket.AssetType, ticket.ExpectedAmount, ticket.MaturesAt).
		Scan(&ticket.ID, &ticket.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, ErrDuplicateStakeID
		}
		zap.L().Error("failed to insert pending withdrawal", zap.Error(err))
		return nil, err
	}
	return ticket, nil
}

func (r *Repository) FindByStakeID(ctx context.Context, stakeID string) (*domain.WithdrawalTicket, error) {
	query := `
        SELECT id, stake_id, account_id, asset_type, expected_amount, matures_at, created_at
        FROM pending_withdrawals
        WHERE stake_id = $1
    `
	row := r.db.QueryRow(ctx, query, stakeID)
	var ticket domain.WithdrawalTicket
	err := row.Scan(&ticket.ID, &ticket.StakeID, &ticket.AccountID, &ticket.AssetType, &ticket.ExpectedAmount, &ticket.MaturesAt, &ticket.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to find pending withdrawal", zap.Error(err))
		return nil, err
	}
	return &ticket, nil
}

// FindMatured returns tickets whose cooldown has elapsed; consumed by the
// reconciliation worker, not by the tracker API.
func (r *Repository) FindMatured(ctx context.Context, now time.Time, limit uint32) ([]domain.WithdrawalTicket, error) {
	query := `
        SELECT id, stake_id, account_id, asset_type, expected_amount, matures_at, created_at
        FROM pending_withdrawals
        WHERE matures_at <= $1
        ORDER BY matures_at
        LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, now, limit)
	if err != nil {
		zap.L().Error("failed to fetch matured withdrawals", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var tickets []domain.WithdrawalTicket
	for rows.Next() {
		var ticket domain.WithdrawalTicket
		err := rows.Scan(&ticket.ID, &ticket.StakeID, &ticket.AccountID, &ticket.AssetType, &ticket.ExpectedAmount, &ticket.MaturesAt, &ticket.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan pending withdrawal row", zap.Error(err))
			return nil, err
		}
		tickets = append(tickets, ticket)
	}

	return tickets, nil
}

// Delete removes a settled ticket; reconciler-only.
func (r *Repository) Delete(ctx context.Context, stakeID string) error {
	query := `
		DELETE FROM pending_withdrawals
		WHERE stake_id = $1
	`
	_, err := r.db.Exec(ctx, query, stakeID)
	if err != nil {
		zap.L().Error("failed to delete pending withdrawal", zap.Error(err))
		return err
	}
	return nil
}
