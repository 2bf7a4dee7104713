package oraclerepo

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/alphapoints/platform/internal/domain"
	"github.com/alphapoints/platform/internal/pg"
)

var ErrDuplicateOracle = errors.New("oracle row already exists")

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) CreateOracle(ctx context.Context, oracle *domain.Oracle) error {
	query := `
		INSERT INTO oracles (id, rate, decimals, last_update_time, staleness_threshold)
		VALUES (1, $1, $2, $3, $4)
	`
	_, err := r.db.Exec(ctx, query, oracle.Rate, oracle.Decimals, oracle.LastUpdateTime, oracle.StalenessThreshold)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrDuplicateOracle
		}
		zap.L().Error("failed to create oracle", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindOracle(ctx context.Context) (*domain.Oracle, error) {
	query := `
        SELECT id, rate::text, decimals, last_update_time, staleness_threshold
        FROM oracles
        WHERE id = 1
    `
	row := r.db.QueryRow(ctx, query)
	var oracle domain.Oracle
	err := row.Scan(&oracle.ID, &oracle.Rate, &oracle.Decimals, &oracle.LastUpdateTime, &oracle.StalenessThreshold)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to scan oracle", zap.Error(err))
		return nil, err
	}
	return &oracle, nil
}

func (r *Repository) UpdateRate(ctx context.Context, rate string, lastUpdateTime uint64) error {
	query := `
		UPDATE oracles
		SET rate = $1, last_update_time = $2
		WHERE id = 1
	`
	_, err := r.db.Exec(ctx, query, rate, lastUpdateTime)
	if err != nil {
		zap.L().Error("failed to update oracle rate", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) UpdateThreshold(ctx context.Context, threshold uint64) error {
	query := `
		UPDATE oracles
		SET staleness_threshold = $1
		WHERE id = 1
	`
	_, err := r.db.Exec(ctx, query, threshold)
	if err != nil {
		zap.L().Error("failed to update staleness threshold", zap.Error(err))
		return err
	}
	return nil
}
