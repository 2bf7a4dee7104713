package caprepo

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

// ErrRootKindExists is returned when a second Admin or Govern capability
// would violate the partial unique index on root kinds.
var ErrRootKindExists = errors.New("root capability already exists")

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, cap *domain.Capability) error {
	query := `
		INSERT INTO capabilities (id, kind, holder, secret_hash)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.db.Exec(ctx, query, cap.ID, cap.Kind, cap.Holder, cap.SecretHash)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrRootKindExists
		}
		zap.L().Error("failed to create capability", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.Capability, error) {
	query := `
        SELECT id, kind, holder, secret_hash, created_at
        FROM capabilities
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)
	var cap domain.Capability
	err := row.Scan(&cap.ID, &cap.Kind, &cap.Holder, &cap.SecretHash, &cap.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to find capability", zap.Error(err))
		return nil, err
	}
	return &cap, nil
}

func (r *Repository) UpdateHolder(ctx context.Context, id string, holder string) error {
	query := `
		UPDATE capabilities
		SET holder = $1
		WHERE id = $2
	`
	_, err := r.db.Exec(ctx, query, holder, id)
	if err != nil {
		zap.L().Error("failed to update capability holder", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id string) (bool, error) {
	query := `
		DELETE FROM capabilities
		WHERE id = $1
	`
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("failed to delete capability", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
