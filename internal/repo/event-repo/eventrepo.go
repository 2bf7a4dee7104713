package eventrepo

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/alphapoints/platform/internal/domain"
	"github.com/alphapoints/platform/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// Insert appends one audit-trail row. It runs on whatever transaction is
// bound to ctx, so the event commits or rolls back with the mutation itself.
func (r *Repository) Insert(ctx context.Context, event *domain.LedgerEvent) error {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	query := `
		INSERT INTO ledger_events (id, operation, entity_id, amount, available_after, locked_after, actor, reference)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.Exec(ctx, query,
		event.ID, event.Operation, event.EntityID, event.Amount,
		event.AvailableAfter, event.LockedAfter, event.Actor, event.Reference,
	)
	if err != nil {
		zap.L().Error("failed to insert ledger event", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) List(ctx context.Context, limit, offset int) ([]domain.LedgerEvent, error) {
	query := `
        SELECT id, operation, entity_id, amount, available_after, locked_after, actor, reference, created_at
        FROM ledger_events
        ORDER BY created_at DESC
        LIMIT $1 OFFSET $2
    `
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		zap.L().Error("failed to list ledger events", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var events []domain.LedgerEvent
	for rows.Next() {
		var ev domain.LedgerEvent
		err := rows.Scan(&ev.ID, &ev.Operation, &ev.EntityID, &ev.Amount, &ev.AvailableAfter, &ev.LockedAfter, &ev.Actor, &ev.Reference, &ev.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan ledger event", zap.Error(err))
			return nil, err
		}
		events = append(events, ev)
	}

	return events, nil
}
