package eventrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/alphapoints/platform/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_Insert(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("Event row inserted", func(t *testing.T) {
		event := &domain.LedgerEvent{
			ID:             "evt-1",
			Operation:      domain.EventEarn,
			EntityID:       "acct-1",
			Amount:         100,
			AvailableAfter: 100,
			Actor:          "partner-svc",
			Reference:      "stake-1",
		}
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO ledger_events (id, operation, entity_id, amount, available_after, locked_after, actor, reference)`)).
			WithArgs("evt-1", domain.EventEarn, "acct-1", uint64(100), uint64(100), uint64(0), "partner-svc", "stake-1").
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		err := repo.Insert(context.Background(), event)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Missing id is generated", func(t *testing.T) {
		event := &domain.LedgerEvent{Operation: domain.EventSpend, EntityID: "acct-1"}
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO ledger_events (id, operation, entity_id, amount, available_after, locked_after, actor, reference)`)).
			WithArgs(pgxmock.AnyArg(), domain.EventSpend, "acct-1", uint64(0), uint64(0), uint64(0), "", "").
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		err := repo.Insert(context.Background(), event)
		assert.NoError(t, err)
		assert.NotEmpty(t, event.ID)
	})

	t.Run("Database error", func(t *testing.T) {
		event := &domain.LedgerEvent{ID: "evt-2", Operation: domain.EventSpend}
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO ledger_events (id, operation, entity_id, amount, available_after, locked_after, actor, reference)`)).
			WithArgs("evt-2", domain.EventSpend, "", uint64(0), uint64(0), uint64(0), "", "").
			WillReturnError(errors.New("database error"))

		err := repo.Insert(context.Background(), event)
		assert.Error(t, err)
	})
}

func TestRepository_List(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Now()

	t.Run("Newest events first", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id", "operation", "entity_id", "amount", "available_after", "locked_after", "actor", "reference", "created_at"}).
			AddRow("evt-2", domain.EventSpend, "acct-1", uint64(40), uint64(60), uint64(0), "partner-svc", "", createdAt).
			AddRow("evt-1", domain.EventEarn, "acct-1", uint64(100), uint64(100), uint64(0), "partner-svc", "stake-1", createdAt.Add(-time.Minute))
		mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY created_at DESC`)).
			WithArgs(10, 0).
			WillReturnRows(rows)

		events, err := repo.List(context.Background(), 10, 0)
		assert.NoError(t, err)
		assert.Len(t, events, 2)
		assert.Equal(t, "evt-2", events[0].ID)
		assert.Equal(t, domain.EventEarn, events[1].Operation)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY created_at DESC`)).
			WithArgs(10, 0).
			WillReturnError(errors.New("database error"))

		events, err := repo.List(context.Background(), 10, 0)
		assert.Error(t, err)
		assert.Nil(t, events)
	})
}
