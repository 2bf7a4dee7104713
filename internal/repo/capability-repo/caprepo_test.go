package caprepo

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

	"github.com/alphapoints/platform/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	cap := &domain.Capability{
		ID:         "cap-1",
		Kind:       domain.CapabilityPartner,
		Holder:     "partner-svc",
		SecretHash: "hashed-secret",
	}

	t.Run("Capability row created", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO capabilities (id, kind, holder, secret_hash)`)).
			WithArgs("cap-1", domain.CapabilityPartner, "partner-svc", "hashed-secret").
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		err := repo.Create(context.Background(), cap)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Root kind collision maps to the sentinel", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO capabilities (id, kind, holder, secret_hash)`)).
			WithArgs("cap-1", domain.CapabilityPartner, "partner-svc", "hashed-secret").
			WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

		err := repo.Create(context.Background(), cap)
		assert.ErrorIs(t, err, ErrRootKindExists)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO capabilities (id, kind, holder, secret_hash)`)).
			WithArgs("cap-1", domain.CapabilityPartner, "partner-svc", "hashed-secret").
			WillReturnError(errors.New("database error"))

		err := repo.Create(context.Background(), cap)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrRootKindExists)
	})
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Now()

	t.Run("Capability found", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id", "kind", "holder", "secret_hash", "created_at"}).
			AddRow("cap-1", domain.CapabilityGovern, "governance", "hashed-secret", createdAt)
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, kind, holder, secret_hash, created_at`)).
			WithArgs("cap-1").
			WillReturnRows(rows)

		cap, err := repo.FindByID(context.Background(), "cap-1")
		assert.NoError(t, err)
		assert.Equal(t, domain.CapabilityGovern, cap.Kind)
		assert.Equal(t, "governance", cap.Holder)
	})

	t.Run("Unknown id returns nil without error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, kind, holder, secret_hash, created_at`)).
			WithArgs("cap-gone").
			WillReturnError(pgx.ErrNoRows)

		cap, err := repo.FindByID(context.Background(), "cap-gone")
		assert.NoError(t, err)
		assert.Nil(t, cap)
	})
}

func TestRepository_UpdateHolder(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`SET holder = $1`)).
		WithArgs("new-partner", "cap-1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.UpdateHolder(context.Background(), "cap-1", "new-partner")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Delete(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("Existing row deleted", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM capabilities`)).
			WithArgs("cap-1").
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		deleted, err := repo.Delete(context.Background(), "cap-1")
		assert.NoError(t, err)
		assert.True(t, deleted)
	})

	t.Run("Nothing to delete", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM capabilities`)).
			WithArgs("cap-gone").
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		deleted, err := repo.Delete(context.Background(), "cap-gone")
		assert.NoError(t, err)
		assert.False(t, deleted)
	})
}
