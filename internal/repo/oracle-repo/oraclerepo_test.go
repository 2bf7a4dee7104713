package oraclerepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

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

func TestRepository_CreateOracle(t *testing.T) {
	repo, mock := NewMock(t)
	oracle := &domain.Oracle{ID: 1, Rate: "100", Decimals: 2, StalenessThreshold: 300}

	t.Run("Oracle row created", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO oracles (id, rate, decimals, last_update_time, staleness_threshold)`)).
			WithArgs("100", uint8(2), uint64(0), uint64(300)).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		err := repo.CreateOracle(context.Background(), oracle)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Second row maps to the sentinel", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO oracles (id, rate, decimals, last_update_time, staleness_threshold)`)).
			WithArgs("100", uint8(2), uint64(0), uint64(300)).
			WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

		err := repo.CreateOracle(context.Background(), oracle)
		assert.ErrorIs(t, err, ErrDuplicateOracle)
	})
}

func TestRepository_FindOracle(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("Rate round-trips as text", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id", "rate", "decimals", "last_update_time", "staleness_threshold"}).
			AddRow(1, "340282366920938463463374607431768211455", uint8(18), uint64(5), uint64(300))
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, rate::text, decimals, last_update_time, staleness_threshold`)).
			WillReturnRows(rows)

		oracle, err := repo.FindOracle(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, "340282366920938463463374607431768211455", oracle.Rate)
		assert.Equal(t, uint64(5), oracle.LastUpdateTime)
	})

	t.Run("Missing oracle returns nil", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, rate::text, decimals, last_update_time, staleness_threshold`)).
			WillReturnError(pgx.ErrNoRows)

		oracle, err := repo.FindOracle(context.Background())
		assert.NoError(t, err)
		assert.Nil(t, oracle)
	})
}

func TestRepository_UpdateRate(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("Rate and timestamp updated together", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`SET rate = $1, last_update_time = $2`)).
			WithArgs("200", uint64(5)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.UpdateRate(context.Background(), "200", 5)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`SET rate = $1, last_update_time = $2`)).
			WithArgs("200", uint64(5)).
			WillReturnError(errors.New("database error"))

		err := repo.UpdateRate(context.Background(), "200", 5)
		assert.Error(t, err)
	})
}

func TestRepository_UpdateThreshold(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`SET staleness_threshold = $1`)).
		WithArgs(uint64(600)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.UpdateThreshold(context.Background(), 600)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
