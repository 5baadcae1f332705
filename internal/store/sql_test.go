package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrodesk/agrodesk/internal/logger"
)

func newTestSQLStore(t *testing.T) (*sqlStore, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	s := &sqlStore{
		db:                db,
		builder:           sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		isUniqueViolation: postgresUniqueViolation,
		logger:            logger.Nop(),
	}
	return s, mock, db
}

func TestSQLStore_Get_MissingKey(t *testing.T) {
	s, mock, db := newTestSQLStore(t)
	defer db.Close()

	mock.ExpectQuery("SELECT payload, version FROM collections").
		WithArgs("clients").
		WillReturnError(sql.ErrNoRows)

	col, err := s.Get(context.Background(), "clients")
	require.NoError(t, err)
	assert.Zero(t, col.Version)
	assert.Empty(t, col.Records)
}

func TestSQLStore_Get_ReturnsStoredRow(t *testing.T) {
	s, mock, db := newTestSQLStore(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"payload", "version"}).
		AddRow([]byte(`[{"id":"client-1"}]`), int64(3))
	mock.ExpectQuery("SELECT payload, version FROM collections").
		WithArgs("clients").
		WillReturnRows(rows)

	col, err := s.Get(context.Background(), "clients")
	require.NoError(t, err)
	assert.Equal(t, int64(3), col.Version)
	assert.JSONEq(t, `[{"id":"client-1"}]`, string(col.Records))
}

func TestSQLStore_Put_FirstWriteInserts(t *testing.T) {
	s, mock, db := newTestSQLStore(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO collections").
		WithArgs("clients", []byte(`[]`), 1).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := s.Put(context.Background(), "clients", Collection{Records: json.RawMessage(`[]`), Version: 0})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLStore_Put_InsertRaceReportsConflict(t *testing.T) {
	s, mock, db := newTestSQLStore(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO collections").
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

	err := s.Put(context.Background(), "clients", Collection{Records: json.RawMessage(`[]`), Version: 0})
	assert.ErrorIs(t, err, ErrVersionConflict)
}

func TestSQLStore_Put_UpdateBumpsVersion(t *testing.T) {
	s, mock, db := newTestSQLStore(t)
	defer db.Close()

	mock.ExpectExec("UPDATE collections SET").
		WithArgs([]byte(`["x"]`), int64(3), "clients", int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := s.Put(context.Background(), "clients", Collection{Records: json.RawMessage(`["x"]`), Version: 2})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLStore_Put_StaleVersionReportsConflict(t *testing.T) {
	s, mock, db := newTestSQLStore(t)
	defer db.Close()

	mock.ExpectExec("UPDATE collections SET").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := s.Put(context.Background(), "clients", Collection{Records: json.RawMessage(`["x"]`), Version: 7})
	assert.ErrorIs(t, err, ErrVersionConflict)
}

func TestSQLStore_Put_ExecErrorWrapped(t *testing.T) {
	s, mock, db := newTestSQLStore(t)
	defer db.Close()

	mock.ExpectExec("UPDATE collections SET").
		WillReturnError(errors.New("connection reset"))

	err := s.Put(context.Background(), "clients", Collection{Records: json.RawMessage(`[]`), Version: 1})
	assert.ErrorIs(t, err, ErrExecutingQuery)
}
