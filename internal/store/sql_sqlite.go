package store

import (
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/mattn/go-sqlite3"

	"github.com/agrodesk/agrodesk/internal/logger"
	"github.com/agrodesk/agrodesk/migrations"
)

// NewSQLiteStore opens (or creates) a SQLite database at path, runs pending
// migrations, and returns a [CollectionStore] backed by the collections
// table. Intended for single-host deployments without a PostgreSQL server.
func NewSQLiteStore(path string, log *logger.Logger) (CollectionStore, error) {
	if path == "" {
		path = ":memory:"
	}

	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		log.Err(err).Str("func", "NewSQLiteStore").Msg("error opening sqlite database")
		return nil, fmt.Errorf("error opening sqlite database: %w", err)
	}

	// sqlite handles one writer at a time
	conn.SetMaxOpenConns(1)

	if err := migrations.Migrate(conn, migrations.DialectSQLite); err != nil {
		return nil, err
	}

	return &sqlStore{
		db:                conn,
		builder:           sq.StatementBuilder.PlaceholderFormat(sq.Question),
		isUniqueViolation: sqliteUniqueViolation,
		logger:            log,
	}, nil
}

func sqliteUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code == sqlite3.ErrConstraint
	}
	return false
}
