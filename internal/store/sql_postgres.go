package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib" // pgx database/sql driver

	"github.com/agrodesk/agrodesk/internal/logger"
	"github.com/agrodesk/agrodesk/migrations"
)

// NewPostgresStore connects to PostgreSQL, runs pending migrations, and
// returns a [CollectionStore] backed by the collections table.
func NewPostgresStore(ctx context.Context, dsn string, log *logger.Logger) (CollectionStore, error) {
	conn, err := sql.Open("pgx", dsn)
	if err != nil {
		log.Err(err).Str("func", "NewPostgresStore").Msg("error occurred during database connection")
		return nil, fmt.Errorf("error occurred during database connection: %w", err)
	}

	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	if err := conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewPostgresStore").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Info().Str("func", "NewPostgresStore").Msg("connected to database successfully")

	if err := migrations.Migrate(conn, migrations.DialectPostgres); err != nil {
		return nil, err
	}

	return &sqlStore{
		db:                conn,
		builder:           sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		isUniqueViolation: postgresUniqueViolation,
		logger:            log,
	}, nil
}

func postgresUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.UniqueViolation
	}
	return false
}
