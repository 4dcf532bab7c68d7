package repository

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/pressly/goose/v3"

	"github.com/bloggers/bloggers-api/internal/model"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

//go:embed migrations/*.sql
var migrations embed.FS

// NewDB creates a MySQL connection pool with the given DSN and checks that
// the server is reachable. UPDATE statements report matched rows rather than
// changed rows, so an update with identical values is not mistaken for a
// missing record.
func NewDB(ctx context.Context, dsn string) (*sql.DB, error) {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parsing dsn: %w", err)
	}
	cfg.ParseTime = true
	cfg.ClientFoundRows = true
	cfg.Loc = time.UTC

	connector, err := mysql.NewConnector(cfg)
	if err != nil {
		return nil, err
	}
	db := sql.OpenDB(connector)

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return db, nil
}

// Open connects to MySQL and applies the schema migrations. The pool is
// closed again if migrating fails.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := NewDB(ctx, dsn)
	if err != nil {
		return nil, err
	}
	return migrated(ctx, db)
}

func migrated(ctx context.Context, db *sql.DB) (*sql.DB, error) {
	if err := Migrate(ctx, db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// Migrate applies the embedded schema migrations.
func Migrate(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("mysql"); err != nil {
		return err
	}
	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	return nil
}

// isDuplicateEntryError reports whether err is a MySQL duplicate key error (1062).
func isDuplicateEntryError(err error) bool {
	var myErr *mysql.MySQLError
	return errors.As(err, &myErr) && myErr.Number == 1062
}

// orderBy builds an ORDER BY clause from a whitelisted column map. Unknown
// sort fields fall back to created_at. The id tiebreaker keeps pages stable.
func orderBy(columns map[string]string, q model.PageQuery) string {
	col, ok := columns[q.SortBy]
	if !ok {
		col = "created_at"
	}
	dir := "DESC"
	if q.SortDirection == model.SortAsc {
		dir = "ASC"
	}
	return fmt.Sprintf(" ORDER BY %s %s, id %s", col, dir, dir)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern returns a LIKE pattern matching values containing term.
func containsPattern(term string) string {
	return "%" + strings.ToLower(likeEscaper.Replace(term)) + "%"
}
