package journal

import (
	"context"
	"embed"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// The journal schema ships inside the binary; no external migration files
// to deploy alongside it.
//
//go:embed migrations/*.sql
var migrations embed.FS

// RunMigrations brings the journal schema up to date. Called once at boot
// before the recorder starts writing.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	goose.SetLogger(goose.NopLogger()) // boot prints its own status line
	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set dialect: %w", err)
	}

	// goose speaks database/sql; borrow a stdlib view of the pgx pool.
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		return fmt.Errorf("apply: %w", err)
	}

	return nil
}
