package checkers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrAuditSchemaMissing = errors.New("admin_audit table missing, run `migrate`")

// PostgresChecker reports the audit database ready once it answers and the
// audit table exists.
type PostgresChecker struct {
	pool *pgxpool.Pool
}

func NewPostgresChecker(pool *pgxpool.Pool) *PostgresChecker {
	return &PostgresChecker{pool: pool}
}

func (c *PostgresChecker) Name() string { return "audit-db" }

func (c *PostgresChecker) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()

	var migrated bool
	if err := c.pool.QueryRow(ctx, `SELECT to_regclass('admin_audit') IS NOT NULL`).Scan(&migrated); err != nil {
		return fmt.Errorf("query audit schema: %w", err)
	}
	if !migrated {
		return ErrAuditSchemaMissing
	}
	return nil
}
