package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/smarthire-admin/pkg/audit"
)

// AuditRepository хранит журнал действий администраторов.
// The schema is owned by the goose migrations in pkg/storage/postgres.
type AuditRepository struct {
	pool *pgxpool.Pool
}

func NewAuditRepository(pool *pgxpool.Pool) *AuditRepository {
	return &AuditRepository{pool: pool}
}

func (r *AuditRepository) Create(ctx context.Context, e audit.Entry) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO admin_audit (id, actor_email, action, resource, resource_id, at)
VALUES ($1, $2, $3, $4, $5, $6)
`, e.ID, e.ActorEmail, e.Action, e.Resource, e.ResourceID, e.At)
	return err
}

func (r *AuditRepository) List(ctx context.Context, limit, offset int) ([]audit.Entry, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, actor_email, action, resource, resource_id, at
FROM admin_audit
ORDER BY at DESC
LIMIT $1 OFFSET $2
`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]audit.Entry, 0, limit)
	for rows.Next() {
		var e audit.Entry
		if err := rows.Scan(&e.ID, &e.ActorEmail, &e.Action, &e.Resource, &e.ResourceID, &e.At); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
