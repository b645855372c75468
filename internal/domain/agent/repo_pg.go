package agent

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

const cols = `id, name, description, goals, tools, ethics, status, created_at, updated_at`

func scan(row pgx.Row) (*Agent, error) {
	var a Agent
	err := row.Scan(&a.ID, &a.Name, &a.Description, &a.Goals, &a.Tools,
		&a.Ethics, &a.Status, &a.CreatedAt, &a.UpdatedAt)
	return &a, err
}

func (r *repoPG) Create(ctx context.Context, a *Agent) error {
	a.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO agent (id, name, description, goals, tools, ethics, status)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		a.ID, a.Name, a.Description, a.Goals, a.Tools, a.Ethics, a.Status)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Agent, error) {
	return scan(r.pool.QueryRow(ctx, `SELECT `+cols+` FROM agent WHERE id = $1`, id))
}

func (r *repoPG) Update(ctx context.Context, a *Agent) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE agent SET name=$2, description=$3, goals=$4, tools=$5,
			ethics=$6, status=$7, updated_at=NOW()
		WHERE id = $1`,
		a.ID, a.Name, a.Description, a.Goals, a.Tools, a.Ethics, a.Status)
	return err
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM agent WHERE id = $1`, id)
	return err
}

func (r *repoPG) List(ctx context.Context, limit, offset int) ([]*Agent, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM agent`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `SELECT `+cols+` FROM agent ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	return collect(rows, total)
}

func (r *repoPG) Search(ctx context.Context, query string, limit, offset int) ([]*Agent, int, error) {
	pattern := "%" + query + "%"
	where := ` WHERE name ILIKE $1 OR description ILIKE $1`
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM agent`+where, pattern).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `SELECT `+cols+` FROM agent`+where+` ORDER BY created_at DESC LIMIT $2 OFFSET $3`, pattern, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	return collect(rows, total)
}

func collect(rows pgx.Rows, total int) ([]*Agent, int, error) {
	var items []*Agent
	for rows.Next() {
		a, err := scan(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, a)
	}
	return items, total, rows.Err()
}
