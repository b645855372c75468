package workflow

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

const cols = `id, name, prompt, document, status, runner_id, created_at, updated_at`

func scan(row pgx.Row) (*Workflow, error) {
	var w Workflow
	err := row.Scan(&w.ID, &w.Name, &w.Prompt, &w.Document, &w.Status,
		&w.RunnerID, &w.CreatedAt, &w.UpdatedAt)
	return &w, err
}

func (r *repoPG) Create(ctx context.Context, w *Workflow) error {
	w.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO workflow (id, name, prompt, document, status, runner_id)
		VALUES ($1,$2,$3,$4,$5,$6)`,
		w.ID, w.Name, w.Prompt, w.Document, w.Status, w.RunnerID)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Workflow, error) {
	return scan(r.pool.QueryRow(ctx, `SELECT `+cols+` FROM workflow WHERE id = $1`, id))
}

func (r *repoPG) Update(ctx context.Context, w *Workflow) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE workflow SET name=$2, prompt=$3, document=$4, status=$5,
			runner_id=$6, updated_at=NOW()
		WHERE id = $1`,
		w.ID, w.Name, w.Prompt, w.Document, w.Status, w.RunnerID)
	return err
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM workflow WHERE id = $1`, id)
	return err
}

func (r *repoPG) List(ctx context.Context, limit, offset int) ([]*Workflow, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM workflow`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `SELECT `+cols+` FROM workflow ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	return collect(rows, total)
}

func (r *repoPG) Search(ctx context.Context, query string, limit, offset int) ([]*Workflow, int, error) {
	pattern := "%" + query + "%"
	where := ` WHERE name ILIKE $1 OR prompt ILIKE $1`
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM workflow`+where, pattern).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `SELECT `+cols+` FROM workflow`+where+` ORDER BY created_at DESC LIMIT $2 OFFSET $3`, pattern, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	return collect(rows, total)
}

func collect(rows pgx.Rows, total int) ([]*Workflow, int, error) {
	var items []*Workflow
	for rows.Next() {
		w, err := scan(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, w)
	}
	return items, total, rows.Err()
}
