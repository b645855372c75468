package report

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

const cols = `id, patient_id, title, status, transcript, language, symptoms,
	conditions, medications, allergies, vitals, suggestions, confidence,
	created_at, updated_at`

func scan(row pgx.Row) (*MedicalReport, error) {
	var r MedicalReport
	err := row.Scan(&r.ID, &r.PatientID, &r.Title, &r.Status, &r.Transcript,
		&r.Language, &r.Symptoms, &r.Conditions, &r.Medications, &r.Allergies,
		&r.Vitals, &r.Suggestions, &r.Confidence, &r.CreatedAt, &r.UpdatedAt)
	return &r, err
}

func (r *repoPG) Create(ctx context.Context, m *MedicalReport) error {
	m.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO medical_report (id, patient_id, title, status, transcript,
			language, symptoms, conditions, medications, allergies, vitals,
			suggestions, confidence)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)`,
		m.ID, m.PatientID, m.Title, m.Status, m.Transcript, m.Language,
		m.Symptoms, m.Conditions, m.Medications, m.Allergies, m.Vitals,
		m.Suggestions, m.Confidence)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*MedicalReport, error) {
	return scan(r.pool.QueryRow(ctx, `SELECT `+cols+` FROM medical_report WHERE id = $1`, id))
}

func (r *repoPG) Update(ctx context.Context, m *MedicalReport) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE medical_report SET patient_id=$2, title=$3, status=$4,
			transcript=$5, language=$6, symptoms=$7, conditions=$8,
			medications=$9, allergies=$10, vitals=$11, suggestions=$12,
			confidence=$13, updated_at=NOW()
		WHERE id = $1`,
		m.ID, m.PatientID, m.Title, m.Status, m.Transcript, m.Language,
		m.Symptoms, m.Conditions, m.Medications, m.Allergies, m.Vitals,
		m.Suggestions, m.Confidence)
	return err
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM medical_report WHERE id = $1`, id)
	return err
}

func (r *repoPG) List(ctx context.Context, limit, offset int) ([]*MedicalReport, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM medical_report`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `SELECT `+cols+` FROM medical_report ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	return collect(rows, total)
}

func (r *repoPG) ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*MedicalReport, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM medical_report WHERE patient_id = $1`, patientID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `SELECT `+cols+` FROM medical_report WHERE patient_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`, patientID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	return collect(rows, total)
}

func (r *repoPG) Search(ctx context.Context, query string, limit, offset int) ([]*MedicalReport, int, error) {
	pattern := "%" + query + "%"
	where := ` WHERE title ILIKE $1 OR transcript ILIKE $1`
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM medical_report`+where, pattern).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `SELECT `+cols+` FROM medical_report`+where+` ORDER BY created_at DESC LIMIT $2 OFFSET $3`, pattern, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	return collect(rows, total)
}

func collect(rows pgx.Rows, total int) ([]*MedicalReport, int, error) {
	var items []*MedicalReport
	for rows.Next() {
		m, err := scan(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, m)
	}
	return items, total, rows.Err()
}
