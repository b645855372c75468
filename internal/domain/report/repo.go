package report

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, r *MedicalReport) error
	GetByID(ctx context.Context, id uuid.UUID) (*MedicalReport, error)
	Update(ctx context.Context, r *MedicalReport) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*MedicalReport, int, error)
	ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*MedicalReport, int, error)
	// Search matches a case-insensitive substring against title and
	// transcript.
	Search(ctx context.Context, query string, limit, offset int) ([]*MedicalReport, int, error)
}
