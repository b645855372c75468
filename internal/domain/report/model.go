package report

import (
	"time"

	"github.com/google/uuid"

	"github.com/mediagent/mediagent/internal/nlp"
)

// Report statuses.
const (
	StatusDraft     = "draft"
	StatusCompleted = "completed"
	StatusReviewed  = "reviewed"
)

// MedicalReport maps to the medical_report table. It carries a denormalized
// copy of the processing result so a report stays readable even if the
// source consultation is gone.
type MedicalReport struct {
	ID          uuid.UUID                `db:"id" json:"id"`
	PatientID   *uuid.UUID               `db:"patient_id" json:"patient_id,omitempty"`
	Title       string                   `db:"title" json:"title"`
	Status      string                   `db:"status" json:"status"`
	Transcript  string                   `db:"transcript" json:"transcript"`
	Language    string                   `db:"language" json:"language"`
	Symptoms    []string                 `db:"symptoms" json:"symptoms"`
	Conditions  []string                 `db:"conditions" json:"conditions"`
	Medications []string                 `db:"medications" json:"medications"`
	Allergies   []string                 `db:"allergies" json:"allergies"`
	Vitals      *nlp.Vitals              `db:"vitals" json:"vitals,omitempty"`
	Suggestions nlp.TreatmentSuggestions `db:"suggestions" json:"suggestions"`
	Confidence  float64                  `db:"confidence" json:"confidence"`
	CreatedAt   time.Time                `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time                `db:"updated_at" json:"updated_at"`
}

// allowedTransitions describes the report review lifecycle: a draft is
// completed, a completed report is reviewed, and a reviewed report can be
// reopened for correction.
var allowedTransitions = map[string][]string{
	StatusDraft:     {StatusCompleted},
	StatusCompleted: {StatusReviewed, StatusDraft},
	StatusReviewed:  {StatusCompleted},
}

// CanTransition reports whether a status change is allowed. Setting the
// same status is always a no-op.
func CanTransition(from, to string) bool {
	if from == to {
		return true
	}
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
