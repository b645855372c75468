package workflow

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Workflow statuses.
const (
	StatusDraft  = "draft"
	StatusActive = "active"
	StatusPaused = "paused"
	StatusError  = "error"
)

// Workflow maps to the workflow table. Document holds the generated
// automation definition as stored (JSONB in postgres). RunnerID is set once
// the workflow has been pushed to the external runner.
type Workflow struct {
	ID        uuid.UUID       `db:"id" json:"id"`
	Name      string          `db:"name" json:"name"`
	Prompt    string          `db:"prompt" json:"prompt"`
	Document  json.RawMessage `db:"document" json:"document"`
	Status    string          `db:"status" json:"status"`
	RunnerID  string          `db:"runner_id" json:"runner_id,omitempty"`
	CreatedAt time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt time.Time       `db:"updated_at" json:"updated_at"`
}
