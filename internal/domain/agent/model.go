package agent

import (
	"time"

	"github.com/google/uuid"
)

// Agent statuses.
const (
	StatusIdle      = "idle"
	StatusRunning   = "running"
	StatusPaused    = "paused"
	StatusCompleted = "completed"
	StatusError     = "error"
)

// Agent maps to the agent table. Goals, tools and ethics tags are free-form
// labels supplied by the operator.
type Agent struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	Goals       []string  `db:"goals" json:"goals"`
	Tools       []string  `db:"tools" json:"tools"`
	Ethics      []string  `db:"ethics" json:"ethics"`
	Status      string    `db:"status" json:"status"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// allowedTransitions encodes the agent run lifecycle: start, pause, resume,
// complete, fail. An errored agent can be reset to idle; a completed one is
// terminal.
var allowedTransitions = map[string][]string{
	StatusIdle:      {StatusRunning},
	StatusRunning:   {StatusPaused, StatusCompleted, StatusError},
	StatusPaused:    {StatusRunning, StatusError},
	StatusCompleted: {},
	StatusError:     {StatusIdle},
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
