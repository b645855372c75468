package speech

import (
	"context"
	"io"
)

// Transcript is the result of a speech-to-text pass over an audio blob.
type Transcript struct {
	Text     string
	Language string
	// Duration is the estimated audio length in seconds.
	Duration float64
}

// Transcriber converts an audio stream into text. Implementations must not
// retain the reader after returning.
type Transcriber interface {
	Transcribe(ctx context.Context, audio io.Reader, sizeBytes int64, language string) (*Transcript, error)
}
