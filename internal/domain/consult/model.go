package consult

import (
	"time"

	"github.com/google/uuid"

	"github.com/mediagent/mediagent/internal/nlp"
)

// Transcription is the speech-to-text stage of a processing run. For text
// input the text passes through unchanged and Duration stays zero.
type Transcription struct {
	Text       string  `json:"text"`
	Language   string  `json:"language"`
	Confidence float64 `json:"confidence"`
	Duration   float64 `json:"duration,omitempty"`
}

// Translation carries the English rendering of a non-English transcript.
// The mock provider passes text through unchanged; a real provider would
// replace Translated with the actual translation.
type Translation struct {
	Original       string  `json:"original"`
	Translated     string  `json:"translated"`
	SourceLanguage string  `json:"source_language"`
	TargetLanguage string  `json:"target_language"`
	Confidence     float64 `json:"confidence"`
}

// ProcessingResult is the full outcome of one consultation run:
// transcription, extracted entities, and treatment suggestions.
type ProcessingResult struct {
	ID            uuid.UUID                `json:"id"`
	Transcription Transcription            `json:"transcription"`
	Translation   *Translation             `json:"translation,omitempty"`
	Data          nlp.ExtractedData        `json:"extracted_data"`
	Suggestions   nlp.TreatmentSuggestions `json:"suggestions"`
	Confidence    float64                  `json:"confidence"`
	ProcessedAt   time.Time                `json:"processed_at"`
}
