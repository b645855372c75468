package consult

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mediagent/mediagent/internal/nlp"
	"github.com/mediagent/mediagent/internal/platform/speech"
)

// supportedLanguages are the codes a caller may declare explicitly. A
// declared language wins over detection.
var supportedLanguages = map[string]bool{
	"en": true, "ml": true, "hi": true, "ta": true, "te": true,
}

type Service struct {
	extractor   *nlp.Extractor
	confidence  *nlp.ConfidenceSource
	transcriber speech.Transcriber
	maxUpload   int64
}

func NewService(extractor *nlp.Extractor, confidence *nlp.ConfidenceSource, transcriber speech.Transcriber, maxUpload int64) *Service {
	return &Service{
		extractor:   extractor,
		confidence:  confidence,
		transcriber: transcriber,
		maxUpload:   maxUpload,
	}
}

// ProcessText runs the extraction pipeline over raw consultation text.
func (s *Service) ProcessText(_ context.Context, text, language string) (*ProcessingResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("text is required")
	}
	lang := language
	if !supportedLanguages[lang] {
		lang = nlp.DetectLanguage(text)
	}

	data := s.extractor.Extract(text)
	sugg := nlp.Suggest(data.Symptoms, data.DiagnosedConditions)
	conf := s.confidence.Score()

	// Non-English transcripts carry an English rendering. The mock provider
	// passes the text through unchanged; extraction runs on the original.
	var translation *Translation
	if lang != "en" {
		translation = &Translation{
			Original:       text,
			Translated:     text,
			SourceLanguage: lang,
			TargetLanguage: "en",
			Confidence:     s.confidence.Score(),
		}
	}

	return &ProcessingResult{
		ID: uuid.New(),
		Transcription: Transcription{
			Text:       text,
			Language:   lang,
			Confidence: conf,
		},
		Translation: translation,
		Data:        data,
		Suggestions: sugg,
		Confidence:  conf,
		ProcessedAt: time.Now(),
	}, nil
}

// ProcessAudio transcribes an uploaded recording and runs the same pipeline
// over the transcript. The MIME type must be an audio type (webm video from
// browser recorders is accepted) and the upload must fit under the
// configured cap.
func (s *Service) ProcessAudio(ctx context.Context, audio io.Reader, size int64, mimeType, language string) (*ProcessingResult, error) {
	if !isAudioMIME(mimeType) {
		return nil, fmt.Errorf("unsupported content type: %s", mimeType)
	}
	if s.maxUpload > 0 && size > s.maxUpload {
		return nil, fmt.Errorf("upload exceeds %d byte limit", s.maxUpload)
	}

	tr, err := s.transcriber.Transcribe(ctx, audio, size, language)
	if err != nil {
		return nil, fmt.Errorf("transcription failed: %w", err)
	}

	result, err := s.ProcessText(ctx, tr.Text, tr.Language)
	if err != nil {
		return nil, err
	}
	result.Transcription.Duration = tr.Duration
	return result, nil
}

func isAudioMIME(mimeType string) bool {
	mt := strings.ToLower(strings.TrimSpace(mimeType))
	if i := strings.Index(mt, ";"); i >= 0 {
		mt = strings.TrimSpace(mt[:i])
	}
	return strings.HasPrefix(mt, "audio/") || mt == "video/webm"
}
