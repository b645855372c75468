package speech

import (
	"context"
	"fmt"
	"io"

	"github.com/sashabaranov/go-openai"
)

// OpenAITranscriber performs real speech-to-text through the OpenAI audio
// API. Selected with SPEECH_PROVIDER=openai.
type OpenAITranscriber struct {
	client *openai.Client
	model  string
}

func NewOpenAITranscriber(apiKey string) *OpenAITranscriber {
	return &OpenAITranscriber{
		client: openai.NewClient(apiKey),
		model:  openai.Whisper1,
	}
}

func (o *OpenAITranscriber) Transcribe(ctx context.Context, audio io.Reader, sizeBytes int64, language string) (*Transcript, error) {
	req := openai.AudioRequest{
		Model:    o.model,
		Reader:   audio,
		FilePath: "consultation.webm",
		Format:   openai.AudioResponseFormatVerboseJSON,
	}
	if language != "" {
		req.Language = language
	}

	resp, err := o.client.CreateTranscription(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("create transcription: %w", err)
	}

	t := &Transcript{
		Text:     resp.Text,
		Language: resp.Language,
		Duration: resp.Duration,
	}
	if t.Language == "" {
		t.Language = language
	}
	if t.Duration == 0 {
		t.Duration = float64(sizeBytes) / (16 * 1024)
	}
	return t, nil
}
