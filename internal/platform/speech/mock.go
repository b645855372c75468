package speech

import (
	"context"
	"io"
)

// Canned transcripts returned by the mock, keyed by language code.
var cannedTranscripts = map[string]string{
	"en": "Patient complains of severe headache and fever since 2 days ago. " +
		"Blood pressure 140/90, heart rate 88 bpm, temperature 101.5 F. " +
		"History of hypertension, currently on amlodipine. Allergic to penicillin.",
	"ml": "രോഗിക്ക് രണ്ട് ദിവസമായി കഠിനമായ തലവേദനയും പനിയും ഉണ്ട്.",
	"hi": "मरीज़ को दो दिन से तेज़ सिरदर्द और बुखार है।",
	"ta": "நோயாளிக்கு இரண்டு நாட்களாக கடுமையான தலைவலி மற்றும் காய்ச்சல் உள்ளது.",
	"te": "రోగికి రెండు రోజులుగా తీవ్రమైన తలనొప్పి మరియు జ్వరం ఉంది.",
}

// MockTranscriber returns canned transcripts without reading the audio
// payload. The blob size is used as a crude duration proxy (roughly 16KB of
// compressed audio per second), which is good enough for a progress readout.
type MockTranscriber struct{}

func NewMockTranscriber() *MockTranscriber { return &MockTranscriber{} }

func (m *MockTranscriber) Transcribe(_ context.Context, audio io.Reader, sizeBytes int64, language string) (*Transcript, error) {
	// Drain so multipart uploads are fully consumed.
	if audio != nil {
		_, _ = io.Copy(io.Discard, audio)
	}

	if language == "" {
		language = "en"
	}
	text, ok := cannedTranscripts[language]
	if !ok {
		text = cannedTranscripts["en"]
		language = "en"
	}

	duration := float64(sizeBytes) / (16 * 1024)
	if duration < 1 {
		duration = 1
	}

	return &Transcript{Text: text, Language: language, Duration: duration}, nil
}
