package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract_SymptomKeywordCapitalized(t *testing.T) {
	e := NewExtractor()
	data := e.Extract("The patient complains of severe headache since last night")
	assert.Contains(t, data.Symptoms, "Headache")
}

func TestExtract_NoKeywordsYieldsFillers(t *testing.T) {
	e := NewExtractor()
	data := e.Extract("Routine annual checkup, everything looks fine")
	assert.Equal(t, []string{"General consultation"}, data.Symptoms)
	assert.Equal(t, []string{"None diagnosed"}, data.DiagnosedConditions)
	assert.Equal(t, []string{"No allergies mentioned"}, data.Allergies)
	assert.Equal(t, []string{"None mentioned"}, data.Medications)
	assert.Equal(t, "Recent onset", data.Timeline)
	assert.Nil(t, data.Vitals)
}

func TestExtract_NoNegationHandling(t *testing.T) {
	e := NewExtractor()
	// Substring matching by design: negated mentions still match.
	data := e.Extract("Patient reports no chest pain today")
	assert.Contains(t, data.Symptoms, "Chest pain")
}

func TestExtract_MultipleCategories(t *testing.T) {
	e := NewExtractor()
	data := e.Extract("Fever and cough for two days ago, known diabetes, takes metformin, allergic to penicillin")
	assert.Contains(t, data.Symptoms, "Fever")
	assert.Contains(t, data.Symptoms, "Cough")
	assert.Contains(t, data.DiagnosedConditions, "Diabetes mellitus")
	assert.Contains(t, data.Medications, "Metformin")
	assert.Contains(t, data.Allergies, "Penicillin")
}

func TestExtract_SharedLabelDeduplicated(t *testing.T) {
	e := NewExtractor()
	// "migraine" and "headache" both map to Headache.
	data := e.Extract("migraine type headache")
	count := 0
	for _, s := range data.Symptoms {
		if s == "Headache" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestExtract_Timeline(t *testing.T) {
	e := NewExtractor()
	data := e.Extract("Symptoms started 3 days ago and worsened")
	assert.Equal(t, "Started 3 days ago", data.Timeline)
}

func TestExtract_Vitals(t *testing.T) {
	e := NewExtractor()
	data := e.Extract("BP 140/90, heart rate 88 bpm, temperature 101.5 F")
	require.NotNil(t, data.Vitals)
	assert.Equal(t, "140/90", data.Vitals.BloodPressure)
	assert.Equal(t, 88, data.Vitals.HeartRate)
	assert.Equal(t, 101.5, data.Vitals.Temperature)
}

func TestExtract_HeartRateWithoutBPMUnit(t *testing.T) {
	e := NewExtractor()
	data := e.Extract("heart rate of 72 recorded at rest")
	require.NotNil(t, data.Vitals)
	assert.Equal(t, 72, data.Vitals.HeartRate)
}

func TestExtract_MedicalHistory(t *testing.T) {
	e := NewExtractor()
	data := e.Extract("History of hypertension for five years, presents with dizziness")
	assert.Contains(t, data.MedicalHistory, "Hypertension")
}

func TestExtract_Idempotent(t *testing.T) {
	e := NewExtractor()
	text := "Chest pain and fever since 2 days ago, BP 130/85, history of diabetes, on aspirin"
	a := e.Extract(text)
	b := e.Extract(text)
	assert.Equal(t, a, b)
}

func TestExtract_CustomVocabulary(t *testing.T) {
	e := NewExtractorWithVocabulary(Vocabulary{
		Symptoms: []vocabEntry{{"tinnitus", "Tinnitus"}},
	})
	data := e.Extract("persistent tinnitus in left ear")
	assert.Equal(t, []string{"Tinnitus"}, data.Symptoms)
}

func TestDetectLanguage(t *testing.T) {
	cases := map[string]string{
		"രോഗി":         "ml",
		"मरीज़":         "hi",
		"நோயாளி":       "ta",
		"రోగి":         "te",
		"patient":      "en",
		"":             "en",
		"fever രോഗി":   "ml",
	}
	for text, want := range cases {
		assert.Equal(t, want, DetectLanguage(text), "text=%q", text)
	}
}

func TestLanguageName(t *testing.T) {
	assert.Equal(t, "Malayalam", LanguageName("ml"))
	assert.Equal(t, "English", LanguageName("en"))
	assert.Equal(t, "xx", LanguageName("xx"))
}
