package nlp

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Filler labels reported when a category has no vocabulary hits.
const (
	FillerSymptoms    = "General consultation"
	FillerConditions  = "None diagnosed"
	FillerAllergies   = "No allergies mentioned"
	FillerMedications = "None mentioned"
	FillerTimeline    = "Recent onset"
)

// Vitals holds vital signs parsed out of free text. Each field is extracted
// by an independent regex; a loose pattern like "heart rate ... N" can pick
// up unrelated numbers, which is accepted behavior for dictated notes.
type Vitals struct {
	BloodPressure string  `json:"blood_pressure,omitempty"`
	HeartRate     int     `json:"heart_rate,omitempty"`
	Temperature   float64 `json:"temperature,omitempty"`
}

// ExtractedData is the structured view of a consultation transcript.
type ExtractedData struct {
	Symptoms            []string `json:"symptoms"`
	DiagnosedConditions []string `json:"diagnosed_conditions"`
	MedicalHistory      []string `json:"medical_history"`
	Allergies           []string `json:"allergies"`
	Medications         []string `json:"medications"`
	Timeline            string   `json:"timeline"`
	DoctorNotes         string   `json:"doctor_notes"`
	Vitals              *Vitals  `json:"vitals,omitempty"`
}

var (
	bloodPressureRE = regexp.MustCompile(`\b(\d{2,3})/(\d{2,3})\b`)
	heartRateRE     = regexp.MustCompile(`(?i)(\d{2,3})\s*bpm|heart rate\D{0,20}?(\d{2,3})`)
	temperatureRE   = regexp.MustCompile(`(?i)(\d{2,3}(?:\.\d)?)\s*°?\s*f\b|temperature\D{0,20}?(\d{2,3}(?:\.\d)?)`)
	timelineRE      = regexp.MustCompile(`(?i)\b(\d+|a|an|one|two|three|four|five|few|couple of)\s+(hour|hours|day|days|week|weeks|month|months|year|years)\s+ago\b`)
	historyRE       = regexp.MustCompile(`(?i)history of\s+([a-z ]{3,40})`)
)

// Extractor performs keyword-table extraction over consultation text.
// It never fails: empty or unmatchable input yields filler labels.
type Extractor struct {
	vocab Vocabulary
}

// NewExtractor returns an extractor backed by the default vocabulary.
func NewExtractor() *Extractor {
	return &Extractor{vocab: DefaultVocabulary()}
}

// NewExtractorWithVocabulary returns an extractor over a custom vocabulary.
func NewExtractorWithVocabulary(v Vocabulary) *Extractor {
	return &Extractor{vocab: v}
}

// Extract pulls structured fields out of text. Matching is deterministic:
// the same input always produces the same output.
func (e *Extractor) Extract(text string) ExtractedData {
	lower := strings.ToLower(text)

	data := ExtractedData{
		Symptoms:            matchVocab(lower, e.vocab.Symptoms),
		DiagnosedConditions: matchVocab(lower, e.vocab.Conditions),
		Allergies:           matchVocab(lower, e.vocab.Allergies),
		Medications:         matchVocab(lower, e.vocab.Medications),
		MedicalHistory:      extractHistory(lower, e.vocab.Conditions),
		Timeline:            extractTimeline(text),
		Vitals:              extractVitals(text),
	}

	if len(data.Symptoms) == 0 {
		data.Symptoms = []string{FillerSymptoms}
	}
	if len(data.DiagnosedConditions) == 0 {
		data.DiagnosedConditions = []string{FillerConditions}
	}
	if len(data.Allergies) == 0 {
		data.Allergies = []string{FillerAllergies}
	}
	if len(data.Medications) == 0 {
		data.Medications = []string{FillerMedications}
	}

	data.DoctorNotes = buildNotes(data)
	return data
}

// matchVocab returns the canonical labels of all entries whose keyword
// appears in lower, preserving table order and deduplicating labels
// (several keywords can share one label).
func matchVocab(lower string, entries []vocabEntry) []string {
	var out []string
	seen := make(map[string]bool)
	for _, v := range entries {
		if !strings.Contains(lower, v.Keyword) {
			continue
		}
		if seen[v.Label] {
			continue
		}
		seen[v.Label] = true
		out = append(out, v.Label)
	}
	return out
}

// extractHistory collects conditions mentioned with a "history of" prefix.
func extractHistory(lower string, conditions []vocabEntry) []string {
	var out []string
	seen := make(map[string]bool)
	for _, m := range historyRE.FindAllStringSubmatch(lower, -1) {
		phrase := m[1]
		for _, c := range conditions {
			if strings.Contains(phrase, c.Keyword) && !seen[c.Label] {
				seen[c.Label] = true
				out = append(out, c.Label)
			}
		}
	}
	return out
}

func extractTimeline(text string) string {
	if m := timelineRE.FindString(text); m != "" {
		return "Started " + strings.ToLower(m)
	}
	return FillerTimeline
}

func extractVitals(text string) *Vitals {
	var v Vitals
	found := false

	if m := bloodPressureRE.FindStringSubmatch(text); m != nil {
		v.BloodPressure = m[1] + "/" + m[2]
		found = true
	}
	if m := heartRateRE.FindStringSubmatch(text); m != nil {
		raw := m[1]
		if raw == "" {
			raw = m[2]
		}
		if hr, err := strconv.Atoi(raw); err == nil {
			v.HeartRate = hr
			found = true
		}
	}
	if m := temperatureRE.FindStringSubmatch(text); m != nil {
		raw := m[1]
		if raw == "" {
			raw = m[2]
		}
		if temp, err := strconv.ParseFloat(raw, 64); err == nil {
			v.Temperature = temp
			found = true
		}
	}

	if !found {
		return nil
	}
	return &v
}

func buildNotes(d ExtractedData) string {
	if len(d.Symptoms) == 1 && d.Symptoms[0] == FillerSymptoms {
		return "General consultation. No specific complaints recorded."
	}
	notes := fmt.Sprintf("Patient presents with %s.", strings.ToLower(strings.Join(d.Symptoms, ", ")))
	if d.Timeline != FillerTimeline {
		notes += " " + d.Timeline + "."
	}
	return notes
}
