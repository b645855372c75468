package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggest_ChestPain(t *testing.T) {
	s := Suggest([]string{"Chest pain"}, nil)
	assert.Contains(t, s.Medications, "Nitroglycerin 0.4mg sublingual PRN")
	assert.Contains(t, s.LabTests, "12-lead ECG immediately")
	assert.Equal(t, "24-48 hours", s.FollowUpDuration)
}

func TestSuggest_NoMatchesYieldsDefaults(t *testing.T) {
	s := Suggest([]string{"General consultation"}, []string{"None diagnosed"})
	assert.Equal(t, []string{"Multivitamin once daily"}, s.Medications)
	assert.Equal(t, []string{"Complete blood count"}, s.LabTests)
	assert.Equal(t, "2 weeks", s.FollowUpDuration)
	assert.Equal(t, []string{"Balanced diet", "Regular exercise", "Adequate sleep"}, s.LifestyleAdvice)
}

func TestSuggest_ConditionPredicate(t *testing.T) {
	s := Suggest(nil, []string{"Hypertension"})
	assert.Contains(t, s.Medications, "Amlodipine 5mg once daily")
	assert.Contains(t, s.LabTests, "Lipid profile")
}

func TestSuggest_MultiplePredicatesMerge(t *testing.T) {
	s := Suggest([]string{"Fever", "Cough"}, []string{"Diabetes mellitus"})
	assert.Contains(t, s.Medications, "Paracetamol 500mg every 6 hours as needed")
	assert.Contains(t, s.Medications, "Dextromethorphan syrup 10ml three times daily")
	assert.Contains(t, s.Medications, "Metformin 500mg twice daily with meals")
	assert.Contains(t, s.LabTests, "HbA1c")
}

func TestSuggest_Deduplicates(t *testing.T) {
	// Fever and diabetes both request renal-adjacent labs; hypertension and
	// diabetes share "Renal function tests".
	s := Suggest([]string{"Fever"}, []string{"Hypertension", "Diabetes mellitus"})
	count := 0
	for _, l := range s.LabTests {
		if l == "Renal function tests" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestSuggest_EarliestFollowUpWins(t *testing.T) {
	s := Suggest([]string{"Chest pain", "Fever"}, nil)
	assert.Equal(t, "24-48 hours", s.FollowUpDuration)
}

func TestSuggest_EvaluationOrderPreserved(t *testing.T) {
	s := Suggest([]string{"Headache", "Chest pain"}, nil)
	// Chest pain rule is evaluated before headache regardless of input order.
	assert.Equal(t, "Nitroglycerin 0.4mg sublingual PRN", s.Medications[0])
}
