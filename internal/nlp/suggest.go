package nlp

import "strings"

// TreatmentSuggestions is the canned recommendation set derived from
// extracted symptoms and conditions. This is a lookup table, not a clinical
// rules engine: six independent predicates each contribute fixed lists.
type TreatmentSuggestions struct {
	Medications      []string `json:"medications"`
	LabTests         []string `json:"lab_tests"`
	FollowUpDuration string   `json:"follow_up_duration"`
	LifestyleAdvice  []string `json:"lifestyle_advice"`
}

// suggestionRule contributes its lists when Match reports true for the
// combined symptom+condition set.
type suggestionRule struct {
	Match       func(labels map[string]bool) bool
	Medications []string
	LabTests    []string
	Advice      []string
	FollowUp    string
}

func hasLabel(keyword string) func(map[string]bool) bool {
	return func(labels map[string]bool) bool { return labels[strings.ToLower(keyword)] }
}

var suggestionRules = []suggestionRule{
	{
		Match:       hasLabel("Chest pain"),
		Medications: []string{"Nitroglycerin 0.4mg sublingual PRN", "Aspirin 75mg once daily"},
		LabTests:    []string{"12-lead ECG immediately", "Troponin I", "Chest X-ray"},
		Advice:      []string{"Avoid exertion until cardiac evaluation is complete"},
		FollowUp:    "24-48 hours",
	},
	{
		Match:       hasLabel("Headache"),
		Medications: []string{"Ibuprofen 400mg every 8 hours as needed"},
		LabTests:    []string{"Blood pressure monitoring"},
		Advice:      []string{"Adequate sleep and hydration", "Limit screen time"},
	},
	{
		Match:       hasLabel("Fever"),
		Medications: []string{"Paracetamol 500mg every 6 hours as needed"},
		LabTests:    []string{"Complete blood count", "Blood culture if fever persists beyond 3 days"},
		Advice:      []string{"Adequate hydration", "Rest until fever subsides"},
		FollowUp:    "3 days",
	},
	{
		Match:       hasLabel("Cough"),
		Medications: []string{"Dextromethorphan syrup 10ml three times daily"},
		LabTests:    []string{"Chest X-ray if cough persists beyond 2 weeks"},
		Advice:      []string{"Warm saline gargles", "Avoid cold beverages"},
	},
	{
		Match:       hasLabel("Hypertension"),
		Medications: []string{"Amlodipine 5mg once daily"},
		LabTests:    []string{"Lipid profile", "Serum electrolytes", "Renal function tests"},
		Advice:      []string{"Reduce salt intake to under 5g per day", "Regular aerobic exercise 30 minutes daily"},
	},
	{
		Match:       hasLabel("Diabetes mellitus"),
		Medications: []string{"Metformin 500mg twice daily with meals"},
		LabTests:    []string{"HbA1c", "Fasting blood glucose", "Renal function tests"},
		Advice:      []string{"Low glycemic index diet", "Daily foot inspection"},
	},
}

// Defaults returned when no predicate fires.
var (
	defaultMedications = []string{"Multivitamin once daily"}
	defaultLabTests    = []string{"Complete blood count"}
	defaultAdvice      = []string{"Balanced diet", "Regular exercise", "Adequate sleep"}
	defaultFollowUp    = "2 weeks"
)

// Suggest evaluates the suggestion rules against extracted symptoms and
// conditions and returns the merged, deduplicated recommendation lists.
// Output order follows rule evaluation order.
func Suggest(symptoms, conditions []string) TreatmentSuggestions {
	labels := make(map[string]bool, len(symptoms)+len(conditions))
	for _, s := range symptoms {
		labels[strings.ToLower(s)] = true
	}
	for _, c := range conditions {
		labels[strings.ToLower(c)] = true
	}

	out := TreatmentSuggestions{FollowUpDuration: defaultFollowUp}
	matched := false
	for _, rule := range suggestionRules {
		if !rule.Match(labels) {
			continue
		}
		matched = true
		out.Medications = appendUnique(out.Medications, rule.Medications...)
		out.LabTests = appendUnique(out.LabTests, rule.LabTests...)
		out.LifestyleAdvice = appendUnique(out.LifestyleAdvice, rule.Advice...)
		if rule.FollowUp != "" && out.FollowUpDuration == defaultFollowUp {
			out.FollowUpDuration = rule.FollowUp
		}
	}

	if !matched {
		out.Medications = append([]string(nil), defaultMedications...)
		out.LabTests = append([]string(nil), defaultLabTests...)
		out.LifestyleAdvice = append([]string(nil), defaultAdvice...)
	}
	return out
}

// appendUnique appends items to list, skipping values already present.
func appendUnique(list []string, items ...string) []string {
	seen := make(map[string]bool, len(list))
	for _, v := range list {
		seen[v] = true
	}
	for _, v := range items {
		if !seen[v] {
			seen[v] = true
			list = append(list, v)
		}
	}
	return list
}
