package nlp

// vocabEntry maps a lowercase keyword to the canonical label reported in
// extraction results. Matching is plain case-insensitive substring search;
// there is no negation handling ("no chest pain" still matches "chest pain").
type vocabEntry struct {
	Keyword string
	Label   string
}

// Vocabulary holds the keyword tables the extractor matches against.
// Kept as data rather than control flow so the tables can grow without
// touching the matcher.
type Vocabulary struct {
	Symptoms    []vocabEntry
	Medications []vocabEntry
	Conditions  []vocabEntry
	Allergies   []vocabEntry
}

// DefaultVocabulary returns the built-in keyword tables. Ordered by
// specificity — longer phrases first so "chest pain" wins over "pain".
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		Symptoms: []vocabEntry{
			{"chest pain", "Chest pain"},
			{"shortness of breath", "Shortness of breath"},
			{"breathing difficulty", "Shortness of breath"},
			{"difficulty breathing", "Shortness of breath"},
			{"sore throat", "Sore throat"},
			{"stomach pain", "Stomach pain"},
			{"abdominal pain", "Stomach pain"},
			{"body ache", "Body ache"},
			{"back pain", "Back pain"},
			{"joint pain", "Joint pain"},
			{"headache", "Headache"},
			{"migraine", "Headache"},
			{"fever", "Fever"},
			{"cough", "Cough"},
			{"cold", "Cold"},
			{"nausea", "Nausea"},
			{"vomiting", "Vomiting"},
			{"dizziness", "Dizziness"},
			{"dizzy", "Dizziness"},
			{"fatigue", "Fatigue"},
			{"tired", "Fatigue"},
			{"weakness", "Weakness"},
			{"rash", "Skin rash"},
			{"swelling", "Swelling"},
			{"palpitation", "Palpitations"},
		},
		Medications: []vocabEntry{
			{"paracetamol", "Paracetamol"},
			{"acetaminophen", "Paracetamol"},
			{"ibuprofen", "Ibuprofen"},
			{"aspirin", "Aspirin"},
			{"metformin", "Metformin"},
			{"amlodipine", "Amlodipine"},
			{"atorvastatin", "Atorvastatin"},
			{"omeprazole", "Omeprazole"},
			{"azithromycin", "Azithromycin"},
			{"amoxicillin", "Amoxicillin"},
			{"insulin", "Insulin"},
			{"cetirizine", "Cetirizine"},
			{"salbutamol", "Salbutamol"},
		},
		Conditions: []vocabEntry{
			{"high blood pressure", "Hypertension"},
			{"hypertension", "Hypertension"},
			{"diabetes", "Diabetes mellitus"},
			{"diabetic", "Diabetes mellitus"},
			{"asthma", "Asthma"},
			{"arthritis", "Arthritis"},
			{"thyroid", "Thyroid disorder"},
			{"anemia", "Anemia"},
			{"cholesterol", "Dyslipidemia"},
			{"heart disease", "Ischemic heart disease"},
			{"kidney disease", "Chronic kidney disease"},
		},
		Allergies: []vocabEntry{
			{"penicillin", "Penicillin"},
			{"sulfa", "Sulfa drugs"},
			{"peanut", "Peanuts"},
			{"shellfish", "Shellfish"},
			{"dust", "Dust"},
			{"pollen", "Pollen"},
			{"latex", "Latex"},
			{"egg", "Eggs"},
		},
	}
}
