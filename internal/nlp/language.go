package nlp

// scriptRange maps a Unicode block to an ISO 639-1 language code.
type scriptRange struct {
	Code string
	Lo   rune
	Hi   rune
}

// scriptRanges are checked in fixed priority order; the first script with
// any matching rune wins. Script mixing is not resolved.
var scriptRanges = []scriptRange{
	{"ml", 0x0D00, 0x0D7F}, // Malayalam
	{"hi", 0x0900, 0x097F}, // Devanagari
	{"ta", 0x0B80, 0x0BFF}, // Tamil
	{"te", 0x0C00, 0x0C7F}, // Telugu
}

// DetectLanguage returns the language code for the dominant script of text:
// one of "ml", "hi", "ta", "te", or "en" when no Indic script is present.
func DetectLanguage(text string) string {
	for _, sr := range scriptRanges {
		for _, r := range text {
			if r >= sr.Lo && r <= sr.Hi {
				return sr.Code
			}
		}
	}
	return "en"
}

// LanguageName returns the human-readable name for a detected language code.
func LanguageName(code string) string {
	switch code {
	case "ml":
		return "Malayalam"
	case "hi":
		return "Hindi"
	case "ta":
		return "Tamil"
	case "te":
		return "Telugu"
	case "en":
		return "English"
	}
	return code
}
