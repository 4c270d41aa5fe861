package utils

import "regexp"

var (
	jsonObjectRe = regexp.MustCompile(`(?s)\{.*\}`)
	unitSuffixRe = regexp.MustCompile(`"([^"]+)":\s*(\d+(?:\.\d+)?)\s*[a-zA-Z%]+`)
)

// ExtractJSONObject pulls the first brace-delimited object out of
// free-form model output. The match is greedy, running to the last
// closing brace, so prose around the object is discarded. Returns
// false when no object is present at all.
func ExtractJSONObject(text string) (string, bool) {
	m := jsonObjectRe.FindString(text)
	if m == "" {
		return "", false
	}
	return m, true
}

// StripUnitSuffixes removes unit suffixes the model attaches to
// numeric values ("sodium": 120mg → "sodium": 120) so the candidate
// string parses as JSON.
func StripUnitSuffixes(jsonStr string) string {
	return unitSuffixRe.ReplaceAllString(jsonStr, `"$1": $2`)
}
