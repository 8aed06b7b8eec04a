package serpapi

import (
	"strings"
	"unicode"

	"github.com/hbollon/go-edlib"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// matchThreshold is the minimum Jaro-Winkler similarity for a theater
// name to count as a match for the configured query.
const matchThreshold = 0.75

// matchTheater returns the index of the name most similar to the query,
// or 0 when nothing clears the threshold.
func matchTheater(query string, names []string) int {
	normalizedQuery := cleanName(query)

	best := 0
	bestScore := float32(0)
	for i, name := range names {
		if name == "" {
			continue
		}
		score := edlib.JaroWinklerSimilarity(normalizedQuery, cleanName(name))
		if score > bestScore {
			best = i
			bestScore = score
		}
	}

	if bestScore < matchThreshold {
		return 0
	}
	return best
}

// cleanName normalizes a theater name for matching purposes: lowercase,
// accents stripped, punctuation removed, whitespace collapsed.
func cleanName(name string) string {
	s := strings.ToLower(name)
	s = removeAccents(s)
	s = strings.ReplaceAll(s, "&", " and ")

	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

func removeAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, s)
	return result
}
