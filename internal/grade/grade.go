package grade

import (
	"strings"
	"unicode"
)

// Outcome classifies one graded answer.
type Outcome int

const (
	// Correct answers increment the correct counter.
	Correct Outcome = iota
	// Almost is a distance-1 spelling answer. It scores as wrong but is
	// reported separately to the user.
	Almost
	// Wrong answers increment the wrong counter.
	Wrong
)

// Scores reports whether the outcome counts toward the correct total.
func (o Outcome) Scores() bool {
	return o == Correct
}

// Spelling grades a typed single-word answer against the target.
func Spelling(answer, target string) Outcome {
	dist := Distance(strings.ToLower(strings.TrimSpace(answer)), strings.ToLower(target))
	switch dist {
	case 0:
		return Correct
	case 1:
		return Almost
	default:
		return Wrong
	}
}

// Sentence grades a typed sentence. An answer is correct when it exactly
// equals the target after whitespace normalization and case folding, or when
// the first-letter signatures match and the similarity ratio reaches the
// threshold.
func Sentence(answer, target string, threshold float64) Outcome {
	na := NormalizeSpace(answer)
	nt := NormalizeSpace(target)
	if na == nt {
		return Correct
	}
	if Signature(answer) == Signature(target) && SimilarityRatio(na, nt) >= threshold {
		return Correct
	}
	return Wrong
}

// Signature builds the first-letter fingerprint of a sentence: the
// lower-cased first alphanumeric rune of every whitespace-separated token.
func Signature(s string) string {
	var b strings.Builder
	for _, token := range strings.Fields(s) {
		for _, r := range token {
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				b.WriteRune(unicode.ToLower(r))
				break
			}
		}
	}
	return b.String()
}

// SimilarityRatio returns 1 - distance/max(len(a), len(b)), measured in
// runes. Two empty strings are fully similar.
func SimilarityRatio(a, b string) float64 {
	longest := max(len([]rune(a)), len([]rune(b)))
	if longest == 0 {
		return 1
	}
	return 1 - float64(Distance(a, b))/float64(longest)
}

// NormalizeSpace lower-cases a string and collapses whitespace runs.
func NormalizeSpace(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
