package questionnaire

import (
	"github.com/agnivade/levenshtein"

	"algaid/internal/catalog"
	"algaid/internal/textutil"
)

// Known reports whether value is one of the menu values for attr.
func Known(attr catalog.Attribute, value string) bool {
	q, ok := QuestionFor(attr)
	if !ok {
		return false
	}
	for _, opt := range q.Options {
		if opt.Value == value {
			return true
		}
	}
	return false
}

// Suggest returns the menu value closest to an unknown value, if exactly one
// is within typo distance.
func Suggest(attr catalog.Attribute, value string) (string, bool) {
	if Known(attr, textutil.Fold(value)) {
		return "", false
	}
	return Closest(value, Values(attr))
}

// Values returns the menu values for attr in menu order.
func Values(attr catalog.Attribute) []string {
	q, ok := QuestionFor(attr)
	if !ok {
		return nil
	}
	values := make([]string, 0, len(q.Options))
	for _, opt := range q.Options {
		values = append(values, opt.Value)
	}
	return values
}

// Closest returns the candidate within typo distance of value. It reports
// false when value is itself a candidate, nothing is close or two candidates
// are equally close.
func Closest(value string, candidates []string) (string, bool) {
	folded := textutil.Fold(value)
	if folded == "" {
		return "", false
	}

	best := ""
	bestDist := -1
	tie := false
	for _, candidate := range candidates {
		if candidate == folded {
			return "", false
		}
		dist := levenshtein.ComputeDistance(folded, candidate)
		if dist > typoLimit(len(candidate)) {
			continue
		}
		switch {
		case bestDist < 0 || dist < bestDist:
			best, bestDist, tie = candidate, dist, false
		case dist == bestDist && candidate != best:
			tie = true
		}
	}
	if bestDist < 0 || tie {
		return "", false
	}
	return best, true
}

func typoLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
