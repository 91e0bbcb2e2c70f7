package titles

import "strings"

const maxObviousTitleWords = 7

// NeedsRefinement decides whether the leftover text is too noisy to accept as
// the title directly. Short leftovers without digits are considered resolved,
// including an empty leftover, where the model has nothing to work with
// either. A movie hint with a matched year tolerates digits, since numbers in
// movie names are common once the year token is already accounted for.
func NeedsRefinement(remaining string, res Result, hints Hints) bool {
	trimmed := strings.TrimSpace(remaining)
	if trimmed == "" {
		return false
	}
	if len(strings.Fields(trimmed)) >= maxObviousTitleWords {
		return true
	}
	if !strings.ContainsAny(trimmed, "0123456789") {
		return false
	}
	if strings.EqualFold(strings.TrimSpace(hints.Kind), "movie") && res.Year != 0 {
		return false
	}
	return true
}
