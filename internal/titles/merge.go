package titles

import "strings"

// Notes attached to results depending on how the title was resolved.
const (
	NoteHeuristic   = "Title derived from simple heuristics."
	NoteLLM         = "Title identified by LLM."
	NoteLLMEmpty    = "LLM returned no title, using regex leftovers."
	NoteLLMError    = "LLM inference error, using regex leftovers."
	NoteLLMDisabled = "LLM is disabled. Title is based on regex leftovers."
)

// The merge functions below finalize a result. They only ever touch the title,
// confidence, notes and provenance: fields resolved by the regex stage are
// never overwritten by a later stage.

// MergeHeuristic accepts the leftover text as the title without model help.
func MergeHeuristic(res Result, remaining string) Result {
	res.Title = strings.TrimSpace(remaining)
	res.Confidence = boost(res.Confidence, 0.25)
	res.Notes = NoteHeuristic
	res.mark("title", ProvHeuristic)
	return res
}

// MergeModel applies a model-supplied title.
func MergeModel(res Result, title string) Result {
	res.Title = strings.TrimSpace(title)
	res.Confidence = boost(res.Confidence, 0.3)
	res.Notes = NoteLLM
	res.mark("title", ProvLLM)
	return res
}

// MergeFallback falls back to the leftover text when the model was skipped,
// unavailable or failed. No confidence boost is applied.
func MergeFallback(res Result, remaining, note string) Result {
	res.Title = strings.TrimSpace(remaining)
	res.Notes = note
	res.mark("title", ProvRegex)
	return res
}

func boost(confidence, delta float64) float64 {
	c := confidence + delta
	if c > 1.0 {
		return 1.0
	}
	return c
}
