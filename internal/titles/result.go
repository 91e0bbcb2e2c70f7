package titles

// Provenance values recorded per resolved field.
const (
	ProvRegex     = "regex"
	ProvHeuristic = "heuristic"
	ProvLLM       = "llm"
)

// Result is the structured record produced by the parsing pipeline.
// Fields resolved by the regex stage carry provenance "regex"; the title may
// additionally come from the heuristic shortcut or the language model.
type Result struct {
	Title          string            `json:"title,omitempty"`
	Year           int               `json:"year,omitempty"`
	Season         int               `json:"season,omitempty"`
	Episodes       []int             `json:"episodes,omitempty"`
	EpisodeRange   string            `json:"episode_range,omitempty"`
	Quality        string            `json:"quality,omitempty"`
	Resolution     string            `json:"resolution,omitempty"`
	VideoCodec     string            `json:"video_codec,omitempty"`
	AudioCodec     string            `json:"audio_codec,omitempty"`
	AudioLanguages []string          `json:"audio_languages,omitempty"`
	FileSize       string            `json:"file_size,omitempty"`
	Source         string            `json:"source,omitempty"`
	Group          string            `json:"group,omitempty"`
	Flags          []string          `json:"flags,omitempty"`
	Raw            string            `json:"raw"`
	Confidence     float64           `json:"confidence"`
	Notes          string            `json:"notes,omitempty"`
	Provenance     map[string]string `json:"provenance,omitempty"`
}

func (r *Result) mark(field, stage string) {
	if r.Provenance == nil {
		r.Provenance = make(map[string]string)
	}
	r.Provenance[field] = stage
}

// Hints carries optional client-supplied context for a parse request.
type Hints struct {
	// Kind is "movie" or "series" when the caller already knows what the
	// title refers to. It only influences the ambiguity decision.
	Kind string `json:"kind,omitempty"`
}
