package parses

import (
	"context"
	"time"

	"github.com/google/uuid"

	"titleparser-backend/internal/llm"
	"titleparser-backend/internal/shared/metrics"
	"titleparser-backend/internal/shared/telemetry"
	"titleparser-backend/internal/submissions"
	"titleparser-backend/internal/titles"
)

// RequestMeta carries per-request context recorded alongside the audit entry.
type RequestMeta struct {
	ClientIP  string
	UserAgent string
	RequestID string
}

// AuditSink queues finished parses for asynchronous persistence.
type AuditSink interface {
	Enqueue(submission submissions.Submission)
}

// Service runs the parse pipeline: regex extraction, the refinement decision,
// optional model refinement and the merge of the final title.
type Service struct {
	LLM   llm.Client
	Audit AuditSink
}

// NewService constructs a Service. llmClient may be nil when model refinement
// is disabled; audit may be nil when auditing is disabled.
func NewService(llmClient llm.Client, audit AuditSink) *Service {
	return &Service{LLM: llmClient, Audit: audit}
}

// Parse resolves one raw release title. Model failures never fail the
// request: the result falls back to the regex leftovers with a note.
func (s *Service) Parse(ctx context.Context, raw string, hints titles.Hints, meta RequestMeta) titles.Result {
	start := metrics.NowMillis()
	metrics.IncParseRequests()

	res, remaining := titles.Extract(raw)

	switch {
	case !titles.NeedsRefinement(remaining, res, hints):
		res = titles.MergeHeuristic(res, remaining)
	case s.LLM == nil:
		res = titles.MergeFallback(res, remaining, titles.NoteLLMDisabled)
	default:
		res = s.refine(ctx, raw, remaining, res, meta)
	}

	metrics.ObserveParseDurationMs(metrics.NowMillis() - start)
	s.audit(raw, res, meta)
	return res
}

// ParseBatch resolves titles in order. The model stage is serialized, so a
// batch costs the same as the equivalent sequence of single requests.
func (s *Service) ParseBatch(ctx context.Context, raws []string, hints titles.Hints, meta RequestMeta) []titles.Result {
	out := make([]titles.Result, 0, len(raws))
	for _, raw := range raws {
		out = append(out, s.Parse(ctx, raw, hints, meta))
	}
	return out
}

func (s *Service) refine(ctx context.Context, raw, remaining string, res titles.Result, meta RequestMeta) titles.Result {
	metrics.IncLLMInvocations()

	client := newRetryingLLM(s.LLM, meta.RequestID)
	title, err := client.RefineTitle(ctx, llm.RefineInput{RawTitle: raw, Remaining: remaining})
	switch {
	case err != nil:
		metrics.IncLLMFailures()
		telemetry.Warn("llm refinement failed", map[string]any{
			"requestId": meta.RequestID,
			"error":     err.Error(),
		})
		return titles.MergeFallback(res, remaining, titles.NoteLLMError)
	case title == "":
		return titles.MergeFallback(res, remaining, titles.NoteLLMEmpty)
	default:
		return titles.MergeModel(res, title)
	}
}

func (s *Service) audit(raw string, res titles.Result, meta RequestMeta) {
	if s.Audit == nil {
		return
	}
	s.Audit.Enqueue(submissions.Submission{
		ID:        uuid.NewString(),
		RawTitle:  raw,
		Result:    res,
		ClientIP:  meta.ClientIP,
		UserAgent: meta.UserAgent,
		RequestID: meta.RequestID,
		CreatedAt: time.Now().UTC(),
	})
}
