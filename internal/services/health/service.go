package health

import (
	"context"
	"database/sql"
	"time"
)

const probeTimeout = 2 * time.Second

// ModelProber reports whether the inference backend is reachable.
type ModelProber interface {
	Ready(ctx context.Context) error
}

// Service encapsulates liveness and readiness checks.
type Service struct {
	DB      *sql.DB
	Model   ModelProber
	ModelOn bool
}

// NewService constructs a Service. db and model may be nil when the
// corresponding backend is not configured.
func NewService(db *sql.DB, model ModelProber, modelEnabled bool) *Service {
	return &Service{DB: db, Model: model, ModelOn: modelEnabled}
}

// Status returns a simple liveness payload.
func (s *Service) Status() map[string]bool {
	return map[string]bool{"ok": true}
}

// Readiness reports per-dependency readiness. ok is false when any
// configured dependency is unreachable.
func (s *Service) Readiness(ctx context.Context) (ok bool, checks map[string]string) {
	checks = map[string]string{}
	ok = true

	if s.DB != nil {
		pingCtx, cancel := context.WithTimeout(ctx, probeTimeout)
		err := s.DB.PingContext(pingCtx)
		cancel()
		if err != nil {
			checks["db"] = "unreachable"
			ok = false
		} else {
			checks["db"] = "ok"
		}
	}

	if s.ModelOn {
		if s.Model == nil {
			checks["llm"] = "not configured"
			ok = false
		} else {
			probeCtx, cancel := context.WithTimeout(ctx, probeTimeout)
			err := s.Model.Ready(probeCtx)
			cancel()
			if err != nil {
				checks["llm"] = "unreachable"
				ok = false
			} else {
				checks["llm"] = "ok"
			}
		}
	} else {
		checks["llm"] = "disabled"
	}

	return ok, checks
}
