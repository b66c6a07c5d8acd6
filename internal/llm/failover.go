package llm

import (
	"context"

	"go.uber.org/zap"
)

// FailoverEngine wraps a primary engine with a fallback provider.  When the
// primary fails the request is retried once against the fallback.
type FailoverEngine struct {
	primary  Engine
	fallback Engine
	logger   *zap.Logger
}

// NewFailoverEngine creates a failover-enabled engine.  A nil fallback means
// only the primary is used.
func NewFailoverEngine(primary, fallback Engine, logger *zap.Logger) *FailoverEngine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FailoverEngine{primary: primary, fallback: fallback, logger: logger}
}

// Respond asks the primary engine first and falls back on error.
func (e *FailoverEngine) Respond(ctx context.Context, history []Message, prompt string) (string, error) {
	reply, err := e.primary.Respond(ctx, history, prompt)
	if err == nil {
		return reply, nil
	}
	e.logger.Warn("primary engine failed",
		zap.Error(err),
		zap.Bool("fallback_available", e.fallback != nil))
	if e.fallback == nil {
		return "", err
	}
	reply, fallbackErr := e.fallback.Respond(ctx, history, prompt)
	if fallbackErr != nil {
		e.logger.Error("fallback engine also failed",
			zap.NamedError("primary_error", err),
			zap.NamedError("fallback_error", fallbackErr))
		return "", fallbackErr
	}
	return reply, nil
}
