package service

import (
	"context"
	"strings"

	"innflow/internal/audit"
	"innflow/internal/notify"
	dErrors "innflow/pkg/domain-errors"
)

// Reject closes a pending request with a reason. The reason reaches the
// applicant verbatim, so it is required. Staged images are removed from the
// temporary namespace on a best-effort basis.
func (s *Service) Reject(ctx context.Context, actorID, requestID int64, reason string) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return dErrors.New(dErrors.CodeValidation, "a rejection reason is required")
	}

	scope, err := s.ResolveScope(ctx, actorID)
	if err != nil {
		return err
	}
	req, err := s.findInScope(ctx, scope, requestID)
	if err != nil {
		return err
	}
	if err := req.CanReview(); err != nil {
		return err
	}

	if err := s.requests.MarkRejected(ctx, requestID, actorID, s.now().UTC(), reason); err != nil {
		return err
	}

	var warnings []string
	if len(req.ImageKeys) > 0 {
		s.attempt(ctx, "staged image cleanup", &warnings, func() error {
			return s.deps.Objects.DeleteMany(ctx, req.ImageKeys)
		})
	}
	s.attempt(ctx, "rejection message", &warnings, func() error {
		return s.deps.Notifier.Enqueue(ctx, notify.Rejection(req.Email, req.FullName, req.PropertyName, reason))
	})

	s.recordAudit(ctx, audit.Event{RequestID: requestID, Action: audit.ActionRejected, ActorID: actorID, Reason: reason})
	if s.metrics != nil {
		s.metrics.Rejections.Inc()
	}
	s.logger.InfoContext(ctx, "registration request rejected",
		"request_id", requestID, "actor_id", actorID, "warnings", len(warnings))
	return nil
}
