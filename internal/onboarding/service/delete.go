package service

import (
	"context"

	"innflow/internal/audit"
)

// Delete removes a request and its staged images. Approved requests are
// immutable history backing a live property and cannot be deleted.
func (s *Service) Delete(ctx context.Context, actorID, requestID int64) error {
	scope, err := s.ResolveScope(ctx, actorID)
	if err != nil {
		return err
	}
	req, err := s.findInScope(ctx, scope, requestID)
	if err != nil {
		return err
	}
	if err := req.CanDelete(); err != nil {
		return err
	}

	if err := s.requests.Delete(ctx, requestID); err != nil {
		return err
	}

	var warnings []string
	if len(req.ImageKeys) > 0 {
		s.attempt(ctx, "staged image cleanup", &warnings, func() error {
			return s.deps.Objects.DeleteMany(ctx, req.ImageKeys)
		})
	}

	s.recordAudit(ctx, audit.Event{RequestID: requestID, Action: audit.ActionDeleted, ActorID: actorID})
	if s.metrics != nil {
		s.metrics.Deletions.Inc()
	}
	s.logger.InfoContext(ctx, "registration request deleted",
		"request_id", requestID, "actor_id", actorID, "warnings", len(warnings))
	return nil
}
