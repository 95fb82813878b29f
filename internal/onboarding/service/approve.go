package service

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"innflow/internal/audit"
	idmodels "innflow/internal/identity/models"
	"innflow/internal/notify"
	"innflow/internal/objectstore"
	"innflow/internal/onboarding/models"
	"innflow/internal/property/availability"
	propmodels "innflow/internal/property/models"
	dErrors "innflow/pkg/domain-errors"
)

var tracer = otel.Tracer("innflow/onboarding")

// Approve provisions an operator from a pending request: the identity account
// (created or upgraded), the property, the admin binding, and the conditional
// status flip all commit in one transaction. The flip is the race guard; when
// a concurrent reviewer already decided, the whole transaction rolls back with
// a conflict. Image migration, calendar seeding, and the welcome message run
// after commit and degrade to warnings.
func (s *Service) Approve(ctx context.Context, actorID, requestID int64) (*models.ApprovalResult, error) {
	start := s.now()
	ctx, span := tracer.Start(ctx, "onboarding.approve", trace.WithAttributes(
		attribute.Int64("request.id", requestID),
		attribute.Int64("actor.id", actorID),
	))
	defer span.End()

	scope, err := s.ResolveScope(ctx, actorID)
	if err != nil {
		return nil, err
	}
	req, err := s.findInScope(ctx, scope, requestID)
	if err != nil {
		return nil, err
	}
	if err := req.CanReview(); err != nil {
		return nil, err
	}
	if req.ImageStatus == models.ImageProcessing {
		return nil, dErrors.New(dErrors.CodeConflict, "images are still processing")
	}

	result := &models.ApprovalResult{
		RequestID:    requestID,
		UserEmail:    req.Email,
		PropertyName: req.PropertyName,
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		userID, created, err := s.resolveOperator(ctx, req)
		if err != nil {
			return err
		}
		result.UserID = userID
		result.UserCreated = created

		propertyID, err := s.deps.Properties.CreateProperty(ctx, propertyFromRequest(req))
		if err != nil {
			return err
		}
		result.PropertyID = propertyID

		if _, err := s.deps.Properties.CreateAdminBinding(ctx, userID, propertyID); err != nil {
			return err
		}

		return s.requests.MarkApproved(ctx, requestID, actorID, s.now().UTC(), userID, propertyID)
	})
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	s.finishApproval(ctx, req, result)

	s.recordAudit(ctx, audit.Event{RequestID: requestID, Action: audit.ActionApproved, ActorID: actorID})
	if s.metrics != nil {
		s.metrics.Approvals.Inc()
		s.metrics.ObserveApproval(start)
	}
	s.logger.InfoContext(ctx, "registration request approved",
		"request_id", requestID, "actor_id", actorID,
		"user_id", result.UserID, "user_created", result.UserCreated,
		"property_id", result.PropertyID, "warnings", len(result.Warnings))

	span.SetAttributes(
		attribute.Int64("user.id", result.UserID),
		attribute.Int64("property.id", result.PropertyID),
		attribute.Bool("user.created", result.UserCreated),
	)
	return result, nil
}

// resolveOperator maps the applicant email onto an identity. A fresh email
// gets a new account carrying the request's credentials; an existing end user
// is upgraded with the operator role; an existing operator is a conflict, the
// request cannot be approved onto an account that already runs properties.
func (s *Service) resolveOperator(ctx context.Context, req *models.RegistrationRequest) (int64, bool, error) {
	user, err := s.deps.Users.FindByEmail(ctx, req.Email)
	if err != nil {
		return 0, false, err
	}
	if user == nil {
		id, err := s.deps.Users.Create(ctx, &idmodels.User{
			Email:        req.Email,
			FullName:     req.FullName,
			Phone:        req.Phone,
			PasswordHash: req.PasswordHash,
		}, idmodels.RolePropertyAdmin)
		if err != nil {
			return 0, false, err
		}
		return id, true, nil
	}

	roles, err := s.deps.Users.Roles(ctx, user.ID)
	if err != nil {
		return 0, false, err
	}
	if idmodels.HasRole(roles, idmodels.RolePropertyAdmin) {
		return 0, false, dErrors.New(dErrors.CodeConflict, "email already belongs to an operator account")
	}
	if idmodels.HasRole(roles, idmodels.RoleEndUser) {
		if err := s.deps.Users.RemoveRole(ctx, user.ID, idmodels.RoleEndUser); err != nil {
			return 0, false, err
		}
	}
	if err := s.deps.Users.AddRole(ctx, user.ID, idmodels.RolePropertyAdmin); err != nil {
		return 0, false, err
	}
	return user.ID, false, nil
}

// finishApproval runs the post-commit steps. The request is already approved;
// anything failing here becomes a warning for operators to reconcile.
func (s *Service) finishApproval(ctx context.Context, req *models.RegistrationRequest, result *models.ApprovalResult) {
	s.attempt(ctx, "availability seeding", &result.Warnings, func() error {
		return s.deps.Availability.Seed(ctx, result.PropertyID, req.BasePrice, availability.DefaultHorizonDays)
	})

	if len(req.ImageKeys) > 0 {
		s.attempt(ctx, "image migration", &result.Warnings, func() error {
			moved, err := s.deps.Objects.MoveMany(ctx, req.ImageKeys, objectstore.PermanentPrefix(result.PropertyID))
			if err != nil {
				return err
			}
			return s.deps.Properties.SetImageKeys(ctx, result.PropertyID, moved)
		})
	}

	// Upgraded accounts already know their credentials; only fresh accounts
	// get the welcome message with login and dashboard links.
	if result.UserCreated {
		before := len(result.Warnings)
		s.attempt(ctx, "welcome message", &result.Warnings, func() error {
			msg := notify.Welcome(req.Email, req.FullName, req.PropertyName,
				s.dashboardURL+"/login", s.dashboardURL+"/dashboard")
			return s.deps.Notifier.Enqueue(ctx, msg)
		})
		result.WelcomeScheduled = len(result.Warnings) == before
	}
}

func propertyFromRequest(req *models.RegistrationRequest) *propmodels.Property {
	return &propmodels.Property{
		Name:         req.PropertyName,
		Description:  req.Description,
		Address:      req.Address,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		BasePrice:    req.BasePrice,
		MaxGuests:    req.MaxGuests,
		Bedrooms:     req.Bedrooms,
		Bathrooms:    req.Bathrooms,
		DepartmentID: req.DepartmentID,
		UnitTypeID:   req.UnitTypeID,
	}
}
