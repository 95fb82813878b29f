package service

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"innflow/internal/notify"
	"innflow/internal/onboarding/models"
	dErrors "innflow/pkg/domain-errors"
	pkgemail "innflow/pkg/email"
)

// Submission is the intake payload for a new registration request.
type Submission struct {
	FullName     string
	Email        string
	Phone        string
	Password     string
	PropertyName string
	Description  string
	Address      string
	Latitude     float64
	Longitude    float64
	BasePrice    float64
	MaxGuests    int
	Bedrooms     int
	Bathrooms    int
	DepartmentID int64
	UnitTypeID   int64
}

const minPasswordLength = 8

// Submit accepts a registration request. The department and unit type must
// exist and be active, and at most one pending request may exist per email.
// Applicant and department-admin notifications are best effort; the request
// stands even when messaging is down.
func (s *Service) Submit(ctx context.Context, sub Submission) (*models.RegistrationRequest, error) {
	if len(sub.Password) < minPasswordLength {
		return nil, dErrors.New(dErrors.CodeValidation, "password must be at least 8 characters")
	}
	if sub.BasePrice <= 0 {
		return nil, dErrors.New(dErrors.CodeValidation, "base price must be positive")
	}
	if sub.MaxGuests <= 0 {
		return nil, dErrors.New(dErrors.CodeValidation, "max guests must be positive")
	}

	dept, err := s.deps.Properties.FindDepartment(ctx, sub.DepartmentID)
	if err != nil {
		if dErrors.HasCode(err, dErrors.CodeNotFound) {
			return nil, dErrors.New(dErrors.CodeValidation, "unknown department")
		}
		return nil, err
	}
	if !dept.Active {
		return nil, dErrors.New(dErrors.CodeValidation, "department is not accepting registrations")
	}

	unitType, err := s.deps.Properties.FindUnitType(ctx, sub.UnitTypeID)
	if err != nil {
		if dErrors.HasCode(err, dErrors.CodeNotFound) {
			return nil, dErrors.New(dErrors.CodeValidation, "unknown unit type")
		}
		return nil, err
	}
	if !unitType.Active {
		return nil, dErrors.New(dErrors.CodeValidation, "unit type is not available")
	}

	address := pkgemail.Normalize(sub.Email)
	pending, err := s.requests.HasPendingByEmail(ctx, address)
	if err != nil {
		return nil, err
	}
	if pending {
		return nil, dErrors.New(dErrors.CodeConflict, "a pending request already exists for this email")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(sub.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to hash password")
	}

	req := &models.RegistrationRequest{
		FullName:     sub.FullName,
		Email:        address,
		Phone:        sub.Phone,
		PasswordHash: string(hash),
		PropertyName: sub.PropertyName,
		Description:  sub.Description,
		Address:      sub.Address,
		Latitude:     sub.Latitude,
		Longitude:    sub.Longitude,
		BasePrice:    sub.BasePrice,
		MaxGuests:    sub.MaxGuests,
		Bedrooms:     sub.Bedrooms,
		Bathrooms:    sub.Bathrooms,
		DepartmentID: sub.DepartmentID,
		UnitTypeID:   sub.UnitTypeID,
		Status:       models.StatusPending,
		SubmittedAt:  s.now().UTC(),
	}
	id, err := s.requests.Create(ctx, req)
	if err != nil {
		return nil, err
	}
	req.ID = id

	if s.metrics != nil {
		s.metrics.IncrementSubmissions()
	}
	s.logger.InfoContext(ctx, "registration request submitted",
		"request_id", id, "department_id", sub.DepartmentID, "property", sub.PropertyName)

	s.notifySubmission(ctx, req, dept.Name)
	return req, nil
}

func (s *Service) notifySubmission(ctx context.Context, req *models.RegistrationRequest, departmentName string) {
	var warnings []string
	s.attempt(ctx, "applicant confirmation", &warnings, func() error {
		return s.deps.Notifier.Enqueue(ctx, notify.ApplicantConfirmation(req.Email, req.FullName, req.PropertyName))
	})

	admins, err := s.deps.Users.DepartmentAdmins(ctx, req.DepartmentID)
	if err != nil {
		s.logger.WarnContext(ctx, "department admin lookup failed", "department_id", req.DepartmentID, "error", err)
		return
	}
	for _, admin := range admins {
		msg := notify.AdminNewRequest(admin.Email, admin.FullName, req.PropertyName, departmentName)
		s.attempt(ctx, "admin notification", &warnings, func() error {
			return s.deps.Notifier.Enqueue(ctx, msg)
		})
	}
}
