package service

import (
	"context"
	"log/slog"
	"time"

	"innflow/internal/audit"
	idmodels "innflow/internal/identity/models"
	"innflow/internal/media"
	"innflow/internal/notify"
	"innflow/internal/objectstore"
	"innflow/internal/onboarding/metrics"
	"innflow/internal/onboarding/models"
	propmodels "innflow/internal/property/models"
	dErrors "innflow/pkg/domain-errors"
)

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks

// RequestStore is the persistence contract for registration requests.
// Terminal transitions are conditional on the request still being pending;
// implementations return a conflict when another reviewer got there first.
type RequestStore interface {
	Create(ctx context.Context, r *models.RegistrationRequest) (int64, error)
	FindByID(ctx context.Context, id int64) (*models.RegistrationRequest, error)
	HasPendingByEmail(ctx context.Context, email string) (bool, error)
	List(ctx context.Context, filter models.RequestFilter) ([]models.RegistrationRequest, error)
	UpdateImages(ctx context.Context, id int64, keys []string, status models.ImageStatus, errSummary string, processedAt time.Time) error
	SetImageStatus(ctx context.Context, id int64, status models.ImageStatus) error
	MarkApproved(ctx context.Context, id, reviewedBy int64, reviewedAt time.Time, userID, propertyID int64) error
	MarkRejected(ctx context.Context, id, reviewedBy int64, reviewedAt time.Time, reason string) error
	Delete(ctx context.Context, id int64) error
	Aggregate(ctx context.Context, departmentID *int64) (*models.Statistics, error)
}

// UserDirectory is the identity slice approvals need: lookups, account
// creation, and role management.
type UserDirectory interface {
	FindByEmail(ctx context.Context, address string) (*idmodels.User, error)
	FindByID(ctx context.Context, id int64) (*idmodels.User, error)
	Create(ctx context.Context, user *idmodels.User, roles ...idmodels.Role) (int64, error)
	Roles(ctx context.Context, userID int64) ([]idmodels.Role, error)
	AddRole(ctx context.Context, userID int64, role idmodels.Role) error
	RemoveRole(ctx context.Context, userID int64, role idmodels.Role) error
	ActiveDepartment(ctx context.Context, userID int64) (int64, error)
	DepartmentAdmins(ctx context.Context, departmentID int64) ([]idmodels.User, error)
}

// PropertyStore is the catalog slice: reference lookups for intake validation
// and the writes an approval provisions.
type PropertyStore interface {
	FindDepartment(ctx context.Context, id int64) (*propmodels.Department, error)
	FindUnitType(ctx context.Context, id int64) (*propmodels.UnitType, error)
	CreateProperty(ctx context.Context, p *propmodels.Property) (int64, error)
	SetImageKeys(ctx context.Context, propertyID int64, keys []string) error
	CreateAdminBinding(ctx context.Context, userID, propertyID int64) (int64, error)
}

// AvailabilitySeeder opens a new property's booking calendar.
type AvailabilitySeeder interface {
	Seed(ctx context.Context, propertyID int64, basePrice float64, horizonDays int) error
}

// Transcoder converts validated uploads to the stored image format.
type Transcoder interface {
	ToWebP(u media.Upload) ([]byte, error)
}

// Notifier is the enqueue-only messaging contract.
type Notifier interface {
	Enqueue(ctx context.Context, msg notify.Message) error
}

// Auditor records review decisions.
type Auditor interface {
	Emit(ctx context.Context, event audit.Event) error
}

// Cache is an optional byte-value cache for read models. A miss is (nil, nil).
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// Deps are the required collaborators of the onboarding service.
type Deps struct {
	Users        UserDirectory
	Properties   PropertyStore
	Availability AvailabilitySeeder
	Objects      objectstore.Store
	Transcoder   Transcoder
	Notifier     Notifier
}

// Service orchestrates the operator onboarding lifecycle: intake, image
// ingestion, review decisions, and the statistics read model.
type Service struct {
	requests RequestStore
	tx       Tx
	deps     Deps

	auditor      Auditor
	cache        Cache
	logger       *slog.Logger
	metrics      *metrics.Metrics
	now          func() time.Time
	dashboardURL string
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// WithClock overrides time.Now; tests pin review timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func WithAuditor(a Auditor) Option {
	return func(s *Service) { s.auditor = a }
}

// WithCache enables caching of the statistics read model.
func WithCache(c Cache) Option {
	return func(s *Service) { s.cache = c }
}

// WithDashboardURL sets the base URL stamped into welcome messages.
func WithDashboardURL(base string) Option {
	return func(s *Service) { s.dashboardURL = base }
}

func New(requests RequestStore, tx Tx, deps Deps, opts ...Option) *Service {
	s := &Service{
		requests:     requests,
		tx:           tx,
		deps:         deps,
		logger:       slog.Default(),
		now:          time.Now,
		dashboardURL: "https://app.innflow.io",
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get returns one request, constrained to the caller's scope.
func (s *Service) Get(ctx context.Context, actorID, requestID int64) (*models.RegistrationRequest, error) {
	scope, err := s.ResolveScope(ctx, actorID)
	if err != nil {
		return nil, err
	}
	return s.findInScope(ctx, scope, requestID)
}

// List returns requests visible to the caller, newest first. Department
// admins are pinned to their own department regardless of the filter.
func (s *Service) List(ctx context.Context, actorID int64, filter models.RequestFilter) ([]models.RegistrationRequest, error) {
	scope, err := s.ResolveScope(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if !scope.Global {
		dept := scope.DepartmentID
		filter.DepartmentID = &dept
	}
	return s.requests.List(ctx, filter)
}

func (s *Service) findInScope(ctx context.Context, scope Scope, requestID int64) (*models.RegistrationRequest, error) {
	req, err := s.requests.FindByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if !scope.CanAccess(req.DepartmentID) {
		return nil, dErrors.New(dErrors.CodeForbidden, "request belongs to another department")
	}
	return req, nil
}

// attempt runs a best-effort step of an orchestration. Failures are logged
// and recorded as warnings instead of aborting the operation.
func (s *Service) attempt(ctx context.Context, step string, warnings *[]string, fn func() error) {
	if err := fn(); err != nil {
		s.logger.WarnContext(ctx, "onboarding step failed", "step", step, "error", err)
		*warnings = append(*warnings, step+": "+err.Error())
	}
}

func (s *Service) recordAudit(ctx context.Context, event audit.Event) {
	if s.auditor == nil {
		return
	}
	if err := s.auditor.Emit(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "audit emit failed", "request_id", event.RequestID, "action", event.Action, "error", err)
	}
}
