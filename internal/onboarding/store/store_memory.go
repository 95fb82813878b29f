package store

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"innflow/internal/onboarding/models"
	dErrors "innflow/pkg/domain-errors"
)

// InMemory is a test double for the registration request store. Terminal
// transitions apply the same pending-only condition as the SQL store.
type InMemory struct {
	mu       sync.Mutex
	nextID   int64
	Requests map[int64]*models.RegistrationRequest

	FailUpdateImages bool
	FailDelete       bool
}

func NewInMemory() *InMemory {
	return &InMemory{nextID: 1, Requests: make(map[int64]*models.RegistrationRequest)}
}

func (s *InMemory) Create(_ context.Context, r *models.RegistrationRequest) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.Requests {
		if existing.Status == models.StatusPending && strings.EqualFold(existing.Email, r.Email) {
			return 0, dErrors.New(dErrors.CodeConflict, "a pending request already exists for this email")
		}
	}
	clone := *r
	clone.ID = s.nextID
	clone.Email = strings.ToLower(r.Email)
	if clone.SubmittedAt.IsZero() {
		clone.SubmittedAt = time.Now().UTC()
	}
	s.nextID++
	s.Requests[clone.ID] = &clone
	return clone.ID, nil
}

func (s *InMemory) FindByID(_ context.Context, id int64) (*models.RegistrationRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.Requests[id]
	if !ok {
		return nil, dErrors.New(dErrors.CodeNotFound, "registration request not found")
	}
	clone := *r
	clone.ImageKeys = append([]string(nil), r.ImageKeys...)
	return &clone, nil
}

func (s *InMemory) HasPendingByEmail(_ context.Context, email string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.Requests {
		if r.Status == models.StatusPending && strings.EqualFold(r.Email, email) {
			return true, nil
		}
	}
	return false, nil
}

func (s *InMemory) List(_ context.Context, filter models.RequestFilter) ([]models.RegistrationRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.RegistrationRequest
	for _, r := range s.Requests {
		if filter.Status != nil && r.Status != *filter.Status {
			continue
		}
		if filter.DepartmentID != nil && r.DepartmentID != *filter.DepartmentID {
			continue
		}
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SubmittedAt.After(out[j].SubmittedAt) })
	if filter.Offset > 0 {
		if filter.Offset >= len(out) {
			return nil, nil
		}
		out = out[filter.Offset:]
	}
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (s *InMemory) UpdateImages(_ context.Context, id int64, keys []string, status models.ImageStatus, errSummary string, processedAt time.Time) error {
	if s.FailUpdateImages {
		return dErrors.New(dErrors.CodeInternal, "update images failed")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.Requests[id]
	if !ok {
		return dErrors.New(dErrors.CodeNotFound, "registration request not found")
	}
	r.ImageKeys = append([]string(nil), keys...)
	r.ImageCount = len(keys)
	r.ImageStatus = status
	r.ImageError = errSummary
	t := processedAt
	r.ImagesProcessedAt = &t
	return nil
}

func (s *InMemory) SetImageStatus(_ context.Context, id int64, status models.ImageStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.Requests[id]
	if !ok {
		return dErrors.New(dErrors.CodeNotFound, "registration request not found")
	}
	r.ImageStatus = status
	return nil
}

func (s *InMemory) MarkApproved(_ context.Context, id, reviewedBy int64, reviewedAt time.Time, userID, propertyID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.Requests[id]
	if !ok || r.Status != models.StatusPending {
		return dErrors.New(dErrors.CodeConflict, "request is no longer pending")
	}
	r.Status = models.StatusApproved
	t := reviewedAt
	r.ReviewedAt = &t
	rb := reviewedBy
	r.ReviewedBy = &rb
	uid, pid := userID, propertyID
	r.CreatedUserID = &uid
	r.CreatedPropertyID = &pid
	return nil
}

func (s *InMemory) MarkRejected(_ context.Context, id, reviewedBy int64, reviewedAt time.Time, reason string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.Requests[id]
	if !ok || r.Status != models.StatusPending {
		return dErrors.New(dErrors.CodeConflict, "request is no longer pending")
	}
	r.Status = models.StatusRejected
	t := reviewedAt
	r.ReviewedAt = &t
	rb := reviewedBy
	r.ReviewedBy = &rb
	r.RejectionReason = reason
	return nil
}

func (s *InMemory) Delete(_ context.Context, id int64) error {
	if s.FailDelete {
		return dErrors.New(dErrors.CodeInternal, "delete failed")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.Requests[id]; !ok {
		return dErrors.New(dErrors.CodeNotFound, "registration request not found")
	}
	delete(s.Requests, id)
	return nil
}

func (s *InMemory) Aggregate(_ context.Context, departmentID *int64) (*models.Statistics, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stats := &models.Statistics{
		ByStatus:     make(map[models.Status]int),
		ByDepartment: make(map[int64]int),
		ByUnitType:   make(map[int64]int),
	}
	now := time.Now().UTC()
	for _, r := range s.Requests {
		if departmentID != nil && r.DepartmentID != *departmentID {
			continue
		}
		stats.Total++
		stats.ByStatus[r.Status]++
		stats.ByDepartment[r.DepartmentID]++
		stats.ByUnitType[r.UnitTypeID]++
		if r.SubmittedAt.After(now.AddDate(0, 0, -7)) {
			stats.Last7Days++
		}
		if r.SubmittedAt.After(now.AddDate(0, 0, -30)) {
			stats.Last30Days++
		}
	}
	return stats, nil
}
