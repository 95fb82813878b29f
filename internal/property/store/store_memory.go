package store

import (
	"context"
	"sync"
	"time"

	"innflow/internal/property/models"
	dErrors "innflow/pkg/domain-errors"
)

// InMemory is the test fake for the property store.
type InMemory struct {
	mu           sync.RWMutex
	nextID       int64
	Departments  map[int64]models.Department
	UnitTypes    map[int64]models.UnitType
	Properties   map[int64]models.Property
	Bindings     []models.AdminBinding
	Availability []models.AvailabilityDay

	FailAvailability bool
}

func NewInMemory() *InMemory {
	return &InMemory{
		nextID:      1,
		Departments: make(map[int64]models.Department),
		UnitTypes:   make(map[int64]models.UnitType),
		Properties:  make(map[int64]models.Property),
	}
}

func (s *InMemory) FindDepartment(_ context.Context, id int64) (*models.Department, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.Departments[id]
	if !ok {
		return nil, dErrors.New(dErrors.CodeNotFound, "department not found")
	}
	return &d, nil
}

func (s *InMemory) FindUnitType(_ context.Context, id int64) (*models.UnitType, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.UnitTypes[id]
	if !ok {
		return nil, dErrors.New(dErrors.CodeNotFound, "unit type not found")
	}
	return &u, nil
}

func (s *InMemory) CreateProperty(_ context.Context, p *models.Property) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	stored := *p
	stored.ID = id
	stored.CreatedAt = time.Now()
	s.Properties[id] = stored
	return id, nil
}

func (s *InMemory) SetImageKeys(_ context.Context, propertyID int64, keys []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.Properties[propertyID]
	if !ok {
		return dErrors.New(dErrors.CodeNotFound, "property not found")
	}
	p.ImageKeys = append([]string(nil), keys...)
	s.Properties[propertyID] = p
	return nil
}

func (s *InMemory) CreateAdminBinding(_ context.Context, userID, propertyID int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := int64(len(s.Bindings) + 1)
	s.Bindings = append(s.Bindings, models.AdminBinding{
		ID:         id,
		UserID:     userID,
		PropertyID: propertyID,
		Active:     true,
		CreatedAt:  time.Now(),
	})
	return id, nil
}

func (s *InMemory) InsertAvailability(_ context.Context, days []models.AvailabilityDay) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailAvailability {
		return dErrors.New(dErrors.CodeInternal, "availability store unavailable")
	}
	s.Availability = append(s.Availability, days...)
	return nil
}

// SeedReference fills departments and unit types; test setup helper.
func (s *InMemory) SeedReference(departments []models.Department, unitTypes []models.UnitType) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, d := range departments {
		s.Departments[d.ID] = d
	}
	for _, u := range unitTypes {
		s.UnitTypes[u.ID] = u
	}
}
