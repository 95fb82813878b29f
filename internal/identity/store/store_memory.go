package store

import (
	"context"
	"strings"
	"sync"
	"time"

	"innflow/internal/identity/models"
	dErrors "innflow/pkg/domain-errors"
)

// InMemory is the test fake for the identity store.
type InMemory struct {
	mu       sync.RWMutex
	nextID   int64
	users    map[int64]models.User
	roles    map[int64]map[models.Role]bool
	bindings []models.DepartmentBinding
}

func NewInMemory() *InMemory {
	return &InMemory{
		nextID: 1,
		users:  make(map[int64]models.User),
		roles:  make(map[int64]map[models.Role]bool),
	}
}

func (s *InMemory) FindByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			copied := u
			return &copied, nil
		}
	}
	return nil, dErrors.New(dErrors.CodeNotFound, "user not found")
}

func (s *InMemory) FindByID(_ context.Context, id int64) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return nil, dErrors.New(dErrors.CodeNotFound, "user not found")
	}
	copied := u
	return &copied, nil
}

func (s *InMemory) Create(_ context.Context, user *models.User) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if strings.EqualFold(u.Email, user.Email) {
			return 0, dErrors.New(dErrors.CodeConflict, "email already registered")
		}
	}
	id := s.nextID
	s.nextID++
	stored := *user
	stored.ID = id
	stored.Email = strings.ToLower(stored.Email)
	stored.CreatedAt = time.Now()
	s.users[id] = stored
	return id, nil
}

func (s *InMemory) Roles(_ context.Context, userID int64) ([]models.Role, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var roles []models.Role
	for r := range s.roles[userID] {
		roles = append(roles, r)
	}
	return roles, nil
}

func (s *InMemory) AddRole(_ context.Context, userID int64, role models.Role) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.roles[userID] == nil {
		s.roles[userID] = make(map[models.Role]bool)
	}
	s.roles[userID][role] = true
	return nil
}

func (s *InMemory) RemoveRole(_ context.Context, userID int64, role models.Role) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.roles[userID], role)
	return nil
}

func (s *InMemory) ActiveDepartment(_ context.Context, userID int64) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, b := range s.bindings {
		if b.UserID == userID && b.Active {
			return b.DepartmentID, nil
		}
	}
	return 0, dErrors.New(dErrors.CodeNotFound, "no active department binding")
}

func (s *InMemory) DepartmentAdmins(_ context.Context, departmentID int64) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var users []models.User
	for _, b := range s.bindings {
		if b.DepartmentID == departmentID && b.Active {
			if u, ok := s.users[b.UserID]; ok {
				users = append(users, u)
			}
		}
	}
	return users, nil
}

// BindDepartment attaches a department binding; test setup helper.
func (s *InMemory) BindDepartment(userID, departmentID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bindings = append(s.bindings, models.DepartmentBinding{
		ID:           int64(len(s.bindings) + 1),
		UserID:       userID,
		DepartmentID: departmentID,
		Active:       true,
		CreatedAt:    time.Now(),
	})
}
