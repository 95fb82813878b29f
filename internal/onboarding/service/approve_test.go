package service_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"innflow/internal/audit"
	idmodels "innflow/internal/identity/models"
	"innflow/internal/onboarding/models"
	"innflow/internal/property/availability"
	dErrors "innflow/pkg/domain-errors"
)

func TestApproveProvisionsEverything(t *testing.T) {
	f := newFixture(t)
	adminID := f.addGlobalAdmin(t, "root@innflow.test")
	req := f.submit(t, "maya@example.com")
	_, err := f.svc.IngestImages(context.Background(), req.ID, uploads("front.jpg", "garden.png"))
	require.NoError(t, err)

	result, err := f.svc.Approve(context.Background(), adminID, req.ID)
	require.NoError(t, err)

	assert.True(t, result.UserCreated)
	assert.True(t, result.WelcomeScheduled)
	assert.Empty(t, result.Warnings)
	assert.Equal(t, "Seaside Loft", result.PropertyName)

	// Identity: new account carrying the request's credentials and the
	// operator role.
	user, err := f.users.FindByEmail(context.Background(), "maya@example.com")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, result.UserID, user.ID)
	roles, err := f.users.Roles(context.Background(), user.ID)
	require.NoError(t, err)
	assert.True(t, idmodels.HasRole(roles, idmodels.RolePropertyAdmin))

	// Property starts inactive and unverified, bound to the new operator.
	prop := f.props.Properties[result.PropertyID]
	assert.Equal(t, "Seaside Loft", prop.Name)
	assert.False(t, prop.Active)
	assert.False(t, prop.Verified)
	require.Len(t, f.props.Bindings, 1)
	assert.Equal(t, result.UserID, f.props.Bindings[0].UserID)

	// Calendar opened for a full year at the base price.
	assert.Len(t, f.props.Availability, availability.DefaultHorizonDays)
	assert.Equal(t, 120.0, f.props.Availability[0].Price)

	// Images relocated out of the temporary namespace.
	permanent := []string{
		fmt.Sprintf("properties/%d/front.webp", result.PropertyID),
		fmt.Sprintf("properties/%d/garden.webp", result.PropertyID),
	}
	assert.Equal(t, permanent, f.props.Properties[result.PropertyID].ImageKeys)
	for _, key := range permanent {
		assert.True(t, f.objects.Has(key))
	}
	assert.Empty(t, f.objects.KeysWithPrefix(fmt.Sprintf("requests/%d", req.ID)))

	// Request closed, welcome on its way, decision recorded.
	stored, err := f.requests.FindByID(context.Background(), req.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, stored.Status)
	require.NotNil(t, stored.CreatedPropertyID)
	assert.Equal(t, result.PropertyID, *stored.CreatedPropertyID)

	welcome := f.queue.To("maya@example.com")
	require.NotEmpty(t, welcome)
	assert.Contains(t, welcome[len(welcome)-1].Body, "/login")

	events, err := f.auditLog.ListByRequest(context.Background(), req.ID)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, audit.ActionApproved, events[0].Action)
}

func TestApproveUpgradesExistingUser(t *testing.T) {
	f := newFixture(t)
	adminID := f.addGlobalAdmin(t, "root@innflow.test")
	existing, err := f.users.Create(context.Background(), &idmodels.User{
		Email: "maya@example.com", FullName: "Maya Petrova", PasswordHash: "x",
	})
	require.NoError(t, err)
	require.NoError(t, f.users.AddRole(context.Background(), existing, idmodels.RoleEndUser))

	req := f.submit(t, "maya@example.com")
	result, err := f.svc.Approve(context.Background(), adminID, req.ID)
	require.NoError(t, err)

	assert.False(t, result.UserCreated)
	assert.Equal(t, existing, result.UserID)
	roles, err := f.users.Roles(context.Background(), existing)
	require.NoError(t, err)
	assert.True(t, idmodels.HasRole(roles, idmodels.RolePropertyAdmin))
	assert.False(t, idmodels.HasRole(roles, idmodels.RoleEndUser))

	// No welcome for an account that already exists; only the intake
	// confirmation reached the applicant.
	assert.False(t, result.WelcomeScheduled)
	assert.Len(t, f.queue.To("maya@example.com"), 1)
}

func TestApproveRefusesExistingOperator(t *testing.T) {
	f := newFixture(t)
	adminID := f.addGlobalAdmin(t, "root@innflow.test")
	operator, err := f.users.Create(context.Background(), &idmodels.User{
		Email: "maya@example.com", FullName: "Maya Petrova", PasswordHash: "x",
	})
	require.NoError(t, err)
	require.NoError(t, f.users.AddRole(context.Background(), operator, idmodels.RolePropertyAdmin))

	req := f.submit(t, "maya@example.com")
	_, err = f.svc.Approve(context.Background(), adminID, req.ID)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeConflict))

	// The request survives for a reviewer to reject with an explanation.
	stored, err := f.requests.FindByID(context.Background(), req.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, stored.Status)
}

func TestApproveOnlyOncePerRequest(t *testing.T) {
	f := newFixture(t)
	adminID := f.addGlobalAdmin(t, "root@innflow.test")
	req := f.submit(t, "maya@example.com")

	_, err := f.svc.Approve(context.Background(), adminID, req.ID)
	require.NoError(t, err)

	_, err = f.svc.Approve(context.Background(), adminID, req.ID)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeConflict))
}

func TestApproveWaitsForImagePipeline(t *testing.T) {
	f := newFixture(t)
	adminID := f.addGlobalAdmin(t, "root@innflow.test")
	req := f.submit(t, "maya@example.com")
	require.NoError(t, f.requests.SetImageStatus(context.Background(), req.ID, models.ImageProcessing))

	_, err := f.svc.Approve(context.Background(), adminID, req.ID)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeConflict))
}

func TestApproveScopedToDepartment(t *testing.T) {
	f := newFixture(t)
	coastalID := f.addDepartmentAdmin(t, "coastal@innflow.test", 1)
	mountainID := f.addDepartmentAdmin(t, "mountain@innflow.test", 2)
	req := f.submit(t, "maya@example.com") // department 1

	_, err := f.svc.Approve(context.Background(), mountainID, req.ID)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeForbidden))

	_, err = f.svc.Approve(context.Background(), coastalID, req.ID)
	assert.NoError(t, err)
}

func TestApproveDegradesBestEffortSteps(t *testing.T) {
	f := newFixture(t)
	adminID := f.addGlobalAdmin(t, "root@innflow.test")
	req := f.submit(t, "maya@example.com")
	_, err := f.svc.IngestImages(context.Background(), req.ID, uploads("front.jpg"))
	require.NoError(t, err)

	f.props.FailAvailability = true
	f.objects.FailMove = true
	f.queue.FailEnqueue = true

	result, err := f.svc.Approve(context.Background(), adminID, req.ID)
	require.NoError(t, err)

	assert.False(t, result.WelcomeScheduled)
	assert.Len(t, result.Warnings, 3)

	// The approval itself still committed.
	stored, err := f.requests.FindByID(context.Background(), req.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, stored.Status)
}
