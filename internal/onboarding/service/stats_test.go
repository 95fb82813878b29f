package service_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"innflow/internal/onboarding/models"
	"innflow/internal/onboarding/service"
	"innflow/internal/onboarding/service/mocks"
)

func TestStatisticsScopedByDepartment(t *testing.T) {
	f := newFixture(t)
	globalID := f.addGlobalAdmin(t, "root@innflow.test")
	coastalID := f.addDepartmentAdmin(t, "coastal@innflow.test", 1)

	f.submit(t, "one@example.com")
	second := submission("two@example.com")
	second.DepartmentID = 2
	_, err := f.svc.Submit(context.Background(), second)
	require.NoError(t, err)

	all, err := f.svc.Statistics(context.Background(), globalID)
	require.NoError(t, err)
	assert.Equal(t, 2, all.Total)
	assert.Equal(t, 2, all.ByStatus[models.StatusPending])
	assert.Equal(t, 1, all.ByDepartment[1])
	assert.Equal(t, 1, all.ByDepartment[2])
	assert.Equal(t, 2, all.Last7Days)

	scoped, err := f.svc.Statistics(context.Background(), coastalID)
	require.NoError(t, err)
	assert.Equal(t, 1, scoped.Total)
	assert.Equal(t, 1, scoped.ByDepartment[1])
	assert.Zero(t, scoped.ByDepartment[2])
}

func TestStatisticsReflectsDecisions(t *testing.T) {
	f := newFixture(t)
	adminID := f.addGlobalAdmin(t, "root@innflow.test")
	approved := f.submit(t, "one@example.com")
	rejected := f.submit(t, "two@example.com")

	_, err := f.svc.Approve(context.Background(), adminID, approved.ID)
	require.NoError(t, err)
	require.NoError(t, f.svc.Reject(context.Background(), adminID, rejected.ID, "incomplete"))

	stats, err := f.svc.Statistics(context.Background(), adminID)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.ByStatus[models.StatusApproved])
	assert.Equal(t, 1, stats.ByStatus[models.StatusRejected])
	assert.Zero(t, stats.ByStatus[models.StatusPending])
}

func TestStatisticsCacheFlow(t *testing.T) {
	ctrl := gomock.NewController(t)
	cache := mocks.NewMockCache(ctrl)

	f := newFixture(t, service.WithCache(cache))
	adminID := f.addGlobalAdmin(t, "root@innflow.test")
	f.submit(t, "one@example.com")

	// Cold cache: miss, aggregate, fill.
	gomock.InOrder(
		cache.EXPECT().Get(gomock.Any(), "onboarding:stats:global").Return(nil, nil),
		cache.EXPECT().Set(gomock.Any(), "onboarding:stats:global", gomock.Any(), 60*time.Second).Return(nil),
	)
	stats, err := f.svc.Statistics(context.Background(), adminID)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Total)

	// Warm cache: the stored value wins without touching the aggregate.
	cached, err := json.Marshal(&models.Statistics{Total: 99})
	require.NoError(t, err)
	cache.EXPECT().Get(gomock.Any(), "onboarding:stats:global").Return(cached, nil)

	stats, err = f.svc.Statistics(context.Background(), adminID)
	require.NoError(t, err)
	assert.Equal(t, 99, stats.Total)
}

func TestStatisticsSurvivesCacheOutage(t *testing.T) {
	ctrl := gomock.NewController(t)
	cache := mocks.NewMockCache(ctrl)
	cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, assert.AnError).AnyTimes()
	cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(assert.AnError).AnyTimes()

	f := newFixture(t, service.WithCache(cache))
	adminID := f.addGlobalAdmin(t, "root@innflow.test")
	f.submit(t, "one@example.com")

	stats, err := f.svc.Statistics(context.Background(), adminID)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Total)
}
