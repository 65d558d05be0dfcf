package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"varmepumpe/internal/model"
)

func TestStatsService_AdminStats(t *testing.T) {
	ctx := context.Background()
	store := setupStore(t)
	customers := NewCustomerService(store, testLogger())

	seedInstaller(t, store, installerFixture{name: "a", orgNumber: "111111111", approved: true, active: true})
	seedInstaller(t, store, installerFixture{name: "b", orgNumber: "222222222", approved: false, active: true})
	seedInstaller(t, store, installerFixture{name: "c", orgNumber: "333333333", approved: false, active: true})

	seedRequest(t, store, "Bergen")
	closed := seedRequest(t, store, "Voss")
	require.NoError(t, store.ServiceRequests().SetStatus(ctx, closed.ID, model.RequestStatusClosed))

	for uid := uint(1); uid <= 3; uid++ {
		_, err := customers.Create(ctx, uid, customerInput())
		require.NoError(t, err)
	}
	lapsed, err := customers.GetByUser(ctx, 3)
	require.NoError(t, err)
	_, err = customers.SetSubscription(ctx, lapsed.ID, false)
	require.NoError(t, err)

	stats, err := NewStatsService(store).AdminStats(ctx)
	require.NoError(t, err)

	assert.Equal(t, &model.AdminStats{
		TotalCustomers:      3,
		ActiveInstallers:    1,
		PendingApprovals:    2,
		OpenServiceRequests: 1,
		MonthlyRevenue:      2 * SubscriptionPrice,
	}, stats)
}
