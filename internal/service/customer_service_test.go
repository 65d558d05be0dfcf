package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "varmepumpe/internal/errors"
	"varmepumpe/internal/model"
)

func customerInput() CustomerInput {
	return CustomerInput{
		FullName:     "Kari Nordmann",
		Email:        "kari@example.no",
		Phone:        "98765432",
		County:       "Vestland",
		Municipality: "Bergen",
	}
}

func TestCustomerService_CreateOnePerUser(t *testing.T) {
	ctx := context.Background()
	svc := NewCustomerService(setupStore(t), testLogger())

	customer, err := svc.Create(ctx, 7, customerInput())
	require.NoError(t, err)
	assert.True(t, customer.SubscriptionActive)
	require.NotNil(t, customer.UserID)
	assert.Equal(t, uint(7), *customer.UserID)

	_, err = svc.Create(ctx, 7, customerInput())
	assert.ErrorIs(t, err, apperrors.ErrProfileExists)

	got, err := svc.GetByUser(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, customer.ID, got.ID)

	_, err = svc.GetByUser(ctx, 8)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCustomerService_UpdateAndSubscription(t *testing.T) {
	ctx := context.Background()
	svc := NewCustomerService(setupStore(t), testLogger())

	customer, err := svc.Create(ctx, 7, customerInput())
	require.NoError(t, err)

	input := customerInput()
	input.Municipality = "Voss"
	updated, err := svc.Update(ctx, customer.ID, input)
	require.NoError(t, err)
	assert.Equal(t, "Voss", updated.Municipality)

	off, err := svc.SetSubscription(ctx, customer.ID, false)
	require.NoError(t, err)
	assert.False(t, off.SubscriptionActive)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.False(t, list[0].SubscriptionActive)
}

func TestCustomerService_HeatPumpOwnership(t *testing.T) {
	ctx := context.Background()
	svc := NewCustomerService(setupStore(t), testLogger())

	customer, err := svc.Create(ctx, 7, customerInput())
	require.NoError(t, err)

	due := time.Date(2027, 3, 1, 0, 0, 0, 0, time.UTC)
	pump, err := svc.AddHeatPump(ctx, 7, model.RoleCustomer, HeatPumpInput{
		CustomerID: customer.ID, Brand: "Mitsubishi", Model: "Hero 2.0", NextServiceDue: &due,
	})
	require.NoError(t, err)
	assert.Equal(t, customer.ID, pump.CustomerID)

	_, err = svc.AddHeatPump(ctx, 8, model.RoleCustomer, HeatPumpInput{CustomerID: customer.ID, Brand: "Daikin", Model: "Stylish"})
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	_, err = svc.AddHeatPump(ctx, 1, model.RoleAdmin, HeatPumpInput{CustomerID: customer.ID, Brand: "Daikin", Model: "Stylish"})
	require.NoError(t, err)

	pumps, err := svc.ListHeatPumps(ctx, 7, model.RoleCustomer, customer.ID)
	require.NoError(t, err)
	assert.Len(t, pumps, 2)

	_, err = svc.ListHeatPumps(ctx, 8, model.RoleCustomer, customer.ID)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func TestCustomerService_ContactInstallerAndDelete(t *testing.T) {
	ctx := context.Background()
	store := setupStore(t)
	svc := NewCustomerService(store, testLogger())
	inst := seedInstaller(t, store, installerFixture{name: "a", orgNumber: "111111111", approved: true, active: true})

	customer, err := svc.Create(ctx, 7, customerInput())
	require.NoError(t, err)
	_, err = svc.AddHeatPump(ctx, 7, model.RoleCustomer, HeatPumpInput{CustomerID: customer.ID, Brand: "Panasonic", Model: "Nordic"})
	require.NoError(t, err)

	contact, err := svc.ContactInstaller(ctx, 7, CustomerContactInput{InstallerID: inst.ID, Notes: "Trenger service"})
	require.NoError(t, err)
	assert.Equal(t, "pending", contact.Status)

	_, err = svc.ContactInstaller(ctx, 7, CustomerContactInput{InstallerID: 999})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	require.NoError(t, svc.Delete(ctx, customer.ID))

	pumps, err := store.HeatPumps().ListByCustomer(ctx, customer.ID)
	require.NoError(t, err)
	assert.Empty(t, pumps)
	contacts, err := store.CustomerContacts().ListByCustomer(ctx, customer.ID)
	require.NoError(t, err)
	assert.Empty(t, contacts)

	assert.ErrorIs(t, svc.Delete(ctx, customer.ID), apperrors.ErrNotFound)
}
