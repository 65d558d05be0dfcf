package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	apperrors "varmepumpe/internal/errors"
	"varmepumpe/internal/model"
)

func profileInput(company, org string) InstallerProfileInput {
	return InstallerProfileInput{
		CompanyName:   company,
		OrgNumber:     org,
		ContactPerson: "Ola Nordmann",
		Email:         "post@example.no",
		Phone:         "12345678",
		County:        "Vestland",
		Municipality:  "Bergen",
	}
}

func TestInstallerService_StatusTransitions(t *testing.T) {
	ctx := context.Background()
	store := setupStore(t)
	svc := NewInstallerService(store, testLogger())

	inst := seedInstaller(t, store, installerFixture{name: "a", orgNumber: "111111111", approved: false, active: true})

	pending, err := svc.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "pending", pending[0].Status())

	msg, err := svc.Approve(ctx, inst.ID, true)
	require.NoError(t, err)
	assert.Equal(t, "installer approved", msg.Message)

	off, on := false, true
	msg, err = svc.SetStatus(ctx, inst.ID, InstallerStatusInput{Active: &off})
	require.NoError(t, err)
	assert.Equal(t, "installer deactivated", msg.Message)

	got, err := svc.Get(ctx, inst.ID)
	require.NoError(t, err)
	assert.Equal(t, "deactivated", got.Status())

	msg, err = svc.SetStatus(ctx, inst.ID, InstallerStatusInput{Active: &on})
	require.NoError(t, err)
	assert.Equal(t, "installer activated", msg.Message)

	got, err = svc.Get(ctx, inst.ID)
	require.NoError(t, err)
	assert.Equal(t, "approved", got.Status())

	pending, err = svc.ListPending(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestInstallerService_SetStatusErrors(t *testing.T) {
	ctx := context.Background()
	svc := NewInstallerService(setupStore(t), testLogger())

	_, err := svc.SetStatus(ctx, 1, InstallerStatusInput{})
	var verr *apperrors.ValidationError
	assert.ErrorAs(t, err, &verr)

	_, err = svc.Approve(ctx, 404, true)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestInstallerService_UpdateProfileUniqueness(t *testing.T) {
	ctx := context.Background()
	store := setupStore(t)
	svc := NewInstallerService(store, testLogger())

	a := seedInstaller(t, store, installerFixture{name: "a", orgNumber: "111111111", approved: true, active: true})
	seedInstaller(t, store, installerFixture{name: "b", orgNumber: "222222222", approved: true, active: true})

	// keeping its own org number is allowed
	updated, err := svc.UpdateProfile(ctx, a.UserID, profileInput("a AS", "111111111"))
	require.NoError(t, err)
	assert.Equal(t, "Bergen", updated.Municipality)

	_, err = svc.UpdateProfile(ctx, a.UserID, profileInput("a AS", "222222222"))
	var conflict *apperrors.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "orgNumber", conflict.Field)

	_, err = svc.UpdateProfile(ctx, a.UserID, profileInput("b AS", "111111111"))
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "companyName", conflict.Field)

	_, err = svc.UpdateProfile(ctx, a.UserID, profileInput("a AS", "12345"))
	var verr *apperrors.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestInstallerService_Create(t *testing.T) {
	ctx := context.Background()
	store := setupStore(t)
	svc := NewInstallerService(store, testLogger())

	seedInstaller(t, store, installerFixture{name: "taken", orgNumber: "222222222", approved: true, active: true})

	customer := &model.User{Username: "kari", Email: "kari@example.no", PasswordHash: "x", Role: model.RoleCustomer}
	require.NoError(t, store.Users().Create(ctx, customer))

	_, err := svc.Create(ctx, customer.ID, profileInput("taken AS", "333333333"))
	var conflict *apperrors.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "companyName", conflict.Field)

	_, err = svc.Create(ctx, customer.ID, profileInput("Kari Varme AS", "222222222"))
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "orgNumber", conflict.Field)

	_, err = svc.Create(ctx, customer.ID, profileInput("Kari Varme AS", "123"))
	var verr *apperrors.ValidationError
	require.ErrorAs(t, err, &verr)

	// failed attempts leave the account untouched
	user, err := store.Users().FindByID(ctx, customer.ID)
	require.NoError(t, err)
	assert.Equal(t, model.RoleCustomer, user.Role)

	inst, err := svc.Create(ctx, customer.ID, profileInput("Kari Varme AS", "333333333"))
	require.NoError(t, err)
	assert.Equal(t, customer.ID, inst.UserID)
	assert.False(t, inst.Approved)
	assert.True(t, inst.Active)
	assert.Equal(t, "pending", inst.Status())

	user, err = store.Users().FindByID(ctx, customer.ID)
	require.NoError(t, err)
	assert.Equal(t, model.RoleInstaller, user.Role)

	_, err = svc.Create(ctx, customer.ID, profileInput("Kari Varme 2 AS", "444444444"))
	assert.ErrorIs(t, err, apperrors.ErrProfileExists)

	_, err = svc.Create(ctx, 999, profileInput("Ghost AS", "555555555"))
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestInstallerService_AdminUpdate(t *testing.T) {
	ctx := context.Background()
	store := setupStore(t)
	svc := NewInstallerService(store, testLogger())
	inst := seedInstaller(t, store, installerFixture{name: "a", orgNumber: "111111111", approved: true, active: true})

	certified := true
	rating := decimal.RequireFromString("4.75")
	total := 12
	updated, err := svc.AdminUpdate(ctx, inst.ID, InstallerAdminInput{
		InstallerProfileInput: profileInput("a AS", "111111111"),
		Certified:             &certified,
		Rating:                &rating,
		TotalServices:         &total,
	})
	require.NoError(t, err)
	assert.True(t, updated.Certified)
	assert.True(t, updated.Rating.Equal(rating))
	assert.Equal(t, 12, updated.TotalServices)

	tooHigh := decimal.NewFromInt(6)
	_, err = svc.AdminUpdate(ctx, inst.ID, InstallerAdminInput{
		InstallerProfileInput: profileInput("a AS", "111111111"),
		Rating:                &tooHigh,
	})
	var verr *apperrors.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestInstallerService_ListAllIncludesUsername(t *testing.T) {
	ctx := context.Background()
	store := setupStore(t)
	svc := NewInstallerService(store, testLogger())
	seedInstaller(t, store, installerFixture{name: "varme", orgNumber: "111111111", approved: true, active: true})

	list, err := svc.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "varme", list[0].Username)
}

func TestInstallerService_DeleteRemovesDependents(t *testing.T) {
	ctx := context.Background()
	store := setupStore(t)
	svc := NewInstallerService(store, testLogger())
	requests := NewRequestService(store, nil, testLogger())

	inst := seedInstaller(t, store, installerFixture{name: "a", orgNumber: "111111111", approved: true, active: true})
	seedAreas(t, store, inst.ID, [2]string{"Vestland", "Bergen"}, [2]string{"Vestland", "Voss"})
	req := seedRequest(t, store, "Bergen")
	_, err := requests.ExpressInterest(ctx, req.ID, inst.ID, ContactInput{})
	require.NoError(t, err)

	uid := uint(77)
	customer := &model.Customer{UserID: &uid, FullName: "Kari", Email: "kari@example.no", Municipality: "Bergen"}
	require.NoError(t, store.Customers().Create(ctx, customer))
	require.NoError(t, store.CustomerContacts().Create(ctx, &model.CustomerContact{CustomerID: customer.ID, InstallerID: inst.ID, Status: "pending"}))

	require.NoError(t, svc.Delete(ctx, inst.ID))

	areas, err := store.ServiceAreas().ListByInstaller(ctx, inst.ID)
	require.NoError(t, err)
	assert.Empty(t, areas)

	contacts, err := store.RequestContacts().ListByRequest(ctx, req.ID)
	require.NoError(t, err)
	assert.Empty(t, contacts)

	customerContacts, err := store.CustomerContacts().ListByCustomer(ctx, customer.ID)
	require.NoError(t, err)
	assert.Empty(t, customerContacts)

	_, err = store.Users().FindByID(ctx, inst.UserID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// the request itself survives
	_, err = requests.Get(ctx, req.ID)
	assert.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(ctx, inst.ID), apperrors.ErrNotFound)
}
