package repository

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"varmepumpe/internal/db"
	"varmepumpe/internal/model"
)

func setupStore(t *testing.T) (Store, *gorm.DB) {
	t.Helper()
	gdb, err := db.OpenInMemory()
	require.NoError(t, err)
	return NewStore(gdb), gdb
}

func seedInstaller(t *testing.T, store Store, name, org string, approved, active bool) *model.Installer {
	t.Helper()
	ctx := context.Background()
	user := &model.User{Username: name, Email: name + "@example.no", PasswordHash: "x", Role: model.RoleInstaller}
	require.NoError(t, store.Users().Create(ctx, user))
	inst := &model.Installer{
		UserID:        user.ID,
		CompanyName:   name,
		OrgNumber:     org,
		ContactPerson: "Kari",
		Email:         name + "@example.no",
		Phone:         "12345678",
		Rating:        decimal.NewFromFloat(4.5),
		Approved:      approved,
		Active:        active,
	}
	require.NoError(t, store.Installers().Create(ctx, inst))
	// gorm skips zero values that carry a default tag on create
	require.NoError(t, store.Installers().UpdateFields(ctx, inst.ID, map[string]interface{}{"approved": approved, "active": active}))
	return inst
}

func TestInstallerRepository_MatchAreasFiltersUnmatchable(t *testing.T) {
	ctx := context.Background()
	store, _ := setupStore(t)

	ok := seedInstaller(t, store, "ok", "111111111", true, true)
	pending := seedInstaller(t, store, "pending", "222222222", false, true)
	inactive := seedInstaller(t, store, "inactive", "333333333", true, false)

	areas := []model.ServiceArea{
		{InstallerID: ok.ID, County: "Vestland", Municipality: "Bergen"},
		{InstallerID: pending.ID, County: "Vestland", Municipality: "Bergen"},
		{InstallerID: inactive.ID, County: "Vestland", Municipality: "Bergen"},
	}
	require.NoError(t, store.ServiceAreas().CreateBatch(ctx, areas))

	hits, err := store.Installers().MatchAreas(ctx, "municipality", "Bergen")
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, ok.ID, hits[0].InstallerID)
	assert.Equal(t, "Vestland", hits[0].County)
}

func TestInstallerRepository_RejectsUnknownColumn(t *testing.T) {
	store, _ := setupStore(t)

	_, err := store.Installers().MatchAreas(context.Background(), "1=1; --", "x")
	assert.Error(t, err)
	_, err = store.Installers().MatchPrimary(context.Background(), "org_number", "x")
	assert.Error(t, err)
}

func TestInstallerRepository_ListIncludesUsername(t *testing.T) {
	store, _ := setupStore(t)
	seedInstaller(t, store, "varme", "444444444", true, true)

	listings, err := store.Installers().List(context.Background())
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, "varme", listings[0].Username)
}

func TestStore_WithTransactionRollsBack(t *testing.T) {
	ctx := context.Background()
	store, _ := setupStore(t)

	err := store.WithTransaction(ctx, func(ctx context.Context, tx Store) error {
		if err := tx.Users().Create(ctx, &model.User{Username: "a", Email: "a@a.no", PasswordHash: "x", Role: model.RoleCustomer}); err != nil {
			return err
		}
		return tx.Users().Create(ctx, &model.User{Username: "a", Email: "b@b.no", PasswordHash: "x", Role: model.RoleCustomer})
	})
	require.Error(t, err)

	users, err := store.Users().List(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestUserRepository_UpdateFieldsClearsNullable(t *testing.T) {
	ctx := context.Background()
	store, _ := setupStore(t)
	token := "abc"
	user := &model.User{Username: "u", Email: "u@u.no", PasswordHash: "x", Role: model.RoleCustomer, ResetToken: &token}
	require.NoError(t, store.Users().Create(ctx, user))

	require.NoError(t, store.Users().UpdateFields(ctx, user.ID, map[string]interface{}{"reset_token": nil, "reset_token_expiry": nil}))

	got, err := store.Users().FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Nil(t, got.ResetToken)

	_, err = store.Users().FindByResetToken(ctx, "abc")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUserRepository_UpdateFieldsMissingRow(t *testing.T) {
	store, _ := setupStore(t)

	err := store.Users().UpdateFields(context.Background(), 99, map[string]interface{}{"first_name": "x"})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestPostalCodeRepository_Search(t *testing.T) {
	ctx := context.Background()
	store, _ := setupStore(t)
	require.NoError(t, store.PostalCodes().CreateBatch(ctx, []model.PostalCode{
		{PostalCode: "5003", PostPlace: "Bergen", Municipality: "Bergen", County: "Vestland"},
		{PostalCode: "0150", PostPlace: "Oslo", Municipality: "Oslo", County: "Oslo"},
		{PostalCode: "2000", PostPlace: "Lillestrøm", Municipality: "Lillestrøm", County: "Akershus"},
	}))

	got, err := store.PostalCodes().Search(ctx, "berg", 50)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "5003", got[0].PostalCode)

	got, err = store.PostalCodes().Search(ctx, "0", 1)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestServiceRequestRepository_ListByMunicipalitiesEmpty(t *testing.T) {
	store, _ := setupStore(t)

	got, err := store.ServiceRequests().ListByMunicipalities(context.Background(), nil)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
