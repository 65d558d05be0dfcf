package service

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"varmepumpe/internal/db"
	"varmepumpe/internal/model"
	"varmepumpe/internal/repository"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func setupStore(t *testing.T) repository.Store {
	t.Helper()
	gdb, err := db.OpenInMemory()
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return repository.NewStore(gdb)
}

type installerFixture struct {
	name         string
	orgNumber    string
	county       string
	municipality string
	rating       float64
	approved     bool
	active       bool
}

func seedInstaller(t *testing.T, store repository.Store, f installerFixture) *model.Installer {
	t.Helper()
	ctx := context.Background()

	user := &model.User{
		Username:     f.name,
		Email:        f.name + "@example.no",
		PasswordHash: "x",
		Role:         model.RoleInstaller,
	}
	require.NoError(t, store.Users().Create(ctx, user))

	inst := &model.Installer{
		UserID:        user.ID,
		CompanyName:   f.name + " AS",
		OrgNumber:     f.orgNumber,
		ContactPerson: "Ola Nordmann",
		Email:         f.name + "@example.no",
		Phone:         "12345678",
		County:        f.county,
		Municipality:  f.municipality,
		Rating:        decimal.NewFromFloat(f.rating),
		Approved:      f.approved,
		Active:        f.active,
	}
	require.NoError(t, store.Installers().Create(ctx, inst))
	// gorm skips zero values that carry a default tag on create
	require.NoError(t, store.Installers().UpdateFields(ctx, inst.ID, map[string]interface{}{
		"approved": f.approved,
		"active":   f.active,
	}))
	inst.Approved, inst.Active = f.approved, f.active
	return inst
}

func seedAreas(t *testing.T, store repository.Store, installerID uint, pairs ...[2]string) {
	t.Helper()
	areas := make([]model.ServiceArea, 0, len(pairs))
	for _, p := range pairs {
		areas = append(areas, model.ServiceArea{InstallerID: installerID, County: p[0], Municipality: p[1]})
	}
	require.NoError(t, store.ServiceAreas().CreateBatch(context.Background(), areas))
}

func seedRequest(t *testing.T, store repository.Store, municipality string) *model.ServiceRequest {
	t.Helper()
	req := &model.ServiceRequest{
		FullName:     "Kari Nordmann",
		Phone:        "98765432",
		Address:      "Storgata 1",
		PostalCode:   "5003",
		City:         "Bergen",
		County:       "Vestland",
		Municipality: municipality,
		ServiceType:  "maintenance",
		Status:       model.RequestStatusOpen,
	}
	require.NoError(t, store.ServiceRequests().Create(context.Background(), req))
	return req
}
