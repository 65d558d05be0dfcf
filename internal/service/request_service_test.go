package service

import (
	"context"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "varmepumpe/internal/errors"
	"varmepumpe/internal/metrics"
	"varmepumpe/internal/model"
)

func validRequestInput() CreateServiceRequestInput {
	return CreateServiceRequestInput{
		FullName:     "Kari Nordmann",
		Phone:        "98765432",
		Address:      "Storgata 1",
		PostalCode:   "5003",
		City:         "Bergen",
		County:       "Vestland",
		Municipality: "Bergen",
		ServiceType:  "maintenance",
	}
}

func TestRequestService_Create(t *testing.T) {
	ctx := context.Background()
	collector := metrics.NewCollector()
	svc := NewRequestService(setupStore(t), collector, testLogger())

	req, err := svc.Create(ctx, validRequestInput())
	require.NoError(t, err)
	assert.Equal(t, model.RequestStatusOpen, req.Status)
	assert.NotZero(t, req.ID)
	expected := `
# HELP varmepumpe_service_requests_created_total Service requests submitted by customers.
# TYPE varmepumpe_service_requests_created_total counter
varmepumpe_service_requests_created_total 1
`
	assert.NoError(t, testutil.CollectAndCompare(collector, strings.NewReader(expected), "varmepumpe_service_requests_created_total"))

	input := validRequestInput()
	input.Phone = ""
	_, err = svc.Create(ctx, input)
	var verr *apperrors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "phone")
}

func TestRequestService_ExpressInterestMovesToContacted(t *testing.T) {
	ctx := context.Background()
	store := setupStore(t)
	svc := NewRequestService(store, nil, testLogger())

	inst := seedInstaller(t, store, installerFixture{name: "a", orgNumber: "111111111", approved: true, active: true})
	req := seedRequest(t, store, "Bergen")

	quote := decimal.NewFromInt(2500)
	contact, err := svc.ExpressInterest(ctx, req.ID, inst.ID, ContactInput{Notes: "Kan komme tirsdag", QuoteAmount: &quote})
	require.NoError(t, err)
	assert.Equal(t, model.ContactStatusInterested, contact.Status)

	got, err := svc.Get(ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, model.RequestStatusContacted, got.Status)

	// a second contact is recorded and the status stays contacted
	_, err = svc.ExpressInterest(ctx, req.ID, inst.ID, ContactInput{})
	require.NoError(t, err)
	contacts, err := svc.ListContacts(ctx, req.ID)
	require.NoError(t, err)
	assert.Len(t, contacts, 2)
}

func TestRequestService_ExpressInterestKeepsClosed(t *testing.T) {
	ctx := context.Background()
	store := setupStore(t)
	svc := NewRequestService(store, nil, testLogger())

	inst := seedInstaller(t, store, installerFixture{name: "a", orgNumber: "111111111", approved: true, active: true})
	req := seedRequest(t, store, "Bergen")
	require.NoError(t, store.ServiceRequests().SetStatus(ctx, req.ID, model.RequestStatusClosed))

	_, err := svc.ExpressInterest(ctx, req.ID, inst.ID, ContactInput{})
	require.NoError(t, err)
	got, err := svc.Get(ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, model.RequestStatusClosed, got.Status)
}

func TestRequestService_ExpressInterestUnknownRequest(t *testing.T) {
	svc := NewRequestService(setupStore(t), nil, testLogger())

	_, err := svc.ExpressInterest(context.Background(), 42, 1, ContactInput{})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestRequestService_ListForInstaller(t *testing.T) {
	ctx := context.Background()
	store := setupStore(t)
	svc := NewRequestService(store, nil, testLogger())

	inst := seedInstaller(t, store, installerFixture{name: "a", orgNumber: "111111111", county: "Oslo", municipality: "Oslo", approved: true, active: true})
	seedAreas(t, store, inst.ID, [2]string{"Vestland", "Bergen"}, [2]string{"Vestland", "Voss"})

	bergen := seedRequest(t, store, "Bergen")
	seedRequest(t, store, "Oslo")
	voss := seedRequest(t, store, "Voss")

	list, err := svc.ListForInstaller(ctx, inst.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	ids := []uint{list[0].ID, list[1].ID}
	assert.ElementsMatch(t, []uint{bergen.ID, voss.ID}, ids)

	none := seedInstaller(t, store, installerFixture{name: "b", orgNumber: "222222222", approved: true, active: true})
	list, err = svc.ListForInstaller(ctx, none.ID)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestRequestService_Update(t *testing.T) {
	ctx := context.Background()
	store := setupStore(t)
	svc := NewRequestService(store, nil, testLogger())
	req := seedRequest(t, store, "Bergen")

	closed := model.RequestStatusClosed
	notes := "Avtalt service"
	updated, err := svc.Update(ctx, req.ID, ServiceRequestUpdate{Status: &closed, Description: &notes})
	require.NoError(t, err)
	assert.Equal(t, model.RequestStatusClosed, updated.Status)
	assert.Equal(t, "Avtalt service", updated.Description)
	assert.Equal(t, "Kari Nordmann", updated.FullName)

	bogus := model.RequestStatus("archived")
	_, err = svc.Update(ctx, req.ID, ServiceRequestUpdate{Status: &bogus})
	var verr *apperrors.ValidationError
	assert.ErrorAs(t, err, &verr)

	_, err = svc.Update(ctx, 999, ServiceRequestUpdate{Status: &closed})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestRequestService_DeleteRemovesContacts(t *testing.T) {
	ctx := context.Background()
	store := setupStore(t)
	svc := NewRequestService(store, nil, testLogger())

	inst := seedInstaller(t, store, installerFixture{name: "a", orgNumber: "111111111", approved: true, active: true})
	req := seedRequest(t, store, "Bergen")
	_, err := svc.ExpressInterest(ctx, req.ID, inst.ID, ContactInput{})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, req.ID))

	_, err = svc.Get(ctx, req.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	contacts, err := store.RequestContacts().ListByRequest(ctx, req.ID)
	require.NoError(t, err)
	assert.Empty(t, contacts)

	assert.ErrorIs(t, svc.Delete(ctx, req.ID), apperrors.ErrNotFound)
}
