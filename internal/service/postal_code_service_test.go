package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "varmepumpe/internal/errors"
	"varmepumpe/internal/reference"
	"varmepumpe/internal/storage"
)

func newPostalCodeService(t *testing.T, archiver storage.Archiver) *postalCodeService {
	t.Helper()
	return NewPostalCodeService(setupStore(t).PostalCodes(), archiver, testLogger()).(*postalCodeService)
}

func TestPostalCodeService_ImportReportsBadRows(t *testing.T) {
	ctx := context.Background()
	svc := newPostalCodeService(t, nil)

	result, err := svc.Import(ctx, []PostalCodeRow{
		{PostalCode: "0150", PostPlace: "Oslo", Municipality: "Oslo", County: "Oslo"},
		{PostalCode: "5003", PostPlace: "Bergen", Municipality: "Bergen", County: "Vestland"},
		{PostalCode: "", PostPlace: "Voss", Municipality: "Voss", County: "Vestland"},
		{PostalCode: "4006", PostPlace: "Stavanger", Municipality: "Stavanger", County: "Rogaland"},
	})
	require.NoError(t, err)

	assert.Equal(t, 3, result.Created)
	assert.Equal(t, 0, result.Updated)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "row 3")

	codes, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, codes, 3)
}

func TestPostalCodeService_ImportUpdatesById(t *testing.T) {
	ctx := context.Background()
	svc := newPostalCodeService(t, nil)

	pc, err := svc.Create(ctx, PostalCodeInput{PostalCode: "5003", PostPlace: "Bergen", Municipality: "Bergen", County: "Hordaland"})
	require.NoError(t, err)

	result, err := svc.Import(ctx, []PostalCodeRow{
		{ID: pc.ID, PostalCode: "5003", PostPlace: "Bergen", Municipality: "Bergen", County: "Vestland"},
		{PostalCode: "5003", PostPlace: "Bergen", Municipality: "Bergen", County: "Vestland"},
		{ID: 999, PostalCode: "5700", PostPlace: "Voss", Municipality: "Voss", County: "Vestland"},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Updated)
	assert.Equal(t, 1, result.Created)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "row 2")

	got, err := svc.GetByCode(ctx, "5003")
	require.NoError(t, err)
	assert.Equal(t, "Vestland", got.County)
}

func TestPostalCodeService_ImportCapsErrors(t *testing.T) {
	rows := make([]PostalCodeRow, 15)
	result, err := newPostalCodeService(t, nil).Import(context.Background(), rows)
	require.NoError(t, err)
	assert.Len(t, result.Errors, maxImportErrors)
	assert.Zero(t, result.Created)
}

func TestPostalCodeService_CRUD(t *testing.T) {
	ctx := context.Background()
	svc := newPostalCodeService(t, nil)

	pc, err := svc.Create(ctx, PostalCodeInput{PostalCode: "0150", PostPlace: "Oslo", Municipality: "Oslo", County: "Oslo"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, PostalCodeInput{PostalCode: "0150", PostPlace: "Oslo", Municipality: "Oslo", County: "Oslo"})
	var conflict *apperrors.ConflictError
	assert.ErrorAs(t, err, &conflict)

	_, err = svc.Create(ctx, PostalCodeInput{PostalCode: "15", PostPlace: "Oslo", Municipality: "Oslo", County: "Oslo"})
	var verr *apperrors.ValidationError
	assert.ErrorAs(t, err, &verr)

	updated, err := svc.Update(ctx, pc.ID, PostalCodeInput{PostalCode: "0151", PostPlace: "Oslo", Municipality: "Oslo", County: "Oslo"})
	require.NoError(t, err)
	assert.Equal(t, "0151", updated.PostalCode)

	require.NoError(t, svc.Delete(ctx, pc.ID))
	assert.ErrorIs(t, svc.Delete(ctx, pc.ID), apperrors.ErrNotFound)
	_, err = svc.GetByCode(ctx, "0151")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestPostalCodeService_SeedSearchExport(t *testing.T) {
	ctx := context.Background()
	svc := newPostalCodeService(t, nil)

	n, err := svc.EnsureSeeded(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(reference.DefaultPostalCodes), n)

	n, err = svc.EnsureSeeded(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	hits, err := svc.Search(ctx, "bergen")
	require.NoError(t, err)
	assert.NotEmpty(t, hits)
	assert.LessOrEqual(t, len(hits), SearchLimit)

	empty, err := svc.Search(ctx, "  ")
	require.NoError(t, err)
	assert.Empty(t, empty)

	var buf bytes.Buffer
	require.NoError(t, svc.Export(ctx, &buf))
	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "postalCode", "postPlace", "municipality", "county"}, records[0])
	assert.Len(t, records, len(reference.DefaultPostalCodes)+1)
}

func TestPostalCodeService_Archive(t *testing.T) {
	ctx := context.Background()

	_, err := newPostalCodeService(t, nil).Archive(ctx)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	archiver := storage.NewMemoryArchiver()
	svc := newPostalCodeService(t, archiver)
	svc.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }
	_, err = svc.Create(ctx, PostalCodeInput{PostalCode: "0150", PostPlace: "Oslo", Municipality: "Oslo", County: "Oslo"})
	require.NoError(t, err)

	result, err := svc.Archive(ctx)
	require.NoError(t, err)
	assert.Equal(t, "exports/postal-codes-20260102T030405Z.csv", result.Key)
	assert.Equal(t, "memory://"+result.Key, result.URL)

	body, ok := archiver.Object(result.Key)
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(string(body), "id,postalCode"))
}
