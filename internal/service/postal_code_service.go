package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	apperrors "varmepumpe/internal/errors"
	"varmepumpe/internal/model"
	"varmepumpe/internal/reference"
	"varmepumpe/internal/repository"
	"varmepumpe/internal/storage"
	"varmepumpe/internal/validation"
)

const (
	// SearchLimit caps postal code search results.
	SearchLimit = 50
	// maxImportErrors caps the row errors reported by Import.
	maxImportErrors = 10
)

// PostalCodeInput is a postal code form.
type PostalCodeInput struct {
	PostalCode   string `json:"postalCode" validate:"required,postalcode"`
	PostPlace    string `json:"postPlace" validate:"required"`
	Municipality string `json:"municipality" validate:"required"`
	County       string `json:"county" validate:"required"`
}

// PostalCodeRow is one row of a bulk import. A positive ID updates that row.
type PostalCodeRow struct {
	ID           uint   `json:"id"`
	PostalCode   string `json:"postalCode"`
	PostPlace    string `json:"postPlace"`
	Municipality string `json:"municipality"`
	County       string `json:"county"`
}

// ImportRequest wraps the rows of a bulk import.
type ImportRequest struct {
	Data []PostalCodeRow `json:"data" validate:"required"`
}

// ImportResult summarises a bulk import.
type ImportResult struct {
	Created int      `json:"created"`
	Updated int      `json:"updated"`
	Errors  []string `json:"errors,omitempty"`
}

// ArchiveResult points at an uploaded export.
type ArchiveResult struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

// PostalCodeService manages the postal code reference table.
type PostalCodeService interface {
	List(ctx context.Context) ([]model.PostalCode, error)
	Search(ctx context.Context, query string) ([]model.PostalCode, error)
	GetByCode(ctx context.Context, code string) (*model.PostalCode, error)
	Create(ctx context.Context, input PostalCodeInput) (*model.PostalCode, error)
	Update(ctx context.Context, id uint, input PostalCodeInput) (*model.PostalCode, error)
	Delete(ctx context.Context, id uint) error
	Import(ctx context.Context, rows []PostalCodeRow) (*ImportResult, error)
	Export(ctx context.Context, w io.Writer) error
	Archive(ctx context.Context) (*ArchiveResult, error)
	EnsureSeeded(ctx context.Context) (int, error)
}

type postalCodeService struct {
	codes    repository.PostalCodeRepository
	archiver storage.Archiver
	logger   *slog.Logger
	now      func() time.Time
}

// NewPostalCodeService creates a new postal code service. archiver may be nil
// when no bucket is configured.
func NewPostalCodeService(codes repository.PostalCodeRepository, archiver storage.Archiver, logger *slog.Logger) PostalCodeService {
	return &postalCodeService{
		codes:    codes,
		archiver: archiver,
		logger:   logger,
		now:      time.Now,
	}
}

// List returns all postal codes ordered by code.
func (s *postalCodeService) List(ctx context.Context) ([]model.PostalCode, error) {
	return s.codes.List(ctx)
}

// Search matches code, place or municipality.
func (s *postalCodeService) Search(ctx context.Context, query string) ([]model.PostalCode, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []model.PostalCode{}, nil
	}
	return s.codes.Search(ctx, query, SearchLimit)
}

// GetByCode looks up one postal code.
func (s *postalCodeService) GetByCode(ctx context.Context, code string) (*model.PostalCode, error) {
	pc, err := s.codes.FindByCode(ctx, code)
	if err != nil {
		return nil, notFound(err, "postal code")
	}
	return pc, nil
}

// Create adds a postal code. Codes are unique.
func (s *postalCodeService) Create(ctx context.Context, input PostalCodeInput) (*model.PostalCode, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	if err := s.checkUnique(ctx, input.PostalCode, 0); err != nil {
		return nil, err
	}

	pc := &model.PostalCode{
		PostalCode:   input.PostalCode,
		PostPlace:    input.PostPlace,
		Municipality: input.Municipality,
		County:       input.County,
	}
	if err := s.codes.Create(ctx, pc); err != nil {
		return nil, fmt.Errorf("create postal code: %w", err)
	}
	return pc, nil
}

// Update overwrites a postal code.
func (s *postalCodeService) Update(ctx context.Context, id uint, input PostalCodeInput) (*model.PostalCode, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	pc, err := s.codes.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "postal code")
	}
	if err := s.checkUnique(ctx, input.PostalCode, id); err != nil {
		return nil, err
	}

	pc.PostalCode = input.PostalCode
	pc.PostPlace = input.PostPlace
	pc.Municipality = input.Municipality
	pc.County = input.County
	if err := s.codes.Update(ctx, pc); err != nil {
		return nil, fmt.Errorf("update postal code: %w", err)
	}
	return pc, nil
}

// Delete removes a postal code.
func (s *postalCodeService) Delete(ctx context.Context, id uint) error {
	if err := s.codes.Delete(ctx, id); err != nil {
		return notFound(err, "postal code")
	}
	return nil
}

// Import creates or updates rows one by one. Failing rows are skipped and
// reported by 1-based row number; at most the first ten errors are returned.
func (s *postalCodeService) Import(ctx context.Context, rows []PostalCodeRow) (*ImportResult, error) {
	result := &ImportResult{}
	var errs []string

	for i, row := range rows {
		n := i + 1
		input := PostalCodeInput{
			PostalCode:   strings.TrimSpace(row.PostalCode),
			PostPlace:    strings.TrimSpace(row.PostPlace),
			Municipality: strings.TrimSpace(row.Municipality),
			County:       strings.TrimSpace(row.County),
		}
		if input.PostalCode == "" || input.PostPlace == "" || input.Municipality == "" || input.County == "" {
			errs = append(errs, fmt.Sprintf("row %d: postalCode, postPlace, municipality and county are required", n))
			continue
		}

		if row.ID > 0 {
			if _, err := s.codes.FindByID(ctx, row.ID); err == nil {
				if _, err := s.Update(ctx, row.ID, input); err != nil {
					errs = append(errs, fmt.Sprintf("row %d (%s): %v", n, input.PostalCode, err))
					continue
				}
				result.Updated++
				continue
			} else if !isNotFound(err) {
				return nil, fmt.Errorf("find postal code: %w", err)
			}
		}

		if _, err := s.Create(ctx, input); err != nil {
			errs = append(errs, fmt.Sprintf("row %d (%s): %v", n, input.PostalCode, err))
			continue
		}
		result.Created++
	}

	if len(errs) > maxImportErrors {
		errs = errs[:maxImportErrors]
	}
	result.Errors = errs
	s.logger.Info("postal codes imported", "created", result.Created, "updated", result.Updated, "errors", len(errs))
	return result, nil
}

// Export writes every postal code as CSV.
func (s *postalCodeService) Export(ctx context.Context, w io.Writer) error {
	codes, err := s.codes.List(ctx)
	if err != nil {
		return fmt.Errorf("list postal codes: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "postalCode", "postPlace", "municipality", "county"}); err != nil {
		return err
	}
	for _, pc := range codes {
		record := []string{strconv.FormatUint(uint64(pc.ID), 10), pc.PostalCode, pc.PostPlace, pc.Municipality, pc.County}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Archive uploads a CSV export and returns a temporary download link.
func (s *postalCodeService) Archive(ctx context.Context) (*ArchiveResult, error) {
	if s.archiver == nil {
		return nil, apperrors.NotFound("export archive")
	}

	var buf bytes.Buffer
	if err := s.Export(ctx, &buf); err != nil {
		return nil, err
	}
	key := fmt.Sprintf("exports/postal-codes-%s.csv", s.now().UTC().Format("20060102T150405Z"))
	if err := s.archiver.Put(ctx, key, "text/csv", buf.Bytes()); err != nil {
		return nil, err
	}
	url, err := s.archiver.PresignedURL(ctx, key)
	if err != nil {
		return nil, err
	}
	s.logger.Info("postal codes archived", "key", key)
	return &ArchiveResult{Key: key, URL: url}, nil
}

// EnsureSeeded fills an empty table with the default list and returns the number of rows inserted.
func (s *postalCodeService) EnsureSeeded(ctx context.Context) (int, error) {
	count, err := s.codes.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count postal codes: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	rows := make([]model.PostalCode, 0, len(reference.DefaultPostalCodes))
	for _, entry := range reference.DefaultPostalCodes {
		rows = append(rows, model.PostalCode{
			PostalCode:   entry.PostalCode,
			PostPlace:    entry.PostPlace,
			Municipality: entry.Municipality,
			County:       entry.County,
		})
	}
	if err := s.codes.CreateBatch(ctx, rows); err != nil {
		return 0, fmt.Errorf("seed postal codes: %w", err)
	}
	s.logger.Info("postal codes seeded", "count", len(rows))
	return len(rows), nil
}

func (s *postalCodeService) checkUnique(ctx context.Context, code string, selfID uint) error {
	existing, err := s.codes.FindByCode(ctx, code)
	if err == nil && existing.ID != selfID {
		return apperrors.Conflict("postalCode", "postal code "+code+" already exists")
	}
	if err != nil && !isNotFound(err) {
		return fmt.Errorf("check postal code: %w", err)
	}
	return nil
}
