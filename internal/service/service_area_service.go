package service

import (
	"context"
	"fmt"

	apperrors "varmepumpe/internal/errors"
	"varmepumpe/internal/model"
	"varmepumpe/internal/repository"
	"varmepumpe/internal/validation"
)

// AreaInput is one (county, municipality) pair.
type AreaInput struct {
	County       string `json:"county" validate:"required"`
	Municipality string `json:"municipality" validate:"required"`
}

// ServiceAreasInput is a batch of areas.
type ServiceAreasInput struct {
	ServiceAreas []AreaInput `json:"serviceAreas" validate:"dive"`
}

// ServiceAreaService manages the areas an installer covers.
type ServiceAreaService interface {
	ListByInstaller(ctx context.Context, installerID uint) ([]model.ServiceArea, error)
	Add(ctx context.Context, installerID uint, areas []AreaInput) ([]model.ServiceArea, error)
	Replace(ctx context.Context, installerID uint, areas []AreaInput) ([]model.ServiceArea, error)
	Delete(ctx context.Context, installerID, areaID uint) error
}

type serviceAreaService struct {
	store repository.Store
}

// NewServiceAreaService creates a new service area service.
func NewServiceAreaService(store repository.Store) ServiceAreaService {
	return &serviceAreaService{store: store}
}

// ListByInstaller returns an installer's areas.
func (s *serviceAreaService) ListByInstaller(ctx context.Context, installerID uint) ([]model.ServiceArea, error) {
	return s.store.ServiceAreas().ListByInstaller(ctx, installerID)
}

// Add inserts the pairs not already present and returns only the new rows.
func (s *serviceAreaService) Add(ctx context.Context, installerID uint, areas []AreaInput) ([]model.ServiceArea, error) {
	if err := validation.Struct(ServiceAreasInput{ServiceAreas: areas}); err != nil {
		return nil, err
	}

	created := []model.ServiceArea{}
	err := s.store.WithTransaction(ctx, func(ctx context.Context, tx repository.Store) error {
		existing, err := tx.ServiceAreas().ListByInstaller(ctx, installerID)
		if err != nil {
			return fmt.Errorf("list service areas: %w", err)
		}
		seen := make(map[model.AreaKey]bool, len(existing))
		for _, area := range existing {
			seen[area.Key()] = true
		}
		created = buildAreas(installerID, areas, seen)
		return tx.ServiceAreas().CreateBatch(ctx, created)
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Replace swaps the installer's areas for the deduplicated input in one transaction.
func (s *serviceAreaService) Replace(ctx context.Context, installerID uint, areas []AreaInput) ([]model.ServiceArea, error) {
	if err := validation.Struct(ServiceAreasInput{ServiceAreas: areas}); err != nil {
		return nil, err
	}

	err := s.store.WithTransaction(ctx, func(ctx context.Context, tx repository.Store) error {
		if err := tx.ServiceAreas().DeleteByInstaller(ctx, installerID); err != nil {
			return fmt.Errorf("clear service areas: %w", err)
		}
		return tx.ServiceAreas().CreateBatch(ctx, buildAreas(installerID, areas, map[model.AreaKey]bool{}))
	})
	if err != nil {
		return nil, err
	}
	return s.store.ServiceAreas().ListByInstaller(ctx, installerID)
}

// Delete removes one area owned by the installer.
func (s *serviceAreaService) Delete(ctx context.Context, installerID, areaID uint) error {
	area, err := s.store.ServiceAreas().FindByID(ctx, areaID)
	if err != nil {
		return notFound(err, "service area")
	}
	if area.InstallerID != installerID {
		return apperrors.ErrForbidden
	}
	return s.store.ServiceAreas().Delete(ctx, areaID)
}

// buildAreas returns rows for the pairs not in seen, dropping repeats within the batch.
func buildAreas(installerID uint, areas []AreaInput, seen map[model.AreaKey]bool) []model.ServiceArea {
	out := make([]model.ServiceArea, 0, len(areas))
	for _, in := range areas {
		key := model.AreaKey{County: in.County, Municipality: in.Municipality}
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, model.ServiceArea{
			InstallerID:  installerID,
			County:       in.County,
			Municipality: in.Municipality,
		})
	}
	return out
}
