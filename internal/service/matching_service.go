package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	apperrors "varmepumpe/internal/errors"
	"varmepumpe/internal/model"
	"varmepumpe/internal/repository"
)

// ScopeKind selects which location column matching compares against.
type ScopeKind string

const (
	ScopeMunicipality ScopeKind = "municipality"
	ScopeCounty       ScopeKind = "county"
)

// Scope is a matching query: a municipality or a county name.
type Scope struct {
	Kind  ScopeKind
	Value string
}

// MatchingService finds installers serving a location.
type MatchingService interface {
	FindInstallers(ctx context.Context, scope Scope) ([]model.InstallerMatch, error)
}

type matchingService struct {
	installers repository.InstallerRepository
}

// NewMatchingService creates a new matching service.
func NewMatchingService(installers repository.InstallerRepository) MatchingService {
	return &matchingService{installers: installers}
}

// FindInstallers returns approved, active installers that either list the
// location as a service area or are based there, best rated first.
func (s *matchingService) FindInstallers(ctx context.Context, scope Scope) ([]model.InstallerMatch, error) {
	if scope.Kind != ScopeMunicipality && scope.Kind != ScopeCounty {
		return nil, apperrors.ErrInvalidScope
	}
	if strings.TrimSpace(scope.Value) == "" {
		return nil, apperrors.Invalid(string(scope.Kind), "is required")
	}
	column := string(scope.Kind)

	hits, err := s.installers.MatchAreas(ctx, column, scope.Value)
	if err != nil {
		return nil, fmt.Errorf("match service areas: %w", err)
	}
	primary, err := s.installers.MatchPrimary(ctx, column, scope.Value)
	if err != nil {
		return nil, fmt.Errorf("match primary location: %w", err)
	}

	counties := make(map[uint][]string)
	addCounty := func(id uint, county string) {
		if county == "" {
			return
		}
		for _, c := range counties[id] {
			if c == county {
				return
			}
		}
		counties[id] = append(counties[id], county)
	}

	var areaIDs []uint
	seen := make(map[uint]bool)
	for _, hit := range hits {
		if !seen[hit.InstallerID] {
			seen[hit.InstallerID] = true
			areaIDs = append(areaIDs, hit.InstallerID)
		}
		addCounty(hit.InstallerID, hit.County)
	}

	byArea, err := s.installers.FindByIDs(ctx, areaIDs)
	if err != nil {
		return nil, fmt.Errorf("load matched installers: %w", err)
	}

	matches := make([]model.InstallerMatch, 0, len(byArea)+len(primary))
	index := make(map[uint]int)
	for _, inst := range byArea {
		index[inst.ID] = len(matches)
		matches = append(matches, model.InstallerMatch{Installer: inst})
	}
	for _, inst := range primary {
		addCounty(inst.ID, inst.County)
		if _, ok := index[inst.ID]; ok {
			continue
		}
		index[inst.ID] = len(matches)
		matches = append(matches, model.InstallerMatch{Installer: inst})
	}

	for i := range matches {
		matches[i].Counties = counties[matches[i].ID]
		if matches[i].Counties == nil {
			matches[i].Counties = []string{}
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if cmp := matches[i].Rating.Cmp(matches[j].Rating); cmp != 0 {
			return cmp > 0
		}
		return matches[i].ID < matches[j].ID
	})
	return matches, nil
}
