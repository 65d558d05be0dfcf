// Package geocode resolves Norwegian addresses to coordinates. Lookups try the
// Kartverket address API, then Nominatim, then a static postal-code table and
// finally fall back to the centre of Oslo, so a result is always returned.
package geocode

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"varmepumpe/internal/cache"
	apperrors "varmepumpe/internal/errors"
	"varmepumpe/internal/metrics"
	"varmepumpe/internal/reference"
)

// Sources reported in Result.Source.
const (
	SourceKartverket = "Kartverket"
	SourceNominatim  = "OpenStreetMap"
	SourcePostalCode = "PostalCode-Fallback"
	SourceDefault    = "Oslo-Center-Fallback"
)

const cacheKeyPrefix = "geocode:"

// Result is a resolved coordinate.
type Result struct {
	Lat             float64 `json:"lat"`
	Lng             float64 `json:"lng"`
	Source          string  `json:"source"`
	FoundAddress    string  `json:"foundAddress,omitempty"`
	FoundPostalCode string  `json:"foundPostalCode,omitempty"`
	FoundCity       string  `json:"foundCity,omitempty"`
	Warning         string  `json:"warning,omitempty"`
}

// Query is an address to resolve.
type Query struct {
	Address    string `query:"address" json:"address" validate:"required"`
	PostalCode string `query:"postalCode" json:"postalCode" validate:"required"`
	City       string `query:"city" json:"city" validate:"required"`
}

// Config locates the upstream APIs.
type Config struct {
	KartverketURL string
	NominatimURL  string
	Timeout       time.Duration
	CacheTTL      time.Duration
	UserAgent     string
}

// Service performs best-effort coordinate lookups.
type Service struct {
	cfg     Config
	http    *http.Client
	cache   *cache.Client
	metrics *metrics.Collector
	logger  *slog.Logger
}

// New creates a geocoding service. cache and collector may be nil.
func New(cfg Config, cacheClient *cache.Client, collector *metrics.Collector, logger *slog.Logger) *Service {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = 24 * time.Hour
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = "varmepumpe/1.0"
	}
	return &Service{
		cfg:     cfg,
		http:    &http.Client{Timeout: cfg.Timeout},
		cache:   cacheClient,
		metrics: collector,
		logger:  logger,
	}
}

// Lookup resolves q. Only missing input is reported as an error.
func (s *Service) Lookup(ctx context.Context, q Query) (*Result, error) {
	q.Address = strings.TrimSpace(q.Address)
	q.PostalCode = strings.TrimSpace(q.PostalCode)
	q.City = strings.TrimSpace(q.City)
	if q.Address == "" || q.PostalCode == "" || q.City == "" {
		return nil, apperrors.Invalid("address", "address, postalCode and city are required")
	}

	key := cacheKey(q)
	var cached Result
	if s.cache.GetJSON(ctx, key, &cached) {
		return &cached, nil
	}

	res := s.resolve(ctx, q)
	s.metrics.GeocodeLookup(res.Source)
	// fallbacks are not cached so a later lookup can still reach the APIs
	if res.Source == SourceKartverket || res.Source == SourceNominatim {
		_ = s.cache.SetJSON(ctx, key, res, s.cfg.CacheTTL)
	}
	return res, nil
}

func (s *Service) resolve(ctx context.Context, q Query) *Result {
	if s.cfg.KartverketURL != "" {
		for _, text := range []string{
			fmt.Sprintf("%s, %s %s", q.Address, q.PostalCode, q.City),
			fmt.Sprintf("%s %s", q.Address, q.PostalCode),
			fmt.Sprintf("%s, %s", q.Address, q.City),
			fmt.Sprintf("%s %s", q.PostalCode, q.City),
		} {
			res, err := s.kartverket(ctx, text)
			if err != nil {
				s.logger.Debug("kartverket lookup failed", "query", text, "error", err)
				continue
			}
			if res != nil {
				s.logger.Info("coordinates found", "source", SourceKartverket, "query", text)
				return res
			}
		}
	}

	if s.cfg.NominatimURL != "" {
		for _, text := range []string{
			fmt.Sprintf("%s, %s %s, Norway", q.Address, q.PostalCode, q.City),
			fmt.Sprintf("%s, %s, Norway", q.Address, q.City),
			fmt.Sprintf("%s %s, Norway", q.PostalCode, q.City),
		} {
			res, err := s.nominatim(ctx, text)
			if err != nil {
				s.logger.Debug("nominatim lookup failed", "query", text, "error", err)
				continue
			}
			if res != nil {
				s.logger.Info("coordinates found", "source", SourceNominatim, "query", text)
				return res
			}
		}
	}

	if c, ok := reference.PostalCoordinate(q.PostalCode); ok {
		s.logger.Warn("using postal code coordinates", "postal_code", q.PostalCode)
		return &Result{
			Lat:     c.Lat,
			Lng:     c.Lng,
			Source:  SourcePostalCode,
			Warning: "Using approximate coordinates - exact address lookup failed",
		}
	}

	s.logger.Warn("no coordinates found, using Oslo centre", "postal_code", q.PostalCode, "city", q.City)
	return &Result{
		Lat:     reference.DefaultCoordinate.Lat,
		Lng:     reference.DefaultCoordinate.Lng,
		Source:  SourceDefault,
		Warning: "Could not find address - using Oslo center",
	}
}

type kartverketResponse struct {
	Adresser []struct {
		Adressetekst         string `json:"adressetekst"`
		Postnummer           string `json:"postnummer"`
		Poststed             string `json:"poststed"`
		Representasjonspunkt *struct {
			Lat float64 `json:"lat"`
			Lon float64 `json:"lon"`
		} `json:"representasjonspunkt"`
	} `json:"adresser"`
}

func (s *Service) kartverket(ctx context.Context, text string) (*Result, error) {
	params := url.Values{}
	params.Set("sok", text)
	params.Set("treffPerSide", "1")

	var body kartverketResponse
	if err := s.getJSON(ctx, s.cfg.KartverketURL+"?"+params.Encode(), &body); err != nil {
		return nil, err
	}
	if len(body.Adresser) == 0 {
		return nil, nil
	}
	hit := body.Adresser[0]
	if hit.Representasjonspunkt == nil || (hit.Representasjonspunkt.Lat == 0 && hit.Representasjonspunkt.Lon == 0) {
		return nil, nil
	}
	return &Result{
		Lat:             hit.Representasjonspunkt.Lat,
		Lng:             hit.Representasjonspunkt.Lon,
		Source:          SourceKartverket,
		FoundAddress:    hit.Adressetekst,
		FoundPostalCode: hit.Postnummer,
		FoundCity:       hit.Poststed,
	}, nil
}

type nominatimPlace struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

func (s *Service) nominatim(ctx context.Context, text string) (*Result, error) {
	params := url.Values{}
	params.Set("format", "json")
	params.Set("countrycodes", "no")
	params.Set("limit", "1")
	params.Set("q", text)

	var places []nominatimPlace
	if err := s.getJSON(ctx, s.cfg.NominatimURL+"?"+params.Encode(), &places); err != nil {
		return nil, err
	}
	if len(places) == 0 {
		return nil, nil
	}
	lat, err := strconv.ParseFloat(places[0].Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("parse lat: %w", err)
	}
	lng, err := strconv.ParseFloat(places[0].Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("parse lon: %w", err)
	}
	return &Result{
		Lat:          lat,
		Lng:          lng,
		Source:       SourceNominatim,
		FoundAddress: places[0].DisplayName,
	}, nil
}

func (s *Service) getJSON(ctx context.Context, rawURL string, dst interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", s.cfg.UserAgent)

	resp, err := s.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(dst)
}

func cacheKey(q Query) string {
	sum := sha1.Sum([]byte(strings.ToLower(q.Address + "|" + q.PostalCode + "|" + q.City)))
	return cacheKeyPrefix + hex.EncodeToString(sum[:])
}
