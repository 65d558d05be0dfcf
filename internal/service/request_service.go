package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	apperrors "varmepumpe/internal/errors"
	"varmepumpe/internal/metrics"
	"varmepumpe/internal/model"
	"varmepumpe/internal/repository"
	"varmepumpe/internal/validation"
)

// CreateServiceRequestInput is the public intake form.
type CreateServiceRequestInput struct {
	FullName             string `json:"fullName" validate:"required"`
	Email                string `json:"email" validate:"omitempty,email"`
	Phone                string `json:"phone" validate:"required"`
	Address              string `json:"address" validate:"required"`
	PostalCode           string `json:"postalCode" validate:"required"`
	City                 string `json:"city" validate:"required"`
	County               string `json:"county" validate:"required"`
	Municipality         string `json:"municipality" validate:"required"`
	HeatPumpBrand        string `json:"heatPumpBrand"`
	HeatPumpModel        string `json:"heatPumpModel"`
	ServiceType          string `json:"serviceType" validate:"required"`
	Description          string `json:"description"`
	PreferredContactTime string `json:"preferredContactTime"`
}

// ServiceRequestUpdate is an admin partial update; nil fields are left unchanged.
type ServiceRequestUpdate struct {
	FullName             *string              `json:"fullName" validate:"omitempty,min=1"`
	Email                *string              `json:"email" validate:"omitempty,email"`
	Phone                *string              `json:"phone" validate:"omitempty,min=1"`
	Address              *string              `json:"address" validate:"omitempty,min=1"`
	PostalCode           *string              `json:"postalCode" validate:"omitempty,min=1"`
	City                 *string              `json:"city" validate:"omitempty,min=1"`
	County               *string              `json:"county" validate:"omitempty,min=1"`
	Municipality         *string              `json:"municipality" validate:"omitempty,min=1"`
	HeatPumpBrand        *string              `json:"heatPumpBrand"`
	HeatPumpModel        *string              `json:"heatPumpModel"`
	ServiceType          *string              `json:"serviceType" validate:"omitempty,min=1"`
	Description          *string              `json:"description"`
	PreferredContactTime *string              `json:"preferredContactTime"`
	Status               *model.RequestStatus `json:"status" validate:"omitempty,oneof=open contacted closed"`
}

// ContactInput is an installer's expression of interest in a request.
type ContactInput struct {
	Notes       string           `json:"notes"`
	QuoteAmount *decimal.Decimal `json:"quoteAmount"`
}

// RequestService manages the service request lifecycle.
type RequestService interface {
	Create(ctx context.Context, input CreateServiceRequestInput) (*model.ServiceRequest, error)
	Get(ctx context.Context, id uint) (*model.ServiceRequest, error)
	ListAll(ctx context.Context) ([]model.ServiceRequest, error)
	ListForInstaller(ctx context.Context, installerID uint) ([]model.ServiceRequest, error)
	Update(ctx context.Context, id uint, update ServiceRequestUpdate) (*model.ServiceRequest, error)
	Delete(ctx context.Context, id uint) error
	ExpressInterest(ctx context.Context, requestID, installerID uint, input ContactInput) (*model.ServiceRequestContact, error)
	ListContacts(ctx context.Context, requestID uint) ([]model.ServiceRequestContact, error)
}

type requestService struct {
	store   repository.Store
	metrics *metrics.Collector
	logger  *slog.Logger
}

// NewRequestService creates a new request service.
func NewRequestService(store repository.Store, collector *metrics.Collector, logger *slog.Logger) RequestService {
	return &requestService{
		store:   store,
		metrics: collector,
		logger:  logger,
	}
}

// Create stores a new open request. No authentication is involved.
func (s *requestService) Create(ctx context.Context, input CreateServiceRequestInput) (*model.ServiceRequest, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	request := &model.ServiceRequest{
		FullName:             input.FullName,
		Email:                input.Email,
		Phone:                input.Phone,
		Address:              input.Address,
		PostalCode:           input.PostalCode,
		City:                 input.City,
		County:               input.County,
		Municipality:         input.Municipality,
		HeatPumpBrand:        input.HeatPumpBrand,
		HeatPumpModel:        input.HeatPumpModel,
		ServiceType:          input.ServiceType,
		Description:          input.Description,
		PreferredContactTime: input.PreferredContactTime,
		Status:               model.RequestStatusOpen,
	}
	if err := s.store.ServiceRequests().Create(ctx, request); err != nil {
		return nil, fmt.Errorf("create service request: %w", err)
	}

	s.metrics.ServiceRequestCreated()
	s.logger.Info("service request created", "id", request.ID, "municipality", request.Municipality)
	return request, nil
}

// Get returns one request.
func (s *requestService) Get(ctx context.Context, id uint) (*model.ServiceRequest, error) {
	request, err := s.store.ServiceRequests().FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "service request")
	}
	return request, nil
}

// ListAll returns every request, newest first.
func (s *requestService) ListAll(ctx context.Context) ([]model.ServiceRequest, error) {
	return s.store.ServiceRequests().List(ctx)
}

// ListForInstaller returns requests located in the installer's service-area
// municipalities, newest first. The installer's own municipality is not used.
func (s *requestService) ListForInstaller(ctx context.Context, installerID uint) ([]model.ServiceRequest, error) {
	areas, err := s.store.ServiceAreas().ListByInstaller(ctx, installerID)
	if err != nil {
		return nil, fmt.Errorf("list service areas: %w", err)
	}

	seen := make(map[string]bool, len(areas))
	municipalities := make([]string, 0, len(areas))
	for _, area := range areas {
		if !seen[area.Municipality] {
			seen[area.Municipality] = true
			municipalities = append(municipalities, area.Municipality)
		}
	}
	return s.store.ServiceRequests().ListByMunicipalities(ctx, municipalities)
}

// Update overwrites the supplied fields of a request.
func (s *requestService) Update(ctx context.Context, id uint, update ServiceRequestUpdate) (*model.ServiceRequest, error) {
	if err := validation.Struct(update); err != nil {
		return nil, err
	}

	request, err := s.store.ServiceRequests().FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "service request")
	}

	setString(&request.FullName, update.FullName)
	setString(&request.Email, update.Email)
	setString(&request.Phone, update.Phone)
	setString(&request.Address, update.Address)
	setString(&request.PostalCode, update.PostalCode)
	setString(&request.City, update.City)
	setString(&request.County, update.County)
	setString(&request.Municipality, update.Municipality)
	setString(&request.HeatPumpBrand, update.HeatPumpBrand)
	setString(&request.HeatPumpModel, update.HeatPumpModel)
	setString(&request.ServiceType, update.ServiceType)
	setString(&request.Description, update.Description)
	setString(&request.PreferredContactTime, update.PreferredContactTime)
	if update.Status != nil {
		if !update.Status.Valid() {
			return nil, apperrors.Invalid("status", "must be one of: open contacted closed")
		}
		request.Status = *update.Status
	}

	if err := s.store.ServiceRequests().Update(ctx, request); err != nil {
		return nil, fmt.Errorf("update service request: %w", err)
	}
	return request, nil
}

// Delete removes a request together with its installer contacts.
func (s *requestService) Delete(ctx context.Context, id uint) error {
	return s.store.WithTransaction(ctx, func(ctx context.Context, tx repository.Store) error {
		if _, err := tx.ServiceRequests().FindByID(ctx, id); err != nil {
			return notFound(err, "service request")
		}
		if err := tx.RequestContacts().DeleteByRequest(ctx, id); err != nil {
			return fmt.Errorf("delete request contacts: %w", err)
		}
		if err := tx.ServiceRequests().Delete(ctx, id); err != nil {
			return fmt.Errorf("delete service request: %w", err)
		}
		return nil
	})
}

// ExpressInterest records an installer contact and moves an open request to contacted.
func (s *requestService) ExpressInterest(ctx context.Context, requestID, installerID uint, input ContactInput) (*model.ServiceRequestContact, error) {
	if input.QuoteAmount != nil && input.QuoteAmount.IsNegative() {
		return nil, apperrors.Invalid("quoteAmount", "must not be negative")
	}

	contact := &model.ServiceRequestContact{
		ServiceRequestID: requestID,
		InstallerID:      installerID,
		Status:           model.ContactStatusInterested,
		Notes:            input.Notes,
		QuoteAmount:      input.QuoteAmount,
	}
	err := s.store.WithTransaction(ctx, func(ctx context.Context, tx repository.Store) error {
		request, err := tx.ServiceRequests().FindByID(ctx, requestID)
		if err != nil {
			return notFound(err, "service request")
		}
		if err := tx.RequestContacts().Create(ctx, contact); err != nil {
			return fmt.Errorf("create request contact: %w", err)
		}
		if request.Status == model.RequestStatusOpen {
			if err := tx.ServiceRequests().SetStatus(ctx, requestID, model.RequestStatusContacted); err != nil {
				return fmt.Errorf("mark request contacted: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.InterestExpressed()
	s.logger.Info("installer expressed interest", "request_id", requestID, "installer_id", installerID)
	return contact, nil
}

// ListContacts returns the installer contacts of a request, newest first.
func (s *requestService) ListContacts(ctx context.Context, requestID uint) ([]model.ServiceRequestContact, error) {
	if _, err := s.store.ServiceRequests().FindByID(ctx, requestID); err != nil {
		return nil, notFound(err, "service request")
	}
	return s.store.RequestContacts().ListByRequest(ctx, requestID)
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
