package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	apperrors "varmepumpe/internal/errors"
	"varmepumpe/internal/model"
	"varmepumpe/internal/repository"
	"varmepumpe/internal/validation"
)

// CustomerInput is a customer profile form.
type CustomerInput struct {
	FullName     string `json:"fullName" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	PostalCode   string `json:"postalCode"`
	City         string `json:"city"`
	County       string `json:"county"`
	Municipality string `json:"municipality" validate:"required"`
}

// HeatPumpInput registers a heat pump on a customer profile.
type HeatPumpInput struct {
	CustomerID      uint       `json:"customerId" validate:"required"`
	Brand           string     `json:"brand" validate:"required"`
	Model           string     `json:"model" validate:"required"`
	LastServiceDate *time.Time `json:"lastServiceDate"`
	NextServiceDue  *time.Time `json:"nextServiceDue"`
}

// CustomerContactInput records a customer reaching out to an installer.
type CustomerContactInput struct {
	InstallerID uint   `json:"installerId" validate:"required"`
	Notes       string `json:"notes"`
}

// CustomerService manages customer profiles, heat pumps and contacts.
type CustomerService interface {
	Create(ctx context.Context, userID uint, input CustomerInput) (*model.Customer, error)
	GetByUser(ctx context.Context, userID uint) (*model.Customer, error)
	List(ctx context.Context) ([]model.Customer, error)
	Update(ctx context.Context, id uint, input CustomerInput) (*model.Customer, error)
	SetSubscription(ctx context.Context, id uint, active bool) (*model.Customer, error)
	Delete(ctx context.Context, id uint) error
	AddHeatPump(ctx context.Context, userID uint, role model.Role, input HeatPumpInput) (*model.HeatPump, error)
	ListHeatPumps(ctx context.Context, userID uint, role model.Role, customerID uint) ([]model.HeatPump, error)
	ContactInstaller(ctx context.Context, userID uint, input CustomerContactInput) (*model.CustomerContact, error)
}

type customerService struct {
	store  repository.Store
	logger *slog.Logger
}

// NewCustomerService creates a new customer service.
func NewCustomerService(store repository.Store, logger *slog.Logger) CustomerService {
	return &customerService{store: store, logger: logger}
}

// Create stores the caller's customer profile. A user may own one profile.
func (s *customerService) Create(ctx context.Context, userID uint, input CustomerInput) (*model.Customer, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	if _, err := s.store.Customers().FindByUserID(ctx, userID); err == nil {
		return nil, apperrors.ErrProfileExists
	} else if !isNotFound(err) {
		return nil, fmt.Errorf("find customer: %w", err)
	}

	uid := userID
	customer := &model.Customer{
		UserID:             &uid,
		FullName:           input.FullName,
		Email:              input.Email,
		Phone:              input.Phone,
		Address:            input.Address,
		PostalCode:         input.PostalCode,
		City:               input.City,
		County:             input.County,
		Municipality:       input.Municipality,
		SubscriptionActive: true,
	}
	if err := s.store.Customers().Create(ctx, customer); err != nil {
		return nil, fmt.Errorf("create customer: %w", err)
	}
	return customer, nil
}

// GetByUser returns the caller's profile.
func (s *customerService) GetByUser(ctx context.Context, userID uint) (*model.Customer, error) {
	customer, err := s.store.Customers().FindByUserID(ctx, userID)
	if err != nil {
		return nil, notFound(err, "customer")
	}
	return customer, nil
}

// List returns every customer, newest first.
func (s *customerService) List(ctx context.Context) ([]model.Customer, error) {
	return s.store.Customers().List(ctx)
}

// Update overwrites a customer profile.
func (s *customerService) Update(ctx context.Context, id uint, input CustomerInput) (*model.Customer, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	customer, err := s.store.Customers().FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "customer")
	}

	customer.FullName = input.FullName
	customer.Email = input.Email
	customer.Phone = input.Phone
	customer.Address = input.Address
	customer.PostalCode = input.PostalCode
	customer.City = input.City
	customer.County = input.County
	customer.Municipality = input.Municipality
	if err := s.store.Customers().Update(ctx, customer); err != nil {
		return nil, fmt.Errorf("update customer: %w", err)
	}
	return customer, nil
}

// SetSubscription toggles the paid subscription.
func (s *customerService) SetSubscription(ctx context.Context, id uint, active bool) (*model.Customer, error) {
	customer, err := s.store.Customers().FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "customer")
	}
	customer.SubscriptionActive = active
	if err := s.store.Customers().Update(ctx, customer); err != nil {
		return nil, fmt.Errorf("update subscription: %w", err)
	}
	return customer, nil
}

// Delete erases a customer with its heat pumps and installer contacts.
func (s *customerService) Delete(ctx context.Context, id uint) error {
	err := s.store.WithTransaction(ctx, func(ctx context.Context, tx repository.Store) error {
		if _, err := tx.Customers().FindByID(ctx, id); err != nil {
			return notFound(err, "customer")
		}
		if err := tx.HeatPumps().DeleteByCustomer(ctx, id); err != nil {
			return fmt.Errorf("delete heat pumps: %w", err)
		}
		if err := tx.CustomerContacts().DeleteByCustomer(ctx, id); err != nil {
			return fmt.Errorf("delete customer contacts: %w", err)
		}
		return tx.Customers().Delete(ctx, id)
	})
	if err != nil {
		return err
	}
	s.logger.Info("customer deleted", "customer_id", id)
	return nil
}

// AddHeatPump registers a heat pump. Non-admins may only add to their own profile.
func (s *customerService) AddHeatPump(ctx context.Context, userID uint, role model.Role, input HeatPumpInput) (*model.HeatPump, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	if err := s.checkOwner(ctx, userID, role, input.CustomerID); err != nil {
		return nil, err
	}

	pump := &model.HeatPump{
		CustomerID:      input.CustomerID,
		Brand:           input.Brand,
		Model:           input.Model,
		LastServiceDate: input.LastServiceDate,
		NextServiceDue:  input.NextServiceDue,
	}
	if err := s.store.HeatPumps().Create(ctx, pump); err != nil {
		return nil, fmt.Errorf("create heat pump: %w", err)
	}
	return pump, nil
}

// ListHeatPumps returns a customer's heat pumps.
func (s *customerService) ListHeatPumps(ctx context.Context, userID uint, role model.Role, customerID uint) ([]model.HeatPump, error) {
	if err := s.checkOwner(ctx, userID, role, customerID); err != nil {
		return nil, err
	}
	return s.store.HeatPumps().ListByCustomer(ctx, customerID)
}

// ContactInstaller records the caller's customer profile reaching out to an installer.
func (s *customerService) ContactInstaller(ctx context.Context, userID uint, input CustomerContactInput) (*model.CustomerContact, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	customer, err := s.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if _, err := s.store.Installers().FindByID(ctx, input.InstallerID); err != nil {
		return nil, notFound(err, "installer")
	}

	contact := &model.CustomerContact{
		CustomerID:  customer.ID,
		InstallerID: input.InstallerID,
		Status:      "pending",
		Notes:       input.Notes,
	}
	if err := s.store.CustomerContacts().Create(ctx, contact); err != nil {
		return nil, fmt.Errorf("create customer contact: %w", err)
	}
	return contact, nil
}

func (s *customerService) checkOwner(ctx context.Context, userID uint, role model.Role, customerID uint) error {
	customer, err := s.store.Customers().FindByID(ctx, customerID)
	if err != nil {
		return notFound(err, "customer")
	}
	if role == model.RoleAdmin {
		return nil
	}
	if customer.UserID == nil || *customer.UserID != userID {
		return apperrors.ErrForbidden
	}
	return nil
}
