package repository

import (
	"context"

	"gorm.io/gorm"

	"varmepumpe/internal/model"
)

// RequestContactRepository defines persistence for installer interest in requests.
type RequestContactRepository interface {
	Create(ctx context.Context, contact *model.ServiceRequestContact) error
	ListByRequest(ctx context.Context, requestID uint) ([]model.ServiceRequestContact, error)
	DeleteByRequest(ctx context.Context, requestID uint) error
	DeleteByInstaller(ctx context.Context, installerID uint) error
}

type requestContactRepository struct {
	db *gorm.DB
}

// NewRequestContactRepository creates a new request contact repository.
func NewRequestContactRepository(db *gorm.DB) RequestContactRepository {
	return &requestContactRepository{db: db}
}

func (r *requestContactRepository) Create(ctx context.Context, contact *model.ServiceRequestContact) error {
	return r.db.WithContext(ctx).Create(contact).Error
}

func (r *requestContactRepository) ListByRequest(ctx context.Context, requestID uint) ([]model.ServiceRequestContact, error) {
	var contacts []model.ServiceRequestContact
	err := r.db.WithContext(ctx).
		Where("service_request_id = ?", requestID).
		Order("contacted_at DESC, id DESC").
		Find(&contacts).Error
	if err != nil {
		return nil, err
	}
	return contacts, nil
}

func (r *requestContactRepository) DeleteByRequest(ctx context.Context, requestID uint) error {
	return r.db.WithContext(ctx).Where("service_request_id = ?", requestID).Delete(&model.ServiceRequestContact{}).Error
}

func (r *requestContactRepository) DeleteByInstaller(ctx context.Context, installerID uint) error {
	return r.db.WithContext(ctx).Where("installer_id = ?", installerID).Delete(&model.ServiceRequestContact{}).Error
}

// CustomerContactRepository defines persistence for customer to installer contacts.
type CustomerContactRepository interface {
	Create(ctx context.Context, contact *model.CustomerContact) error
	ListByCustomer(ctx context.Context, customerID uint) ([]model.CustomerContact, error)
	DeleteByCustomer(ctx context.Context, customerID uint) error
	DeleteByInstaller(ctx context.Context, installerID uint) error
}

type customerContactRepository struct {
	db *gorm.DB
}

// NewCustomerContactRepository creates a new customer contact repository.
func NewCustomerContactRepository(db *gorm.DB) CustomerContactRepository {
	return &customerContactRepository{db: db}
}

func (r *customerContactRepository) Create(ctx context.Context, contact *model.CustomerContact) error {
	return r.db.WithContext(ctx).Create(contact).Error
}

func (r *customerContactRepository) ListByCustomer(ctx context.Context, customerID uint) ([]model.CustomerContact, error) {
	var contacts []model.CustomerContact
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("contacted_at DESC, id DESC").
		Find(&contacts).Error
	if err != nil {
		return nil, err
	}
	return contacts, nil
}

func (r *customerContactRepository) DeleteByCustomer(ctx context.Context, customerID uint) error {
	return r.db.WithContext(ctx).Where("customer_id = ?", customerID).Delete(&model.CustomerContact{}).Error
}

func (r *customerContactRepository) DeleteByInstaller(ctx context.Context, installerID uint) error {
	return r.db.WithContext(ctx).Where("installer_id = ?", installerID).Delete(&model.CustomerContact{}).Error
}
