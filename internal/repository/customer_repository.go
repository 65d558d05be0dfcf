package repository

import (
	"context"

	"gorm.io/gorm"

	"varmepumpe/internal/model"
)

// CustomerRepository defines customer persistence operations.
type CustomerRepository interface {
	Create(ctx context.Context, customer *model.Customer) error
	Update(ctx context.Context, customer *model.Customer) error
	FindByID(ctx context.Context, id uint) (*model.Customer, error)
	FindByUserID(ctx context.Context, userID uint) (*model.Customer, error)
	List(ctx context.Context) ([]model.Customer, error)
	Count(ctx context.Context) (int64, error)
	CountActiveSubscriptions(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id uint) error
}

type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository creates a new customer repository.
func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) Create(ctx context.Context, customer *model.Customer) error {
	return r.db.WithContext(ctx).Create(customer).Error
}

func (r *customerRepository) Update(ctx context.Context, customer *model.Customer) error {
	return r.db.WithContext(ctx).Save(customer).Error
}

func (r *customerRepository) FindByID(ctx context.Context, id uint) (*model.Customer, error) {
	var customer model.Customer
	if err := r.db.WithContext(ctx).First(&customer, id).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepository) FindByUserID(ctx context.Context, userID uint) (*model.Customer, error) {
	var customer model.Customer
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&customer).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepository) List(ctx context.Context) ([]model.Customer, error) {
	var customers []model.Customer
	if err := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *customerRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Customer{}).Count(&n).Error
	return n, err
}

func (r *customerRepository) CountActiveSubscriptions(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Customer{}).Where("subscription_active = ?", true).Count(&n).Error
	return n, err
}

func (r *customerRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Customer{}, id).Error
}

// HeatPumpRepository defines heat pump persistence operations.
type HeatPumpRepository interface {
	Create(ctx context.Context, pump *model.HeatPump) error
	ListByCustomer(ctx context.Context, customerID uint) ([]model.HeatPump, error)
	DeleteByCustomer(ctx context.Context, customerID uint) error
}

type heatPumpRepository struct {
	db *gorm.DB
}

// NewHeatPumpRepository creates a new heat pump repository.
func NewHeatPumpRepository(db *gorm.DB) HeatPumpRepository {
	return &heatPumpRepository{db: db}
}

func (r *heatPumpRepository) Create(ctx context.Context, pump *model.HeatPump) error {
	return r.db.WithContext(ctx).Create(pump).Error
}

func (r *heatPumpRepository) ListByCustomer(ctx context.Context, customerID uint) ([]model.HeatPump, error) {
	var pumps []model.HeatPump
	if err := r.db.WithContext(ctx).Where("customer_id = ?", customerID).Order("id ASC").Find(&pumps).Error; err != nil {
		return nil, err
	}
	return pumps, nil
}

func (r *heatPumpRepository) DeleteByCustomer(ctx context.Context, customerID uint) error {
	return r.db.WithContext(ctx).Where("customer_id = ?", customerID).Delete(&model.HeatPump{}).Error
}
