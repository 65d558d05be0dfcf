package repository

import (
	"context"

	"gorm.io/gorm"

	"varmepumpe/internal/model"
)

// ServiceRequestRepository defines service request persistence operations.
type ServiceRequestRepository interface {
	Create(ctx context.Context, request *model.ServiceRequest) error
	Update(ctx context.Context, request *model.ServiceRequest) error
	FindByID(ctx context.Context, id uint) (*model.ServiceRequest, error)
	List(ctx context.Context) ([]model.ServiceRequest, error)
	ListByMunicipalities(ctx context.Context, municipalities []string) ([]model.ServiceRequest, error)
	SetStatus(ctx context.Context, id uint, status model.RequestStatus) error
	CountByStatus(ctx context.Context, status model.RequestStatus) (int64, error)
	Delete(ctx context.Context, id uint) error
}

type serviceRequestRepository struct {
	db *gorm.DB
}

// NewServiceRequestRepository creates a new service request repository.
func NewServiceRequestRepository(db *gorm.DB) ServiceRequestRepository {
	return &serviceRequestRepository{db: db}
}

func (r *serviceRequestRepository) Create(ctx context.Context, request *model.ServiceRequest) error {
	return r.db.WithContext(ctx).Create(request).Error
}

func (r *serviceRequestRepository) Update(ctx context.Context, request *model.ServiceRequest) error {
	return r.db.WithContext(ctx).Save(request).Error
}

func (r *serviceRequestRepository) FindByID(ctx context.Context, id uint) (*model.ServiceRequest, error) {
	var request model.ServiceRequest
	if err := r.db.WithContext(ctx).First(&request, id).Error; err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *serviceRequestRepository) List(ctx context.Context) ([]model.ServiceRequest, error) {
	var requests []model.ServiceRequest
	if err := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *serviceRequestRepository) ListByMunicipalities(ctx context.Context, municipalities []string) ([]model.ServiceRequest, error) {
	requests := []model.ServiceRequest{}
	if len(municipalities) == 0 {
		return requests, nil
	}
	err := r.db.WithContext(ctx).
		Where("municipality IN ?", municipalities).
		Order("created_at DESC, id DESC").
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *serviceRequestRepository) SetStatus(ctx context.Context, id uint, status model.RequestStatus) error {
	return r.db.WithContext(ctx).Model(&model.ServiceRequest{}).Where("id = ?", id).Update("status", status).Error
}

func (r *serviceRequestRepository) CountByStatus(ctx context.Context, status model.RequestStatus) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.ServiceRequest{}).Where("status = ?", status).Count(&n).Error
	return n, err
}

func (r *serviceRequestRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.ServiceRequest{}, id).Error
}
