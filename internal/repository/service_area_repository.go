package repository

import (
	"context"

	"gorm.io/gorm"

	"varmepumpe/internal/model"
)

// ServiceAreaRepository defines service area persistence operations.
type ServiceAreaRepository interface {
	CreateBatch(ctx context.Context, areas []model.ServiceArea) error
	FindByID(ctx context.Context, id uint) (*model.ServiceArea, error)
	ListByInstaller(ctx context.Context, installerID uint) ([]model.ServiceArea, error)
	Delete(ctx context.Context, id uint) error
	DeleteByInstaller(ctx context.Context, installerID uint) error
}

type serviceAreaRepository struct {
	db *gorm.DB
}

// NewServiceAreaRepository creates a new service area repository.
func NewServiceAreaRepository(db *gorm.DB) ServiceAreaRepository {
	return &serviceAreaRepository{db: db}
}

func (r *serviceAreaRepository) CreateBatch(ctx context.Context, areas []model.ServiceArea) error {
	if len(areas) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&areas).Error
}

func (r *serviceAreaRepository) FindByID(ctx context.Context, id uint) (*model.ServiceArea, error) {
	var area model.ServiceArea
	if err := r.db.WithContext(ctx).First(&area, id).Error; err != nil {
		return nil, err
	}
	return &area, nil
}

func (r *serviceAreaRepository) ListByInstaller(ctx context.Context, installerID uint) ([]model.ServiceArea, error) {
	var areas []model.ServiceArea
	err := r.db.WithContext(ctx).
		Where("installer_id = ?", installerID).
		Order("county ASC, municipality ASC, id ASC").
		Find(&areas).Error
	if err != nil {
		return nil, err
	}
	return areas, nil
}

func (r *serviceAreaRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.ServiceArea{}, id).Error
}

func (r *serviceAreaRepository) DeleteByInstaller(ctx context.Context, installerID uint) error {
	return r.db.WithContext(ctx).Where("installer_id = ?", installerID).Delete(&model.ServiceArea{}).Error
}
