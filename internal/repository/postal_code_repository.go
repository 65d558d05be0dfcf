package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"varmepumpe/internal/model"
)

// PostalCodeRepository defines postal code persistence operations.
type PostalCodeRepository interface {
	Create(ctx context.Context, code *model.PostalCode) error
	CreateBatch(ctx context.Context, codes []model.PostalCode) error
	Update(ctx context.Context, code *model.PostalCode) error
	FindByID(ctx context.Context, id uint) (*model.PostalCode, error)
	FindByCode(ctx context.Context, code string) (*model.PostalCode, error)
	List(ctx context.Context) ([]model.PostalCode, error)
	Search(ctx context.Context, query string, limit int) ([]model.PostalCode, error)
	Count(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id uint) error
}

type postalCodeRepository struct {
	db *gorm.DB
}

// NewPostalCodeRepository creates a new postal code repository.
func NewPostalCodeRepository(db *gorm.DB) PostalCodeRepository {
	return &postalCodeRepository{db: db}
}

func (r *postalCodeRepository) Create(ctx context.Context, code *model.PostalCode) error {
	return r.db.WithContext(ctx).Create(code).Error
}

func (r *postalCodeRepository) CreateBatch(ctx context.Context, codes []model.PostalCode) error {
	if len(codes) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(&codes, 100).Error
}

func (r *postalCodeRepository) Update(ctx context.Context, code *model.PostalCode) error {
	return r.db.WithContext(ctx).Save(code).Error
}

func (r *postalCodeRepository) FindByID(ctx context.Context, id uint) (*model.PostalCode, error) {
	var code model.PostalCode
	if err := r.db.WithContext(ctx).First(&code, id).Error; err != nil {
		return nil, err
	}
	return &code, nil
}

func (r *postalCodeRepository) FindByCode(ctx context.Context, code string) (*model.PostalCode, error) {
	var pc model.PostalCode
	if err := r.db.WithContext(ctx).Where("postal_code = ?", code).First(&pc).Error; err != nil {
		return nil, err
	}
	return &pc, nil
}

func (r *postalCodeRepository) List(ctx context.Context) ([]model.PostalCode, error) {
	var codes []model.PostalCode
	if err := r.db.WithContext(ctx).Order("postal_code ASC").Find(&codes).Error; err != nil {
		return nil, err
	}
	return codes, nil
}

// Search matches code, place or municipality case-insensitively.
func (r *postalCodeRepository) Search(ctx context.Context, query string, limit int) ([]model.PostalCode, error) {
	pattern := "%" + strings.ToLower(query) + "%"
	var codes []model.PostalCode
	err := r.db.WithContext(ctx).
		Where("LOWER(postal_code) LIKE ? OR LOWER(post_place) LIKE ? OR LOWER(municipality) LIKE ?", pattern, pattern, pattern).
		Order("postal_code ASC").
		Limit(limit).
		Find(&codes).Error
	if err != nil {
		return nil, err
	}
	return codes, nil
}

func (r *postalCodeRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.PostalCode{}).Count(&n).Error
	return n, err
}

func (r *postalCodeRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.PostalCode{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
