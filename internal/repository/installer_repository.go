package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"varmepumpe/internal/model"
)

// AreaHit is one service area row that matched a location query.
type AreaHit struct {
	InstallerID uint
	County      string
}

// InstallerRepository defines installer persistence operations.
type InstallerRepository interface {
	Create(ctx context.Context, installer *model.Installer) error
	Update(ctx context.Context, installer *model.Installer) error
	UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error
	FindByID(ctx context.Context, id uint) (*model.Installer, error)
	FindByUserID(ctx context.Context, userID uint) (*model.Installer, error)
	FindByCompanyName(ctx context.Context, name string) (*model.Installer, error)
	FindByOrgNumber(ctx context.Context, orgNumber string) (*model.Installer, error)
	FindByIDs(ctx context.Context, ids []uint) ([]model.Installer, error)
	List(ctx context.Context) ([]model.InstallerListing, error)
	ListPending(ctx context.Context) ([]model.Installer, error)
	// MatchAreas returns service area rows of approved, active installers whose
	// column ("county" or "municipality") equals value, in area insertion order.
	MatchAreas(ctx context.Context, column, value string) ([]AreaHit, error)
	// MatchPrimary returns approved, active installers whose own column equals value.
	MatchPrimary(ctx context.Context, column, value string) ([]model.Installer, error)
	CountApproved(ctx context.Context) (int64, error)
	CountPending(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id uint) error
}

type installerRepository struct {
	db *gorm.DB
}

// NewInstallerRepository creates a new installer repository.
func NewInstallerRepository(db *gorm.DB) InstallerRepository {
	return &installerRepository{db: db}
}

var locationColumns = map[string]bool{
	"county":       true,
	"municipality": true,
}

func checkLocationColumn(column string) error {
	if !locationColumns[column] {
		return fmt.Errorf("unsupported location column %q", column)
	}
	return nil
}

// Create creates a new installer.
func (r *installerRepository) Create(ctx context.Context, installer *model.Installer) error {
	return r.db.WithContext(ctx).Create(installer).Error
}

// Update saves every column of an existing installer.
func (r *installerRepository) Update(ctx context.Context, installer *model.Installer) error {
	return r.db.WithContext(ctx).Save(installer).Error
}

// UpdateFields applies a partial update.
func (r *installerRepository) UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error {
	res := r.db.WithContext(ctx).Model(&model.Installer{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// FindByID finds an installer by ID.
func (r *installerRepository) FindByID(ctx context.Context, id uint) (*model.Installer, error) {
	var installer model.Installer
	if err := r.db.WithContext(ctx).First(&installer, id).Error; err != nil {
		return nil, err
	}
	return &installer, nil
}

// FindByUserID finds the installer owned by a user.
func (r *installerRepository) FindByUserID(ctx context.Context, userID uint) (*model.Installer, error) {
	var installer model.Installer
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&installer).Error; err != nil {
		return nil, err
	}
	return &installer, nil
}

// FindByCompanyName finds an installer by company name.
func (r *installerRepository) FindByCompanyName(ctx context.Context, name string) (*model.Installer, error) {
	var installer model.Installer
	if err := r.db.WithContext(ctx).Where("company_name = ?", name).First(&installer).Error; err != nil {
		return nil, err
	}
	return &installer, nil
}

// FindByOrgNumber finds an installer by organisation number.
func (r *installerRepository) FindByOrgNumber(ctx context.Context, orgNumber string) (*model.Installer, error) {
	var installer model.Installer
	if err := r.db.WithContext(ctx).Where("org_number = ?", orgNumber).First(&installer).Error; err != nil {
		return nil, err
	}
	return &installer, nil
}

// FindByIDs loads the installers with the given ids in ascending id order.
func (r *installerRepository) FindByIDs(ctx context.Context, ids []uint) ([]model.Installer, error) {
	var installers []model.Installer
	if len(ids) == 0 {
		return installers, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Order("id ASC").Find(&installers).Error; err != nil {
		return nil, err
	}
	return installers, nil
}

// List returns all installers, newest first, with the owning username.
func (r *installerRepository) List(ctx context.Context) ([]model.InstallerListing, error) {
	var installers []model.Installer
	if err := r.db.WithContext(ctx).Preload("User").Order("created_at DESC, id DESC").Find(&installers).Error; err != nil {
		return nil, err
	}
	listings := make([]model.InstallerListing, 0, len(installers))
	for _, inst := range installers {
		listing := model.InstallerListing{Installer: inst}
		if inst.User != nil {
			listing.Username = inst.User.Username
		}
		listings = append(listings, listing)
	}
	return listings, nil
}

// ListPending returns installers awaiting approval, oldest first.
func (r *installerRepository) ListPending(ctx context.Context) ([]model.Installer, error) {
	var installers []model.Installer
	if err := r.db.WithContext(ctx).Where("approved = ?", false).Order("created_at ASC, id ASC").Find(&installers).Error; err != nil {
		return nil, err
	}
	return installers, nil
}

// MatchAreas returns matching service area rows of matchable installers.
func (r *installerRepository) MatchAreas(ctx context.Context, column, value string) ([]AreaHit, error) {
	if err := checkLocationColumn(column); err != nil {
		return nil, err
	}
	var hits []AreaHit
	err := r.db.WithContext(ctx).Model(&model.ServiceArea{}).
		Select("service_areas.installer_id, service_areas.county").
		Joins("JOIN installers ON installers.id = service_areas.installer_id").
		Where("service_areas."+column+" = ?", value).
		Where("installers.approved = ? AND installers.active = ?", true, true).
		Order("service_areas.id ASC").
		Scan(&hits).Error
	if err != nil {
		return nil, err
	}
	return hits, nil
}

// MatchPrimary returns matchable installers by their own location.
func (r *installerRepository) MatchPrimary(ctx context.Context, column, value string) ([]model.Installer, error) {
	if err := checkLocationColumn(column); err != nil {
		return nil, err
	}
	var installers []model.Installer
	err := r.db.WithContext(ctx).
		Where(column+" = ?", value).
		Where("approved = ? AND active = ?", true, true).
		Order("id ASC").
		Find(&installers).Error
	if err != nil {
		return nil, err
	}
	return installers, nil
}

// CountApproved counts approved installers.
func (r *installerRepository) CountApproved(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Installer{}).Where("approved = ?", true).Count(&n).Error
	return n, err
}

// CountPending counts installers awaiting approval.
func (r *installerRepository) CountPending(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Installer{}).Where("approved = ?", false).Count(&n).Error
	return n, err
}

// Delete removes an installer row.
func (r *installerRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Installer{}, id).Error
}
