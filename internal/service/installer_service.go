package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	apperrors "varmepumpe/internal/errors"
	"varmepumpe/internal/model"
	"varmepumpe/internal/repository"
	"varmepumpe/internal/validation"
)

// InstallerProfileInput is the editable part of an installer profile.
type InstallerProfileInput struct {
	CompanyName   string `json:"companyName" validate:"required"`
	OrgNumber     string `json:"orgNumber" validate:"required,orgnr"`
	ContactPerson string `json:"contactPerson" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	Phone         string `json:"phone" validate:"required,min=8"`
	Address       string `json:"address"`
	PostalCode    string `json:"postalCode"`
	City          string `json:"city"`
	County        string `json:"county"`
	Municipality  string `json:"municipality"`
	Website       string `json:"website"`
}

// InstallerAdminInput extends the profile with fields only an admin may set.
type InstallerAdminInput struct {
	InstallerProfileInput
	Certified     *bool            `json:"certified"`
	Rating        *decimal.Decimal `json:"rating"`
	TotalServices *int             `json:"totalServices" validate:"omitempty,gte=0"`
}

// InstallerStatusInput changes approval and activation. Nil fields are left unchanged.
type InstallerStatusInput struct {
	Approved *bool `json:"approved"`
	Active   *bool `json:"active"`
}

// InstallerService manages installer profiles and their moderation state.
type InstallerService interface {
	Get(ctx context.Context, id uint) (*model.Installer, error)
	GetByUser(ctx context.Context, userID uint) (*model.Installer, error)
	Create(ctx context.Context, userID uint, input InstallerProfileInput) (*model.Installer, error)
	ListAll(ctx context.Context) ([]model.InstallerListing, error)
	ListPending(ctx context.Context) ([]model.Installer, error)
	UpdateProfile(ctx context.Context, userID uint, input InstallerProfileInput) (*model.Installer, error)
	AdminUpdate(ctx context.Context, id uint, input InstallerAdminInput) (*model.Installer, error)
	Approve(ctx context.Context, id uint, approved bool) (*MessageResponse, error)
	SetStatus(ctx context.Context, id uint, input InstallerStatusInput) (*MessageResponse, error)
	Delete(ctx context.Context, id uint) error
}

type installerService struct {
	store  repository.Store
	logger *slog.Logger
}

// NewInstallerService creates a new installer service.
func NewInstallerService(store repository.Store, logger *slog.Logger) InstallerService {
	return &installerService{store: store, logger: logger}
}

// Get returns an installer by id.
func (s *installerService) Get(ctx context.Context, id uint) (*model.Installer, error) {
	installer, err := s.store.Installers().FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "installer")
	}
	return installer, nil
}

// GetByUser returns the installer owned by a user.
func (s *installerService) GetByUser(ctx context.Context, userID uint) (*model.Installer, error) {
	installer, err := s.store.Installers().FindByUserID(ctx, userID)
	if err != nil {
		return nil, notFound(err, "installer")
	}
	return installer, nil
}

// Create attaches a new installer profile to an existing account. The profile
// starts pending approval and a customer account becomes an installer account.
func (s *installerService) Create(ctx context.Context, userID uint, input InstallerProfileInput) (*model.Installer, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	var installer *model.Installer
	err := s.store.WithTransaction(ctx, func(ctx context.Context, tx repository.Store) error {
		user, err := tx.Users().FindByID(ctx, userID)
		if err != nil {
			return notFound(err, "user")
		}
		if _, err := tx.Installers().FindByUserID(ctx, userID); err == nil {
			return apperrors.ErrProfileExists
		} else if !isNotFound(err) {
			return fmt.Errorf("find installer: %w", err)
		}
		if err := checkInstallerUnique(ctx, tx.Installers(), input.CompanyName, input.OrgNumber, 0); err != nil {
			return err
		}

		installer = &model.Installer{
			UserID:        userID,
			CompanyName:   input.CompanyName,
			OrgNumber:     input.OrgNumber,
			ContactPerson: input.ContactPerson,
			Email:         input.Email,
			Phone:         input.Phone,
			Address:       input.Address,
			PostalCode:    input.PostalCode,
			City:          input.City,
			County:        input.County,
			Municipality:  input.Municipality,
			Website:       input.Website,
			Active:        true,
		}
		if err := tx.Installers().Create(ctx, installer); err != nil {
			return fmt.Errorf("create installer: %w", err)
		}

		if user.Role == model.RoleCustomer {
			if err := tx.Users().UpdateFields(ctx, userID, map[string]interface{}{"role": model.RoleInstaller}); err != nil {
				return fmt.Errorf("promote user: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("installer profile created", "installer_id", installer.ID, "user_id", userID)
	return installer, nil
}

// ListAll returns every installer with its username.
func (s *installerService) ListAll(ctx context.Context) ([]model.InstallerListing, error) {
	return s.store.Installers().List(ctx)
}

// ListPending returns installers awaiting approval.
func (s *installerService) ListPending(ctx context.Context) ([]model.Installer, error) {
	return s.store.Installers().ListPending(ctx)
}

// UpdateProfile lets an installer edit its own profile.
func (s *installerService) UpdateProfile(ctx context.Context, userID uint, input InstallerProfileInput) (*model.Installer, error) {
	installer, err := s.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.applyProfile(ctx, installer, input, nil)
}

// AdminUpdate edits any installer.
func (s *installerService) AdminUpdate(ctx context.Context, id uint, input InstallerAdminInput) (*model.Installer, error) {
	installer, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if input.Rating != nil && (input.Rating.IsNegative() || input.Rating.GreaterThan(decimal.NewFromInt(5))) {
		return nil, apperrors.Invalid("rating", "must be between 0 and 5")
	}
	return s.applyProfile(ctx, installer, input.InstallerProfileInput, func(inst *model.Installer) {
		if input.Certified != nil {
			inst.Certified = *input.Certified
		}
		if input.Rating != nil {
			inst.Rating = input.Rating.Round(2)
		}
		if input.TotalServices != nil {
			inst.TotalServices = *input.TotalServices
		}
	})
}

func (s *installerService) applyProfile(ctx context.Context, installer *model.Installer, input InstallerProfileInput, extra func(*model.Installer)) (*model.Installer, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	if err := checkInstallerUnique(ctx, s.store.Installers(), input.CompanyName, input.OrgNumber, installer.ID); err != nil {
		return nil, err
	}

	installer.CompanyName = input.CompanyName
	installer.OrgNumber = input.OrgNumber
	installer.ContactPerson = input.ContactPerson
	installer.Email = input.Email
	installer.Phone = input.Phone
	installer.Address = input.Address
	installer.PostalCode = input.PostalCode
	installer.City = input.City
	installer.County = input.County
	installer.Municipality = input.Municipality
	installer.Website = input.Website
	if extra != nil {
		extra(installer)
	}

	if err := s.store.Installers().Update(ctx, installer); err != nil {
		return nil, fmt.Errorf("update installer: %w", err)
	}
	return installer, nil
}

// Approve sets the approval flag.
func (s *installerService) Approve(ctx context.Context, id uint, approved bool) (*MessageResponse, error) {
	return s.SetStatus(ctx, id, InstallerStatusInput{Approved: &approved})
}

// SetStatus moves an installer through pending, approved, deactivated and
// reactivated and describes the transition.
func (s *installerService) SetStatus(ctx context.Context, id uint, input InstallerStatusInput) (*MessageResponse, error) {
	if input.Approved == nil && input.Active == nil {
		return nil, apperrors.Invalid("status", "approved or active must be set")
	}
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	fields := make(map[string]interface{}, 2)
	if input.Approved != nil {
		fields["approved"] = *input.Approved
	}
	if input.Active != nil {
		fields["active"] = *input.Active
	}
	if err := s.store.Installers().UpdateFields(ctx, id, fields); err != nil {
		return nil, notFound(err, "installer")
	}

	s.logger.Info("installer status changed", "installer_id", id, "fields", fields)
	return &MessageResponse{Message: statusMessage(input)}, nil
}

func statusMessage(input InstallerStatusInput) string {
	switch {
	case input.Active != nil && !*input.Active:
		return "installer deactivated"
	case input.Active != nil && *input.Active:
		return "installer activated"
	case input.Approved != nil && *input.Approved:
		return "installer approved"
	case input.Approved != nil && !*input.Approved:
		return "installer approval revoked"
	default:
		return "installer status updated"
	}
}

// Delete erases an installer and everything that references it, including
// its user account.
func (s *installerService) Delete(ctx context.Context, id uint) error {
	err := s.store.WithTransaction(ctx, func(ctx context.Context, tx repository.Store) error {
		installer, err := tx.Installers().FindByID(ctx, id)
		if err != nil {
			return notFound(err, "installer")
		}
		if err := tx.ServiceAreas().DeleteByInstaller(ctx, id); err != nil {
			return fmt.Errorf("delete service areas: %w", err)
		}
		if err := tx.RequestContacts().DeleteByInstaller(ctx, id); err != nil {
			return fmt.Errorf("delete request contacts: %w", err)
		}
		if err := tx.CustomerContacts().DeleteByInstaller(ctx, id); err != nil {
			return fmt.Errorf("delete customer contacts: %w", err)
		}
		if err := tx.Installers().Delete(ctx, id); err != nil {
			return fmt.Errorf("delete installer: %w", err)
		}
		if err := tx.Users().Delete(ctx, installer.UserID); err != nil {
			return fmt.Errorf("delete installer user: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.logger.Info("installer deleted", "installer_id", id)
	return nil
}
