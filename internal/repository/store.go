package repository

import (
	"context"

	"gorm.io/gorm"
)

// Store groups the repositories over one database handle and runs units of
// work spanning several of them.
type Store interface {
	Users() UserRepository
	Installers() InstallerRepository
	ServiceAreas() ServiceAreaRepository
	ServiceRequests() ServiceRequestRepository
	RequestContacts() RequestContactRepository
	Customers() CustomerRepository
	HeatPumps() HeatPumpRepository
	CustomerContacts() CustomerContactRepository
	PostalCodes() PostalCodeRepository
	// WithTransaction executes fn with a Store bound to a single database transaction.
	WithTransaction(ctx context.Context, fn func(ctx context.Context, tx Store) error) error
}

type gormStore struct {
	db *gorm.DB
}

// NewStore builds a GORM-backed store.
func NewStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) Users() UserRepository               { return NewUserRepository(s.db) }
func (s *gormStore) Installers() InstallerRepository     { return NewInstallerRepository(s.db) }
func (s *gormStore) ServiceAreas() ServiceAreaRepository { return NewServiceAreaRepository(s.db) }
func (s *gormStore) ServiceRequests() ServiceRequestRepository {
	return NewServiceRequestRepository(s.db)
}
func (s *gormStore) RequestContacts() RequestContactRepository {
	return NewRequestContactRepository(s.db)
}
func (s *gormStore) Customers() CustomerRepository { return NewCustomerRepository(s.db) }
func (s *gormStore) HeatPumps() HeatPumpRepository { return NewHeatPumpRepository(s.db) }
func (s *gormStore) CustomerContacts() CustomerContactRepository {
	return NewCustomerContactRepository(s.db)
}
func (s *gormStore) PostalCodes() PostalCodeRepository { return NewPostalCodeRepository(s.db) }

// WithTransaction executes a function within a database transaction.
func (s *gormStore) WithTransaction(ctx context.Context, fn func(ctx context.Context, tx Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, &gormStore{db: tx})
	})
}
