package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Installer represents a heat-pump service company.
type Installer struct {
	ID            uint            `json:"id" gorm:"primaryKey"`
	UserID        uint            `json:"userId" gorm:"uniqueIndex;not null"`
	CompanyName   string          `json:"companyName" gorm:"uniqueIndex;size:255;not null"`
	OrgNumber     string          `json:"orgNumber" gorm:"uniqueIndex;size:9;not null"`
	ContactPerson string          `json:"contactPerson" gorm:"size:255;not null"`
	Email         string          `json:"email" gorm:"size:255;not null"`
	Phone         string          `json:"phone" gorm:"size:50;not null"`
	Address       string          `json:"address,omitempty" gorm:"type:text"`
	PostalCode    string          `json:"postalCode,omitempty" gorm:"size:4"`
	City          string          `json:"city,omitempty" gorm:"size:255"`
	County        string          `json:"county,omitempty" gorm:"size:255;index"`
	Municipality  string          `json:"municipality,omitempty" gorm:"size:255;index"`
	Website       string          `json:"website,omitempty" gorm:"type:text"`
	Certified     bool            `json:"certified" gorm:"default:false"`
	Approved      bool            `json:"approved" gorm:"default:false;index"`
	Active        bool            `json:"active" gorm:"default:true;index"`
	Rating        decimal.Decimal `json:"rating" gorm:"type:decimal(3,2);not null;default:0"`
	TotalServices int             `json:"totalServices" gorm:"not null;default:0"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`

	// Relations
	User         *User         `json:"-" gorm:"foreignKey:UserID"`
	ServiceAreas []ServiceArea `json:"-" gorm:"foreignKey:InstallerID"`
}

// Status returns the approval state name of the installer.
func (i *Installer) Status() string {
	switch {
	case !i.Approved:
		return "pending"
	case !i.Active:
		return "deactivated"
	default:
		return "approved"
	}
}

// Matchable reports whether the installer may be returned by area matching.
func (i *Installer) Matchable() bool {
	return i.Approved && i.Active
}

// InstallerMatch is an installer returned by area matching together with the
// distinct counties it was matched through.
type InstallerMatch struct {
	Installer
	Counties []string `json:"counties"`
}

// InstallerListing is an installer row for the admin overview.
type InstallerListing struct {
	Installer
	Username string `json:"username"`
}

// ServiceArea is one (county, municipality) pair an installer covers.
type ServiceArea struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	InstallerID  uint      `json:"installerId" gorm:"not null;index"`
	County       string    `json:"county" gorm:"size:255;not null;index"`
	Municipality string    `json:"municipality" gorm:"size:255;not null;index"`
	CreatedAt    time.Time `json:"createdAt"`

	// Relations
	Installer *Installer `json:"-" gorm:"foreignKey:InstallerID;constraint:OnDelete:CASCADE"`
}

// AreaKey identifies a (county, municipality) pair.
type AreaKey struct {
	County       string
	Municipality string
}

// Key returns the pair the area covers.
func (a ServiceArea) Key() AreaKey {
	return AreaKey{County: a.County, Municipality: a.Municipality}
}
