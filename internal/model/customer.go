package model

import "time"

// Customer is the optional profile of a logged-in customer.
type Customer struct {
	ID                 uint      `json:"id" gorm:"primaryKey"`
	UserID             *uint     `json:"userId,omitempty" gorm:"index"`
	FullName           string    `json:"fullName" gorm:"size:255;not null"`
	Email              string    `json:"email" gorm:"size:255;not null"`
	Phone              string    `json:"phone" gorm:"size:50"`
	Address            string    `json:"address,omitempty" gorm:"type:text"`
	PostalCode         string    `json:"postalCode,omitempty" gorm:"size:4"`
	City               string    `json:"city,omitempty" gorm:"size:255"`
	County             string    `json:"county,omitempty" gorm:"size:255"`
	Municipality       string    `json:"municipality" gorm:"size:255;not null;index"`
	SubscriptionActive bool      `json:"subscriptionActive" gorm:"default:true"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`

	// Relations
	User *User `json:"-" gorm:"foreignKey:UserID"`
}

// HeatPump is a unit owned by a customer.
type HeatPump struct {
	ID              uint       `json:"id" gorm:"primaryKey"`
	CustomerID      uint       `json:"customerId" gorm:"not null;index"`
	Brand           string     `json:"brand" gorm:"size:255;not null"`
	Model           string     `json:"model" gorm:"size:255;not null"`
	LastServiceDate *time.Time `json:"lastServiceDate,omitempty" gorm:"type:date"`
	NextServiceDue  *time.Time `json:"nextServiceDue,omitempty" gorm:"type:date"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`

	// Relations
	Customer *Customer `json:"-" gorm:"foreignKey:CustomerID"`
}

// CustomerContact records a logged-in customer reaching out to an installer.
type CustomerContact struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	CustomerID  uint      `json:"customerId" gorm:"not null;index"`
	InstallerID uint      `json:"installerId" gorm:"not null;index"`
	ContactedAt time.Time `json:"contactedAt" gorm:"autoCreateTime"`
	Status      string    `json:"status" gorm:"size:20;not null;default:'pending'"` // pending, accepted, completed
	Notes       string    `json:"notes,omitempty" gorm:"type:text"`

	// Relations
	Customer  *Customer  `json:"-" gorm:"foreignKey:CustomerID"`
	Installer *Installer `json:"-" gorm:"foreignKey:InstallerID"`
}

// TableName keeps the historical table name.
func (CustomerContact) TableName() string {
	return "customer_installer_contacts"
}
