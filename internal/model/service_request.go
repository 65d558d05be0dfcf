package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// RequestStatus represents the status of a service request.
type RequestStatus string

const (
	RequestStatusOpen      RequestStatus = "open"
	RequestStatusContacted RequestStatus = "contacted"
	RequestStatusClosed    RequestStatus = "closed"
)

// Valid reports whether s is a known request status.
func (s RequestStatus) Valid() bool {
	switch s {
	case RequestStatusOpen, RequestStatusContacted, RequestStatusClosed:
		return true
	}
	return false
}

// ServiceRequest is an anonymous customer submission routed by municipality.
type ServiceRequest struct {
	ID                   uint          `json:"id" gorm:"primaryKey"`
	FullName             string        `json:"fullName" gorm:"size:255;not null"`
	Email                string        `json:"email,omitempty" gorm:"size:255"`
	Phone                string        `json:"phone" gorm:"size:50;not null"`
	Address              string        `json:"address" gorm:"type:text;not null"`
	PostalCode           string        `json:"postalCode" gorm:"size:4;not null"`
	City                 string        `json:"city" gorm:"size:255;not null"`
	County               string        `json:"county" gorm:"size:255;not null;index"`
	Municipality         string        `json:"municipality" gorm:"size:255;not null;index"`
	HeatPumpBrand        string        `json:"heatPumpBrand,omitempty" gorm:"size:255"`
	HeatPumpModel        string        `json:"heatPumpModel,omitempty" gorm:"size:255"`
	ServiceType          string        `json:"serviceType" gorm:"size:100"`
	Description          string        `json:"description,omitempty" gorm:"type:text"`
	PreferredContactTime string        `json:"preferredContactTime,omitempty" gorm:"size:100"`
	Status               RequestStatus `json:"status" gorm:"type:varchar(20);not null;default:'open';index"`
	CreatedAt            time.Time     `json:"createdAt"`
	UpdatedAt            time.Time     `json:"updatedAt"`
}

// ContactStatus represents the progress of an installer's interest in a request.
type ContactStatus string

const (
	ContactStatusInterested ContactStatus = "interested"
	ContactStatusContacted  ContactStatus = "contacted"
	ContactStatusQuoted     ContactStatus = "quoted"
	ContactStatusAccepted   ContactStatus = "accepted"
	ContactStatusCompleted  ContactStatus = "completed"
)

// ServiceRequestContact records one installer interaction with a request.
// Rows are append-only; the same installer may appear more than once.
type ServiceRequestContact struct {
	ID               uint             `json:"id" gorm:"primaryKey"`
	ServiceRequestID uint             `json:"serviceRequestId" gorm:"not null;index"`
	InstallerID      uint             `json:"installerId" gorm:"not null;index"`
	ContactedAt      time.Time        `json:"contactedAt" gorm:"autoCreateTime"`
	Status           ContactStatus    `json:"status" gorm:"type:varchar(20);not null;default:'interested'"`
	Notes            string           `json:"notes,omitempty" gorm:"type:text"`
	QuoteAmount      *decimal.Decimal `json:"quoteAmount,omitempty" gorm:"type:decimal(10,2)"`

	// Relations
	ServiceRequest *ServiceRequest `json:"-" gorm:"foreignKey:ServiceRequestID"`
	Installer      *Installer      `json:"-" gorm:"foreignKey:InstallerID"`
}
