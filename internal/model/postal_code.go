package model

import "time"

// PostalCode maps a Norwegian postal code to its place, municipality and county.
type PostalCode struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	PostalCode   string    `json:"postalCode" gorm:"uniqueIndex;size:4;not null"`
	PostPlace    string    `json:"postPlace" gorm:"size:255;not null"`
	Municipality string    `json:"municipality" gorm:"size:255;not null;index"`
	County       string    `json:"county" gorm:"size:255;not null"`
	CreatedAt    time.Time `json:"createdAt"`
}

// AdminStats summarises the marketplace for the admin dashboard.
type AdminStats struct {
	TotalCustomers      int64 `json:"totalCustomers"`
	ActiveInstallers    int64 `json:"activeInstallers"`
	PendingApprovals    int64 `json:"pendingApprovals"`
	OpenServiceRequests int64 `json:"openServiceRequests"`
	MonthlyRevenue      int64 `json:"monthlyRevenue"`
}

// All returns every persisted model in migration order.
func All() []interface{} {
	return []interface{}{
		&User{},
		&Installer{},
		&ServiceArea{},
		&ServiceRequest{},
		&ServiceRequestContact{},
		&Customer{},
		&HeatPump{},
		&CustomerContact{},
		&PostalCode{},
	}
}
