package queries

import "time"

type CatalogItemView struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	PricePerDay float64 `json:"pricePerDay"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
}

type RentalView struct {
	ID             string    `json:"id"`
	EquipmentID    string    `json:"equipmentId"`
	EquipmentTitle string    `json:"equipmentTitle"`
	UserEmail      string    `json:"userEmail"`
	UserName       string    `json:"userName"`
	StartDate      string    `json:"startDate"`
	EndDate        string    `json:"endDate"`
	StartTime      string    `json:"startTime"`
	EndTime        string    `json:"endTime"`
	Status         string    `json:"status"`
	AdminNote      string    `json:"adminNote,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

type UserRentalSummary struct {
	Total   int `json:"total"`
	Pending int `json:"pending"`
}

type DashboardView struct {
	TotalRequests int `json:"totalRequests"`
	Pending       int `json:"pending"`
	Approved      int `json:"approved"`
	Disapproved   int `json:"disapproved"`
	CatalogSize   int `json:"catalogSize"`
}

type PreferenceView struct {
	DarkMode bool `json:"darkMode"`
}
