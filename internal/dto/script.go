package dto

import "time"

// ScriptVersionDTO is the public view of a version entry; download links
// are only issued through the download-authorization endpoint.
type ScriptVersionDTO struct {
	Version   string    `json:"version" example:"1.2.0"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type ScriptResponseDTO struct {
	ID           int                `json:"id" example:"1"`
	Title        string             `json:"title" example:"Advanced Garage"`
	ResourceName string             `json:"resource_name" example:"adv_garage"`
	Description  string             `json:"description"`
	PricePoints  int                `json:"price_points" example:"2499"`
	Status       string             `json:"status" example:"ACTIVE"`
	Features     []string           `json:"features"`
	Requirements []string           `json:"requirements"`
	Versions     []ScriptVersionDTO `json:"versions,omitempty"`
	CreatedAt    time.Time          `json:"created_at"`
}

type ScriptListResponseDTO struct {
	Scripts []ScriptResponseDTO `json:"scripts"`
	Total   int                 `json:"total" example:"42"`
}

type PointsPackageDTO struct {
	ID          int     `json:"id" example:"1"`
	Name        string  `json:"name" example:"Starter"`
	Amount      float64 `json:"amount" example:"9.99"`
	Points      int     `json:"points" example:"1000"`
	BonusPoints int     `json:"bonus_points" example:"100"`
	IsActive    bool    `json:"is_active"`
}

type DownloadResponseDTO struct {
	DownloadURL string `json:"download_url"`
}
