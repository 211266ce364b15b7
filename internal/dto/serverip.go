package dto

import "time"

type SetServerIPRequestDTO struct {
	ResourceName string `json:"resource_name" example:"adv_garage"`
	IPAddress    string `json:"ip_address" example:"1.2.3.4"`
}

type ServerIPResponseDTO struct {
	ResourceName string     `json:"resource_name" example:"adv_garage"`
	IPAddress    string     `json:"ip_address" example:"1.2.3.4"`
	LicenseKey   string     `json:"license_key,omitempty"`
	IsActive     bool       `json:"is_active"`
	IsVerified   bool       `json:"is_verified"`
	LastActive   *time.Time `json:"last_active,omitempty"`
}

type VerifyRequestDTO struct {
	ResourceName     string `json:"resource_name" example:"adv_garage"`
	IPAddress        string `json:"ip_address" example:"1.2.3.4"`
	ServerIdentifier string `json:"server_identifier" example:"srv-eu-01"`
}

type VerifyKeyRequestDTO struct {
	LicenseKey       string `json:"license_key"`
	IPAddress        string `json:"ip_address" example:"1.2.3.4"`
	ServerIdentifier string `json:"server_identifier" example:"srv-eu-01"`
}

type VerifyResponseDTO struct {
	Verified bool `json:"verified"`
}
