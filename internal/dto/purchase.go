package dto

import "time"

type CreatePurchaseRequestDTO struct {
	ResourceName string `json:"resource_name" example:"adv_garage"`
}

type PurchaseResponseDTO struct {
	ID           int       `json:"id" example:"1"`
	ResourceName string    `json:"resource_name" example:"adv_garage"`
	Title        string    `json:"title" example:"Advanced Garage"`
	PricePaid    int       `json:"price_paid" example:"2499"`
	Status       string    `json:"status" example:"COMPLETED"`
	CreatedAt    time.Time `json:"created_at"`
}
