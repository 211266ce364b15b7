package dto

import "time"

type CreatePaymentRequestDTO struct {
	Amount     float64 `json:"amount" example:"500"`
	Method     string  `json:"method" example:"bank_transfer"`
	ProofImage string  `json:"proof_image" validate:"required"`
	PackageID  *int    `json:"package_id,omitempty"`
}

type PaymentResponseDTO struct {
	ID            int        `json:"id" example:"1"`
	Amount        float64    `json:"amount" example:"500"`
	Points        int        `json:"points" example:"500"`
	Method        string     `json:"method" example:"bank_transfer"`
	ReferenceCode string     `json:"reference_code" example:"1234567897"`
	Status        string     `json:"status" example:"PENDING"`
	AdminNote     string     `json:"admin_note,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	ProcessedAt   *time.Time `json:"processed_at,omitempty"`
}
