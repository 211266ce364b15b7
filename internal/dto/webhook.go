package dto

type PaymentWebhookDTO struct {
	EventID       string  `json:"event_id"`
	ReferenceCode string  `json:"reference_code"`
	Amount        float64 `json:"amount"`
}

type MembershipWebhookDTO struct {
	ExternalID string `json:"external_id"`
	Action     string `json:"action" enums:"joined,left"`
}
