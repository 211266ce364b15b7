// Package events publishes storefront domain events for downstream
// consumers (notification bots, bookkeeping).
package events

import (
	"context"
	"time"
)

const (
	QueuePaymentApproved   = "payment.approved"
	QueuePurchaseCompleted = "purchase.completed"
)

type PaymentApprovedEvent struct {
	PaymentID  int       `json:"payment_id"`
	UserID     int       `json:"user_id"`
	Points     int       `json:"points"`
	Amount     float64   `json:"amount"`
	ApprovedAt time.Time `json:"approved_at"`
}

type PurchaseCompletedEvent struct {
	PurchaseID   int       `json:"purchase_id"`
	UserID       int       `json:"user_id"`
	ScriptID     int       `json:"script_id"`
	ResourceName string    `json:"resource_name"`
	PricePaid    int       `json:"price_paid"`
	CompletedAt  time.Time `json:"completed_at"`
}

type Publisher interface {
	PaymentApproved(ctx context.Context, event PaymentApprovedEvent) error
	PurchaseCompleted(ctx context.Context, event PurchaseCompletedEvent) error
	Close() error
}

// NoopPublisher is used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) PaymentApproved(ctx context.Context, event PaymentApprovedEvent) error {
	return nil
}

func (NoopPublisher) PurchaseCompleted(ctx context.Context, event PurchaseCompletedEvent) error {
	return nil
}

func (NoopPublisher) Close() error { return nil }
