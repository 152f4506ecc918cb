package dto

import (
	"time"

	"github.com/google/uuid"

	"gym-retention-be/internal/entity"
)

type CreatePaymentRequest struct {
	MemberId uuid.UUID `json:"member_id" validate:"required"`
	Amount   float64   `json:"amount" validate:"gt=0"`
	DueDate  time.Time `json:"due_date" validate:"required"`
}

type PaymentResponse struct {
	Id       uuid.UUID            `json:"id"`
	MemberId uuid.UUID            `json:"member_id"`
	Amount   float64              `json:"amount"`
	DueDate  time.Time            `json:"due_date"`
	PaidAt   *time.Time           `json:"paid_at,omitempty"`
	Status   entity.PaymentStatus `json:"status"`
}

type CheckoutRequest struct {
	PaymentId uuid.UUID `json:"payment_id" validate:"required"`
	FirstName string    `json:"first_name" validate:"required"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email" validate:"required,email"`
	Phone     string    `json:"phone" validate:"omitempty"`
}

type CheckoutResponse struct {
	PaymentId       uuid.UUID `json:"payment_id"`
	SnapRedirectUrl string    `json:"snap_redirect_url"`
	SnapToken       string    `json:"snap_token"`
}

type MidtransWebhookRequest struct {
	TransactionStatus string `json:"transaction_status"`
	OrderId           string `json:"order_id"`
	FraudStatus       string `json:"fraud_status"`
	// Signature validation fields
	SignatureKey string `json:"signature_key"`
	StatusCode   string `json:"status_code"`
	GrossAmount  string `json:"gross_amount"`
}

type OverdueSweepResponse struct {
	MarkedLate int64 `json:"marked_late"`
}
