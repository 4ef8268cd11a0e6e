package paymentservice

import (
	"github.com/google/uuid"
)

// Package is a purchasable seat tier. The catalog is fixed, so it lives in
// code rather than the database.
type Package struct {
	Members    int    `json:"members"`
	PriceCents int    `json:"priceCents"`
	Tier       string `json:"tier"`
}

type CheckoutReq struct {
	PackageLimit int `json:"packageLimit" validate:"required,oneof=5 10 20"`
}

type Payment struct {
	ID            uuid.UUID `json:"id" db:"id"`
	HREmail       string    `json:"hrEmail" db:"hr_email"`
	PackageLimit  int       `json:"packageLimit" db:"package_limit"`
	AmountCents   int       `json:"amountCents" db:"amount_cents"`
	Tier          string    `json:"tier" db:"tier"`
	TransactionID string    `json:"transactionId" db:"transaction_id"`
	PaidAt        string    `json:"paidAt" db:"paid_at"`
}

type CheckoutResult struct {
	InsertedID    uuid.UUID `json:"insertedId"`
	TransactionID string    `json:"transactionId"`
	PackageLimit  int       `json:"packageLimit"`
	Tier          string    `json:"tier"`
}
