package entity

import (
	"github.com/google/uuid"
)

type OrderStatus string

const (
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Order is a settled purchase. Card data is kept only as last four digits and a keyed fingerprint.
type Order struct {
	Base
	PolicyNumber       string        `db:"policy_number" json:"policy_number"`
	SessionID          uuid.UUID     `db:"session_id" json:"session_id"`
	PackageID          string        `db:"package_id" json:"package_id"`
	PackageName        string        `db:"package_name" json:"package_name"`
	NumberOfTravellers int           `db:"number_of_travellers" json:"number_of_travellers"`
	LeadTraveller      string        `db:"lead_traveller" json:"lead_traveller"`
	TotalPrice         float64       `db:"total_price" json:"total_price"`
	PaymentMethod      PaymentMethod `db:"payment_method" json:"payment_method"`
	CardLast4          string        `db:"card_last4" json:"card_last4,omitempty"`
	CardFingerprint    string        `db:"card_fingerprint" json:"-"`
	TransactionID      string        `db:"transaction_id" json:"transaction_id"`
	PaymentStatus      PaymentStatus `db:"payment_status" json:"payment_status"`
	Status             OrderStatus   `db:"status" json:"status"`
}
