package entity

import "strings"

type PaymentMethod string

const (
	PaymentMethodCard       PaymentMethod = "card"
	PaymentMethodConnectIPS PaymentMethod = "connectips"
	PaymentMethodEsewa      PaymentMethod = "esewa"
	PaymentMethodKhalti     PaymentMethod = "khalti"
)

func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCard, PaymentMethodConnectIPS, PaymentMethodEsewa, PaymentMethodKhalti:
		return true
	}
	return false
}

// IsWallet reports whether the method settles against a phone-linked wallet.
func (m PaymentMethod) IsWallet() bool {
	return m == PaymentMethodEsewa || m == PaymentMethodKhalti
}

// ConnectIPSCardNumber replaces the card number when paying by bank transfer.
const ConnectIPSCardNumber = "CONNECTIPS"

// WalletCardNumber builds the sentinel card number for wallet payments, e.g. ESEWA_9841234567.
func WalletCardNumber(m PaymentMethod, phone string) string {
	return strings.ToUpper(string(m)) + "_" + phone
}

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

type PaymentInfo struct {
	CardNumber     string `json:"card_number"`
	Expiry         string `json:"expiry"`
	CVV            string `json:"cvv"`
	CardholderName string `json:"cardholder_name"`
}

// Method derives the payment method from the stored card number.
func (p PaymentInfo) Method() PaymentMethod {
	switch {
	case p.CardNumber == ConnectIPSCardNumber:
		return PaymentMethodConnectIPS
	case strings.HasPrefix(p.CardNumber, "ESEWA_"):
		return PaymentMethodEsewa
	case strings.HasPrefix(p.CardNumber, "KHALTI_"):
		return PaymentMethodKhalti
	}
	return PaymentMethodCard
}
