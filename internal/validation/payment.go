package validation

import (
	"regexp"
	"strconv"

	"trek-insurance/internal/data/entity"
)

// Payment field keys.
const (
	FieldCardholderName = "cardholderName"
	FieldCardNumber     = "cardNumber"
	FieldExpiry         = "expiry"
	FieldCVV            = "cvv"
	FieldPhoneNumber    = "phoneNumber"
	FieldMethod         = "method"
)

const (
	MinCardDigits   = 13
	MinWalletDigits = 10
)

var (
	expiryPattern = regexp.MustCompile(`^\d{2}/\d{2}$`)
	cvvPattern    = regexp.MustCompile(`^\d{3,4}$`)
	digitsPattern = regexp.MustCompile(`^\d+$`)
)

// PaymentInput is what the payment form submits. Card is read for card payments only and
// PhoneNumber for wallet payments only.
type PaymentInput struct {
	Method      entity.PaymentMethod
	Card        entity.PaymentInfo
	PhoneNumber string
}

type PaymentResult struct {
	OK     bool
	Errors Errors
	// Info is what gets stored on success: the card as entered, or a sentinel card number.
	Info entity.PaymentInfo
}

// ValidatePayment branches on the chosen method and builds the PaymentInfo to store.
func ValidatePayment(in PaymentInput) PaymentResult {
	errs := Errors{}
	var info entity.PaymentInfo

	switch {
	case in.Method == entity.PaymentMethodCard:
		validateCard(in.Card, errs)
		info = in.Card
	case in.Method == entity.PaymentMethodConnectIPS:
		info = entity.PaymentInfo{CardNumber: entity.ConnectIPSCardNumber}
	case in.Method.IsWallet():
		phone := stripSpaces(in.PhoneNumber)
		if phone == "" {
			errs.Add(FieldPhoneNumber, "Phone number is required")
		} else if !digitsPattern.MatchString(phone) || len(phone) < MinWalletDigits {
			errs.Add(FieldPhoneNumber, "Invalid phone number")
		}
		info = entity.PaymentInfo{CardNumber: entity.WalletCardNumber(in.Method, phone)}
	default:
		errs.Add(FieldMethod, "Please select a payment method")
	}

	if !errs.OK() {
		return PaymentResult{Errors: errs}
	}
	return PaymentResult{OK: true, Errors: errs, Info: info}
}

func validateCard(card entity.PaymentInfo, errs Errors) {
	if blank(card.CardholderName) {
		errs.Add(FieldCardholderName, "Cardholder name is required")
	}

	number := stripSpaces(card.CardNumber)
	if number == "" {
		errs.Add(FieldCardNumber, "Card number is required")
	} else if !digitsPattern.MatchString(number) || len(number) < MinCardDigits {
		errs.Add(FieldCardNumber, "Invalid card number")
	}

	if card.Expiry == "" {
		errs.Add(FieldExpiry, "Expiry date is required")
	} else if !validExpiry(card.Expiry) {
		errs.Add(FieldExpiry, "Invalid format (MM/YY)")
	}

	if card.CVV == "" {
		errs.Add(FieldCVV, "CVV is required")
	} else if !cvvPattern.MatchString(card.CVV) {
		errs.Add(FieldCVV, "Invalid CVV")
	}
}

func validExpiry(s string) bool {
	if !expiryPattern.MatchString(s) {
		return false
	}
	month, err := strconv.Atoi(s[:2])
	if err != nil {
		return false
	}
	return month >= 1 && month <= 12
}
