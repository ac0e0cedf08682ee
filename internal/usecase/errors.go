package usecase

import (
	"errors"
	"fmt"

	"trek-insurance/internal/data/entity"
	"trek-insurance/internal/validation"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrPackageNotFound = errors.New("package not found")
	ErrOrderNotFound   = errors.New("order not found")
)

// ValidationError carries the field messages of a rejected form.
type ValidationError struct {
	Step   entity.Step
	Errors validation.Errors
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Step, e.Errors.String())
}

// TravellerValidationError carries one error map per traveller and the tab to focus.
type TravellerValidationError struct {
	Result validation.TravellersResult
}

func (e *TravellerValidationError) Error() string {
	if e.Result.FormError != "" {
		return "validation failed on travellers: " + e.Result.FormError
	}
	return fmt.Sprintf("validation failed on traveller %d: %s",
		e.Result.ActiveIndex, e.Result.Errors[e.Result.ActiveIndex].String())
}

// PreconditionError means the step cannot be shown yet; the client goes to Redirect instead.
type PreconditionError struct {
	Redirect entity.Step
	Reason   string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("cannot open step: %s", e.Reason)
}

func requirePackage(state entity.BookingState) error {
	if state.SelectedPackage == nil {
		return &PreconditionError{Redirect: entity.StepHome, Reason: "no package selected"}
	}
	return nil
}

// requireUnpaid stops a second charge for the same booking. Reset clears the payment, so a
// session can book again after it.
func requireUnpaid(state entity.BookingState) error {
	if state.PaymentInfo.CardNumber != "" {
		return &PreconditionError{Redirect: entity.StepSuccess, Reason: "booking already paid"}
	}
	return nil
}

func requireTripDetails(state entity.BookingState) error {
	if !state.BookingDetails.TripDetails.IsSubmitted() {
		return &PreconditionError{Redirect: entity.StepTripDetails, Reason: "trip details missing"}
	}
	return nil
}
