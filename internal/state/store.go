// Package state holds the booking state of one wizard session.
package state

import "trek-insurance/internal/data/entity"

// Store owns one session's BookingState. None of its operations can fail: inputs are
// expected to have passed the step validators already.
//
// A Store is not safe for concurrent use; the usecase layer builds one per request.
type Store struct {
	state entity.BookingState
}

// NewStore returns a store holding the default state.
func NewStore() *Store {
	return &Store{state: entity.NewBookingState()}
}

// Restore returns a store holding a copy of a previously saved state.
func Restore(s entity.BookingState) *Store {
	return &Store{state: s.Clone()}
}

// State returns a copy of the current state.
func (s *Store) State() entity.BookingState {
	return s.state.Clone()
}

func (s *Store) SelectedPackage() *entity.Package {
	return s.state.SelectedPackage
}

func (s *Store) BookingDetails() entity.BookingDetails {
	return s.state.Clone().BookingDetails
}

func (s *Store) TripDetails() entity.TripDetails {
	return s.state.BookingDetails.TripDetails
}

func (s *Store) Travellers() []entity.TravellerInfo {
	return s.state.Clone().BookingDetails.Travellers
}

func (s *Store) UserInfo() entity.UserInfo {
	return s.state.UserInfo
}

func (s *Store) PaymentInfo() entity.PaymentInfo {
	return s.state.PaymentInfo
}

// Total is recomputed from the current package and traveller count on every call.
func (s *Store) Total() float64 {
	return s.state.Total()
}

func (s *Store) SetSelectedPackage(pkg entity.Package) {
	s.state.SelectedPackage = &pkg
}

// SetBookingDetails shallow-merges patch into the booking details.
func (s *Store) SetBookingDetails(patch BookingDetailsPatch) {
	s.state.BookingDetails = Merge(s.state.BookingDetails, patch)
}

func (s *Store) SetUserInfo(info entity.UserInfo) {
	s.state.UserInfo = info
}

func (s *Store) SetPaymentInfo(info entity.PaymentInfo) {
	s.state.PaymentInfo = info
}

// Reset restores every field to the defaults of entity.NewBookingState.
func (s *Store) Reset() {
	s.state = entity.NewBookingState()
}
