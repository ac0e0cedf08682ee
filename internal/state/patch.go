package state

import "trek-insurance/internal/data/entity"

// BookingDetailsPatch is a partial update of entity.BookingDetails. A nil field is absent and
// leaves the current value untouched; a non-nil field replaces the current value wholesale.
type BookingDetailsPatch struct {
	SelectedPackage  **entity.Package
	Duration         *string
	AltitudeLimit    *string
	InsurancePlan    **entity.InsurancePlan
	DeviceDeposit    *float64
	TripDetails      *entity.TripDetails
	Travellers       *[]entity.TravellerInfo
	PrimaryContact   *entity.PrimaryContact
	EmergencyContact *entity.EmergencyContact
}

// Merge applies patch to details and returns the result. details is not modified.
func Merge(details entity.BookingDetails, patch BookingDetailsPatch) entity.BookingDetails {
	out := details
	out.Travellers = entity.CopyTravellers(details.Travellers)

	if patch.SelectedPackage != nil {
		out.SelectedPackage = *patch.SelectedPackage
	}
	if patch.Duration != nil {
		out.Duration = *patch.Duration
	}
	if patch.AltitudeLimit != nil {
		out.AltitudeLimit = *patch.AltitudeLimit
	}
	if patch.InsurancePlan != nil {
		out.InsurancePlan = *patch.InsurancePlan
	}
	if patch.DeviceDeposit != nil {
		out.DeviceDeposit = *patch.DeviceDeposit
	}
	if patch.TripDetails != nil {
		out.TripDetails = *patch.TripDetails
	}
	if patch.Travellers != nil {
		out.Travellers = entity.CopyTravellers(*patch.Travellers)
	}
	if patch.PrimaryContact != nil {
		out.PrimaryContact = *patch.PrimaryContact
	}
	if patch.EmergencyContact != nil {
		out.EmergencyContact = *patch.EmergencyContact
	}

	return out
}

// Patch builders keep call sites free of temporaries.

func WithTripDetails(trip entity.TripDetails) BookingDetailsPatch {
	return BookingDetailsPatch{TripDetails: &trip}
}

func WithTravellers(travellers []entity.TravellerInfo) BookingDetailsPatch {
	return BookingDetailsPatch{Travellers: &travellers}
}

func WithPackage(pkg *entity.Package) BookingDetailsPatch {
	return BookingDetailsPatch{SelectedPackage: &pkg}
}

func WithPrimaryContact(contact entity.PrimaryContact) BookingDetailsPatch {
	return BookingDetailsPatch{PrimaryContact: &contact}
}
