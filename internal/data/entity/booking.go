package entity

const (
	DefaultDuration      = "14"
	DefaultAltitudeLimit = "3500"
)

type PrimaryContact struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	CountryCode    string `json:"country_code"`
	BillingAddress string `json:"billing_address"`
}

type EmergencyContact struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type BookingDetails struct {
	SelectedPackage  *Package         `json:"selected_package"`
	Duration         string           `json:"duration"`
	AltitudeLimit    string           `json:"altitude_limit"`
	InsurancePlan    *InsurancePlan   `json:"insurance_plan"`
	DeviceDeposit    float64          `json:"device_deposit"`
	TripDetails      TripDetails      `json:"trip_details"`
	Travellers       []TravellerInfo  `json:"travellers"`
	PrimaryContact   PrimaryContact   `json:"primary_contact"`
	EmergencyContact EmergencyContact `json:"emergency_contact"`
}

// BookingState is the whole in-progress purchase of one wizard session.
type BookingState struct {
	SelectedPackage *Package       `json:"selected_package"`
	BookingDetails  BookingDetails `json:"booking_details"`
	UserInfo        UserInfo       `json:"user_info"`
	PaymentInfo     PaymentInfo    `json:"payment_info"`
}

func NewBookingDetails() BookingDetails {
	return BookingDetails{
		Duration:      DefaultDuration,
		AltitudeLimit: DefaultAltitudeLimit,
		TripDetails: TripDetails{
			NumberOfTravellers: MinTravellers,
		},
		Travellers: []TravellerInfo{},
		PrimaryContact: PrimaryContact{
			CountryCode: DefaultCountryCode,
		},
	}
}

// NewBookingState returns the state a session starts with and returns to on reset.
func NewBookingState() BookingState {
	return BookingState{
		BookingDetails: NewBookingDetails(),
		UserInfo:       NewUserInfo(),
	}
}

// Total is the selected package price times the number of travellers, 0 without a package.
func (s BookingState) Total() float64 {
	if s.SelectedPackage == nil {
		return 0
	}
	return s.SelectedPackage.Price * float64(s.BookingDetails.TripDetails.NumberOfTravellers)
}

// Clone returns a copy that shares no mutable slices with s.
func (s BookingState) Clone() BookingState {
	out := s
	out.BookingDetails.Travellers = CopyTravellers(s.BookingDetails.Travellers)
	return out
}

// CopyTravellers copies list, keeping a nil list nil and an empty list empty.
func CopyTravellers(list []TravellerInfo) []TravellerInfo {
	if list == nil {
		return nil
	}
	out := make([]TravellerInfo, len(list))
	copy(out, list)
	return out
}
