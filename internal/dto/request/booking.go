package request

import "trek-insurance/internal/data/entity"

type TripDetailsRequest struct {
	Nationality        string `json:"nationality"`
	NumberOfTravellers int    `json:"number_of_travellers"`
	TravellingFrom     string `json:"travelling_from"`
	TravellingTo       string `json:"travelling_to"`
	Adventure          string `json:"adventure"`
	StartDate          string `json:"start_date"`
	EndDate            string `json:"end_date"`
	Ages               []int  `json:"ages" validate:"max=20"`
}

func (r TripDetailsRequest) ToEntity() entity.TripDetails {
	return entity.TripDetails{
		Nationality:        r.Nationality,
		NumberOfTravellers: r.NumberOfTravellers,
		TravellingFrom:     r.TravellingFrom,
		TravellingTo:       r.TravellingTo,
		Adventure:          r.Adventure,
		StartDate:          r.StartDate,
		EndDate:            r.EndDate,
	}
}

type SelectPlanRequest struct {
	PackageID     string  `json:"package_id" validate:"required"`
	Duration      string  `json:"duration,omitempty" validate:"omitempty,numeric"`
	AltitudeLimit string  `json:"altitude_limit,omitempty" validate:"omitempty,numeric"`
	DeviceDeposit float64 `json:"device_deposit" validate:"gte=0"`
}

// TravellerRequest has no age: ages are taken from the trip details.
type TravellerRequest struct {
	FullName         string `json:"full_name"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	CountryCode      string `json:"country_code"`
	PassportNumber   string `json:"passport_number"`
	Nationality      string `json:"nationality"`
	DateOfBirth      string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	Gender           string `json:"gender" validate:"omitempty,oneof=male female other"`
	NomineeName      string `json:"nominee_name"`
	NomineeRelation  string `json:"nominee_relation"`
	EmergencyName    string `json:"emergency_name"`
	EmergencyContact string `json:"emergency_contact"`
	EmergencyEmail   string `json:"emergency_email" validate:"omitempty,email"`
}

func (r TravellerRequest) ToEntity() entity.TravellerInfo {
	countryCode := r.CountryCode
	if countryCode == "" {
		countryCode = entity.DefaultCountryCode
	}
	return entity.TravellerInfo{
		FullName:         r.FullName,
		Email:            r.Email,
		Phone:            r.Phone,
		CountryCode:      countryCode,
		PassportNumber:   r.PassportNumber,
		Nationality:      r.Nationality,
		DateOfBirth:      r.DateOfBirth,
		Gender:           entity.Gender(r.Gender),
		NomineeName:      r.NomineeName,
		NomineeRelation:  r.NomineeRelation,
		EmergencyName:    r.EmergencyName,
		EmergencyContact: r.EmergencyContact,
		EmergencyEmail:   r.EmergencyEmail,
	}
}

type TravellersRequest struct {
	Travellers []TravellerRequest `json:"travellers" validate:"max=20,dive"`
}

func (r TravellersRequest) ToEntities() []entity.TravellerInfo {
	list := make([]entity.TravellerInfo, len(r.Travellers))
	for i, t := range r.Travellers {
		list[i] = t.ToEntity()
	}
	return list
}

type UserInfoRequest struct {
	FullName           string `json:"full_name"`
	Email              string `json:"email"`
	Phone              string `json:"phone"`
	CountryCode        string `json:"country_code"`
	PassportNumber     string `json:"passport_number"`
	Nationality        string `json:"nationality"`
	CountryOfResidence string `json:"country_of_residence"`
	BillingAddress     string `json:"billing_address"`
	AgreeToTerms       bool   `json:"agree_to_terms"`
}

func (r UserInfoRequest) ToEntity() entity.UserInfo {
	return entity.UserInfo{
		FullName:           r.FullName,
		Email:              r.Email,
		Phone:              r.Phone,
		CountryCode:        r.CountryCode,
		PassportNumber:     r.PassportNumber,
		Nationality:        r.Nationality,
		CountryOfResidence: r.CountryOfResidence,
		BillingAddress:     r.BillingAddress,
		AgreeToTerms:       r.AgreeToTerms,
	}
}

// PaymentRequest carries card fields for card payments and PhoneNumber for wallets.
type PaymentRequest struct {
	Method         string `json:"method" validate:"required,oneof=card connectips esewa khalti"`
	CardholderName string `json:"cardholder_name"`
	CardNumber     string `json:"card_number"`
	Expiry         string `json:"expiry"`
	CVV            string `json:"cvv"`
	PhoneNumber    string `json:"phone_number"`
}
