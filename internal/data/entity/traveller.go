package entity

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// AdultAge is the age from which nominee details are no longer required.
const AdultAge = 18

type TravellerInfo struct {
	FullName       string `json:"full_name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	CountryCode    string `json:"country_code"`
	PassportNumber string `json:"passport_number"`
	Nationality    string `json:"nationality"`
	DateOfBirth    string `json:"date_of_birth"`
	Gender         Gender `json:"gender"`
	Age            int    `json:"age"`

	// Minors only
	NomineeName     string `json:"nominee_name,omitempty"`
	NomineeRelation string `json:"nominee_relation,omitempty"`

	EmergencyName    string `json:"emergency_name"`
	EmergencyContact string `json:"emergency_contact"`
	EmergencyEmail   string `json:"emergency_email,omitempty"`
}

func (t TravellerInfo) IsMinor() bool {
	return t.Age < AdultAge
}

// NewTraveller returns an empty traveller record pre-filled with age.
func NewTraveller(age int) TravellerInfo {
	return TravellerInfo{
		CountryCode: DefaultCountryCode,
		Age:         age,
	}
}
