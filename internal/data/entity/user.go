package entity

const DefaultCountryCode = "+977"

type UserInfo struct {
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

func NewUserInfo() UserInfo {
	return UserInfo{CountryCode: DefaultCountryCode}
}
