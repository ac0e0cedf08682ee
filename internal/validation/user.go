package validation

import "trek-insurance/internal/data/entity"

// User info field keys.
const (
	FieldCountryCode        = "countryCode"
	FieldCountryOfResidence = "countryOfResidence"
	FieldAgreeToTerms       = "agreeToTerms"
)

// ValidateUserInfo checks the policy holder form. The billing address is optional.
func ValidateUserInfo(u entity.UserInfo) Errors {
	errs := Errors{}

	if blank(u.FullName) {
		errs.Add(FieldFullName, "Full name is required")
	}
	if blank(u.Email) {
		errs.Add(FieldEmail, "Email is required")
	} else if !IsEmail(u.Email) {
		errs.Add(FieldEmail, "Invalid email address")
	}
	if blank(u.Phone) {
		errs.Add(FieldPhone, "Phone number is required")
	}
	if blank(u.CountryCode) {
		errs.Add(FieldCountryCode, "Country code is required")
	}
	if blank(u.PassportNumber) {
		errs.Add(FieldPassportNumber, "Passport/ID number is required")
	}
	if blank(u.Nationality) {
		errs.Add(FieldNationality, "Nationality is required")
	}
	if blank(u.CountryOfResidence) {
		errs.Add(FieldCountryOfResidence, "Country of residence is required")
	}
	if !u.AgreeToTerms {
		errs.Add(FieldAgreeToTerms, "You must agree to terms and conditions")
	}

	return errs
}
