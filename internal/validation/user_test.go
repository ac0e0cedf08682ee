package validation

import (
	"testing"

	"trek-insurance/internal/data/entity"

	"github.com/stretchr/testify/assert"
)

func TestValidateUserInfo(t *testing.T) {
	valid := entity.UserInfo{
		FullName:           "Mingma Tamang",
		Email:              "mingma@example.com",
		Phone:              "9841234567",
		CountryCode:        "+977",
		PassportNumber:     "PA7654321",
		Nationality:        "Nepali",
		CountryOfResidence: "Nepal",
		AgreeToTerms:       true,
	}
	assert.True(t, ValidateUserInfo(valid).OK())

	errs := ValidateUserInfo(entity.NewUserInfo())
	assert.Equal(t, Errors{
		FieldFullName:           "Full name is required",
		FieldEmail:              "Email is required",
		FieldPhone:              "Phone number is required",
		FieldPassportNumber:     "Passport/ID number is required",
		FieldNationality:        "Nationality is required",
		FieldCountryOfResidence: "Country of residence is required",
		FieldAgreeToTerms:       "You must agree to terms and conditions",
	}, errs)

	bad := valid
	bad.Email = "mingma.example.com"
	bad.CountryCode = ""
	errs = ValidateUserInfo(bad)
	assert.Equal(t, "Invalid email address", errs[FieldEmail])
	assert.Equal(t, "Country code is required", errs[FieldCountryCode])
}
