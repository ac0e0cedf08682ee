package validation

import (
	"regexp"

	"trek-insurance/internal/data/entity"
)

// Traveller field keys.
const (
	FieldFullName         = "fullName"
	FieldEmail            = "email"
	FieldPhone            = "phone"
	FieldPassportNumber   = "passportNumber"
	FieldGender           = "gender"
	FieldDateOfBirth      = "dateOfBirth"
	FieldNomineeName      = "nomineeName"
	FieldNomineeRelation  = "nomineeRelation"
	FieldEmergencyName    = "emergencyName"
	FieldEmergencyContact = "emergencyContact"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsEmail reports whether s looks like an email address.
func IsEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// ValidateTraveller checks one traveller record. Nominee fields are required only for minors.
func ValidateTraveller(t entity.TravellerInfo) Errors {
	errs := Errors{}

	if blank(t.FullName) {
		errs.Add(FieldFullName, "Full name is required")
	}

	if blank(t.Email) {
		errs.Add(FieldEmail, "Email is required")
	} else if !IsEmail(t.Email) {
		errs.Add(FieldEmail, "Invalid email")
	}

	if blank(t.Phone) {
		errs.Add(FieldPhone, "Phone is required")
	}
	if blank(t.PassportNumber) {
		errs.Add(FieldPassportNumber, "Passport/ID is required")
	}
	if blank(t.Nationality) {
		errs.Add(FieldNationality, "Nationality is required")
	}
	if blank(string(t.Gender)) {
		errs.Add(FieldGender, "Gender is required")
	}
	if blank(t.DateOfBirth) {
		errs.Add(FieldDateOfBirth, "Date of birth is required")
	}

	if t.IsMinor() {
		if blank(t.NomineeName) {
			errs.Add(FieldNomineeName, "Nominee name is required for minors")
		}
		if blank(t.NomineeRelation) {
			errs.Add(FieldNomineeRelation, "Nominee relation is required for minors")
		}
	}

	if blank(t.EmergencyName) {
		errs.Add(FieldEmergencyName, "Emergency contact name is required")
	}
	if blank(t.EmergencyContact) {
		errs.Add(FieldEmergencyContact, "Emergency contact number is required")
	}

	return errs
}

// TravellersResult is the outcome of validating the whole traveller form.
type TravellersResult struct {
	// Errors holds one entry per traveller, empty for a valid record.
	Errors []Errors
	// FormError is set when the list does not match the declared traveller count.
	FormError string
	// ActiveIndex is the first traveller with an error, -1 when there is none.
	ActiveIndex int
}

func (r TravellersResult) OK() bool {
	return r.FormError == "" && r.ActiveIndex < 0
}

// Completed reports whether traveller i passed validation.
func (r TravellersResult) Completed(i int) bool {
	return i >= 0 && i < len(r.Errors) && r.Errors[i].OK()
}

// ValidateTravellers validates every record in order. expected is the traveller count from the
// trip details; a list of another length fails with a form-level error.
func ValidateTravellers(list []entity.TravellerInfo, expected int) TravellersResult {
	res := TravellersResult{
		Errors:      make([]Errors, len(list)),
		ActiveIndex: -1,
	}

	for i, t := range list {
		res.Errors[i] = ValidateTraveller(t)
		if res.ActiveIndex < 0 && !res.Errors[i].OK() {
			res.ActiveIndex = i
		}
	}

	if len(list) != expected {
		res.FormError = "Traveller details must be provided for every traveller"
	}

	return res
}
