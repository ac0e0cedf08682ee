package validation

import (
	"fmt"
	"time"

	"trek-insurance/internal/data/entity"
)

// Trip details field keys.
const (
	FieldNationality        = "nationality"
	FieldNumberOfTravellers = "numberOfTravellers"
	FieldTravellingFrom     = "travellingFrom"
	FieldTravellingTo       = "travellingTo"
	FieldAdventure          = "adventure"
	FieldStartDate          = "startDate"
	FieldEndDate            = "endDate"
)

// AgeField is the key of the i-th entry of the traveller ages list.
func AgeField(i int) string {
	return fmt.Sprintf("ages.%d", i)
}

// ValidateTripDetails checks the trip-details form together with the ages entered for each
// traveller. today is truncated to the day; dates earlier than it are rejected.
//
// Invalid ages are reported both under numberOfTravellers, where the form shows them, and
// per entry under ages.{i}.
func ValidateTripDetails(trip entity.TripDetails, ages []int, today time.Time) Errors {
	errs := Errors{}

	if blank(trip.Nationality) {
		errs.Add(FieldNationality, "Nationality is required")
	}

	if trip.NumberOfTravellers < entity.MinTravellers {
		errs.Add(FieldNumberOfTravellers, "At least 1 traveller required")
	}
	if trip.NumberOfTravellers > entity.MaxTravellers {
		errs.Add(FieldNumberOfTravellers, "Maximum 20 travellers allowed")
	}

	if blank(trip.TravellingFrom) {
		errs.Add(FieldTravellingFrom, "Departure location is required")
	}
	if blank(trip.TravellingTo) {
		errs.Add(FieldTravellingTo, "Destination is required")
	}
	if !blank(trip.TravellingFrom) && trip.TravellingFrom == trip.TravellingTo {
		errs.Add(FieldTravellingTo, "Destination must be different from departure location")
	}

	if blank(trip.Adventure) {
		errs.Add(FieldAdventure, "Adventure type is required")
	}

	validateTripDates(trip, today, errs)
	validateAges(trip.NumberOfTravellers, ages, errs)

	return errs
}

func validateTripDates(trip entity.TripDetails, today time.Time, errs Errors) {
	day := truncateDay(today)

	var start, end time.Time
	var err error

	if blank(trip.StartDate) {
		errs.Add(FieldStartDate, "Start date is required")
	} else if start, err = ParseDate(trip.StartDate); err != nil {
		errs.Add(FieldStartDate, "Invalid date format (YYYY-MM-DD)")
	} else if start.Before(day) {
		errs.Add(FieldStartDate, "Start date cannot be in the past")
	}

	if blank(trip.EndDate) {
		errs.Add(FieldEndDate, "End date is required")
	} else if end, err = ParseDate(trip.EndDate); err != nil {
		errs.Add(FieldEndDate, "Invalid date format (YYYY-MM-DD)")
	} else if end.Before(day) {
		errs.Add(FieldEndDate, "End date cannot be in the past")
	}

	if errs.Has(FieldStartDate) || errs.Has(FieldEndDate) {
		return
	}
	if !end.After(start) {
		errs.Add(FieldEndDate, "End date must be after start date")
	}
}

// validateAges reports bad ages under numberOfTravellers, replacing a traveller count message.
func validateAges(count int, ages []int, errs Errors) {
	valid := true
	if count >= entity.MinTravellers && count <= entity.MaxTravellers && len(ages) != count {
		valid = false
	}

	for i, age := range ages {
		switch {
		case age == 0:
			errs.Add(AgeField(i), "Age is required")
			valid = false
		case age < entity.MinTravellerAge || age > entity.MaxTravellerAge:
			errs.Add(AgeField(i), "Age must be between 1 and 100")
			valid = false
		}
	}

	if !valid {
		errs.Add(FieldNumberOfTravellers, "Please enter valid ages for all travellers")
	}
}

// ParseDate accepts YYYY-MM-DD or an RFC 3339 timestamp and returns the UTC day.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(entity.DateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return truncateDay(t), nil
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
