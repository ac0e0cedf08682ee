package validation

import (
	"testing"

	"trek-insurance/internal/data/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completeTraveller(age int) entity.TravellerInfo {
	t := entity.NewTraveller(age)
	t.FullName = "Ang Dorje"
	t.Email = "ang@example.com"
	t.Phone = "9841234567"
	t.PassportNumber = "PA1234567"
	t.Nationality = "Nepali"
	t.DateOfBirth = "1990-04-12"
	t.Gender = entity.GenderMale
	t.EmergencyName = "Pema Dorje"
	t.EmergencyContact = "9801234567"
	if t.IsMinor() {
		t.NomineeName = "Pema Dorje"
		t.NomineeRelation = "Parent"
	}
	return t
}

func TestValidateTraveller_Complete(t *testing.T) {
	assert.True(t, ValidateTraveller(completeTraveller(35)).OK())
	assert.True(t, ValidateTraveller(completeTraveller(12)).OK())
}

func TestValidateTraveller_Empty(t *testing.T) {
	errs := ValidateTraveller(entity.NewTraveller(30))

	assert.Equal(t, []string{
		FieldDateOfBirth,
		FieldEmail,
		FieldEmergencyContact,
		FieldEmergencyName,
		FieldFullName,
		FieldGender,
		FieldNationality,
		FieldPassportNumber,
		FieldPhone,
	}, errs.Fields())
	assert.Equal(t, "Passport/ID is required", errs[FieldPassportNumber])
	assert.Equal(t, "Emergency contact number is required", errs[FieldEmergencyContact])
}

func TestValidateTraveller_InvalidEmail(t *testing.T) {
	for _, email := range []string{"ang", "ang@", "ang@example", "a ng@example.com", "@example.com"} {
		tr := completeTraveller(30)
		tr.Email = email
		assert.Equal(t, "Invalid email", ValidateTraveller(tr)[FieldEmail], email)
	}
}

func TestValidateTraveller_EmergencyEmailOptional(t *testing.T) {
	tr := completeTraveller(30)
	tr.EmergencyEmail = ""
	assert.True(t, ValidateTraveller(tr).OK())
}

func TestValidateTraveller_NomineeRequiredOnlyForMinors(t *testing.T) {
	for age := 0; age <= 100; age++ {
		tr := completeTraveller(30)
		tr.Age = age
		tr.NomineeName = ""
		tr.NomineeRelation = ""

		errs := ValidateTraveller(tr)

		minor := age < 18
		assert.Equal(t, minor, errs.Has(FieldNomineeName), "age %d", age)
		assert.Equal(t, minor, errs.Has(FieldNomineeRelation), "age %d", age)
	}
}

func TestValidateTraveller_NomineeScenarios(t *testing.T) {
	sixteen := completeTraveller(16)
	sixteen.NomineeName = ""
	assert.Equal(t, "Nominee name is required for minors", ValidateTraveller(sixteen)[FieldNomineeName])

	twenty := completeTraveller(20)
	twenty.NomineeName = ""
	assert.False(t, ValidateTraveller(twenty).Has(FieldNomineeName))
}

func TestValidateTravellers(t *testing.T) {
	broken := completeTraveller(40)
	broken.Phone = ""

	tests := []struct {
		name       string
		list       []entity.TravellerInfo
		expected   int
		ok         bool
		active     int
		formError  bool
		incomplete []int
	}{
		{
			name:     "all valid",
			list:     []entity.TravellerInfo{completeTraveller(30), completeTraveller(10)},
			expected: 2,
			ok:       true,
			active:   -1,
		},
		{
			name:       "first failing traveller becomes active",
			list:       []entity.TravellerInfo{completeTraveller(30), broken, entity.NewTraveller(5)},
			expected:   3,
			active:     1,
			incomplete: []int{1, 2},
		},
		{
			name:      "count mismatch",
			list:      []entity.TravellerInfo{completeTraveller(30)},
			expected:  2,
			active:    -1,
			formError: true,
		},
		{
			name:      "empty list",
			list:      nil,
			expected:  1,
			active:    -1,
			formError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ValidateTravellers(tt.list, tt.expected)

			require.Len(t, res.Errors, len(tt.list))
			assert.Equal(t, tt.ok, res.OK())
			assert.Equal(t, tt.active, res.ActiveIndex)
			assert.Equal(t, tt.formError, res.FormError != "")
			for _, i := range tt.incomplete {
				assert.False(t, res.Completed(i))
			}
		})
	}
}

func TestTravellersResult_Completed(t *testing.T) {
	res := ValidateTravellers([]entity.TravellerInfo{completeTraveller(30), entity.NewTraveller(30)}, 2)

	assert.True(t, res.Completed(0))
	assert.False(t, res.Completed(1))
	assert.False(t, res.Completed(2))
	assert.False(t, res.Completed(-1))
}
