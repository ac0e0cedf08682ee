package state

import (
	"testing"

	"trek-insurance/internal/data/catalog"
	"trek-insurance/internal/data/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func plusGuardian(t *testing.T) entity.Package {
	t.Helper()
	pkg, ok := catalog.FindPackage("plus")
	require.True(t, ok)
	return pkg
}

func TestStore_NewStoreHoldsDefaults(t *testing.T) {
	s := NewStore()
	got := s.State()

	assert.Equal(t, entity.NewBookingState(), got)
	assert.Nil(t, got.SelectedPackage)
	assert.Equal(t, 1, got.BookingDetails.TripDetails.NumberOfTravellers)
	assert.Equal(t, "+977", got.UserInfo.CountryCode)
	assert.Equal(t, "+977", got.BookingDetails.PrimaryContact.CountryCode)
	assert.Equal(t, "14", got.BookingDetails.Duration)
	assert.Equal(t, "3500", got.BookingDetails.AltitudeLimit)
	assert.Empty(t, got.UserInfo.FullName)
	assert.Empty(t, got.PaymentInfo.CardNumber)
	assert.Zero(t, s.Total())
}

func TestStore_ResetRestoresDefaults(t *testing.T) {
	s := NewStore()
	s.SetSelectedPackage(plusGuardian(t))
	s.SetBookingDetails(WithTripDetails(entity.TripDetails{
		Nationality:        "Nepali",
		NumberOfTravellers: 4,
		TravellingFrom:     "Kathmandu",
		TravellingTo:       "Lukla",
	}))
	s.SetBookingDetails(WithTravellers([]entity.TravellerInfo{entity.NewTraveller(30)}))
	s.SetUserInfo(entity.UserInfo{FullName: "Pasang Sherpa", AgreeToTerms: true})
	s.SetPaymentInfo(entity.PaymentInfo{CardNumber: "CONNECTIPS"})

	s.Reset()

	assert.Equal(t, entity.NewBookingState(), s.State())
	assert.Nil(t, s.SelectedPackage())
	assert.Equal(t, 1, s.TripDetails().NumberOfTravellers)
	assert.Empty(t, s.Travellers())
	assert.Equal(t, entity.NewUserInfo(), s.UserInfo())
	assert.Equal(t, entity.PaymentInfo{}, s.PaymentInfo())
}

func TestStore_SetBookingDetailsIsShallowMerge(t *testing.T) {
	s := NewStore()
	trip := entity.TripDetails{Nationality: "Indian", NumberOfTravellers: 2, Adventure: "Annapurna Circuit"}
	s.SetBookingDetails(WithTripDetails(trip))

	travellers := []entity.TravellerInfo{entity.NewTraveller(25), entity.NewTraveller(12)}
	s.SetBookingDetails(WithTravellers(travellers))

	// trip details were absent from the second patch and survive it
	assert.Equal(t, trip, s.TripDetails())
	assert.Equal(t, travellers, s.Travellers())
	assert.Equal(t, "14", s.BookingDetails().Duration)

	// a present key replaces the whole value, not individual fields
	s.SetBookingDetails(WithTripDetails(entity.TripDetails{NumberOfTravellers: 3}))
	assert.Equal(t, entity.TripDetails{NumberOfTravellers: 3}, s.TripDetails())
	assert.Len(t, s.Travellers(), 2)

	s.SetBookingDetails(WithTravellers([]entity.TravellerInfo{entity.NewTraveller(40)}))
	assert.Len(t, s.Travellers(), 1)
	assert.Equal(t, 40, s.Travellers()[0].Age)
}

func TestStore_StateIsACopy(t *testing.T) {
	s := NewStore()
	s.SetBookingDetails(WithTravellers([]entity.TravellerInfo{entity.NewTraveller(20)}))

	snapshot := s.State()
	snapshot.BookingDetails.Travellers[0].FullName = "mutated"
	snapshot.BookingDetails.TripDetails.NumberOfTravellers = 9

	assert.Empty(t, s.Travellers()[0].FullName)
	assert.Equal(t, 1, s.TripDetails().NumberOfTravellers)
}

func TestStore_RestoreDoesNotAlias(t *testing.T) {
	saved := entity.NewBookingState()
	saved.BookingDetails.Travellers = []entity.TravellerInfo{entity.NewTraveller(33)}

	s := Restore(saved)
	saved.BookingDetails.Travellers[0].Age = 1

	assert.Equal(t, 33, s.Travellers()[0].Age)
}

func TestStore_TotalFollowsOperands(t *testing.T) {
	s := NewStore()
	s.SetSelectedPackage(plusGuardian(t))
	assert.Equal(t, 189.0, s.Total())

	s.SetBookingDetails(WithTripDetails(entity.TripDetails{NumberOfTravellers: 3}))
	assert.Equal(t, 567.0, s.Total())

	basic, ok := catalog.FindPackage("basic")
	require.True(t, ok)
	s.SetSelectedPackage(basic)
	assert.Equal(t, 267.0, s.Total())

	s.SetBookingDetails(WithTripDetails(entity.TripDetails{NumberOfTravellers: 20}))
	assert.Equal(t, 1780.0, s.Total())
}

func TestStore_SetUserAndPaymentReplaceWholesale(t *testing.T) {
	s := NewStore()
	s.SetUserInfo(entity.UserInfo{FullName: "A", Email: "a@example.com", CountryCode: "+91"})
	s.SetUserInfo(entity.UserInfo{FullName: "B"})
	assert.Equal(t, entity.UserInfo{FullName: "B"}, s.UserInfo())

	s.SetPaymentInfo(entity.PaymentInfo{CardNumber: "4111 1111 1111 1", CVV: "123"})
	s.SetPaymentInfo(entity.PaymentInfo{CardNumber: "ESEWA_9841234567"})
	assert.Equal(t, entity.PaymentInfo{CardNumber: "ESEWA_9841234567"}, s.PaymentInfo())
}

func TestMerge(t *testing.T) {
	base := entity.NewBookingDetails()
	base.Travellers = []entity.TravellerInfo{entity.NewTraveller(10)}

	duration := "28"
	deposit := 50.0
	pkg := plusGuardian(t)
	var noPlan *entity.InsurancePlan
	plan := &entity.InsurancePlan{ID: "hgn", Name: "HGN", Price: 10}
	base.InsurancePlan = plan

	tests := []struct {
		name   string
		patch  BookingDetailsPatch
		assert func(t *testing.T, got entity.BookingDetails)
	}{
		{
			name:  "empty patch keeps everything",
			patch: BookingDetailsPatch{},
			assert: func(t *testing.T, got entity.BookingDetails) {
				assert.Equal(t, base, got)
			},
		},
		{
			name:  "scalar fields replaced",
			patch: BookingDetailsPatch{Duration: &duration, DeviceDeposit: &deposit},
			assert: func(t *testing.T, got entity.BookingDetails) {
				assert.Equal(t, "28", got.Duration)
				assert.Equal(t, 50.0, got.DeviceDeposit)
				assert.Equal(t, base.AltitudeLimit, got.AltitudeLimit)
				assert.Equal(t, base.Travellers, got.Travellers)
			},
		},
		{
			name:  "package set",
			patch: WithPackage(&pkg),
			assert: func(t *testing.T, got entity.BookingDetails) {
				require.NotNil(t, got.SelectedPackage)
				assert.Equal(t, "plus", got.SelectedPackage.ID)
			},
		},
		{
			name:  "present nil pointer clears the plan",
			patch: BookingDetailsPatch{InsurancePlan: &noPlan},
			assert: func(t *testing.T, got entity.BookingDetails) {
				assert.Nil(t, got.InsurancePlan)
			},
		},
		{
			name:  "contacts replaced",
			patch: BookingDetailsPatch{EmergencyContact: &entity.EmergencyContact{Name: "Dawa", Phone: "9800000000"}},
			assert: func(t *testing.T, got entity.BookingDetails) {
				assert.Equal(t, "Dawa", got.EmergencyContact.Name)
				assert.Equal(t, base.PrimaryContact, got.PrimaryContact)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Merge(base, tt.patch)
			tt.assert(t, got)
			assert.Equal(t, "14", base.Duration, "input must not change")
			assert.Equal(t, plan, base.InsurancePlan, "input must not change")
		})
	}
}

func TestMerge_DoesNotAliasTravellers(t *testing.T) {
	list := []entity.TravellerInfo{entity.NewTraveller(18)}
	got := Merge(entity.NewBookingDetails(), WithTravellers(list))

	list[0].Age = 5
	assert.Equal(t, 18, got.Travellers[0].Age)
}
