package entity

const (
	MinTravellers = 1
	MaxTravellers = 20

	MinTravellerAge = 1
	MaxTravellerAge = 100
)

// DateLayout is the wire format of trip and birth dates.
const DateLayout = "2006-01-02"

type TripDetails struct {
	Nationality        string `json:"nationality"`
	NumberOfTravellers int    `json:"number_of_travellers"`
	TravellingFrom     string `json:"travelling_from"`
	TravellingTo       string `json:"travelling_to"`
	Adventure          string `json:"adventure"`
	StartDate          string `json:"start_date"`
	EndDate            string `json:"end_date"`
}

// IsSubmitted reports whether the trip-details step has been completed at least once.
func (t TripDetails) IsSubmitted() bool {
	return t.Nationality != "" && t.TravellingFrom != "" && t.TravellingTo != "" && t.StartDate != ""
}
