package entity

// Step names a wizard page; the navigation collaborator owns the URL for each.
type Step string

const (
	StepHome          Step = "home"
	StepTripDetails   Step = "trip-details"
	StepSelectPlan    Step = "select-plan"
	StepTravellerInfo Step = "traveller-info"
	StepPayment       Step = "payment"
	StepSuccess       Step = "success"
)

var stepOrder = []Step{
	StepHome,
	StepTripDetails,
	StepSelectPlan,
	StepTravellerInfo,
	StepPayment,
	StepSuccess,
}

func Steps() []Step {
	return append([]Step(nil), stepOrder...)
}

func (s Step) Index() int {
	for i, step := range stepOrder {
		if step == s {
			return i
		}
	}
	return -1
}

// Next returns the following step; success is terminal.
func (s Step) Next() Step {
	i := s.Index()
	if i < 0 || i == len(stepOrder)-1 {
		return s
	}
	return stepOrder[i+1]
}

// Previous returns the step "go back" leads to; home is the first step.
func (s Step) Previous() Step {
	i := s.Index()
	if i <= 0 {
		return StepHome
	}
	return stepOrder[i-1]
}

// CurrentStep infers where a session stands from what has been filled in.
func (s BookingState) CurrentStep() Step {
	switch {
	case s.PaymentInfo.CardNumber != "":
		return StepSuccess
	case s.SelectedPackage != nil && travellersNamed(s.BookingDetails.Travellers):
		return StepPayment
	case s.SelectedPackage != nil:
		return StepTravellerInfo
	case s.BookingDetails.TripDetails.IsSubmitted():
		return StepSelectPlan
	}
	return StepTripDetails
}

func travellersNamed(travellers []TravellerInfo) bool {
	if len(travellers) == 0 {
		return false
	}
	for _, t := range travellers {
		if t.FullName == "" {
			return false
		}
	}
	return true
}
