package response

import (
	"time"

	"trek-insurance/internal/data/entity"
	"trek-insurance/internal/payment"
)

const summaryIncludes = 3

type SessionResponse struct {
	ID           string              `json:"id"`
	CurrentStep  entity.Step         `json:"current_step"`
	PreviousStep entity.Step         `json:"previous_step"`
	NextStep     entity.Step         `json:"next_step"`
	Steps        []entity.Step       `json:"steps"`
	State        entity.BookingState `json:"state"`
	Total        float64             `json:"total"`
	Summary      *SummaryResponse    `json:"summary,omitempty"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

// SummaryResponse is the booking summary shown beside the traveller and payment forms.
type SummaryResponse struct {
	PackageID          string   `json:"package_id"`
	PackageName        string   `json:"package_name"`
	Tier               string   `json:"tier"`
	PricePerTraveller  float64  `json:"price_per_traveller"`
	NumberOfTravellers int      `json:"number_of_travellers"`
	Total              float64  `json:"total"`
	PrimaryTraveller   string   `json:"primary_traveller,omitempty"`
	Includes           []string `json:"includes"`

	// PaymentMethod is set once the booking is paid.
	PaymentMethod entity.PaymentMethod `json:"payment_method,omitempty"`
}

type PaymentResponse struct {
	PolicyNumber string           `json:"policy_number"`
	Receipt      *payment.Receipt `json:"receipt"`
	Session      SessionResponse  `json:"session"`
}

type ConfirmationResponse struct {
	Order      *entity.Order          `json:"order"`
	Summary    *SummaryResponse       `json:"summary"`
	Travellers []entity.TravellerInfo `json:"travellers"`
	UserInfo   entity.UserInfo        `json:"user_info"`
}

// RedirectResponse tells the client which step to show when a guard fails.
type RedirectResponse struct {
	Redirect entity.Step `json:"redirect"`
}

// Helper converters
func SessionToResponse(session *entity.Session) SessionResponse {
	current := session.State.CurrentStep()
	return SessionResponse{
		ID:           session.ID.String(),
		CurrentStep:  current,
		PreviousStep: current.Previous(),
		NextStep:     current.Next(),
		Steps:        entity.Steps(),
		State:        session.State,
		Total:        session.State.Total(),
		Summary:      SummaryFromState(session.State),
		CreatedAt:    session.CreatedAt,
		UpdatedAt:    session.UpdatedAt,
	}
}

// SummaryFromState returns nil until a package is selected.
func SummaryFromState(state entity.BookingState) *SummaryResponse {
	pkg := state.SelectedPackage
	if pkg == nil {
		return nil
	}

	includes := pkg.Includes
	if len(includes) == 0 {
		includes = pkg.Highlights
	}
	if len(includes) > summaryIncludes {
		includes = includes[:summaryIncludes]
	}

	summary := &SummaryResponse{
		PackageID:          pkg.ID,
		PackageName:        pkg.Name,
		Tier:               string(pkg.Tier),
		PricePerTraveller:  pkg.Price,
		NumberOfTravellers: state.BookingDetails.TripDetails.NumberOfTravellers,
		Total:              state.Total(),
		Includes:           append([]string{}, includes...),
	}
	if travellers := state.BookingDetails.Travellers; len(travellers) > 0 {
		summary.PrimaryTraveller = travellers[0].FullName
	}
	if state.PaymentInfo.CardNumber != "" {
		summary.PaymentMethod = state.PaymentInfo.Method()
	}

	return summary
}
