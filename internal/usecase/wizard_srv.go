package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"trek-insurance/internal/data/catalog"
	"trek-insurance/internal/data/entity"
	"trek-insurance/internal/data/repository"
	"trek-insurance/internal/dto/request"
	"trek-insurance/internal/dto/response"
	"trek-insurance/internal/payment"
	"trek-insurance/internal/state"
	"trek-insurance/internal/validation"
	"trek-insurance/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type WizardService interface {
	StartSession(ctx context.Context) (*response.SessionResponse, error)
	GetSession(ctx context.Context, sessionID string) (*response.SessionResponse, error)
	ResetSession(ctx context.Context, sessionID string) (*response.SessionResponse, error)
	DeleteSession(ctx context.Context, sessionID string) error

	// Steps
	SubmitTripDetails(ctx context.Context, sessionID string, req *request.TripDetailsRequest) (*response.SessionResponse, error)
	SelectPlan(ctx context.Context, sessionID string, req *request.SelectPlanRequest) (*response.SessionResponse, error)
	SubmitTravellers(ctx context.Context, sessionID string, req *request.TravellersRequest) (*response.SessionResponse, error)
	SubmitUserInfo(ctx context.Context, sessionID string, req *request.UserInfoRequest) (*response.SessionResponse, error)
	SubmitPayment(ctx context.Context, sessionID string, req *request.PaymentRequest) (*response.PaymentResponse, error)
	GetConfirmation(ctx context.Context, sessionID string) (*response.ConfirmationResponse, error)

	GetOrder(ctx context.Context, policyNumber string) (*entity.Order, error)
}

type wizardService struct {
	repo    *repository.Repository
	gateway payment.Gateway
	config  utils.PaymentConfig
	now     func() time.Time
	log     *zap.Logger
}

func NewWizardService(repo *repository.Repository, gateway payment.Gateway, config *utils.Config, log *zap.Logger) WizardService {
	return &wizardService{
		repo:    repo,
		gateway: gateway,
		config:  config.Payment,
		now:     time.Now,
		log:     log.With(zap.String("service", "wizard")),
	}
}

func (s *wizardService) StartSession(ctx context.Context) (*response.SessionResponse, error) {
	now := s.now()
	session := &entity.Session{
		ID:        utils.GenerateUUID(),
		State:     state.NewStore().State(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Session.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}

	s.log.Info("Session started", zap.String("session_id", session.ID.String()))

	resp := response.SessionToResponse(session)
	return &resp, nil
}

func (s *wizardService) GetSession(ctx context.Context, sessionID string) (*response.SessionResponse, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	resp := response.SessionToResponse(session)
	return &resp, nil
}

func (s *wizardService) ResetSession(ctx context.Context, sessionID string) (*response.SessionResponse, error) {
	return s.update(ctx, sessionID, func(session *entity.Session, store *state.Store) error {
		store.Reset()
		return nil
	})
}

func (s *wizardService) DeleteSession(ctx context.Context, sessionID string) error {
	id, err := utils.ParseUUID(sessionID)
	if err != nil {
		return fmt.Errorf("invalid session ID format %s: %w", sessionID, err)
	}

	deleted, err := s.repo.Session.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete session %s: %w", sessionID, err)
	}
	if !deleted {
		return fmt.Errorf("session %s: %w", sessionID, ErrSessionNotFound)
	}

	s.log.Info("Session deleted", zap.String("session_id", sessionID))
	return nil
}

func (s *wizardService) SubmitTripDetails(ctx context.Context, sessionID string, req *request.TripDetailsRequest) (*response.SessionResponse, error) {
	return s.update(ctx, sessionID, func(session *entity.Session, store *state.Store) error {
		if errs := utils.ValidateStruct(req); len(errs) > 0 {
			return &ValidationError{Step: entity.StepTripDetails, Errors: validation.Errors(errs)}
		}

		trip := req.ToEntity()
		if errs := validation.ValidateTripDetails(trip, req.Ages, s.now()); !errs.OK() {
			s.log.Debug("Trip details rejected",
				zap.String("session_id", sessionID),
				zap.String("errors", errs.String()))
			return &ValidationError{Step: entity.StepTripDetails, Errors: errs}
		}

		// every submission starts the traveller forms over, one per age
		travellers := make([]entity.TravellerInfo, len(req.Ages))
		for i, age := range req.Ages {
			travellers[i] = entity.NewTraveller(age)
		}

		patch := state.WithTripDetails(trip)
		patch.Travellers = &travellers
		store.SetBookingDetails(patch)
		return nil
	})
}

func (s *wizardService) SelectPlan(ctx context.Context, sessionID string, req *request.SelectPlanRequest) (*response.SessionResponse, error) {
	return s.update(ctx, sessionID, func(session *entity.Session, store *state.Store) error {
		if err := requireTripDetails(store.State()); err != nil {
			return err
		}

		if errs := utils.ValidateStruct(req); len(errs) > 0 {
			return &ValidationError{Step: entity.StepSelectPlan, Errors: validation.Errors(errs)}
		}

		pkg, ok := catalog.FindPackage(req.PackageID)
		if !ok {
			return fmt.Errorf("package %s: %w", req.PackageID, ErrPackageNotFound)
		}

		store.SetSelectedPackage(pkg)

		plan := &entity.InsurancePlan{ID: pkg.ID, Name: pkg.Name, Price: pkg.Price, Coverage: pkg.Includes}
		patch := state.WithPackage(&pkg)
		patch.InsurancePlan = &plan
		patch.DeviceDeposit = &req.DeviceDeposit
		if req.Duration != "" {
			patch.Duration = &req.Duration
		}
		if req.AltitudeLimit != "" {
			patch.AltitudeLimit = &req.AltitudeLimit
		}
		store.SetBookingDetails(patch)

		s.log.Info("Plan selected",
			zap.String("session_id", sessionID),
			zap.String("package_id", pkg.ID))
		return nil
	})
}

func (s *wizardService) SubmitTravellers(ctx context.Context, sessionID string, req *request.TravellersRequest) (*response.SessionResponse, error) {
	return s.update(ctx, sessionID, func(session *entity.Session, store *state.Store) error {
		if err := requirePackage(store.State()); err != nil {
			return err
		}

		if errs := utils.ValidateStruct(req); len(errs) > 0 {
			return &ValidationError{Step: entity.StepTravellerInfo, Errors: validation.Errors(errs)}
		}

		// ages were fixed at trip details and decide whether a nominee is needed
		travellers := req.ToEntities()
		stored := store.Travellers()
		for i := range travellers {
			if i < len(stored) {
				travellers[i].Age = stored[i].Age
			}
		}

		result := validation.ValidateTravellers(travellers, store.TripDetails().NumberOfTravellers)
		if !result.OK() {
			s.log.Debug("Travellers rejected",
				zap.String("session_id", sessionID),
				zap.Int("active_index", result.ActiveIndex),
				zap.String("form_error", result.FormError))
			return &TravellerValidationError{Result: result}
		}

		store.SetBookingDetails(state.WithTravellers(travellers))

		// the first traveller is the primary contact unless user info says otherwise
		if len(travellers) > 0 && store.UserInfo().FullName == "" {
			lead := travellers[0]
			store.SetBookingDetails(state.WithPrimaryContact(entity.PrimaryContact{
				Name:        lead.FullName,
				Email:       lead.Email,
				Phone:       lead.Phone,
				CountryCode: lead.CountryCode,
			}))
		}
		return nil
	})
}

func (s *wizardService) SubmitUserInfo(ctx context.Context, sessionID string, req *request.UserInfoRequest) (*response.SessionResponse, error) {
	return s.update(ctx, sessionID, func(session *entity.Session, store *state.Store) error {
		if err := requirePackage(store.State()); err != nil {
			return err
		}

		info := req.ToEntity()
		if errs := validation.ValidateUserInfo(info); !errs.OK() {
			return &ValidationError{Step: entity.StepTravellerInfo, Errors: errs}
		}

		store.SetUserInfo(info)
		store.SetBookingDetails(state.WithPrimaryContact(entity.PrimaryContact{
			Name:           info.FullName,
			Email:          info.Email,
			Phone:          info.Phone,
			CountryCode:    info.CountryCode,
			BillingAddress: info.BillingAddress,
		}))
		return nil
	})
}

func (s *wizardService) SubmitPayment(ctx context.Context, sessionID string, req *request.PaymentRequest) (*response.PaymentResponse, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	store := state.Restore(session.State)

	if err := requirePackage(store.State()); err != nil {
		return nil, err
	}
	if err := requireUnpaid(store.State()); err != nil {
		s.log.Warn("Repeated payment refused", zap.String("session_id", sessionID))
		return nil, err
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Debug("Payment request rejected",
			zap.String("session_id", sessionID),
			zap.String("errors", utils.FormatValidationErrors(errs)))
		return nil, &ValidationError{Step: entity.StepPayment, Errors: validation.Errors(errs)}
	}

	result := validation.ValidatePayment(validation.PaymentInput{
		Method: entity.PaymentMethod(req.Method),
		Card: entity.PaymentInfo{
			CardholderName: req.CardholderName,
			CardNumber:     validation.FormatCardNumber(req.CardNumber),
			Expiry:         validation.FormatExpiry(req.Expiry),
			CVV:            validation.FormatCVV(req.CVV),
		},
		PhoneNumber: validation.DigitsOnly(req.PhoneNumber),
	})
	if !result.OK {
		return nil, &ValidationError{Step: entity.StepPayment, Errors: result.Errors}
	}

	method := entity.PaymentMethod(req.Method)
	total := store.Total()

	payCtx := ctx
	if s.config.Timeout > 0 {
		var cancel context.CancelFunc
		payCtx, cancel = context.WithTimeout(ctx, s.config.Timeout)
		defer cancel()
	}

	receipt, err := s.gateway.Submit(payCtx, payment.Charge{
		SessionID: session.ID,
		Amount:    total,
		Method:    method,
		Info:      result.Info,
	})
	if err != nil {
		s.log.Warn("Payment failed",
			zap.Error(err),
			zap.String("session_id", sessionID),
			zap.String("method", string(method)))
		return nil, fmt.Errorf("process payment for session %s: %w", sessionID, err)
	}

	order, err := s.newOrder(session.ID, store.State(), method, result.Info, receipt)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Order.Create(ctx, order); err != nil {
		s.log.Error("Failed to record paid order",
			zap.Error(err),
			zap.String("session_id", sessionID),
			zap.String("transaction_id", receipt.TransactionID))
		return nil, fmt.Errorf("record order for session %s: %w", sessionID, err)
	}

	store.SetPaymentInfo(result.Info)
	session.State = store.State()
	session.UpdatedAt = s.now()
	if err := s.repo.Session.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("save session %s: %w", sessionID, err)
	}

	s.log.Info("Booking paid",
		zap.String("session_id", sessionID),
		zap.String("policy_number", order.PolicyNumber),
		zap.Float64("total", total))

	return &response.PaymentResponse{
		PolicyNumber: order.PolicyNumber,
		Receipt:      receipt,
		Session:      response.SessionToResponse(session),
	}, nil
}

func (s *wizardService) GetConfirmation(ctx context.Context, sessionID string) (*response.ConfirmationResponse, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if err := requirePackage(session.State); err != nil {
		return nil, err
	}

	order, err := s.repo.Order.FindBySessionID(ctx, session.ID)
	if err != nil {
		return nil, fmt.Errorf("find order for session %s: %w", sessionID, err)
	}
	if order == nil {
		return nil, &PreconditionError{Redirect: entity.StepPayment, Reason: "booking not paid"}
	}

	return &response.ConfirmationResponse{
		Order:      order,
		Summary:    response.SummaryFromState(session.State),
		Travellers: session.State.BookingDetails.Travellers,
		UserInfo:   session.State.UserInfo,
	}, nil
}

// GetOrder looks a confirmed policy up by its number, independent of the session that paid it.
func (s *wizardService) GetOrder(ctx context.Context, policyNumber string) (*entity.Order, error) {
	order, err := s.repo.Order.FindByPolicyNumber(ctx, policyNumber)
	if err != nil {
		return nil, fmt.Errorf("find order %s: %w", policyNumber, err)
	}
	if order == nil {
		return nil, fmt.Errorf("order %s: %w", policyNumber, ErrOrderNotFound)
	}
	return order, nil
}

func (s *wizardService) loadSession(ctx context.Context, sessionID string) (*entity.Session, error) {
	id, err := utils.ParseUUID(sessionID)
	if err != nil {
		return nil, fmt.Errorf("invalid session ID format %s: %w", sessionID, err)
	}

	session, err := s.repo.Session.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find session %s: %w", sessionID, err)
	}
	if session == nil {
		return nil, fmt.Errorf("session %s: %w", sessionID, ErrSessionNotFound)
	}

	return session, nil
}

// update runs one step against a store restored from the session and saves the result.
// Nothing is saved when apply fails.
func (s *wizardService) update(ctx context.Context, sessionID string, apply func(*entity.Session, *state.Store) error) (*response.SessionResponse, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	store := state.Restore(session.State)
	if err := apply(session, store); err != nil {
		return nil, err
	}

	session.State = store.State()
	session.UpdatedAt = s.now()
	if err := s.repo.Session.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("save session %s: %w", sessionID, err)
	}

	resp := response.SessionToResponse(session)
	return &resp, nil
}

func (s *wizardService) newOrder(sessionID uuid.UUID, st entity.BookingState, method entity.PaymentMethod, info entity.PaymentInfo, receipt *payment.Receipt) (*entity.Order, error) {
	now := s.now()
	order := &entity.Order{
		Base: entity.Base{
			ID:        utils.GenerateUUID(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		PolicyNumber:       utils.GeneratePolicyNumber(now),
		SessionID:          sessionID,
		PackageID:          st.SelectedPackage.ID,
		PackageName:        st.SelectedPackage.Name,
		NumberOfTravellers: st.BookingDetails.TripDetails.NumberOfTravellers,
		LeadTraveller:      leadTraveller(st),
		TotalPrice:         st.Total(),
		PaymentMethod:      method,
		TransactionID:      receipt.TransactionID,
		PaymentStatus:      receipt.Status,
		Status:             entity.OrderStatusConfirmed,
	}

	if method == entity.PaymentMethodCard {
		digits := validation.DigitsOnly(info.CardNumber)
		fingerprint, err := utils.CardFingerprint(s.config.FingerprintKey, digits)
		if err != nil {
			return nil, fmt.Errorf("fingerprint card for session %s: %w", sessionID, err)
		}
		order.CardLast4 = utils.CardLast4(digits)
		order.CardFingerprint = fingerprint
	}

	return order, nil
}

func leadTraveller(st entity.BookingState) string {
	if len(st.BookingDetails.Travellers) > 0 && st.BookingDetails.Travellers[0].FullName != "" {
		return st.BookingDetails.Travellers[0].FullName
	}
	return st.UserInfo.FullName
}

// IsPaymentTimeout reports whether err came from a settlement that ran out of time.
func IsPaymentTimeout(err error) bool {
	return errors.Is(err, payment.ErrTimeout) || errors.Is(err, context.DeadlineExceeded)
}
