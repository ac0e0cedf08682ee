package adaptor

import (
	"encoding/json"
	"net/http"

	"trek-insurance/internal/dto/request"
	"trek-insurance/internal/usecase"
	"trek-insurance/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type WizardHandler struct {
	service usecase.WizardService
	log     *zap.Logger
}

func NewWizardHandler(service usecase.WizardService, log *zap.Logger) *WizardHandler {
	return &WizardHandler{
		service: service,
		log:     log.With(zap.String("handler", "wizard")),
	}
}

// StartSession handles POST /api/sessions
func (h *WizardHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.service.StartSession(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "start session")
		return
	}

	utils.ResponseCreated(w, "success", session)
}

// GetSession handles GET /api/sessions/{id}
func (h *WizardHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.service.GetSession(r.Context(), sessionID(r))
	if err != nil {
		handleServiceError(w, h.log, err, "get session")
		return
	}

	utils.ResponseSuccess(w, "success", session)
}

// ResetSession handles POST /api/sessions/{id}/reset
func (h *WizardHandler) ResetSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.service.ResetSession(r.Context(), sessionID(r))
	if err != nil {
		handleServiceError(w, h.log, err, "reset session")
		return
	}

	utils.ResponseSuccess(w, "success", session)
}

// DeleteSession handles DELETE /api/sessions/{id}
func (h *WizardHandler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteSession(r.Context(), sessionID(r)); err != nil {
		handleServiceError(w, h.log, err, "delete session")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// SubmitTripDetails handles PUT /api/sessions/{id}/trip-details
func (h *WizardHandler) SubmitTripDetails(w http.ResponseWriter, r *http.Request) {
	var req request.TripDetailsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	session, err := h.service.SubmitTripDetails(r.Context(), sessionID(r), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "submit trip details")
		return
	}

	utils.ResponseSuccess(w, "success", session)
}

// SelectPlan handles PUT /api/sessions/{id}/plan
func (h *WizardHandler) SelectPlan(w http.ResponseWriter, r *http.Request) {
	var req request.SelectPlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	session, err := h.service.SelectPlan(r.Context(), sessionID(r), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "select plan")
		return
	}

	utils.ResponseSuccess(w, "success", session)
}

// SubmitTravellers handles PUT /api/sessions/{id}/travellers
func (h *WizardHandler) SubmitTravellers(w http.ResponseWriter, r *http.Request) {
	var req request.TravellersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	session, err := h.service.SubmitTravellers(r.Context(), sessionID(r), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "submit travellers")
		return
	}

	utils.ResponseSuccess(w, "success", session)
}

// SubmitUserInfo handles PUT /api/sessions/{id}/user-info
func (h *WizardHandler) SubmitUserInfo(w http.ResponseWriter, r *http.Request) {
	var req request.UserInfoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	session, err := h.service.SubmitUserInfo(r.Context(), sessionID(r), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "submit user info")
		return
	}

	utils.ResponseSuccess(w, "success", session)
}

// SubmitPayment handles POST /api/sessions/{id}/payment
func (h *WizardHandler) SubmitPayment(w http.ResponseWriter, r *http.Request) {
	var req request.PaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.service.SubmitPayment(r.Context(), sessionID(r), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "submit payment")
		return
	}

	utils.ResponseSuccess(w, "success", result)
}

// GetConfirmation handles GET /api/sessions/{id}/confirmation
func (h *WizardHandler) GetConfirmation(w http.ResponseWriter, r *http.Request) {
	confirmation, err := h.service.GetConfirmation(r.Context(), sessionID(r))
	if err != nil {
		handleServiceError(w, h.log, err, "get confirmation")
		return
	}

	utils.ResponseSuccess(w, "success", confirmation)
}

// GetOrder handles GET /api/orders/{policyNumber}
func (h *WizardHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	policyNumber := chi.URLParam(r, "policyNumber")
	if policyNumber == "" {
		utils.ResponseBadRequest(w, "Policy number is required", nil)
		return
	}

	order, err := h.service.GetOrder(r.Context(), policyNumber)
	if err != nil {
		handleServiceError(w, h.log, err, "get order")
		return
	}

	utils.ResponseSuccess(w, "success", order)
}

// sessionID prefers the id resolved by the session middleware.
func sessionID(r *http.Request) string {
	if id, ok := utils.GetSessionIDFromContext(r.Context()); ok {
		return id.String()
	}
	return chi.URLParam(r, "id")
}
