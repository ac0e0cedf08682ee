package adaptor

import (
	"errors"
	"net/http"
	"strings"

	"trek-insurance/internal/dto/response"
	"trek-insurance/internal/payment"
	"trek-insurance/internal/usecase"
	"trek-insurance/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Wizard  *WizardHandler
	Catalog *CatalogHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Wizard:  NewWizardHandler(service.Wizard, log),
		Catalog: NewCatalogHandler(service.Catalog, log),
	}
}

// travellerErrors is the body of a rejected traveller form.
type travellerErrors struct {
	Travellers  []map[string]string `json:"travellers"`
	Completed   []bool              `json:"completed"`
	FormError   string              `json:"form_error,omitempty"`
	ActiveIndex int                 `json:"active_index"`
}

// handleServiceError maps service errors to responses: typed errors first, then the message
// conventions the services follow ("not found", "invalid").
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	var (
		verr         *usecase.ValidationError
		terr         *usecase.TravellerValidationError
		precondition *usecase.PreconditionError
	)

	switch {
	case errors.As(err, &verr):
		log.Debug(operation+" validation failed",
			zap.String("step", string(verr.Step)),
			zap.String("errors", verr.Errors.String()))
		utils.ResponseBadRequest(w, "Validation failed", verr.Errors)

	case errors.As(err, &terr):
		log.Debug(operation+" validation failed",
			zap.Int("active_index", terr.Result.ActiveIndex),
			zap.String("form_error", terr.Result.FormError))
		body := travellerErrors{
			Travellers:  make([]map[string]string, len(terr.Result.Errors)),
			Completed:   make([]bool, len(terr.Result.Errors)),
			FormError:   terr.Result.FormError,
			ActiveIndex: terr.Result.ActiveIndex,
		}
		for i, errs := range terr.Result.Errors {
			body.Travellers[i] = errs
			body.Completed[i] = terr.Result.Completed(i)
		}
		utils.ResponseBadRequest(w, "Validation failed", body)

	case errors.As(err, &precondition):
		log.Warn(operation+" failed - precondition",
			zap.Error(err),
			zap.String("redirect", string(precondition.Redirect)))
		utils.ResponseConflict(w, precondition.Error(), response.RedirectResponse{Redirect: precondition.Redirect})

	case errors.Is(err, payment.ErrDeclined):
		log.Warn(operation+" failed - payment declined", zap.Error(err))
		utils.ResponsePaymentRequired(w, "Payment declined")

	case usecase.IsPaymentTimeout(err):
		log.Warn(operation+" failed - payment timeout", zap.Error(err))
		utils.ResponseGatewayTimeout(w, "Payment processing timeout")

	case errors.Is(err, usecase.ErrSessionNotFound),
		errors.Is(err, usecase.ErrPackageNotFound),
		errors.Is(err, usecase.ErrOrderNotFound),
		strings.Contains(err.Error(), "not found"):
		log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, err.Error())

	case strings.Contains(err.Error(), "invalid"):
		log.Warn("Invalid input for "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, err.Error(), nil)

	default:
		log.Error(operation+" failed - internal error",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
