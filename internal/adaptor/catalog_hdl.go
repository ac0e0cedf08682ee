package adaptor

import (
	"net/http"

	"trek-insurance/internal/dto/request"
	"trek-insurance/internal/usecase"
	"trek-insurance/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CatalogHandler struct {
	service usecase.CatalogService
	log     *zap.Logger
}

func NewCatalogHandler(service usecase.CatalogService, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		log:     log.With(zap.String("handler", "catalog")),
	}
}

// ListPlans handles GET /api/catalog/plans?variant=&tier=
func (h *CatalogHandler) ListPlans(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.ListPlansRequest{
		Variant: query.Get("variant"),
		Tier:    query.Get("tier"),
	}

	plans, err := h.service.ListPlans(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "list plans")
		return
	}

	utils.ResponseSuccess(w, "success", plans)
}

// GetPlan handles GET /api/catalog/plans/{id}
func (h *CatalogHandler) GetPlan(w http.ResponseWriter, r *http.Request) {
	planID := chi.URLParam(r, "id")
	if planID == "" {
		utils.ResponseBadRequest(w, "Plan ID is required", nil)
		return
	}

	plan, err := h.service.GetPlan(r.Context(), planID)
	if err != nil {
		handleServiceError(w, h.log, err, "get plan")
		return
	}

	utils.ResponseSuccess(w, "success", plan)
}

// GetOptions handles GET /api/catalog/options
func (h *CatalogHandler) GetOptions(w http.ResponseWriter, r *http.Request) {
	options, err := h.service.GetOptions(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get options")
		return
	}

	utils.ResponseSuccess(w, "success", options)
}
