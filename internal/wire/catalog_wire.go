package wire

import (
	"trek-insurance/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCatalog(r chi.Router, catalogHandler *adaptor.CatalogHandler) {
	r.Route("/api/catalog", func(r chi.Router) {
		// GET /api/catalog/plans?variant=guardian|travel&tier= - package catalog
		r.Get("/plans", catalogHandler.ListPlans)

		// GET /api/catalog/plans/{id} - one package
		r.Get("/plans/{id}", catalogHandler.GetPlan)

		// GET /api/catalog/options - form dropdown values and payment methods
		r.Get("/options", catalogHandler.GetOptions)
	})
}
