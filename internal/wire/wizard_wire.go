package wire

import (
	"trek-insurance/internal/adaptor"
	"trek-insurance/internal/data/repository"
	"trek-insurance/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireWizard(
	r chi.Router,
	wizardHandler *adaptor.WizardHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	r.Route("/api/sessions", func(r chi.Router) {
		// POST /api/sessions - start a booking
		r.Post("/", wizardHandler.StartSession)

		// ==================== SESSION ROUTES (live session required) ====================
		r.Route("/{id}", func(r chi.Router) {
			r.Use(middleware.Session(repo.Session, log))

			r.Get("/", wizardHandler.GetSession)
			r.Delete("/", wizardHandler.DeleteSession)
			r.Post("/reset", wizardHandler.ResetSession)

			// steps, in wizard order
			r.Put("/trip-details", wizardHandler.SubmitTripDetails)
			r.Put("/plan", wizardHandler.SelectPlan)
			r.Put("/travellers", wizardHandler.SubmitTravellers)
			r.Put("/user-info", wizardHandler.SubmitUserInfo)
			r.Post("/payment", wizardHandler.SubmitPayment)
			r.Get("/confirmation", wizardHandler.GetConfirmation)
		})
	})

	// GET /api/orders/{policyNumber} - confirmed policy lookup
	r.Get("/api/orders/{policyNumber}", wizardHandler.GetOrder)
}
