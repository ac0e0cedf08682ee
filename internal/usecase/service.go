package usecase

import (
	"trek-insurance/internal/data/repository"
	"trek-insurance/internal/payment"
	"trek-insurance/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Wizard  WizardService
	Catalog CatalogService
}

func NewService(repo *repository.Repository, gateway payment.Gateway, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Wizard:  NewWizardService(repo, gateway, config, log),
		Catalog: NewCatalogService(log),
	}
}
