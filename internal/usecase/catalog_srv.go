package usecase

import (
	"context"
	"fmt"

	"trek-insurance/internal/data/catalog"
	"trek-insurance/internal/data/entity"
	"trek-insurance/internal/dto/request"
	"trek-insurance/internal/dto/response"
	"trek-insurance/internal/validation"
	"trek-insurance/pkg/utils"

	"go.uber.org/zap"
)

type CatalogService interface {
	ListPlans(ctx context.Context, req *request.ListPlansRequest) ([]entity.Package, error)
	GetPlan(ctx context.Context, packageID string) (*entity.Package, error)
	GetOptions(ctx context.Context) (*response.OptionsResponse, error)
}

type catalogService struct {
	log *zap.Logger
}

func NewCatalogService(log *zap.Logger) CatalogService {
	return &catalogService{
		log: log.With(zap.String("service", "catalog")),
	}
}

func (s *catalogService) ListPlans(ctx context.Context, req *request.ListPlansRequest) ([]entity.Package, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("List plans validation failed", zap.String("errors", utils.FormatValidationErrors(errs)))
		return nil, &ValidationError{Step: entity.StepSelectPlan, Errors: validation.Errors(errs)}
	}

	return catalog.Packages(catalog.Variant(req.Variant), entity.Tier(req.Tier)), nil
}

func (s *catalogService) GetPlan(ctx context.Context, packageID string) (*entity.Package, error) {
	pkg, ok := catalog.FindPackage(packageID)
	if !ok {
		return nil, fmt.Errorf("package %s: %w", packageID, ErrPackageNotFound)
	}
	return &pkg, nil
}

func (s *catalogService) GetOptions(ctx context.Context) (*response.OptionsResponse, error) {
	return &response.OptionsResponse{
		Nationalities:  catalog.Nationalities,
		Locations:      catalog.Locations,
		Adventures:     catalog.Adventures,
		Relations:      catalog.Relations,
		CountryCodes:   catalog.CountryCodes,
		PaymentMethods: catalog.PaymentMethods,
	}, nil
}
