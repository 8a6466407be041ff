// Package usecase implements the business logic for the company catalogue.
package usecase

import (
	"context"

	"stock_prediction/internal/feature/companies/domain/entity"
)

// CompanyCatalog abstracts the source of the fixed company list.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type CompanyCatalog interface {
	All() []entity.Company
}

// CompanyUsecase provides read access to the company catalogue.
type CompanyUsecase struct {
	catalog CompanyCatalog
}

// NewCompanyUsecase creates a new CompanyUsecase with the given catalogue.
func NewCompanyUsecase(c CompanyCatalog) *CompanyUsecase {
	return &CompanyUsecase{catalog: c}
}

// List returns every configured company in catalogue order.
func (u *CompanyUsecase) List(_ context.Context) []entity.Company {
	return u.catalog.All()
}
