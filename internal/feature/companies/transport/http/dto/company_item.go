// Package dto converts companies entities to API bodies.
package dto

import (
	"stock_prediction/internal/api"
	"stock_prediction/internal/feature/companies/domain/entity"
)

// ToCompanyItems maps entities to their public representation.
func ToCompanyItems(cs []entity.Company) []api.CompanyItem {
	out := make([]api.CompanyItem, 0, len(cs))
	for _, c := range cs {
		out = append(out, api.CompanyItem{Name: c.Name, Symbol: c.Symbol})
	}
	return out
}
