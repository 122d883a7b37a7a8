package square

import (
	"github.com/samber/lo"

	"catalog_demo/internal/domain/entity"
	"catalog_demo/internal/domain/value"
)

// listCatalogResponse is the body of GET /v2/catalog/list.
type listCatalogResponse struct {
	Objects []catalogObjectSchema `json:"objects"`
	Cursor  string                `json:"cursor"`
	Errors  []errorSchema         `json:"errors"`
}

func (r listCatalogResponse) toDomain() entity.CatalogPage {
	return entity.CatalogPage{
		Objects: lo.Map(r.Objects, func(s catalogObjectSchema, _ int) entity.CatalogObject {
			return s.toDomain()
		}),
		Cursor: r.Cursor,
		Errors: lo.Map(r.Errors, func(s errorSchema, _ int) entity.APIError {
			return s.toDomain()
		}),
	}
}

type catalogObjectSchema struct {
	Type         string              `json:"type"`
	ID           string              `json:"id"`
	Version      int64               `json:"version"`
	IsDeleted    bool                `json:"is_deleted"`
	DiscountData *discountDataSchema `json:"discount_data"`
}

func (s catalogObjectSchema) toDomain() entity.CatalogObject {
	obj := entity.CatalogObject{
		ID:      s.ID,
		Type:    value.CatalogObjectType(s.Type),
		Version: s.Version,
	}

	if s.DiscountData != nil {
		discount := s.DiscountData.toDomain()
		obj.Discount = &discount
	}

	return obj
}

type discountDataSchema struct {
	Name         string       `json:"name"`
	DiscountType string       `json:"discount_type"`
	Percentage   string       `json:"percentage"`
	AmountMoney  *moneySchema `json:"amount_money"`
}

func (s discountDataSchema) toDomain() entity.Discount {
	discount := entity.Discount{
		Name:         s.Name,
		DiscountType: value.DiscountType(s.DiscountType),
		Percentage:   s.Percentage,
	}

	if s.AmountMoney != nil {
		discount.AmountMoney = &value.Money{
			Amount:   s.AmountMoney.Amount,
			Currency: s.AmountMoney.Currency,
		}
	}

	return discount
}

type moneySchema struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

type errorSchema struct {
	Category string `json:"category"`
	Code     string `json:"code"`
	Detail   string `json:"detail"`
	Field    string `json:"field"`
}

func (s errorSchema) toDomain() entity.APIError {
	return entity.APIError{
		Category: s.Category,
		Code:     s.Code,
		Detail:   s.Detail,
		Field:    s.Field,
	}
}
