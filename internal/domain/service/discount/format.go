package discount

import (
	"strings"

	"catalog_demo/internal/domain/entity"
	"catalog_demo/internal/domain/value"
)

const (
	variableAmount     = "variable $"
	variablePercentage = "variable %"
)

// AmountString returns the bracketed part of a discount line. The second
// result is false when the discount has no amount to show.
func AmountString(d entity.Discount) (string, bool) {
	switch d.DiscountType {
	case value.DiscountTypeFixedAmount:
		if d.AmountMoney == nil {
			return "", false
		}

		return d.AmountMoney.Format(), true
	case value.DiscountTypeFixedPercentage:
		if d.Percentage == "" {
			return "", false
		}

		return d.Percentage + "%", true
	case value.DiscountTypeVariableAmount:
		return variableAmount, true
	case value.DiscountTypeVariablePercentage:
		return variablePercentage, true
	default:
		return "", false
	}
}

// FormatLine renders an object as "<name> [<amount>] (<id>)". The amount part
// is left out when there is none. Objects without discount data are rejected.
func FormatLine(object entity.CatalogObject) (string, bool) {
	if object.Discount == nil {
		return "", false
	}

	var sb strings.Builder

	sb.WriteString(object.Discount.Name)

	if amount, ok := AmountString(*object.Discount); ok {
		sb.WriteString(" [")
		sb.WriteString(amount)
		sb.WriteString("]")
	}

	sb.WriteString(" (")
	sb.WriteString(object.ID)
	sb.WriteString(")")

	return sb.String(), true
}
