package entity

import "catalog_demo/internal/domain/value"

type Discount struct {
	Name         string             `json:"name"`
	DiscountType value.DiscountType `json:"discount_type"`
	// AmountMoney is set for FIXED_AMOUNT discounts only.
	AmountMoney *value.Money `json:"amount_money,omitempty"`
	// Percentage is a decimal string such as "7.25", set for FIXED_PERCENTAGE
	// discounts only.
	Percentage string `json:"percentage,omitempty"`
}
