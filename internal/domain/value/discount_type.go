package value

// DiscountType is the pricing mode of a catalog discount.
type DiscountType string

const (
	DiscountTypeFixedAmount        DiscountType = "FIXED_AMOUNT"
	DiscountTypeFixedPercentage    DiscountType = "FIXED_PERCENTAGE"
	DiscountTypeVariableAmount     DiscountType = "VARIABLE_AMOUNT"
	DiscountTypeVariablePercentage DiscountType = "VARIABLE_PERCENTAGE"
)

func (t DiscountType) String() string {
	return string(t)
}
