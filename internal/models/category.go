package models

// Categories stamped on generated lines. Merchant purchases take the category
// of the merchant pool they were drawn from.
const (
	CategoryDining         = "DINING"
	CategoryTransportation = "TRANSPORTATION"
	CategoryEntertainment  = "ENTERTAINMENT"
	CategoryShopping       = "SHOPPING"
	CategoryTravel         = "TRAVEL"
	CategoryIncome         = "INCOME"
	CategoryInterest       = "INTEREST"
	CategoryTransfer       = "TRANSFER"
	CategoryPayment        = "PAYMENT"
	CategoryCheck          = "CHECK"
	CategoryATMCash        = "ATM_CASH"
)

var categories = map[string]struct{}{
	CategoryDining:         {},
	CategoryTransportation: {},
	CategoryEntertainment:  {},
	CategoryShopping:       {},
	CategoryTravel:         {},
	CategoryIncome:         {},
	CategoryInterest:       {},
	CategoryTransfer:       {},
	CategoryPayment:        {},
	CategoryCheck:          {},
	CategoryATMCash:        {},
}

func IsValidCategory(category string) bool {
	_, ok := categories[category]
	return ok
}

// MerchantInfo is a merchant drawn from one of the generator's pools
type MerchantInfo struct {
	Name     string
	Category string
}
