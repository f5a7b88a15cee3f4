package helpers

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/leekchan/accounting"
	"github.com/shopspring/decimal"
)

type contextKey string

const (
	ContextKeyUserID contextKey = "userID"
	ContextKeyUser   contextKey = "userObject"
)

var mad = accounting.Accounting{Symbol: "MAD ", Precision: 2, Thousand: " ", Decimal: ","}

// FormatMAD renders a price the way the storefront displays it.
func FormatMAD(amount decimal.Decimal) string {
	return mad.FormatMoneyDecimal(amount)
}

func FormatValidationErrors(errs validator.ValidationErrors) map[string]string {
	errorMessages := make(map[string]string)
	for _, err := range errs {
		field := strings.ToLower(err.Field())
		switch err.Tag() {
		case "required":
			errorMessages[field] = fmt.Sprintf("%s is required.", err.Field())
		case "email":
			errorMessages[field] = fmt.Sprintf("%s must be a valid email address.", err.Field())
		case "gt":
			errorMessages[field] = fmt.Sprintf("%s must be greater than %s.", err.Field(), err.Param())
		case "min":
			errorMessages[field] = fmt.Sprintf("%s must be at least %s characters.", err.Field(), err.Param())
		case "max":
			errorMessages[field] = fmt.Sprintf("%s must be at most %s characters.", err.Field(), err.Param())
		case "oneof":
			errorMessages[field] = fmt.Sprintf("%s must be one of: %s.", err.Field(), err.Param())
		default:
			errorMessages[field] = fmt.Sprintf("%s failed %s validation.", err.Field(), err.Tag())
		}
	}
	return errorMessages
}
