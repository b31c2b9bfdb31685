package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// StatementDateLayout is the M/D/YYYY layout printed on statements
const StatementDateLayout = "1/2/2006"

// FormatCurrency formats an amount as US dollars, e.g. $1,234.56 or -$12.00
func FormatCurrency(amount decimal.Decimal) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Abs()
	}

	fixed := amount.StringFixed(2)
	whole, cents, _ := strings.Cut(fixed, ".")

	var grouped strings.Builder
	for i, digit := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			grouped.WriteByte(',')
		}
		grouped.WriteRune(digit)
	}

	return sign + "$" + grouped.String() + "." + cents
}

// MonthName returns the English name of a month
func MonthName(month time.Month) string {
	return month.String()
}

// FormatStatementDate formats a date the way statement lines print it
func FormatStatementDate(date time.Time) string {
	return date.Format(StatementDateLayout)
}
