package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Check is a paper check drawn on a checking account. Every check also appears
// as a CHECK #n line in the statement's transaction list.
type Check struct {
	CheckNumber   int             `json:"check_number"`
	Date          time.Time       `json:"date"`
	Amount        decimal.Decimal `json:"amount"`
	Payee         string          `json:"payee"`
	Memo          string          `json:"memo,omitempty"`
	AmountInWords string          `json:"amount_in_words"`
}

// NewCheck creates a check and fills in its written amount
func NewCheck(number int, date time.Time, amount decimal.Decimal, payee, memo string) Check {
	return Check{
		CheckNumber:   number,
		Date:          date,
		Amount:        amount,
		Payee:         payee,
		Memo:          memo,
		AmountInWords: AmountInWords(amount),
	}
}

var (
	onesWords = []string{"", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine",
		"ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen", "sixteen", "seventeen", "eighteen", "nineteen"}
	tensWords = []string{"", "", "twenty", "thirty", "forty", "fifty", "sixty", "seventy", "eighty", "ninety"}
)

// AmountInWords spells out an amount the way it is written on a check,
// e.g. 123.45 becomes "One hundred twenty-three and 45/100".
func AmountInWords(amount decimal.Decimal) string {
	amount = amount.Abs()
	dollars := amount.Floor()
	cents := amount.Sub(dollars).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	whole := dollars.IntPart()
	if cents >= 100 {
		whole++
		cents -= 100
	}

	words := "Zero"
	if whole > 0 {
		words = numberToWords(whole)
		words = strings.ToUpper(words[:1]) + words[1:]
	}

	return fmt.Sprintf("%s and %02d/100", words, cents)
}

func numberToWords(n int64) string {
	switch {
	case n == 0:
		return "zero"
	case n < 20:
		return onesWords[n]
	case n < 100:
		word := tensWords[n/10]
		if digit := n % 10; digit != 0 {
			word += "-" + onesWords[digit]
		}
		return word
	case n < 1000:
		return joinRemainder(onesWords[n/100]+" hundred", n%100)
	case n < 1_000_000:
		return joinRemainder(numberToWords(n/1000)+" thousand", n%1000)
	default:
		return joinRemainder(numberToWords(n/1_000_000)+" million", n%1_000_000)
	}
}

func joinRemainder(head string, remainder int64) string {
	if remainder == 0 {
		return head
	}
	return head + " " + numberToWords(remainder)
}
