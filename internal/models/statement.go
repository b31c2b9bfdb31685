package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Statement is one calendar month of activity for an account
type Statement struct {
	Year            int             `json:"year"`
	Month           time.Month      `json:"month"`
	StartDate       time.Time       `json:"start_date"`
	EndDate         time.Time       `json:"end_date"`
	StartingBalance decimal.Decimal `json:"starting_balance"`
	EndingBalance   decimal.Decimal `json:"ending_balance"`
	Transactions    []*Transaction  `json:"transactions"`
	TotalDebits     decimal.Decimal `json:"total_debits"`
	TotalCredits    decimal.Decimal `json:"total_credits"`

	// Credit card statements only
	CreditLimit     *decimal.Decimal `json:"credit_limit,omitempty"`
	AvailableCredit *decimal.Decimal `json:"available_credit,omitempty"`

	// Checking statements only
	Checks []Check `json:"checks,omitempty"`
}

// MonthPeriod describes a calendar month covered by a statement
type MonthPeriod struct {
	Year        int        `json:"year"`
	Month       time.Month `json:"month"`
	DaysInMonth int        `json:"days_in_month"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     time.Time  `json:"end_date"`
}

// NewMonthPeriod builds the period for a year and month
func NewMonthPeriod(year int, month time.Month) MonthPeriod {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	return MonthPeriod{
		Year:        start.Year(),
		Month:       start.Month(),
		DaysInMonth: end.Day(),
		StartDate:   start,
		EndDate:     end,
	}
}

// BuildMonthPeriods returns count consecutive months, oldest first, ending with the given month
func BuildMonthPeriods(year int, month time.Month, count int) []MonthPeriod {
	periods := make([]MonthPeriod, 0, count)
	for i := 0; i < count; i++ {
		offset := count - 1 - i
		// time.Date normalizes month underflow into the previous year
		first := time.Date(year, month-time.Month(offset), 1, 0, 0, 0, 0, time.UTC)
		periods = append(periods, NewMonthPeriod(first.Year(), first.Month()))
	}
	return periods
}

// Day returns the date of the given day of the month, clamped to the month length
func (p MonthPeriod) Day(day int) time.Time {
	if day < 1 {
		day = 1
	}
	if day > p.DaysInMonth {
		day = p.DaysInMonth
	}
	return time.Date(p.Year, p.Month, day, 0, 0, 0, 0, time.UTC)
}

// NewStatement scaffolds a statement with its opening balance record
func NewStatement(period MonthPeriod, openingBalance decimal.Decimal) *Statement {
	return &Statement{
		Year:            period.Year,
		Month:           period.Month,
		StartDate:       period.StartDate,
		EndDate:         period.EndDate,
		StartingBalance: openingBalance,
		EndingBalance:   openingBalance,
		Transactions:    []*Transaction{NewOpeningBalance(period.StartDate, openingBalance)},
		TotalDebits:     decimal.Zero,
		TotalCredits:    decimal.Zero,
	}
}

// Period returns the month period covered by the statement
func (s *Statement) Period() MonthPeriod {
	return NewMonthPeriod(s.Year, s.Month)
}

// Add appends transactions to the statement
func (s *Statement) Add(transactions ...*Transaction) {
	s.Transactions = append(s.Transactions, transactions...)
}

// OpeningRecord returns the opening balance record, if present
func (s *Statement) OpeningRecord() *Transaction {
	for _, txn := range s.Transactions {
		if txn.Kind == TransactionKindOpeningBalance {
			return txn
		}
	}
	return nil
}

// SetOpeningBalance reseeds the statement and its opening record with a new opening balance
func (s *Statement) SetOpeningBalance(balance decimal.Decimal) {
	s.StartingBalance = balance
	if opening := s.OpeningRecord(); opening != nil {
		opening.Balance = balance
	}
	s.updateAvailableCredit(balance)
}

// SetCreditLimit marks the statement as a credit card statement
func (s *Statement) SetCreditLimit(limit decimal.Decimal) {
	l := limit
	s.CreditLimit = &l
	s.updateAvailableCredit(s.StartingBalance)
}

// SetEndingBalance records the closing balance and refreshes the available credit
func (s *Statement) SetEndingBalance(balance decimal.Decimal) {
	s.EndingBalance = balance
	s.updateAvailableCredit(balance)
}

// TransactionCount returns the number of non-marker transactions
func (s *Statement) TransactionCount() int {
	count := 0
	for _, txn := range s.Transactions {
		if !txn.IsBalanceMarker() {
			count++
		}
	}
	return count
}

// RemoveTransaction drops a transaction from the statement, returning whether it was present
func (s *Statement) RemoveTransaction(target *Transaction) bool {
	for i, txn := range s.Transactions {
		if txn == target {
			s.Transactions = append(s.Transactions[:i], s.Transactions[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Statement) updateAvailableCredit(balance decimal.Decimal) {
	if s.CreditLimit == nil {
		return
	}
	available := s.CreditLimit.Sub(balance)
	s.AvailableCredit = &available
}
