package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	TransactionKindOpeningBalance = "opening_balance"
	TransactionKindClosingBalance = "closing_balance"
	TransactionKindPayroll        = "payroll"
	TransactionKindPurchase       = "purchase"
	TransactionKindCheck          = "check"
	TransactionKindInterest       = "interest"
	TransactionKindDeposit        = "deposit"
	TransactionKindWithdrawal     = "withdrawal"
	TransactionKindTransfer       = "transfer"
	TransactionKindPayment        = "payment"

	DescriptionOpeningBalance = "OPENING BALANCE"
	DescriptionClosingBalance = "CLOSING BALANCE"
)

// Rules for amounts that can only be computed once the statement's opening balance is settled
const (
	PendingRuleInterest       = "interest"
	PendingRuleFullPayment    = "full_payment"
	PendingRuleMinimumPayment = "minimum_payment"
)

// Transaction is a single statement line. Amount is signed according to the
// account's convention and is null for the opening and closing balance records.
type Transaction struct {
	Date          time.Time           `json:"date"`
	Description   string              `json:"description"`
	Kind          string              `json:"kind"`
	Category      string              `json:"category,omitempty"`
	Amount        decimal.NullDecimal `json:"amount"`
	Balance       decimal.Decimal     `json:"balance"`
	CorrelationID string              `json:"correlation_id,omitempty"`
	CheckNumber   int                 `json:"check_number,omitempty"`
	TravelRelated bool                `json:"travel_related,omitempty"`

	// Pending is set until the amount has been resolved against an opening balance
	Pending *PendingAmount `json:"-"`
}

// PendingAmount describes how to derive a transaction amount from the opening
// balance of a basis statement.
type PendingAmount struct {
	Rule  string
	Basis *Statement
	// Sign is applied to the resolved magnitude, +1 or -1
	Sign int
}

// NewTransaction creates a regular statement line with a signed amount
func NewTransaction(date time.Time, description, kind string, amount decimal.Decimal) *Transaction {
	return &Transaction{
		Date:        date,
		Description: description,
		Kind:        kind,
		Amount:      decimal.NullDecimal{Decimal: amount, Valid: true},
	}
}

// NewOpeningBalance creates the synthetic first record of a statement
func NewOpeningBalance(date time.Time, balance decimal.Decimal) *Transaction {
	return &Transaction{
		Date:        date,
		Description: DescriptionOpeningBalance,
		Kind:        TransactionKindOpeningBalance,
		Balance:     balance,
	}
}

// NewClosingBalance creates the synthetic last record of a statement
func NewClosingBalance(date time.Time, balance decimal.Decimal) *Transaction {
	return &Transaction{
		Date:        date,
		Description: DescriptionClosingBalance,
		Kind:        TransactionKindClosingBalance,
		Balance:     balance,
	}
}

// IsBalanceMarker reports whether the record is the opening or closing balance line
func (t *Transaction) IsBalanceMarker() bool {
	return t.Kind == TransactionKindOpeningBalance || t.Kind == TransactionKindClosingBalance
}

// IsOutgoing reports whether the signed amount is negative
func (t *Transaction) IsOutgoing() bool {
	return t.Amount.Valid && t.Amount.Decimal.IsNegative()
}

// IsLinked reports whether the transaction is one leg of a transfer or payment
func (t *Transaction) IsLinked() bool {
	return t.CorrelationID != ""
}

// SignedAmount returns the amount, or zero for balance markers
func (t *Transaction) SignedAmount() decimal.Decimal {
	if !t.Amount.Valid {
		return decimal.Zero
	}
	return t.Amount.Decimal
}

// SetAmount sets the signed amount and clears any pending rule
func (t *Transaction) SetAmount(amount decimal.Decimal) {
	t.Amount = decimal.NullDecimal{Decimal: amount, Valid: true}
	t.Pending = nil
}
