package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTransaction_BalanceMarkers(t *testing.T) {
	date := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)
	opening := NewOpeningBalance(date, decimal.NewFromInt(100))
	closing := NewClosingBalance(date, decimal.NewFromInt(80))
	purchase := NewTransaction(date, "POS PURCHASE - Safeway - Tacoma", TransactionKindPurchase, decimal.RequireFromString("-20.00"))

	assert.True(t, opening.IsBalanceMarker())
	assert.True(t, closing.IsBalanceMarker())
	assert.False(t, purchase.IsBalanceMarker())

	assert.False(t, opening.Amount.Valid)
	assert.True(t, opening.SignedAmount().IsZero())
	assert.Equal(t, DescriptionClosingBalance, closing.Description)
}

func TestTransaction_SignHelpers(t *testing.T) {
	date := time.Date(2024, time.May, 3, 0, 0, 0, 0, time.UTC)

	outgoing := NewTransaction(date, "WITHDRAWAL", TransactionKindWithdrawal, decimal.RequireFromString("-40.50"))
	incoming := NewTransaction(date, "DEPOSIT", TransactionKindDeposit, decimal.RequireFromString("40.50"))

	assert.True(t, outgoing.IsOutgoing())
	assert.False(t, incoming.IsOutgoing())
	assert.True(t, outgoing.SignedAmount().Equal(decimal.RequireFromString("-40.50")))
	assert.False(t, NewOpeningBalance(date, decimal.NewFromInt(-5)).IsOutgoing())
}

func TestTransaction_SetAmountClearsPending(t *testing.T) {
	txn := &Transaction{
		Kind:    TransactionKindInterest,
		Pending: &PendingAmount{Rule: PendingRuleInterest, Sign: 1},
	}

	txn.SetAmount(decimal.RequireFromString("12.50"))

	assert.Nil(t, txn.Pending)
	assert.True(t, txn.Amount.Valid)
	assert.True(t, txn.SignedAmount().Equal(decimal.RequireFromString("12.5")))
}

func TestTransaction_IsLinked(t *testing.T) {
	txn := NewTransaction(time.Now(), "TRANSFER TO SAVINGS 7890", TransactionKindTransfer, decimal.NewFromInt(-50))
	assert.False(t, txn.IsLinked())

	txn.CorrelationID = "T-2024415-0"
	assert.True(t, txn.IsLinked())
}
