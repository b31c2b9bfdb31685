package services

import (
	"fmt"
	"math/rand"

	"bank-statement-generator/internal/models"
)

const (
	transferFirstDay       = 5
	transferLastDay        = 24
	paymentFirstDay        = 15
	paymentLastDay         = 24
	fullPaymentProbability = 0.8
	paymentThankYou        = "PAYMENT - THANK YOU"
)

var transferAmountRange = centsRange{5000, 25099}

// LinkedAccounts are the accounts taking part in cross-account activity for a run.
// Any of them may be nil.
type LinkedAccounts struct {
	Checking *models.Account
	Savings  *models.Account
	Credit   *models.Account
}

func (la LinkedAccounts) count() int {
	n := 0
	for _, account := range []*models.Account{la.Checking, la.Savings, la.Credit} {
		if account != nil {
			n++
		}
	}
	return n
}

type transactionLinker struct {
	rng *rand.Rand
}

// NewTransactionLinker creates a linker driven by the given seed
func NewTransactionLinker(seed int64) TransactionLinkerInterface {
	return &transactionLinker{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// LinkMonth adds checking/savings transfers and a card payment to the statements of
// one month. Nothing is linked in the first month, for a single account, or when the
// frequency is none. It returns the number of linked pairs added.
func (l *transactionLinker) LinkMonth(accounts LinkedAccounts, monthIndex int, frequency string) int {
	if monthIndex < 1 || frequency == models.TransferFrequencyNone || accounts.count() < 2 {
		return 0
	}

	linked := 0
	if accounts.Checking != nil && accounts.Savings != nil {
		linked += l.addTransfers(accounts.Checking, accounts.Savings, monthIndex, frequency)
	}
	if accounts.Checking != nil && accounts.Credit != nil {
		if l.addPayment(accounts.Checking, accounts.Credit, monthIndex) {
			linked++
		}
	}
	return linked
}

// TransferCount returns how many transfers a month gets for the frequency
func (l *transactionLinker) TransferCount(frequency string) int {
	switch frequency {
	case models.TransferFrequencyNone:
		return 0
	case models.TransferFrequencyLow:
		return 1
	case models.TransferFrequencyHigh:
		return randomIntBetween(l.rng, 2, 3)
	default:
		return randomIntBetween(l.rng, 1, 2)
	}
}

func (l *transactionLinker) addTransfers(checking, savings *models.Account, monthIndex int, frequency string) int {
	checkingStatement := checking.Statement(monthIndex)
	savingsStatement := savings.Statement(monthIndex)
	if checkingStatement == nil || savingsStatement == nil {
		return 0
	}

	period := checkingStatement.Period()
	count := l.TransferCount(frequency)

	for i := 0; i < count; i++ {
		day := randomIntBetween(l.rng, transferFirstDay, transferLastDay)
		date := period.Day(day)
		amount := randomAmount(l.rng, transferAmountRange)
		id := fmt.Sprintf("T-%d%d%d-%d", period.Year, int(period.Month)-1, day, i)

		out := models.NewTransaction(date, "TRANSFER TO SAVINGS "+savings.LastFour(), models.TransactionKindTransfer, amount.Neg())
		out.Category = models.CategoryTransfer
		out.CorrelationID = id

		in := models.NewTransaction(date, "TRANSFER FROM CHECKING "+checking.LastFour(), models.TransactionKindTransfer, amount)
		in.Category = models.CategoryTransfer
		in.CorrelationID = id

		checkingStatement.Add(out)
		savingsStatement.Add(in)
	}

	return count
}

// addPayment schedules a card payment whose amount is resolved from the card
// statement's opening balance during reconciliation.
func (l *transactionLinker) addPayment(checking, credit *models.Account, monthIndex int) bool {
	checkingStatement := checking.Statement(monthIndex)
	creditStatement := credit.Statement(monthIndex)
	if checkingStatement == nil || creditStatement == nil {
		return false
	}

	period := creditStatement.Period()
	day := randomIntBetween(l.rng, paymentFirstDay, paymentLastDay)
	date := period.Day(day)
	id := fmt.Sprintf("P-%d%d%d", period.Year, int(period.Month)-1, day)

	rule := models.PendingRuleMinimumPayment
	if l.rng.Float64() < fullPaymentProbability {
		rule = models.PendingRuleFullPayment
	}

	out := models.NewTransaction(date, fmt.Sprintf("PAYMENT TO %s CREDIT CARD", credit.LastFour()), models.TransactionKindPayment, minimumPaymentAmount.Neg())
	out.Category = models.CategoryPayment
	out.CorrelationID = id
	out.Pending = &models.PendingAmount{Rule: rule, Basis: creditStatement, Sign: -1}

	receipt := models.NewTransaction(date, paymentThankYou, models.TransactionKindPayment, minimumPaymentAmount.Neg())
	receipt.Category = models.CategoryPayment
	receipt.CorrelationID = id
	receipt.Pending = &models.PendingAmount{Rule: rule, Basis: creditStatement, Sign: -1}

	checkingStatement.Add(out)
	creditStatement.Add(receipt)
	return true
}
