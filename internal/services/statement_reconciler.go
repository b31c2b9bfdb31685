package services

import (
	"sort"

	"bank-statement-generator/internal/models"

	"github.com/shopspring/decimal"
)

var (
	interestRate         = decimal.RequireFromString("0.0025")
	fullPaymentRatio     = decimal.RequireFromString("0.9")
	minimumPaymentRatio  = decimal.RequireFromString("0.03")
	minimumPaymentAmount = decimal.NewFromInt(25)
)

type statementReconciler struct{}

// NewStatementReconciler creates the component that orders statement lines and rolls balances forward
func NewStatementReconciler() StatementReconcilerInterface {
	return &statementReconciler{}
}

// Reconcile settles every statement of every account, month by month. Month k of all
// accounts is finished before month k+1 so that opening-balance dependent amounts
// see the true opening balance.
func (r *statementReconciler) Reconcile(accounts []*models.Account, months int) {
	for monthIndex := 0; monthIndex < months; monthIndex++ {
		for _, account := range accounts {
			statement := account.Statement(monthIndex)
			if statement == nil {
				continue
			}
			r.ResolvePending(statement)
			r.SortTransactions(statement)
			r.Sweep(statement, account.IsCredit(), account.Statement(monthIndex+1))
		}
	}
}

// ResolvePending fills in amounts derived from an opening balance. Transactions whose
// amount resolves to nothing are removed. Returns the number removed.
func (r *statementReconciler) ResolvePending(statement *models.Statement) int {
	kept := statement.Transactions[:0]
	removed := 0

	for _, txn := range statement.Transactions {
		if txn.Pending == nil {
			kept = append(kept, txn)
			continue
		}

		amount, ok := resolvePendingAmount(txn.Pending)
		if !ok {
			removed++
			continue
		}
		txn.SetAmount(amount)
		kept = append(kept, txn)
	}

	statement.Transactions = kept
	return removed
}

func resolvePendingAmount(p *models.PendingAmount) (decimal.Decimal, bool) {
	opening := decimal.Zero
	if p.Basis != nil {
		opening = p.Basis.StartingBalance
	}

	var magnitude decimal.Decimal
	switch p.Rule {
	case models.PendingRuleInterest:
		magnitude = opening.Mul(interestRate).Round(2)
		if !magnitude.IsPositive() {
			return decimal.Zero, false
		}
	case models.PendingRuleFullPayment:
		magnitude = opening.Mul(fullPaymentRatio).Floor()
	case models.PendingRuleMinimumPayment:
		magnitude = decimal.Max(minimumPaymentAmount, opening.Mul(minimumPaymentRatio).Floor())
	default:
		return decimal.Zero, false
	}

	if p.Rule != models.PendingRuleInterest && magnitude.LessThan(minimumPaymentAmount) {
		return decimal.Zero, false
	}

	if p.Sign < 0 {
		magnitude = magnitude.Neg()
	}
	return magnitude, true
}

// SortTransactions orders the statement: opening balance first, closing balance last,
// everything else by date. Same-day legs of one link keep the negative leg first.
func (r *statementReconciler) SortTransactions(statement *models.Statement) {
	sort.SliceStable(statement.Transactions, func(i, j int) bool {
		return transactionLess(statement.Transactions[i], statement.Transactions[j])
	})
}

func transactionLess(a, b *models.Transaction) bool {
	if rank(a) != rank(b) {
		return rank(a) < rank(b)
	}
	if !a.Date.Equal(b.Date) {
		return a.Date.Before(b.Date)
	}
	if a.IsLinked() && a.CorrelationID == b.CorrelationID {
		return a.IsOutgoing() && !b.IsOutgoing()
	}
	return false
}

func rank(t *models.Transaction) int {
	switch t.Kind {
	case models.TransactionKindOpeningBalance:
		return 0
	case models.TransactionKindClosingBalance:
		return 2
	default:
		return 1
	}
}

// Sweep computes running balances and totals, appends the closing record and seeds
// the next statement's opening balance. A previous closing record is replaced.
func (r *statementReconciler) Sweep(statement *models.Statement, isCredit bool, next *models.Statement) {
	lines := statement.Transactions[:0]
	for _, txn := range statement.Transactions {
		if txn.Kind != models.TransactionKindClosingBalance {
			lines = append(lines, txn)
		}
	}
	statement.Transactions = lines

	balance := statement.StartingBalance
	debits := decimal.Zero
	credits := decimal.Zero

	for _, txn := range statement.Transactions {
		if txn.Kind == models.TransactionKindOpeningBalance {
			txn.Balance = balance
			continue
		}
		amount := txn.SignedAmount()
		balance = balance.Add(amount)
		txn.Balance = balance

		// deposit accounts count money in as credits, cards count payments as credits
		countsAsCredit := amount.IsPositive()
		if isCredit {
			countsAsCredit = amount.IsNegative()
		}
		if countsAsCredit {
			credits = credits.Add(amount.Abs())
		} else {
			debits = debits.Add(amount.Abs())
		}
	}

	statement.Add(models.NewClosingBalance(statement.EndDate, balance))
	statement.TotalDebits = debits
	statement.TotalCredits = credits
	statement.SetEndingBalance(balance)

	if next != nil {
		next.SetOpeningBalance(balance)
	}
}
