package services

import (
	"math"
	"strings"
	"testing"
	"time"

	"bank-statement-generator/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type TransactionGeneratorTestSuite struct {
	suite.Suite
	generator *transactionGenerator
	period    models.MonthPeriod
}

func TestTransactionGeneratorSuite(t *testing.T) {
	suite.Run(t, new(TransactionGeneratorTestSuite))
}

func (s *TransactionGeneratorTestSuite) SetupTest() {
	s.generator = NewTransactionGenerator(42).(*transactionGenerator)
	s.period = models.NewMonthPeriod(2024, time.March)
}

// Transaction Count Tests

func (s *TransactionGeneratorTestSuite) TestTransactionCount_WithinVariance() {
	for _, target := range []int{1, 2, 5, 25, 100, 200} {
		minCount := int(math.Floor(float64(target) * 0.75))
		maxCount := int(math.Ceil(float64(target) * 1.25))

		for i := 0; i < 200; i++ {
			count := s.generator.TransactionCount(target)
			s.GreaterOrEqual(count, minCount, "target %d", target)
			s.LessOrEqual(count, maxCount, "target %d", target)
		}
	}
}

func (s *TransactionGeneratorTestSuite) TestTransactionCount_ZeroTarget() {
	s.Equal(0, s.generator.TransactionCount(0))
	s.Equal(0, s.generator.TransactionCount(-3))
}

func (s *TransactionGeneratorTestSuite) TestTransactionCount_CoversRange() {
	seen := make(map[int]bool)
	for i := 0; i < 500; i++ {
		seen[s.generator.TransactionCount(4)] = true
	}
	s.True(seen[3], "lower bound should be reachable")
	s.True(seen[5], "upper bound should be reachable")
}

// Checking Tests

func (s *TransactionGeneratorTestSuite) TestGenerateChecking_HasPayrollOnFifteenth() {
	transactions, _ := s.generator.GenerateChecking(s.period, 20)

	var payroll []*models.Transaction
	for _, txn := range transactions {
		if txn.Kind == models.TransactionKindPayroll {
			payroll = append(payroll, txn)
		}
	}

	s.Require().Len(payroll, 1)
	s.Equal("DIRECT DEPOSIT - EMPLOYER PAYROLL", payroll[0].Description)
	s.True(payroll[0].Amount.Decimal.Equal(decimal.NewFromInt(1500)))
	s.Equal(15, payroll[0].Date.Day())
}

func (s *TransactionGeneratorTestSuite) TestGenerateChecking_PurchasesInRange() {
	transactions, _ := s.generator.GenerateChecking(s.period, 100)

	minAmount := decimal.RequireFromString("-120.99")
	maxAmount := decimal.RequireFromString("-5.00")

	for _, txn := range transactions {
		if txn.Kind != models.TransactionKindPurchase {
			continue
		}
		s.True(strings.HasPrefix(txn.Description, "POS PURCHASE - "), txn.Description)
		s.True(strings.HasSuffix(txn.Description, ", WA"), txn.Description)
		s.True(txn.Amount.Decimal.GreaterThanOrEqual(minAmount), txn.Amount.Decimal.String())
		s.True(txn.Amount.Decimal.LessThanOrEqual(maxAmount), txn.Amount.Decimal.String())
		s.True(txn.Amount.Decimal.Equal(txn.Amount.Decimal.Round(2)))
		s.LessOrEqual(txn.Date.Day(), 28)
		s.True(models.IsValidCategory(txn.Category), txn.Category)
	}
}

func (s *TransactionGeneratorTestSuite) TestGenerateChecking_ChecksMatchTransactions() {
	transactions, checks := s.generator.GenerateChecking(s.period, 100)

	checkLines := make(map[int]*models.Transaction)
	for _, txn := range transactions {
		if txn.Kind == models.TransactionKindCheck {
			checkLines[txn.CheckNumber] = txn
		}
	}

	s.Require().NotEmpty(checks)
	s.LessOrEqual(len(checks), 10)
	s.Len(checkLines, len(checks))

	for i, check := range checks {
		s.Equal(1000+2*10+i, check.CheckNumber, "March checks start at 1020")
		line, ok := checkLines[check.CheckNumber]
		s.Require().True(ok)
		s.True(line.Amount.Decimal.Equal(check.Amount.Neg()))
		s.Equal(line.Date, check.Date)
		s.GreaterOrEqual(check.Date.Day(), 5)
		s.LessOrEqual(check.Date.Day(), 25)
		s.NotEmpty(check.Payee)
		s.NotEmpty(check.AmountInWords)
		if check.Memo != "" {
			s.True(strings.HasPrefix(check.Memo, "Invoice #"))
		}
	}
}

func (s *TransactionGeneratorTestSuite) TestGenerateChecking_AtLeastOneCheck() {
	_, checks := s.generator.GenerateChecking(s.period, 1)
	s.Len(checks, 1)
}

// Savings Tests

func (s *TransactionGeneratorTestSuite) TestGenerateSavings_InitialMonthOnlyInterest() {
	statement := models.NewStatement(s.period, decimal.NewFromInt(5000))

	transactions := s.generator.GenerateSavings(statement, 10, true)

	s.Require().Len(transactions, 1)
	interest := transactions[0]
	s.Equal("INTEREST PAYMENT", interest.Description)
	s.Equal(31, interest.Date.Day())
	s.Require().NotNil(interest.Pending)
	s.Equal(models.PendingRuleInterest, interest.Pending.Rule)
	s.Same(statement, interest.Pending.Basis)
}

func (s *TransactionGeneratorTestSuite) TestGenerateSavings_LaterMonthsAddActivity() {
	statement := models.NewStatement(s.period, decimal.NewFromInt(5000))

	transactions := s.generator.GenerateSavings(statement, 10, false)

	s.Greater(len(transactions), 1)
	for _, txn := range transactions[1:] {
		s.LessOrEqual(txn.Date.Day(), 25)
		switch txn.Kind {
		case models.TransactionKindDeposit:
			s.Equal("DEPOSIT", txn.Description)
			s.True(txn.Amount.Decimal.GreaterThanOrEqual(decimal.NewFromInt(50)))
			s.True(txn.Amount.Decimal.LessThanOrEqual(decimal.RequireFromString("300.99")))
		case models.TransactionKindWithdrawal:
			s.Equal("WITHDRAWAL", txn.Description)
			s.True(txn.Amount.Decimal.LessThanOrEqual(decimal.NewFromInt(-25)))
			s.True(txn.Amount.Decimal.GreaterThanOrEqual(decimal.RequireFromString("-125.99")))
		default:
			s.Failf("unexpected kind", "kind %s", txn.Kind)
		}
	}
}

// Credit Tests

func (s *TransactionGeneratorTestSuite) TestGenerateCredit_PositivePurchases() {
	transactions := s.generator.GenerateCredit(s.period, 25)

	s.NotEmpty(transactions)
	for _, txn := range transactions {
		s.True(strings.HasPrefix(txn.Description, "PURCHASE - "), txn.Description)
		s.True(txn.Amount.Decimal.GreaterThanOrEqual(decimal.NewFromInt(20)))
		s.True(txn.Amount.Decimal.LessThanOrEqual(decimal.RequireFromString("150.99")))
		s.LessOrEqual(txn.Date.Day(), 25)
	}
}

// Trip Tests

func (s *TransactionGeneratorTestSuite) TestGenerateTrip_ClusterShape() {
	var trip []*models.Transaction
	for i := 0; i < 100 && len(trip) == 0; i++ {
		trip = s.generator.GenerateTrip(s.period, models.AccountTypeCredit)
	}
	s.Require().NotEmpty(trip, "a trip should occur within 100 months")

	first := trip[0].Date
	for _, txn := range trip {
		s.True(txn.TravelRelated)
		s.True(txn.Amount.Decimal.IsPositive(), "card trip spending increases the balance")
		s.False(txn.Date.Before(first))
		s.LessOrEqual(txn.Date.Sub(first), 3*24*time.Hour)
	}
	s.True(strings.HasSuffix(trip[0].Description, "Seattle, WA"), trip[0].Description)
}

func (s *TransactionGeneratorTestSuite) TestGenerateTrip_CheckingSign() {
	var trip []*models.Transaction
	for i := 0; i < 100 && len(trip) == 0; i++ {
		trip = s.generator.GenerateTrip(s.period, models.AccountTypeChecking)
	}
	s.Require().NotEmpty(trip)

	for _, txn := range trip {
		s.True(txn.Amount.Decimal.IsNegative())
	}
}

// Merchant Tests

func (s *TransactionGeneratorTestSuite) TestRandomMerchant_HomeCity() {
	for i := 0; i < 50; i++ {
		merchant, label := s.generator.RandomMerchant("")
		s.NotEmpty(merchant.Name)
		s.Contains([]string{models.CategoryShopping, models.CategoryDining, models.CategoryTransportation}, merchant.Category)

		city := strings.TrimPrefix(label, merchant.Name+" - ")
		s.True(isHomeCity(city), city)
	}
}

func (s *TransactionGeneratorTestSuite) TestRandomMerchant_TravelLocationUsesTravelPools() {
	categories := make(map[string]bool)
	for i := 0; i < 300; i++ {
		merchant, label := s.generator.RandomMerchant("Denver, CO")
		s.True(strings.HasSuffix(label, " - Denver, CO"))
		categories[merchant.Category] = true
	}

	s.True(categories[models.CategoryTravel])
	s.True(categories[models.CategoryEntertainment])
}

// Determinism Tests

func (s *TransactionGeneratorTestSuite) TestSameSeedSameOutput() {
	first, _ := NewTransactionGenerator(7).GenerateChecking(s.period, 30)
	second, _ := NewTransactionGenerator(7).GenerateChecking(s.period, 30)

	s.Require().Equal(len(first), len(second))
	for i := range first {
		s.Equal(first[i].Description, second[i].Description)
		s.True(first[i].Amount.Decimal.Equal(second[i].Amount.Decimal))
		s.Equal(first[i].Date, second[i].Date)
	}
}
