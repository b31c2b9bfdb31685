package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"bank-statement-generator/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// MockMetricsRecorder is an inline recorder for MetricsRecorderInterface to avoid import cycles
type MockMetricsRecorder struct {
	mu       sync.Mutex
	counters map[string]int
	timings  map[string]int
	gauges   map[string]float64
}

func newMockMetricsRecorder() *MockMetricsRecorder {
	return &MockMetricsRecorder{
		counters: make(map[string]int),
		timings:  make(map[string]int),
		gauges:   make(map[string]float64),
	}
}

func (m *MockMetricsRecorder) IncrementCounter(name string, tags map[string]string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := name
	if status := tags["status"]; status != "" {
		key += ":" + status
	}
	m.counters[key]++
}

func (m *MockMetricsRecorder) RecordProcessingTime(name string, duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.timings[name]++
}

func (m *MockMetricsRecorder) RecordGauge(name string, value float64, tags map[string]string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gauges[name] = value
}

// StatementServiceTestSuite defines the test suite for StatementServiceInterface
type StatementServiceTestSuite struct {
	suite.Suite
	metrics *MockMetricsRecorder
	service StatementServiceInterface
	faker   *gofakeit.Faker
}

func TestStatementServiceSuite(t *testing.T) {
	suite.Run(t, new(StatementServiceTestSuite))
}

// SetupTest runs before each test
func (s *StatementServiceTestSuite) SetupTest() {
	s.metrics = newMockMetricsRecorder()
	s.service = NewStatementService(DefaultStatementSettings(), s.metrics)
	s.faker = gofakeit.New(2024)
}

func (s *StatementServiceTestSuite) request(seed int64, count int, accounts models.AccountCounts) *models.GenerationRequest {
	return &models.GenerationRequest{
		StatementYear:     2024,
		StatementMonth:    time.January,
		StatementCount:    count,
		Accounts:          models.DefaultAccountConfigs(accounts),
		TransferFrequency: models.TransferFrequencyMedium,
		Seed:              &seed,
	}
}

func allTypes() models.AccountCounts {
	return models.AccountCounts{Checking: 1, Savings: 1, Credit: 1}
}

func (s *StatementServiceTestSuite) TestGenerate_BuildsMonthsAcrossYearBoundary() {
	result, err := s.service.Generate(context.Background(), s.request(1, 3, allTypes()))
	s.Require().NoError(err)

	s.Require().Len(result.Months, 3)
	s.Equal(2023, result.Months[0].Year)
	s.Equal(time.November, result.Months[0].Month)
	s.Equal(time.December, result.Months[1].Month)
	s.Equal(2024, result.Months[2].Year)
	s.Equal(time.January, result.Months[2].Month)

	s.Require().Len(result.Accounts, 3)
	s.Equal(models.AccountTypeChecking, result.Accounts[0].AccountType)
	s.Equal(models.AccountTypeSavings, result.Accounts[1].AccountType)
	s.Equal(models.AccountTypeCredit, result.Accounts[2].AccountType)
	for _, account := range result.Accounts {
		s.Len(account.Statements, 3)
		s.Equal(models.DefaultBankName, account.BankName)
	}
	s.Equal(models.DefaultRoutingNumber, result.Accounts[0].RoutingNumber)
	s.Empty(result.Accounts[2].RoutingNumber)
}

func (s *StatementServiceTestSuite) TestGenerate_StatementInvariants() {
	result, err := s.service.Generate(context.Background(), s.request(s.faker.Int64(), 6, allTypes()))
	s.Require().NoError(err)

	for _, account := range result.Accounts {
		for i, statement := range account.Statements {
			txns := statement.Transactions
			s.Require().GreaterOrEqual(len(txns), 2)
			s.Equal(models.TransactionKindOpeningBalance, txns[0].Kind)
			s.Equal(models.TransactionKindClosingBalance, txns[len(txns)-1].Kind)

			balance := statement.StartingBalance
			for j, txn := range txns {
				if j > 1 && !txn.IsBalanceMarker() {
					s.False(txn.Date.Before(txns[j-1].Date), "dates must not decrease")
				}
				if txn.IsBalanceMarker() {
					s.False(txn.Amount.Valid)
					continue
				}
				s.Nil(txn.Pending)
				balance = balance.Add(txn.SignedAmount())
				s.True(txn.Balance.Equal(balance))
			}
			s.True(statement.EndingBalance.Equal(balance))

			if i+1 < len(account.Statements) {
				next := account.Statements[i+1]
				s.True(next.StartingBalance.Equal(statement.EndingBalance))
				s.True(next.OpeningRecord().Balance.Equal(statement.EndingBalance))
			}
		}
	}
}

func (s *StatementServiceTestSuite) TestGenerate_LinkedLegsMatch() {
	result, err := s.service.Generate(context.Background(), s.request(11, 4, allTypes()))
	s.Require().NoError(err)

	legs := make(map[string][]*models.Transaction)
	for _, account := range result.Accounts {
		s.Empty(linkedLines(account.Statement(0)), "first month has no links")
		for _, statement := range account.Statements {
			for _, txn := range linkedLines(statement) {
				key := txn.Date.Format("2006-01-02") + "/" + txn.CorrelationID
				legs[key] = append(legs[key], txn)
			}
		}
	}

	s.NotEmpty(legs)
	for id, pair := range legs {
		s.Require().Len(pair, 2, id)
		s.Equal(pair[0].Date, pair[1].Date, id)
		s.True(pair[0].Amount.Decimal.Abs().Equal(pair[1].Amount.Decimal.Abs()), id)
		s.True(pair[0].Amount.Decimal.Abs().GreaterThanOrEqual(decimal.NewFromInt(25)), id)
	}
}

func (s *StatementServiceTestSuite) TestGenerate_NoLinksWithNoneFrequency() {
	req := s.request(5, 3, allTypes())
	req.TransferFrequency = models.TransferFrequencyNone

	result, err := s.service.Generate(context.Background(), req)
	s.Require().NoError(err)

	for _, account := range result.Accounts {
		for _, statement := range account.Statements {
			s.Empty(linkedLines(statement))
		}
	}
}

func (s *StatementServiceTestSuite) TestGenerate_SingleAccountHasNoLinks() {
	result, err := s.service.Generate(context.Background(), s.request(5, 3, models.AccountCounts{Checking: 1}))
	s.Require().NoError(err)

	s.Require().Len(result.Accounts, 1)
	for _, statement := range result.Accounts[0].Statements {
		s.Empty(linkedLines(statement))
		s.NotEmpty(statement.Checks)
	}
}

func (s *StatementServiceTestSuite) TestGenerate_SameSeedSameOutput() {
	first, err := s.service.Generate(context.Background(), s.request(314, 3, allTypes()))
	s.Require().NoError(err)
	second, err := s.service.Generate(context.Background(), s.request(314, 3, allTypes()))
	s.Require().NoError(err)

	s.Equal(first.Seed, second.Seed)
	s.NotEqual(first.ID, second.ID)
	for i, account := range first.Accounts {
		other := second.Accounts[i]
		for m, statement := range account.Statements {
			s.True(statement.EndingBalance.Equal(other.Statements[m].EndingBalance))
			s.Equal(len(statement.Transactions), len(other.Statements[m].Transactions))
		}
	}
}

func (s *StatementServiceTestSuite) TestGenerate_SavingsInterestFromOpeningBalance() {
	result, err := s.service.Generate(context.Background(), s.request(8, 3, models.AccountCounts{Savings: 1}))
	s.Require().NoError(err)

	for _, statement := range result.Account(models.AccountTypeSavings).Statements {
		var interest *models.Transaction
		for _, txn := range statement.Transactions {
			if txn.Kind == models.TransactionKindInterest {
				interest = txn
			}
		}
		s.Require().NotNil(interest)
		expected := statement.StartingBalance.Mul(decimal.RequireFromString("0.0025")).Round(2)
		s.True(interest.Amount.Decimal.Equal(expected))
	}
}

func (s *StatementServiceTestSuite) TestGenerate_RandomizeHolderUsesOneName() {
	req := s.request(77, 1, allTypes())
	req.RandomizeHolder = true

	result, err := s.service.Generate(context.Background(), req)
	s.Require().NoError(err)

	holder := result.Accounts[0].AccountHolder
	s.NotEmpty(holder)
	for _, account := range result.Accounts {
		s.Equal(holder, account.AccountHolder)
	}
}

func (s *StatementServiceTestSuite) TestGenerate_TravelMarksTransactions() {
	req := s.request(3, 24, models.AccountCounts{Credit: 1})
	req.IncludeTravel = true

	result, err := s.service.Generate(context.Background(), req)
	s.Require().NoError(err)

	travel := 0
	for _, statement := range result.Accounts[0].Statements {
		for _, txn := range statement.Transactions {
			if txn.TravelRelated {
				travel++
			}
		}
	}
	s.Positive(travel, "two years should include at least one trip")
}

func (s *StatementServiceTestSuite) TestGenerate_OnlyFirstAccountPerTypeUsed() {
	req := s.request(9, 1, models.AccountCounts{Checking: 3, Credit: 2})

	result, err := s.service.Generate(context.Background(), req)
	s.Require().NoError(err)

	s.Require().Len(result.Accounts, 2)
	s.Equal("checking-0", result.Accounts[0].AccountID)
	s.Equal("credit-0", result.Accounts[1].AccountID)
}

func (s *StatementServiceTestSuite) TestGenerate_RecordsMetrics() {
	_, err := s.service.Generate(context.Background(), s.request(1, 2, allTypes()))
	s.Require().NoError(err)

	s.Equal(1, s.metrics.counters["generation_total:success"])
	s.Equal(6, s.metrics.counters["statements_generated"])
	s.Equal(1, s.metrics.timings["generation_duration"])
	s.Positive(s.metrics.gauges["generated_transactions"])
}

// Error Cases

func (s *StatementServiceTestSuite) TestGenerate_NoAccounts() {
	req := s.request(1, 3, models.AccountCounts{})

	_, err := s.service.Generate(context.Background(), req)

	s.ErrorIs(err, models.ErrNoAccounts)
	s.Equal(1, s.metrics.counters["generation_total:failed"])
}

func (s *StatementServiceTestSuite) TestGenerate_InvalidMonth() {
	req := s.request(1, 3, allTypes())
	req.StatementMonth = 13

	_, err := s.service.Generate(context.Background(), req)

	s.ErrorIs(err, models.ErrInvalidStatementMonth)
}

func (s *StatementServiceTestSuite) TestGenerate_InvalidFrequency() {
	req := s.request(1, 3, allTypes())
	req.TransferFrequency = "weekly"

	_, err := s.service.Generate(context.Background(), req)

	s.ErrorIs(err, models.ErrInvalidTransferFrequency)
}

func (s *StatementServiceTestSuite) TestGenerate_NilRequest() {
	_, err := s.service.Generate(context.Background(), nil)
	s.ErrorIs(err, ErrNilRequest)
}

func (s *StatementServiceTestSuite) TestGenerate_CancelledContext() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.service.Generate(ctx, s.request(1, 3, allTypes()))

	s.True(errors.Is(err, context.Canceled))
}

func (s *StatementServiceTestSuite) TestDefaultAccounts_ClampsCounts() {
	configs := s.service.DefaultAccounts(models.AccountCounts{Checking: 9, Savings: -1, Credit: 2})

	s.Len(configs, 5)
	s.Equal("checking-2", configs[2].AccountID)
	s.Equal("credit-1", configs[4].AccountID)
	s.Equal("4111-1111-2222-3334", configs[4].AccountNumber)
}
