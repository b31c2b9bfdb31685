package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"bank-statement-generator/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
)

var ErrNilRequest = errors.New("generation request is required")

// StatementSettings are the bank-level values stamped on every generated account
type StatementSettings struct {
	BankName      string
	RoutingNumber string
}

// DefaultStatementSettings returns the demo bank identity
func DefaultStatementSettings() StatementSettings {
	return StatementSettings{
		BankName:      models.DefaultBankName,
		RoutingNumber: models.DefaultRoutingNumber,
	}
}

type statementService struct {
	settings     StatementSettings
	metrics      MetricsRecorderInterface
	reconciler   StatementReconcilerInterface
	newGenerator func(seed int64) TransactionGeneratorInterface
	newLinker    func(seed int64) TransactionLinkerInterface
	now          func() time.Time
}

func NewStatementService(settings StatementSettings, metrics MetricsRecorderInterface) StatementServiceInterface {
	if settings.BankName == "" {
		settings.BankName = models.DefaultBankName
	}
	if settings.RoutingNumber == "" {
		settings.RoutingNumber = models.DefaultRoutingNumber
	}
	return &statementService{
		settings:     settings,
		metrics:      metrics,
		reconciler:   NewStatementReconciler(),
		newGenerator: NewTransactionGenerator,
		newLinker:    NewTransactionLinker,
		now:          time.Now,
	}
}

func (s *statementService) Generate(ctx context.Context, request *models.GenerationRequest) (*models.GenerationResult, error) {
	start := s.now()

	if request == nil {
		return nil, ErrNilRequest
	}

	if err := request.Normalize(); err != nil {
		s.recordFailure("invalid_request")
		return nil, err
	}

	seed := start.UnixNano()
	if request.Seed != nil {
		seed = *request.Seed
	}

	primary := request.PrimaryAccounts()
	periods := models.BuildMonthPeriods(request.StatementYear, request.StatementMonth, request.StatementCount)

	if request.RandomizeHolder {
		holder := gofakeit.New(uint64(seed)).Name()
		for i := range primary {
			primary[i].AccountHolder = holder
		}
	}

	accounts := make([]*models.Account, 0, len(primary))
	targets := make(map[*models.Account]int, len(primary))
	for _, cfg := range primary {
		account := s.scaffoldAccount(cfg, periods)
		accounts = append(accounts, account)
		targets[account] = cfg.TransactionsPerMonth
	}

	generator := s.newGenerator(seed)
	linker := s.newLinker(seed)
	linked := linkedAccounts(accounts)
	pairs := 0

	for monthIndex, period := range periods {
		if err := ctx.Err(); err != nil {
			s.recordFailure("cancelled")
			return nil, fmt.Errorf("generation cancelled: %w", err)
		}

		for _, account := range accounts {
			s.populateStatement(generator, account, monthIndex, targets[account])
		}

		if request.IncludeTravel {
			s.addTrip(generator, linked, monthIndex, period)
		}

		pairs += linker.LinkMonth(linked, monthIndex, request.TransferFrequency)
	}

	s.reconciler.Reconcile(accounts, len(periods))

	result := &models.GenerationResult{
		ID:                uuid.New(),
		Seed:              seed,
		TransferFrequency: request.TransferFrequency,
		GeneratedAt:       start.UTC(),
		Months:            periods,
		Accounts:          accounts,
	}

	duration := s.now().Sub(start)
	s.recordSuccess(result, duration)

	slog.Info("statements generated",
		"generation_id", result.ID,
		"seed", seed,
		"accounts", len(accounts),
		"statements", result.StatementCount(),
		"transactions", result.TransactionCount(),
		"linked_pairs", pairs,
		"duration_ms", duration.Milliseconds(),
	)

	return result, nil
}

func (s *statementService) DefaultAccounts(counts models.AccountCounts) []models.AccountConfig {
	return models.DefaultAccountConfigs(counts)
}

func (s *statementService) scaffoldAccount(cfg models.AccountConfig, periods []models.MonthPeriod) *models.Account {
	account := &models.Account{
		AccountID:     cfg.AccountID,
		AccountType:   cfg.Type,
		AccountName:   cfg.AccountName,
		AccountNumber: cfg.AccountNumber,
		AccountHolder: cfg.AccountHolder,
		BankName:      s.settings.BankName,
		Statements:    make([]*models.Statement, 0, len(periods)),
	}
	if cfg.Type == models.AccountTypeChecking {
		account.RoutingNumber = s.settings.RoutingNumber
	}

	for _, period := range periods {
		statement := models.NewStatement(period, cfg.InitialBalance)
		if cfg.CreditLimit != nil {
			statement.SetCreditLimit(*cfg.CreditLimit)
		}
		account.Statements = append(account.Statements, statement)
	}

	return account
}

func (s *statementService) populateStatement(generator TransactionGeneratorInterface, account *models.Account, monthIndex, target int) {
	statement := account.Statement(monthIndex)
	period := statement.Period()

	switch account.AccountType {
	case models.AccountTypeChecking:
		transactions, checks := generator.GenerateChecking(period, target)
		statement.Add(transactions...)
		statement.Checks = checks
	case models.AccountTypeSavings:
		statement.Add(generator.GenerateSavings(statement, target, monthIndex == 0)...)
	case models.AccountTypeCredit:
		statement.Add(generator.GenerateCredit(period, target)...)
	}
}

// addTrip puts a month's travel spending on the card, or on checking when there is no card
func (s *statementService) addTrip(generator TransactionGeneratorInterface, linked LinkedAccounts, monthIndex int, period models.MonthPeriod) {
	account := linked.Credit
	if account == nil {
		account = linked.Checking
	}
	if account == nil {
		return
	}

	trip := generator.GenerateTrip(period, account.AccountType)
	if len(trip) == 0 {
		return
	}
	account.Statement(monthIndex).Add(trip...)

	slog.Debug("trip added", "account_id", account.AccountID, "month", period.Month.String(), "transactions", len(trip))
}

func (s *statementService) recordSuccess(result *models.GenerationResult, duration time.Duration) {
	if s.metrics == nil {
		return
	}
	s.metrics.IncrementCounter("generation_total", map[string]string{"status": "success"})
	for _, account := range result.Accounts {
		for range account.Statements {
			s.metrics.IncrementCounter("statements_generated", map[string]string{"account_type": account.AccountType})
		}
	}
	s.metrics.RecordProcessingTime("generation_duration", duration)
	s.metrics.RecordGauge("generated_transactions", float64(result.TransactionCount()), nil)
}

func (s *statementService) recordFailure(reason string) {
	if s.metrics == nil {
		return
	}
	s.metrics.IncrementCounter("generation_total", map[string]string{"status": "failed", "reason": reason})
}

func linkedAccounts(accounts []*models.Account) LinkedAccounts {
	var linked LinkedAccounts
	for _, account := range accounts {
		switch account.AccountType {
		case models.AccountTypeChecking:
			linked.Checking = account
		case models.AccountTypeSavings:
			linked.Savings = account
		case models.AccountTypeCredit:
			linked.Credit = account
		}
	}
	return linked
}
