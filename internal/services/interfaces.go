package services

import (
	"context"
	"io"
	"time"

	"bank-statement-generator/internal/models"
)

// StatementServiceInterface generates chains of synthetic monthly statements
type StatementServiceInterface interface {
	// Generate runs the full pipeline for a request and returns the generated accounts
	Generate(ctx context.Context, request *models.GenerationRequest) (*models.GenerationResult, error)

	// DefaultAccounts returns default account configs for the clamped per-type counts
	DefaultAccounts(counts models.AccountCounts) []models.AccountConfig
}

// TransactionGeneratorInterface synthesizes per-account statement lines
type TransactionGeneratorInterface interface {
	TransactionCount(target int) int
	GenerateChecking(period models.MonthPeriod, target int) ([]*models.Transaction, []models.Check)
	GenerateSavings(statement *models.Statement, target int, initial bool) []*models.Transaction
	GenerateCredit(period models.MonthPeriod, target int) []*models.Transaction
	GenerateTrip(period models.MonthPeriod, accountType string) []*models.Transaction
	RandomMerchant(location string) (models.MerchantInfo, string)
}

// TransactionLinkerInterface adds paired transfers and payments across accounts
type TransactionLinkerInterface interface {
	LinkMonth(accounts LinkedAccounts, monthIndex int, frequency string) int
	TransferCount(frequency string) int
}

// StatementReconcilerInterface orders statement lines and rolls balances across months
type StatementReconcilerInterface interface {
	Reconcile(accounts []*models.Account, months int)
	ResolvePending(statement *models.Statement) int
	SortTransactions(statement *models.Statement)
	Sweep(statement *models.Statement, isCredit bool, next *models.Statement)
}

// ExportServiceInterface writes generation results in file formats
type ExportServiceInterface interface {
	Export(w io.Writer, format string, result *models.GenerationResult) error
	WriteCSV(w io.Writer, result *models.GenerationResult) error
	WriteJSON(w io.Writer, result *models.GenerationResult) error
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}
