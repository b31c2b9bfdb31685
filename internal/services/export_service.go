package services

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"bank-statement-generator/internal/models"
)

const (
	ExportFormatCSV  = "csv"
	ExportFormatJSON = "json"
)

var (
	ErrNilResult           = errors.New("generation result is required")
	ErrUnknownExportFormat = errors.New("unknown export format")
)

var csvHeader = []string{
	"account_id",
	"account_type",
	"account_number",
	"statement",
	"date",
	"description",
	"kind",
	"category",
	"amount",
	"balance",
	"correlation_id",
	"check_number",
}

type exportService struct {
	metrics MetricsRecorderInterface
}

func NewExportService(metrics MetricsRecorderInterface) ExportServiceInterface {
	return &exportService{metrics: metrics}
}

// Export writes the result in the named format
func (s *exportService) Export(w io.Writer, format string, result *models.GenerationResult) error {
	switch format {
	case ExportFormatCSV:
		return s.WriteCSV(w, result)
	case ExportFormatJSON:
		return s.WriteJSON(w, result)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownExportFormat, format)
	}
}

// WriteCSV writes one row per statement line, opening and closing records included
func (s *exportService) WriteCSV(w io.Writer, result *models.GenerationResult) error {
	if result == nil {
		return ErrNilResult
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, account := range result.Accounts {
		for _, statement := range account.Statements {
			label := fmt.Sprintf("%d-%02d", statement.Year, int(statement.Month))
			for _, txn := range statement.Transactions {
				if err := writer.Write(csvRow(account, label, txn)); err != nil {
					return fmt.Errorf("failed to write csv row: %w", err)
				}
			}
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}

	s.recordExport(ExportFormatCSV)
	return nil
}

// WriteJSON writes the result as indented JSON
func (s *exportService) WriteJSON(w io.Writer, result *models.GenerationResult) error {
	if result == nil {
		return ErrNilResult
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(result); err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}

	s.recordExport(ExportFormatJSON)
	return nil
}

func csvRow(account *models.Account, statement string, txn *models.Transaction) []string {
	amount := ""
	if txn.Amount.Valid {
		amount = txn.Amount.Decimal.StringFixed(2)
	}
	checkNumber := ""
	if txn.CheckNumber != 0 {
		checkNumber = strconv.Itoa(txn.CheckNumber)
	}

	return []string{
		account.AccountID,
		account.AccountType,
		account.AccountNumber,
		statement,
		models.FormatStatementDate(txn.Date),
		txn.Description,
		txn.Kind,
		txn.Category,
		amount,
		txn.Balance.StringFixed(2),
		txn.CorrelationID,
		checkNumber,
	}
}

func (s *exportService) recordExport(format string) {
	if s.metrics == nil {
		return
	}
	s.metrics.IncrementCounter("export_total", map[string]string{"format": format})
}
