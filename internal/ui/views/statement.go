package views

import (
	"fmt"
	"io"
	"strconv"

	"bank-statement-generator/internal/models"
	"bank-statement-generator/internal/ui"

	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
)

// StatementFilter narrows what the statement view prints. Zero values show everything.
type StatementFilter struct {
	AccountID string
	// Month is 1-based within the generated range
	Month int
}

type StatementView struct {
	out io.Writer
}

func NewStatementView(out io.Writer) *StatementView {
	return &StatementView{out: out}
}

// RenderSummary prints one line per account with its statement range and closing balance
func (v *StatementView) RenderSummary(result *models.GenerationResult) error {
	pterm.Fprintln(v.out, ui.L1Title("Generation %s", result.ID))
	pterm.Fprintln(v.out, pterm.Info.Sprintf("seed %d, transfer frequency %s, %d statements, %d transactions",
		result.Seed, result.TransferFrequency, result.StatementCount(), result.TransactionCount()))

	data := pterm.TableData{
		{"Account", "Type", "Number", "Holder", "Statements", "Closing Balance"},
	}
	for _, account := range result.Accounts {
		closing := "-"
		if n := len(account.Statements); n > 0 {
			closing = models.FormatCurrency(account.Statements[n-1].EndingBalance)
		}
		data = append(data, []string{
			account.AccountID,
			account.AccountType,
			account.AccountNumber,
			account.AccountHolder,
			strconv.Itoa(len(account.Statements)),
			closing,
		})
	}

	return v.table(data)
}

// Render prints every statement that matches the filter
func (v *StatementView) Render(result *models.GenerationResult, filter StatementFilter) error {
	matched := 0
	for _, account := range result.Accounts {
		if filter.AccountID != "" && account.AccountID != filter.AccountID {
			continue
		}
		for i, statement := range account.Statements {
			if filter.Month != 0 && filter.Month != i+1 {
				continue
			}
			if err := v.renderStatement(account, statement); err != nil {
				return err
			}
			matched++
		}
	}

	if matched == 0 {
		pterm.Fprintln(v.out, pterm.Warning.Sprint("No statements match the selection"))
	}
	return nil
}

func (v *StatementView) renderStatement(account *models.Account, statement *models.Statement) error {
	pterm.Fprintln(v.out)
	pterm.Fprintln(v.out, ui.L1Title("%s %s %d", account.AccountName, models.MonthName(statement.Month), statement.Year))

	header := fmt.Sprintf("%s\nHolder:  %s\nAccount: %s\nPeriod:  %s - %s",
		account.BankName,
		account.AccountHolder,
		account.AccountNumber,
		models.FormatStatementDate(statement.StartDate),
		models.FormatStatementDate(statement.EndDate),
	)
	if account.RoutingNumber != "" {
		header += "\nRouting: " + account.RoutingNumber
	}
	pterm.Fprintln(v.out, pterm.DefaultBox.Sprint(header))

	pterm.Fprintln(v.out, ui.L2Title("Transactions"))
	lines := pterm.TableData{{"Date", "Description", "Amount", "Balance"}}
	for _, txn := range statement.Transactions {
		amount := ""
		if txn.Amount.Valid {
			amount = ui.Amount(models.FormatCurrency(txn.Amount.Decimal), txn.Amount.Decimal.IsNegative())
		}
		lines = append(lines, []string{
			models.FormatStatementDate(txn.Date),
			txn.Description,
			amount,
			models.FormatCurrency(txn.Balance),
		})
	}
	if err := v.table(lines); err != nil {
		return err
	}

	pterm.Fprintln(v.out, ui.L2Title("Summary"))
	summary := pterm.TableData{
		{"Field", "Value"},
		{"Opening Balance", models.FormatCurrency(statement.StartingBalance)},
		{"Total Credits", models.FormatCurrency(statement.TotalCredits)},
		{"Total Debits", models.FormatCurrency(statement.TotalDebits)},
		{"Closing Balance", models.FormatCurrency(statement.EndingBalance)},
	}
	summary = appendOptional(summary, "Credit Limit", statement.CreditLimit)
	summary = appendOptional(summary, "Available Credit", statement.AvailableCredit)
	if err := v.table(summary); err != nil {
		return err
	}

	if len(statement.Checks) == 0 {
		return nil
	}

	pterm.Fprintln(v.out, ui.L2Title("Checks"))
	checks := pterm.TableData{{"Number", "Date", "Payee", "Amount", "In Words"}}
	for _, check := range statement.Checks {
		checks = append(checks, []string{
			strconv.Itoa(check.CheckNumber),
			models.FormatStatementDate(check.Date),
			check.Payee,
			models.FormatCurrency(check.Amount),
			check.AmountInWords,
		})
	}
	return v.table(checks)
}

func (v *StatementView) table(data pterm.TableData) error {
	rendered, err := pterm.DefaultTable.
		WithHasHeader().
		WithHeaderStyle(pterm.NewStyle(pterm.FgGray)).
		WithData(data).
		Srender()
	if err != nil {
		return err
	}
	pterm.Fprintln(v.out, rendered)
	return nil
}

func appendOptional(data pterm.TableData, label string, value *decimal.Decimal) pterm.TableData {
	if value == nil {
		return data
	}
	return append(data, []string{label, models.FormatCurrency(*value)})
}
