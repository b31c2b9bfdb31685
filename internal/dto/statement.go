package dto

import (
	"strings"
	"time"

	"bank-statement-generator/internal/models"

	"github.com/shopspring/decimal"
)

// AccountRequest configures one account in a generation request.
// Empty fields fall back to the per-type defaults.
type AccountRequest struct {
	Type                 string           `json:"type" validate:"required,account_type"`
	AccountName          string           `json:"account_name" validate:"omitempty,max=100"`
	AccountHolder        string           `json:"account_holder" validate:"omitempty,max=100"`
	AccountNumber        string           `json:"account_number" validate:"omitempty,account_number"`
	InitialBalance       *decimal.Decimal `json:"initial_balance"`
	CreditLimit          *decimal.Decimal `json:"credit_limit"`
	TransactionsPerMonth int              `json:"transactions_per_month" validate:"omitempty,min=1,max=200"`
}

// GenerateStatementsRequest represents the request to generate a statement set
type GenerateStatementsRequest struct {
	StatementYear     int              `json:"statement_year" validate:"required,min=1900,max=9999"`
	StatementMonth    int              `json:"statement_month" validate:"required,min=1,max=12"`
	StatementCount    int              `json:"statement_count" validate:"omitempty,oneof=3 6 12 24"`
	Accounts          []AccountRequest `json:"accounts" validate:"omitempty,dive"`
	TransferFrequency string           `json:"transfer_frequency" validate:"omitempty,transfer_frequency"`
	Seed              *int64           `json:"seed"`
	IncludeTravel     bool             `json:"include_travel"`
	RandomizeHolder   bool             `json:"randomize_holder"`
}

// GenerationMeta summarizes a generated result
type GenerationMeta struct {
	Seed         int64 `json:"seed"`
	Accounts     int   `json:"accounts"`
	Statements   int   `json:"statements"`
	Transactions int   `json:"transactions"`
}

// DefaultAccountsRequest holds the per-type counts for the defaults endpoint
type DefaultAccountsRequest struct {
	Checking int `query:"checking"`
	Savings  int `query:"savings"`
	Credit   int `query:"credit"`
}

// ToModel converts the request into a generation request.
// Accounts are indexed per type in request order.
func (r *GenerateStatementsRequest) ToModel() (*models.GenerationRequest, error) {
	req := &models.GenerationRequest{
		StatementYear:     r.StatementYear,
		StatementMonth:    time.Month(r.StatementMonth),
		StatementCount:    r.StatementCount,
		TransferFrequency: r.TransferFrequency,
		Seed:              r.Seed,
		IncludeTravel:     r.IncludeTravel,
		RandomizeHolder:   r.RandomizeHolder,
		Accounts:          make([]models.AccountConfig, 0, len(r.Accounts)),
	}

	indexes := make(map[string]int)
	for _, account := range r.Accounts {
		accountType := strings.ToLower(strings.TrimSpace(account.Type))
		cfg, err := models.NewAccountConfig(accountType, indexes[accountType])
		if err != nil {
			return nil, err
		}
		indexes[accountType]++

		if account.AccountName != "" {
			cfg.AccountName = account.AccountName
		}
		if account.AccountHolder != "" {
			cfg.AccountHolder = account.AccountHolder
		}
		if account.AccountNumber != "" {
			cfg.AccountNumber = account.AccountNumber
		}
		if account.InitialBalance != nil {
			cfg.InitialBalance = *account.InitialBalance
		}
		if account.CreditLimit != nil {
			limit := *account.CreditLimit
			cfg.CreditLimit = &limit
		}
		if account.TransactionsPerMonth != 0 {
			cfg.TransactionsPerMonth = account.TransactionsPerMonth
		}

		req.Accounts = append(req.Accounts, *cfg)
	}

	return req, nil
}

// NewGenerationMeta builds the response meta for a result
func NewGenerationMeta(result *models.GenerationResult) GenerationMeta {
	return GenerationMeta{
		Seed:         result.Seed,
		Accounts:     len(result.Accounts),
		Statements:   result.StatementCount(),
		Transactions: result.TransactionCount(),
	}
}

// Counts converts the query into clamped per-type account counts
func (r DefaultAccountsRequest) Counts() models.AccountCounts {
	return models.AccountCounts{
		Checking: r.Checking,
		Savings:  r.Savings,
		Credit:   r.Credit,
	}.Clamp()
}
