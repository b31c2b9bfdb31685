package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	TransferFrequencyNone   = "none"
	TransferFrequencyLow    = "low"
	TransferFrequencyMedium = "medium"
	TransferFrequencyHigh   = "high"

	DefaultStatementCount = 3
	MinStatementCount     = 1
	MaxStatementCount     = 24
)

var (
	ErrInvalidTransferFrequency = errors.New("invalid transfer frequency")
	ErrInvalidStatementMonth    = errors.New("statement month must be between 1 and 12")
	ErrInvalidStatementYear     = errors.New("statement year must be between 1900 and 9999")
)

// GenerationRequest configures a single generation run
type GenerationRequest struct {
	StatementYear     int             `json:"statement_year"`
	StatementMonth    time.Month      `json:"statement_month"`
	StatementCount    int             `json:"statement_count"`
	Accounts          []AccountConfig `json:"accounts"`
	TransferFrequency string          `json:"transfer_frequency"`
	Seed              *int64          `json:"seed,omitempty"`
	IncludeTravel     bool            `json:"include_travel"`
	RandomizeHolder   bool            `json:"randomize_holder"`
}

// GenerationResult is the output of a generation run, consumed by display and export layers
type GenerationResult struct {
	ID                uuid.UUID     `json:"id"`
	Seed              int64         `json:"seed"`
	TransferFrequency string        `json:"transfer_frequency"`
	GeneratedAt       time.Time     `json:"generated_at"`
	Months            []MonthPeriod `json:"months"`
	Accounts          []*Account    `json:"accounts"`
}

// Normalize validates the period and frequency and clamps the statement count.
// Account configs are normalized individually.
func (r *GenerationRequest) Normalize() error {
	if r.StatementMonth < time.January || r.StatementMonth > time.December {
		return ErrInvalidStatementMonth
	}
	if r.StatementYear < 1900 || r.StatementYear > 9999 {
		return ErrInvalidStatementYear
	}

	switch {
	case r.StatementCount == 0:
		r.StatementCount = DefaultStatementCount
	case r.StatementCount < MinStatementCount:
		r.StatementCount = MinStatementCount
	case r.StatementCount > MaxStatementCount:
		r.StatementCount = MaxStatementCount
	}

	r.TransferFrequency = strings.ToLower(strings.TrimSpace(r.TransferFrequency))
	if r.TransferFrequency == "" {
		r.TransferFrequency = TransferFrequencyMedium
	}
	if !IsValidTransferFrequency(r.TransferFrequency) {
		return fmt.Errorf("%w: %q", ErrInvalidTransferFrequency, r.TransferFrequency)
	}

	if len(r.Accounts) == 0 {
		return ErrNoAccounts
	}

	for i := range r.Accounts {
		if err := r.Accounts[i].Normalize(); err != nil {
			return err
		}
	}

	return nil
}

// PrimaryAccounts returns the first configured account of each type, in display order.
// Only one account per type takes part in a run.
func (r *GenerationRequest) PrimaryAccounts() []AccountConfig {
	primary := make([]AccountConfig, 0, len(accountTypeOrder))
	for _, accountType := range accountTypeOrder {
		for _, cfg := range r.Accounts {
			if cfg.Type == accountType {
				primary = append(primary, cfg)
				break
			}
		}
	}
	return primary
}

// Account returns the generated account of the given type, if any
func (r *GenerationResult) Account(accountType string) *Account {
	for _, account := range r.Accounts {
		if account.AccountType == accountType {
			return account
		}
	}
	return nil
}

// StatementCount returns the total number of statements across accounts
func (r *GenerationResult) StatementCount() int {
	count := 0
	for _, account := range r.Accounts {
		count += len(account.Statements)
	}
	return count
}

// TransactionCount returns the total number of non-marker transactions across all statements
func (r *GenerationResult) TransactionCount() int {
	count := 0
	for _, account := range r.Accounts {
		for _, statement := range account.Statements {
			count += statement.TransactionCount()
		}
	}
	return count
}

// IsValidTransferFrequency checks if the transfer frequency is valid
func IsValidTransferFrequency(frequency string) bool {
	switch frequency {
	case TransferFrequencyNone, TransferFrequencyLow, TransferFrequencyMedium, TransferFrequencyHigh:
		return true
	default:
		return false
	}
}

// DefaultAccountConfigs returns default configs for the clamped per-type counts
func DefaultAccountConfigs(counts AccountCounts) []AccountConfig {
	counts = counts.Clamp()
	configs := make([]AccountConfig, 0, counts.Checking+counts.Savings+counts.Credit)
	for _, accountType := range accountTypeOrder {
		for i := 0; i < counts.Of(accountType); i++ {
			cfg, _ := NewAccountConfig(accountType, i)
			configs = append(configs, *cfg)
		}
	}
	return configs
}
