package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	AccountTypeChecking = "checking"
	AccountTypeSavings  = "savings"
	AccountTypeCredit   = "credit"

	DefaultAccountHolder = "John Smith"
	DefaultBankName      = "Demo Bank"
	DefaultRoutingNumber = "123456789"

	// Account number bases, offset by the account index
	depositAccountNumberPrefix = "123-456-"
	depositAccountNumberBase   = 7890
	creditAccountNumberPrefix  = "4111-1111-2222-"
	creditAccountNumberBase    = 3333
)

var (
	ErrInvalidAccountType = errors.New("invalid account type")
	ErrNoAccounts         = errors.New("at least one account must be configured")
)

// maxBalance bounds configured balances and credit limits
var maxBalance = decimal.NewFromInt(10_000_000)

// accountTypeOrder is the order in which generated accounts are listed
var accountTypeOrder = []string{AccountTypeChecking, AccountTypeSavings, AccountTypeCredit}

type countRange struct {
	min int
	max int
}

// accountCountLimits bounds how many accounts of each type can be configured
var accountCountLimits = map[string]countRange{
	AccountTypeChecking: {0, 3},
	AccountTypeSavings:  {0, 2},
	AccountTypeCredit:   {0, 2},
}

// transactionVolumeLimits bounds the monthly transaction target per account type
var transactionVolumeLimits = map[string]countRange{
	AccountTypeChecking: {5, 200},
	AccountTypeSavings:  {1, 15},
	AccountTypeCredit:   {3, 50},
}

var defaultInitialBalances = map[string]decimal.Decimal{
	AccountTypeChecking: decimal.NewFromFloat(1500.00),
	AccountTypeSavings:  decimal.NewFromFloat(5000.00),
	AccountTypeCredit:   decimal.NewFromFloat(500.00),
}

var defaultTransactionsPerMonth = map[string]int{
	AccountTypeChecking: 100,
	AccountTypeSavings:  2,
	AccountTypeCredit:   25,
}

var defaultCreditLimit = decimal.NewFromFloat(5000.00)

// AccountConfig holds the user-editable settings for one account
type AccountConfig struct {
	AccountID            string           `json:"account_id"`
	Type                 string           `json:"type"`
	Index                int              `json:"index"`
	AccountName          string           `json:"account_name"`
	AccountHolder        string           `json:"account_holder"`
	AccountNumber        string           `json:"account_number"`
	InitialBalance       decimal.Decimal  `json:"initial_balance"`
	CreditLimit          *decimal.Decimal `json:"credit_limit"`
	TransactionsPerMonth int              `json:"transactions_per_month"`
}

// Account is a generated account with its chain of monthly statements
type Account struct {
	AccountID     string       `json:"account_id"`
	AccountType   string       `json:"account_type"`
	AccountName   string       `json:"account_name"`
	AccountNumber string       `json:"account_number"`
	AccountHolder string       `json:"account_holder"`
	BankName      string       `json:"bank_name"`
	RoutingNumber string       `json:"routing_number,omitempty"`
	Statements    []*Statement `json:"statements"`
}

// AccountCounts is the number of configured accounts per type
type AccountCounts struct {
	Checking int `json:"checking"`
	Savings  int `json:"savings"`
	Credit   int `json:"credit"`
}

// NewAccountConfig returns the default configuration for the index-th account of a type
func NewAccountConfig(accountType string, index int) (*AccountConfig, error) {
	if !IsValidAccountType(accountType) {
		return nil, ErrInvalidAccountType
	}

	cfg := &AccountConfig{
		AccountID:            fmt.Sprintf("%s-%d", accountType, index),
		Type:                 accountType,
		Index:                index,
		AccountName:          capitalize(accountType) + " Account",
		AccountHolder:        DefaultAccountHolder,
		AccountNumber:        DefaultAccountNumber(accountType, index),
		InitialBalance:       defaultInitialBalances[accountType],
		TransactionsPerMonth: defaultTransactionsPerMonth[accountType],
	}

	if accountType == AccountTypeCredit {
		limit := defaultCreditLimit
		cfg.CreditLimit = &limit
	}

	return cfg, nil
}

// DefaultAccountNumber returns the placeholder account number for an account
func DefaultAccountNumber(accountType string, index int) string {
	if accountType == AccountTypeCredit {
		return fmt.Sprintf("%s%d", creditAccountNumberPrefix, creditAccountNumberBase+index)
	}
	return fmt.Sprintf("%s%d", depositAccountNumberPrefix, depositAccountNumberBase+index)
}

// Normalize fills missing fields with defaults and clamps numeric fields into their allowed ranges
func (c *AccountConfig) Normalize() error {
	c.Type = strings.ToLower(strings.TrimSpace(c.Type))
	if !IsValidAccountType(c.Type) {
		return fmt.Errorf("%w: %q", ErrInvalidAccountType, c.Type)
	}

	if c.Index < 0 {
		c.Index = 0
	}

	defaults, _ := NewAccountConfig(c.Type, c.Index)

	if c.AccountID == "" {
		c.AccountID = defaults.AccountID
	}
	if strings.TrimSpace(c.AccountName) == "" {
		c.AccountName = defaults.AccountName
	}
	if strings.TrimSpace(c.AccountHolder) == "" {
		c.AccountHolder = defaults.AccountHolder
	}
	if strings.TrimSpace(c.AccountNumber) == "" {
		c.AccountNumber = defaults.AccountNumber
	}

	// zero means unset; any other out-of-range value is clamped
	if c.TransactionsPerMonth == 0 {
		c.TransactionsPerMonth = defaults.TransactionsPerMonth
	}

	c.InitialBalance = clampAmount(c.InitialBalance)
	c.TransactionsPerMonth = ClampTransactionsPerMonth(c.Type, c.TransactionsPerMonth)

	if c.Type == AccountTypeCredit {
		if c.CreditLimit == nil {
			c.CreditLimit = defaults.CreditLimit
		} else {
			limit := clampAmount(*c.CreditLimit)
			c.CreditLimit = &limit
		}
	} else {
		c.CreditLimit = nil
	}

	return nil
}

// Clamp bounds each count to the allowed number of accounts for its type
func (ac AccountCounts) Clamp() AccountCounts {
	return AccountCounts{
		Checking: clampInt(ac.Checking, accountCountLimits[AccountTypeChecking]),
		Savings:  clampInt(ac.Savings, accountCountLimits[AccountTypeSavings]),
		Credit:   clampInt(ac.Credit, accountCountLimits[AccountTypeCredit]),
	}
}

// Of returns the count for a single account type
func (ac AccountCounts) Of(accountType string) int {
	switch accountType {
	case AccountTypeChecking:
		return ac.Checking
	case AccountTypeSavings:
		return ac.Savings
	case AccountTypeCredit:
		return ac.Credit
	default:
		return 0
	}
}

// ClampTransactionsPerMonth bounds a monthly transaction target to the range allowed for the account type
func ClampTransactionsPerMonth(accountType string, count int) int {
	limits, ok := transactionVolumeLimits[accountType]
	if !ok {
		return count
	}
	return clampInt(count, limits)
}

// LastFour returns the last four characters of the account number
func (a *Account) LastFour() string {
	return lastFour(a.AccountNumber)
}

// IsCredit reports whether the account follows the credit-card sign convention
func (a *Account) IsCredit() bool {
	return a.AccountType == AccountTypeCredit
}

// Statement returns the statement at the given month index or nil
func (a *Account) Statement(monthIndex int) *Statement {
	if monthIndex < 0 || monthIndex >= len(a.Statements) {
		return nil
	}
	return a.Statements[monthIndex]
}

// Helper functions

// IsValidAccountType checks if the account type is valid
func IsValidAccountType(accountType string) bool {
	switch accountType {
	case AccountTypeChecking, AccountTypeSavings, AccountTypeCredit:
		return true
	default:
		return false
	}
}

// AccountTypes returns the supported account types in display order
func AccountTypes() []string {
	types := make([]string, len(accountTypeOrder))
	copy(types, accountTypeOrder)
	return types
}

func lastFour(s string) string {
	if len(s) <= 4 {
		return s
	}
	return s[len(s)-4:]
}

func clampInt(v int, r countRange) int {
	if v < r.min {
		return r.min
	}
	if v > r.max {
		return r.max
	}
	return v
}

func clampAmount(v decimal.Decimal) decimal.Decimal {
	if v.IsNegative() {
		return decimal.Zero
	}
	if v.GreaterThan(maxBalance) {
		return maxBalance
	}
	return v.Round(2)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
