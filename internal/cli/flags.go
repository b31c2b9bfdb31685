package cli

import (
	"fmt"
	"strings"
	"time"

	"bank-statement-generator/internal/models"

	"github.com/spf13/cobra"
)

// generationFlags are shared by the commands that run the generator
type generationFlags struct {
	year         int
	month        int
	count        int
	checking     int
	savings      int
	credit       int
	frequency    string
	holder       string
	seed         int64
	travel       bool
	randomHolder bool
}

func (f *generationFlags) register(cmd *cobra.Command, app *App, now time.Time) {
	flags := cmd.Flags()
	flags.IntVarP(&f.year, "year", "y", now.Year(), "year of the newest statement")
	flags.IntVarP(&f.month, "month", "m", int(now.Month()), "month of the newest statement, 1-12")
	flags.IntVarP(&f.count, "count", "n", app.Config.Generator.StatementCount, "number of monthly statements per account")
	flags.IntVar(&f.checking, "checking", 1, "number of checking accounts (0-3)")
	flags.IntVar(&f.savings, "savings", 1, "number of savings accounts (0-2)")
	flags.IntVar(&f.credit, "credit", 1, "number of credit accounts (0-2)")
	flags.StringVarP(&f.frequency, "frequency", "f", app.Config.Generator.TransferFrequency, "transfer frequency: none, low, medium or high")
	flags.StringVar(&f.holder, "holder", app.Config.Generator.AccountHolder, "account holder name")
	flags.Int64Var(&f.seed, "seed", 0, "seed for reproducible output")
	flags.BoolVar(&f.travel, "travel", false, "add occasional travel clusters")
	flags.BoolVar(&f.randomHolder, "random-holder", false, "use a random holder name")
}

func (f *generationFlags) request(cmd *cobra.Command) (*models.GenerationRequest, error) {
	if f.month < 1 || f.month > 12 {
		return nil, fmt.Errorf("month must be between 1 and 12, got %d", f.month)
	}

	accounts := models.DefaultAccountConfigs(models.AccountCounts{
		Checking: f.checking,
		Savings:  f.savings,
		Credit:   f.credit,
	})
	if holder := strings.TrimSpace(f.holder); holder != "" {
		for i := range accounts {
			accounts[i].AccountHolder = holder
		}
	}

	req := &models.GenerationRequest{
		StatementYear:     f.year,
		StatementMonth:    time.Month(f.month),
		StatementCount:    f.count,
		Accounts:          accounts,
		TransferFrequency: f.frequency,
		IncludeTravel:     f.travel,
		RandomizeHolder:   f.randomHolder,
	}
	if cmd.Flags().Changed("seed") {
		seed := f.seed
		req.Seed = &seed
	}

	return req, nil
}
