package cli

import (
	"fmt"
	"time"

	"bank-statement-generator/internal/ui/views"

	"github.com/spf13/cobra"
)

type ShowCommandRunner struct {
	app     *App
	flags   *generationFlags
	filter  views.StatementFilter
	summary bool
}

func NewShowCmd(app *App) *cobra.Command {
	runner := &ShowCommandRunner{
		app:   app,
		flags: &generationFlags{},
	}

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Generate statements and render them in the terminal",
		Example: `  statementgen show --seed 7 --account checking-0
  statementgen show --count 6 --summary`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runner.Run(cmd)
		},
	}

	runner.flags.register(cmd, app, time.Now())
	cmd.Flags().StringVarP(&runner.filter.AccountID, "account", "a", "", "only show this account, e.g. checking-0")
	cmd.Flags().IntVarP(&runner.filter.Month, "statement", "s", 0, "only show the nth statement, 1 is the oldest")
	cmd.Flags().BoolVar(&runner.summary, "summary", false, "print one line per account instead of full statements")

	return cmd
}

func (r *ShowCommandRunner) Run(cmd *cobra.Command) error {
	req, err := r.flags.request(cmd)
	if err != nil {
		return err
	}

	result, err := r.app.StatementService.Generate(cmd.Context(), req)
	if err != nil {
		return fmt.Errorf("failed to generate statements: %w", err)
	}

	view := views.NewStatementView(cmd.OutOrStdout())
	if r.summary {
		return view.RenderSummary(result)
	}
	return view.Render(result, r.filter)
}
