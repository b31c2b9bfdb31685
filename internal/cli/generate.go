package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"bank-statement-generator/internal/services"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type GenerateCommandRunner struct {
	app    *App
	flags  *generationFlags
	format string
	output string
}

func NewGenerateCmd(app *App) *cobra.Command {
	runner := &GenerateCommandRunner{
		app:   app,
		flags: &generationFlags{},
	}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate statements and write them as JSON or CSV",
		Example: `  statementgen generate --year 2024 --month 6 --count 12 --seed 42
  statementgen generate --format csv --output statements.csv --frequency high`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runner.Run(cmd)
		},
	}

	runner.flags.register(cmd, app, time.Now())
	cmd.Flags().StringVar(&runner.format, "format", services.ExportFormatJSON, "output format: json or csv")
	cmd.Flags().StringVarP(&runner.output, "output", "o", "", "write to this file instead of stdout")

	return cmd
}

func (r *GenerateCommandRunner) Run(cmd *cobra.Command) error {
	format := strings.ToLower(r.format)
	if format != services.ExportFormatJSON && format != services.ExportFormatCSV {
		return fmt.Errorf("unsupported format %q, use json or csv", r.format)
	}

	req, err := r.flags.request(cmd)
	if err != nil {
		return err
	}

	result, err := r.app.StatementService.Generate(cmd.Context(), req)
	if err != nil {
		return fmt.Errorf("failed to generate statements: %w", err)
	}

	var out io.Writer = cmd.OutOrStdout()
	if r.output != "" {
		file, err := os.Create(r.output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer file.Close()
		out = file
	}

	if err := r.app.ExportService.Export(out, format, result); err != nil {
		return fmt.Errorf("failed to write %s: %w", format, err)
	}

	if r.output != "" {
		pterm.Fprintln(cmd.ErrOrStderr(), pterm.Success.Sprintf("Wrote %d statements (%d transactions) to %s",
			result.StatementCount(), result.TransactionCount(), r.output))
	}

	return nil
}
