package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"bank-statement-generator/internal/server"

	"github.com/spf13/cobra"
)

type ServeCommandRunner struct {
	app *App
}

func NewServeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the statement generation HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &ServeCommandRunner{
				app: app,
			}
			return runner.Run(cmd.Context())
		},
	}
}

func (r *ServeCommandRunner) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(r.app.Config, r.app.StatementService, r.app.ExportService, nil)
	return srv.Run(ctx)
}
