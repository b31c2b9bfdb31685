package cli

import (
	"fmt"
	"log/slog"
	"os"
	"unicode"

	"bank-statement-generator/internal/config"
	"bank-statement-generator/internal/services"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// App carries what every command needs
type App struct {
	Config           *config.Config
	StatementService services.StatementServiceInterface
	ExportService    services.ExportServiceInterface
}

func NewApp(cfg *config.Config, metrics services.MetricsRecorderInterface) *App {
	return &App{
		Config: cfg,
		StatementService: services.NewStatementService(services.StatementSettings{
			BankName:      cfg.Generator.BankName,
			RoutingNumber: cfg.Generator.RoutingNumber,
		}, metrics),
		ExportService: services.NewExportService(metrics),
	}
}

func Execute() {
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " ERROR ",
		Style: pterm.NewStyle(pterm.BgLightRed, pterm.FgBlack),
	}

	cfg, err := config.Load()
	if err != nil {
		pterm.Error.Println(capitalize(err.Error()))
		os.Exit(1)
	}

	app := NewApp(cfg, services.NewPrometheusMetrics(nil))

	if err := NewRootCmd(app).Execute(); err != nil {
		pterm.Error.Println(capitalize(err.Error()))
		os.Exit(1)
	}
}

func NewRootCmd(app *App) *cobra.Command {
	var logLevel string

	rootCmd := &cobra.Command{
		Use:           "statementgen",
		Short:         "statementgen fabricates synthetic bank statements",
		Long:          `statementgen fabricates realistic synthetic checking, savings and credit card statements for demos and tests. All data is fictional.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogger(app.Config, logLevel)
		},
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn or error")

	rootCmd.AddCommand(NewServeCmd(app))
	rootCmd.AddCommand(NewGenerateCmd(app))
	rootCmd.AddCommand(NewShowCmd(app))

	return rootCmd
}

// setupLogger installs the default slog logger; JSON in production, text otherwise
func setupLogger(cfg *config.Config, level string) error {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("invalid log level %q", level)
	}

	opts := &slog.HandlerOptions{Level: lvl}
	var handler slog.Handler
	if cfg.IsProduction() {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	slog.SetDefault(slog.New(handler))
	return nil
}

func capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
