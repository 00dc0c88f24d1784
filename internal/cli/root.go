// internal/cli/root.go
package cli

import (
	"fmt"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"scholar-portal/internal/api"
	"scholar-portal/internal/common/config"
	"scholar-portal/internal/common/logger"
	"scholar-portal/internal/session"
)

// App carries the shared dependencies every command needs.
type App struct {
	Config *config.Config
	Logger logger.Logger
	Client *api.Client
	Store  session.Store
}

func newApp() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log := logger.NewStructured(cfg.Logging.Level, cfg.Logging.Format)
	store := session.NewFileStore(cfg.Session.TokenFile)
	client := api.NewClient(cfg.API, store, log)

	client.SetUnauthorizedHandler(func() {
		fmt.Fprintln(os.Stderr, "Session expired. Run `portal login` to sign in again.")
	})

	if cfg.Metrics.Enabled {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.Handler())
			if err := http.ListenAndServe(cfg.Metrics.Address, mux); err != nil {
				log.Warn("metrics listener stopped", map[string]interface{}{
					"address": cfg.Metrics.Address,
					"error":   err.Error(),
				})
			}
		}()
	}

	return &App{Config: cfg, Logger: log, Client: client, Store: store}, nil
}

// NewRootCmd builds the portal command tree.
func NewRootCmd() *cobra.Command {
	var app *App

	root := &cobra.Command{
		Use:           "portal",
		Short:         "Scholarship portal client",
		Long:          "Command line client for the scholarship management portal: browse scholarships, apply, upload documents, and review applications.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			app, err = newApp()
			return err
		},
	}

	appRef := func() *App { return app }

	root.AddCommand(
		newLoginCmd(appRef),
		newLogoutCmd(appRef),
		newScholarshipsCmd(appRef),
		newApplyCmd(appRef),
		newStatusCmd(appRef),
		newVaultCmd(appRef),
		newRenewCmd(appRef),
		newSwitchCmd(appRef),
		newAdminCmd(appRef),
	)
	return root
}

// Execute runs the CLI and maps failures to a process exit code.
func Execute() int {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return 0
}
