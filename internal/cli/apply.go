// internal/cli/apply.go
package cli

import (
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"scholar-portal/internal/tui"
	"scholar-portal/internal/upload"
	"scholar-portal/internal/wizard"
)

func parseID(raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}

func newApplyCmd(app func() *App) *cobra.Command {
	return &cobra.Command{
		Use:   "apply <scholarship-id>",
		Short: "Start the interactive application wizard",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := app()
			if err := requireLogin(a); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			ctrl := wizard.NewController(a.Client, a.Logger)
			uploader := upload.NewUploader(a.Client, upload.NewValidator(a.Config.Upload.AllowedTypes), a.Logger)

			model := tui.NewWizardModel(ctrl, uploader, id)
			_, err = tea.NewProgram(model).Run()
			return err
		},
	}
}
