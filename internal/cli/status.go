// internal/cli/status.go
package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"scholar-portal/internal/common/errors"
	"scholar-portal/internal/dashboard"
	"scholar-portal/internal/models"
	"scholar-portal/internal/tui"
	"scholar-portal/internal/wizard"
)

func newStatusCmd(app func() *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show your applications and their statuses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := app()
			if err := requireLogin(a); err != nil {
				return err
			}
			apps, err := a.Client.MyApplications(cmd.Context())
			if err != nil {
				return fmt.Errorf("%s", errors.UserMessage(err))
			}

			styles := tui.DefaultStyles()
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tSCHOLARSHIP\tSTATUS\tSUBMITTED")
			for _, appl := range apps {
				fmt.Fprintf(w, "%d\t%d\t%s\t%s\n", appl.ID, appl.ScholarshipID,
					styles.StatusBadge(appl.Status), appl.CreatedAt)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			for _, appl := range apps {
				if appl.Status != models.StatusDocsRequired {
					continue
				}
				returned := wizard.ParseReturnRemarks(appl.Remarks)
				fmt.Fprintf(cmd.OutOrStdout(), "\nApplication %d was returned:\n", appl.ID)
				for _, item := range returned.Checklist {
					fmt.Fprintf(cmd.OutOrStdout(), "  - %s\n", item)
				}
				if returned.Note != "" {
					fmt.Fprintf(cmd.OutOrStdout(), "  Note: %s\n", returned.Note)
				}
			}
			return nil
		},
	}

	pdfCmd := &cobra.Command{
		Use:   "pdf <application-id>",
		Short: "Download the merged PDF for one application",
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
			exporter := dashboard.NewExportService(a.Client, a.Config.Export.OutputDir, a.Logger)
			path, err := exporter.SaveApplicationPDF(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("%s", errors.UserMessage(err))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", path)
			return nil
		},
	}

	cmd.AddCommand(pdfCmd)
	return cmd
}
