// internal/cli/renew.go
package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"scholar-portal/internal/common/errors"
	"scholar-portal/internal/models"
)

func newRenewCmd(app func() *App) *cobra.Command {
	var remarks string
	var draft bool

	cmd := &cobra.Command{
		Use:   "renew [scholarship-id]",
		Short: "List renewable scholarships or renew one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := app()
			if err := requireLogin(a); err != nil {
				return err
			}

			if len(args) == 0 {
				schs, err := a.Client.RenewableScholarships(cmd.Context())
				if err != nil {
					return fmt.Errorf("%s", errors.UserMessage(err))
				}
				if len(schs) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "Nothing to renew this session.")
					return nil
				}
				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "ID\tNAME\tDEADLINE")
				for _, s := range schs {
					fmt.Fprintf(w, "%d\t%s\t%s\n", s.ID, s.Name, s.LastDate)
				}
				return w.Flush()
			}

			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			appl, err := a.Client.Renew(cmd.Context(), models.RenewalCreate{
				ScholarshipID: id,
				Remarks:       remarks,
				IsDraft:       draft,
			})
			if err != nil {
				return fmt.Errorf("%s", errors.UserMessage(err))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Renewal application %d created (%s)\n", appl.ID, appl.Status)
			return nil
		},
	}
	cmd.Flags().StringVar(&remarks, "remarks", "", "free text remarks for the reviewer")
	cmd.Flags().BoolVar(&draft, "draft", false, "save as draft instead of submitting")
	return cmd
}

func newSwitchCmd(app func() *App) *cobra.Command {
	return &cobra.Command{
		Use:   "switch <target-scholarship-id>",
		Short: "Switch your pending application to a mutually exclusive scholarship",
		Long:  "Withdraws the conflicting pending application and applies to the target scholarship instead. Allowed once.",
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
			appl, err := a.Client.Switch(cmd.Context(), models.SwitchRequest{TargetScholarshipID: id})
			if err != nil {
				return fmt.Errorf("%s", errors.UserMessage(err))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Switched. New application %d (%s)\n", appl.ID, appl.Status)
			return nil
		},
	}
}
