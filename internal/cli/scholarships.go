// internal/cli/scholarships.go
package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"scholar-portal/internal/common/errors"
)

func newScholarshipsCmd(app func() *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scholarships",
		Short: "Browse scholarships",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List available scholarships",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			schs, err := app().Client.Scholarships(cmd.Context())
			if err != nil {
				return fmt.Errorf("%s", errors.UserMessage(err))
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tDEADLINE\tRENEWABLE")
			for _, s := range schs {
				renewable := ""
				if s.IsRenewable {
					renewable = "yes"
				}
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", s.ID, s.Name, s.Category, s.LastDate, renewable)
			}
			return w.Flush()
		},
	}

	show := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one scholarship with its requirements",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			s, err := app().Client.Scholarship(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("%s", errors.UserMessage(err))
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%s)\n", s.Name, s.Category)
			if s.Description != "" {
				fmt.Fprintln(out, s.Description)
			}
			if s.LastDate != "" {
				fmt.Fprintf(out, "Deadline: %s\n", s.LastDate)
			}
			if len(s.RequiredProfileFields) > 0 {
				fmt.Fprintf(out, "Required profile fields: %d\n", len(s.RequiredProfileFields))
			}
			for _, req := range s.RequiredDocuments {
				name := fmt.Sprintf("format %d", req.DocumentFormatID)
				if req.DocumentFormat != nil {
					name = req.DocumentFormat.Name
				}
				flag := "optional"
				if req.IsMandatory {
					flag = "mandatory"
				}
				fmt.Fprintf(out, "  - %s (%s)\n", name, flag)
			}
			return nil
		},
	}

	check := &cobra.Command{
		Use:   "check <id>",
		Short: "Check your eligibility before applying",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireLogin(app()); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			res, err := app().Client.CheckEligibility(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("%s", errors.UserMessage(err))
			}
			if res.Eligible {
				fmt.Fprintln(cmd.OutOrStdout(), "You are eligible.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Not eligible:")
			for _, r := range res.Reasons {
				fmt.Fprintf(cmd.OutOrStdout(), "  - %s\n", r)
			}
			return nil
		},
	}

	notices := &cobra.Command{
		Use:   "notices",
		Short: "List current announcements",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := app()
			// The authenticated feed includes targeted notices; fall back to
			// the public feed when no session is present.
			fetch := a.Client.PublicAnnouncements
			if sess, err := a.Store.Current(); err == nil && sess != nil {
				fetch = a.Client.Announcements
			}
			items, err := fetch(cmd.Context())
			if err != nil {
				return fmt.Errorf("%s", errors.UserMessage(err))
			}
			for _, n := range items {
				fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s\n", n.CreatedAt, n.Title)
				if n.Content != "" {
					fmt.Fprintf(cmd.OutOrStdout(), "    %s\n", n.Content)
				}
			}
			return nil
		},
	}

	cmd.AddCommand(list, show, check, notices)
	return cmd
}
