// internal/cli/admin.go
package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"scholar-portal/internal/common/errors"
	"scholar-portal/internal/dashboard"
	"scholar-portal/internal/models"
	"scholar-portal/internal/tui"
)

func newAdminCmd(app func() *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Staff operations (general office, department head, super admin)",
	}
	cmd.AddCommand(
		newAdminApplicationsCmd(app),
		newAdminVerifyCmd(app),
		newAdminStatsCmd(app),
		newAdminDeptCmd(app),
		newAdminAnalyticsCmd(app),
		newAdminExportCmd(app),
		newAdminEmailCmd(app),
		newAdminUsersCmd(app),
		newAdminMasterCmd(app),
		newAdminLogsCmd(app),
	)
	return cmd
}

func reviewService(a *App) *dashboard.ReviewService {
	return dashboard.NewReviewService(a.Client, a.Logger)
}

func newAdminApplicationsCmd(app func() *App) *cobra.Command {
	var (
		status  string
		search  string
		oldest  bool
		approve []int
		reject  []int
	)

	cmd := &cobra.Command{
		Use:   "applications",
		Short: "Review submitted applications",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := app()
			if err := requireLogin(a); err != nil {
				return err
			}
			svc := reviewService(a)
			if err := svc.Refresh(cmd.Context()); err != nil {
				return fmt.Errorf("%s", errors.UserMessage(err))
			}

			if len(approve) > 0 {
				if err := svc.BulkUpdateStatus(cmd.Context(), approve, models.StatusApproved, ""); err != nil {
					return fmt.Errorf("%s", errors.UserMessage(err))
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Approved %d application(s)\n", len(approve))
			}
			if len(reject) > 0 {
				if err := svc.BulkUpdateStatus(cmd.Context(), reject, models.StatusRejected, ""); err != nil {
					return fmt.Errorf("%s", errors.UserMessage(err))
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Rejected %d application(s)\n", len(reject))
			}

			order := dashboard.SortNewest
			if oldest {
				order = dashboard.SortOldest
			}
			visible := svc.Visible(dashboard.Filter{
				Status: models.ApplicationStatus(status),
				Search: search,
				Sort:   order,
			})

			styles := tui.DefaultStyles()
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tSTUDENT\tSCHOLARSHIP\tSTATUS\tSUBMITTED")
			for _, appl := range visible {
				student := ""
				if appl.Student != nil {
					student = appl.Student.FullName
				}
				fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%s\n", appl.ID, student, appl.ScholarshipID,
					styles.StatusBadge(appl.Status), appl.CreatedAt)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			counts := svc.Stats()
			fmt.Fprintf(cmd.OutOrStdout(), "\n%d total | %d submitted | %d approved | %d returned | %d rejected\n",
				len(svc.Applications()), counts[models.StatusSubmitted], counts[models.StatusApproved],
				counts[models.StatusDocsRequired], counts[models.StatusRejected])
			return nil
		},
	}
	cmd.Flags().StringVar(&status, "status", "", "filter by status")
	cmd.Flags().StringVar(&search, "search", "", "search by student, enrollment or scholarship")
	cmd.Flags().BoolVar(&oldest, "oldest", false, "sort oldest first")
	cmd.Flags().IntSliceVar(&approve, "approve", nil, "application ids to approve")
	cmd.Flags().IntSliceVar(&reject, "reject", nil, "application ids to reject")

	var issues []string
	var note string
	returnCmd := &cobra.Command{
		Use:   "return <application-id>",
		Short: "Return an application for correction",
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
			svc := reviewService(a)
			if err := svc.Refresh(cmd.Context()); err != nil {
				return fmt.Errorf("%s", errors.UserMessage(err))
			}
			if err := svc.ReturnForCorrection(cmd.Context(), id, issues, note); err != nil {
				return fmt.Errorf("%s", errors.UserMessage(err))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Application %d returned for correction\n", id)
			return nil
		},
	}
	returnCmd.Flags().StringArrayVar(&issues, "issue", nil, "checklist item for the student (repeatable)")
	returnCmd.Flags().StringVar(&note, "note", "", "free text note for the student")
	cmd.AddCommand(returnCmd)

	return cmd
}

func newAdminVerifyCmd(app func() *App) *cobra.Command {
	var reject bool
	var remarks string

	cmd := &cobra.Command{
		Use:   "verify-doc <document-id>",
		Short: "Verify or reject one uploaded document",
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
			svc := reviewService(a)
			if err := svc.VerifyDocument(cmd.Context(), id, !reject, remarks); err != nil {
				return fmt.Errorf("%s", errors.UserMessage(err))
			}
			verdict := "verified"
			if reject {
				verdict = "rejected"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Document %d %s\n", id, verdict)
			return nil
		},
	}
	cmd.Flags().BoolVar(&reject, "reject", false, "reject instead of verify")
	cmd.Flags().StringVar(&remarks, "remarks", "", "remarks shown to the student (required for rejection)")
	return cmd
}

func newAdminStatsCmd(app func() *App) *cobra.Command {
	var dept bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show headline counters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := app()
			if err := requireLogin(a); err != nil {
				return err
			}
			var (
				stats *models.AdminStats
				err   error
			)
			if dept {
				stats, err = a.Client.DeptStats(cmd.Context())
			} else {
				stats, err = a.Client.AdminStats(cmd.Context())
			}
			if err != nil {
				return fmt.Errorf("%s", errors.UserMessage(err))
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Students:      %d\n", stats.TotalStudents)
			fmt.Fprintf(out, "Scholarships:  %d\n", stats.TotalScholarships)
			fmt.Fprintf(out, "Applications:  %d\n", stats.TotalApplications)
			fmt.Fprintf(out, "Pending:       %d\n", stats.PendingReview)
			return nil
		},
	}
	cmd.Flags().BoolVar(&dept, "dept", false, "scope to your department")
	return cmd
}

func newAdminDeptCmd(app func() *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dept",
		Short: "Department head views",
	}

	applications := &cobra.Command{
		Use:   "applications",
		Short: "List applications from your department",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := app()
			if err := requireLogin(a); err != nil {
				return err
			}
			apps, err := a.Client.DeptApplications(cmd.Context())
			if err != nil {
				return fmt.Errorf("%s", errors.UserMessage(err))
			}
			styles := tui.DefaultStyles()
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tSTUDENT\tSCHOLARSHIP\tSTATUS\tSUBMITTED")
			for _, appl := range apps {
				student := ""
				if appl.Student != nil {
					student = appl.Student.FullName
				}
				fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%s\n", appl.ID, student, appl.ScholarshipID,
					styles.StatusBadge(appl.Status), appl.CreatedAt)
			}
			return w.Flush()
		},
	}

	students := &cobra.Command{
		Use:   "students",
		Short: "List students in your department",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := app()
			if err := requireLogin(a); err != nil {
				return err
			}
			list, err := a.Client.DeptStudents(cmd.Context())
			if err != nil {
				return fmt.Errorf("%s", errors.UserMessage(err))
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tENROLLMENT\tEMAIL")
			for _, u := range list {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", u.ID, u.FullName, u.EnrollmentNo, u.Email)
			}
			return w.Flush()
		},
	}

	cmd.AddCommand(applications, students)
	return cmd
}

func newAdminAnalyticsCmd(app func() *App) *cobra.Command {
	return &cobra.Command{
		Use:   "analytics",
		Short: "Show application distributions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := app()
			if err := requireLogin(a); err != nil {
				return err
			}
			dash, err := a.Client.AnalyticsDashboard(cmd.Context())
			if err != nil {
				return fmt.Errorf("%s", errors.UserMessage(err))
			}
			printDistribution(cmd, "By department", dash.DepartmentDistribution)
			printDistribution(cmd, "By category", dash.CategoryDistribution)
			printDistribution(cmd, "By gender", dash.GenderDistribution)
			printDistribution(cmd, "By status", dash.ApplicationStatus)
			return nil
		},
	}
}

func printDistribution(cmd *cobra.Command, title string, rows []models.NameCount) {
	if len(rows) == 0 {
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s\n", title)
	for _, row := range rows {
		fmt.Fprintf(cmd.OutOrStdout(), "  %-24s %d\n", row.Name, row.Value)
	}
	fmt.Fprintln(cmd.OutOrStdout())
}

func newAdminExportCmd(app func() *App) *cobra.Command {
	return &cobra.Command{
		Use:   "export <applications|applicants>",
		Short: "Download a CSV export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := app()
			if err := requireLogin(a); err != nil {
				return err
			}
			exporter := dashboard.NewExportService(a.Client, a.Config.Export.OutputDir, a.Logger)
			path, err := exporter.SaveCSV(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("%s", errors.UserMessage(err))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", path)
			return nil
		},
	}
}

func newAdminEmailCmd(app func() *App) *cobra.Command {
	var (
		subject    string
		body       string
		group      string
		target     string
		recipients []string
	)

	cmd := &cobra.Command{
		Use:   "email",
		Short: "Send a broadcast email",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := app()
			if err := requireLogin(a); err != nil {
				return err
			}
			svc := dashboard.NewEmailService(a.Client, a.Logger)
			result, err := svc.Send(cmd.Context(), models.EmailRequest{
				Subject:          subject,
				Body:             body,
				TargetGroup:      group,
				TargetID:         target,
				CustomRecipients: recipients,
			})
			if err != nil {
				return fmt.Errorf("%s", errors.UserMessage(err))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Queued for %d recipient(s)\n", result.Count)
			return nil
		},
	}
	cmd.Flags().StringVar(&subject, "subject", "", "email subject")
	cmd.Flags().StringVar(&body, "body", "", "email body")
	cmd.Flags().StringVar(&group, "group", dashboard.TargetAll, "target group: all|department|branch|scholarship|custom")
	cmd.Flags().StringVar(&target, "target", "", "department/branch name or scholarship id")
	cmd.Flags().StringSliceVar(&recipients, "to", nil, "explicit recipients for the custom group")
	return cmd
}

func newAdminUsersCmd(app func() *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage user accounts",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List users",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := app()
			if err := requireLogin(a); err != nil {
				return err
			}
			users, err := a.Client.AdminUsers(cmd.Context())
			if err != nil {
				return fmt.Errorf("%s", errors.UserMessage(err))
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tEMAIL\tROLE\tACTIVE")
			for _, u := range users {
				active := ""
				if u.IsActive {
					active = "yes"
				}
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", u.ID, u.FullName, u.Email, u.Role, active)
			}
			return w.Flush()
		},
	}

	role := &cobra.Command{
		Use:   "role <user-id> <student|g_office|dept_head|super_admin>",
		Short: "Change a user's role",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := app()
			if err := requireLogin(a); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			u, err := a.Client.UpdateUserRole(cmd.Context(), id, models.UserRole(args[1]))
			if err != nil {
				return fmt.Errorf("%s", errors.UserMessage(err))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is now %s\n", u.Email, u.Role)
			return nil
		},
	}

	del := &cobra.Command{
		Use:   "delete <user-id>",
		Short: "Delete a user account",
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
			if err := a.Client.DeleteUser(cmd.Context(), id); err != nil {
				return fmt.Errorf("%s", errors.UserMessage(err))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "User %d deleted\n", id)
			return nil
		},
	}

	cmd.AddCommand(list, role, del)
	return cmd
}

func newAdminMasterCmd(app func() *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "master",
		Short: "Manage departments and session years",
	}

	masterService := func(a *App) *dashboard.MasterDataService {
		return dashboard.NewMasterDataService(a.Client, a.Logger)
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Show departments and sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := app()
			if err := requireLogin(a); err != nil {
				return err
			}
			svc := masterService(a)
			if err := svc.Refresh(cmd.Context()); err != nil {
				return fmt.Errorf("%s", errors.UserMessage(err))
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Departments:")
			for _, d := range svc.Departments() {
				fmt.Fprintf(out, "  %d  %s (%s)\n", d.ID, d.Name, d.Code)
			}
			fmt.Fprintln(out, "Branches:")
			for _, b := range svc.Branches() {
				fmt.Fprintf(out, "  %d  %s (department %d)\n", b.ID, b.Name, b.DepartmentID)
			}
			fmt.Fprintln(out, "Sessions:")
			for _, s := range svc.Sessions() {
				active := ""
				if s.IsActive {
					active = " [active]"
				}
				fmt.Fprintf(out, "  %d  %s%s\n", s.ID, s.Name, active)
			}
			return nil
		},
	}

	var deptCode string
	deptAdd := &cobra.Command{
		Use:   "dept-add <name>",
		Short: "Create a department",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := app()
			if err := requireLogin(a); err != nil {
				return err
			}
			svc := masterService(a)
			if err := svc.SaveDepartment(cmd.Context(), models.Department{Name: args[0], Code: deptCode}); err != nil {
				return fmt.Errorf("%s", errors.UserMessage(err))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Department %q created\n", args[0])
			return nil
		},
	}
	deptAdd.Flags().StringVar(&deptCode, "code", "", "department code")

	deptRm := &cobra.Command{
		Use:   "dept-rm <id>",
		Short: "Delete a department",
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
			if err := masterService(a).DeleteDepartment(cmd.Context(), id); err != nil {
				return fmt.Errorf("%s", errors.UserMessage(err))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Department %d deleted\n", id)
			return nil
		},
	}

	var branchDept int
	branchAdd := &cobra.Command{
		Use:   "branch-add <name>",
		Short: "Create a branch under a department",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := app()
			if err := requireLogin(a); err != nil {
				return err
			}
			svc := masterService(a)
			if err := svc.SaveBranch(cmd.Context(), models.Branch{DepartmentID: branchDept, Name: args[0]}); err != nil {
				return fmt.Errorf("%s", errors.UserMessage(err))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Branch %q created\n", args[0])
			return nil
		},
	}
	branchAdd.Flags().IntVar(&branchDept, "dept", 0, "parent department id")

	branchRm := &cobra.Command{
		Use:   "branch-rm <id>",
		Short: "Delete a branch",
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
			if err := masterService(a).DeleteBranch(cmd.Context(), id); err != nil {
				return fmt.Errorf("%s", errors.UserMessage(err))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Branch %d deleted\n", id)
			return nil
		},
	}

	var sessionActive bool
	sessionAdd := &cobra.Command{
		Use:   "session-add <name>",
		Short: "Create a session year (e.g. 2026-27)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := app()
			if err := requireLogin(a); err != nil {
				return err
			}
			svc := masterService(a)
			if err := svc.SaveSession(cmd.Context(), models.SessionYear{Name: args[0], IsActive: sessionActive}); err != nil {
				return fmt.Errorf("%s", errors.UserMessage(err))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Session %q created\n", args[0])
			return nil
		},
	}
	sessionAdd.Flags().BoolVar(&sessionActive, "active", false, "mark as the active session")

	sessionRm := &cobra.Command{
		Use:   "session-rm <id>",
		Short: "Delete a session year",
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
			if err := masterService(a).DeleteSession(cmd.Context(), id); err != nil {
				return fmt.Errorf("%s", errors.UserMessage(err))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Session %d deleted\n", id)
			return nil
		},
	}

	cmd.AddCommand(show, deptAdd, deptRm, branchAdd, branchRm, sessionAdd, sessionRm)
	return cmd
}

func newAdminLogsCmd(app func() *App) *cobra.Command {
	var limit int
	var server bool

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Show audit or server logs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := app()
			if err := requireLogin(a); err != nil {
				return err
			}
			if server {
				lines, err := a.Client.ServerLogs(cmd.Context(), limit)
				if err != nil {
					return fmt.Errorf("%s", errors.UserMessage(err))
				}
				fmt.Fprintln(cmd.OutOrStdout(), strings.Join(lines, "\n"))
				return nil
			}
			logs, err := a.Client.AuditLogs(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("%s", errors.UserMessage(err))
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "TIME\tUSER\tACTION\tTARGET\tDETAILS")
			for _, l := range logs {
				target := l.TargetType
				if l.TargetID != "" {
					target = fmt.Sprintf("%s/%s", l.TargetType, l.TargetID)
				}
				fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\n", l.CreatedAt, l.UserID, l.Action, target, l.Details)
			}
			return w.Flush()
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 100, "number of entries")
	cmd.Flags().BoolVar(&server, "server", false, "show raw server logs instead of the audit trail")
	return cmd
}
