// internal/cli/vault.go
package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"scholar-portal/internal/common/errors"
	"scholar-portal/internal/upload"
)

func newVaultCmd(app func() *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vault",
		Short: "Manage your document vault",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List uploaded documents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := app()
			if err := requireLogin(a); err != nil {
				return err
			}
			docs, err := a.Client.MyDocuments(cmd.Context())
			if err != nil {
				return fmt.Errorf("%s", errors.UserMessage(err))
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTYPE\tVERIFIED\tUPLOADED\tREMARKS")
			for _, d := range docs {
				verified := ""
				if d.IsVerified {
					verified = "yes"
				}
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", d.ID, d.DocumentType, verified, d.UploadedAt, d.Remarks)
			}
			return w.Flush()
		},
	}

	var formatID int
	var docType string
	uploadCmd := &cobra.Command{
		Use:   "upload <file>",
		Short: "Upload a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := app()
			if err := requireLogin(a); err != nil {
				return err
			}

			path := args[0]
			file, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("cannot open %s: %w", path, err)
			}
			defer file.Close()

			uploader := upload.NewUploader(a.Client, upload.NewValidator(a.Config.Upload.AllowedTypes), a.Logger)
			if err := uploader.Select(filepath.Base(path), file); err != nil {
				return fmt.Errorf("%s", errors.UserMessage(err))
			}
			doc, err := uploader.Submit(cmd.Context(), formatID, docType, nil)
			if err != nil {
				return fmt.Errorf("%s", errors.UserMessage(err))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Uploaded as document %d\n", doc.ID)
			return nil
		},
	}
	uploadCmd.Flags().IntVar(&formatID, "format", 0, "document format id (see `vault types`)")
	uploadCmd.Flags().StringVar(&docType, "type", "", "document type label")

	types := &cobra.Command{
		Use:   "types",
		Short: "List the document type catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := app()
			if err := requireLogin(a); err != nil {
				return err
			}
			formats, err := a.Client.DocumentTypes(cmd.Context())
			if err != nil {
				return fmt.Errorf("%s", errors.UserMessage(err))
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tDESCRIPTION")
			for _, f := range formats {
				fmt.Fprintf(w, "%d\t%s\t%s\n", f.ID, f.Name, f.Description)
			}
			return w.Flush()
		},
	}

	cmd.AddCommand(list, uploadCmd, types)
	return cmd
}
