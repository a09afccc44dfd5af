package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"focusdesk/internal/bootstrap"
)

func newDocCmd(opts *globalOptions) *cobra.Command {
	doc := &cobra.Command{Use: "doc", Short: "Read and write stored documents"}

	doc.AddCommand(&cobra.Command{
		Use:   "read <profiles|activities|settings|todos>",
		Short: "Print a document, seeding its default on first read",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(opts, func(ctx context.Context, app *bootstrap.App) error {
				content, err := app.DocumentCLI.Read(ctx, args[0])
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), content)
				return nil
			})
		},
	})

	doc.AddCommand(&cobra.Command{
		Use:   "write <name> [file|-]",
		Short: "Replace a document with the contents of a file or stdin",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				data []byte
				err  error
			)
			if len(args) == 2 && args[1] != "-" {
				data, err = os.ReadFile(args[1])
			} else {
				data, err = io.ReadAll(cmd.InOrStdin())
			}
			if err != nil {
				return err
			}
			return withApp(opts, func(ctx context.Context, app *bootstrap.App) error {
				if err := app.DocumentCLI.Write(ctx, args[0], strings.TrimRight(string(data), "\n")); err != nil {
					return err
				}
				success(cmd, "wrote "+args[0])
				return nil
			})
		},
	})

	doc.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show which documents exist on disk",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(opts, func(ctx context.Context, app *bootstrap.App) error {
				docs, err := app.DocumentCLI.Status(ctx)
				if err != nil {
					return err
				}
				printDocuments(cmd.OutOrStdout(), docs)
				return nil
			})
		},
	})

	doc.AddCommand(&cobra.Command{
		Use:   "watch",
		Short: "Stream document changes until interrupted",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(opts)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			ctx, stop := signalContext()
			defer stop()
			changes, err := app.DocumentCLI.Watch(ctx)
			if err != nil {
				return err
			}
			for change := range changes {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", change.Op, change.Name)
			}
			return nil
		},
	})
	return doc
}

func newExportCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "export <type> <path>",
		Short: "Copy a stored document to a path",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(opts, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.TransferCLI.Export(ctx, args[0], args[1])
				if err != nil {
					return err
				}
				success(cmd, fmt.Sprintf("exported %s to %s (%d bytes)", out.Type, out.Path, out.Bytes))
				return nil
			})
		},
	}
}

func newImportCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "import <type> <path>",
		Short: "Replace a stored document with a JSON file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(opts, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.TransferCLI.Import(ctx, args[0], args[1])
				if err != nil {
					return err
				}
				success(cmd, fmt.Sprintf("imported %s from %s (%d bytes)", out.Type, out.Path, out.Bytes))
				return nil
			})
		},
	}
}

func newBackupCmd(opts *globalOptions) *cobra.Command {
	backup := &cobra.Command{Use: "backup", Short: "Snapshot documents into timestamped folders"}

	backup.AddCommand(&cobra.Command{
		Use:   "create <name>",
		Short: "Copy existing documents into <backups>/<name>_<timestamp>",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(opts, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.BackupCLI.Create(ctx, args[0])
				if err != nil {
					return err
				}
				success(cmd, fmt.Sprintf("backup %s: %s", out.Folder, strings.Join(out.Documents, ", ")))
				return nil
			})
		},
	})

	backup.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List recorded backups, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(opts, func(ctx context.Context, app *bootstrap.App) error {
				backups, err := app.BackupCLI.List(ctx)
				if err != nil {
					return err
				}
				printBackups(cmd.OutOrStdout(), backups)
				return nil
			})
		},
	})

	backup.AddCommand(&cobra.Command{
		Use:   "reindex",
		Short: "Rebuild the backup catalog from the backup folders",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(opts, func(ctx context.Context, app *bootstrap.App) error {
				count, err := app.BackupCLI.Reindex(ctx)
				if err != nil {
					return err
				}
				success(cmd, fmt.Sprintf("reindexed %d backups", count))
				return nil
			})
		},
	})
	return backup
}
