package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"focusdesk/internal/bootstrap"
	"focusdesk/internal/platform/config"
	"focusdesk/internal/platform/logging"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = color.New(color.FgRed).Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

type globalOptions struct {
	dataDir    string
	configPath string
	logLevel   string
	envFile    string
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:           "focusdesk",
		Short:         "Focus timer desktop shell: documents, backups, tray and window control",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.dataDir, "data-dir", "", "application data directory (default: per-user data dir)")
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default: $XDG_CONFIG_HOME/focusdesk/config.yaml)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level: trace|debug|info|warn|error")
	root.PersistentFlags().StringVar(&opts.envFile, "env-file", "", "dotenv file to load (default: .env when present)")

	root.AddCommand(newDocCmd(opts))
	root.AddCommand(newExportCmd(opts))
	root.AddCommand(newImportCmd(opts))
	root.AddCommand(newBackupCmd(opts))
	root.AddCommand(newResetCmd(opts))
	root.AddCommand(newDataDirCmd(opts))
	root.AddCommand(newNotifyCmd(opts))
	root.AddCommand(newTrayCmd(opts))
	root.AddCommand(newWindowCmd(opts))
	root.AddCommand(newEventsCmd(opts))
	root.AddCommand(newServeCmd(opts))
	root.AddCommand(newTUICmd(opts))
	root.AddCommand(newMCPCmd(opts))
	addVersion(root)
	return root
}

func loadConfig(opts *globalOptions) (config.Config, error) {
	return config.Load(config.Options{
		DataDir:    opts.dataDir,
		ConfigPath: opts.configPath,
		LogLevel:   opts.logLevel,
		EnvFile:    opts.envFile,
	})
}

func loadApp(opts *globalOptions) (*bootstrap.App, error) {
	cfg, err := loadConfig(opts)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg, logging.New(cfg.LogLevel, os.Stderr), bootstrap.Options{})
}

// withApp opens the application for a single command and releases it after.
func withApp(opts *globalOptions, run func(ctx context.Context, app *bootstrap.App) error) error {
	app, err := loadApp(opts)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := app.Close(); cerr != nil {
			app.Log.Warn("close", "error", cerr)
		}
	}()
	return run(context.Background(), app)
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func newServeCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the desktop shell: bridge socket, tray and document watcher",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(opts)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			ctx, stop := signalContext()
			defer stop()
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "serving on %s\n", app.Config.SocketPath)
			return bootstrap.RunBridge(ctx, app)
		},
	}
}

func newTUICmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the terminal UI as the main window",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
				return err
			}
			logFile, err := os.OpenFile(filepath.Join(cfg.DataDir, "focusdesk.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
			if err != nil {
				return err
			}
			defer func() { _ = logFile.Close() }()

			app, err := bootstrap.New(cfg, logging.New(cfg.LogLevel, logFile), bootstrap.Options{})
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			ctx, stop := signalContext()
			defer stop()
			return bootstrap.RunTUI(ctx, app)
		},
	}
}

func newMCPCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve documents and backups to MCP clients over stdio",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			// stdout carries the protocol
			log := logging.New(cfg.LogLevel, os.Stderr).Named("mcp")
			app, err := bootstrap.New(cfg, log, bootstrap.Options{})
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			ctx, stop := signalContext()
			defer stop()
			return bootstrap.RunMCP(ctx, app, version)
		},
	}
}

func newDataDirCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "datadir",
		Short: "Print the application data directory",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(opts, func(ctx context.Context, app *bootstrap.App) error {
				dir, err := app.Commands.GetAppDataDir(ctx)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), dir)
				return nil
			})
		},
	}
}

func newResetCmd(opts *globalOptions) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete every stored document",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !yes {
				return fmt.Errorf("reset removes profiles, activities, settings and todos; pass --yes to confirm")
			}
			return withApp(opts, func(ctx context.Context, app *bootstrap.App) error {
				if err := app.Commands.ResetAllData(ctx); err != nil {
					return err
				}
				success(cmd, "all data reset")
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm deletion")
	return cmd
}

func newNotifyCmd(opts *globalOptions) *cobra.Command {
	var permission bool
	cmd := &cobra.Command{
		Use:   "notify <title> [body]",
		Short: "Show a desktop notification",
		Args:  cobra.RangeArgs(0, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(opts, func(ctx context.Context, app *bootstrap.App) error {
				if permission {
					granted, err := app.Commands.RequestNotificationPermission(ctx)
					if err != nil {
						return err
					}
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "permission granted: %t\n", granted)
					return nil
				}
				if len(args) == 0 {
					return fmt.Errorf("notification title is required")
				}
				body := ""
				if len(args) == 2 {
					body = args[1]
				}
				return app.Commands.ShowNotification(ctx, args[0], body)
			})
		},
	}
	cmd.Flags().BoolVar(&permission, "request-permission", false, "only ask whether notifications are allowed")
	return cmd
}
