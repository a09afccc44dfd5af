package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"focusdesk/internal/bridge"
)

func dialBridge(opts *globalOptions) (*bridge.Client, error) {
	cfg, err := loadConfig(opts)
	if err != nil {
		return nil, err
	}
	return bridge.NewClient(cfg.SocketPath), nil
}

func newTrayCmd(opts *globalOptions) *cobra.Command {
	tray := &cobra.Command{
		Use:   "tray <show|start_focus|start_break|quit|click|close>",
		Short: "Send a tray event to the running shell",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := dialBridge(opts)
			if err != nil {
				return err
			}
			out, err := client.DispatchTray(context.Background(), args[0])
			if err != nil {
				return err
			}
			printOutcome(cmd.OutOrStdout(), args[0], out)
			return nil
		},
	}

	tray.AddCommand(&cobra.Command{
		Use:   "menu",
		Short: "Show the tray menu of the running shell",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := dialBridge(opts)
			if err != nil {
				return err
			}
			items, err := client.TrayMenu(context.Background())
			if err != nil {
				return err
			}
			printMenu(cmd.OutOrStdout(), items)
			return nil
		},
	})
	return tray
}

func newWindowCmd(opts *globalOptions) *cobra.Command {
	window := &cobra.Command{Use: "window", Short: "Control the main window of the running shell"}

	window.AddCommand(&cobra.Command{
		Use:       "ontop <on|off>",
		Short:     "Pin or unpin the main window above other windows",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"on", "off"},
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := dialBridge(opts)
			if err != nil {
				return err
			}
			if err := client.SetAlwaysOnTop(context.Background(), args[0] == "on"); err != nil {
				return err
			}
			success(cmd, "always on top "+args[0])
			return nil
		},
	})

	window.AddCommand(&cobra.Command{
		Use:   "minimize",
		Short: "Hide the main window to the tray",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := dialBridge(opts)
			if err != nil {
				return err
			}
			if err := client.MinimizeToTray(context.Background()); err != nil {
				return err
			}
			success(cmd, "minimized to tray")
			return nil
		},
	})
	return window
}

func newEventsCmd(opts *globalOptions) *cobra.Command {
	var wait time.Duration
	var follow bool
	cmd := &cobra.Command{
		Use:   "events",
		Short: "Print events the running shell emitted to the UI",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := dialBridge(opts)
			if err != nil {
				return err
			}
			ctx, stop := signalContext()
			defer stop()
			seen := map[string]struct{}{}
			for {
				evts, err := client.DrainEvents(ctx, wait)
				if err != nil {
					if ctx.Err() != nil {
						return nil
					}
					return err
				}
				for _, evt := range evts {
					if _, dup := seen[evt.ID]; dup {
						continue
					}
					seen[evt.ID] = struct{}{}
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", evt.At.Format(time.RFC3339), evt.Name, string(evt.Payload))
				}
				if !follow {
					return client.AckEvents(ctx)
				}
			}
		},
	}
	cmd.Flags().DurationVar(&wait, "wait", 0, "block up to this long for the first event")
	cmd.Flags().BoolVarP(&follow, "follow", "f", false, "keep polling until interrupted")
	return cmd
}
