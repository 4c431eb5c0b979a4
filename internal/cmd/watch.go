package cmd

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/kevindowling/logcat-viewer/internal/app"
)

var (
	watchDevice  string
	watchFile    string
	watchBacklog int
)

var watchCmd = &cobra.Command{
	Use:   "watch [filterspecs...]",
	Short: "Stream a live capture into the interactive viewer",
	Long: `Watch streams logcat output into an interactive terminal UI with a
bounded scrollback buffer. By default it captures from adb; --file tails a
growing log file instead, picking up rotations and truncations.

Any positional arguments are passed to logcat as tag:priority filterspecs.

Examples:
  logcat-viewer watch
  logcat-viewer watch --device emulator-5554 ActivityManager:W *:S
  logcat-viewer watch --file /tmp/bugreport.log`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().StringVarP(&watchDevice, "device", "d", "", "device serial (default: the single attached device)")
	watchCmd.Flags().StringVar(&watchFile, "file", "", "tail this file instead of capturing from adb")
	watchCmd.Flags().IntVar(&watchBacklog, "backlog", 0, "lines of file history to load with --file")
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: cfgFile,
		Device:     watchDevice,
		Format:     resolvedFormat(),
		Filters:    args,
		File:       watchFile,
		Backlog:    watchBacklog,
		ADBPath:    resolvedADB(),
	}

	err := app.Run(ctx, opts)
	if err != nil && ctx.Err() != nil {
		// Interrupted mid-capture: a normal quit, not a failure.
		return nil
	}
	return err
}
