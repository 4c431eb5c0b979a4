package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/kevindowling/logcat-viewer/internal/adb"
)

var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "List attached devices and emulators",
	RunE:  runDevices,
}

func init() {
	rootCmd.AddCommand(devicesCmd)
}

func runDevices(cmd *cobra.Command, _ []string) error {
	client := adb.NewClient(resolvedADB())
	devices, err := client.Devices(cmd.Context())
	if err != nil {
		return err
	}
	if len(devices) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no devices attached")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SERIAL\tSTATE\tMODEL")
	for _, d := range devices {
		fmt.Fprintf(w, "%s\t%s\t%s\n", d.Serial, d.State, d.Model)
	}
	return w.Flush()
}
