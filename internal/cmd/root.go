package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	adbPath string
	format  string
)

// rootCmd is the base command when called without subcommands.
var rootCmd = &cobra.Command{
	Use:   "logcat-viewer",
	Short: "logcat-viewer — browse and stream Android logcat output",
	Long: `logcat-viewer parses Android logcat output in its common formats and
lets you sort, filter, and search it. The view command works on captured
log files; the watch command streams a live capture from adb (or a growing
file) into an interactive terminal UI.`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default: ~/.config/logcat-viewer/config.toml)")
	rootCmd.PersistentFlags().StringVar(&adbPath, "adb", "", "adb executable (default: adb from PATH)")
	rootCmd.PersistentFlags().StringVarP(&format, "format", "v", "", "logcat -v format for capture: threadtime, brief, time, tag, long, raw")

	_ = viper.BindPFlag("adb_path", rootCmd.PersistentFlags().Lookup("adb"))
	_ = viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))
}

func initConfig() {
	viper.SetEnvPrefix("LOGCAT_VIEWER")
	viper.AutomaticEnv()
}

// resolvedADB returns the adb path from the flag or LOGCAT_VIEWER_ADB_PATH.
func resolvedADB() string {
	return viper.GetString("adb_path")
}

// resolvedFormat returns the capture format from the flag or environment.
func resolvedFormat() string {
	return viper.GetString("format")
}
