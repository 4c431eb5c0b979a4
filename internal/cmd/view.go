package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/kevindowling/logcat-viewer/internal/filter"
	"github.com/kevindowling/logcat-viewer/internal/logcat"
	"github.com/kevindowling/logcat-viewer/internal/logtail"
)

var (
	viewSort    string
	viewDesc    bool
	viewMinPrio string
	viewTag     string
	viewPid     int
	viewMessage string
	viewFilter  string
	viewTail    int
)

var viewCmd = &cobra.Command{
	Use:   "view [files...]",
	Short: "Parse, filter, and sort captured logcat files",
	Long: `View parses one or more captured logcat files (or glob patterns),
applies the requested filters and sort order, and prints the result.
Lines that match no known logcat format pass through verbatim.

Examples:
  logcat-viewer view bugreport.log
  logcat-viewer view --min-priority W --tag ActivityManager logs/*.log
  logcat-viewer view --sort tag --filter "timeout,-chatty" "logs/**/*.log"
  logcat-viewer view --tail 500 /tmp/device.log`,
	Args: cobra.MinimumNArgs(1),
	RunE: runView,
}

func init() {
	rootCmd.AddCommand(viewCmd)

	viewCmd.Flags().StringVar(&viewSort, "sort", "", "sort by: time, priority, tag (default: input order)")
	viewCmd.Flags().BoolVar(&viewDesc, "desc", false, "sort descending")
	viewCmd.Flags().StringVarP(&viewMinPrio, "min-priority", "p", "", "minimum priority: V, D, I, W, E, F, S or a name like warning")
	viewCmd.Flags().StringVarP(&viewTag, "tag", "t", "", "tag regex (case-insensitive)")
	viewCmd.Flags().IntVar(&viewPid, "pid", -1, "only entries from this process id")
	viewCmd.Flags().StringVarP(&viewMessage, "message", "m", "", "message regex (case-insensitive)")
	viewCmd.Flags().StringVarP(&viewFilter, "filter", "f", "", "comma-separated message terms; prefix - excludes, /re/ matches a regex")
	viewCmd.Flags().IntVar(&viewTail, "tail", 0, "read only the last N lines of each file")
}

func runView(cmd *cobra.Command, args []string) error {
	paths, err := expandPatterns(args)
	if err != nil {
		return err
	}

	var entries []logcat.Record
	for _, path := range paths {
		recs, err := readEntries(path, viewTail)
		if err != nil {
			return err
		}
		entries = append(entries, recs...)
	}

	entries, err = applyViewFilters(entries)
	if err != nil {
		return err
	}

	switch viewSort {
	case "":
	case "time":
		entries = logcat.SortByTime(entries, !viewDesc)
	case "priority":
		entries = logcat.SortByPriority(entries, !viewDesc)
	case "tag":
		entries = logcat.SortByTag(entries, !viewDesc)
	default:
		return fmt.Errorf("unknown sort key %q (want time, priority, or tag)", viewSort)
	}

	out := cmd.OutOrStdout()
	for _, rec := range entries {
		fmt.Fprintln(out, logcat.FormatRecord(rec))
	}
	return nil
}

// expandPatterns resolves file arguments, treating each as a doublestar glob.
// Supports recursive patterns like logs/**/*.log.
func expandPatterns(args []string) ([]string, error) {
	var paths []string
	for _, pattern := range args {
		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly(), doublestar.WithFailOnIOErrors())
		if err != nil {
			return nil, fmt.Errorf("expand %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no files match %q", pattern)
		}
		paths = append(paths, matches...)
	}
	return paths, nil
}

// readEntries parses one capture file, optionally keeping only its tail.
func readEntries(path string, tail int) ([]logcat.Record, error) {
	if tail > 0 {
		lines, _, err := logtail.Read(path, tail)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		return logcat.ParseLogcat(strings.Join(lines, "\n")), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return logcat.ParseLogcat(string(data)), nil
}

func applyViewFilters(entries []logcat.Record) ([]logcat.Record, error) {
	if viewMinPrio != "" {
		min := logcat.ParsePriorityName(viewMinPrio)
		if !min.Known() {
			return nil, fmt.Errorf("unknown priority %q", viewMinPrio)
		}
		entries = logcat.FilterByPriority(entries, min)
	}
	if viewTag != "" {
		entries = logcat.FilterByTag(entries, viewTag)
	}
	if viewPid >= 0 {
		entries = logcat.FilterByPid(entries, viewPid)
	}
	if viewMessage != "" {
		entries = logcat.FilterByMessage(entries, viewMessage)
	}
	if terms := filter.Compile(viewFilter); len(terms) > 0 {
		kept := entries[:0:0]
		for _, rec := range entries {
			if filter.Matches(rec.Message, terms) {
				kept = append(kept, rec)
			}
		}
		entries = kept
	}
	return entries, nil
}
