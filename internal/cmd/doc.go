// Package cmd defines the logcat-viewer command line.
//
// Three subcommands: view parses and prints captured log files, watch runs
// the interactive live viewer, and devices lists adb targets. Persistent
// flags for the config file, adb path, and capture format apply everywhere;
// the adb path and format can also come from LOGCAT_VIEWER_ADB_PATH and
// LOGCAT_VIEWER_FORMAT.
package cmd
