package cmd

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/kevindowling/logcat-viewer/internal/logcat"
)

const sampleLog = `01-15 10:23:45.123  1234  5678 I ActivityManager: Start proc
01-15 10:23:46.001  1234  5678 W ActivityManager: Slow operation
01-15 10:23:47.500  4242  4242 E AndroidRuntime: FATAL EXCEPTION
beginning of main
`

func writeSample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "device.log")
	if err := os.WriteFile(path, []byte(sampleLog), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestExpandPatterns(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.log", "b.log", "c.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}

	paths, err := expandPatterns([]string{filepath.Join(dir, "*.log")})
	if err != nil {
		t.Fatalf("expandPatterns: %v", err)
	}
	want := []string{filepath.Join(dir, "a.log"), filepath.Join(dir, "b.log")}
	if !reflect.DeepEqual(paths, want) {
		t.Errorf("paths = %v, want %v", paths, want)
	}

	if _, err := expandPatterns([]string{filepath.Join(dir, "*.missing")}); err == nil {
		t.Error("expected an error for a pattern matching nothing")
	}
}

func TestReadEntries(t *testing.T) {
	path := writeSample(t)

	entries, err := readEntries(path, 0)
	if err != nil {
		t.Fatalf("readEntries: %v", err)
	}
	if len(entries) != 4 {
		t.Fatalf("len(entries) = %d, want 4", len(entries))
	}
	if entries[3].Parsed() {
		t.Error("the banner line should pass through unparsed")
	}
}

func TestReadEntries_Tail(t *testing.T) {
	path := writeSample(t)

	entries, err := readEntries(path, 2)
	if err != nil {
		t.Fatalf("readEntries: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("len(entries) = %d, want 2", len(entries))
	}
	if entries[0].Tag != "AndroidRuntime" {
		t.Errorf("first tail entry tag = %q, want AndroidRuntime", entries[0].Tag)
	}
}

func TestApplyViewFilters(t *testing.T) {
	path := writeSample(t)
	entries, err := readEntries(path, 0)
	if err != nil {
		t.Fatal(err)
	}

	viewMinPrio = "W"
	viewTag = ""
	viewPid = -1
	viewMessage = ""
	viewFilter = "-slow"
	t.Cleanup(func() {
		viewMinPrio, viewFilter = "", ""
	})

	got, err := applyViewFilters(entries)
	if err != nil {
		t.Fatalf("applyViewFilters: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if got[0].Priority != logcat.PriorityError {
		t.Errorf("kept entry priority = %v, want error", got[0].Priority)
	}

	viewMinPrio = "bogus"
	if _, err := applyViewFilters(entries); err == nil {
		t.Error("expected an error for an unknown priority name")
	}
}
