package adb

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/kevindowling/logcat-viewer/internal/session"
)

// DeviceLister is the device-picker collaborator interface, implemented by
// *Client and by test fakes.
type DeviceLister interface {
	Devices(ctx context.Context) ([]Device, error)
}

// Ensure Client satisfies both collaborator interfaces at compile time.
var (
	_ DeviceLister   = (*Client)(nil)
	_ session.Source = (*Client)(nil)
)

// Formats lists the logcat -v tokens the viewer accepts. The parser
// auto-detects per line regardless of the requested mode, so the token only
// selects the capture argument.
var Formats = []string{"threadtime", "brief", "time", "tag", "long", "raw"}

const defaultFormat = "threadtime"

// ValidFormat reports whether token is an accepted logcat -v format.
func ValidFormat(token string) bool {
	for _, f := range Formats {
		if token == f {
			return true
		}
	}
	return false
}

// Client invokes a local adb binary.
type Client struct {
	path string
}

// NewClient builds a Client around the given adb executable path. An empty
// path resolves adb from PATH.
func NewClient(path string) *Client {
	if strings.TrimSpace(path) == "" {
		path = "adb"
	}
	return &Client{path: path}
}

// Device describes one entry from "adb devices -l".
type Device struct {
	Serial string
	State  string
	Model  string
}

// Devices lists attached devices and emulators.
func (c *Client) Devices(ctx context.Context) ([]Device, error) {
	out, err := exec.CommandContext(ctx, c.path, "devices", "-l").Output()
	if err != nil {
		return nil, fmt.Errorf("list devices: %w", err)
	}
	return parseDevices(string(out)), nil
}

// parseDevices reads "adb devices -l" output. Each device line is
// "SERIAL STATE key:value ...", preceded by a banner line.
func parseDevices(out string) []Device {
	var devices []Device
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "List of devices") || strings.HasPrefix(line, "*") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		dev := Device{Serial: fields[0], State: fields[1]}
		for _, field := range fields[2:] {
			if model, ok := strings.CutPrefix(field, "model:"); ok {
				dev.Model = model
			}
		}
		devices = append(devices, dev)
	}
	return devices
}

// CaptureArgs builds the adb argument list for a capture session: device
// selector, logcat -v format, then any tag:priority filterspecs. Unknown
// format tokens fall back to threadtime.
func CaptureArgs(opts session.CaptureOptions) []string {
	var args []string
	if opts.Device != "" {
		args = append(args, "-s", opts.Device)
	}
	format := opts.Format
	if !ValidFormat(format) {
		format = defaultFormat
	}
	args = append(args, "logcat", "-v", format)
	args = append(args, opts.Filters...)
	return args
}

// Start spawns adb logcat and streams its stdout as session events,
// implementing session.Source. The returned channel closes when the process
// ends or ctx is cancelled; cancellation kills the process.
func (c *Client) Start(ctx context.Context, opts session.CaptureOptions) (<-chan session.Event, error) {
	cmd := exec.CommandContext(ctx, c.path, CaptureArgs(opts)...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("pipe %s output: %w", c.path, err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start %s: %w", c.path, err)
	}

	events := make(chan session.Event, 16)
	go func() {
		defer close(events)

		scanner := bufio.NewScanner(stdout)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for scanner.Scan() {
			select {
			case events <- session.Chunk{Text: scanner.Text()}:
			case <-ctx.Done():
				_ = cmd.Wait()
				return
			}
		}

		err := cmd.Wait()
		if err == nil || ctx.Err() != nil {
			// Clean exit, or we were cancelled: a normal stop.
			return
		}
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		events <- session.Failed{Message: msg}
	}()
	return events, nil
}
