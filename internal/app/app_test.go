package app

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/kevindowling/logcat-viewer/internal/adb"
)

type fakeLister struct {
	devices []adb.Device
	err     error
}

func (f fakeLister) Devices(context.Context) ([]adb.Device, error) {
	return f.devices, f.err
}

func TestResolveDevice(t *testing.T) {
	tests := []struct {
		name    string
		lister  fakeLister
		serial  string
		want    string
		wantErr bool
	}{
		{
			name:   "explicit serial wins without listing",
			lister: fakeLister{err: errors.New("adb missing")},
			serial: "emulator-5554",
			want:   "emulator-5554",
		},
		{
			name: "single online device selected",
			lister: fakeLister{devices: []adb.Device{
				{Serial: "R58M123", State: "device"},
			}},
			want: "R58M123",
		},
		{
			name: "offline devices ignored",
			lister: fakeLister{devices: []adb.Device{
				{Serial: "dead", State: "offline"},
				{Serial: "R58M123", State: "device"},
			}},
			want: "R58M123",
		},
		{
			name:   "no devices defers to adb",
			lister: fakeLister{},
			want:   "",
		},
		{
			name:   "listing failure defers to adb",
			lister: fakeLister{err: errors.New("adb missing")},
			want:   "",
		},
		{
			name: "multiple online devices is an error",
			lister: fakeLister{devices: []adb.Device{
				{Serial: "emulator-5554", State: "device"},
				{Serial: "R58M123", State: "device"},
			}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveDevice(context.Background(), tt.lister, tt.serial)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				if !strings.Contains(err.Error(), "emulator-5554") {
					t.Errorf("error should name candidate serials, got %q", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("resolveDevice: %v", err)
			}
			if got != tt.want {
				t.Errorf("resolveDevice = %q, want %q", got, tt.want)
			}
		})
	}
}
