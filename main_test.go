package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/GcZuRi1886/barstatus/types"
)

func newTestApp(src StatusSource) (*app, *bytes.Buffer, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	var out bytes.Buffer
	return &app{
		source:     src,
		compositor: CompositorHyprland,
		out:        &out,
		logger:     zap.New(core),
	}, &out, logs
}

func TestDispatchIgnoresUnknownTokens(t *testing.T) {
	for _, args := range [][]string{nil, {}, {"foo"}, {"help"}, {"completion"}, {"--help"}, {"-h"}, {"Work"}} {
		src := &fakeSource{battery: 90, workspaceID: 1}
		a, out, _ := newTestApp(src)

		if err := dispatch(context.Background(), a, args); err != nil {
			t.Errorf("dispatch(%q) error: %v", args, err)
		}
		if out.Len() != 0 {
			t.Errorf("dispatch(%q) printed %q, want nothing", args, out.String())
		}
		if src.subscribed != nil {
			t.Errorf("dispatch(%q) subscribed to %v", args, src.subscribed)
		}
	}
}

func TestDispatchBattery(t *testing.T) {
	tests := []struct {
		name    string
		battery int
		err     error
		want    string
	}{
		{"good", 80, nil, "good\n"},
		{"low", 3, nil, "low\n"},
		{"out of range", 150, nil, ""},
		{"unreadable", 0, errors.New("no such file"), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, out, logs := newTestApp(&fakeSource{battery: tt.battery, batteryErr: tt.err})
			if err := dispatch(context.Background(), a, []string{"bat", "ignored", "--flag"}); err != nil {
				t.Fatalf("dispatch() error: %v", err)
			}
			if got := out.String(); got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
			if tt.err != nil && logs.FilterMessage("Skipping status update").Len() != 1 {
				t.Error("expected a skip log entry")
			}
		})
	}
}

func TestDispatchMemory(t *testing.T) {
	a, out, _ := newTestApp(&fakeSource{meminfo: "MemTotal:   2048 kB\nMemAvailable:   1024 kB\n"})
	if err := dispatch(context.Background(), a, []string{"mem"}); err != nil {
		t.Fatalf("dispatch() error: %v", err)
	}
	if got := out.String(); got != "1\n" {
		t.Errorf("output = %q, want %q", got, "1\n")
	}

	a, out, _ = newTestApp(&fakeSource{meminfo: "MemTotal: kB\n"})
	_ = dispatch(context.Background(), a, []string{"mem"})
	if out.Len() != 0 {
		t.Errorf("output = %q, want nothing for unparsable meminfo", out.String())
	}

	a, out, _ = newTestApp(&fakeSource{meminfoErr: errors.New("denied")})
	_ = dispatch(context.Background(), a, []string{"mem"})
	if out.Len() != 0 {
		t.Errorf("output = %q, want nothing for unreadable meminfo", out.String())
	}
}

func TestDispatchWork(t *testing.T) {
	src := &fakeSource{
		workspaceID: 1,
		events:      []types.Event{ev("workspace>>3")},
		beforeEvent: func(src *fakeSource, _ types.Event) { src.workspaceID = 3 },
	}
	a, out, _ := newTestApp(src)

	err := dispatch(context.Background(), a, []string{"work"})
	if !errors.Is(err, io.EOF) {
		t.Fatalf("dispatch() error = %v, want EOF once the stream ends", err)
	}
	if got := out.String(); got != "1\n3\n" {
		t.Errorf("output = %q, want %q", got, "1\n3\n")
	}
}

func TestDispatchWindow(t *testing.T) {
	src := &fakeSource{events: []types.Event{ev("activewindow>>code,main.go")}}
	a, out, _ := newTestApp(src)

	_ = dispatch(context.Background(), a, []string{"window"})
	if got := out.String(); got != "code\n" {
		t.Errorf("output = %q, want %q", got, "code\n")
	}
}

func TestDispatchOpenWindows(t *testing.T) {
	src := &fakeSource{snapshots: []types.WorkspaceSnapshot{{ID: 2, Windows: 4}}}
	a, out, _ := newTestApp(src)

	_ = dispatch(context.Background(), a, []string{"open_windows"})

	want := `[{"id":1,"windows":0},{"id":2,"windows":4},{"id":3,"windows":0},{"id":4,"windows":0},` +
		`{"id":5,"windows":0},{"id":6,"windows":0},{"id":7,"windows":0},{"id":8,"windows":0},` +
		`{"id":9,"windows":0},{"id":10,"windows":0}]` + "\n"
	if got := out.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
	if len(src.subscribed) != 9 {
		t.Errorf("subscribed to %d kinds, want 9", len(src.subscribed))
	}
}

func TestDispatchCancelledListenerIsClean(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	a, _, _ := newTestApp(&fakeSource{})
	if err := dispatch(ctx, a, []string{"window"}); err != nil {
		t.Errorf("dispatch() error = %v, want nil after cancellation", err)
	}
}

func TestDispatchWithoutCompositor(t *testing.T) {
	src := &fakeSource{workspaceID: 1}
	a, out, _ := newTestApp(src)
	a.compositor = CompositorUnknown

	if err := dispatch(context.Background(), a, []string{"work"}); err == nil {
		t.Error("expected error without a compositor")
	}
	if out.Len() != 0 {
		t.Errorf("output = %q, want nothing", out.String())
	}
}

func TestDispatchSubscribeFailure(t *testing.T) {
	a, _, _ := newTestApp(&fakeSource{subscribeErr: errors.New("connection refused")})
	if err := dispatch(context.Background(), a, []string{"window"}); err == nil {
		t.Error("expected subscription failure to be reported")
	}
}
