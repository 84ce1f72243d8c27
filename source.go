package main

import (
	"context"

	"go.uber.org/zap"

	"github.com/GcZuRi1886/barstatus/types"
)

// StatusSource is everything the subcommands read from the outside world.
type StatusSource interface {
	ActiveWorkspaceID(ctx context.Context) (int, error)
	ActiveWindowClass(ctx context.Context) (class string, ok bool, err error)
	WorkspaceSnapshots(ctx context.Context) ([]types.WorkspaceSnapshot, error)
	BatteryPercent(ctx context.Context) (int, error)
	MeminfoText(ctx context.Context) (string, error)
	// Subscribe opens a blocking stream of the listed event kinds.
	Subscribe(ctx context.Context, kinds ...types.EventKind) (EventStream, error)
}

// EventStream yields events in arrival order. Next blocks until an event
// arrives or the stream fails.
type EventStream interface {
	Next() (types.Event, error)
	Close() error
}

// LiveSource combines the Hyprland IPC client with the kernel sensor files.
type LiveSource struct {
	*HyprlandProvider
	*Sensors
}

// NewLiveSource wires a StatusSource from cfg.
func NewLiveSource(cfg Config, logger *zap.Logger) *LiveSource {
	return &LiveSource{
		HyprlandProvider: NewHyprlandProvider(cfg.socketDir(), logger),
		Sensors:          NewSensors(cfg.BatteryPath, cfg.MeminfoPath, logger),
	}
}
