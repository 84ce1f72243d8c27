package main

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/GcZuRi1886/barstatus/types"
)

// HyprlandProvider answers window-manager queries over Hyprland's IPC sockets.
type HyprlandProvider struct {
	socketDir string
	logger    *zap.Logger
}

// NewHyprlandProvider creates a provider talking to the sockets in socketDir.
func NewHyprlandProvider(socketDir string, logger *zap.Logger) *HyprlandProvider {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HyprlandProvider{socketDir: socketDir, logger: logger}
}

func (h *HyprlandProvider) query(ctx context.Context, cmd string, v any) error {
	out, err := sendCommand(ctx, h.socketDir, "j/"+cmd)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(out, v); err != nil {
		return errors.Wrapf(err, "decode %s reply", cmd)
	}
	return nil
}

// ActiveWorkspaceID returns the id of the focused workspace.
func (h *HyprlandProvider) ActiveWorkspaceID(ctx context.Context) (int, error) {
	var ws types.HyprlandWorkspace
	if err := h.query(ctx, "activeworkspace", &ws); err != nil {
		return 0, err
	}
	return ws.ID, nil
}

// ActiveWindowClass returns the class of the focused window; ok is false when
// the focus is on an empty workspace.
func (h *HyprlandProvider) ActiveWindowClass(ctx context.Context) (string, bool, error) {
	var win types.HyprlandWindow
	if err := h.query(ctx, "activewindow", &win); err != nil {
		return "", false, err
	}
	if !win.Focused() {
		return "", false, nil
	}
	return win.Class, true, nil
}

// WorkspaceSnapshots returns every workspace Hyprland currently knows about.
func (h *HyprlandProvider) WorkspaceSnapshots(ctx context.Context) ([]types.WorkspaceSnapshot, error) {
	var workspaces []types.HyprlandWorkspace
	if err := h.query(ctx, "workspaces", &workspaces); err != nil {
		return nil, err
	}

	snapshots := make([]types.WorkspaceSnapshot, 0, len(workspaces))
	for _, ws := range workspaces {
		snapshots = append(snapshots, types.WorkspaceSnapshot{ID: ws.ID, Windows: ws.Windows})
	}
	return snapshots, nil
}

// Subscribe opens the event socket. The stream only yields the listed kinds
// and is closed when ctx is cancelled.
func (h *HyprlandProvider) Subscribe(ctx context.Context, kinds ...types.EventKind) (EventStream, error) {
	conn, err := openSocket(ctx, h.socketDir, eventSocket)
	if err != nil {
		return nil, err
	}
	h.logger.Debug("Subscribed to Hyprland events", zap.Any("kinds", kinds))
	return newSocketStream(ctx, conn, kinds), nil
}
