package main

import (
	"os"
)

type Compositor int

const (
	CompositorUnknown Compositor = iota
	CompositorHyprland
)

func (c Compositor) String() string {
	switch c {
	case CompositorHyprland:
		return "hyprland"
	default:
		return "unknown"
	}
}

// DetectCompositor checks the environment to determine whether the Wayland
// compositor we talk to is running.
func DetectCompositor() Compositor {
	if sig := os.Getenv("HYPRLAND_INSTANCE_SIGNATURE"); sig != "" {
		return CompositorHyprland
	}
	return CompositorUnknown
}
