package main

import (
	"os"
	"path/filepath"

	"go.uber.org/zap/zapcore"
)

const (
	batteryCapacityPath = "/sys/class/power_supply/BAT0/capacity"
	meminfoPath         = "/proc/meminfo"
)

// Config holds the fixed locations the status sources read from. Nothing here
// is user configurable; tests swap the paths for fixtures.
type Config struct {
	BatteryPath string
	MeminfoPath string
	// SocketDirs are tried in order; the first existing one wins.
	SocketDirs []string
	LogLevel   zapcore.Level
}

// DefaultConfig derives the socket directories from the variables Hyprland
// exports into every session.
func DefaultConfig() Config {
	sig := os.Getenv("HYPRLAND_INSTANCE_SIGNATURE")

	var dirs []string
	if sig != "" {
		if runtimeDir := os.Getenv("XDG_RUNTIME_DIR"); runtimeDir != "" {
			dirs = append(dirs, filepath.Join(runtimeDir, "hypr", sig))
		}
		// Hyprland before 0.40 kept its sockets under /tmp.
		dirs = append(dirs, filepath.Join("/tmp", "hypr", sig))
	}

	return Config{
		BatteryPath: batteryCapacityPath,
		MeminfoPath: meminfoPath,
		SocketDirs:  dirs,
		LogLevel:    zapcore.WarnLevel,
	}
}

// socketDir returns the first existing socket directory, or the first
// candidate when none exists so that dial errors name a real path.
func (c Config) socketDir() string {
	for _, dir := range c.SocketDirs {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir
		}
	}
	if len(c.SocketDirs) > 0 {
		return c.SocketDirs[0]
	}
	return ""
}
