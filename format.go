package main

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/GcZuRi1886/barstatus/types"
)

const (
	desktopLabel = "Desktop"

	firstWorkspace = 1
	lastWorkspace  = 10

	kibShift = 10
)

// FormatWorkspace renders the active workspace id.
func FormatWorkspace(id int) string {
	return strconv.Itoa(id)
}

// FormatWindow renders the active window class, or Desktop when nothing has
// focus.
func FormatWindow(class string, ok bool) string {
	if !ok || class == "" {
		return desktopLabel
	}
	return class
}

// OpenWindowsTable returns one row per workspace 1..10 in ascending order.
// Workspaces the compositor did not report have zero windows; ids outside the
// range are ignored.
func OpenWindowsTable(snapshots []types.WorkspaceSnapshot) []types.WorkspaceWindows {
	table := make([]types.WorkspaceWindows, 0, lastWorkspace-firstWorkspace+1)
	for id := firstWorkspace; id <= lastWorkspace; id++ {
		table = append(table, types.WorkspaceWindows{ID: id})
	}
	for _, ws := range snapshots {
		if ws.ID < firstWorkspace || ws.ID > lastWorkspace {
			continue
		}
		table[ws.ID-firstWorkspace].Windows = ws.Windows
	}
	return table
}

// FormatOpenWindows renders the open_windows table as a compact JSON array.
func FormatOpenWindows(snapshots []types.WorkspaceSnapshot) (string, error) {
	out, err := json.Marshal(OpenWindowsTable(snapshots))
	if err != nil {
		return "", errors.Wrap(err, "marshal open windows")
	}
	return string(out), nil
}

// BatteryBucket maps a charge percentage to the label the bar styles on.
func BatteryBucket(percent int) (string, bool) {
	switch {
	case percent < 0 || percent > 100:
		return "", false
	case percent <= 25:
		return "low", true
	case percent <= 50:
		return "warn", true
	case percent <= 75:
		return "alright", true
	default:
		return "good", true
	}
}

// ParseBatteryPercent parses the content of a power_supply capacity file.
func ParseBatteryPercent(raw string) (int, error) {
	percent, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, errors.Wrap(err, "parse battery capacity")
	}
	return percent, nil
}

// FormatMemory renders used memory in MiB.
func FormatMemory(mib int) string {
	return strconv.Itoa(mib)
}

// UsedMemoryMiB returns MemTotal minus MemAvailable in MiB. Each value is
// built from every digit on its line, so the unit suffix never matters. A
// missing line counts as zero and the result may be negative.
func UsedMemoryMiB(meminfo string) (int, error) {
	var total, available int
	for _, line := range strings.Split(meminfo, "\n") {
		var (
			dst *int
			key string
		)
		switch {
		case strings.HasPrefix(line, "MemTotal:"):
			dst, key = &total, "MemTotal"
		case strings.HasPrefix(line, "MemAvailable:"):
			dst, key = &available, "MemAvailable"
		default:
			continue
		}

		kib, err := lineDigits(line)
		if err != nil {
			return 0, errors.Wrapf(err, "parse %s", key)
		}
		*dst = kib >> kibShift
	}
	return total - available, nil
}

func lineDigits(line string) (int, error) {
	var b strings.Builder
	for _, r := range line {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return strconv.Atoi(b.String())
}
