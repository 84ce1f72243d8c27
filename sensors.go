package main

import (
	"context"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/shirou/gopsutil/v4/mem"
	"go.uber.org/zap"
)

// Sensors reads battery and memory state from fixed kernel files.
type Sensors struct {
	batteryPath string
	meminfoPath string
	logger      *zap.Logger

	// virtualMemory backs MeminfoText where the pseudo-file is unavailable.
	virtualMemory func(context.Context) (*mem.VirtualMemoryStat, error)
}

// NewSensors creates sensors reading the given paths.
func NewSensors(batteryPath, meminfoPath string, logger *zap.Logger) *Sensors {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Sensors{
		batteryPath:   batteryPath,
		meminfoPath:   meminfoPath,
		logger:        logger,
		virtualMemory: mem.VirtualMemoryWithContext,
	}
}

// BatteryPercent returns the capacity of the first battery.
func (s *Sensors) BatteryPercent(ctx context.Context) (int, error) {
	data, err := os.ReadFile(s.batteryPath)
	if err != nil {
		return 0, errors.Wrap(err, "read battery capacity")
	}
	return ParseBatteryPercent(string(data))
}

// MeminfoText returns the meminfo pseudo-file. If it cannot be read, an
// equivalent text is rendered from gopsutil so the same parser applies.
func (s *Sensors) MeminfoText(ctx context.Context) (string, error) {
	data, err := os.ReadFile(s.meminfoPath)
	if err == nil {
		return string(data), nil
	}

	s.logger.Debug("meminfo unreadable, falling back to gopsutil",
		zap.String("path", s.meminfoPath),
		zap.Error(err))

	vm, vmErr := s.virtualMemory(ctx)
	if vmErr != nil {
		return "", errors.Wrapf(err, "read %s (fallback: %v)", s.meminfoPath, vmErr)
	}
	return renderMeminfo(vm.Total, vm.Available), nil
}

// renderMeminfo formats byte counts the way /proc/meminfo does.
func renderMeminfo(total, available uint64) string {
	return fmt.Sprintf("MemTotal:       %d kB\nMemAvailable:   %d kB\n", total>>10, available>>10)
}
