// Package host implements the assistant's capabilities on the local machine.
package host

import (
	"context"
	"errors"
	"runtime"
	"time"

	"github.com/distatus/battery"
	"github.com/j0lvera/arlo/internal/assistant"
	"github.com/rs/zerolog"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	gohost "github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
)

// ErrUnavailable is returned when the host lacks a capability.
var ErrUnavailable = errors.New("not available on this host")

const cpuSampleInterval = 500 * time.Millisecond

// Metrics reads system status through gopsutil and the battery package.
type Metrics struct {
	batteries   func() ([]*battery.Battery, error)
	diskPath    string
	cpuInterval time.Duration
	logger      zerolog.Logger
}

func NewMetrics(logger zerolog.Logger) *Metrics {
	return &Metrics{
		batteries:   battery.GetAll,
		diskPath:    rootPath(),
		cpuInterval: cpuSampleInterval,
		logger:      logger,
	}
}

func rootPath() string {
	if runtime.GOOS == "windows" {
		return `C:\`
	}
	return "/"
}

// Battery returns the combined charge of all batteries.
func (m *Metrics) Battery(context.Context) (float64, bool) {
	batts, err := m.batteries()
	if err != nil && len(batts) == 0 {
		m.logger.Debug().Err(err).Msg("battery information unavailable")
		return 0, false
	}
	return BatteryPercent(batts)
}

// BatteryPercent sums the current and full charge of the given batteries.
// Nil entries, which the battery package returns for unreadable devices, are
// skipped.
func BatteryPercent(batts []*battery.Battery) (float64, bool) {
	var current, full float64
	for _, b := range batts {
		if b == nil {
			continue
		}
		current += b.Current
		full += b.Full
	}
	if full <= 0 {
		return 0, false
	}
	return current / full * 100, true
}

func (m *Metrics) CPUPercent(ctx context.Context) (float64, bool) {
	percents, err := cpu.PercentWithContext(ctx, m.cpuInterval, false)
	if err != nil || len(percents) == 0 {
		m.logger.Debug().Err(err).Msg("cpu usage unavailable")
		return 0, false
	}
	return percents[0], true
}

func (m *Metrics) MemoryPercent(ctx context.Context) (float64, bool) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		m.logger.Debug().Err(err).Msg("memory usage unavailable")
		return 0, false
	}
	return vm.UsedPercent, true
}

func (m *Metrics) DiskPercent(ctx context.Context) (float64, bool) {
	usage, err := disk.UsageWithContext(ctx, m.diskPath)
	if err != nil {
		m.logger.Debug().Err(err).Str("path", m.diskPath).Msg("disk usage unavailable")
		return 0, false
	}
	return usage.UsedPercent, true
}

// Platform returns the OS name and kernel release, falling back to GOOS.
func (m *Metrics) Platform(ctx context.Context) (string, string) {
	name := assistant.OSName(runtime.GOOS)
	info, err := gohost.InfoWithContext(ctx)
	if err != nil {
		m.logger.Debug().Err(err).Msg("host information unavailable")
		return name, ""
	}
	return name, info.KernelVersion
}
