// Package sysmon samples host-wide CPU and memory usage so the dashboard can
// show how loaded the machine running a simulation is.
package sysmon

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// Stats holds a single snapshot of system-wide resource usage.
type Stats struct {
	CPUPercent float64 // 0.0 .. 100.0
	MemPercent float64 // 0.0 .. 100.0
}

// String renders the snapshot for a status bar.
func (s Stats) String() string {
	return fmt.Sprintf("CPU %3.0f%% | MEM %3.0f%%", s.CPUPercent, s.MemPercent)
}

// Sample collects a single system-wide CPU and memory snapshot.
// CPU uses interval=0, i.e. the delta since the previous call; the first
// call of a process may therefore report 0. A reading that fails leaves its
// value at zero and is reported in the returned error.
func Sample(ctx context.Context) (Stats, error) {
	var s Stats
	cpuPcts, cpuErr := cpu.PercentWithContext(ctx, 0, false)
	if cpuErr == nil && len(cpuPcts) > 0 {
		s.CPUPercent = clamp(cpuPcts[0])
	}
	vmem, memErr := mem.VirtualMemoryWithContext(ctx)
	if memErr == nil && vmem != nil {
		s.MemPercent = clamp(vmem.UsedPercent)
	}

	switch {
	case cpuErr != nil:
		return s, fmt.Errorf("sysmon: cpu: %w", cpuErr)
	case memErr != nil:
		return s, fmt.Errorf("sysmon: memory: %w", memErr)
	}
	return s, nil
}

func clamp(p float64) float64 {
	switch {
	case p < 0:
		return 0
	case p > 100:
		return 100
	}
	return p
}
