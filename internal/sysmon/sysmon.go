// Package sysmon provides system and process resource sampling for the
// status surfaces: the REPL status command and the HTTP health endpoint.
package sysmon

import (
	"runtime"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// Stats holds a single snapshot of system-wide resource usage.
type Stats struct {
	CPUPercent float64 // 0.0 .. 100.0
	MemPercent float64 // 0.0 .. 100.0
}

// Sample collects a single system-wide CPU and memory snapshot.
// CPU uses interval=0 (delta since last call). Returns zero values on error.
func Sample() Stats {
	var s Stats
	cpuPcts, err := cpu.Percent(0, false)
	if err == nil && len(cpuPcts) > 0 {
		s.CPUPercent = cpuPcts[0]
	}
	vmem, err := mem.VirtualMemory()
	if err == nil && vmem != nil {
		s.MemPercent = vmem.UsedPercent
	}
	return s
}

// ProcessStats holds a point-in-time reading of this process's runtime.
type ProcessStats struct {
	HeapAllocBytes uint64 // bytes in use by the application
	NumGC          uint32 // number of completed GC cycles
	Goroutines     int    // live goroutine count
}

// SampleProcess reads the current process runtime statistics.
func SampleProcess() ProcessStats {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return ProcessStats{
		HeapAllocBytes: m.HeapAlloc,
		NumGC:          m.NumGC,
		Goroutines:     runtime.NumGoroutine(),
	}
}
