// Package sysinfo gathers the host facts reported alongside benchmark
// results: CPU model, core count, frequency and memory size.
package sysinfo

import (
	"os"
	"runtime"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// Info describes the host the probes ran on.
type Info struct {
	Hostname string  `json:"hostname" yaml:"hostname"`
	OS       string  `json:"os" yaml:"os"`
	Arch     string  `json:"machine" yaml:"machine"`
	CPUModel string  `json:"cpu_model" yaml:"cpu_model"`
	Cores    int     `json:"cpu_cores" yaml:"cpu_cores"`
	MHz      float64 `json:"cpu_freq_mhz,omitempty" yaml:"cpu_freq_mhz,omitempty"`
	TotalMem uint64  `json:"memory_total_bytes,omitempty" yaml:"memory_total_bytes,omitempty"`
}

// Collect gathers host information. Facts that cannot be determined are
// left at a placeholder or zero value; collection never fails the run.
func Collect() Info {
	info := Info{
		OS:       runtime.GOOS,
		Arch:     runtime.GOARCH,
		CPUModel: "Unknown",
		Cores:    runtime.NumCPU(),
	}

	if host, err := os.Hostname(); err == nil {
		info.Hostname = host
	}

	if cpus, err := cpu.Info(); err == nil && len(cpus) > 0 {
		if cpus[0].ModelName != "" {
			info.CPUModel = cpus[0].ModelName
		}
		if cpus[0].Mhz > 0 {
			info.MHz = cpus[0].Mhz
		}
	}

	if counts, err := cpu.Counts(true); err == nil && counts > 0 {
		info.Cores = counts
	}

	if vm, err := mem.VirtualMemory(); err == nil {
		info.TotalMem = vm.Total
	}

	return info
}
