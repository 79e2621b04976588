package report

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"perfprobe/internal/flops"
	"perfprobe/internal/stream"
	"perfprobe/internal/sysinfo"
)

// NodeFile is the conventional name of the per-host characterization
// file, keyed by hostname so a fleet can be benchmarked into one
// directory.
func NodeFile(hostname string) string {
	return fmt.Sprintf("node_%s.yaml", hostname)
}

// WriteNode merges host facts and benchmark headline figures into the
// node file at path. Keys already present in the file but unknown to us
// survive the merge, so other tooling can share the file.
func WriteNode(path string, info sysinfo.Info, sr *stream.Report, fr *flops.Report) error {
	node := map[string]any{}
	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, &node); err != nil {
			return fmt.Errorf("existing node file %s is not valid YAML: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	node["hostname"] = info.Hostname
	node["os"] = info.OS
	node["machine"] = info.Arch
	node["cpu_model"] = info.CPUModel
	node["cpu_cores"] = info.Cores
	if info.MHz > 0 {
		node["cpu_freq_mhz"] = round2(info.MHz)
	}
	if info.TotalMem > 0 {
		node["memory_total_bytes"] = info.TotalMem
	}

	if fr != nil {
		node["peak_gflops"] = round2(fr.PeakGFLOPS)
	}
	if sr != nil {
		node["memory_bandwidth_mbps"] = round2(sr.BestTriadMBs())
		node["memory_bandwidth_gbps"] = round2(sr.BandwidthGBs())
	}

	data, err := yaml.Marshal(node)
	if err != nil {
		return fmt.Errorf("failed to marshal node data: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
