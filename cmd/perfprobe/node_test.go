package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestNodeCmdWritesNodeFile(t *testing.T) {
	viper.Reset()
	defer viper.Reset()
	viper.Set("stream.size", 5000)
	viper.Set("stream.trials", 2)
	viper.Set("stream.workers", 2)
	viper.Set("flops.size", 16)
	viper.Set("flops.trials", 1)
	viper.Set("flops.seed", 1)

	path := filepath.Join(t.TempDir(), "node.yaml")

	cmd := NewNodeCmd()
	b := new(bytes.Buffer)
	cmd.SetOut(b)
	cmd.SetArgs([]string{"--output", path})

	require.NoError(t, cmd.Execute())

	out := b.String()
	assert.Contains(t, out, "=== Node Benchmark:")
	assert.Contains(t, out, "Memory Bandwidth Benchmark (STREAM)")
	assert.Contains(t, out, "Peak FLOPS Benchmark (DGEMM)")
	assert.Contains(t, out, "Results saved: "+path)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal(raw, &doc))
	assert.Contains(t, doc, "hostname")
	assert.Contains(t, doc, "memory_bandwidth_gbps")
	assert.Contains(t, doc, "peak_gflops")
}

func TestNodeCmdSkipFlags(t *testing.T) {
	viper.Reset()
	defer viper.Reset()
	viper.Set("stream.size", 5000)
	viper.Set("stream.trials", 2)
	viper.Set("stream.workers", 2)

	path := filepath.Join(t.TempDir(), "node.yaml")

	cmd := NewNodeCmd()
	b := new(bytes.Buffer)
	cmd.SetOut(b)
	cmd.SetArgs([]string{"--output", path, "--skip-flops"})

	require.NoError(t, cmd.Execute())
	assert.NotContains(t, b.String(), "Peak FLOPS Benchmark")

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal(raw, &doc))
	assert.Contains(t, doc, "memory_bandwidth_gbps")
	assert.NotContains(t, doc, "peak_gflops")
}

func TestNodeCmdRejectsArgs(t *testing.T) {
	cmd := NewNodeCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"extra"})

	assert.Error(t, cmd.Execute())
}
