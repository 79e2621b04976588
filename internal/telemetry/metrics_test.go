package telemetry

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetricsRegisters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	require.NotNil(t, m)

	m.TriadBandwidthGBs.Set(24.5)
	m.PeakGFLOPS.Set(95.5)

	assert.Equal(t, 24.5, testutil.ToFloat64(m.TriadBandwidthGBs))
	assert.Equal(t, 95.5, testutil.ToFloat64(m.PeakGFLOPS))
}

func TestObserveRun(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	m.ObserveRun("stream", 2*time.Second, nil)
	m.ObserveRun("stream", time.Second, nil)
	m.ObserveRun("flops", time.Second, errors.New("allocation failed"))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RunsTotal.WithLabelValues("stream", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RunsTotal.WithLabelValues("flops", "error")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.RunsTotal.WithLabelValues("flops", "ok")))
}
