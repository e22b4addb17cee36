package xplog_test

import (
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/omeyang/xplog/pkg/observability/xplog"
)

// newTestMeterProvider 创建用于测试的 MeterProvider
func newTestMeterProvider(t *testing.T) (*sdkmetric.MeterProvider, *sdkmetric.ManualReader) {
	t.Helper()
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })
	return mp, reader
}

// counterValue 汇总名为 name、且包含 attrs 全部属性的数据点
func counterValue(t *testing.T, reader *sdkmetric.ManualReader, name string, attrs ...attribute.KeyValue) int64 {
	t.Helper()

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	var total int64
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != name {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok, "metric %s is %T", name, m.Data)
			for _, dp := range sum.DataPoints {
				if hasAll(dp.Attributes, attrs) {
					total += dp.Value
				}
			}
		}
	}
	return total
}

func hasAll(set attribute.Set, attrs []attribute.KeyValue) bool {
	for _, kv := range attrs {
		v, ok := set.Value(kv.Key)
		if !ok || v != kv.Value {
			return false
		}
	}
	return true
}

func TestMetricsLines(t *testing.T) {
	mp, reader := newTestMeterProvider(t)
	w, err := xplog.New("/engine",
		xplog.WithFs(afero.NewMemMapFs()),
		xplog.WithMeterProvider(mp),
	)
	require.NoError(t, err)
	defer w.Close()

	w.Info("a")
	w.Info("b")
	w.Error("c")
	w.LogAt(xplog.LevelCustom1, "d")

	assert.Equal(t, int64(4), counterValue(t, reader, "xplog.lines.total"))
	assert.Equal(t, int64(2), counterValue(t, reader, "xplog.lines.total", attribute.String("level", "info")))
	assert.Equal(t, int64(1), counterValue(t, reader, "xplog.lines.total", attribute.String("level", "unknown")))
}

func TestMetricsRotations(t *testing.T) {
	mp, reader := newTestMeterProvider(t)
	w, err := xplog.New("/engine",
		xplog.WithFs(afero.NewMemMapFs()),
		xplog.WithMaxSize(1),
		xplog.WithMeterProvider(mp),
	)
	require.NoError(t, err)
	defer w.Close()

	w.Info("first")  // 写入前大小 0，不轮转
	w.Info("second") // 写入前已超过 1 字节，自动轮转
	require.NoError(t, w.Rotate())

	auto := []attribute.KeyValue{attribute.String("mode", "truncate"), attribute.String("trigger", "auto")}
	manual := []attribute.KeyValue{attribute.String("mode", "truncate"), attribute.String("trigger", "manual")}
	assert.Equal(t, int64(1), counterValue(t, reader, "xplog.rotations.total", auto...))
	assert.Equal(t, int64(1), counterValue(t, reader, "xplog.rotations.total", manual...))
}

func TestMetricsErrors(t *testing.T) {
	mp, reader := newTestMeterProvider(t)
	w, err := xplog.New("/engine",
		xplog.WithFs(afero.NewMemMapFs()),
		xplog.WithMeterProvider(mp),
	)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	w.Info("dropped")
	w.Info("dropped")

	assert.Equal(t, int64(2), counterValue(t, reader, "xplog.errors.total", attribute.String("op", "write")))
	assert.Zero(t, counterValue(t, reader, "xplog.lines.total"))
}

func TestNoMeterProvider(t *testing.T) {
	w, err := xplog.New("/engine", xplog.WithFs(afero.NewMemMapFs()), xplog.WithMeterProvider(nil))
	require.NoError(t, err)
	defer w.Close()

	assert.NotPanics(t, func() {
		w.Info("no metrics")
		_ = w.Rotate()
	})
}
