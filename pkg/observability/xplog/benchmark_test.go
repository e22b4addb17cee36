package xplog_test

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"

	"github.com/omeyang/xplog/pkg/observability/xplog"
)

func BenchmarkLogAt(b *testing.B) {
	w, err := xplog.New(filepath.Join(b.TempDir(), "bench"))
	if err != nil {
		b.Fatal(err)
	}
	defer w.Close()

	b.ReportAllocs()
	i := 0
	for b.Loop() {
		w.LogAt(xplog.LevelDebug, "Benchmark message: %d", i)
		i++
	}
}

func BenchmarkLogAtMemFs(b *testing.B) {
	w, err := xplog.New("/bench", xplog.WithFs(afero.NewMemMapFs()))
	if err != nil {
		b.Fatal(err)
	}
	defer w.Close()

	b.ReportAllocs()
	for b.Loop() {
		w.Info("request served status=%d bytes=%d", 200, 512)
	}
}

func BenchmarkLogAtParallel(b *testing.B) {
	w, err := xplog.New(filepath.Join(b.TempDir(), "bench_parallel"))
	if err != nil {
		b.Fatal(err)
	}
	defer w.Close()

	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			w.Warning("parallel message %s", "payload")
		}
	})
}

func BenchmarkLogFiltered(b *testing.B) {
	w, err := xplog.New("/bench", xplog.WithFs(afero.NewMemMapFs()), xplog.WithMinLevel(xplog.LevelError))
	if err != nil {
		b.Fatal(err)
	}
	defer w.Close()

	b.ReportAllocs()
	for b.Loop() {
		w.Debug("filtered %d", 1)
	}
}
