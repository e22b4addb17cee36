package xrotate

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
)

var benchLine = []byte("01/15/24 09:32:07 [debug]: benchmark log line with some content\n")

func BenchmarkTruncateWrite(b *testing.B) {
	r, err := NewTruncate(filepath.Join(b.TempDir(), "bench.log"))
	if err != nil {
		b.Fatal(err)
	}
	defer r.Close()

	b.ReportAllocs()
	for b.Loop() {
		_, _ = r.Write(benchLine)
	}
}

func BenchmarkTruncateWriteMemFs(b *testing.B) {
	r, err := NewTruncate("/bench.log", WithFs(afero.NewMemMapFs()))
	if err != nil {
		b.Fatal(err)
	}
	defer r.Close()

	b.ReportAllocs()
	for b.Loop() {
		_, _ = r.Write(benchLine)
	}
}

func BenchmarkLumberjackWriteParallel(b *testing.B) {
	r, err := NewLumberjack(filepath.Join(b.TempDir(), "bench_parallel.log"))
	if err != nil {
		b.Fatal(err)
	}
	defer r.Close()

	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_, _ = r.Write(benchLine)
		}
	})
}
