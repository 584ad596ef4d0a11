package telemetry

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"planet-system/internal/config"
	"planet-system/internal/particles"

	"github.com/gocarina/gocsv"
)

func TestCollectorEmitsPerWindow(t *testing.T) {
	c := NewCollector(100 * time.Millisecond)
	frame := 10 * time.Millisecond
	var got []WindowStats
	for i := 0; i < 25; i++ {
		ws, ok := c.Observe(Sample{
			FrameTime: frame,
			Pool:      particles.Stats{Capacity: 50, Live: 20, Visible: 10, Evictions: uint64(i)},
			Drawn:     10,
		})
		if ok {
			got = append(got, ws)
		}
	}
	if len(got) != 2 {
		t.Fatalf("windows = %d, want 2", len(got))
	}
	w := got[0]
	if w.Frames != 10 {
		t.Errorf("frames = %d, want 10", w.Frames)
	}
	if math.Abs(w.MeanFrameMS-10) > 1e-9 || w.StdFrameMS != 0 {
		t.Errorf("frame ms mean=%v std=%v", w.MeanFrameMS, w.StdFrameMS)
	}
	if math.Abs(w.FPS-100) > 1e-9 {
		t.Errorf("fps = %v, want 100", w.FPS)
	}
	if w.MeanLive != 20 || w.MeanVisible != 10 || w.MeanDrawn != 10 || w.Capacity != 50 {
		t.Errorf("pool means = %+v", w)
	}
	if w.Evictions != 9 {
		t.Errorf("evictions = %d, want 9", w.Evictions)
	}
	if math.Abs(got[1].WindowEnd-0.2) > 1e-9 {
		t.Errorf("second window end = %v, want 0.2", got[1].WindowEnd)
	}
	if got[1].Evictions != 10 {
		t.Errorf("second window evictions = %d, want 10", got[1].Evictions)
	}

	rest, ok := c.Flush()
	if !ok || rest.Frames != 5 {
		t.Errorf("flush = %+v, %v; want 5 frames", rest, ok)
	}
	if _, ok := c.Flush(); ok {
		t.Errorf("second flush should be empty")
	}
}

func TestCollectorFrameSpread(t *testing.T) {
	c := NewCollector(time.Hour)
	for _, ms := range []int{10, 10, 10, 30} {
		c.Observe(Sample{FrameTime: time.Duration(ms) * time.Millisecond})
	}
	ws, ok := c.Flush()
	if !ok {
		t.Fatal("expected a window")
	}
	if ws.MeanFrameMS != 15 {
		t.Errorf("mean = %v, want 15", ws.MeanFrameMS)
	}
	if ws.StdFrameMS <= 0 {
		t.Errorf("std = %v, want > 0", ws.StdFrameMS)
	}
	if ws.P95FrameMS != 30 {
		t.Errorf("p95 = %v, want 30", ws.P95FrameMS)
	}
}

func TestNilOutputManagerIsNoop(t *testing.T) {
	om, err := NewOutputManager("")
	if err != nil || om != nil {
		t.Fatalf("empty dir: got %v, %v", om, err)
	}
	if err := om.WriteWindow(WindowStats{}); err != nil {
		t.Errorf("WriteWindow on nil: %v", err)
	}
	if err := om.WriteConfig(nil); err != nil {
		t.Errorf("WriteConfig on nil: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Errorf("Close on nil: %v", err)
	}
}

func TestOutputManagerWritesCSV(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "run")
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatalf("NewOutputManager: %v", err)
	}
	for i := 1; i <= 3; i++ {
		if err := om.WriteWindow(WindowStats{WindowEnd: float64(i), Frames: i * 10}); err != nil {
			t.Fatalf("WriteWindow: %v", err)
		}
	}
	cfg, err := config.Default()
	if err != nil {
		t.Fatal(err)
	}
	if err := om.WriteConfig(cfg); err != nil {
		t.Fatalf("WriteConfig: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "particles.csv"))
	if err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(string(data), "window_end_s"); n != 1 {
		t.Errorf("header written %d times", n)
	}
	var rows []WindowStats
	if err := gocsv.UnmarshalBytes(data, &rows); err != nil {
		t.Fatalf("reading back csv: %v", err)
	}
	if len(rows) != 3 || rows[2].Frames != 30 {
		t.Errorf("rows = %+v", rows)
	}
	if _, err := os.Stat(filepath.Join(dir, "config.yaml")); err != nil {
		t.Errorf("config snapshot missing: %v", err)
	}
}
