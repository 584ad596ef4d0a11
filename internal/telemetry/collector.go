package telemetry

import (
	"sort"
	"time"

	"planet-system/internal/particles"

	"gonum.org/v1/gonum/stat"
)

// Sample is one frame's worth of measurements.
type Sample struct {
	FrameTime time.Duration
	Pool      particles.Stats
	Drawn     int
}

// WindowStats aggregates the samples of one telemetry window.
type WindowStats struct {
	WindowEnd   float64 `csv:"window_end_s"`
	Frames      int     `csv:"frames"`
	FPS         float64 `csv:"fps"`
	MeanFrameMS float64 `csv:"mean_frame_ms"`
	StdFrameMS  float64 `csv:"std_frame_ms"`
	P95FrameMS  float64 `csv:"p95_frame_ms"`
	MeanLive    float64 `csv:"mean_live"`
	MeanVisible float64 `csv:"mean_visible"`
	MeanDrawn   float64 `csv:"mean_drawn"`
	Capacity    int     `csv:"capacity"`
	Evictions   uint64  `csv:"evictions"`
}

// Collector buffers frame samples and emits a WindowStats once per window of simulated time.
type Collector struct {
	window  time.Duration
	elapsed time.Duration
	total   time.Duration

	frameMS []float64
	live    []float64
	visible []float64
	drawn   []float64

	capacity       int
	evictionsStart uint64
	evictionsLast  uint64
	started        bool
}

// NewCollector returns a collector that closes a window every w of frame time.
func NewCollector(w time.Duration) *Collector {
	if w <= 0 {
		w = time.Second
	}
	return &Collector{window: w}
}

// Observe records s. When the window is full it returns the aggregate and starts a new window.
func (c *Collector) Observe(s Sample) (WindowStats, bool) {
	if !c.started {
		c.evictionsStart = s.Pool.Evictions
		c.started = true
	}
	c.frameMS = append(c.frameMS, float64(s.FrameTime.Microseconds())/1000.0)
	c.live = append(c.live, float64(s.Pool.Live))
	c.visible = append(c.visible, float64(s.Pool.Visible))
	c.drawn = append(c.drawn, float64(s.Drawn))
	c.capacity = s.Pool.Capacity
	c.evictionsLast = s.Pool.Evictions

	c.elapsed += s.FrameTime
	c.total += s.FrameTime
	if c.elapsed < c.window {
		return WindowStats{}, false
	}
	return c.flush(), true
}

// Flush returns whatever is buffered as a partial window. ok is false when nothing was observed.
func (c *Collector) Flush() (WindowStats, bool) {
	if len(c.frameMS) == 0 {
		return WindowStats{}, false
	}
	return c.flush(), true
}

func (c *Collector) flush() WindowStats {
	sorted := append([]float64(nil), c.frameMS...)
	sort.Float64s(sorted)

	ws := WindowStats{
		WindowEnd:   c.total.Seconds(),
		Frames:      len(c.frameMS),
		MeanFrameMS: stat.Mean(c.frameMS, nil),
		P95FrameMS:  stat.Quantile(0.95, stat.Empirical, sorted, nil),
		MeanLive:    stat.Mean(c.live, nil),
		MeanVisible: stat.Mean(c.visible, nil),
		MeanDrawn:   stat.Mean(c.drawn, nil),
		Capacity:    c.capacity,
		Evictions:   c.evictionsLast - c.evictionsStart,
	}
	if len(c.frameMS) > 1 {
		ws.StdFrameMS = stat.StdDev(c.frameMS, nil)
	}
	if c.elapsed > 0 {
		ws.FPS = float64(len(c.frameMS)) / c.elapsed.Seconds()
	}

	c.elapsed = 0
	c.frameMS = c.frameMS[:0]
	c.live = c.live[:0]
	c.visible = c.visible[:0]
	c.drawn = c.drawn[:0]
	c.evictionsStart = c.evictionsLast
	return ws
}
