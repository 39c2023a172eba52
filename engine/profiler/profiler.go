package profiler

import (
	"log/slog"
	"runtime"
	"time"
)

// Profiler tracks frame rate and memory statistics for performance monitoring.
// Outputs stats to the logger at a configurable interval.
type Profiler struct {
	logger         *slog.Logger
	frameCount     int
	lastTime       time.Time
	updateInterval time.Duration
	memStats       runtime.MemStats
	lastGCCount    uint32
	lastTotalAlloc uint64
	lastFPS        float64
}

// ProfilerOption is a functional option for configuring a Profiler.
type ProfilerOption func(*Profiler)

// WithLogger sets the logger stats are written to.
func WithLogger(logger *slog.Logger) ProfilerOption {
	return func(p *Profiler) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithInterval sets how often stats are logged.
//
// Parameters:
//   - d: the reporting interval (ignored if not positive)
//
// Returns:
//   - ProfilerOption: option function to apply
func WithInterval(d time.Duration) ProfilerOption {
	return func(p *Profiler) {
		if d > 0 {
			p.updateInterval = d
		}
	}
}

// NewProfiler creates a new Profiler. The update interval defaults to 1 second.
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(options ...ProfilerOption) *Profiler {
	p := &Profiler{
		logger:         slog.Default(),
		lastTime:       time.Now(),
		updateInterval: time.Second,
	}
	for _, opt := range options {
		opt(p)
	}
	return p
}

// Tick should be called once per frame to track frame timing.
// Logs FPS, heap usage, allocation rate, GC count/pause times and total memory when the update
// interval has elapsed.
//
// Returns:
//   - bool: true if stats were logged this tick, false otherwise
func (p *Profiler) Tick() bool {
	return p.tickAt(time.Now())
}

// FPS returns the frame rate measured over the last completed interval.
func (p *Profiler) FPS() float64 {
	return p.lastFPS
}

func (p *Profiler) tickAt(now time.Time) bool {
	p.frameCount++
	elapsed := now.Sub(p.lastTime)
	if elapsed < p.updateInterval {
		return false
	}

	p.lastFPS = float64(p.frameCount) / elapsed.Seconds()

	runtime.ReadMemStats(&p.memStats)
	allocMB := float64(p.memStats.Alloc) / 1024 / 1024
	sysMB := float64(p.memStats.Sys) / 1024 / 1024
	allocDelta := p.memStats.TotalAlloc - p.lastTotalAlloc
	allocRateMB := float64(allocDelta) / 1024 / 1024 / elapsed.Seconds()

	// PauseNs is a circular buffer of the last 256 GC pauses
	gcCount := p.memStats.NumGC
	var lastPauseUs, maxPauseUs uint64
	if gcCount > 0 {
		lastPauseUs = p.memStats.PauseNs[(gcCount-1)%256] / 1000
		startIdx := p.lastGCCount
		if gcCount-startIdx > 256 {
			startIdx = gcCount - 256
		}
		for i := startIdx; i < gcCount; i++ {
			maxPauseUs = max(maxPauseUs, p.memStats.PauseNs[i%256]/1000)
		}
	}

	p.logger.Info("frame stats",
		"fps", p.lastFPS,
		"heap_mb", allocMB,
		"alloc_rate_mb_s", allocRateMB,
		"gc", gcCount,
		"gc_last_us", lastPauseUs,
		"gc_max_us", maxPauseUs,
		"sys_mb", sysMB,
	)

	p.frameCount = 0
	p.lastTime = now
	p.lastGCCount = gcCount
	p.lastTotalAlloc = p.memStats.TotalAlloc
	return true
}
