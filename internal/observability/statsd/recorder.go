package statsd

import (
	"sync"
	"time"
)

// Recorder is an in-memory Sink. Tests use it to assert on emitted metrics.
type Recorder struct {
	mu      sync.Mutex
	lines   []string
	counts  map[string]int64
	timings map[string]int
}

var _ Sink = (*Recorder)(nil)

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{counts: map[string]int64{}, timings: map[string]int{}}
}

func (r *Recorder) Count(name string, value int64, tags map[string]string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.counts[name] += value
	r.lines = append(r.lines, Line("", name, formatInt(value), "c", nil, tags))
}

func (r *Recorder) Gauge(name string, value float64, tags map[string]string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, Line("", name, formatFloat(value), "g", nil, tags))
}

func (r *Recorder) Timing(name string, value time.Duration, tags map[string]string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.timings[name]++
	r.lines = append(r.lines, Line("", name, formatFloat(float64(value)/float64(time.Millisecond)), "ms", nil, tags))
}

// CountOf returns the accumulated value of a counter.
func (r *Recorder) CountOf(name string) int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.counts[name]
}

// TimingsOf returns how many timings were recorded under name.
func (r *Recorder) TimingsOf(name string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.timings[name]
}

// Lines returns every recorded line in emission order.
func (r *Recorder) Lines() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.lines...)
}
