package history

import (
	"sync"

	"housesim/internal/model"
)

// Recorder keeps the per-tick metrics samples of a run in memory so that
// late-joining consumers (e.g. a dashboard client connecting mid-run) can
// catch up on the trajectory so far.
type Recorder struct {
	mu      sync.RWMutex
	samples []model.Sample
}

func New() *Recorder {
	return &Recorder{}
}

// Record appends one sample. Samples arrive in tick order.
func (r *Recorder) Record(s model.Sample) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.samples = append(r.samples, s)
}

// Len returns the number of recorded samples.
func (r *Recorder) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.samples)
}

// All returns a copy of every recorded sample.
func (r *Recorder) All() []model.Sample {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Sample, len(r.samples))
	copy(out, r.samples)
	return out
}

// Tail returns a copy of the most recent n samples.
func (r *Recorder) Tail(n int) []model.Sample {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if n > len(r.samples) {
		n = len(r.samples)
	}
	out := make([]model.Sample, n)
	copy(out, r.samples[len(r.samples)-n:])
	return out
}

// ForDay returns copies of the samples recorded for the given simulated day.
func (r *Recorder) ForDay(day int) []model.Sample {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []model.Sample
	for _, s := range r.samples {
		if s.Day == day {
			out = append(out, s)
		}
	}
	return out
}

// Reset discards all recorded samples.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.samples = nil
}
