package metrics

// DefaultHistoryLength is the number of samples kept per series.
const DefaultHistoryLength = 60

// Series is a bounded rolling buffer of scalar samples used for trend
// charts. Appending beyond capacity drops the oldest sample. A Series
// is not safe for concurrent use; the sampler owns it and hands out
// copies.
type Series struct {
	cap    int
	values []float64
}

// NewSeries returns an empty series holding at most capacity samples.
// A non-positive capacity falls back to DefaultHistoryLength.
func NewSeries(capacity int) *Series {
	if capacity <= 0 {
		capacity = DefaultHistoryLength
	}
	return &Series{cap: capacity, values: make([]float64, 0, capacity)}
}

// Append pushes v, evicting the oldest sample once the series is full.
func (s *Series) Append(v float64) {
	if len(s.values) == s.cap {
		copy(s.values, s.values[1:])
		s.values[len(s.values)-1] = v
		return
	}
	s.values = append(s.values, v)
}

// Values returns the samples oldest-first. The slice is a copy; callers
// may keep it across ticks.
func (s *Series) Values() []float64 {
	out := make([]float64, len(s.values))
	copy(out, s.values)
	return out
}

// Len reports the number of stored samples.
func (s *Series) Len() int { return len(s.values) }
