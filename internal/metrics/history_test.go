package metrics

import "testing"

func TestSeriesSlidesAtCapacity(t *testing.T) {
	s := NewSeries(60)
	for i := 0; i < 65; i++ {
		s.Append(float64(i))
	}
	got := s.Values()
	if len(got) != 60 {
		t.Fatalf("length: got %d, want 60", len(got))
	}
	for i, v := range got {
		if want := float64(i + 5); v != want {
			t.Fatalf("values[%d]: got %v, want %v (oldest-first window of last 60)", i, v, want)
		}
	}
}

func TestSeriesGrowsUntilCapacity(t *testing.T) {
	s := NewSeries(60)
	if s.Len() != 0 {
		t.Fatalf("new series should be empty, got %d", s.Len())
	}
	s.Append(1)
	s.Append(2)
	got := s.Values()
	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Errorf("partial series: got %v, want [1 2]", got)
	}
}

func TestSeriesValuesIsACopy(t *testing.T) {
	s := NewSeries(4)
	s.Append(1)
	v := s.Values()
	v[0] = 99
	if s.Values()[0] != 1 {
		t.Error("Values must return a copy, not the backing array")
	}
}

func TestSeriesDefaultCapacity(t *testing.T) {
	s := NewSeries(0)
	for i := 0; i < DefaultHistoryLength+10; i++ {
		s.Append(float64(i))
	}
	if s.Len() != DefaultHistoryLength {
		t.Errorf("default capacity: got %d, want %d", s.Len(), DefaultHistoryLength)
	}
}
