package random

import "sync"

// SequenceSource replays scripted values, cycling when exhausted. It exists
// for tests that need to assert exact generator output.
//
// Invariant: Intn(n) always returns a value in [0, n) even when the scripted
// value is out of range (it is reduced modulo n).
type SequenceSource struct {
	mu     sync.Mutex
	ints   []int
	floats []float64
	ii, fi int
}

// NewSequenceSource returns a Source that replays ints for Intn and floats
// for Float64, each cycling independently.
//
// Precondition: at least one of ints/floats must be non-empty for the
// corresponding method to be called.
func NewSequenceSource(ints []int, floats []float64) *SequenceSource {
	return &SequenceSource{ints: ints, floats: floats}
}

func (s *SequenceSource) Intn(n int) int {
	if n <= 0 {
		panic("random: Intn called with n <= 0")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.ints) == 0 {
		panic("random: SequenceSource has no scripted ints")
	}
	v := s.ints[s.ii%len(s.ints)]
	s.ii++
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

func (s *SequenceSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.floats) == 0 {
		panic("random: SequenceSource has no scripted floats")
	}
	v := s.floats[s.fi%len(s.floats)]
	s.fi++
	return v
}
