package finger

import (
	"math"

	"github.com/bmharper/ringbuffer"
)

// DefaultWindow is the number of recent counts averaged by a Smoother.
const DefaultWindow = 5

// Smoother averages the most recent finger counts to hide single-frame jitter.
// It is owned by the frame loop and is not safe for concurrent use.
type Smoother struct {
	size   int
	counts ringbuffer.RingP[int]
}

// NewSmoother creates a Smoother over the last size counts.
// Sizes below 1 fall back to DefaultWindow.
func NewSmoother(size int) *Smoother {
	if size < 1 {
		size = DefaultWindow
	}
	return &Smoother{
		size:   size,
		counts: ringbuffer.NewRingP[int](ringSize(size)),
	}
}

// ringSize returns the ring allocation for a window of size values. RingP needs a
// power of two of at least 2 and holds one value less than it allocates.
func ringSize(size int) int {
	n := 2
	for n < size+1 {
		n *= 2
	}
	return n
}

// Add records a new count, evicting the oldest once the window is full.
func (s *Smoother) Add(count int) {
	if s.counts.Len() >= s.size {
		s.counts.Next()
	}
	s.counts.Add(count)
}

// Len returns the number of counts currently in the window.
func (s *Smoother) Len() int {
	return s.counts.Len()
}

// Value returns the mean of the window rounded half to even.
// ok is false when nothing has been observed since creation or the last Reset.
func (s *Smoother) Value() (value int, ok bool) {
	n := s.counts.Len()
	if n == 0 {
		return 0, false
	}
	sum := 0
	for i := 0; i < n; i++ {
		sum += s.counts.Peek(i)
	}
	return int(math.RoundToEven(float64(sum) / float64(n))), true
}

// Reset empties the window.
func (s *Smoother) Reset() {
	s.counts = ringbuffer.NewRingP[int](ringSize(s.size))
}
