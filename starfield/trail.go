package starfield

import "github.com/jakecoffman/cp"

// Point is one snapshot of a star: plane position plus depth.
type Point struct {
	Pos cp.Vector
	Z   float64
}

// Trail is a fixed-capacity FIFO of recent snapshots. Pushing onto a full
// trail evicts the oldest entry.
type Trail struct {
	buf  []Point
	head int
	n    int
}

func NewTrail(capacity int) Trail {
	if capacity < 1 {
		capacity = 1
	}
	return Trail{buf: make([]Point, capacity)}
}

func (t *Trail) Push(p Point) {
	if len(t.buf) == 0 {
		return
	}
	if t.n < len(t.buf) {
		t.buf[(t.head+t.n)%len(t.buf)] = p
		t.n++
		return
	}
	t.buf[t.head] = p
	t.head = (t.head + 1) % len(t.buf)
}

// At returns the i-th snapshot, 0 being the oldest.
func (t *Trail) At(i int) Point {
	return t.buf[(t.head+i)%len(t.buf)]
}

func (t *Trail) Len() int { return t.n }

func (t *Trail) Cap() int { return len(t.buf) }

func (t *Trail) Reset() {
	t.head = 0
	t.n = 0
}

// Points copies the trail out oldest first.
func (t *Trail) Points() []Point {
	out := make([]Point, t.n)
	for i := range out {
		out[i] = t.At(i)
	}
	return out
}
