package gc

import (
	"golang.org/x/text/unicode/norm"
)

// Rope is the ref-counted string representation shared across STRING
// objects. Several STRING objects may point at the same Rope; it is freed
// only when the last one is finalized. refs is a plain counter, not atomic:
// every mutation happens under the single-mutator, stop-the-world model one
// Heap assumes (the same reasoning applies to CompiledProc.refs).
type Rope struct {
	refs  int32
	bytes []byte
}

// NewRope creates a rope with one reference.
func NewRope(s string) *Rope {
	return &Rope{refs: 1, bytes: []byte(s)}
}

func (r *Rope) Retain() *Rope {
	r.refs++
	return r
}

// release drops one reference, freeing the backing bytes once the count
// reaches zero. Called from STRING's finalizer (variants.go); must not
// allocate GC objects or touch the tracer.
func (r *Rope) release() {
	r.refs--
	if r.refs == 0 {
		r.bytes = nil
	}
}

func (r *Rope) String() string { return string(r.bytes) }

func (r *Rope) Len() int { return len(r.bytes) }

// Slice returns the sub-rope [start, end) in byte offsets, each offset snapped
// backward to the nearest Unicode normalization boundary so a combining-character
// sequence is never split. This is the one place string handling needs
// boundary awareness beyond byte counting, since Scheme source may hand the
// reader arbitrary NFC/NFD text.
func (r *Rope) Slice(start, end int) *Rope {
	start = snapBoundary(r.bytes, start)
	end = snapBoundary(r.bytes, end)
	if start < 0 {
		start = 0
	}
	if end > len(r.bytes) {
		end = len(r.bytes)
	}
	if end < start {
		end = start
	}
	out := make([]byte, end-start)
	copy(out, r.bytes[start:end])
	return &Rope{refs: 1, bytes: out}
}

// Concat builds a new rope holding a copy of r followed by other. This type
// does not keep a tree of shared fragments like a textbook rope; the name
// carries over as the label for a ref-counted shared string handle, not for
// its internal data structure.
func (r *Rope) Concat(other *Rope) *Rope {
	out := make([]byte, 0, len(r.bytes)+len(other.bytes))
	out = append(out, r.bytes...)
	out = append(out, other.bytes...)
	return &Rope{refs: 1, bytes: out}
}

// snapBoundary moves i backward, if necessary, to the start of the nearest
// normalization-safe boundary at or before i.
func snapBoundary(b []byte, i int) int {
	if i <= 0 || i >= len(b) {
		return i
	}
	var iter norm.Iter
	iter.Init(norm.NFC, b)
	last := 0
	for !iter.Done() {
		iter.Next()
		// Pos is an offset into b itself; the segment Next returns is
		// normalized and may differ in length from the input it came from.
		pos := iter.Pos()
		if pos > i {
			return last
		}
		last = pos
	}
	return last
}
