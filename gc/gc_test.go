package gc

import "testing"

func newTestHeap(t *testing.T) *Heap {
	t.Helper()
	h := Open(Options{UnitsPerPage: 64})
	t.Cleanup(func() { _ = h.Close() })
	return h
}

// A 10,000-element pair chain survives while rooted, and tracing must not
// blow the Go stack; once unrooted, a collection reclaims all of it.
func TestLinearPairChain(t *testing.T) {
	h := newTestHeap(t)

	// NewPair protects every cons as it's built (the safe, default path),
	// so capture the mark before construction: Leave(mark) afterwards then
	// drops the whole chain in one shot, exactly like a real embedder
	// trimming the arena back past a finished construction.
	mark := h.Enter()
	const n = 10000
	head := Null
	for i := 0; i < n; i++ {
		head = h.NewPair(Int(int64(i)), head)
	}

	h.Collect()

	count := 0
	for cur := head; !cur.IsImmediate(); {
		next, err := PairCdr(cur)
		if err != nil {
			t.Fatalf("PairCdr: %v", err)
		}
		count++
		cur = next
	}
	if count != n {
		t.Fatalf("expected %d live pairs after collect, got %d", n, count)
	}

	h.Leave(mark)
	h.Collect()
	h.Collect() // idempotence: the second collect must reclaim nothing new

	if h.Stats().InUse != 0 {
		t.Fatalf("expected 0 objects in use after dropping the chain, got %d", h.Stats().InUse)
	}
}

// Scenario 2: a self-cycle (car=nil, cdr=self) survives while protected and
// is reclaimed exactly once it's unprotected.
func TestSelfCyclePair(t *testing.T) {
	h := newTestHeap(t)

	mark := h.Enter()
	a := h.NewPair(Null, Null)
	if err := SetPairCdr(a, a); err != nil {
		t.Fatalf("SetPairCdr: %v", err)
	}

	h.Collect()
	if h.Stats().InUse < 1 {
		t.Fatalf("expected the protected cycle to survive")
	}

	h.Leave(mark)
	h.Collect()
	if h.Stats().InUse != 0 {
		t.Fatalf("expected the cycle to be fully reclaimed once unprotected, inuse=%d", h.Stats().InUse)
	}
}

func TestBitmapBackendSameBehavior(t *testing.T) {
	h := Open(Options{Backend: BackendBitmap, UnitsPerPage: 64})
	defer h.Close()

	mark := h.Enter()
	a := h.NewPair(Int(1), Int(2))
	_ = a
	h.Collect()
	if h.Stats().InUse != 1 {
		t.Fatalf("expected 1 live object, got %d", h.Stats().InUse)
	}
	h.Leave(mark)
	h.Collect()
	if h.Stats().InUse != 0 {
		t.Fatalf("expected 0 live objects after unrooting, got %d", h.Stats().InUse)
	}
}

// A payload accessor given a value of the wrong variant returns an error
// instead of panicking on the underlying type assertion.
func TestAccessorRejectsWrongTag(t *testing.T) {
	h := newTestHeap(t)

	mark := h.Enter()
	vec := h.NewVector(nil)
	h.Leave(mark)

	if _, err := PairCar(vec); err == nil {
		t.Fatalf("expected PairCar on a VECTOR to return an error")
	}
	if _, err := PairCdr(Int(1)); err == nil {
		t.Fatalf("expected PairCdr on an immediate value to return an error")
	}
}

// Closing an already-closed heap returns an error rather than panicking.
func TestCloseTwiceReturnsError(t *testing.T) {
	h := Open(Options{UnitsPerPage: 64})
	if err := h.Close(); err != nil {
		t.Fatalf("expected the first Close to succeed, got %v", err)
	}
	if err := h.Close(); err == nil {
		t.Fatalf("expected closing an already-closed heap to return an error")
	}
}

func TestDisabledCollectIsNoop(t *testing.T) {
	h := newTestHeap(t)
	a := h.NewPair(Int(1), Int(2))
	_ = a
	before := h.Stats().Collections
	h.Disable()
	h.Collect()
	if h.Stats().Collections != before {
		t.Fatalf("Collect should be a no-op while disabled")
	}
	h.Enable()
	h.Collect()
	if h.Stats().Collections != before+1 {
		t.Fatalf("Collect should run once re-enabled")
	}
}
