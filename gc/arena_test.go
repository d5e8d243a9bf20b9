package gc

import "testing"

// Arena discipline: leave(enter()) is a no-op, and nested enter/leave marks
// behave as a LIFO stack.
func TestArenaLeaveOfEnterIsNoop(t *testing.T) {
	h := newTestHeap(t)

	h.NewPair(Int(1), Null)
	before := h.Enter()

	mark := h.Enter()
	h.Leave(mark)

	if h.Enter() != before {
		t.Fatalf("expected leave(enter()) to change nothing, before=%d after=%d", before, h.Enter())
	}
}

func TestArenaNestedMarksAreLIFO(t *testing.T) {
	h := newTestHeap(t)

	outer := h.Enter()
	h.NewPair(Int(1), Null)

	inner := h.Enter()
	h.NewPair(Int(2), Null)
	h.NewPair(Int(3), Null)

	h.Leave(inner)
	h.Collect()
	if h.Stats().InUse != 1 {
		t.Fatalf("expected only the outer pair to survive after leaving the inner mark, got %d", h.Stats().InUse)
	}

	h.Leave(outer)
	h.Collect()
	if h.Stats().InUse != 0 {
		t.Fatalf("expected nothing left live after leaving the outer mark, got %d", h.Stats().InUse)
	}
}

func TestArenaLeaveOutOfRangeThrows(t *testing.T) {
	h := newTestHeap(t)

	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected Leave with an out-of-range mark to panic")
		}
	}()
	h.Leave(1000)
}

func TestArenaProtectIgnoresImmediates(t *testing.T) {
	h := newTestHeap(t)

	mark := h.Enter()
	h.Protect(Int(42))
	h.Protect(Bool(true))
	h.Protect(Null)
	if h.Enter() != mark {
		t.Fatalf("expected protecting immediates to leave the arena depth unchanged")
	}
	h.Leave(mark)
}
