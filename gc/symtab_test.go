package gc

import "testing"

// Interning "foo", dropping every reference, and collecting makes a later
// lookup mint a fresh (distinct) symbol object.
func TestSymbolGC(t *testing.T) {
	h := newTestHeap(t)

	mark := h.Enter()
	first := h.Intern("foo")
	firstObj := first.Obj()
	h.Leave(mark)

	h.Collect()

	if _, ok := h.oblist.lookup("foo"); ok {
		t.Fatalf("expected the oblist entry for foo to be purged once unreachable")
	}

	second := h.Intern("foo")
	if second.Obj() == firstObj {
		t.Fatalf("expected a fresh symbol object after the old one was collected")
	}
}

func TestInternReturnsSameObjectWhileLive(t *testing.T) {
	h := newTestHeap(t)

	a := h.Intern("bar")
	b := h.Intern("bar")
	if a.Obj() != b.Obj() {
		t.Fatalf("expected repeated Intern of a live symbol to return the same object")
	}
	h.Collect()
	c := h.Intern("bar")
	if a.Obj() != c.Obj() {
		t.Fatalf("expected the symbol to survive a collection while still referenced")
	}
}
