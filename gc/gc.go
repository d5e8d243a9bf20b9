package gc

import "unsafe"

// Disable / Enable toggle whether Collect is a no-op.
func (h *Heap) Disable() { h.disabled = true }
func (h *Heap) Enable()  { h.disabled = false }

// Collect runs one full mark-then-sweep cycle. A no-op while the heap is
// disabled.
func (h *Heap) Collect() {
	if h.disabled {
		return
	}
	h.mark()
	h.sweep()
	h.stats.Collections++
}

// AllocUnsafe allocates a new object of the given variant tag without
// protecting it. The retry ladder: try the backend, then collect-and-retry,
// then morecore-and-retry, then panic — the same shape as mallocgc's retry
// path for a bump allocator backed by a page heap.
func (h *Heap) AllocUnsafe(tt Tag, payload any) *Object {
	if h.opts.Stress {
		h.Collect()
	}
	s := h.backend.alloc()
	if s == nil {
		h.Collect()
		s = h.backend.alloc()
	}
	if s == nil {
		h.backend.morecore(h.alloc, h.opts.UnitsPerPage)
		h.stats.Pages = h.backend.pageCount()
		s = h.backend.alloc()
	}
	if s == nil {
		throw("memory exhausted")
	}
	o := &Object{tt: tt, payload: payload, slot: s}
	s.obj = o
	return o
}

// Alloc allocates and protects a new object in one step.
func (h *Heap) Alloc(tt Tag, payload any) *Object {
	o := h.AllocUnsafe(tt, payload)
	h.arena.protect(objValue(o))
	return o
}

// Protect pushes v onto the root registry; immediates pass through
// unchanged.
func (h *Heap) Protect(v Value) Value { return h.arena.protect(v) }

// Enter returns a checkpoint of the root registry's current length.
func (h *Heap) Enter() int { return h.arena.enter() }

// Leave truncates the root registry back to a mark obtained from Enter.
func (h *Heap) Leave(mark int) { h.arena.leave(mark) }

// Alloca allocates a DATA object wrapping size bytes of scratch memory
// obtained from the heap's allocator shim; the buffer's lifetime tracks the
// DATA object's.
func (h *Heap) Alloca(size int) *Object {
	buf := h.alloc.Malloc(size)
	var ptr unsafe.Pointer
	if len(buf) > 0 {
		ptr = unsafe.Pointer(&buf[0])
	}
	hooks := &DataHooks{
		Name: "alloca",
		Size: uintptr(size),
		Dtor: func(state any, _ unsafe.Pointer) {
			h.alloc.Free(state.([]byte))
		},
	}
	return h.Alloc(TagData, &Data{Hooks: hooks, Ptr: ptr, State: buf})
}
