package gc

// Backend selects which of the two page-management strategies a Heap uses.
// Both implement pageBackend and are observationally equivalent; the choice
// only affects how mark/free state is stored.
type Backend int

const (
	// BackendFreeList is the classical Knuth-style free list, kept as a
	// nil-terminated singly linked list (freelist.go).
	BackendFreeList Backend = iota
	// BackendBitmap stores one mark byte per cell in a side array
	// (bitmap.go).
	BackendBitmap
)

// Options configures a Heap. Zero value is a usable default: free-list
// back-end, 256 cells/page, 7/8 growth threshold, no stress mode.
type Options struct {
	Backend Backend

	// UnitsPerPage is how many object cells a single page holds before
	// morecore is needed.
	UnitsPerPage int

	// GrowthNumerator / GrowthDenominator set the growth threshold: a page
	// is requested after sweep whenever inuse*Denominator >= total*Numerator.
	// Default 7/8.
	GrowthNumerator   int
	GrowthDenominator int

	// Alloc is the allocator shim backing off-heap scratch memory
	// (Alloca buffers). Defaults to MmapAllocFunc.
	Alloc AllocFunc

	// Stress runs a full collection at the top of every allocation.
	Stress bool

	// Debug enables diagnostic printing to stderr.
	Debug bool
}

func (o Options) withDefaults() Options {
	if o.UnitsPerPage <= 0 {
		o.UnitsPerPage = 256
	}
	if o.GrowthNumerator <= 0 {
		o.GrowthNumerator = 7
	}
	if o.GrowthDenominator <= 0 {
		o.GrowthDenominator = 8
	}
	return o
}

// pageBackend is the shared interface both page-management strategies
// implement.
type pageBackend interface {
	// alloc returns a free cell, or nil if no page has room.
	alloc() *slot
	// morecore adds one more page of unitsPerPage cells and links them into
	// the free pool. The page is an ordinary Go slice; it is not obtained
	// through the allocator shim, and the alloc argument is unused.
	morecore(alloc *Allocator, unitsPerPage int)
	// sweepPages finalizes every unmarked cell across all pages, resets
	// survivors to white, and returns (inuse, total) in units.
	sweepPages() (inuse, total int)
	// pageCount reports how many pages have been requested so far.
	pageCount() int
}

// slot is one fixed-size object cell. Every variant occupies exactly one
// slot regardless of its Go-side payload size (CXT/FUNC's
// "inline" arrays are ordinary Go slices owned by the payload instead of
// being packed into the cell, since Go offers no safe way to pack a
// variable-length pointer-bearing array into manually managed memory).
type slot struct {
	obj *Object

	// free-list backend: next free cell, valid only while used == false.
	used bool
	next *slot

	// bitmap backend
	state cellState
}

type cellState uint8

const (
	cellFree cellState = iota
	cellWhite
	cellBlack
)

// Heap owns the page backend, the root registry, the oblist, and the weak
// chain built up during the last mark pass. It is single-owner: no locking,
// matching the assumption of exactly one mutator goroutine per Heap.
type Heap struct {
	opts Options

	backend pageBackend
	alloc   *Allocator
	arena   arena
	oblist  oblist

	roots Roots

	weakChainHead *Object

	disabled bool
	closed   bool
	stats    Stats
}

// Stats is a heap statistics snapshot: not load-bearing for correctness, but
// useful introspection for an embedder deciding when to tune page size or
// growth thresholds.
type Stats struct {
	Pages       int
	InUse       int
	Total       int
	Collections int
}

// Open initializes a new heap.
func Open(opts Options) *Heap {
	opts = opts.withDefaults()
	h := &Heap{opts: opts}
	h.alloc = NewAllocator(opts.Alloc, nil)
	switch opts.Backend {
	case BackendBitmap:
		h.backend = newBitmapBackend()
	default:
		h.backend = newFreeListBackend()
	}
	h.oblist = newOblist()
	return h
}

// Close frees every page and the oblist's storage. Finalizers are NOT run
// here: embedders are expected to have already driven the interpreter to a
// state with no live Scheme state that needs finalizing. Closing an
// already-closed heap returns an error instead of panicking, since a double
// close is a caller bookkeeping mistake, not a GC invariant violation.
func (h *Heap) Close() error {
	if h.closed {
		return errf("gc: heap already closed")
	}
	h.closed = true
	h.backend = nil
	h.arena = arena{}
	h.oblist = oblist{}
	return nil
}

// Stats returns a snapshot of the heap's bookkeeping counters.
func (h *Heap) Stats() Stats { return h.stats }

func (h *Heap) debugf(format string, args ...any) {
	if h.opts.Debug {
		debugPrint(format, args...)
	}
}
