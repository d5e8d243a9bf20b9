package gc

import "golang.org/x/sys/unix"

// AllocFunc is the single byte-allocator callback every Heap is built on top
// of: buf==nil && size>0 allocates, size==0 frees buf, and both non-nil
// reallocates. It governs only off-heap scratch memory that holds no Go
// pointers: the DATA-wrapped embedder buffers made by Alloca. Heap pages
// and the object cells that carry traced *Object pointers always live
// in ordinary Go-managed slices instead, because Go's own runtime collector
// must be able to see those pointers; handing them to an external allocator
// would hide them from it. See DESIGN.md.
type AllocFunc func(userdata any, buf []byte, size int) []byte

// Allocator wraps an AllocFunc with a malloc/realloc/calloc/free surface,
// funnelling every call through one hook and panicking uniformly on
// exhaustion.
type Allocator struct {
	fn       AllocFunc
	userdata any
}

func NewAllocator(fn AllocFunc, userdata any) *Allocator {
	if fn == nil {
		fn = MmapAllocFunc
	}
	return &Allocator{fn: fn, userdata: userdata}
}

func (a *Allocator) Malloc(size int) []byte {
	if size == 0 {
		return nil
	}
	buf := a.fn(a.userdata, nil, size)
	if buf == nil {
		throw("memory exhausted")
	}
	return buf
}

func (a *Allocator) Calloc(count, size int) []byte {
	buf := a.Malloc(count * size)
	for i := range buf {
		buf[i] = 0
	}
	return buf
}

func (a *Allocator) Realloc(buf []byte, size int) []byte {
	if size == 0 {
		a.Free(buf)
		return nil
	}
	out := a.fn(a.userdata, buf, size)
	if out == nil {
		throw("memory exhausted")
	}
	return out
}

func (a *Allocator) Free(buf []byte) {
	if buf == nil {
		return
	}
	a.fn(a.userdata, buf, 0)
}

// MmapAllocFunc is the default AllocFunc, backing every allocation with an
// anonymous private mmap mapping. Growing or shrinking is implemented as
// allocate-copy-free rather than in-place remap, trading a copy for
// portability across the platforms golang.org/x/sys/unix supports.
func MmapAllocFunc(_ any, buf []byte, size int) []byte {
	if size == 0 {
		if buf != nil {
			unix.Munmap(buf[:cap(buf)]) //nolint:errcheck
		}
		return nil
	}
	out, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil
	}
	if buf != nil {
		n := len(buf)
		if n > size {
			n = size
		}
		copy(out, buf[:n])
		unix.Munmap(buf[:cap(buf)]) //nolint:errcheck
	}
	return out
}
