package gc

// arena is the embedder's explicit shadow stack of protected object
// pointers. It substitutes for precise scanning of host-language stack
// frames: anything reachable only from a host local must be pushed here
// before the next safe point.
type arena struct {
	stack []*Object
}

// protect pushes v onto the arena, doubling (2n+1) on overflow. Immediates
// pass through unchanged.
func (a *arena) protect(v Value) Value {
	if v.IsImmediate() || v.obj == nil {
		return v
	}
	if len(a.stack) == cap(a.stack) {
		grown := make([]*Object, len(a.stack), 2*cap(a.stack)+1)
		copy(grown, a.stack)
		a.stack = grown
	}
	a.stack = append(a.stack, v.obj)
	return v
}

// enter returns a checkpoint of the arena's current length.
func (a *arena) enter() int { return len(a.stack) }

// leave truncates the arena back to a mark obtained from enter. leave(enter())
// is a no-op and enter values form a LIFO stack.
func (a *arena) leave(mark int) {
	if mark < 0 || mark > len(a.stack) {
		throw("arena: leave with out-of-range mark")
	}
	// Drop references promptly so sweep doesn't see stale pointers into
	// slots the arena no longer considers live.
	for i := mark; i < len(a.stack); i++ {
		a.stack[i] = nil
	}
	a.stack = a.stack[:mark]
}

func (a *arena) roots(yield func(*Object)) {
	for _, o := range a.stack {
		if o != nil {
			yield(o)
		}
	}
}
