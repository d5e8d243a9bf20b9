package gc

// marker carries the per-cycle state the mark phase threads through tracing:
// which backend's mark bit to flip, and the weak-object chain built up as
// weak maps are discovered for the ephemeron fixed-point pass below.
type marker struct {
	h *Heap
}

func (h *Heap) isMarked(o *Object) bool {
	if o == nil {
		return true
	}
	if h.opts.Backend == BackendBitmap {
		return o.slot.isMarkedBitmap()
	}
	return o.clr == black
}

func (h *Heap) setMarked(o *Object) {
	if h.opts.Backend == BackendBitmap {
		o.slot.markBitmap()
		return
	}
	o.clr = black
}

// mark runs the full mark phase: scan every root source, trace transitively,
// then resolve the ephemeron fixed point over any weak maps discovered along
// the way.
func (h *Heap) mark() {
	h.weakChainHead = nil
	m := &marker{h: h}

	m.traceValue(objValue(h.roots.Checkpoint))
	for _, v := range h.roots.OperandStack {
		m.traceValue(v)
	}
	for _, cxt := range h.roots.CallInfoContexts {
		m.traceValue(objValue(cxt))
	}
	h.arena.roots(func(o *Object) { m.traceValue(objValue(o)) })
	for _, pool := range h.roots.LiteralPools {
		for _, v := range pool {
			m.traceValue(v)
		}
	}
	m.traceValue(objValue(h.roots.Globals))
	m.traceValue(objValue(h.roots.Macros))
	m.traceValue(h.roots.CurrentError)
	m.traceValue(h.roots.Features)
	for _, lib := range h.roots.Libraries {
		m.traceValue(lib.Name)
		m.traceValue(objValue(lib.Env))
		m.traceValue(lib.Exports)
	}

	h.resolveWeaks(m)
}

// traceValue marks v and its outgoing edges. Chain-prone fields (pair cdr,
// env parent, cxt up, error stack, checkpoint out) are walked with an
// explicit loop instead of recursion so no linear chain can blow the Go
// stack.
func (m *marker) traceValue(v Value) {
	for {
		if v.IsImmediate() {
			return
		}
		o := v.obj
		if o == nil || m.h.isMarked(o) {
			return
		}
		m.h.setMarked(o)

		switch o.tt {
		case TagPair:
			p := o.payload.(*Pair)
			m.traceValue(p.Car)
			v = p.Cdr
			continue

		case TagVector:
			for _, e := range o.payload.(*Vector).Data {
				m.traceValue(e)
			}
			return

		case TagBlob, TagString, TagPort:
			return

		case TagDict:
			d := o.payload.(*Dict)
			for k, val := range d.Table {
				m.traceValue(k)
				m.traceValue(val)
			}
			return

		case TagWeak:
			// Weak maps are not traced now; they are pushed onto the
			// chain and resolved by the fixed-point pass below.
			w := o.payload.(*Weak)
			w.chainNext = m.h.weakChainHead
			m.h.weakChainHead = o
			return

		case TagEnv:
			e := o.payload.(*Env)
			for k, val := range e.Vars {
				m.traceValue(objValue(k))
				m.traceValue(objValue(val))
			}
			if e.Parent == nil {
				return
			}
			v = objValue(e.Parent)
			continue

		case TagID:
			id := o.payload.(*Ident)
			if id.Sym != nil {
				m.traceValue(objValue(id.Sym))
			}
			if id.Str != nil {
				m.traceValue(objValue(id.Str))
			}
			if id.Env == nil {
				return
			}
			v = objValue(id.Env)
			continue

		case TagSymbol:
			s := o.payload.(*Symbol)
			if s.Name == nil {
				return
			}
			v = objValue(s.Name)
			continue

		case TagRecord:
			r := o.payload.(*Record)
			m.traceValue(r.Type)
			v = r.Datum
			continue

		case TagData:
			d := o.payload.(*Data)
			if d.Hooks != nil && d.Hooks.Mark != nil {
				d.Hooks.Mark(d.State, d.Ptr, func(mv Value) { m.traceValue(mv) })
			}
			return

		case TagContext:
			c := o.payload.(*Context)
			for _, r := range c.Regs {
				m.traceValue(r)
			}
			if c.Up == nil {
				return
			}
			v = objValue(c.Up)
			continue

		case TagFunc:
			for _, l := range o.payload.(*Func).Locals {
				m.traceValue(l)
			}
			return

		case TagIrep:
			ir := o.payload.(*Irep)
			if ir.Cxt == nil {
				return
			}
			v = objValue(ir.Cxt)
			continue

		case TagError:
			er := o.payload.(*ErrObj)
			m.traceValue(er.Type)
			m.traceValue(er.Msg)
			m.traceValue(er.Irrs)
			v = er.Stack
			continue

		case TagCheckpoint:
			cp := o.payload.(*Checkpoint)
			if cp.Prev != nil {
				m.traceValue(objValue(cp.Prev))
			}
			m.traceValue(cp.In)
			v = cp.Out
			continue

		default:
			return
		}
	}
}

// resolveWeaks computes a least fixed point: a weak entry's value becomes
// reachable once its key is marked, which may in turn mark further keys in
// other weak maps, so the pass repeats until a full sweep over the chain
// marks nothing new.
func (h *Heap) resolveWeaks(m *marker) {
	for {
		newlyMarked := 0
		for w := h.weakChainHead; w != nil; w = w.payload.(*Weak).chainNext {
			tbl := w.payload.(*Weak).Table
			for k, val := range tbl {
				if !h.isMarked(k) {
					continue
				}
				if val.IsImmediate() || val.obj == nil || h.isMarked(val.obj) {
					continue
				}
				m.traceValue(val)
				newlyMarked++
			}
		}
		if newlyMarked == 0 {
			return
		}
	}
}
