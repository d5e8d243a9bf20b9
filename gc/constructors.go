package gc

// This file collects the small, protected-allocation constructors an
// embedder (or a test) uses to build each variant, on top of the generic
// Alloc/AllocUnsafe entry points in gc.go.

func (h *Heap) NewPair(car, cdr Value) Value {
	return objValue(h.Alloc(TagPair, &Pair{Car: car, Cdr: cdr}))
}

func (h *Heap) NewVector(data []Value) Value {
	return objValue(h.Alloc(TagVector, &Vector{Data: data}))
}

func (h *Heap) NewBlob(data []byte) Value {
	return objValue(h.Alloc(TagBlob, &Blob{Data: data}))
}

func (h *Heap) NewString(s string) Value {
	return objValue(h.Alloc(TagString, &StringObj{Rope: NewRope(s)}))
}

// NewStringFromRope shares an existing rope, retaining a reference.
func (h *Heap) NewStringFromRope(r *Rope) Value {
	return objValue(h.Alloc(TagString, &StringObj{Rope: r.Retain()}))
}

func (h *Heap) NewDict() Value {
	return objValue(h.Alloc(TagDict, &Dict{Table: make(map[Value]Value)}))
}

func (h *Heap) NewWeak() Value {
	return objValue(h.Alloc(TagWeak, &Weak{Table: make(map[*Object]Value)}))
}

func (h *Heap) NewEnv(parent *Object) Value {
	return objValue(h.Alloc(TagEnv, &Env{Vars: make(map[*Object]*Object), Parent: parent}))
}

func (h *Heap) NewRecord(typ, datum Value) Value {
	return objValue(h.Alloc(TagRecord, &Record{Type: typ, Datum: datum}))
}

func (h *Heap) NewData(hooks *DataHooks, state any) Value {
	return objValue(h.Alloc(TagData, &Data{Hooks: hooks, State: state}))
}

func (h *Heap) NewContext(regc int, up *Object) Value {
	return objValue(h.Alloc(TagContext, &Context{Regs: make([]Value, regc), Up: up}))
}

func (h *Heap) NewFunc(localc int, native func(args []Value) Value) Value {
	return objValue(h.Alloc(TagFunc, &Func{Locals: make([]Value, localc), Native: native}))
}

func (h *Heap) NewIrep(proc *CompiledProc, cxt *Object) Value {
	proc.Retain()
	return objValue(h.Alloc(TagIrep, &Irep{Proc: proc, Cxt: cxt}))
}

func (h *Heap) NewPort(state any) Value {
	return objValue(h.Alloc(TagPort, &Port{State: state}))
}

func (h *Heap) NewError(typ, msg, irrs, stack Value) Value {
	return objValue(h.Alloc(TagError, &ErrObj{Type: typ, Msg: msg, Irrs: irrs, Stack: stack}))
}

func (h *Heap) NewCheckpoint(prev *Object, in, out Value) Value {
	return objValue(h.Alloc(TagCheckpoint, &Checkpoint{Prev: prev, In: in, Out: out}))
}

// Intern returns the SYMBOL object for name, allocating and interning a
// fresh one the first time name is seen since the last time it was
// collected.
func (h *Heap) Intern(name string) Value {
	if sym, ok := h.oblist.lookup(name); ok {
		return h.Protect(objValue(sym))
	}
	mark := h.Enter()
	nameObj := h.Alloc(TagString, &StringObj{Rope: NewRope(name)})
	symObj := h.AllocUnsafe(TagSymbol, &Symbol{Name: nameObj})
	h.Leave(mark)
	h.oblist.intern(name, symObj)
	return h.Protect(objValue(symObj))
}
