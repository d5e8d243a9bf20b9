package gc

import "unsafe"

// Pair is a cons cell: the only variant the reader/evaluator allocates in
// bulk, hence the tail-loop requirement on Cdr in mark.go.
type Pair struct {
	Car, Cdr Value
}

// Vector owns its backing array; VECTOR's finalizer drops the reference so
// Go's own collector can reclaim it.
type Vector struct {
	Data []Value
}

// Blob is a byte vector (R7RS bytevector).
type Blob struct {
	Data []byte
}

// StringObj wraps a ref-counted Rope (rope.go). Several STRING objects may
// share one Rope; the finalizer decrements the shared ref count.
type StringObj struct {
	Rope *Rope
}

// Dict is a general-purpose Value->Value hash map, backed by Go's builtin
// map since Value is a plain comparable struct (see DESIGN.md for why a
// hand-rolled bucket table wasn't worth the risk here).
type Dict struct {
	Table map[Value]Value
}

// Weak is an ephemeron map: Table[key] is retained only while key is
// reachable through some path that does not pass through this map (see
// mark.go's fixed-point pass). chainNext is transient scratch state: during
// one mark cycle every Weak object discovered by the tracer is pushed onto
// heap.weakChainHead using this field, then cleared by sweep.
type Weak struct {
	Table     map[*Object]Value
	chainNext *Object
}

// Env binds identifiers to identifiers and chains to an optional lexical
// parent.
type Env struct {
	Vars   map[*Object]*Object
	Parent *Object // another ENV object, or nil
}

// Ident (spec's ID) is either a symbol reference resolved against a lexical
// Env, or a bare wrapper around a STRING object.
type Ident struct {
	Sym *Object // SYMBOL object, or nil
	Str *Object // STRING object, when this ID wraps a string directly
	Env *Object // ENV object, or nil
}

// Symbol is an interned name; Name points at the STRING object holding its
// spelling. The oblist (symtab.go) is the only thing that interns these.
type Symbol struct {
	Name *Object
}

// Record is a user-defined record instance: a type descriptor Value plus an
// opaque datum Value (commonly a VECTOR of fields).
type Record struct {
	Type  Value
	Datum Value
}

// DataHooks is the embedder-supplied vtable for a DATA object: how to trace
// any GC values it owns and how to tear it down when collected.
type DataHooks struct {
	Name string
	Mark func(state any, ptr unsafe.Pointer, markCB func(Value))
	Dtor func(state any, ptr unsafe.Pointer)
	Size uintptr
}

// Data wraps an opaque embedder pointer plus the vtable describing how to
// trace and finalize it.
type Data struct {
	Hooks *DataHooks
	Ptr   unsafe.Pointer
	State any
}

// Context (CXT) is a lexical register frame. Regs is logically "inline" in
// the original C layout; here it is an ordinary Go slice owned by the
// Context value itself (Go gives no safe way to pack
// a variable-length array of pointer-containing Values directly into a GC
// cell without unsafe tricks, and the observable tracing/finalization
// behavior is identical either way).
type Context struct {
	Regs []Value
	Up   *Object // parent CXT, or nil
}

// Func is a native closure: Locals is the closed-over register set (see the
// Context note on inline-vs-slice storage), Native is the host callback,
// untraced since it is not a GC value.
type Func struct {
	Locals []Value
	Native func(args []Value) Value
}

// CompiledProc is the external, ref-counted compiled procedure body an IREP
// points at. The GC only ever increments/decrements this count; the bytecode
// payload itself belongs to the evaluator/compiler, out of scope here.
type CompiledProc struct {
	refs int32
}

func (p *CompiledProc) Retain() { p.refs++ }
func (p *CompiledProc) release() int32 {
	p.refs--
	return p.refs
}

// Irep is a bytecode closure: a ref-counted compiled body plus the captured
// parent context.
type Irep struct {
	Proc *CompiledProc
	Cxt  *Object // CXT object, or nil
}

// Port wraps host port state; the GC never looks inside it — I/O ports are
// an external collaborator, not a traced structure.
type Port struct {
	State any
}

// ErrObj is a raised Scheme condition.
type ErrObj struct {
	Type  Value
	Msg   Value
	Irrs  Value
	Stack Value
}

// Checkpoint (CP) is a dynamic-wind record. Out is traced via the tail-loop
// convention described in mark.go.
type Checkpoint struct {
	Prev *Object // another CP, or nil
	In   Value
	Out  Value
}

// finalize runs a variant's secondary-storage teardown exactly once. It
// must not allocate and must not touch the tracer.
func finalize(o *Object) {
	switch o.tt {
	case TagVector:
		o.payload.(*Vector).Data = nil
	case TagBlob:
		o.payload.(*Blob).Data = nil
	case TagString:
		o.payload.(*StringObj).Rope.release()
	case TagDict:
		o.payload.(*Dict).Table = nil
	case TagWeak:
		o.payload.(*Weak).Table = nil
	case TagEnv:
		o.payload.(*Env).Vars = nil
	case TagData:
		d := o.payload.(*Data)
		if d.Hooks != nil && d.Hooks.Dtor != nil {
			d.Hooks.Dtor(d.State, d.Ptr)
		}
	case TagIrep:
		ir := o.payload.(*Irep)
		if ir.Proc != nil {
			ir.Proc.release()
		}
	default:
		// PAIR, SYMBOL, ID, RECORD, CONTEXT, FUNC, PORT, ERROR, CHECKPOINT:
		// payload is inline or not owned by this object; nothing to do.
	}
}
