package gc

// Roots holds every evaluator-owned root source the mark phase scans each
// cycle, beyond the GC's own arena. The evaluator mutates these directly;
// there is no copy-in/copy-out step.
type Roots struct {
	// Checkpoint is the current dynamic-wind checkpoint chain head.
	Checkpoint *Object

	// OperandStack is the evaluator's value stack, [stbase, sp).
	OperandStack []Value

	// CallInfoContexts is each live call frame's CXT object, from the base
	// of the call-info stack up to (but not including) the frame currently
	// under construction.
	CallInfoContexts []*Object

	// LiteralPools holds the literal pool of every registered compiled
	// procedure (irep), scanned independently of whatever else currently
	// references that irep.
	LiteralPools [][]Value

	Globals      *Object // ENV or DICT mapping name -> value
	Macros       *Object
	CurrentError Value
	Features     Value // a list

	Libraries []Library
}

// Library is one entry of the library table.
type Library struct {
	Name    Value
	Env     *Object
	Exports Value
}

// roots exposes the live Roots for mutation by the embedder.
func (h *Heap) Roots() *Roots { return &h.roots }
