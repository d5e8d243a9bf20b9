package gc

// Small payload accessors used by embedders and tests to read/write variant
// contents without reaching into the unexported payload field directly. Each
// checks the value's tag before the type assertion and returns a plain error
// on a mismatch instead of panicking: a caller handing the wrong variant to
// an accessor is a recoverable usage error, not a GC invariant violation
// (see fatal.go's throw/errf split).

func asPayload[T any](v Value, tt Tag) (*T, error) {
	if v.IsImmediate() || v.obj == nil {
		return nil, errf("gc: expected %s, got an immediate value", tt)
	}
	if v.obj.tt != tt {
		return nil, errf("gc: expected %s, got %s", tt, v.obj.tt)
	}
	return v.obj.payload.(*T), nil
}

func PairCar(v Value) (Value, error) {
	p, err := asPayload[Pair](v, TagPair)
	if err != nil {
		return Value{}, err
	}
	return p.Car, nil
}

func PairCdr(v Value) (Value, error) {
	p, err := asPayload[Pair](v, TagPair)
	if err != nil {
		return Value{}, err
	}
	return p.Cdr, nil
}

func SetPairCar(v Value, car Value) error {
	p, err := asPayload[Pair](v, TagPair)
	if err != nil {
		return err
	}
	p.Car = car
	return nil
}

func SetPairCdr(v Value, cdr Value) error {
	p, err := asPayload[Pair](v, TagPair)
	if err != nil {
		return err
	}
	p.Cdr = cdr
	return nil
}

func DictSet(dict, key, val Value) error {
	d, err := asPayload[Dict](dict, TagDict)
	if err != nil {
		return err
	}
	d.Table[key] = val
	return nil
}

func DictGet(dict, key Value) (Value, bool, error) {
	d, err := asPayload[Dict](dict, TagDict)
	if err != nil {
		return Value{}, false, err
	}
	v, ok := d.Table[key]
	return v, ok, nil
}

func DictLen(dict Value) (int, error) {
	d, err := asPayload[Dict](dict, TagDict)
	if err != nil {
		return 0, err
	}
	return len(d.Table), nil
}

// WeakSet stores weak[key] = val, where key must itself be a heap value (an
// immediate key can never become unreachable, so it is never a useful
// ephemeron key).
func WeakSet(weak, key, val Value) error {
	w, err := asPayload[Weak](weak, TagWeak)
	if err != nil {
		return err
	}
	w.Table[key.obj] = val
	return nil
}

func WeakGet(weak, key Value) (Value, bool, error) {
	w, err := asPayload[Weak](weak, TagWeak)
	if err != nil {
		return Value{}, false, err
	}
	v, ok := w.Table[key.obj]
	return v, ok, nil
}

func WeakLen(weak Value) (int, error) {
	w, err := asPayload[Weak](weak, TagWeak)
	if err != nil {
		return 0, err
	}
	return len(w.Table), nil
}

func VectorRef(vec Value, i int) (Value, error) {
	vv, err := asPayload[Vector](vec, TagVector)
	if err != nil {
		return Value{}, err
	}
	return vv.Data[i], nil
}

func VectorSet(vec Value, i int, v Value) error {
	vv, err := asPayload[Vector](vec, TagVector)
	if err != nil {
		return err
	}
	vv.Data[i] = v
	return nil
}

func VectorLen(vec Value) (int, error) {
	vv, err := asPayload[Vector](vec, TagVector)
	if err != nil {
		return 0, err
	}
	return len(vv.Data), nil
}

func StringValue(s Value) (string, error) {
	so, err := asPayload[StringObj](s, TagString)
	if err != nil {
		return "", err
	}
	return so.Rope.String(), nil
}

func SymbolName(sym Value) (string, error) {
	s, err := asPayload[Symbol](sym, TagSymbol)
	if err != nil {
		return "", err
	}
	if s.Name == nil {
		return "", nil
	}
	so, ok := s.Name.payload.(*StringObj)
	if !ok {
		return "", errf("gc: symbol name object has unexpected tag %s", s.Name.tt)
	}
	return so.Rope.String(), nil
}

func EnvDefine(env Value, id, val *Object) error {
	e, err := asPayload[Env](env, TagEnv)
	if err != nil {
		return err
	}
	e.Vars[id] = val
	return nil
}

func EnvParent(env Value) (Value, error) {
	e, err := asPayload[Env](env, TagEnv)
	if err != nil {
		return Value{}, err
	}
	return objValue(e.Parent), nil
}
