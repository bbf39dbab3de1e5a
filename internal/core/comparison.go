package core

import (
	"github.com/loonlang/loon/internal/utils"
)

// Core value types' implementations of Value.Equal

const (
	MAX_COMPARISON_DEPTH = 200
)

// EqBool is the generic equality-as-boolean test: identity fast path, then
// structural equality. Panics raised by comparison code are converted into
// errors instead of unwinding through protocol dispatch.
func (ctx *Context) EqBool(a, b Value) (result bool, finalErr error) {
	if a == b {
		return true, nil
	}

	defer func() {
		if v := recover(); v != nil {
			finalErr = utils.ConvertPanicValueToError(v)
		}
	}()

	return a.Equal(ctx, b), nil
}

func (NilT) Equal(ctx *Context, other Value) bool {
	_, ok := other.(NilT)
	return ok
}

func (boolean Bool) Equal(ctx *Context, other Value) bool {
	otherBool, ok := other.(Bool)
	return ok && otherBool == boolean
}

func (i Int) Equal(ctx *Context, other Value) bool {
	otherInt, ok := other.(Int)
	return ok && otherInt == i
}

func (f Float) Equal(ctx *Context, other Value) bool {
	otherFloat, ok := other.(Float)
	return ok && otherFloat == f
}

func (s Str) Equal(ctx *Context, other Value) bool {
	otherStr, ok := other.(Str)
	return ok && otherStr == s
}

func (NotImplementedT) Equal(ctx *Context, other Value) bool {
	_, ok := other.(NotImplementedT)
	return ok
}

func (tuple *Tuple) Equal(ctx *Context, other Value) bool {
	return tupleEqual(ctx, tuple, other, 0)
}

func tupleEqual(ctx *Context, tuple *Tuple, other Value, depth int) bool {
	if depth > MAX_COMPARISON_DEPTH {
		panic(ErrMaximumComparisonDepthReached)
	}

	otherTuple, ok := other.(*Tuple)
	if !ok || len(tuple.elements) != len(otherTuple.elements) {
		return false
	}
	for i, e := range tuple.elements {
		if !elementEqual(ctx, e, otherTuple.elements[i], depth+1) {
			return false
		}
	}
	return true
}

func (list *List) Equal(ctx *Context, other Value) bool {
	return listEqual(ctx, list, other, 0)
}

func listEqual(ctx *Context, list *List, other Value, depth int) bool {
	if depth > MAX_COMPARISON_DEPTH {
		panic(ErrMaximumComparisonDepthReached)
	}

	otherList, ok := other.(*List)
	if !ok || len(list.elements) != len(otherList.elements) {
		return false
	}
	for i, e := range list.elements {
		if !elementEqual(ctx, e, otherList.elements[i], depth+1) {
			return false
		}
	}
	return true
}

func (d *Dict) Equal(ctx *Context, other Value) bool {
	return dictEqual(ctx, d, other, 0)
}

func dictEqual(ctx *Context, d *Dict, other Value, depth int) bool {
	if depth > MAX_COMPARISON_DEPTH {
		panic(ErrMaximumComparisonDepthReached)
	}

	otherDict, ok := other.(*Dict)
	if !ok || len(d.keys) != len(otherDict.keys) {
		return false
	}
	for _, k := range d.keys {
		otherValue, present := otherDict.entries[k]
		if !present || !elementEqual(ctx, d.entries[k], otherValue, depth+1) {
			return false
		}
	}
	return true
}

func (s *Slice) Equal(ctx *Context, other Value) bool {
	otherSlice, ok := other.(*Slice)
	if !ok {
		return false
	}
	return elementEqual(ctx, s.Start, otherSlice.Start, 1) &&
		elementEqual(ctx, s.Stop, otherSlice.Stop, 1) &&
		elementEqual(ctx, s.Step, otherSlice.Step, 1)
}

func elementEqual(ctx *Context, a, b Value, depth int) bool {
	if a == b {
		return true
	}
	switch a := a.(type) {
	case *Tuple:
		return tupleEqual(ctx, a, b, depth)
	case *List:
		return listEqual(ctx, a, b, depth)
	case *Dict:
		return dictEqual(ctx, a, b, depth)
	default:
		return a.Equal(ctx, b)
	}
}
