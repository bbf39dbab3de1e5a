package core

import (
	"math"
)

// Overflow limit of counter-based operations. A variable so that tests can
// lower it.
var maxSequenceIndex = math.MaxInt

// Sequence Protocol
//
// The sequence protocol resolves generic sequence operations (length,
// indexing, slicing, concatenation, repetition, membership, in-place
// mutation) against arbitrary values at run time. Types participate by
// providing a method table through their sequence slot; operations that a
// type does not provide natively fall back, in a fixed order, to the generic
// arithmetic operators or to the iteration protocol.

// SequenceMethods is the method table of the sequence protocol: a fixed
// record of optional operation slots describing what a type natively
// supports. A nil value passed to AssItem means deletion.
type SequenceMethods struct {
	Length        func(ctx *Context, seq *Sequence) (int, error)
	Concat        func(ctx *Context, seq *Sequence, other Value) (Value, error)
	Repeat        func(ctx *Context, seq *Sequence, n int) (Value, error)
	Item          func(ctx *Context, seq *Sequence, i int) (Value, error)
	AssItem       func(ctx *Context, seq *Sequence, i int, value Value) error
	Contains      func(ctx *Context, seq *Sequence, target Value) (bool, error)
	InplaceConcat func(ctx *Context, seq *Sequence, other Value) (Value, error)
	InplaceRepeat func(ctx *Context, seq *Sequence, n int) (Value, error)
}

var notImplementedSequenceMethods = &SequenceMethods{}

// NotImplementedSequenceMethods returns the shared method table with all
// slots absent. It is never mutated and never allocated per instance.
func NotImplementedSequenceMethods() *SequenceMethods {
	return notImplementedSequenceMethods
}

// A Sequence is a short-lived view over a value, through the sequence
// protocol. It is created per call site and must not be shared between
// goroutines: the memoized method table is a plain field.
type Sequence struct {
	Obj Value

	//lazily computed, nil until the first call to Methods
	methods *SequenceMethods
}

func SequenceFrom(obj Value) *Sequence {
	return &Sequence{Obj: obj}
}

// SequenceWithMethods creates a view with a caller-supplied method table,
// bypassing dynamic resolution. Used when the concrete type and its table are
// already known.
func SequenceWithMethods(obj Value, methods *SequenceMethods) *Sequence {
	return &Sequence{Obj: obj, methods: methods}
}

// Methods resolves and memoizes the method table of the value's type:
// the type's ancestry is walked most-derived first and the first ancestor
// providing a sequence slot wins. Repeated calls return the same table.
func (s *Sequence) Methods(ctx *Context) *SequenceMethods {
	if s.methods != nil {
		return s.methods
	}

	typ := s.Obj.Type(ctx)
	if provider, ok := typ.ResolveSequenceProvider(); ok {
		s.methods = provider(s.Obj)
	} else {
		s.methods = notImplementedSequenceMethods
	}

	logger := ctx.Logger()
	logger.Trace().
		Str("type", typ.Name()).
		Bool("implemented", s.methods != notImplementedSequenceMethods).
		Msg("sequence method table resolved")

	return s.methods
}

// HasProtocol is the sole test of sequence-ness: true iff the resolved
// table's Item slot is present.
func (s *Sequence) HasProtocol(ctx *Context) bool {
	return s.Methods(ctx).Item != nil
}

func (s *Sequence) TryProtocol(ctx *Context) error {
	if !s.HasProtocol(ctx) {
		return FmtTypeError("'%s' is not a sequence", s.Obj.Type(ctx).Name())
	}
	return nil
}

func (s *Sequence) Length(ctx *Context) (int, error) {
	if f := s.Methods(ctx).Length; f != nil {
		return f(ctx, s)
	}
	return 0, FmtTypeError(
		"'%s' is not a sequence or has no len()", s.Obj.Type(ctx).Name())
}

func (s *Sequence) Concat(ctx *Context, other Value) (Value, error) {
	if f := s.Methods(ctx).Concat; f != nil {
		return f(ctx, s, other)
	}

	// if both arguments appear to be sequences, try fallback to generic
	// addition
	if s.HasProtocol(ctx) && SequenceFrom(other).HasProtocol(ctx) {
		ret, err := ctx.Add(s.Obj, other)
		if err != nil {
			return nil, err
		}
		if !IsNotImplemented(ret) {
			return ret, nil
		}
	}
	return nil, FmtTypeError(
		"'%s' object can't be concatenated", s.Obj.Type(ctx).Name())
}

func (s *Sequence) Repeat(ctx *Context, n int) (Value, error) {
	if f := s.Methods(ctx).Repeat; f != nil {
		return f(ctx, s, n)
	}

	// try fallback to generic multiplication
	if s.HasProtocol(ctx) {
		ret, err := ctx.Multiply(s.Obj, Int(n))
		if err != nil {
			return nil, err
		}
		if !IsNotImplemented(ret) {
			return ret, nil
		}
	}
	return nil, FmtTypeError(
		"'%s' object can't be repeated", s.Obj.Type(ctx).Name())
}

func (s *Sequence) InplaceConcat(ctx *Context, other Value) (Value, error) {
	if f := s.Methods(ctx).InplaceConcat; f != nil {
		return f(ctx, s, other)
	}
	if f := s.Methods(ctx).Concat; f != nil {
		return f(ctx, s, other)
	}

	if s.HasProtocol(ctx) && SequenceFrom(other).HasProtocol(ctx) {
		ret, err := ctx.InplaceAdd(s.Obj, other)
		if err != nil {
			return nil, err
		}
		if !IsNotImplemented(ret) {
			return ret, nil
		}
	}
	return nil, FmtTypeError(
		"'%s' object can't be concatenated", s.Obj.Type(ctx).Name())
}

func (s *Sequence) InplaceRepeat(ctx *Context, n int) (Value, error) {
	if f := s.Methods(ctx).InplaceRepeat; f != nil {
		return f(ctx, s, n)
	}
	if f := s.Methods(ctx).Repeat; f != nil {
		return f(ctx, s, n)
	}

	if s.HasProtocol(ctx) {
		ret, err := ctx.InplaceMultiply(s.Obj, Int(n))
		if err != nil {
			return nil, err
		}
		if !IsNotImplemented(ret) {
			return ret, nil
		}
	}
	return nil, FmtTypeError(
		"'%s' object can't be repeated", s.Obj.Type(ctx).Name())
}

func (s *Sequence) GetItem(ctx *Context, i int) (Value, error) {
	if f := s.Methods(ctx).Item; f != nil {
		return f(ctx, s, i)
	}
	return nil, FmtTypeError(
		"'%s' is not a sequence or does not support indexing", s.Obj.Type(ctx).Name())
}

func (s *Sequence) assItem(ctx *Context, i int, value Value) error {
	if f := s.Methods(ctx).AssItem; f != nil {
		return f(ctx, s, i, value)
	}
	verb := "deletion"
	if value != nil {
		verb = "assignment"
	}
	return FmtTypeError(
		"'%s' is not a sequence or doesn't support item %s", s.Obj.Type(ctx).Name(), verb)
}

func (s *Sequence) SetItem(ctx *Context, i int, value Value) error {
	return s.assItem(ctx, i, value)
}

func (s *Sequence) DelItem(ctx *Context, i int) error {
	return s.assItem(ctx, i, nil)
}

// GetSlice reads s.Obj[start:stop] through the mapping protocol's subscript
// slot: slice access is a special case of subscripting, never of native
// sequence indexing.
func (s *Sequence) GetSlice(ctx *Context, start, stop int) (Value, error) {
	if provider, ok := s.Obj.Type(ctx).ResolveMappingProvider(); ok {
		mp := provider(s.Obj)
		if mp.Subscript != nil {
			return mp.Subscript(ctx, s.Obj, NewSlice(Int(start), Int(stop), Nil))
		}
	}
	return nil, FmtTypeError("'%s' object is unsliceable", s.Obj.Type(ctx).Name())
}

func (s *Sequence) assSlice(ctx *Context, start, stop int, value Value) error {
	if provider, ok := s.Obj.Type(ctx).ResolveMappingProvider(); ok {
		mp := provider(s.Obj)
		if mp.AssSubscript != nil {
			return mp.AssSubscript(ctx, s.Obj, NewSlice(Int(start), Int(stop), Nil), value)
		}
	}
	verb := "deletion"
	if value != nil {
		verb = "assignment"
	}
	return FmtTypeError(
		"'%s' object doesn't support slice %s", s.Obj.Type(ctx).Name(), verb)
}

func (s *Sequence) SetSlice(ctx *Context, start, stop int, value Value) error {
	return s.assSlice(ctx, start, stop, value)
}

func (s *Sequence) DelSlice(ctx *Context, start, stop int) error {
	return s.assSlice(ctx, start, stop, nil)
}

// Tuple coerces the value into a tuple. The value itself is returned if its
// exact type is tuple; a list's backing storage is copied; any other value is
// drained through the iteration protocol.
func (s *Sequence) Tuple(ctx *Context) (Value, error) {
	if s.Obj.Type(ctx).Is(TUPLE_TYPE) {
		return s.Obj, nil
	}
	if s.Obj.Type(ctx).Is(LIST_TYPE) {
		return NewTuple(s.Obj.(*List).GetOrBuildElements(ctx)), nil
	}

	it, err := GetIterator(ctx, s.Obj)
	if err != nil {
		return nil, err
	}
	elements, err := IterateAll(ctx, it)
	if err != nil {
		return nil, err
	}
	return NewTuple(elements), nil
}

// List coerces the value into a new list, a defensive copy is always
// produced.
func (s *Sequence) List(ctx *Context) (Value, error) {
	list := NewList(nil)
	if err := list.Extend(ctx, s.Obj); err != nil {
		return nil, err
	}
	return list, nil
}

// Contains tests membership: the native contains slot if present, otherwise
// linear iteration with the generic equality test, short-circuiting on the
// first match.
func (s *Sequence) Contains(ctx *Context, target Value) (bool, error) {
	if f := s.Methods(ctx).Contains; f != nil {
		return f(ctx, s, target)
	}

	it, err := GetIterator(ctx, s.Obj)
	if err != nil {
		return false, err
	}

	for it.Next(ctx) {
		equal, err := ctx.EqBool(it.Current(ctx), target)
		if err != nil {
			return false, err
		}
		if equal {
			return true, nil
		}
	}
	return false, it.Err()
}

// Count counts the elements equal to target. It always iterates, even if the
// type has a native contains slot.
func (s *Sequence) Count(ctx *Context, target Value) (int, error) {
	n := 0

	it, err := GetIterator(ctx, s.Obj)
	if err != nil {
		return 0, err
	}

	for it.Next(ctx) {
		equal, err := ctx.EqBool(it.Current(ctx), target)
		if err != nil {
			return 0, err
		}
		if equal {
			if n == maxSequenceIndex {
				return 0, NewOverflowError("index exceeds C integer size")
			}
			n++
		}
	}
	if err := it.Err(); err != nil {
		return 0, err
	}
	return n, nil
}

// Index returns the zero-based position of the first element equal to
// target. It always iterates.
func (s *Sequence) Index(ctx *Context, target Value) (int, error) {
	index := -1

	it, err := GetIterator(ctx, s.Obj)
	if err != nil {
		return 0, err
	}

	for it.Next(ctx) {
		if index == maxSequenceIndex {
			return 0, NewOverflowError("index exceeds C integer size")
		}
		index++

		equal, err := ctx.EqBool(it.Current(ctx), target)
		if err != nil {
			return 0, err
		}
		if equal {
			return index, nil
		}
	}
	if err := it.Err(); err != nil {
		return 0, err
	}
	return 0, NewValueError("sequence.index(x): x not in sequence")
}
