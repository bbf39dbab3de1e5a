package core

// Value is implemented by all Loon values.
type Value interface {
	// Type returns the runtime type of the value, it never returns nil.
	Type(ctx *Context) *Type

	// Equal reports structural equality with another value. Dispatch through
	// Context.EqBool instead of calling Equal directly: EqBool adds the
	// identity fast path and converts panics from user code into errors.
	Equal(ctx *Context, other Value) bool
}

var _ = []Value{Nil, Bool(true), Int(0), Float(0), Str(""), NotImplemented}

type NilT struct{}

var Nil = NilT{}

func (NilT) Type(ctx *Context) *Type {
	return NIL_TYPE
}

type Bool bool

const (
	True  = Bool(true)
	False = Bool(false)
)

func (Bool) Type(ctx *Context) *Type {
	return BOOL_TYPE
}

type Int int64

func (Int) Type(ctx *Context) *Type {
	return INT_TYPE
}

type Float float64

func (Float) Type(ctx *Context) *Type {
	return FLOAT_TYPE
}

// NotImplementedT is the sentinel returned by operator slots that do not
// handle a given operand pair. It is a regular value so that operator slots
// written in the language can return it too.
type NotImplementedT struct{}

var NotImplemented Value = NotImplementedT{}

func (NotImplementedT) Type(ctx *Context) *Type {
	return NOT_IMPLEMENTED_TYPE
}

func IsNotImplemented(v Value) bool {
	_, ok := v.(NotImplementedT)
	return ok
}

var (
	NIL_TYPE = NewType(TypeSpec{Name: "nil"})

	BOOL_TYPE = NewType(TypeSpec{Name: "bool"})

	INT_TYPE = NewType(TypeSpec{
		Name:   "int",
		Number: func(obj Value) *NumberMethods { return intNumberMethods },
	})

	FLOAT_TYPE = NewType(TypeSpec{
		Name:   "float",
		Number: func(obj Value) *NumberMethods { return floatNumberMethods },
	})

	NOT_IMPLEMENTED_TYPE = NewType(TypeSpec{Name: "not-implemented"})
)
