package core

// Generic arithmetic operator dispatch. The sequence protocol only consumes
// addition, multiplication and their in-place variants, as fallbacks for
// concatenation and repetition.

// NumberMethods is the method table of the number protocol. Each slot takes
// both operands and returns either a result or NotImplemented when the slot
// does not handle the operand pair.
type NumberMethods struct {
	Add             func(ctx *Context, a, b Value) (Value, error)
	Multiply        func(ctx *Context, a, b Value) (Value, error)
	InplaceAdd      func(ctx *Context, a, b Value) (Value, error)
	InplaceMultiply func(ctx *Context, a, b Value) (Value, error)
}

var notImplementedNumberMethods = &NumberMethods{}

// NotImplementedNumberMethods returns the shared method table with all slots
// absent.
func NotImplementedNumberMethods() *NumberMethods {
	return notImplementedNumberMethods
}

func numberMethodsOf(ctx *Context, v Value) *NumberMethods {
	provider, ok := v.Type(ctx).ResolveNumberProvider()
	if !ok {
		return notImplementedNumberMethods
	}
	return provider(v)
}

type binarySlotSelector func(m *NumberMethods) func(ctx *Context, a, b Value) (Value, error)

// binaryOp dispatches a binary operator: the left operand's slot is tried
// first, then the right operand's slot if its type differs. The result is
// NotImplemented if neither slot handles the pair.
func (ctx *Context) binaryOp(a, b Value, selectSlot binarySlotSelector) (Value, error) {
	if slot := selectSlot(numberMethodsOf(ctx, a)); slot != nil {
		ret, err := slot(ctx, a, b)
		if err != nil {
			return nil, err
		}
		if !IsNotImplemented(ret) {
			return ret, nil
		}
	}

	if !b.Type(ctx).Is(a.Type(ctx)) {
		if slot := selectSlot(numberMethodsOf(ctx, b)); slot != nil {
			ret, err := slot(ctx, a, b)
			if err != nil {
				return nil, err
			}
			if !IsNotImplemented(ret) {
				return ret, nil
			}
		}
	}

	return NotImplemented, nil
}

// inplaceBinaryOp tries the left operand's in-place slot, then falls back to
// the plain binary operator.
func (ctx *Context) inplaceBinaryOp(
	a, b Value,
	selectInplaceSlot binarySlotSelector,
	selectSlot binarySlotSelector,
) (Value, error) {
	if slot := selectInplaceSlot(numberMethodsOf(ctx, a)); slot != nil {
		ret, err := slot(ctx, a, b)
		if err != nil {
			return nil, err
		}
		if !IsNotImplemented(ret) {
			return ret, nil
		}
	}
	return ctx.binaryOp(a, b, selectSlot)
}

// Add dispatches the generic addition operator, the result is NotImplemented
// if no operand handles the pair.
func (ctx *Context) Add(a, b Value) (Value, error) {
	return ctx.binaryOp(a, b, func(m *NumberMethods) func(ctx *Context, a, b Value) (Value, error) {
		return m.Add
	})
}

// Multiply dispatches the generic multiplication operator.
func (ctx *Context) Multiply(a, b Value) (Value, error) {
	return ctx.binaryOp(a, b, func(m *NumberMethods) func(ctx *Context, a, b Value) (Value, error) {
		return m.Multiply
	})
}

// InplaceAdd dispatches the generic in-place addition operator, falling back
// to plain addition.
func (ctx *Context) InplaceAdd(a, b Value) (Value, error) {
	return ctx.inplaceBinaryOp(a, b,
		func(m *NumberMethods) func(ctx *Context, a, b Value) (Value, error) {
			return m.InplaceAdd
		},
		func(m *NumberMethods) func(ctx *Context, a, b Value) (Value, error) {
			return m.Add
		},
	)
}

// InplaceMultiply dispatches the generic in-place multiplication operator,
// falling back to plain multiplication.
func (ctx *Context) InplaceMultiply(a, b Value) (Value, error) {
	return ctx.inplaceBinaryOp(a, b,
		func(m *NumberMethods) func(ctx *Context, a, b Value) (Value, error) {
			return m.InplaceMultiply
		},
		func(m *NumberMethods) func(ctx *Context, a, b Value) (Value, error) {
			return m.Multiply
		},
	)
}

var intNumberMethods = &NumberMethods{
	Add: func(ctx *Context, a, b Value) (Value, error) {
		leftInt, ok := a.(Int)
		if !ok {
			return NotImplemented, nil
		}
		rightInt, ok := b.(Int)
		if !ok {
			return NotImplemented, nil
		}
		return leftInt + rightInt, nil
	},
	Multiply: func(ctx *Context, a, b Value) (Value, error) {
		leftInt, ok := a.(Int)
		if !ok {
			return NotImplemented, nil
		}
		rightInt, ok := b.(Int)
		if !ok {
			return NotImplemented, nil
		}
		return leftInt * rightInt, nil
	},
}

var floatNumberMethods = &NumberMethods{
	Add: func(ctx *Context, a, b Value) (Value, error) {
		leftFloat, ok := a.(Float)
		if !ok {
			return NotImplemented, nil
		}
		rightFloat, ok := b.(Float)
		if !ok {
			return NotImplemented, nil
		}
		return leftFloat + rightFloat, nil
	},
	Multiply: func(ctx *Context, a, b Value) (Value, error) {
		leftFloat, ok := a.(Float)
		if !ok {
			return NotImplemented, nil
		}
		rightFloat, ok := b.(Float)
		if !ok {
			return NotImplemented, nil
		}
		return leftFloat * rightFloat, nil
	},
}
