package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBinaryOperatorDispatch(t *testing.T) {
	ctx := NewContext(ContextConfig{})

	t.Run("int addition and multiplication", func(t *testing.T) {
		result, err := ctx.Add(Int(1), Int(2))
		assert.NoError(t, err)
		assert.Equal(t, Int(3), result)

		result, err = ctx.Multiply(Int(3), Int(4))
		assert.NoError(t, err)
		assert.Equal(t, Int(12), result)
	})

	t.Run("float addition", func(t *testing.T) {
		result, err := ctx.Add(Float(1.5), Float(2.5))
		assert.NoError(t, err)
		assert.Equal(t, Float(4.0), result)
	})

	t.Run("unhandled pairs give NotImplemented", func(t *testing.T) {
		result, err := ctx.Add(Int(1), Str("a"))
		assert.NoError(t, err)
		assert.True(t, IsNotImplemented(result))

		result, err = ctx.Add(Nil, Nil)
		assert.NoError(t, err)
		assert.True(t, IsNotImplemented(result))
	})

	t.Run("the right operand's slot is tried after the left's", func(t *testing.T) {
		typ := NewType(TypeSpec{
			Name: "right-operand",
			Number: func(obj Value) *NumberMethods {
				return &NumberMethods{
					Add: func(ctx *Context, a, b Value) (Value, error) {
						return Str("handled by right operand"), nil
					},
				}
			},
		})

		result, err := ctx.Add(Nil, &fakeInstance{typ: typ})
		assert.NoError(t, err)
		assert.Equal(t, Str("handled by right operand"), result)
	})

	t.Run("in-place addition falls back to plain addition", func(t *testing.T) {
		result, err := ctx.InplaceAdd(Int(1), Int(2))
		assert.NoError(t, err)
		assert.Equal(t, Int(3), result)
	})

	t.Run("the in-place slot has priority", func(t *testing.T) {
		typ := NewType(TypeSpec{
			Name: "inplace-priority",
			Number: func(obj Value) *NumberMethods {
				return &NumberMethods{
					Add: func(ctx *Context, a, b Value) (Value, error) {
						return Str("plain"), nil
					},
					InplaceAdd: func(ctx *Context, a, b Value) (Value, error) {
						return Str("in-place"), nil
					},
				}
			},
		})
		instance := &fakeInstance{typ: typ}

		result, err := ctx.InplaceAdd(instance, instance)
		assert.NoError(t, err)
		assert.Equal(t, Str("in-place"), result)

		result, err = ctx.Add(instance, instance)
		assert.NoError(t, err)
		assert.Equal(t, Str("plain"), result)
	})
}
