package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqBool(t *testing.T) {
	ctx := NewContext(ContextConfig{})

	t.Run("identity fast path", func(t *testing.T) {
		list := NewListVariadic(Int(1))

		equal, err := ctx.EqBool(list, list)
		assert.NoError(t, err)
		assert.True(t, equal)
	})

	t.Run("structural equality", func(t *testing.T) {
		equal, err := ctx.EqBool(Int(1), Int(1))
		assert.NoError(t, err)
		assert.True(t, equal)

		equal, err = ctx.EqBool(Int(1), Str("1"))
		assert.NoError(t, err)
		assert.False(t, equal)

		equal, err = ctx.EqBool(
			NewListVariadic(Int(1), NewTupleVariadic(Str("a"))),
			NewListVariadic(Int(1), NewTupleVariadic(Str("a"))),
		)
		assert.NoError(t, err)
		assert.True(t, equal)
	})

	t.Run("panics from comparison code become errors", func(t *testing.T) {
		typ := NewType(TypeSpec{Name: "panicky-equality"})
		instance := &panickyValue{typ: typ}

		_, err := ctx.EqBool(instance, Int(1))
		assert.Error(t, err)
	})

	t.Run("deeply nested values fail instead of recursing forever", func(t *testing.T) {
		deep := NewListVariadic(Int(1))
		for i := 0; i < MAX_COMPARISON_DEPTH+1; i++ {
			deep = NewListVariadic(deep)
		}

		other := NewListVariadic(Int(1))
		for i := 0; i < MAX_COMPARISON_DEPTH+1; i++ {
			other = NewListVariadic(other)
		}

		_, err := ctx.EqBool(deep, other)
		assert.ErrorIs(t, err, ErrMaximumComparisonDepthReached)
	})
}

type panickyValue struct {
	typ *Type
}

func (v *panickyValue) Type(ctx *Context) *Type {
	return v.typ
}

func (v *panickyValue) Equal(ctx *Context, other Value) bool {
	panic("comparison failure")
}
