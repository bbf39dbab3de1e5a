package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTuple(t *testing.T) {
	ctx := NewContext(ContextConfig{})

	t.Run("construction", func(t *testing.T) {
		tuple := NewTuple(nil)
		assert.Equal(t, 0, tuple.Len())

		tuple = NewTupleVariadic(Int(1), Int(2))
		assert.Equal(t, 2, tuple.Len())
		assert.Equal(t, Int(2), tuple.At(ctx, 1))
	})

	t.Run("concatenation", func(t *testing.T) {
		tuple := NewTupleVariadic(Int(1)).Concat(NewTupleVariadic(Int(2)))
		assert.True(t, NewTupleVariadic(Int(1), Int(2)).Equal(ctx, tuple))
	})

	t.Run("concatenation with a non-tuple fails", func(t *testing.T) {
		_, err := SequenceFrom(NewTupleVariadic(Int(1))).Concat(ctx, NewListVariadic(Int(2)))
		assert.EqualError(t, err, "can only concatenate tuple (not \"list\") to tuple")
	})

	t.Run("subscript with a slice key", func(t *testing.T) {
		tuple := NewTupleVariadic(Int(0), Int(1), Int(2), Int(3))

		result, err := MappingFrom(tuple).GetItem(ctx, NewSlice(Int(1), Int(3), Nil))
		assert.NoError(t, err)
		assert.True(t, NewTupleVariadic(Int(1), Int(2)).Equal(ctx, result))
	})

	t.Run("subscript with a negative step", func(t *testing.T) {
		tuple := NewTupleVariadic(Int(0), Int(1), Int(2))

		result, err := MappingFrom(tuple).GetItem(ctx, NewSlice(Nil, Nil, Int(-1)))
		assert.NoError(t, err)
		assert.True(t, NewTupleVariadic(Int(2), Int(1), Int(0)).Equal(ctx, result))
	})

	t.Run("tuples do not support subscript assignment", func(t *testing.T) {
		err := MappingFrom(NewTupleVariadic(Int(1))).SetItem(ctx, Int(0), Int(2))
		assert.EqualError(t, err, "'tuple' object does not support item assignment")
	})
}

func TestList(t *testing.T) {
	ctx := NewContext(ContextConfig{})

	t.Run("append and pop", func(t *testing.T) {
		list := NewList(nil)
		list.Append(ctx, Int(1), Int(2))

		assert.Equal(t, 2, list.Len())
		assert.Equal(t, Int(2), list.Pop(ctx))
		assert.Equal(t, 1, list.Len())
	})

	t.Run("popping an empty list panics", func(t *testing.T) {
		assert.PanicsWithValue(t, ErrCannotPopFromEmptyList, func() {
			NewList(nil).Pop(ctx)
		})
	})

	t.Run("extend with any iterable", func(t *testing.T) {
		list := NewListVariadic(Int(1))

		assert.NoError(t, list.Extend(ctx, NewTupleVariadic(Int(2), Int(3))))
		assert.True(t, NewListVariadic(Int(1), Int(2), Int(3)).Equal(ctx, list))
	})

	t.Run("extend with a non-iterable fails", func(t *testing.T) {
		err := NewList(nil).Extend(ctx, Int(1))
		assert.EqualError(t, err, "'int' object is not iterable")
	})

	t.Run("slice assignment of a different length", func(t *testing.T) {
		list := NewListVariadic(Int(0), Int(1), Int(2))

		err := MappingFrom(list).SetItem(ctx,
			NewSlice(Int(1), Int(2), Nil), NewListVariadic(Int(10), Int(11), Int(12)))
		assert.NoError(t, err)
		assert.True(t, NewListVariadic(Int(0), Int(10), Int(11), Int(12), Int(2)).Equal(ctx, list))
	})

	t.Run("slice assignment with a step is rejected", func(t *testing.T) {
		list := NewListVariadic(Int(0), Int(1), Int(2), Int(3))

		err := MappingFrom(list).SetItem(ctx,
			NewSlice(Nil, Nil, Int(2)), NewListVariadic(Int(10), Int(11)))
		assert.ErrorIs(t, err, ErrExtendedSliceAssignment)
	})

	t.Run("slice deletion", func(t *testing.T) {
		list := NewListVariadic(Int(0), Int(1), Int(2), Int(3))

		err := MappingFrom(list).DelItem(ctx, NewSlice(Int(1), Int(3), Nil))
		assert.NoError(t, err)
		assert.True(t, NewListVariadic(Int(0), Int(3)).Equal(ctx, list))
	})

	t.Run("in-place repetition keeps the identity", func(t *testing.T) {
		list := NewListVariadic(Int(1))

		result, err := SequenceFrom(list).InplaceRepeat(ctx, 3)
		assert.NoError(t, err)
		assert.Same(t, list, result)
		assert.True(t, NewListVariadic(Int(1), Int(1), Int(1)).Equal(ctx, list))
	})
}

func TestDict(t *testing.T) {
	ctx := NewContext(ContextConfig{})

	t.Run("set, get, delete", func(t *testing.T) {
		d := NewDict()
		d.Set(ctx, "a", Int(1))
		d.Set(ctx, "b", Int(2))
		d.Set(ctx, "a", Int(10))

		assert.Equal(t, 2, d.Len())
		v, ok := d.Get(ctx, "a")
		assert.True(t, ok)
		assert.Equal(t, Int(10), v)

		assert.True(t, d.Delete(ctx, "a"))
		assert.False(t, d.Delete(ctx, "a"))
		assert.Equal(t, []string{"b"}, d.Keys())
	})

	t.Run("subscript access", func(t *testing.T) {
		d := NewDict()
		d.Set(ctx, "key", Int(1))

		v, err := MappingFrom(d).GetItem(ctx, Str("key"))
		assert.NoError(t, err)
		assert.Equal(t, Int(1), v)

		_, err = MappingFrom(d).GetItem(ctx, Str("missing"))
		assert.EqualError(t, err, "key not found: missing")
		assert.True(t, IsErrorOfKind(err, ValueError))

		_, err = MappingFrom(d).GetItem(ctx, Int(0))
		assert.EqualError(t, err, "dict keys should be strings, not 'int'")
	})

	t.Run("subscript assignment and deletion", func(t *testing.T) {
		d := NewDict()

		assert.NoError(t, MappingFrom(d).SetItem(ctx, Str("key"), Int(1)))
		assert.Equal(t, 1, d.Len())

		assert.NoError(t, MappingFrom(d).DelItem(ctx, Str("key")))
		assert.Equal(t, 0, d.Len())

		err := MappingFrom(d).DelItem(ctx, Str("key"))
		assert.EqualError(t, err, "key not found: key")
	})
}

func TestStrSequence(t *testing.T) {
	ctx := NewContext(ContextConfig{})

	t.Run("item access is rune-based", func(t *testing.T) {
		v, err := SequenceFrom(Str("héllo")).GetItem(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, Str("é"), v)

		v, err = SequenceFrom(Str("héllo")).GetItem(ctx, -1)
		assert.NoError(t, err)
		assert.Equal(t, Str("o"), v)
	})

	t.Run("membership is a substring test", func(t *testing.T) {
		contained, err := SequenceFrom(Str("hello")).Contains(ctx, Str("ell"))
		assert.NoError(t, err)
		assert.True(t, contained)

		contained, err = SequenceFrom(Str("hello")).Contains(ctx, Str("xyz"))
		assert.NoError(t, err)
		assert.False(t, contained)

		_, err = SequenceFrom(Str("hello")).Contains(ctx, Int(1))
		assert.EqualError(t, err, "'in <str>' requires str as left operand, not 'int'")
	})

	t.Run("subscript with a slice key", func(t *testing.T) {
		result, err := MappingFrom(Str("hello")).GetItem(ctx, NewSlice(Nil, Nil, Int(-1)))
		assert.NoError(t, err)
		assert.Equal(t, Str("olleh"), result)
	})
}
