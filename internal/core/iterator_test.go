package core

import (
	"testing"

	"github.com/loonlang/loon/internal/utils"
	"github.com/stretchr/testify/assert"
)

func TestListIteration(t *testing.T) {

	t.Run("all elements are produced in order", func(t *testing.T) {
		ctx := NewContext(ContextConfig{})
		list := NewListVariadic(Str("a"), Str("b"), Str("c"))

		it := utils.Must(GetIterator(ctx, list))

		//next
		assert.True(t, it.Next(ctx))
		assert.Equal(t, Str("a"), it.Current(ctx))

		//next
		assert.True(t, it.Next(ctx))
		assert.Equal(t, Str("b"), it.Current(ctx))

		//next
		assert.True(t, it.Next(ctx))
		assert.Equal(t, Str("c"), it.Current(ctx))

		assert.False(t, it.Next(ctx))
		assert.NoError(t, it.Err())
	})

	t.Run("removal during iteration terminates the iteration", func(t *testing.T) {
		ctx := NewContext(ContextConfig{})
		list := NewListVariadic(Int(1), Int(2), Int(3))

		it, err := GetIterator(ctx, list)
		assert.NoError(t, err)

		assert.True(t, it.Next(ctx))
		list.RemoveAt(ctx, 2)
		list.RemoveAt(ctx, 1)

		assert.False(t, it.Next(ctx))
	})
}

func TestStrIteration(t *testing.T) {
	ctx := NewContext(ContextConfig{})

	it, err := GetIterator(ctx, Str("hé"))
	assert.NoError(t, err)

	values, err := IterateAll(ctx, it)
	assert.NoError(t, err)
	assert.Equal(t, []Value{Str("h"), Str("é")}, values)
}

func TestDictKeyIteration(t *testing.T) {
	ctx := NewContext(ContextConfig{})

	d := NewDict()
	d.Set(ctx, "one", Int(1))
	d.Set(ctx, "two", Int(2))

	it, err := GetIterator(ctx, d)
	assert.NoError(t, err)

	//the iterator works on a snapshot of the keys
	d.Set(ctx, "three", Int(3))

	values, err := IterateAll(ctx, it)
	assert.NoError(t, err)
	assert.Equal(t, []Value{Str("one"), Str("two")}, values)
}

func TestGetIterator(t *testing.T) {
	ctx := NewContext(ContextConfig{})

	t.Run("non-iterable value", func(t *testing.T) {
		_, err := GetIterator(ctx, Int(1))
		assert.EqualError(t, err, "'int' object is not iterable")
		assert.True(t, IsErrorOfKind(err, TypeError))
	})

	t.Run("iterator providers are inherited", func(t *testing.T) {
		base := NewType(TypeSpec{
			Name:     "iterable-base",
			Iterator: fakeElementsIterator,
		})
		derived := NewType(TypeSpec{Name: "iterable-derived", Bases: []*Type{base}})

		it, err := GetIterator(ctx, &fakeInstance{typ: derived, elements: []Value{Int(1)}})
		assert.NoError(t, err)

		values, err := IterateAll(ctx, it)
		assert.NoError(t, err)
		assert.Equal(t, []Value{Int(1)}, values)
	})
}

func TestIterateAll(t *testing.T) {
	ctx := NewContext(ContextConfig{})

	t.Run("drains the iterator", func(t *testing.T) {
		values, err := IterateAll(ctx, NewSliceIterator([]Value{Int(1), Int(2)}))
		assert.NoError(t, err)
		assert.Equal(t, []Value{Int(1), Int(2)}, values)
	})

	t.Run("propagates a step error", func(t *testing.T) {
		stepErr := NewValueError("step failed")

		_, err := IterateAll(ctx, &failingIterator{failAt: 1, err: stepErr})
		assert.Same(t, stepErr, err)
	})
}
