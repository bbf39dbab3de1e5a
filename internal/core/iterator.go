package core

import (
	"github.com/loonlang/loon/internal/utils"
)

var _ = []Iterator{(*indexedIterator)(nil), (*dictKeyIterator)(nil), (*sliceIterator)(nil)}

// An Iterator produces a lazy, finite, single-pass sequence of values.
// A step that fails stops the iteration: Next returns false and Err returns
// the step's error.
type Iterator interface {
	Value

	// Next advances the iterator, it returns false once the iterator is
	// exhausted or a step has failed.
	Next(ctx *Context) bool

	// Current returns the value produced by the last successful call to Next.
	Current(ctx *Context) Value

	// Err returns the error of the failed step, if any.
	Err() error
}

var ITERATOR_TYPE = NewType(TypeSpec{Name: "iterator"})

// GetIterator obtains an iterator over v through the iteration protocol.
func GetIterator(ctx *Context, v Value) (Iterator, error) {
	provider, ok := v.Type(ctx).ResolveIteratorProvider()
	if !ok {
		return nil, FmtTypeError("'%s' object is not iterable", v.Type(ctx).Name())
	}
	return provider(ctx, v)
}

// IterateAll drains an iterator into a slice, propagating the first step
// error.
func IterateAll(ctx *Context, it Iterator) ([]Value, error) {
	var values []Value
	for it.Next(ctx) {
		values = append(values, it.Current(ctx))
	}
	if err := it.Err(); err != nil {
		return nil, err
	}
	return values, nil
}

// An indexedIterator iterates a container by position. The length is read at
// every step so that element removal during iteration terminates the
// iteration instead of reading out of range.
type indexedIterator struct {
	i       int
	current Value
	len     func() int
	at      func(i int) Value
}

func newIndexedIterator(length func() int, at func(i int) Value) *indexedIterator {
	return &indexedIterator{
		i:   -1,
		len: length,
		at:  at,
	}
}

func (it *indexedIterator) Type(ctx *Context) *Type {
	return ITERATOR_TYPE
}

func (it *indexedIterator) Equal(ctx *Context, other Value) bool {
	otherIt, ok := other.(*indexedIterator)
	return ok && it == otherIt
}

func (it *indexedIterator) Next(ctx *Context) bool {
	if it.i+1 >= it.len() {
		return false
	}
	it.i++
	it.current = it.at(it.i)
	return true
}

func (it *indexedIterator) Current(ctx *Context) Value {
	return it.current
}

func (it *indexedIterator) Err() error {
	return nil
}

// A sliceIterator iterates a fixed snapshot of values.
type sliceIterator struct {
	i        int
	elements []Value
}

func NewSliceIterator(elements []Value) Iterator {
	return &sliceIterator{i: -1, elements: utils.CopySlice(elements)}
}

func (it *sliceIterator) Type(ctx *Context) *Type {
	return ITERATOR_TYPE
}

func (it *sliceIterator) Equal(ctx *Context, other Value) bool {
	otherIt, ok := other.(*sliceIterator)
	return ok && it == otherIt
}

func (it *sliceIterator) Next(ctx *Context) bool {
	if it.i+1 >= len(it.elements) {
		return false
	}
	it.i++
	return true
}

func (it *sliceIterator) Current(ctx *Context) Value {
	return it.elements[it.i]
}

func (it *sliceIterator) Err() error {
	return nil
}
