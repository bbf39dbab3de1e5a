package core

import (
	"github.com/loonlang/loon/internal/utils"
)

var TUPLE_TYPE = NewType(TypeSpec{
	Name: "tuple",
	Sequence: func(obj Value) *SequenceMethods {
		return tupleSequenceMethods
	},
	Mapping: func(obj Value) *MappingMethods {
		return tupleMappingMethods
	},
	Iterator: func(ctx *Context, obj Value) (Iterator, error) {
		tuple := obj.(*Tuple)
		return newIndexedIterator(tuple.Len, func(i int) Value {
			return tuple.elements[i]
		}), nil
	},
})

// A Tuple is an immutable ordered container.
type Tuple struct {
	elements []Value
}

func NewTuple(elements []Value) *Tuple {
	if elements == nil {
		elements = []Value{}
	}
	return &Tuple{elements: elements}
}

func NewTupleVariadic(elements ...Value) *Tuple {
	return NewTuple(elements)
}

func (tuple *Tuple) Type(ctx *Context) *Type {
	return TUPLE_TYPE
}

func (tuple *Tuple) Len() int {
	return len(tuple.elements)
}

func (tuple *Tuple) At(ctx *Context, i int) Value {
	return tuple.elements[i]
}

// the caller can modify the result
func (tuple *Tuple) GetOrBuildElements(ctx *Context) []Value {
	return utils.CopySlice(tuple.elements)
}

func (tuple *Tuple) Concat(other *Tuple) *Tuple {
	elements := make([]Value, len(tuple.elements)+len(other.elements))

	copy(elements, tuple.elements)
	copy(elements[len(tuple.elements):], other.elements)

	return NewTuple(elements)
}

func (tuple *Tuple) repeat(n int) *Tuple {
	if n < 0 {
		n = 0
	}
	elements := make([]Value, 0, n*len(tuple.elements))
	for i := 0; i < n; i++ {
		elements = append(elements, tuple.elements...)
	}
	return NewTuple(elements)
}

func (tuple *Tuple) slice(s *Slice) (*Tuple, error) {
	start, step, sliceLen, err := s.Indices(len(tuple.elements))
	if err != nil {
		return nil, err
	}
	elements := make([]Value, sliceLen)
	for i := 0; i < sliceLen; i++ {
		elements[i] = tuple.elements[start+i*step]
	}
	return NewTuple(elements), nil
}

var tupleSequenceMethods = &SequenceMethods{
	Length: func(ctx *Context, seq *Sequence) (int, error) {
		return seq.Obj.(*Tuple).Len(), nil
	},
	Concat: func(ctx *Context, seq *Sequence, other Value) (Value, error) {
		otherTuple, ok := other.(*Tuple)
		if !ok {
			return nil, FmtTypeError(
				"can only concatenate tuple (not \"%s\") to tuple", other.Type(ctx).Name())
		}
		return seq.Obj.(*Tuple).Concat(otherTuple), nil
	},
	Repeat: func(ctx *Context, seq *Sequence, n int) (Value, error) {
		return seq.Obj.(*Tuple).repeat(n), nil
	},
	Item: func(ctx *Context, seq *Sequence, i int) (Value, error) {
		tuple := seq.Obj.(*Tuple)
		index, err := adjustIndex(i, len(tuple.elements))
		if err != nil {
			return nil, err
		}
		return tuple.elements[index], nil
	},
	Contains: func(ctx *Context, seq *Sequence, target Value) (bool, error) {
		for _, e := range seq.Obj.(*Tuple).elements {
			equal, err := ctx.EqBool(e, target)
			if err != nil {
				return false, err
			}
			if equal {
				return true, nil
			}
		}
		return false, nil
	},
}

var tupleMappingMethods = &MappingMethods{
	Length: func(ctx *Context, obj Value) (int, error) {
		return obj.(*Tuple).Len(), nil
	},
	Subscript: func(ctx *Context, obj Value, key Value) (Value, error) {
		tuple := obj.(*Tuple)
		switch key := key.(type) {
		case Int:
			index, err := adjustIndex(int(key), len(tuple.elements))
			if err != nil {
				return nil, err
			}
			return tuple.elements[index], nil
		case *Slice:
			return tuple.slice(key)
		default:
			return nil, ErrExpectedIntOrSliceKey
		}
	},
}
