package core

import (
	"github.com/loonlang/loon/internal/utils"
)

var LIST_TYPE = NewType(TypeSpec{
	Name: "list",
	Sequence: func(obj Value) *SequenceMethods {
		return listSequenceMethods
	},
	Mapping: func(obj Value) *MappingMethods {
		return listMappingMethods
	},
	Iterator: func(ctx *Context, obj Value) (Iterator, error) {
		list := obj.(*List)
		return newIndexedIterator(list.Len, func(i int) Value {
			return list.elements[i]
		}), nil
	},
})

// A List is a mutable ordered container.
type List struct {
	elements []Value
}

func NewList(elements []Value) *List {
	if elements == nil {
		elements = []Value{}
	}
	return &List{elements: elements}
}

func NewListVariadic(elements ...Value) *List {
	return NewList(elements)
}

func (list *List) Type(ctx *Context) *Type {
	return LIST_TYPE
}

func (list *List) Len() int {
	return len(list.elements)
}

func (list *List) At(ctx *Context, i int) Value {
	return list.elements[i]
}

// the caller can modify the result
func (list *List) GetOrBuildElements(ctx *Context) []Value {
	return utils.CopySlice(list.elements)
}

func (list *List) Append(ctx *Context, values ...Value) {
	list.elements = append(list.elements, values...)
}

func (list *List) Pop(ctx *Context) Value {
	if len(list.elements) == 0 {
		panic(ErrCannotPopFromEmptyList)
	}
	last := list.elements[len(list.elements)-1]
	list.elements = list.elements[:len(list.elements)-1]
	return last
}

func (list *List) SetAt(ctx *Context, i int, v Value) {
	list.elements[i] = v
}

func (list *List) RemoveAt(ctx *Context, i int) {
	list.elements = append(list.elements[:i], list.elements[i+1:]...)
}

// Extend appends all the elements produced by iterating iterable.
func (list *List) Extend(ctx *Context, iterable Value) error {
	it, err := GetIterator(ctx, iterable)
	if err != nil {
		return err
	}
	values, err := IterateAll(ctx, it)
	if err != nil {
		return err
	}
	list.elements = append(list.elements, values...)
	return nil
}

func (list *List) concat(other *List) *List {
	elements := make([]Value, len(list.elements)+len(other.elements))
	copy(elements, list.elements)
	copy(elements[len(list.elements):], other.elements)
	return NewList(elements)
}

func (list *List) repeat(n int) *List {
	if n < 0 {
		n = 0
	}
	elements := make([]Value, 0, n*len(list.elements))
	for i := 0; i < n; i++ {
		elements = append(elements, list.elements...)
	}
	return NewList(elements)
}

func (list *List) slice(s *Slice) (*List, error) {
	start, step, sliceLen, err := s.Indices(len(list.elements))
	if err != nil {
		return nil, err
	}
	elements := make([]Value, sliceLen)
	for i := 0; i < sliceLen; i++ {
		elements[i] = list.elements[start+i*step]
	}
	return NewList(elements), nil
}

// setSlice replaces the elements addressed by s with newElements.
// Only contiguous slices (step 1) are supported.
func (list *List) setSlice(s *Slice, newElements []Value) error {
	start, step, sliceLen, err := s.Indices(len(list.elements))
	if err != nil {
		return err
	}
	if step != 1 {
		return ErrExtendedSliceAssignment
	}

	tail := utils.CopySlice(list.elements[start+sliceLen:])
	list.elements = append(list.elements[:start], newElements...)
	list.elements = append(list.elements, tail...)
	return nil
}

func (list *List) delSlice(s *Slice) error {
	return list.setSlice(s, nil)
}

var listSequenceMethods = &SequenceMethods{
	Length: func(ctx *Context, seq *Sequence) (int, error) {
		return seq.Obj.(*List).Len(), nil
	},
	Concat: func(ctx *Context, seq *Sequence, other Value) (Value, error) {
		otherList, ok := other.(*List)
		if !ok {
			return nil, FmtTypeError(
				"can only concatenate list (not \"%s\") to list", other.Type(ctx).Name())
		}
		return seq.Obj.(*List).concat(otherList), nil
	},
	Repeat: func(ctx *Context, seq *Sequence, n int) (Value, error) {
		return seq.Obj.(*List).repeat(n), nil
	},
	Item: func(ctx *Context, seq *Sequence, i int) (Value, error) {
		list := seq.Obj.(*List)
		index, err := adjustIndex(i, len(list.elements))
		if err != nil {
			return nil, err
		}
		return list.elements[index], nil
	},
	AssItem: func(ctx *Context, seq *Sequence, i int, value Value) error {
		list := seq.Obj.(*List)
		index, err := adjustIndex(i, len(list.elements))
		if err != nil {
			return err
		}
		if value == nil {
			list.RemoveAt(ctx, index)
		} else {
			list.SetAt(ctx, index, value)
		}
		return nil
	},
	Contains: func(ctx *Context, seq *Sequence, target Value) (bool, error) {
		for _, e := range seq.Obj.(*List).elements {
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
	InplaceConcat: func(ctx *Context, seq *Sequence, other Value) (Value, error) {
		list := seq.Obj.(*List)
		if err := list.Extend(ctx, other); err != nil {
			return nil, err
		}
		return list, nil
	},
	InplaceRepeat: func(ctx *Context, seq *Sequence, n int) (Value, error) {
		list := seq.Obj.(*List)
		list.elements = list.repeat(n).elements
		return list, nil
	},
}

var listMappingMethods = &MappingMethods{
	Length: func(ctx *Context, obj Value) (int, error) {
		return obj.(*List).Len(), nil
	},
	Subscript: func(ctx *Context, obj Value, key Value) (Value, error) {
		list := obj.(*List)
		switch key := key.(type) {
		case Int:
			index, err := adjustIndex(int(key), len(list.elements))
			if err != nil {
				return nil, err
			}
			return list.elements[index], nil
		case *Slice:
			return list.slice(key)
		default:
			return nil, ErrExpectedIntOrSliceKey
		}
	},
	AssSubscript: func(ctx *Context, obj Value, key Value, value Value) error {
		list := obj.(*List)
		switch key := key.(type) {
		case Int:
			index, err := adjustIndex(int(key), len(list.elements))
			if err != nil {
				return err
			}
			if value == nil {
				list.RemoveAt(ctx, index)
			} else {
				list.SetAt(ctx, index, value)
			}
			return nil
		case *Slice:
			if value == nil {
				return list.delSlice(key)
			}
			it, err := GetIterator(ctx, value)
			if err != nil {
				return err
			}
			newElements, err := IterateAll(ctx, it)
			if err != nil {
				return err
			}
			return list.setSlice(key, newElements)
		default:
			return ErrExpectedIntOrSliceKey
		}
	},
}
