package core

import (
	"strings"
)

var STR_TYPE = NewType(TypeSpec{
	Name: "str",
	Sequence: func(obj Value) *SequenceMethods {
		return strSequenceMethods
	},
	Mapping: func(obj Value) *MappingMethods {
		return strMappingMethods
	},
	Iterator: func(ctx *Context, obj Value) (Iterator, error) {
		runes := []rune(obj.(Str))
		elements := make([]Value, len(runes))
		for i, r := range runes {
			elements[i] = Str(r)
		}
		return NewSliceIterator(elements), nil
	},
})

// A Str is an immutable sequence of runes.
type Str string

func (Str) Type(ctx *Context) *Type {
	return STR_TYPE
}

var strSequenceMethods = &SequenceMethods{
	Length: func(ctx *Context, seq *Sequence) (int, error) {
		return len([]rune(seq.Obj.(Str))), nil
	},
	Concat: func(ctx *Context, seq *Sequence, other Value) (Value, error) {
		otherStr, ok := other.(Str)
		if !ok {
			return nil, FmtTypeError(
				"can only concatenate str (not \"%s\") to str", other.Type(ctx).Name())
		}
		return seq.Obj.(Str) + otherStr, nil
	},
	Repeat: func(ctx *Context, seq *Sequence, n int) (Value, error) {
		if n < 0 {
			n = 0
		}
		return Str(strings.Repeat(string(seq.Obj.(Str)), n)), nil
	},
	Item: func(ctx *Context, seq *Sequence, i int) (Value, error) {
		runes := []rune(seq.Obj.(Str))
		index, err := adjustIndex(i, len(runes))
		if err != nil {
			return nil, err
		}
		return Str(runes[index]), nil
	},
	// Contains is a substring test, not an element test: iteration-based
	// membership over a str yields a different answer for multi-rune targets.
	Contains: func(ctx *Context, seq *Sequence, target Value) (bool, error) {
		targetStr, ok := target.(Str)
		if !ok {
			return false, FmtTypeError(
				"'in <str>' requires str as left operand, not '%s'", target.Type(ctx).Name())
		}
		return strings.Contains(string(seq.Obj.(Str)), string(targetStr)), nil
	},
}

var strMappingMethods = &MappingMethods{
	Length: func(ctx *Context, obj Value) (int, error) {
		return len([]rune(obj.(Str))), nil
	},
	Subscript: func(ctx *Context, obj Value, key Value) (Value, error) {
		runes := []rune(obj.(Str))
		switch key := key.(type) {
		case Int:
			index, err := adjustIndex(int(key), len(runes))
			if err != nil {
				return nil, err
			}
			return Str(runes[index]), nil
		case *Slice:
			start, step, sliceLen, err := key.Indices(len(runes))
			if err != nil {
				return nil, err
			}
			sliced := make([]rune, sliceLen)
			for i := 0; i < sliceLen; i++ {
				sliced[i] = runes[start+i*step]
			}
			return Str(sliced), nil
		default:
			return nil, ErrExpectedIntOrSliceKey
		}
	},
}
