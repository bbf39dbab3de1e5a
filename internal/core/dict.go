package core

import (
	"github.com/loonlang/loon/internal/utils"
)

// DICT_TYPE carries the NotASequence flag: a dict iterates over its keys, and
// that behavior must not surface through the sequence protocol.
var DICT_TYPE = NewType(TypeSpec{
	Name:  "dict",
	Flags: NotASequence,
	Mapping: func(obj Value) *MappingMethods {
		return dictMappingMethods
	},
	Iterator: func(ctx *Context, obj Value) (Iterator, error) {
		return newDictKeyIterator(obj.(*Dict)), nil
	},
})

// A Dict is a mutable string-keyed mapping that preserves insertion order.
type Dict struct {
	keys    []string
	entries map[string]Value
}

func NewDict() *Dict {
	return &Dict{entries: map[string]Value{}}
}

func (d *Dict) Type(ctx *Context) *Type {
	return DICT_TYPE
}

func (d *Dict) Len() int {
	return len(d.keys)
}

func (d *Dict) Get(ctx *Context, key string) (Value, bool) {
	v, ok := d.entries[key]
	return v, ok
}

func (d *Dict) Set(ctx *Context, key string, value Value) {
	if _, alreadyPresent := d.entries[key]; !alreadyPresent {
		d.keys = append(d.keys, key)
	}
	d.entries[key] = value
}

func (d *Dict) Delete(ctx *Context, key string) bool {
	if _, present := d.entries[key]; !present {
		return false
	}
	delete(d.entries, key)
	for i, k := range d.keys {
		if k == key {
			d.keys = append(d.keys[:i], d.keys[i+1:]...)
			break
		}
	}
	return true
}

// Keys returns the keys in insertion order, the caller can modify the result.
func (d *Dict) Keys() []string {
	return utils.CopySlice(d.keys)
}

var dictMappingMethods = &MappingMethods{
	Length: func(ctx *Context, obj Value) (int, error) {
		return obj.(*Dict).Len(), nil
	},
	Subscript: func(ctx *Context, obj Value, key Value) (Value, error) {
		keyStr, ok := key.(Str)
		if !ok {
			return nil, FmtTypeError("dict keys should be strings, not '%s'", key.Type(ctx).Name())
		}
		value, present := obj.(*Dict).entries[string(keyStr)]
		if !present {
			return nil, NewValueError("key not found: " + string(keyStr))
		}
		return value, nil
	},
	AssSubscript: func(ctx *Context, obj Value, key Value, value Value) error {
		keyStr, ok := key.(Str)
		if !ok {
			return FmtTypeError("dict keys should be strings, not '%s'", key.Type(ctx).Name())
		}
		d := obj.(*Dict)
		if value == nil {
			if !d.Delete(ctx, string(keyStr)) {
				return NewValueError("key not found: " + string(keyStr))
			}
			return nil
		}
		d.Set(ctx, string(keyStr), value)
		return nil
	},
}

// A dictKeyIterator iterates a snapshot of the dict's keys taken at creation.
type dictKeyIterator struct {
	i    int
	keys []string
}

func newDictKeyIterator(d *Dict) *dictKeyIterator {
	return &dictKeyIterator{i: -1, keys: d.Keys()}
}

func (it *dictKeyIterator) Type(ctx *Context) *Type {
	return ITERATOR_TYPE
}

func (it *dictKeyIterator) Equal(ctx *Context, other Value) bool {
	otherIt, ok := other.(*dictKeyIterator)
	return ok && it == otherIt
}

func (it *dictKeyIterator) Next(ctx *Context) bool {
	if it.i+1 >= len(it.keys) {
		return false
	}
	it.i++
	return true
}

func (it *dictKeyIterator) Current(ctx *Context) Value {
	return Str(it.keys[it.i])
}

func (it *dictKeyIterator) Err() error {
	return nil
}
