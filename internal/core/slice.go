package core

import "fmt"

var SLICE_TYPE = NewType(TypeSpec{Name: "slice"})

// A Slice value carries the bounds of a slice expression. Start, Stop and
// Step are each an Int or Nil.
type Slice struct {
	Start Value
	Stop  Value
	Step  Value
}

func NewSlice(start, stop, step Value) *Slice {
	if start == nil {
		start = Nil
	}
	if stop == nil {
		stop = Nil
	}
	if step == nil {
		step = Nil
	}
	return &Slice{Start: start, Stop: stop, Step: step}
}

func (s *Slice) Type(ctx *Context) *Type {
	return SLICE_TYPE
}

// Indices resolves the slice against a container of the given length:
// negative bounds are counted from the end and out-of-range bounds are
// clamped. It returns the resolved start, the step and the number of
// addressed elements.
func (s *Slice) Indices(length int) (start, step, sliceLen int, err error) {
	step = 1
	if stepInt, ok := s.Step.(Int); ok {
		step = int(stepInt)
	} else if _, isNil := s.Step.(NilT); !isNil {
		return 0, 0, 0, ErrSliceBoundNotIntNorNil
	}
	if step == 0 {
		return 0, 0, 0, NewValueError("slice step cannot be zero")
	}

	var defaultStart, defaultStop int
	if step > 0 {
		defaultStart, defaultStop = 0, length
	} else {
		defaultStart, defaultStop = length-1, -1
	}

	start, err = resolveSliceBound(s.Start, length, step, defaultStart)
	if err != nil {
		return 0, 0, 0, err
	}
	stop, err := resolveSliceBound(s.Stop, length, step, defaultStop)
	if err != nil {
		return 0, 0, 0, err
	}

	if step > 0 {
		if stop > start {
			sliceLen = (stop - start + step - 1) / step
		}
	} else {
		if start > stop {
			sliceLen = (start - stop - step - 1) / -step
		}
	}
	return start, step, sliceLen, nil
}

func resolveSliceBound(bound Value, length, step, defaultValue int) (int, error) {
	switch bound := bound.(type) {
	case NilT:
		return defaultValue, nil
	case Int:
		i := int(bound)
		if i < 0 {
			i += length
			if i < 0 {
				if step < 0 {
					return -1, nil
				}
				return 0, nil
			}
		} else if i >= length {
			if step < 0 {
				return length - 1, nil
			}
			return length, nil
		}
		return i, nil
	default:
		return 0, ErrSliceBoundNotIntNorNil
	}
}

// adjustIndex resolves a possibly negative item index against a container of
// the given length.
func adjustIndex(i, length int) (int, error) {
	if i < 0 {
		i += length
	}
	if i < 0 || i >= length {
		return 0, fmt.Errorf("%w: %d", ErrIndexOutOfRange, i)
	}
	return i, nil
}
