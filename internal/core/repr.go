package core

import (
	"bytes"
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

// JSON representation of core values, used for diagnostics and logging.

// GetJSONRepresentation returns the JSON representation of v, it panics if v
// or one of its elements has no representation.
func GetJSONRepresentation(ctx *Context, v Value) string {
	buff := bytes.NewBuffer(nil)

	stream := jsoniter.NewStream(jsoniter.ConfigCompatibleWithStandardLibrary, buff, 0)

	err := WriteJSONRepresentation(ctx, stream, v)
	if err != nil {
		panic(fmt.Errorf("failed to write JSON representation: %w", err))
	}
	if err := stream.Flush(); err != nil {
		panic(err)
	}
	return buff.String()
}

func WriteJSONRepresentation(ctx *Context, w *jsoniter.Stream, v Value) error {
	switch v := v.(type) {
	case NilT:
		w.WriteNil()
	case Bool:
		w.WriteBool(bool(v))
	case Int:
		w.WriteInt64(int64(v))
	case Float:
		w.WriteFloat64(float64(v))
	case Str:
		w.WriteString(string(v))
	case *Tuple:
		return writeElementsJSON(ctx, w, v.elements)
	case *List:
		return writeElementsJSON(ctx, w, v.elements)
	case *Dict:
		w.WriteObjectStart()
		for i, key := range v.keys {
			if i != 0 {
				w.WriteMore()
			}
			w.WriteObjectField(key)
			if err := WriteJSONRepresentation(ctx, w, v.entries[key]); err != nil {
				return err
			}
		}
		w.WriteObjectEnd()
	case *Slice:
		w.WriteObjectStart()
		w.WriteObjectField("start")
		if err := WriteJSONRepresentation(ctx, w, v.Start); err != nil {
			return err
		}
		w.WriteMore()
		w.WriteObjectField("stop")
		if err := WriteJSONRepresentation(ctx, w, v.Stop); err != nil {
			return err
		}
		w.WriteMore()
		w.WriteObjectField("step")
		if err := WriteJSONRepresentation(ctx, w, v.Step); err != nil {
			return err
		}
		w.WriteObjectEnd()
	default:
		return fmt.Errorf("%w: %s", ErrNoRepresentation, v.Type(ctx).Name())
	}
	return w.Error
}

func writeElementsJSON(ctx *Context, w *jsoniter.Stream, elements []Value) error {
	w.WriteArrayStart()
	for i, e := range elements {
		if i != 0 {
			w.WriteMore()
		}
		if err := WriteJSONRepresentation(ctx, w, e); err != nil {
			return err
		}
	}
	w.WriteArrayEnd()
	return w.Error
}
