package mustache

import (
	"fmt"
	"log/slog"
	"reflect"
	"strconv"
)

// FromNative converts a native Go value, such as one produced by a YAML or
// JSON decoder, into a [Value].
//
// Strings and booleans map directly. Numbers become a [String] holding their
// decimal form. Slices and arrays become a [List], and maps with string-able
// keys become a [Map]. Values that already implement [Value] pass through.
//
// A nil map entry is omitted, so the key resolves as absent. A nil list
// element becomes Bool(false) to preserve element positions. Any other type
// fails with [ErrUnsupportedType].
func FromNative(v any) (Value, error) {
	switch val := v.(type) {
	case nil:
		return nil, nil

	case Value:
		return val, nil

	case string:
		return String(val), nil

	case bool:
		return Bool(val), nil

	case int:
		return String(strconv.Itoa(val)), nil

	case int64:
		return String(strconv.FormatInt(val, 10)), nil

	case uint64:
		return String(strconv.FormatUint(val, 10)), nil

	case float64:
		return String(strconv.FormatFloat(val, 'f', -1, 64)), nil

	case []any:
		return listFromNative(val)

	case map[string]any:
		out := make(Map, len(val))

		for k, elem := range val {
			cv, err := FromNative(elem)
			if err != nil {
				return nil, err
			}

			if cv != nil {
				out[k] = cv
			}
		}

		return out, nil
	}

	return fromReflect(reflect.ValueOf(v))
}

func listFromNative(elems []any) (List, error) {
	out := make(List, 0, len(elems))

	for _, elem := range elems {
		cv, err := FromNative(elem)
		if err != nil {
			return nil, err
		}

		if cv == nil {
			cv = Bool(false)
		}

		out = append(out, cv)
	}

	return out, nil
}

// fromReflect handles the typed numeric, slice, and map forms not covered by
// the fast path in [FromNative].
func fromReflect(rv reflect.Value) (Value, error) {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return String(strconv.FormatInt(rv.Int(), 10)), nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32,
		reflect.Uint64, reflect.Uintptr:
		return String(strconv.FormatUint(rv.Uint(), 10)), nil

	case reflect.Float32:
		return String(strconv.FormatFloat(rv.Float(), 'f', -1, 32)), nil

	case reflect.Float64:
		return String(strconv.FormatFloat(rv.Float(), 'f', -1, 64)), nil

	case reflect.String:
		return String(rv.String()), nil

	case reflect.Bool:
		return Bool(rv.Bool()), nil

	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return nil, nil
		}

		return FromNative(rv.Elem().Interface())

	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return List{}, nil
		}

		elems := make([]any, rv.Len())
		for i := range elems {
			elems[i] = rv.Index(i).Interface()
		}

		return listFromNative(elems)

	case reflect.Map:
		out := make(Map, rv.Len())

		iter := rv.MapRange()
		for iter.Next() {
			key, ok := mapKey(iter.Key())
			if !ok {
				return nil, ErrUnsupportedType.
					With(slog.String("type", rv.Type().String())).
					With(slog.String("reason", "map key is not a string"))
			}

			cv, err := FromNative(iter.Value().Interface())
			if err != nil {
				return nil, err
			}

			if cv != nil {
				out[key] = cv
			}
		}

		return out, nil
	}

	if !rv.IsValid() {
		return nil, nil
	}

	return nil, ErrUnsupportedType.With(slog.String("type", rv.Type().String()))
}

// mapKey converts a map key to a string. Keys of string, boolean, or numeric
// kind are accepted, matching what YAML decoders produce for scalar keys.
func mapKey(rv reflect.Value) (string, bool) {
	if rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return "", false
		}

		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.String:
		return rv.String(), true

	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return fmt.Sprint(rv.Interface()), true

	default:
		return "", false
	}
}

// ToNative converts v into plain Go values: string, bool, []any, and
// map[string]any. A nil Value converts to nil.
func ToNative(v Value) any {
	switch val := v.(type) {
	case String:
		return string(val)

	case Bool:
		return bool(val)

	case List:
		out := make([]any, len(val))
		for i, elem := range val {
			out[i] = ToNative(elem)
		}

		return out

	case Map:
		out := make(map[string]any, len(val))
		for k, elem := range val {
			out[k] = ToNative(elem)
		}

		return out

	default:
		return nil
	}
}
