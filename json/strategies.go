package json

import (
	"encoding/base64"
	"fmt"
	"io"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"
)

// builtinStrategies covers the exact types NewContext preloads. Named types
// derived from these kinds land in the reflective fallback instead.
func builtinStrategies() map[reflect.Type]Strategy {
	scalar := StrategyFunc(serializeScalar)
	m := make(map[reflect.Type]Strategy, 20)
	for _, t := range []reflect.Type{
		reflect.TypeFor[bool](),
		reflect.TypeFor[string](),
		reflect.TypeFor[int](),
		reflect.TypeFor[int8](),
		reflect.TypeFor[int16](),
		reflect.TypeFor[int32](),
		reflect.TypeFor[int64](),
		reflect.TypeFor[uint](),
		reflect.TypeFor[uint8](),
		reflect.TypeFor[uint16](),
		reflect.TypeFor[uint32](),
		reflect.TypeFor[uint64](),
		reflect.TypeFor[float32](),
		reflect.TypeFor[float64](),
	} {
		m[t] = scalar
	}
	m[reflect.TypeFor[time.Time]()] = StrategyFunc(serializeTime)
	m[reflect.TypeFor[[]byte]()] = StrategyFunc(serializeBytes)
	m[reflect.TypeFor[Raw]()] = StrategyFunc(serializeRaw)
	return m
}

func serializeScalar(v any, w Writer) error {
	tok, err := appendScalar(make([]byte, 0, 24), v)
	if err != nil {
		return err
	}
	_, err = w.Out().Write(tok)
	return err
}

func appendScalar(dst []byte, v any) ([]byte, error) {
	switch x := v.(type) {
	case string:
		return appendQuoted(dst, x), nil
	case bool:
		return strconv.AppendBool(dst, x), nil
	case int:
		return strconv.AppendInt(dst, int64(x), 10), nil
	case int8:
		return strconv.AppendInt(dst, int64(x), 10), nil
	case int16:
		return strconv.AppendInt(dst, int64(x), 10), nil
	case int32:
		return strconv.AppendInt(dst, int64(x), 10), nil
	case int64:
		return strconv.AppendInt(dst, x, 10), nil
	case uint:
		return strconv.AppendUint(dst, uint64(x), 10), nil
	case uint8:
		return strconv.AppendUint(dst, uint64(x), 10), nil
	case uint16:
		return strconv.AppendUint(dst, uint64(x), 10), nil
	case uint32:
		return strconv.AppendUint(dst, uint64(x), 10), nil
	case uint64:
		return strconv.AppendUint(dst, x, 10), nil
	case float32:
		return appendFloat(dst, float64(x), 32)
	case float64:
		return appendFloat(dst, x, 64)
	default:
		return nil, fmt.Errorf("json: value %T is not a supported scalar", v)
	}
}

func appendFloat(dst []byte, f float64, bits int) ([]byte, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("json: unsupported float value %v", f)
	}
	return strconv.AppendFloat(dst, f, 'g', -1, bits), nil
}

func serializeTime(v any, w Writer) error {
	t := v.(time.Time)
	b := make([]byte, 0, len(time.RFC3339Nano)+2)
	b = append(b, '"')
	b = t.AppendFormat(b, time.RFC3339Nano)
	b = append(b, '"')
	_, err := w.Out().Write(b)
	return err
}

func serializeBytes(v any, w Writer) error {
	return writeBase64(w, v.([]byte))
}

func writeBase64(w Writer, b []byte) error {
	enc := base64.StdEncoding
	dst := make([]byte, 0, enc.EncodedLen(len(b))+2)
	dst = append(dst, '"')
	dst = enc.AppendEncode(dst, b)
	dst = append(dst, '"')
	_, err := w.Out().Write(dst)
	return err
}

func serializeRaw(v any, w Writer) error {
	_, err := io.WriteString(w.Out(), string(v.(Raw)))
	return err
}

// reflectSerialize is the default fallback strategy. It drives the writer
// recursively for containers, so nested values re-enter resolution and
// custom strategies apply at any depth.
func reflectSerialize(v any, w Writer) error {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return writeNullToken(w)
		}
		return Dispatch(rv.Elem().Interface(), w)
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.String:
		tok, err := appendScalarValue(make([]byte, 0, 24), rv)
		if err != nil {
			return err
		}
		_, err = w.Out().Write(tok)
		return err
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8 {
			// Named byte slices encode like []byte.
			return writeBase64(w, rv.Bytes())
		}
		if err := w.BeginArray(); err != nil {
			return err
		}
		for i := 0; i < rv.Len(); i++ {
			if err := w.WriteValue(rv.Index(i).Interface()); err != nil {
				return err
			}
		}
		return w.EndArray()
	case reflect.Map:
		return serializeMap(rv, w)
	case reflect.Struct:
		if err := w.BeginObject(); err != nil {
			return err
		}
		if err := writeStructFields(w, rv); err != nil {
			return err
		}
		return w.EndObject()
	default:
		return fmt.Errorf("json: unsupported type %s", rv.Type())
	}
}

// appendScalarValue formats scalar kinds through reflection, covering named
// types like `type Level int`.
func appendScalarValue(dst []byte, rv reflect.Value) ([]byte, error) {
	switch rv.Kind() {
	case reflect.Bool:
		return strconv.AppendBool(dst, rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.AppendInt(dst, rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.AppendUint(dst, rv.Uint(), 10), nil
	case reflect.Float32:
		return appendFloat(dst, rv.Float(), 32)
	case reflect.Float64:
		return appendFloat(dst, rv.Float(), 64)
	case reflect.String:
		return appendQuoted(dst, rv.String()), nil
	default:
		return nil, fmt.Errorf("json: value of type %s is not a scalar", rv.Type())
	}
}

func serializeMap(rv reflect.Value, w Writer) error {
	type member struct {
		name string
		val  reflect.Value
	}
	members := make([]member, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		name, err := mapKeyName(iter.Key())
		if err != nil {
			return err
		}
		members = append(members, member{name: name, val: iter.Value()})
	}
	// Deterministic member order, like encoding/json.
	sort.Slice(members, func(i, j int) bool { return members[i].name < members[j].name })

	if err := w.BeginObject(); err != nil {
		return err
	}
	for _, m := range members {
		if err := w.WriteProperty(m.name, m.val.Interface()); err != nil {
			return err
		}
	}
	return w.EndObject()
}

func mapKeyName(k reflect.Value) (string, error) {
	switch k.Kind() {
	case reflect.String:
		return k.String(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(k.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(k.Uint(), 10), nil
	default:
		return "", fmt.Errorf("json: unsupported map key type %s", k.Type())
	}
}

func writeStructFields(w Writer, rv reflect.Value) error {
	t := rv.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.PkgPath != "" {
			continue // unexported
		}
		name := f.Name
		tagged := false
		if tag, ok := f.Tag.Lookup("json"); ok {
			base, _, _ := strings.Cut(tag, ",")
			if base == "-" {
				continue
			}
			if base != "" {
				name = base
				tagged = true
			}
		}
		if f.Anonymous && f.Type.Kind() == reflect.Struct && !tagged {
			// Embedded structs flatten into the enclosing object unless the
			// tag gives them a member name.
			if err := writeStructFields(w, rv.Field(i)); err != nil {
				return err
			}
			continue
		}
		if err := w.WriteProperty(name, rv.Field(i).Interface()); err != nil {
			return err
		}
	}
	return nil
}

func writeNullToken(w Writer) error {
	_, err := io.WriteString(w.Out(), "null")
	return err
}
