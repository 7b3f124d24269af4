package json

import (
	"bytes"
	stdjson "encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTopLevel(t *testing.T, v any) string {
	t.Helper()
	var buf bytes.Buffer
	w := NewPrintableWriter(NewContext(), &buf)
	require.NoError(t, w.WriteValue(v))
	return buf.String()
}

func TestScalarTokens(t *testing.T) {
	tests := []struct {
		v    any
		want string
	}{
		{true, "true"},
		{false, "false"},
		{"x", `"x"`},
		{0, "0"},
		{-42, "-42"},
		{int64(1 << 40), "1099511627776"},
		{uint8(255), "255"},
		{uint64(math.MaxUint64), "18446744073709551615"},
		{1.5, "1.5"},
		{float32(0.25), "0.25"},
		{float64(-3), "-3"},
		{Raw(`{"verbatim":1}`), `{"verbatim":1}`},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, writeTopLevel(t, tt.v), "value %#v", tt.v)
	}
}

func TestScalarTokens_Time(t *testing.T) {
	ts := time.Date(2024, 5, 17, 8, 30, 0, 0, time.UTC)
	assert.Equal(t, `"2024-05-17T08:30:00Z"`, writeTopLevel(t, ts))
}

func TestScalarTokens_Bytes(t *testing.T) {
	assert.Equal(t, `"aGVsbG8="`, writeTopLevel(t, []byte("hello")))
}

func TestScalarTokens_NonFiniteFloatFails(t *testing.T) {
	var buf bytes.Buffer
	w := NewPrintableWriter(NewContext(), &buf)
	err := w.WriteValue(math.NaN())
	require.Error(t, err)
	var si *StrategyInvocationError
	assert.ErrorAs(t, err, &si)
}

func TestReflectFallback_NamedTypes(t *testing.T) {
	type level int
	type tag string
	assert.Equal(t, "3", writeTopLevel(t, level(3)))
	assert.Equal(t, `"prod"`, writeTopLevel(t, tag("prod")))
}

func TestReflectFallback_PointersAndNils(t *testing.T) {
	n := 7
	assert.Equal(t, "7", writeTopLevel(t, &n))

	var nilPtr *int
	assert.Equal(t, "null", writeTopLevel(t, nilPtr))
}

func TestReflectFallback_SliceOfAny(t *testing.T) {
	out := writeTopLevel(t, []any{1, "two", nil, true})
	assert.Equal(t, "[\n  1,\n  \"two\",\n  null,\n  true\n]", out)
}

func TestReflectFallback_StructTags(t *testing.T) {
	type record struct {
		Name     string `json:"name"`
		Omitted  string `json:"-"`
		Untagged int
		hidden   int
	}
	out := writeTopLevel(t, record{Name: "n", Omitted: "x", Untagged: 2, hidden: 3})
	assert.Equal(t, "{\n  \"name\": \"n\",\n  \"Untagged\": 2\n}", out)
}

func TestReflectFallback_EmbeddedStructFlattens(t *testing.T) {
	type Inner struct {
		A int `json:"a"`
	}
	type Outer struct {
		Inner
		B int `json:"b"`
	}
	out := writeTopLevel(t, Outer{Inner: Inner{A: 1}, B: 2})
	assert.Equal(t, "{\n  \"a\": 1,\n  \"b\": 2\n}", out)
}

func TestReflectFallback_NestedContainers(t *testing.T) {
	v := map[string]any{
		"list": []int{1, 2},
		"obj":  map[string]string{"k": "v"},
	}
	out := writeTopLevel(t, v)

	// Spot-check the shape, then prove well-formedness with the stdlib.
	assert.Contains(t, out, "\"list\":")
	var parsed map[string]any
	require.NoError(t, stdjson.Unmarshal([]byte(out), &parsed))
	assert.Equal(t, []any{float64(1), float64(2)}, parsed["list"])
	assert.Equal(t, map[string]any{"k": "v"}, parsed["obj"])
}

func TestReflectFallback_IntKeyedMap(t *testing.T) {
	out := writeTopLevel(t, map[int]string{2: "b", 1: "a", 10: "j"})
	// Keys sort lexically by their formatted token.
	assert.Equal(t, "{\n  \"1\": \"a\",\n  \"10\": \"j\",\n  \"2\": \"b\"\n}", out)
}

func TestReflectFallback_UnsupportedKind(t *testing.T) {
	var buf bytes.Buffer
	w := NewPrintableWriter(NewContext(), &buf)
	err := w.WriteValue(func() {})
	require.Error(t, err)
	var si *StrategyInvocationError
	assert.ErrorAs(t, err, &si)
}

// Everything the writer accepts without error must parse as JSON.
func TestWellFormedness(t *testing.T) {
	var buf bytes.Buffer
	w := NewPrintableWriter(NewContext(), &buf)

	require.NoError(t, w.BeginObject())
	require.NoError(t, w.WriteProperty("s", "text with \"quotes\" and \n breaks"))
	require.NoError(t, w.WriteProperty("n", 1.25))
	require.NoError(t, w.WriteProperty("t", time.Unix(0, 0).UTC()))
	require.NoError(t, w.WriteComplexProperty("nested"))
	require.NoError(t, w.BeginArray())
	require.NoError(t, w.WriteValue(map[string]any{"deep": []any{1, nil}}))
	require.NoError(t, w.BeginObject())
	require.NoError(t, w.WriteProperty("inner", []string{"a", "b"}))
	require.NoError(t, w.EndObject())
	require.NoError(t, w.EndArray())
	require.NoError(t, w.WriteProperty("z", nil))
	require.NoError(t, w.EndObject())

	assert.True(t, stdjson.Valid(buf.Bytes()), "output is not valid JSON:\n%s", buf.String())
}
