package json

import (
	"bytes"
	stdjson "encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendQuoted(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", `""`},
		{"plain", `"plain"`},
		{`say "hi"`, `"say \"hi\""`},
		{`back\slash`, `"back\\slash"`},
		{"line\nbreak", `"line\nbreak"`},
		{"tab\there", `"tab\there"`},
		{"\r\b\f", `"\r\b\f"`},
		{"ctl\x01char", `"ctl\u0001char"`},
		{"héllo wörld", `"héllo wörld"`}, // UTF-8 passes through
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, string(appendQuoted(nil, tt.in)), "input %q", tt.in)
	}
}

func TestAppendQuoted_RoundTripsThroughStdlib(t *testing.T) {
	for _, in := range []string{"", "a", "\"\\\n\t\x00\x1f", "日本語", "mixed \x07 bytes"} {
		var got string
		require.NoError(t, stdjson.Unmarshal(appendQuoted(nil, in), &got))
		assert.Equal(t, in, got)
	}
}

func TestQuotedFieldNames(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, QuotedFieldNames{}.EncodeFieldName(&buf, `a"b`))
	assert.Equal(t, `"a\"b"`, buf.String())
}

func TestIdentifierFieldNames(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"_lead", "_lead"},
		{"$cash", "$cash"},
		{"a1", "a1"},
		{"1a", `"1a"`},
		{"", `""`},
		{"two words", `"two words"`},
		{"dash-ed", `"dash-ed"`},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		require.NoError(t, IdentifierFieldNames{}.EncodeFieldName(&buf, tt.in))
		assert.Equal(t, tt.want, buf.String(), "input %q", tt.in)
	}
}
