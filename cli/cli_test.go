package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSet(t *testing.T) *OptionSet {
	t.Helper()
	s := NewOptionSet()
	require.NoError(t, s.Add(Option{Short: 'o', Long: "output", HasArg: true, Help: "output file"}))
	require.NoError(t, s.Add(Option{Short: 'v', Long: "verbose", Help: "verbose logging"}))
	require.NoError(t, s.Add(Option{Short: 'n', Long: "count", HasArg: true, Help: "row limit"}))
	require.NoError(t, s.Add(Option{Long: "since", HasArg: true, Help: "start date"}))
	return s
}

func TestOptionSet_Parse(t *testing.T) {
	s := newTestSet(t)
	cl, err := s.Parse([]string{"-v", "--output", "out.json", "--count=10", "input.txt"})
	require.NoError(t, err)

	assert.True(t, cl.Has("verbose"))
	assert.Equal(t, "out.json", cl.String("output", ""))
	n, err := cl.Int("count", 0)
	require.NoError(t, err)
	assert.Equal(t, 10, n)
	assert.Equal(t, []string{"input.txt"}, cl.Args())
}

func TestOptionSet_Defaults(t *testing.T) {
	s := newTestSet(t)
	cl, err := s.Parse(nil)
	require.NoError(t, err)

	assert.False(t, cl.Has("verbose"))
	assert.Equal(t, "fallback", cl.String("output", "fallback"))
	n, err := cl.Int("count", 25)
	require.NoError(t, err)
	assert.Equal(t, 25, n)
}

func TestOptionSet_GroupedShorts(t *testing.T) {
	s := newTestSet(t)
	cl, err := s.Parse([]string{"-vo", "out.json"})
	require.NoError(t, err)
	assert.True(t, cl.Has("verbose"))
	assert.Equal(t, "out.json", cl.String("output", ""))

	_, err = s.Parse([]string{"-ov", "out.json"})
	require.Error(t, err)
}

func TestOptionSet_DoubleDashTerminator(t *testing.T) {
	s := newTestSet(t)
	cl, err := s.Parse([]string{"-v", "--", "--output", "-n"})
	require.NoError(t, err)
	assert.True(t, cl.Has("verbose"))
	assert.False(t, cl.Has("output"))
	assert.Equal(t, []string{"--output", "-n"}, cl.Args())
}

func TestOptionSet_Errors(t *testing.T) {
	s := newTestSet(t)

	_, err := s.Parse([]string{"--nope"})
	assert.ErrorContains(t, err, "unknown option --nope")

	_, err = s.Parse([]string{"-x"})
	assert.ErrorContains(t, err, "unknown option -x")

	_, err = s.Parse([]string{"--output"})
	assert.ErrorContains(t, err, "requires a value")

	_, err = s.Parse([]string{"--verbose=yes"})
	assert.ErrorContains(t, err, "takes no value")
}

func TestOptionSet_Required(t *testing.T) {
	s := NewOptionSet()
	require.NoError(t, s.Add(Option{Long: "input", HasArg: true, Required: true}))

	_, err := s.Parse(nil)
	assert.ErrorContains(t, err, "required option --input")

	cl, err := s.Parse([]string{"--input", "a.json"})
	require.NoError(t, err)
	assert.Equal(t, "a.json", cl.String("input", ""))
}

func TestOptionSet_Duplicates(t *testing.T) {
	s := NewOptionSet()
	require.NoError(t, s.Add(Option{Short: 'a', Long: "alpha"}))
	assert.Error(t, s.Add(Option{Long: "alpha"}))
	assert.Error(t, s.Add(Option{Short: 'a', Long: "another"}))
	assert.Error(t, s.Add(Option{Short: 'b'}))
}

func TestCommandLine_Time(t *testing.T) {
	s := newTestSet(t)
	cl, err := s.Parse([]string{"--since", "2024-05-17"})
	require.NoError(t, err)

	ts, err := cl.Time("since", "2006-01-02", time.Time{})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 5, 17, 0, 0, 0, 0, time.UTC), ts)

	def := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	ts, err = cl.Time("output", "2006-01-02", def)
	require.NoError(t, err)
	assert.Equal(t, def, ts)
}

func TestOptionSet_Options(t *testing.T) {
	s := newTestSet(t)
	opts := s.Options()
	require.Len(t, opts, 4)
	assert.Equal(t, "output", opts[0].Long)
	assert.Equal(t, "since", opts[3].Long)
}
