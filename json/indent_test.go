package json

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndenter_MatchesRepeat(t *testing.T) {
	for _, factor := range []int{0, 1, 2, 4, 8} {
		in := NewIndenter(factor)
		for depth := 0; depth < 32; depth++ {
			assert.Equal(t, strings.Repeat(" ", depth*factor), in.For(depth),
				"factor=%d depth=%d", factor, depth)
		}
	}
}

func TestIndenter_Idempotent(t *testing.T) {
	in := NewIndenter(2)
	first := in.For(7)
	second := in.For(7)
	assert.Equal(t, first, second)
}

func TestIndenter_OutOfOrderDepths(t *testing.T) {
	in := NewIndenter(3)
	assert.Equal(t, strings.Repeat(" ", 30), in.For(10))
	assert.Equal(t, "", in.For(0))
	assert.Equal(t, strings.Repeat(" ", 15), in.For(5))
}

func TestIndenter_NegativeFactorUsesDefault(t *testing.T) {
	in := NewIndenter(-1)
	assert.Equal(t, DefaultIndentFactor, in.Factor())
	assert.Equal(t, strings.Repeat(" ", DefaultIndentFactor*3), in.For(3))
}
