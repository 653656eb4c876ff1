package mathexpr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluate_Basic(t *testing.T) {
	e := New()
	tests := []struct {
		input string
		want  string
	}{
		{"2+2", "4"},
		{"10 - 3", "7"},
		{"(3*4)/2", "6"},
		{"2.5 * 2", "5"},
		{"7 % 3", "1"},
	}
	for _, tt := range tests {
		got, ok := e.Evaluate(tt.input)
		assert.True(t, ok, "input %q", tt.input)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}
}

func TestEvaluate_RejectsOrdinaryText(t *testing.T) {
	e := New()
	for _, input := range []string{"what is love", "hello", "add 2 and 2", "version 2.0"} {
		_, ok := e.Evaluate(input)
		assert.False(t, ok, "input %q", input)
	}
}

func TestEvaluate_RejectsBareNumbers(t *testing.T) {
	e := New()
	_, ok := e.Evaluate("42")
	assert.False(t, ok)
	_, ok = e.Evaluate("3.14")
	assert.False(t, ok)
}

func TestEvaluate_MalformedExpression(t *testing.T) {
	e := New()
	for _, input := range []string{"2+", "((3*4)", "1 + + 2 )"} {
		_, ok := e.Evaluate(input)
		assert.False(t, ok, "input %q", input)
	}
}

func TestEvaluate_Empty(t *testing.T) {
	e := New()
	_, ok := e.Evaluate("")
	assert.False(t, ok)
}
