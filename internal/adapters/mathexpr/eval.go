// Package mathexpr implements ports.Evaluator: the "evaluate arithmetic
// expression" capability. A guard regexp filters ordinary text before
// anything is compiled, so the evaluator never fires on conversation.
package mathexpr

import (
	"regexp"
	"strconv"

	"github.com/expr-lang/expr"
)

// arithmeticRe matches strings made only of digits, operators, parens,
// decimal points, and spaces.
var arithmeticRe = regexp.MustCompile(`^[0-9+\-*/%^(). ]+$`)

// hasDigit and hasOperator gate out bare numbers and operator-only noise.
var (
	digitRe    = regexp.MustCompile(`[0-9]`)
	operatorRe = regexp.MustCompile(`[+\-*/%^]`)
)

// Evaluator implements ports.Evaluator via expr-lang.
type Evaluator struct{}

// New returns an arithmetic evaluator.
func New() *Evaluator {
	return &Evaluator{}
}

// Evaluate returns the formatted result and true for a well-formed
// arithmetic expression, "", false otherwise. Compile or runtime errors
// (unbalanced parens, division noise) report false rather than erroring:
// the input simply falls through to matching.
func (e *Evaluator) Evaluate(input string) (string, bool) {
	if !arithmeticRe.MatchString(input) {
		return "", false
	}
	if !digitRe.MatchString(input) || !operatorRe.MatchString(input) {
		return "", false
	}

	program, err := expr.Compile(input)
	if err != nil {
		return "", false
	}
	result, err := expr.Run(program, nil)
	if err != nil {
		return "", false
	}

	switch v := result.(type) {
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	default:
		return "", false
	}
}
