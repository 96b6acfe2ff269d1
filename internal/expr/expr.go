// Package expr implements the small comparison grammar used to filter
// sequence values.
//
// An expression is evaluated once per element with the element bound to x:
//
//	x > 60 && x < 72
//	x % 2 == 0 or abs(x - 64) <= 3
//	not (x == 0)
//
// Supported: number literals, x, true, false, + - * / % (floored modulo),
// unary minus, < <= > >= == !=, && || ! (and or not), parentheses and the
// functions abs, floor, ceil and round. The whole expression must be boolean.
// Nothing outside this grammar is ever evaluated.
package expr

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrSyntax indicates an expression that does not parse.
	ErrSyntax = errors.New("expr: syntax error")

	// ErrType indicates a well-formed expression that mixes numbers and booleans
	// or is not boolean at the top level.
	ErrType = errors.New("expr: type error")
)

type numNode interface {
	num(x float64) float64
}

type boolNode interface {
	truth(x float64) bool
}

type literal float64

type variable struct{}

type negate struct{ arg numNode }

type arith struct {
	op   byte
	l, r numNode
}

type call struct {
	fn  func(float64) float64
	arg numNode
}

type boolLit bool

type compare struct {
	op   string
	l, r numNode
}

type logical struct {
	and  bool
	l, r boolNode
}

type not struct{ arg boolNode }

func (n literal) num(float64) float64 { return float64(n) }
func (variable) num(x float64) float64 { return x }
func (n negate) num(x float64) float64 { return -n.arg.num(x) }
func (n call) num(x float64) float64 { return n.fn(n.arg.num(x)) }
func (n boolLit) truth(float64) bool { return bool(n) }
func (n not) truth(x float64) bool { return !n.arg.truth(x) }

func (n logical) truth(x float64) bool {
	if n.and {
		return n.l.truth(x) && n.r.truth(x)
	}
	return n.l.truth(x) || n.r.truth(x)
}

func (n arith) num(x float64) float64 {
	a, b := n.l.num(x), n.r.num(x)
	switch n.op {
	case '+':
		return a + b
	case '-':
		return a - b
	case '*':
		return a * b
	case '/':
		return a / b
	default:
		r := math.Mod(a, b)
		if r != 0 && (r < 0) != (b < 0) {
			r += b
		}
		return r
	}
}

func (n compare) truth(x float64) bool {
	a, b := n.l.num(x), n.r.num(x)
	switch n.op {
	case "<":
		return a < b
	case "<=":
		return a <= b
	case ">":
		return a > b
	case ">=":
		return a >= b
	case "==":
		return a == b
	default:
		return a != b
	}
}

var functions = map[string]func(float64) float64{
	"abs":   math.Abs,
	"floor": math.Floor,
	"ceil":  math.Ceil,
	"round": math.RoundToEven,
}

// Program is a compiled boolean expression.
type Program struct {
	src  string
	root boolNode
}

// Compile parses src into a Program.
func Compile(src string) (*Program, error) {
	toks, err := lex(src)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	n, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if t := p.peek(); t.kind != tokEOF {
		return nil, fmt.Errorf("%w: unexpected %q at %d", ErrSyntax, t.text, t.pos)
	}
	root, ok := n.(boolNode)
	if !ok {
		return nil, fmt.Errorf("%w: expression %q is not boolean", ErrType, src)
	}
	return &Program{src: src, root: root}, nil
}

// String returns the source the program was compiled from.
func (p *Program) String() string {
	return p.src
}

// Eval reports whether x satisfies the expression.
func (p *Program) Eval(x float64) bool {
	return p.root.truth(x)
}

// Mask evaluates the expression for every value.
func (p *Program) Mask(values []float64) []bool {
	mask := make([]bool, len(values))
	for i, v := range values {
		mask[i] = p.root.truth(v)
	}
	return mask
}
