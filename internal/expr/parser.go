package expr

import "fmt"

type parser struct {
	toks []token
	pos  int
}

func (p *parser) peek() token {
	return p.toks[p.pos]
}

func (p *parser) next() token {
	t := p.toks[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

// accept consumes the next token if it is an operator or keyword in words.
func (p *parser) accept(words ...string) (string, bool) {
	t := p.peek()
	if t.kind != tokOp && t.kind != tokIdent {
		return "", false
	}
	for _, w := range words {
		if t.text == w {
			p.pos++
			return w, true
		}
	}
	return "", false
}

func asNum(n any, t token) (numNode, error) {
	v, ok := n.(numNode)
	if !ok {
		return nil, fmt.Errorf("%w: expected number near %q at %d", ErrType, t.text, t.pos)
	}
	return v, nil
}

func asBool(n any, t token) (boolNode, error) {
	v, ok := n.(boolNode)
	if !ok {
		return nil, fmt.Errorf("%w: expected boolean near %q at %d", ErrType, t.text, t.pos)
	}
	return v, nil
}

func (p *parser) parseOr() (any, error) {
	l, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for {
		t := p.peek()
		if _, ok := p.accept("||", "or"); !ok {
			return l, nil
		}
		r, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		lb, err := asBool(l, t)
		if err != nil {
			return nil, err
		}
		rb, err := asBool(r, t)
		if err != nil {
			return nil, err
		}
		l = logical{and: false, l: lb, r: rb}
	}
}

func (p *parser) parseAnd() (any, error) {
	l, err := p.parseNot()
	if err != nil {
		return nil, err
	}
	for {
		t := p.peek()
		if _, ok := p.accept("&&", "and"); !ok {
			return l, nil
		}
		r, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		lb, err := asBool(l, t)
		if err != nil {
			return nil, err
		}
		rb, err := asBool(r, t)
		if err != nil {
			return nil, err
		}
		l = logical{and: true, l: lb, r: rb}
	}
}

func (p *parser) parseNot() (any, error) {
	t := p.peek()
	if _, ok := p.accept("!", "not"); ok {
		n, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		b, err := asBool(n, t)
		if err != nil {
			return nil, err
		}
		return not{arg: b}, nil
	}
	return p.parseCompare()
}

func (p *parser) parseCompare() (any, error) {
	l, err := p.parseSum()
	if err != nil {
		return nil, err
	}
	t := p.peek()
	op, ok := p.accept("<", "<=", ">", ">=", "==", "!=")
	if !ok {
		return l, nil
	}
	r, err := p.parseSum()
	if err != nil {
		return nil, err
	}
	ln, err := asNum(l, t)
	if err != nil {
		return nil, err
	}
	rn, err := asNum(r, t)
	if err != nil {
		return nil, err
	}
	return compare{op: op, l: ln, r: rn}, nil
}

func (p *parser) parseSum() (any, error) {
	l, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		t := p.peek()
		op, ok := p.accept("+", "-")
		if !ok {
			return l, nil
		}
		r, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		if l, err = binaryArith(op[0], l, r, t); err != nil {
			return nil, err
		}
	}
}

func (p *parser) parseTerm() (any, error) {
	l, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		t := p.peek()
		op, ok := p.accept("*", "/", "%")
		if !ok {
			return l, nil
		}
		r, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		if l, err = binaryArith(op[0], l, r, t); err != nil {
			return nil, err
		}
	}
}

func binaryArith(op byte, l, r any, t token) (any, error) {
	ln, err := asNum(l, t)
	if err != nil {
		return nil, err
	}
	rn, err := asNum(r, t)
	if err != nil {
		return nil, err
	}
	return arith{op: op, l: ln, r: rn}, nil
}

func (p *parser) parseUnary() (any, error) {
	t := p.peek()
	if _, ok := p.accept("-"); ok {
		n, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		v, err := asNum(n, t)
		if err != nil {
			return nil, err
		}
		return negate{arg: v}, nil
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() (any, error) {
	t := p.next()
	switch t.kind {
	case tokNumber:
		return literal(t.num), nil
	case tokLParen:
		n, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		if err := p.expect(tokRParen); err != nil {
			return nil, err
		}
		return n, nil
	case tokIdent:
		switch t.text {
		case "x":
			return variable{}, nil
		case "true":
			return boolLit(true), nil
		case "false":
			return boolLit(false), nil
		}
		fn, ok := functions[t.text]
		if !ok {
			return nil, fmt.Errorf("%w: unknown identifier %q at %d", ErrSyntax, t.text, t.pos)
		}
		if err := p.expect(tokLParen); err != nil {
			return nil, err
		}
		n, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		if err := p.expect(tokRParen); err != nil {
			return nil, err
		}
		arg, err := asNum(n, t)
		if err != nil {
			return nil, err
		}
		return call{fn: fn, arg: arg}, nil
	case tokEOF:
		return nil, fmt.Errorf("%w: unexpected end of expression", ErrSyntax)
	default:
		return nil, fmt.Errorf("%w: unexpected %q at %d", ErrSyntax, t.text, t.pos)
	}
}

func (p *parser) expect(kind tokenKind) error {
	t := p.next()
	if t.kind != kind {
		want := "("
		if kind == tokRParen {
			want = ")"
		}
		return fmt.Errorf("%w: expected %q at %d", ErrSyntax, want, t.pos)
	}
	return nil
}
