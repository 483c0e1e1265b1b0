package script

import (
	"fmt"
	"strconv"
)

// node is a compiled expression.
type node interface {
	eval(ctx *Context) (interface{}, error)
}

type (
	literal struct {
		value interface{}
	}

	variable struct {
		name string
	}

	unary struct {
		operand node
	}

	binary struct {
		op          string
		left, right node
	}

	call struct {
		name string
		args []node
	}
)

// parser is a precedence-climbing parser over the token stream:
//
//	expr       := additive [comparison additive]
//	additive   := term {('+'|'-') term}
//	term       := factor {('*'|'/'|'%') factor}
//	factor     := '-' factor | primary
//	primary    := number | string | ident | ident '(' args ')' | '(' expr ')'
type parser struct {
	tokens []token
	pos    int
}

func parse(expr string) (node, error) {
	tokens, err := tokenize(expr)
	if err != nil {
		return nil, err
	}
	if len(tokens) == 0 {
		return nil, fmt.Errorf("empty expression")
	}
	p := &parser{tokens: tokens}
	result, err := p.expression()
	if err != nil {
		return nil, err
	}
	if p.pos < len(p.tokens) {
		t := p.tokens[p.pos]
		return nil, fmt.Errorf("unexpected %q at %d", t.text, t.pos)
	}
	return result, nil
}

func (p *parser) peek() *token {
	if p.pos >= len(p.tokens) {
		return nil
	}
	return &p.tokens[p.pos]
}

func (p *parser) next() *token {
	t := p.peek()
	if t != nil {
		p.pos++
	}
	return t
}

func (p *parser) expression() (node, error) {
	left, err := p.additive()
	if err != nil {
		return nil, err
	}
	if t := p.peek(); t != nil && t.code == comparisonCode {
		p.pos++
		right, err := p.additive()
		if err != nil {
			return nil, err
		}
		return &binary{op: t.text, left: left, right: right}, nil
	}
	return left, nil
}

func (p *parser) additive() (node, error) {
	left, err := p.term()
	if err != nil {
		return nil, err
	}
	for {
		t := p.peek()
		if t == nil || t.code != operatorCode || (t.text != "+" && t.text != "-") {
			return left, nil
		}
		p.pos++
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		left = &binary{op: t.text, left: left, right: right}
	}
}

func (p *parser) term() (node, error) {
	left, err := p.factor()
	if err != nil {
		return nil, err
	}
	for {
		t := p.peek()
		if t == nil || t.code != operatorCode || (t.text != "*" && t.text != "/" && t.text != "%") {
			return left, nil
		}
		p.pos++
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		left = &binary{op: t.text, left: left, right: right}
	}
}

func (p *parser) factor() (node, error) {
	if t := p.peek(); t != nil && t.code == operatorCode && t.text == "-" {
		p.pos++
		operand, err := p.factor()
		if err != nil {
			return nil, err
		}
		return &unary{operand: operand}, nil
	}
	return p.primary()
}

func (p *parser) primary() (node, error) {
	t := p.next()
	if t == nil {
		return nil, fmt.Errorf("unexpected end of expression")
	}
	switch t.code {
	case numberCode:
		if i, err := strconv.Atoi(t.text); err == nil {
			return &literal{value: i}, nil
		}
		f, err := strconv.ParseFloat(t.text, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q at %d", t.text, t.pos)
		}
		return &literal{value: f}, nil
	case stringCode:
		s, err := strconv.Unquote(t.text)
		if err != nil {
			return nil, fmt.Errorf("invalid string %s at %d", t.text, t.pos)
		}
		return &literal{value: s}, nil
	case identifierCode:
		switch t.text {
		case "true":
			return &literal{value: true}, nil
		case "false":
			return &literal{value: false}, nil
		}
		if next := p.peek(); next != nil && next.code == openParenCode {
			p.pos++
			args, err := p.arguments()
			if err != nil {
				return nil, err
			}
			if _, ok := builtins[t.text]; !ok {
				return nil, fmt.Errorf("unknown function %s at %d", t.text, t.pos)
			}
			return &call{name: t.text, args: args}, nil
		}
		return &variable{name: t.text}, nil
	case openParenCode:
		inner, err := p.expression()
		if err != nil {
			return nil, err
		}
		if closing := p.next(); closing == nil || closing.code != closeParenCode {
			return nil, fmt.Errorf("missing ) for ( at %d", t.pos)
		}
		return inner, nil
	}
	return nil, fmt.Errorf("unexpected %q at %d", t.text, t.pos)
}

func (p *parser) arguments() ([]node, error) {
	var args []node
	if t := p.peek(); t != nil && t.code == closeParenCode {
		p.pos++
		return args, nil
	}
	for {
		arg, err := p.expression()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		t := p.next()
		if t == nil {
			return nil, fmt.Errorf("unterminated argument list")
		}
		switch t.code {
		case commaCode:
			continue
		case closeParenCode:
			return args, nil
		}
		return nil, fmt.Errorf("unexpected %q at %d", t.text, t.pos)
	}
}
