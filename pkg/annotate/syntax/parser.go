package syntax

import (
	"fmt"
	"strconv"

	"github.com/hintwire/hintwire/pkg/annotate"
	"github.com/hintwire/hintwire/pkg/types"
)

// tokenKind identifies a lexical token.
type tokenKind int

const (
	tokenIdent tokenKind = iota
	tokenInt
	tokenString
	tokenLBracket
	tokenRBracket
	tokenComma
	tokenEOF
)

func (k tokenKind) String() string {
	switch k {
	case tokenIdent:
		return "identifier"
	case tokenInt:
		return "integer"
	case tokenString:
		return "string"
	case tokenLBracket:
		return "'['"
	case tokenRBracket:
		return "']'"
	case tokenComma:
		return "','"
	case tokenEOF:
		return "end of input"
	default:
		return "unknown token"
	}
}

// token is a lexical token with its source position.
type token struct {
	kind tokenKind
	text string
	pos  int
}

// scanner produces tokens from an annotation expression.
type scanner struct {
	src string
	pos int
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// next returns the next token.
func (s *scanner) next() (token, error) {
	for s.pos < len(s.src) && (s.src[s.pos] == ' ' || s.src[s.pos] == '\t') {
		s.pos++
	}
	if s.pos >= len(s.src) {
		return token{kind: tokenEOF, pos: s.pos}, nil
	}

	start := s.pos
	c := s.src[s.pos]
	switch {
	case c == '[':
		s.pos++
		return token{kind: tokenLBracket, text: "[", pos: start}, nil
	case c == ']':
		s.pos++
		return token{kind: tokenRBracket, text: "]", pos: start}, nil
	case c == ',':
		s.pos++
		return token{kind: tokenComma, text: ",", pos: start}, nil
	case c == '"' || c == '\'':
		quote := c
		s.pos++
		for s.pos < len(s.src) && s.src[s.pos] != quote {
			s.pos++
		}
		if s.pos >= len(s.src) {
			return token{}, fmt.Errorf("unterminated string at position %d", start)
		}
		text := s.src[start+1 : s.pos]
		s.pos++
		return token{kind: tokenString, text: text, pos: start}, nil
	case isDigit(c):
		for s.pos < len(s.src) && isDigit(s.src[s.pos]) {
			s.pos++
		}
		return token{kind: tokenInt, text: s.src[start:s.pos], pos: start}, nil
	case isIdentStart(c):
		for s.pos < len(s.src) && isIdentPart(s.src[s.pos]) {
			s.pos++
		}
		return token{kind: tokenIdent, text: s.src[start:s.pos], pos: start}, nil
	default:
		return token{}, fmt.Errorf("unexpected character %q at position %d", c, start)
	}
}

// parser is a recursive-descent parser over the scanner's token stream.
type parser struct {
	s   scanner
	tok token
}

// Parse parses a single annotation expression into a type descriptor.
func Parse(src string) (annotate.TypeDescriptor, error) {
	p := parser{s: scanner{src: src}}
	if err := p.advance(); err != nil {
		return nil, err
	}

	desc, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.tok.kind != tokenEOF {
		return nil, fmt.Errorf("unexpected %s after annotation at position %d", p.tok.kind, p.tok.pos)
	}
	return desc, nil
}

func (p *parser) advance() error {
	tok, err := p.s.next()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

// parseExpr parses NAME or NAME '[' arglist ']'.
func (p *parser) parseExpr() (annotate.TypeDescriptor, error) {
	if p.tok.kind != tokenIdent {
		return nil, fmt.Errorf("expected a type name, got %s at position %d", p.tok.kind, p.tok.pos)
	}
	name := p.tok.text
	namePos := p.tok.pos
	if err := p.advance(); err != nil {
		return nil, err
	}

	if p.tok.kind != tokenLBracket {
		return nameDescriptor(name), nil
	}

	args, err := p.parseArgs()
	if err != nil {
		return nil, err
	}
	return buildGeneric(name, namePos, args)
}

// parseArgs parses '[' arg (',' arg)* ']'. Integer and string arguments
// are kept as raw values for Annotated metadata.
func (p *parser) parseArgs() ([]any, error) {
	// Consume '['.
	if err := p.advance(); err != nil {
		return nil, err
	}
	if p.tok.kind == tokenRBracket {
		return nil, fmt.Errorf("empty type argument list at position %d", p.tok.pos)
	}

	var args []any
	for {
		switch p.tok.kind {
		case tokenInt:
			n, err := strconv.Atoi(p.tok.text)
			if err != nil {
				return nil, fmt.Errorf("invalid integer %q at position %d", p.tok.text, p.tok.pos)
			}
			args = append(args, n)
			if err := p.advance(); err != nil {
				return nil, err
			}
		case tokenString:
			args = append(args, p.tok.text)
			if err := p.advance(); err != nil {
				return nil, err
			}
		default:
			desc, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			args = append(args, desc)
		}

		switch p.tok.kind {
		case tokenComma:
			if err := p.advance(); err != nil {
				return nil, err
			}
		case tokenRBracket:
			if err := p.advance(); err != nil {
				return nil, err
			}
			return args, nil
		default:
			return nil, fmt.Errorf("expected ',' or ']', got %s at position %d", p.tok.kind, p.tok.pos)
		}
	}
}

// nameDescriptor maps a bare name to its descriptor: primitive classes
// and sentinels by name, native kinds through the scalar-kind table, and
// anything else as a user class.
func nameDescriptor(name string) annotate.TypeDescriptor {
	switch name {
	case "int":
		return annotate.ClassInt
	case "float":
		return annotate.ClassFloat
	case "complex":
		return annotate.ClassComplex
	case "str":
		return annotate.ClassStr
	case "bool":
		return annotate.ClassBool
	case "None":
		return annotate.ClassNone
	case "ndarray":
		return annotate.ClassNDArray
	}
	if types.IsNativeKind(name) {
		return annotate.NativeKindDesc{Kind: types.NativeKind(name)}
	}
	return annotate.Class{Name: name}
}

// buildGeneric assembles a parametrized descriptor. Shape and arity
// violations (a three-member union, a two-argument list) parse fine and
// fail later in the resolution engine, which owns those contracts.
func buildGeneric(name string, pos int, args []any) (annotate.TypeDescriptor, error) {
	origin, ok := map[string]annotate.Origin{
		"List":  annotate.OriginList,
		"list":  annotate.OriginList,
		"Dict":  annotate.OriginDict,
		"dict":  annotate.OriginDict,
		"Set":   annotate.OriginSet,
		"set":   annotate.OriginSet,
		"Tuple": annotate.OriginTuple,
		"tuple": annotate.OriginTuple,
		"Union": annotate.OriginUnion,
	}[name]
	if ok {
		descs, err := descriptorArgs(name, args)
		if err != nil {
			return nil, err
		}
		return annotate.Generic{Origin: origin, Args: descs}, nil
	}

	switch name {
	case "Optional":
		descs, err := descriptorArgs(name, args)
		if err != nil {
			return nil, err
		}
		if len(descs) != 1 {
			return nil, fmt.Errorf("Optional takes exactly one type argument, got %d", len(descs))
		}
		return annotate.Generic{
			Origin: annotate.OriginUnion,
			Args:   []annotate.TypeDescriptor{descs[0], annotate.ClassNone},
		}, nil

	case "Annotated":
		inner, ok := args[0].(annotate.TypeDescriptor)
		if !ok {
			return nil, fmt.Errorf("Annotated requires a type as its first argument")
		}
		if len(args) < 2 {
			return nil, fmt.Errorf("Annotated requires at least one metadata argument")
		}
		return annotate.Annotated{Inner: inner, Metadata: args[1:]}, nil

	default:
		return nil, fmt.Errorf("%q is not a parametrizable type name (position %d)", name, pos)
	}
}

// descriptorArgs requires every argument to be a type expression.
func descriptorArgs(name string, args []any) ([]annotate.TypeDescriptor, error) {
	descs := make([]annotate.TypeDescriptor, len(args))
	for i, arg := range args {
		d, ok := arg.(annotate.TypeDescriptor)
		if !ok {
			return nil, fmt.Errorf("%s argument %d must be a type expression, got %v", name, i+1, arg)
		}
		descs[i] = d
	}
	return descs, nil
}
