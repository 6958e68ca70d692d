// SPDX-FileCopyrightText: © 2021 The sml authors <https://github.com/golangee/sml/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package parser

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/golangee/sml/token"
)

// document is the root: one or more elements and nothing else.
type document struct {
	Elements []*element `@@+`
}

// element is 'Name { (property | element)* }'.
type element struct {
	Pos    lexer.Position
	EndPos lexer.Position

	Name    string   `@Ident "{"`
	Entries []*entry `@@* "}"`
}

// entry needs two tokens of lookahead, because properties and elements both start with an identifier.
type entry struct {
	Property *property `  @@`
	Element  *element  `| @@`
}

type property struct {
	Pos lexer.Position

	Key   string `@Ident ":"`
	Value *value `@@`
}

// value tries the float before the int, otherwise "3.14" could never be a float.
// Numbers are captured as text and converted in decimal by value(), participle would
// read a leading zero as octal.
type value struct {
	Pos lexer.Position

	Float   *string        `  @Float`
	Int     *string        `| @Int`
	String  *string        `| @String`
	Bool    *string        `| @("true" | "false")`
	Element *inlineElement `| @@`
}

// inlineElement is an element used as a property value. It cannot have children.
type inlineElement struct {
	Name       string      `@Ident "{"`
	Properties []*property `@@* "}"`
}

var grammar = participle.MustBuild[document](
	participle.Lexer(token.Definition),
	participle.Elide(string(token.Whitespace), string(token.Comment)),
	participle.UseLookahead(2),
)

// Grammar returns the EBNF of the SML grammar.
func Grammar() string {
	return grammar.String()
}

func (d *document) nodes() ([]*TreeNode, error) {
	nodes := make([]*TreeNode, 0, len(d.Elements))
	for _, e := range d.Elements {
		n, err := e.node()
		if err != nil {
			return nil, err
		}

		nodes = append(nodes, n)
	}

	return nodes, nil
}

func (e *element) node() (*TreeNode, error) {
	n := NewNode(e.Name)
	n.Range = token.Position{
		BeginPos: token.FromLexer(e.Pos),
		EndPos:   token.FromLexer(e.EndPos),
	}

	for _, en := range e.Entries {
		switch {
		case en.Property != nil:
			v, err := en.Property.Value.value()
			if err != nil {
				return nil, err
			}

			n.Properties.Set(en.Property.Key, v)
		case en.Element != nil:
			child, err := en.Element.node()
			if err != nil {
				return nil, err
			}

			n.AddChildren(child)
		}
	}

	return n, nil
}

func (v *value) value() (Value, error) {
	switch {
	case v.Float != nil:
		f, err := strconv.ParseFloat(*v.Float, 64)
		if err != nil {
			return nil, v.literalError("float", *v.Float, err)
		}

		return FloatValue(f), nil
	case v.Int != nil:
		i, err := strconv.ParseInt(*v.Int, 10, 64)
		if err != nil {
			return nil, v.literalError("integer", *v.Int, err)
		}

		return IntValue(i), nil
	case v.String != nil:
		return StringValue(unquote(*v.String)), nil
	case v.Bool != nil:
		return BoolValue(*v.Bool == "true"), nil
	case v.Element != nil:
		ev := NewElementValue(v.Element.Name)
		for _, p := range v.Element.Properties {
			pv, err := p.Value.value()
			if err != nil {
				return nil, err
			}

			ev.Properties.Set(p.Key, pv)
		}

		return ev, nil
	}

	// unreachable, the grammar requires one of the alternatives
	return nil, NewParseError(token.FromLexer(v.Pos), "missing value")
}

// literalError positions a failed number conversion at the literal itself.
func (v *value) literalError(kind, text string, err error) *ParseError {
	begin := token.FromLexer(v.Pos)
	end := begin
	end.Col += len(text)
	end.Offset += len(text)

	msg := fmt.Sprintf("malformed %s literal '%s'", kind, text)
	if errors.Is(err, strconv.ErrRange) {
		msg = fmt.Sprintf("%s literal '%s' is out of range", kind, text)
	}

	return &ParseError{
		Pos:   begin,
		Msg:   msg,
		cause: token.NewPosError(token.NewNode(begin, end), msg).SetCause(err),
	}
}

// unquote removes the surrounding quotes. There are no escape sequences.
func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}

	return s
}
