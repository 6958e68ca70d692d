// SPDX-FileCopyrightText: © 2021 The sml authors <https://github.com/golangee/sml/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

// Package encoder writes parse trees back as SML text.
package encoder

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/golangee/sml/parser"
)

// DefaultIndent is used when no indent is configured.
const DefaultIndent = "    "

// Encoder writes parser.TreeNode forests in a canonical SML layout:
// one property per line, properties before children, children indented.
type Encoder struct {
	buffWriter *bufio.Writer
	indent     string
}

// NewEncoder creates a new Encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{
		buffWriter: bufio.NewWriter(w),
		indent:     DefaultIndent,
	}
}

// SetIndent sets the string which is repeated once per nesting level.
func (e *Encoder) SetIndent(indent string) *Encoder {
	e.indent = indent
	return e
}

// Encode writes all nodes, separated by a blank line, and flushes the output.
func (e *Encoder) Encode(nodes ...*parser.TreeNode) error {
	for i, n := range nodes {
		if i > 0 {
			if err := e.write("\n"); err != nil {
				return err
			}
		}

		if err := e.node(n, 0); err != nil {
			return err
		}
	}

	return e.buffWriter.Flush()
}

// EncodeToString is a convenience wrapper around Encode.
func EncodeToString(nodes ...*parser.TreeNode) (string, error) {
	var sb strings.Builder
	if err := NewEncoder(&sb).Encode(nodes...); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// write the given string to the encoders io.Writer.
func (e *Encoder) write(s string) error {
	_, err := e.buffWriter.WriteString(s)
	return err
}

func (e *Encoder) line(depth int, s string) error {
	return e.write(strings.Repeat(e.indent, depth) + s + "\n")
}

func (e *Encoder) node(n *parser.TreeNode, depth int) error {
	if err := checkIdent(n.Name); err != nil {
		return err
	}

	if n.Properties.Len() == 0 && len(n.Children) == 0 {
		return e.line(depth, n.Name+" {}")
	}

	if err := e.line(depth, n.Name+" {"); err != nil {
		return err
	}

	for _, p := range n.Properties.All() {
		v, err := value(p.Value)
		if err != nil {
			return fmt.Errorf("%s.%s: %w", n.Name, p.Key, err)
		}

		if err := checkIdent(p.Key); err != nil {
			return err
		}

		if err := e.line(depth+1, p.Key+": "+v); err != nil {
			return err
		}
	}

	for _, c := range n.Children {
		if err := e.node(c, depth+1); err != nil {
			return err
		}
	}

	return e.line(depth, "}")
}

// value renders a property value. Strings cannot contain a quote, because there are no escapes.
func value(v parser.Value) (string, error) {
	switch t := v.(type) {
	case parser.StringValue:
		if strings.Contains(string(t), `"`) {
			return "", fmt.Errorf("string %q contains a double quote, which cannot be represented", string(t))
		}
	case *parser.ElementValue:
		if err := checkIdent(t.Name); err != nil {
			return "", err
		}

		for _, p := range t.Properties.All() {
			if _, err := value(p.Value); err != nil {
				return "", fmt.Errorf("%s.%s: %w", t.Name, p.Key, err)
			}
		}
	case nil:
		return "", fmt.Errorf("missing value")
	}

	return v.String(), nil
}

// checkIdent rejects names which would not be read back as a single identifier.
func checkIdent(s string) error {
	if s == "" {
		return fmt.Errorf("empty identifier")
	}

	for i, r := range s {
		letter := r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		digit := r >= '0' && r <= '9'

		if !letter && (i == 0 || !digit) {
			return fmt.Errorf("'%s' is not a valid identifier", s)
		}
	}

	return nil
}
