// SPDX-FileCopyrightText: © 2021 The sml authors <https://github.com/golangee/sml/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package sml

import (
	"bytes"
	"fmt"
	"io"

	"github.com/golangee/sml/element"
	"github.com/golangee/sml/encoder"
	"github.com/golangee/sml/parser"
)

// Marshal writes elements as SML text. Only fields which differ from their default are written,
// so that
//
//  doc, _ := ParseDocument(reg, src)
//  out, _ := Marshal(reg, doc.Roots...)
//
// produces a document which builds into an equal tree.
func Marshal(reg *element.Registry, elements ...element.Element) ([]byte, error) {
	var buf bytes.Buffer
	if err := NewMarshaler(&buf, reg).Marshal(elements...); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Marshaler writes elements to an io.Writer.
type Marshaler struct {
	reg    *element.Registry
	indent string
	w      io.Writer
}

// NewMarshaler creates a Marshaler with the default indentation of encoder.DefaultIndent.
func NewMarshaler(w io.Writer, reg *element.Registry) *Marshaler {
	return &Marshaler{
		reg:    reg,
		indent: encoder.DefaultIndent,
		w:      w,
	}
}

// SetIndent changes the indentation per nesting level.
func (m *Marshaler) SetIndent(indent string) *Marshaler {
	m.indent = indent
	return m
}

func (m *Marshaler) Marshal(elements ...element.Element) error {
	nodes := make([]*parser.TreeNode, 0, len(elements))

	for _, el := range elements {
		if el == nil {
			return fmt.Errorf("cannot marshal nil element")
		}

		n, err := element.ToNode(m.reg, el)
		if err != nil {
			return fmt.Errorf("cannot marshal '%s': %w", el.ElementName(), err)
		}

		nodes = append(nodes, n)
	}

	return encoder.NewEncoder(m.w).SetIndent(m.indent).Encode(nodes...)
}
