// SPDX-FileCopyrightText: © 2021 The sml authors <https://github.com/golangee/sml/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

// Package sml parses SML documents into typed element trees.
//
// A document is a sequence of brace delimited blocks with properties and nested blocks:
//
//  Page {
//      padding: "8 16"
//      Column {
//          Text { text: "Hello" fontSize: 14 }
//      }
//  }
//
// ParseDocument lexes and parses the text into parser.TreeNode values and projects them
// through an element.Registry into element.Element values. Unknown elements and wrongly
// typed properties never fail a document, they are reported as warnings instead.
package sml

import (
	"errors"

	"github.com/golangee/sml/element"
	"github.com/golangee/sml/internal/log"
	"github.com/golangee/sml/parser"
)

// Document is the result of a successful ParseDocument call.
type Document struct {
	// Roots are the supported top level elements in source order.
	Roots []element.Element
	// Nodes is the untyped parse tree the roots were built from.
	Nodes    []*parser.TreeNode
	Warnings []element.Warning
}

// Root returns the first top level element.
func (d *Document) Root() element.Element {
	if d == nil || len(d.Roots) == 0 {
		return nil
	}

	return d.Roots[0]
}

// DocumentError is returned by ParseDocument if no usable tree could be produced.
type DocumentError struct {
	// Stage is either "parse" or "build".
	Stage string
	Err   error
}

func (e *DocumentError) Error() string {
	return "could not " + e.Stage + ": " + e.Err.Error()
}

func (e *DocumentError) Unwrap() error {
	return e.Err
}

// Explain renders the error with the offending source line if it is a syntax error.
func (e *DocumentError) Explain(src string) string {
	var perr *parser.ParseError
	if errors.As(e.Err, &perr) {
		return "could not " + e.Stage + ": " + perr.Explain(src)
	}

	return e.Error()
}

// ParseDocument parses and builds src. It returns either a document or a *DocumentError, never both.
func ParseDocument(reg *element.Registry, src string) (*Document, error) {
	return ParseFile(reg, "", src)
}

// ParseFile is like ParseDocument but uses filename in positions.
func ParseFile(reg *element.Registry, filename, src string) (*Document, error) {
	nodes, err := parser.Parse(filename, src)
	if err != nil {
		log.Debug("%s", err)
		return nil, &DocumentError{Stage: "parse", Err: err}
	}

	b := element.NewBuilder(reg)
	roots := b.BuildAll(nodes)

	if len(roots) == 0 {
		return nil, &DocumentError{Stage: "build", Err: errors.New("no supported root element")}
	}

	return &Document{
		Roots:    roots,
		Nodes:    nodes,
		Warnings: b.Warnings,
	}, nil
}

// RegisterElementType adds or replaces an element type. Register all types before the first ParseDocument call.
func RegisterElementType(reg *element.Registry, d element.Descriptor) error {
	return reg.Register(d)
}
