// SPDX-FileCopyrightText: © 2021 The sml authors <https://github.com/golangee/sml/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package token

import (
	"strconv"

	"github.com/alecthomas/participle/v2/lexer"
)

// Node contains access to the start and end positions of a token.
type Node interface {
	Begin() Pos
	End() Pos
}

// A Pos describes a resolved position within a file.
type Pos struct {
	// File contains the file name as given to the lexer. It may be empty.
	File string
	// Line denotes the one-based line number in the denoted File.
	Line int
	// Col denotes the one-based column number in the denoted Line.
	Col int
	// Offset is the zero-based byte offset into the source.
	Offset int
}

// String returns the content in the "file:line:col" format.
func (p Pos) String() string {
	return p.File + ":" + strconv.Itoa(p.Line) + ":" + strconv.Itoa(p.Col)
}

// FromLexer converts a participle position.
func FromLexer(p lexer.Position) Pos {
	return Pos{
		File:   p.Filename,
		Line:   p.Line,
		Col:    p.Column,
		Offset: p.Offset,
	}
}

// Position spans the range of a token or a node.
type Position struct {
	BeginPos Pos
	EndPos   Pos
}

func (p Position) Begin() Pos {
	return p.BeginPos
}

func (p Position) End() Pos {
	return p.EndPos
}

type defaultNode struct {
	begin, end Pos
}

func (d defaultNode) Begin() Pos {
	return d.begin
}

func (d defaultNode) End() Pos {
	return d.end
}

func NewNode(begin, end Pos) Node {
	return defaultNode{begin, end}
}
