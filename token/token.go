// SPDX-FileCopyrightText: © 2021 The sml authors <https://github.com/golangee/sml/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package token

import (
	"fmt"
	"unicode/utf8"
)

// Kind classifies a Token. The values are the lexer rule names.
type Kind string

const (
	// Comment is either a line comment '// ...' or a block comment '/* ... */'.
	Comment    Kind = "Comment"
	Whitespace Kind = "Whitespace"
	// String is a double quoted literal. The quotes are part of the token value.
	String Kind = "String"
	Float  Kind = "Float"
	Int    Kind = "Int"
	// Identifier is a letter or underscore followed by letters, digits or underscores.
	Identifier Kind = "Ident"
	BlockStart Kind = "BlockStart"
	BlockEnd   Kind = "BlockEnd"
	Colon      Kind = "Colon"
)

// Token is a classified lexeme with its exact source text.
type Token struct {
	Position
	Kind  Kind
	Value string
}

// Ignored returns true for tokens which never contribute to the parse tree.
func (t Token) Ignored() bool {
	return t.Kind == Whitespace || t.Kind == Comment
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)@%d:%d", t.Kind, t.Value, t.BeginPos.Line, t.BeginPos.Col)
}

// advance returns the position right after text, if text starts at p.
func advance(p Pos, text string) Pos {
	for _, r := range text {
		p.Offset += utf8.RuneLen(r)
		if r == '\n' {
			p.Line++
			p.Col = 1
		} else {
			p.Col++
		}
	}

	return p
}
