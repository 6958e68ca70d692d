// SPDX-FileCopyrightText: © 2021 The sml authors <https://github.com/golangee/sml/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package token

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/alecthomas/participle/v2/lexer"
)

const (
	// sComment matches a line comment or a non-greedy block comment spanning newlines.
	sComment = `//[^\n]*|/\*(?s:.*?)\*/`

	// sString denotes an arbitrary string in double quotes. There are no escapes, so it cannot contain a '"'.
	sString = `"[^"]*"`

	// sFloat must be tried before sInt, because sInt is a prefix of it.
	sFloat = `[0-9]+\.[0-9]+`

	sInt = `[0-9]+`

	sIdentifier = `[a-zA-Z_][a-zA-Z0-9_]*`
)

// Definition is the lexer definition shared by Tokenize and the grammar in package parser.
// The rules are tried in order and the first match wins.
var Definition = lexer.MustSimple([]lexer.SimpleRule{
	{Name: string(Comment), Pattern: sComment},
	{Name: string(Whitespace), Pattern: `\s+`},
	{Name: string(String), Pattern: sString},
	{Name: string(Float), Pattern: sFloat},
	{Name: string(Int), Pattern: sInt},
	{Name: string(Identifier), Pattern: sIdentifier},
	{Name: string(BlockStart), Pattern: `\{`},
	{Name: string(BlockEnd), Pattern: `\}`},
	{Name: string(Colon), Pattern: `:`},
})

// kinds maps the participle token types back to our kinds.
var kinds = func() map[lexer.TokenType]Kind {
	m := map[lexer.TokenType]Kind{}
	for name, tt := range Definition.Symbols() {
		m[tt] = Kind(name)
	}

	return m
}()

// positioned is implemented by the participle lexer and parser errors.
type positioned interface {
	Position() lexer.Position
}

// Tokenize splits src into tokens, including whitespace and comments.
// If no rule matches at some position, a *PosError pointing to the offending character is returned
// together with all tokens read so far.
func Tokenize(filename, src string) ([]Token, error) {
	lex, err := Definition.LexString(filename, src)
	if err != nil {
		return nil, err
	}

	var tokens []Token

	for {
		tok, err := lex.Next()
		if err != nil {
			return tokens, NewLexError(src, err)
		}

		if tok.EOF() {
			return tokens, nil
		}

		begin := FromLexer(tok.Pos)
		tokens = append(tokens, Token{
			Position: Position{BeginPos: begin, EndPos: advance(begin, tok.Value)},
			Kind:     kinds[tok.Type],
			Value:    tok.Value,
		})
	}
}

// NewLexError converts an error of the participle lexer into a *PosError describing the
// unexpected character. Errors without a position are returned unchanged.
func NewLexError(src string, err error) error {
	var p positioned
	if !errors.As(err, &p) {
		return err
	}

	pos := FromLexer(p.Position())
	end := pos
	msg := "unexpected end of input"

	if pos.Offset < len(src) {
		r, size := utf8.DecodeRuneInString(src[pos.Offset:])
		end = advance(pos, src[pos.Offset:pos.Offset+size])
		msg = fmt.Sprintf("unexpected character '%c'", r)
	}

	return NewPosError(NewNode(pos, end), msg).SetHint(lexHint(src, pos))
}

// lexHint explains the most common reasons for a character to be rejected.
func lexHint(src string, pos Pos) string {
	if pos.Offset >= len(src) {
		return ""
	}

	switch src[pos.Offset] {
	case '"':
		return `strings must be closed with a second '"' and cannot contain escaped quotes`
	case '/':
		return "block comments must be closed with */"
	case '.':
		return "floating point literals need digits on both sides of the dot"
	}

	return ""
}
