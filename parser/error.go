// SPDX-FileCopyrightText: © 2021 The sml authors <https://github.com/golangee/sml/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package parser

import (
	"errors"

	"github.com/golangee/sml/token"
)

// ParseError is returned for any lexical or structural problem in a document.
type ParseError struct {
	Pos token.Pos
	Msg string
	// Lexical is true if no token rule matched at Pos.
	Lexical bool
	cause   error
}

// NewParseError creates a new ParseError at the given position.
func NewParseError(pos token.Pos, msg string) *ParseError {
	return &ParseError{
		Pos: pos,
		Msg: msg,
	}
}

func (e *ParseError) Error() string {
	return e.Pos.String() + ": " + e.Msg
}

func (e *ParseError) Unwrap() error {
	return e.cause
}

// Explain renders the error with the offending source line, see token.PosError.Explain.
func (e *ParseError) Explain(src string) string {
	var posErr *token.PosError
	if errors.As(e.cause, &posErr) {
		return posErr.Explain(src)
	}

	return token.NewPosError(token.NewNode(e.Pos, e.Pos), e.Msg).Explain(src)
}
