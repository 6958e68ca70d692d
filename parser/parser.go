// SPDX-FileCopyrightText: © 2021 The sml authors <https://github.com/golangee/sml/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package parser

import (
	"errors"

	"github.com/alecthomas/participle/v2"
	"github.com/golangee/sml/token"
)

// Parse returns the top level elements of an SML document in source order.
// Every failure is a *ParseError. Parse has no state and may be called concurrently.
func Parse(filename, src string) ([]*TreeNode, error) {
	tokens, err := token.Tokenize(filename, src)
	if err != nil {
		return nil, lexError(err)
	}

	if !significant(tokens) {
		pos := token.Pos{File: filename, Line: 1, Col: 1}
		if len(tokens) > 0 {
			pos = tokens[len(tokens)-1].End()
		}

		return nil, NewParseError(pos, "empty document")
	}

	doc, err := grammar.ParseString(filename, src)
	if err != nil {
		return nil, grammarError(filename, err)
	}

	return doc.nodes()
}

// significant returns true if at least one token is neither whitespace nor a comment.
func significant(tokens []token.Token) bool {
	for _, t := range tokens {
		if !t.Ignored() {
			return true
		}
	}

	return false
}

func lexError(err error) *ParseError {
	var posErr *token.PosError
	if !errors.As(err, &posErr) {
		return &ParseError{Msg: err.Error(), Lexical: true, cause: err}
	}

	return &ParseError{
		Pos:     posErr.Pos(),
		Msg:     posErr.Details[0].Message,
		Lexical: true,
		cause:   posErr,
	}
}

func grammarError(filename string, err error) *ParseError {
	var perr participle.Error
	if errors.As(err, &perr) {
		return &ParseError{
			Pos:   token.FromLexer(perr.Position()),
			Msg:   perr.Message(),
			cause: err,
		}
	}

	return &ParseError{
		Pos:   token.Pos{File: filename},
		Msg:   err.Error(),
		cause: err,
	}
}
