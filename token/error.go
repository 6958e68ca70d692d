// SPDX-FileCopyrightText: © 2021 The sml authors <https://github.com/golangee/sml/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package token

import (
	"fmt"
	"strconv"
	"strings"
)

type ErrDetail struct {
	Node    Node
	Message string
}

func NewErrDetail(node Node, msg string) ErrDetail {
	return ErrDetail{
		Node:    node,
		Message: msg,
	}
}

// PosError represents a very specific positional error with a lot of explaining noise. Use Explain.
type PosError struct {
	Details []ErrDetail
	Cause   error
	Hint    string
}

// NewPosError creates a new PosError with the given root cause and optional details.
func NewPosError(node Node, msg string, details ...ErrDetail) *PosError {
	tmp := append([]ErrDetail{NewErrDetail(node, msg)}, details...)

	return &PosError{
		Details: tmp,
	}
}

func (p *PosError) SetCause(err error) *PosError {
	p.Cause = err
	return p
}

func (p *PosError) SetHint(str string) *PosError {
	p.Hint = str
	return p
}

func (p *PosError) Unwrap() error {
	return p.Cause
}

func (p *PosError) firstDetail() ErrDetail {
	if len(p.Details) > 0 {
		return p.Details[0]
	}

	return ErrDetail{Node: NewNode(Pos{}, Pos{})}
}

// Pos returns the position of the first detail.
func (p *PosError) Pos() Pos {
	return p.firstDetail().Node.Begin()
}

func (p *PosError) Error() string {
	msg := p.Pos().String() + ": " + p.firstDetail().Message
	if p.Cause == nil {
		return msg
	}

	return msg + ": " + p.Cause.Error()
}

// line returns the text of the 1-based line no, clamped to the available lines.
func line(lines []string, no int) string {
	switch {
	case len(lines) == 0:
		return ""
	case no < 1:
		return lines[0]
	case no > len(lines):
		return lines[len(lines)-1]
	default:
		return strings.TrimRight(lines[no-1], "\r")
	}
}

// marker underlines a single line range, or points at the begin if the range spans lines.
func marker(begin, end Pos) string {
	pad := strings.Repeat(" ", max(begin.Col-1, 0))
	if end.Line != begin.Line || end.Col-begin.Col <= 1 {
		return pad + "^~~~"
	}

	return pad + strings.Repeat("^", end.Col-begin.Col)
}

// Explain renders every detail with its source line and a marker below, like:
//
//	page.sml:2:9
//	  |
//	2 |  id: 12.
//	  |        ^~~~ unexpected character '.'
//	  = hint: floating point literals need digits on both sides of the dot
//
// src is the text the positions refer to.
func (p *PosError) Explain(src string) string {
	lines := strings.Split(src, "\n")

	width := 1
	for _, d := range p.Details {
		width = max(width, len(strconv.Itoa(d.Node.Begin().Line)))
	}

	gutter := func(label string) string {
		return fmt.Sprintf("%*s |", width, label)
	}

	var sb strings.Builder

	lastFile := ""
	for i, d := range p.Details {
		begin, end := d.Node.Begin(), d.Node.End()

		if i == 0 || begin.File != lastFile {
			fmt.Fprintln(&sb, begin)
			lastFile = begin.File
		} else {
			fmt.Fprintf(&sb, "%s...\n", strings.Repeat(" ", width))
		}

		fmt.Fprintln(&sb, gutter(""))
		fmt.Fprintln(&sb, gutter(strconv.Itoa(begin.Line))+line(lines, begin.Line))
		fmt.Fprintln(&sb, gutter("")+marker(begin, end)+" "+d.Message)
	}

	if p.Hint != "" {
		fmt.Fprintf(&sb, "%*s = hint: %s\n", width, "", p.Hint)
	}

	return sb.String()
}
