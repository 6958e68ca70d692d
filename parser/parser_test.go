// SPDX-FileCopyrightText: © 2021 The sml authors <https://github.com/golangee/sml/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package parser

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/golangee/sml/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stripRanges removes positional information, which is too noisy to compare.
func stripRanges(nodes []*TreeNode) []*TreeNode {
	for _, n := range nodes {
		n.Walk(func(n *TreeNode) bool {
			n.Range = token.Position{}
			return true
		})
	}

	return nodes
}

func TestParser(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    []*TreeNode
		wantErr bool
	}{
		{
			name: "single empty element",
			text: "Page {}",
			want: []*TreeNode{NewNode("Page")},
		},
		{
			name: "properties of all scalar kinds",
			text: `Text { text: "Hello" fontSize: 14 ratio: 1.5 visible: true hidden: false }`,
			want: []*TreeNode{
				NewNode("Text").
					AddProperty("text", StringValue("Hello")).
					AddProperty("fontSize", IntValue(14)).
					AddProperty("ratio", FloatValue(1.5)).
					AddProperty("visible", BoolValue(true)).
					AddProperty("hidden", BoolValue(false)),
			},
		},
		{
			name: "page with nested column",
			text: `Page {
				padding: "8 16"
				Column {
					Text { text: "Hello" fontSize: 14 }
				}
			}`,
			want: []*TreeNode{
				NewNode("Page").
					AddProperty("padding", StringValue("8 16")).
					AddChildren(NewNode("Column").AddChildren(
						NewNode("Text").
							AddProperty("text", StringValue("Hello")).
							AddProperty("fontSize", IntValue(14)),
					)),
			},
		},
		{
			name: "children keep their order",
			text: `Column { Row { id: "a" } Row { id: "b" } Text {} Row { id: "c" } }`,
			want: []*TreeNode{
				NewNode("Column").AddChildren(
					NewNode("Row").AddProperty("id", StringValue("a")),
					NewNode("Row").AddProperty("id", StringValue("b")),
					NewNode("Text"),
					NewNode("Row").AddProperty("id", StringValue("c")),
				),
			},
		},
		{
			name: "properties and children interleaved",
			text: `Row { a: 1 Text {} b: 2 }`,
			want: []*TreeNode{
				NewNode("Row").
					AddProperty("a", IntValue(1)).
					AddProperty("b", IntValue(2)).
					AddChildren(NewNode("Text")),
			},
		},
		{
			name: "last write wins",
			text: `Text { text: "a" size: 1 text: "b" }`,
			want: []*TreeNode{
				NewNode("Text").
					AddProperty("text", StringValue("b")).
					AddProperty("size", IntValue(1)),
			},
		},
		{
			name: "inline element value",
			text: `Button { label: "Home" icon: Icon { name: "home" size: 24 } }`,
			want: []*TreeNode{
				NewNode("Button").
					AddProperty("label", StringValue("Home")).
					AddProperty("icon", NewElementValue("Icon").
						AddProperty("name", StringValue("home")).
						AddProperty("size", IntValue(24))),
			},
		},
		{
			name: "leading zero is decimal",
			text: `Text { fontSize: 010 }`,
			want: []*TreeNode{NewNode("Text").AddProperty("fontSize", IntValue(10))},
		},
		{
			name: "leading zero before eight",
			text: `Text { fontSize: 08 }`,
			want: []*TreeNode{NewNode("Text").AddProperty("fontSize", IntValue(8))},
		},
		{
			name: "leading zero float",
			text: `Scene { ratio: 007.50 }`,
			want: []*TreeNode{NewNode("Scene").AddProperty("ratio", FloatValue(7.5))},
		},
		{
			name: "multiple top level elements",
			text: `App {} Page {}`,
			want: []*TreeNode{NewNode("App"), NewNode("Page")},
		},
		{
			name: "comments everywhere",
			text: `// head
				/* a */ Page /* b */ { // c
					/* d */ id /* e */ : /* f */ "x" // g
					Text /* h */ { }
				/* i */ } // tail
				/* end */`,
			want: []*TreeNode{
				NewNode("Page").
					AddProperty("id", StringValue("x")).
					AddChildren(NewNode("Text")),
			},
		},
		{
			name:    "empty document",
			text:    "",
			wantErr: true,
		},
		{
			name:    "only comments",
			text:    "// nothing\n/* here */",
			wantErr: true,
		},
		{
			name:    "missing close",
			text:    "Page {",
			wantErr: true,
		},
		{
			name:    "missing open",
			text:    "Page }",
			wantErr: true,
		},
		{
			name:    "dangling colon",
			text:    "Page { id: }",
			wantErr: true,
		},
		{
			name:    "property at top level",
			text:    `id: "x"`,
			wantErr: true,
		},
		{
			name:    "trailing garbage",
			text:    `Page {} Text`,
			wantErr: true,
		},
		{
			name:    "identifier as value",
			text:    `Page { id: hello }`,
			wantErr: true,
		},
		{
			name:    "integer overflow",
			text:    `Page { id: 99999999999999999999 }`,
			wantErr: true,
		},
		{
			name:    "float overflow",
			text:    "Scene { ratio: 1" + strings.Repeat("0", 400) + ".0 }",
			wantErr: true,
		},
		{
			name:    "overflow in inline element",
			text:    `Button { icon: Icon { size: 99999999999999999999 } }`,
			wantErr: true,
		},
		{
			name:    "inline element with child",
			text:    `Button { icon: Icon { Text {} } }`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nodes, err := Parse("parser_test.sml", tt.text)

			if tt.wantErr {
				var perr *ParseError
				require.Error(t, err)
				assert.True(t, errors.As(err, &perr), "expected a *ParseError, got %T", err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, stripRanges(nodes))
		})
	}
}

func TestFloatIsNotSplit(t *testing.T) {
	nodes, err := Parse("", `Scene { ratio: 3.14 }`)
	require.NoError(t, err)

	v, ok := nodes[0].Properties.Get("ratio")
	require.True(t, ok)
	assert.Equal(t, KindFloat, v.Kind())
	assert.Equal(t, FloatValue(3.14), v)
}

func TestParseErrorPosition(t *testing.T) {
	src := "Page {\n  Text {\n    text: \"x\"\n  }\n"

	_, err := Parse("broken.sml", src)

	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.False(t, perr.Lexical)
	assert.GreaterOrEqual(t, perr.Pos.Line, 4, perr.Error())
	assert.NotEmpty(t, perr.Explain(src))
}

func TestLiteralErrorPosition(t *testing.T) {
	src := "Page {\n  Text {\n    fontSize: 99999999999999999999\n  }\n}"

	_, err := Parse("page.sml", src)

	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.False(t, perr.Lexical)
	assert.Equal(t, "page.sml", perr.Pos.File)
	assert.Equal(t, 3, perr.Pos.Line)
	assert.Equal(t, 15, perr.Pos.Col)
	assert.Contains(t, perr.Error(), "page.sml:3:15")
	assert.Contains(t, perr.Error(), "out of range")
	assert.Contains(t, perr.Explain(src), "fontSize: 99999999999999999999")

	var posErr *token.PosError
	require.True(t, errors.As(err, &posErr))
	assert.ErrorIs(t, posErr, strconv.ErrRange)
}

func TestLexicalParseError(t *testing.T) {
	src := "Page { id: @ }"

	_, err := Parse("lex.sml", src)

	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.True(t, perr.Lexical)
	assert.Equal(t, 12, perr.Pos.Col)
	assert.Contains(t, perr.Error(), "unexpected character '@'")
	assert.Contains(t, perr.Explain(src), "Page { id: @ }")

	var posErr *token.PosError
	assert.True(t, errors.As(err, &posErr))
}

func TestEmptyDocumentMessage(t *testing.T) {
	_, err := Parse("empty.sml", "  \n ")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty document")
}

func TestRanges(t *testing.T) {
	nodes, err := Parse("range.sml", "Page {\n  Text {}\n}")
	require.NoError(t, err)

	page := nodes[0]
	assert.Equal(t, 1, page.Begin().Line)
	assert.Equal(t, 1, page.Begin().Col)

	text := page.Children[0]
	assert.Equal(t, 2, text.Begin().Line)
	assert.Equal(t, 3, text.Begin().Col)
}

func TestGrammar(t *testing.T) {
	assert.Contains(t, Grammar(), "Ident")
}
