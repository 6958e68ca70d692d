// SPDX-FileCopyrightText: © 2021 The sml authors <https://github.com/golangee/sml/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package encoder

import (
	"bytes"
	"testing"

	"github.com/golangee/sml/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name    string
		nodes   []*parser.TreeNode
		want    string
		wantErr bool
	}{
		{
			name:  "empty element",
			nodes: []*parser.TreeNode{parser.NewNode("Spacer")},
			want:  "Spacer {}\n",
		},
		{
			name: "properties before children",
			nodes: []*parser.TreeNode{
				parser.NewNode("Column").
					AddChildren(parser.NewNode("Text").AddProperty("text", parser.StringValue("Hi"))).
					AddProperty("weight", parser.IntValue(2)).
					AddProperty("ratio", parser.FloatValue(1)).
					AddProperty("scrollable", parser.BoolValue(true)),
			},
			want: `Column {
    weight: 2
    ratio: 1.0
    scrollable: true
    Text {
        text: "Hi"
    }
}
`,
		},
		{
			name: "inline element",
			nodes: []*parser.TreeNode{
				parser.NewNode("Button").AddProperty("icon", parser.NewElementValue("Icon").AddProperty("name", parser.StringValue("home"))),
			},
			want: "Button {\n    icon: Icon { name: \"home\" }\n}\n",
		},
		{
			name:  "multiple roots",
			nodes: []*parser.TreeNode{parser.NewNode("A"), parser.NewNode("B")},
			want:  "A {}\n\nB {}\n",
		},
		{
			name:    "quote in string",
			nodes:   []*parser.TreeNode{parser.NewNode("Text").AddProperty("text", parser.StringValue(`say "hi"`))},
			wantErr: true,
		},
		{
			name:    "quote in inline element",
			nodes:   []*parser.TreeNode{parser.NewNode("Button").AddProperty("icon", parser.NewElementValue("Icon").AddProperty("name", parser.StringValue(`"`)))},
			wantErr: true,
		},
		{
			name:    "invalid element name",
			nodes:   []*parser.TreeNode{parser.NewNode("my element")},
			wantErr: true,
		},
		{
			name:    "invalid property key",
			nodes:   []*parser.TreeNode{parser.NewNode("Text").AddProperty("1st", parser.IntValue(1))},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EncodeToString(tt.nodes...)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSetIndent(t *testing.T) {
	var buf bytes.Buffer
	n := parser.NewNode("Row").AddChildren(parser.NewNode("Spacer").AddProperty("amount", parser.IntValue(4)))

	require.NoError(t, NewEncoder(&buf).SetIndent("\t").Encode(n))
	assert.Equal(t, "Row {\n\tSpacer {\n\t\tamount: 4\n\t}\n}\n", buf.String())
}

// Encoding a parsed document and parsing the output again must be stable.
func TestEncodeIsStable(t *testing.T) {
	src := `// comment
	Page { id: "start" /* inline */ padding: "8 16"
		Column { Text { text: "a" fontSize: 18 } Scene { ratio: 2.0 } }
		Button { icon: Icon { name: "home" size: 32 } enabled: false }
	}`

	nodes, err := parser.Parse("stable.sml", src)
	require.NoError(t, err)

	first, err := EncodeToString(nodes...)
	require.NoError(t, err)

	again, err := parser.Parse("stable.sml", first)
	require.NoError(t, err)

	second, err := EncodeToString(again...)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Contains(t, first, "ratio: 2.0")
	assert.NotContains(t, first, "comment")
}
