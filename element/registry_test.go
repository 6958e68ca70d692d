// SPDX-FileCopyrightText: © 2021 The sml authors <https://github.com/golangee/sml/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package element

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type badge struct {
	Text  string
	Count int
}

func (b *badge) ElementName() string { return "Badge" }
func (b *badge) Values() Values      { return Values{"text": b.Text, "count": b.Count} }

func badgeDescriptor(def int) Descriptor {
	return Descriptor{
		Name:   "Badge",
		Fields: []Field{StringField("text", ""), IntField("count", def)},
		New: func(v Values) (Element, error) {
			return &badge{Text: v.String("text"), Count: v.Int("count")}, nil
		},
	}
}

func TestRegistryRegister(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(badgeDescriptor(1)))

	d, ok := reg.Lookup("Badge")
	require.True(t, ok)
	f, ok := d.Field("count")
	require.True(t, ok)
	assert.Equal(t, 1, f.Default)

	// registering again overwrites
	require.NoError(t, reg.Register(badgeDescriptor(7)))
	d, _ = reg.Lookup("Badge")
	f, _ = d.Field("count")
	assert.Equal(t, 7, f.Default)
	assert.Equal(t, []string{"Badge"}, reg.Names())
}

func TestRegistryRejectsInvalidDescriptors(t *testing.T) {
	newFn := func(v Values) (Element, error) { return nil, nil }

	tests := []struct {
		name string
		d    Descriptor
	}{
		{"no name", Descriptor{New: newFn}},
		{"no constructor", Descriptor{Name: "X"}},
		{"wrong default type", Descriptor{Name: "X", New: newFn, Fields: []Field{{Name: "a", Kind: FieldInt, Default: "1"}}}},
		{"enum default not listed", Descriptor{Name: "X", New: newFn, Fields: []Field{EnumField("a", "c", "a", "b")}}},
		{"duplicate field", Descriptor{Name: "X", New: newFn, Fields: []Field{StringField("a", ""), IntField("a", 0)}}},
		{"field without name", Descriptor{Name: "X", New: newFn, Fields: []Field{StringField("", "")}}},
		{"invalid kind", Descriptor{Name: "X", New: newFn, Fields: []Field{{Name: "a"}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, NewRegistry().Register(tt.d))
		})
	}
}

func TestRegistryFillsZeroDefaults(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(Descriptor{
		Name:   "X",
		Fields: []Field{{Name: "n", Kind: FieldInt}, {Name: "p", Kind: FieldPadding}, {Name: "s", Kind: FieldColor}},
		New:    func(v Values) (Element, error) { return nil, nil },
	}))

	d, _ := reg.Lookup("X")
	assert.Equal(t, 0, d.Fields[0].Default)
	assert.Equal(t, Padding{}, d.Fields[1].Default)
	assert.Equal(t, "", d.Fields[2].Default)
}

func TestBuiltinNames(t *testing.T) {
	names := Builtin().Names()

	for _, n := range []string{
		"App", "Theme", "Deployment", "File", "Page",
		"Text", "Button", "Icon", "Image", "AsyncImage", "Spacer", "Video", "Youtube", "Sound",
		"Row", "Column", "Box", "Markdown", "Scene", "LazyColumn", "LazyRow",
		"Course", "Topic", "Subtopic",
	} {
		assert.Contains(t, names, n)
	}
}

// Every built-in element must report exactly the fields its descriptor declares.
func TestBuiltinValuesMatchDescriptors(t *testing.T) {
	reg := Builtin()

	for _, name := range reg.Names() {
		d, _ := reg.Lookup(name)

		el := NewBuilder(reg).Build(nodeNamed(name))
		require.NotNil(t, el, name)

		values := el.Values()
		for _, f := range d.Fields {
			if f.Kind == FieldElement {
				continue
			}

			v, ok := values[f.Name]
			if assert.True(t, ok, "%s.%s missing in Values()", name, f.Name) {
				assert.Equal(t, f.Default, v, "%s.%s", name, f.Name)
			}
		}

		assert.LessOrEqual(t, len(values), len(d.Fields), name)
	}
}
