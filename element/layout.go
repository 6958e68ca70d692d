// SPDX-FileCopyrightText: © 2021 The sml authors <https://github.com/golangee/sml/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package element

// Page is a single screen of an app or a book.
type Page struct {
	ID              string
	Title           string
	Language        string
	Padding         Padding
	Color           string
	BackgroundColor string
	Scrollable      bool
	Elements        []Widget
}

func (p *Page) ElementName() string { return "Page" }

func (p *Page) Values() Values {
	return Values{
		"id":              p.ID,
		"title":           p.Title,
		"language":        p.Language,
		"padding":         p.Padding,
		"color":           p.Color,
		"backgroundColor": p.BackgroundColor,
		"scrollable":      p.Scrollable,
	}
}

func (p *Page) Children() []Element {
	return widgets(p.Elements)
}

func (p *Page) AddChild(child Element) bool {
	w, ok := child.(Widget)
	if ok {
		p.Elements = append(p.Elements, w)
	}

	return ok
}

func pageDescriptor() Descriptor {
	return Descriptor{
		Name: "Page",
		Fields: []Field{
			StringField("id", ""),
			StringField("title", ""),
			StringField("language", ""),
			PaddingField("padding"),
			ColorField("color", ""),
			ColorField("backgroundColor", ""),
			BoolField("scrollable", false),
		},
		New: func(v Values) (Element, error) {
			return &Page{
				ID:              v.String("id"),
				Title:           v.String("title"),
				Language:        v.String("language"),
				Padding:         v.Padding("padding"),
				Color:           v.String("color"),
				BackgroundColor: v.String("backgroundColor"),
				Scrollable:      v.Bool("scrollable"),
			}, nil
		},
	}
}

// Stack is the common part of the layout containers Row, Column, Box, LazyRow and LazyColumn.
type Stack struct {
	Layout
	Padding         Padding
	BackgroundColor string
	Elements        []Widget
}

func (s *Stack) Children() []Element {
	return widgets(s.Elements)
}

// AddChild accepts any widget, including other layout containers.
func (s *Stack) AddChild(child Element) bool {
	w, ok := child.(Widget)
	if ok {
		s.Elements = append(s.Elements, w)
	}

	return ok
}

func (s *Stack) values() Values {
	v := Values{
		"padding":         s.Padding,
		"backgroundColor": s.BackgroundColor,
	}

	return s.Layout.put(v)
}

func stackFields() []Field {
	return append([]Field{
		PaddingField("padding"),
		ColorField("backgroundColor", ""),
	}, layoutFields()...)
}

func stackFrom(v Values) Stack {
	return Stack{
		Layout:          layoutFrom(v),
		Padding:         v.Padding("padding"),
		BackgroundColor: v.String("backgroundColor"),
	}
}

// Row lays out its children horizontally.
type Row struct{ Stack }

func (r *Row) ElementName() string { return "Row" }
func (r *Row) Values() Values      { return r.values() }

// Column lays out its children vertically.
type Column struct{ Stack }

func (c *Column) ElementName() string { return "Column" }
func (c *Column) Values() Values      { return c.values() }

// Box stacks its children on top of each other.
type Box struct{ Stack }

func (b *Box) ElementName() string { return "Box" }
func (b *Box) Values() Values      { return b.values() }

// LazyColumn is a vertical list, optionally filled from the data source at URL.
type LazyColumn struct {
	Stack
	URL string
}

func (c *LazyColumn) ElementName() string { return "LazyColumn" }

func (c *LazyColumn) Values() Values {
	v := c.values()
	v["url"] = c.URL

	return v
}

// LazyRow is a horizontal list, optionally filled from the data source at URL.
type LazyRow struct {
	Stack
	URL string
}

func (r *LazyRow) ElementName() string { return "LazyRow" }

func (r *LazyRow) Values() Values {
	v := r.values()
	v["url"] = r.URL

	return v
}

func stackDescriptor(name string, lazy bool, create func(s Stack, url string) Element) Descriptor {
	fields := stackFields()
	if lazy {
		fields = append(fields, StringField("url", ""))
	}

	return Descriptor{
		Name:   name,
		Fields: fields,
		New: func(v Values) (Element, error) {
			return create(stackFrom(v), v.String("url")), nil
		},
	}
}

func layoutDescriptors() []Descriptor {
	return []Descriptor{
		stackDescriptor("Row", false, func(s Stack, _ string) Element { return &Row{s} }),
		stackDescriptor("Column", false, func(s Stack, _ string) Element { return &Column{s} }),
		stackDescriptor("Box", false, func(s Stack, _ string) Element { return &Box{s} }),
		stackDescriptor("LazyRow", true, func(s Stack, url string) Element { return &LazyRow{Stack: s, URL: url} }),
		stackDescriptor("LazyColumn", true, func(s Stack, url string) Element { return &LazyColumn{Stack: s, URL: url} }),
	}
}
