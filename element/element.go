// SPDX-FileCopyrightText: © 2021 The sml authors <https://github.com/golangee/sml/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

// Package element contains the typed SML domain model, the registry which maps element names
// to constructors and the builder which projects parser.TreeNode trees onto typed elements.
package element

// Element is a typed domain element like a Page or a Text.
type Element interface {
	// ElementName is the name used in SML, e.g. "Column".
	ElementName() string
	// Values returns the current field values by field name, see Descriptor.Fields.
	Values() Values
}

// Container is an Element owning an ordered list of child elements.
type Container interface {
	Element
	Children() []Element
	// AddChild appends child and returns false if this container cannot hold that kind of element.
	AddChild(child Element) bool
}

// Widget is an Element which can be placed on a Page or inside a layout container.
type Widget interface {
	Element
	Sizing() Layout
}

// Layout contains the size hints shared by all widgets. Zero means unspecified.
type Layout struct {
	Width  int
	Height int
	Weight int
}

// Sizing implements Widget.
func (l Layout) Sizing() Layout {
	return l
}

func layoutFields() []Field {
	return []Field{
		IntField("width", 0),
		IntField("height", 0),
		IntField("weight", 0),
	}
}

func layoutFrom(v Values) Layout {
	return Layout{
		Width:  v.Int("width"),
		Height: v.Int("height"),
		Weight: v.Int("weight"),
	}
}

func (l Layout) put(v Values) Values {
	v["width"] = l.Width
	v["height"] = l.Height
	v["weight"] = l.Weight

	return v
}

// widgets converts a slice of widgets into plain elements.
func widgets(list []Widget) []Element {
	res := make([]Element, 0, len(list))
	for _, w := range list {
		res = append(res, w)
	}

	return res
}
