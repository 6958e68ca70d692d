// SPDX-FileCopyrightText: © 2021 The sml authors <https://github.com/golangee/sml/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package parser

import (
	"strconv"
	"strings"
)

// ValueKind tells which variant of a Value is active.
type ValueKind int

const (
	KindString ValueKind = iota + 1
	KindInt
	KindFloat
	KindBool
	KindElement
)

func (k ValueKind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "integer"
	case KindFloat:
		return "float"
	case KindBool:
		return "boolean"
	case KindElement:
		return "element"
	default:
		return "invalid"
	}
}

// Value is the closed union of property values.
// It is implemented by StringValue, IntValue, FloatValue, BoolValue and *ElementValue only.
type Value interface {
	Kind() ValueKind
	// String returns the value as written in SML.
	String() string
	sealed()
}

// StringValue is the verbatim text between the quotes.
type StringValue string

func (StringValue) Kind() ValueKind { return KindString }
func (StringValue) sealed()         {}
func (v StringValue) String() string {
	return `"` + string(v) + `"`
}

type IntValue int64

func (IntValue) Kind() ValueKind { return KindInt }
func (IntValue) sealed()         {}
func (v IntValue) String() string {
	return strconv.FormatInt(int64(v), 10)
}

type FloatValue float64

func (FloatValue) Kind() ValueKind { return KindFloat }
func (FloatValue) sealed()         {}

// String always contains a dot, otherwise the text would be read back as an IntValue.
func (v FloatValue) String() string {
	s := strconv.FormatFloat(float64(v), 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}

	return s
}

type BoolValue bool

func (BoolValue) Kind() ValueKind { return KindBool }
func (BoolValue) sealed()         {}
func (v BoolValue) String() string {
	return strconv.FormatBool(bool(v))
}

// ElementValue is an inline element used as a property value, e.g. 'icon: Icon { name: "home" }'.
// It has no children.
type ElementValue struct {
	Name       string
	Properties Properties
}

// NewElementValue creates an inline element without properties.
func NewElementValue(name string) *ElementValue {
	return &ElementValue{Name: name}
}

// AddProperty sets a property and can be used builder-style.
func (e *ElementValue) AddProperty(key string, value Value) *ElementValue {
	e.Properties.Set(key, value)
	return e
}

func (*ElementValue) Kind() ValueKind { return KindElement }
func (*ElementValue) sealed()         {}
func (e *ElementValue) String() string {
	var sb strings.Builder

	sb.WriteString(e.Name)
	sb.WriteString(" {")

	e.Properties.Each(func(key string, value Value) {
		sb.WriteByte(' ')
		sb.WriteString(key)
		sb.WriteString(": ")
		sb.WriteString(value.String())
	})

	sb.WriteString(" }")

	return sb.String()
}
