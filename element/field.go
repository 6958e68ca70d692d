// SPDX-FileCopyrightText: © 2021 The sml authors <https://github.com/golangee/sml/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package element

import (
	"fmt"
	"slices"
	"strings"

	"github.com/mazznoer/csscolorparser"
	"golang.org/x/mod/semver"
)

// FieldKind declares the semantic type of a field.
type FieldKind int

const (
	FieldString FieldKind = iota + 1
	FieldInt
	// FieldFloat also accepts integer literals.
	FieldFloat
	FieldBool
	// FieldEnum accepts only the strings listed in Field.Enum.
	FieldEnum
	// FieldColor accepts any CSS color or the name of a theme role like "primary".
	FieldColor
	// FieldVersion accepts a semantic version with or without the "v" prefix.
	FieldVersion
	// FieldPadding parses a string with ParsePadding.
	FieldPadding
	// FieldElement holds an inline element, e.g. 'icon: Icon { ... }'.
	FieldElement
)

func (k FieldKind) String() string {
	switch k {
	case FieldString:
		return "string"
	case FieldInt:
		return "integer"
	case FieldFloat:
		return "float"
	case FieldBool:
		return "boolean"
	case FieldEnum:
		return "enum"
	case FieldColor:
		return "color"
	case FieldVersion:
		return "version"
	case FieldPadding:
		return "padding"
	case FieldElement:
		return "element"
	default:
		return fmt.Sprintf("FieldKind(%d)", int(k))
	}
}

// Field declares a named, typed property of an element and its default value.
type Field struct {
	Name    string
	Kind    FieldKind
	Default any
	// Enum lists the accepted values of a FieldEnum.
	Enum []string
	// Element restricts a FieldElement to inline elements of this name. Empty accepts any registered element.
	Element string
}

func StringField(name, def string) Field {
	return Field{Name: name, Kind: FieldString, Default: def}
}

func IntField(name string, def int) Field {
	return Field{Name: name, Kind: FieldInt, Default: def}
}

func FloatField(name string, def float64) Field {
	return Field{Name: name, Kind: FieldFloat, Default: def}
}

func BoolField(name string, def bool) Field {
	return Field{Name: name, Kind: FieldBool, Default: def}
}

func EnumField(name, def string, values ...string) Field {
	return Field{Name: name, Kind: FieldEnum, Default: def, Enum: values}
}

func ColorField(name, def string) Field {
	return Field{Name: name, Kind: FieldColor, Default: def}
}

func VersionField(name, def string) Field {
	return Field{Name: name, Kind: FieldVersion, Default: def}
}

func PaddingField(name string) Field {
	return Field{Name: name, Kind: FieldPadding, Default: Padding{}}
}

func ElementField(name, element string) Field {
	return Field{Name: name, Kind: FieldElement, Element: element}
}

// zero returns the neutral value of a kind.
func (k FieldKind) zero() any {
	switch k {
	case FieldInt:
		return 0
	case FieldFloat:
		return 0.0
	case FieldBool:
		return false
	case FieldPadding:
		return Padding{}
	case FieldElement:
		return nil
	default:
		return ""
	}
}

// normalize fills in a missing default and checks that the default fits the kind.
func (f Field) normalize() (Field, error) {
	if f.Name == "" {
		return f, fmt.Errorf("field without a name")
	}

	if f.Default == nil {
		f.Default = f.Kind.zero()
	}

	ok := false

	switch f.Kind {
	case FieldString, FieldColor, FieldVersion:
		_, ok = f.Default.(string)
	case FieldEnum:
		var s string
		s, ok = f.Default.(string)
		if ok && s != "" && !slices.Contains(f.Enum, s) {
			return f, fmt.Errorf("field '%s': default '%s' is not one of %s", f.Name, s, strings.Join(f.Enum, ", "))
		}
	case FieldInt:
		_, ok = f.Default.(int)
	case FieldFloat:
		_, ok = f.Default.(float64)
	case FieldBool:
		_, ok = f.Default.(bool)
	case FieldPadding:
		_, ok = f.Default.(Padding)
	case FieldElement:
		ok = f.Default == nil
	default:
		return f, fmt.Errorf("field '%s' has invalid kind %s", f.Name, f.Kind)
	}

	if !ok {
		return f, fmt.Errorf("field '%s': default %#v does not fit kind %s", f.Name, f.Default, f.Kind)
	}

	return f, nil
}

// validString checks the content of the string based kinds.
func (f Field) validString(s string) error {
	switch f.Kind {
	case FieldEnum:
		if !slices.Contains(f.Enum, s) {
			return fmt.Errorf("'%s' is not one of %s", s, strings.Join(f.Enum, ", "))
		}
	case FieldColor:
		if s == "" || IsThemeRole(s) {
			return nil
		}

		if _, err := csscolorparser.Parse(s); err != nil {
			return fmt.Errorf("'%s' is neither a color nor a theme role: %w", s, err)
		}
	case FieldVersion:
		if !semver.IsValid(CanonicalVersion(s)) {
			return fmt.Errorf("'%s' is not a semantic version", s)
		}
	}

	return nil
}

// CanonicalVersion adds the "v" prefix semver expects, if missing.
func CanonicalVersion(s string) string {
	if strings.HasPrefix(s, "v") {
		return s
	}

	return "v" + s
}

// Values holds resolved field values by field name. The dynamic types are
// string, int, float64, bool, Padding and Element, matching the FieldKind.
type Values map[string]any

func (v Values) String(key string) string {
	s, _ := v[key].(string)
	return s
}

func (v Values) Int(key string) int {
	i, _ := v[key].(int)
	return i
}

func (v Values) Float(key string) float64 {
	f, _ := v[key].(float64)
	return f
}

func (v Values) Bool(key string) bool {
	b, _ := v[key].(bool)
	return b
}

func (v Values) Padding(key string) Padding {
	p, _ := v[key].(Padding)
	return p
}

// Element returns nil if the key is absent or holds no element.
func (v Values) Element(key string) Element {
	e, _ := v[key].(Element)
	return e
}
