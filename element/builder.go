// SPDX-FileCopyrightText: © 2021 The sml authors <https://github.com/golangee/sml/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package element

import (
	"fmt"

	"github.com/golangee/sml/internal/log"
	"github.com/golangee/sml/parser"
	"github.com/golangee/sml/token"
)

// WarningKind classifies the conditions under which the Builder degraded instead of failing.
type WarningKind int

const (
	// UnknownElement means the node name is not registered. The node is skipped.
	UnknownElement WarningKind = iota + 1
	// FieldTypeMismatch means a property had the wrong value kind. The field got its default.
	FieldTypeMismatch
	// InvalidValue means a property had the right kind but an unacceptable content,
	// like an unknown enum value or an unparseable color. The field got its default.
	InvalidValue
	// UnsupportedChild means a child element was built but its parent cannot hold it.
	UnsupportedChild
	// ConstructionFailed means the constructor returned an error or panicked. The node is skipped.
	ConstructionFailed
)

func (k WarningKind) String() string {
	switch k {
	case UnknownElement:
		return "unknown element"
	case FieldTypeMismatch:
		return "field type mismatch"
	case InvalidValue:
		return "invalid value"
	case UnsupportedChild:
		return "unsupported child"
	case ConstructionFailed:
		return "construction failed"
	default:
		return fmt.Sprintf("WarningKind(%d)", int(k))
	}
}

// Warning describes a degradation while building a single node.
type Warning struct {
	Kind    WarningKind
	Pos     token.Pos
	Element string
	// Field is empty for element level warnings.
	Field string
	Msg   string
}

func (w Warning) String() string {
	subject := w.Element
	if w.Field != "" {
		subject += "." + w.Field
	}

	return fmt.Sprintf("%s: %s: %s: %s", w.Pos, w.Kind, subject, w.Msg)
}

// Builder projects parse trees onto typed elements using a Registry.
// A Builder collects warnings and is not safe for concurrent use, create one per document.
type Builder struct {
	Registry *Registry
	Warnings []Warning
}

// NewBuilder creates a Builder for the given registry.
func NewBuilder(reg *Registry) *Builder {
	return &Builder{Registry: reg}
}

// BuildAll builds every node and returns the non-nil results in order.
func (b *Builder) BuildAll(nodes []*parser.TreeNode) []Element {
	var res []Element

	for _, n := range nodes {
		if el := b.Build(n); el != nil {
			res = append(res, el)
		}
	}

	return res
}

// Build returns the typed element for node, or nil if the name is unknown or the
// construction failed. Problems never abort the build, they are recorded as Warnings.
func (b *Builder) Build(node *parser.TreeNode) Element {
	desc, ok := b.Registry.Lookup(node.Name)
	if !ok {
		b.warn(UnknownElement, node, "", "element is not supported and was skipped")
		return nil
	}

	values := b.resolve(desc, node)

	el := b.construct(desc, values, node)
	if el == nil {
		return nil
	}

	container, isContainer := el.(Container)
	if !isContainer {
		if len(node.Children) > 0 {
			b.warn(UnsupportedChild, node, "", fmt.Sprintf("'%s' cannot have children, %d ignored", node.Name, len(node.Children)))
		}

		return el
	}

	for _, childNode := range node.Children {
		child := b.Build(childNode)
		if child == nil {
			continue
		}

		if !container.AddChild(child) {
			b.warn(UnsupportedChild, childNode, "", fmt.Sprintf("'%s' cannot be placed inside '%s'", childNode.Name, node.Name))
		}
	}

	return el
}

// construct calls the constructor and turns errors and panics into a nil element.
func (b *Builder) construct(desc *Descriptor, values Values, node *parser.TreeNode) (el Element) {
	defer func() {
		if r := recover(); r != nil {
			b.warn(ConstructionFailed, node, "", fmt.Sprintf("constructor panicked: %v", r))
			el = nil
		}
	}()

	el, err := desc.New(values)
	if err != nil {
		b.warn(ConstructionFailed, node, "", err.Error())
		return nil
	}

	if el == nil {
		b.warn(ConstructionFailed, node, "", "constructor returned no element")
	}

	return el
}

// resolve computes a value for every declared field, falling back to the defaults.
func (b *Builder) resolve(desc *Descriptor, node *parser.TreeNode) Values {
	values := make(Values, len(desc.Fields))

	for _, f := range desc.Fields {
		prop, ok := node.Properties.Get(f.Name)
		if !ok {
			values[f.Name] = f.Default
			continue
		}

		values[f.Name] = b.field(f, prop, node)
	}

	node.Properties.Each(func(key string, _ parser.Value) {
		if _, declared := desc.Field(key); !declared {
			b.warnDebug(node, key, "property is not declared and was ignored")
		}
	})

	return values
}

// field converts a present property value. Mismatches never fail, they yield the default.
func (b *Builder) field(f Field, prop parser.Value, node *parser.TreeNode) any {
	mismatch := func() any {
		b.warn(FieldTypeMismatch, node, f.Name, fmt.Sprintf("expected %s but got %s %s, using default", f.Kind, prop.Kind(), prop))
		return f.Default
	}

	switch f.Kind {
	case FieldString, FieldEnum, FieldColor, FieldVersion:
		s, ok := prop.(parser.StringValue)
		if !ok {
			return mismatch()
		}

		if err := f.validString(string(s)); err != nil {
			b.warn(InvalidValue, node, f.Name, err.Error()+", using default")
			return f.Default
		}

		return string(s)
	case FieldInt:
		i, ok := prop.(parser.IntValue)
		if !ok {
			return mismatch()
		}

		return int(i)
	case FieldFloat:
		switch v := prop.(type) {
		case parser.FloatValue:
			return float64(v)
		case parser.IntValue:
			return float64(v)
		default:
			return mismatch()
		}
	case FieldBool:
		v, ok := prop.(parser.BoolValue)
		if !ok {
			return mismatch()
		}

		return bool(v)
	case FieldPadding:
		s, ok := prop.(parser.StringValue)
		if !ok {
			b.warn(FieldTypeMismatch, node, f.Name, fmt.Sprintf("expected padding string but got %s, using zero padding", prop.Kind()))
			return Padding{}
		}

		return ParsePadding(string(s))
	case FieldElement:
		ev, ok := prop.(*parser.ElementValue)
		if !ok {
			return mismatch()
		}

		if f.Element != "" && ev.Name != f.Element {
			b.warn(InvalidValue, node, f.Name, fmt.Sprintf("expected a '%s' element but got '%s'", f.Element, ev.Name))
			return f.Default
		}

		synthetic := parser.NewNode(ev.Name)
		synthetic.Properties = ev.Properties
		synthetic.Range = node.Range

		if el := b.Build(synthetic); el != nil {
			return el
		}

		return f.Default
	}

	return f.Default
}

func (b *Builder) warn(kind WarningKind, node *parser.TreeNode, field, msg string) {
	w := Warning{
		Kind:    kind,
		Pos:     node.Begin(),
		Element: node.Name,
		Field:   field,
		Msg:     msg,
	}

	b.Warnings = append(b.Warnings, w)

	if kind == UnknownElement {
		log.Debug("%s", w)
	} else {
		log.Warn("%s", w)
	}
}

// warnDebug only logs, undeclared properties are common while editing and not worth a Warning.
func (b *Builder) warnDebug(node *parser.TreeNode, field, msg string) {
	log.Debug("%s: %s.%s: %s", node.Begin(), node.Name, field, msg)
}
