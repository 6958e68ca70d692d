// SPDX-FileCopyrightText: © 2021 The sml authors <https://github.com/golangee/sml/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package element

import (
	"fmt"

	"github.com/golangee/sml/parser"
)

// ToNode is the inverse of Builder.Build. Only fields which differ from their default
// are written, in declaration order, followed by the children in order.
func ToNode(reg *Registry, el Element) (*parser.TreeNode, error) {
	desc, ok := reg.Lookup(el.ElementName())
	if !ok {
		return nil, fmt.Errorf("element '%s' is not registered", el.ElementName())
	}

	node := parser.NewNode(desc.Name)
	values := el.Values()

	for _, f := range desc.Fields {
		val, ok := values[f.Name]
		if !ok || val == nil || val == f.Default {
			continue
		}

		pv, err := toValue(reg, f, val)
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", desc.Name, f.Name, err)
		}

		if pv != nil {
			node.Properties.Set(f.Name, pv)
		}
	}

	if c, ok := el.(Container); ok {
		for _, child := range c.Children() {
			cn, err := ToNode(reg, child)
			if err != nil {
				return nil, err
			}

			node.AddChildren(cn)
		}
	}

	return node, nil
}

func toValue(reg *Registry, f Field, val any) (parser.Value, error) {
	switch v := val.(type) {
	case string:
		return parser.StringValue(v), nil
	case int:
		return parser.IntValue(v), nil
	case float64:
		return parser.FloatValue(v), nil
	case bool:
		return parser.BoolValue(v), nil
	case Padding:
		if v.IsZero() {
			return nil, nil
		}

		return parser.StringValue(v.String()), nil
	case Element:
		n, err := ToNode(reg, v)
		if err != nil {
			return nil, err
		}

		if len(n.Children) > 0 {
			return nil, fmt.Errorf("inline element '%s' cannot have children", n.Name)
		}

		return &parser.ElementValue{Name: n.Name, Properties: n.Properties}, nil
	default:
		return nil, fmt.Errorf("unsupported value %#v for %s field", val, f.Kind)
	}
}
