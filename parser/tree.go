// SPDX-FileCopyrightText: © 2021 The sml authors <https://github.com/golangee/sml/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package parser

import (
	"github.com/golangee/sml/token"
)

// TreeNode is a node in the parse tree and represents a single 'Name { ... }' block.
// Children keep their source order, properties are unique by key.
type TreeNode struct {
	Name       string
	Properties Properties
	Children   []*TreeNode
	// Range will span all tokens that were processed to build this node.
	Range token.Position
}

// NewNode creates a new node for the parse tree.
func NewNode(name string) *TreeNode {
	return &TreeNode{
		Name: name,
	}
}

// AddChildren adds children to a node and can be used builder-style.
func (t *TreeNode) AddChildren(children ...*TreeNode) *TreeNode {
	t.Children = append(t.Children, children...)
	return t
}

// AddProperty sets a property on a node and can be used builder-style.
func (t *TreeNode) AddProperty(key string, value Value) *TreeNode {
	t.Properties.Set(key, value)
	return t
}

// Begin implements token.Node.
func (t *TreeNode) Begin() token.Pos {
	return t.Range.BeginPos
}

// End implements token.Node.
func (t *TreeNode) End() token.Pos {
	return t.Range.EndPos
}

// Walk calls f for this node and all descendants in depth-first source order.
// Returning false from f skips the children of that node.
func (t *TreeNode) Walk(f func(n *TreeNode) bool) {
	if !f(t) {
		return
	}

	for _, c := range t.Children {
		c.Walk(f)
	}
}
