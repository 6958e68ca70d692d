// SPDX-FileCopyrightText: © 2021 The sml authors <https://github.com/golangee/sml/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/golangee/sml"
	"github.com/golangee/sml/element"
	"github.com/golangee/sml/encoder"
	"github.com/golangee/sml/internal/log"
	"github.com/golangee/sml/parser"
	"github.com/golangee/sml/token"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

// input reads the single file argument, "-" reads stdin.
func (s *smlc) input(c *cli.Context) (name, src string, err error) {
	if c.NArg() != 1 {
		return "", "", fmt.Errorf("%s expects exactly one file", c.Command.Name)
	}

	name = c.Args().First()
	if name == "-" {
		buf, err := io.ReadAll(s.stdin)
		if err != nil {
			return "", "", fmt.Errorf("failed to read stdin: %w", err)
		}

		return "stdin", string(buf), nil
	}

	buf, err := os.ReadFile(name)
	if err != nil {
		return "", "", fmt.Errorf("failed to read %s: %w", name, err)
	}

	return name, string(buf), nil
}

func (s *smlc) tokens(c *cli.Context) error {
	name, src, err := s.input(c)
	if err != nil {
		return err
	}

	tokens, err := token.Tokenize(name, src)

	fmt.Fprintf(s.stdout, "%-20s %-12s %s\n", "POSITION", "TOKEN", "LITERAL")
	fmt.Fprintf(s.stdout, "%-20s %-12s %s\n", strings.Repeat("-", 20), strings.Repeat("-", 12), strings.Repeat("-", 20))

	for _, t := range tokens {
		if t.Ignored() && !c.Bool("all") {
			continue
		}

		fmt.Fprintf(s.stdout, "%-20s %-12s %s\n", t.BeginPos, t.Kind, formatLiteral(t.Value))
	}

	if err != nil {
		var posErr *token.PosError
		if errors.As(err, &posErr) {
			return errors.New(posErr.Explain(src))
		}

		return err
	}

	return nil
}

// formatLiteral escapes special characters for display.
func formatLiteral(lit string) string {
	r := strings.NewReplacer("\n", `\n`, "\t", `\t`, "\r", `\r`)
	return r.Replace(lit)
}

func (s *smlc) tree(c *cli.Context) error {
	name, src, err := s.input(c)
	if err != nil {
		return err
	}

	nodes, err := parser.Parse(name, src)
	if err != nil {
		return explain(err, src)
	}

	for _, n := range nodes {
		printNode(s.stdout, n, 0)
	}

	return nil
}

func printNode(w io.Writer, n *parser.TreeNode, depth int) {
	indent := strings.Repeat("  ", depth)
	fmt.Fprintf(w, "%s%s [%s-%d:%d]\n", indent, n.Name, n.Begin(), n.End().Line, n.End().Col)

	for _, p := range n.Properties.All() {
		fmt.Fprintf(w, "%s  .%s %s = %s\n", indent, p.Key, p.Value.Kind(), p.Value)
	}

	for _, child := range n.Children {
		printNode(w, child, depth+1)
	}
}

func explain(err error, src string) error {
	var docErr *sml.DocumentError
	if errors.As(err, &docErr) {
		return errors.New(docErr.Explain(src))
	}

	var perr *parser.ParseError
	if errors.As(err, &perr) {
		return errors.New(perr.Explain(src))
	}

	return err
}

// outNode is the yaml and json form of a built element.
type outNode struct {
	Element  string         `yaml:"element" json:"element"`
	Fields   map[string]any `yaml:"fields,omitempty" json:"fields,omitempty"`
	Children []*outNode     `yaml:"children,omitempty" json:"children,omitempty"`
}

func newOutNode(el element.Element) *outNode {
	n := &outNode{Element: el.ElementName(), Fields: map[string]any{}}

	for k, v := range el.Values() {
		switch t := v.(type) {
		case element.Padding:
			n.Fields[k] = t.String()
		case element.Element:
			n.Fields[k] = newOutNode(t)
		default:
			n.Fields[k] = v
		}
	}

	if cont, ok := el.(element.Container); ok {
		for _, child := range cont.Children() {
			n.Children = append(n.Children, newOutNode(child))
		}
	}

	return n
}

func (s *smlc) build(c *cli.Context) error {
	name, src, err := s.input(c)
	if err != nil {
		return err
	}

	format := s.cfg.Format
	if c.IsSet("format") {
		format = c.String("format")
	}

	doc, err := sml.ParseFile(s.reg, name, src)
	if err != nil {
		return explain(err, src)
	}

	var out []*outNode
	for _, root := range doc.Roots {
		out = append(out, newOutNode(root))
	}

	for _, w := range doc.Warnings {
		fmt.Fprintln(s.stderr, w)
	}

	switch format {
	case "yaml":
		enc := yaml.NewEncoder(s.stdout)
		enc.SetIndent(2)

		if err := enc.Encode(out); err != nil {
			return err
		}

		return enc.Close()
	case "json":
		enc := json.NewEncoder(s.stdout)
		enc.SetIndent("", "  ")

		return enc.Encode(out)
	default:
		return fmt.Errorf("unknown format '%s', expected yaml or json", format)
	}
}

// files returns the arguments or, without arguments, every file below the working
// directory which matches one of the configured include globs.
func (s *smlc) files(c *cli.Context) ([]string, error) {
	if c.NArg() > 0 {
		return c.Args().Slice(), nil
	}

	var res []string
	err := filepath.WalkDir(".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if path != "." && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}

			return nil
		}

		for _, pattern := range s.cfg.Include {
			ok, err := doublestar.Match(pattern, filepath.ToSlash(path))
			if err != nil {
				return fmt.Errorf("invalid include pattern '%s': %w", pattern, err)
			}

			if ok {
				res = append(res, path)
				break
			}
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk directory: %w", err)
	}

	log.Debug("found %d files for %v", len(res), s.cfg.Include)

	return res, nil
}

func (s *smlc) format(c *cli.Context) error {
	indent := s.cfg.Indent
	if c.IsSet("indent") {
		indent = c.String("indent")
	}

	if c.NArg() == 1 && c.Args().First() == "-" {
		_, src, err := s.input(c)
		if err != nil {
			return err
		}

		out, err := reformat("stdin", src, indent)
		if err != nil {
			return explain(err, src)
		}

		_, err = io.WriteString(s.stdout, out)
		return err
	}

	files, err := s.files(c)
	if err != nil {
		return err
	}

	for _, file := range files {
		buf, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", file, err)
		}

		out, err := reformat(file, string(buf), indent)
		if err != nil {
			return explain(err, string(buf))
		}

		if !c.Bool("write") {
			if _, err := io.WriteString(s.stdout, out); err != nil {
				return err
			}

			continue
		}

		if out == string(buf) {
			continue
		}

		if err := os.WriteFile(file, []byte(out), 0o644); err != nil { //nolint:gosec // G306: documents are not secret
			return fmt.Errorf("failed to write %s: %w", file, err)
		}

		log.Info("formatted %s", file)
	}

	return nil
}

// reformat prints the parse tree again, so unknown elements and properties are kept.
func reformat(name, src, indent string) (string, error) {
	nodes, err := parser.Parse(name, src)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	if err := encoder.NewEncoder(&sb).SetIndent(indent).Encode(nodes...); err != nil {
		return "", err
	}

	return sb.String(), nil
}

func (s *smlc) check(c *cli.Context) error {
	strict := s.cfg.Strict || c.Bool("strict")

	files, err := s.files(c)
	if err != nil {
		return err
	}

	var failed, warned int
	for _, file := range files {
		buf, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", file, err)
		}

		doc, err := sml.ParseFile(s.reg, file, string(buf))
		if err != nil {
			failed++
			fmt.Fprintln(s.stderr, explain(err, string(buf)))
			continue
		}

		for _, w := range doc.Warnings {
			warned++
			fmt.Fprintln(s.stderr, w)
		}
	}

	fmt.Fprintf(s.stdout, "%d files, %d errors, %d warnings\n", len(files), failed, warned)

	if failed > 0 || (strict && warned > 0) {
		return fmt.Errorf("check failed")
	}

	return nil
}

func (s *smlc) elements(c *cli.Context) error {
	for _, name := range s.reg.Names() {
		d, _ := s.reg.Lookup(name)
		fmt.Fprintln(s.stdout, name)

		for _, f := range d.Fields {
			switch {
			case f.Kind == element.FieldEnum:
				fmt.Fprintf(s.stdout, "  %s %s(%s) = %v\n", f.Name, f.Kind, strings.Join(f.Enum, "|"), f.Default)
			case f.Kind == element.FieldElement:
				fmt.Fprintf(s.stdout, "  %s %s(%s)\n", f.Name, f.Kind, f.Element)
			default:
				fmt.Fprintf(s.stdout, "  %s %s = %v\n", f.Name, f.Kind, f.Default)
			}
		}
	}

	return nil
}
