// SPDX-FileCopyrightText: © 2021 The sml authors <https://github.com/golangee/sml/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

// Command smlc inspects, formats and checks SML documents.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/golangee/sml/element"
	"github.com/golangee/sml/internal/config"
	"github.com/golangee/sml/internal/log"
	"github.com/urfave/cli/v2"
)

// Version of smlc.
const Version = "0.3.0"

// smlc carries the state shared by all subcommands.
type smlc struct {
	cfg    config.Config
	reg    *element.Registry
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func main() {
	if err := newApp(os.Stdin, os.Stdout, os.Stderr).Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *cli.App {
	s := &smlc{
		cfg:    config.Default(),
		reg:    element.Builtin(),
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
	}

	return &cli.App{
		Name:      "smlc",
		Usage:     "inspect, format and check SML documents",
		Version:   Version,
		Reader:    stdin,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "config file, defaults to .smlc.yaml, .smlc.yml or .smlc.json in the working directory",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "debug, info, warn or error",
			},
		},
		Before: s.before,
		Commands: []*cli.Command{
			{
				Name:      "tokens",
				Usage:     "print the token stream of a document",
				ArgsUsage: "<file.sml | ->",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "all", Aliases: []string{"a"}, Usage: "include whitespace and comments"},
				},
				Action: s.tokens,
			},
			{
				Name:      "tree",
				Usage:     "print the untyped parse tree of a document",
				ArgsUsage: "<file.sml | ->",
				Action:    s.tree,
			},
			{
				Name:      "build",
				Usage:     "build the element tree and print it as yaml or json",
				ArgsUsage: "<file.sml | ->",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Usage: "yaml or json"},
				},
				Action: s.build,
			},
			{
				Name:      "fmt",
				Usage:     "print documents in canonical layout",
				ArgsUsage: "[files...]",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "write", Aliases: []string{"w"}, Usage: "write the result back to the source file"},
					&cli.StringFlag{Name: "indent", Usage: "indentation per level"},
				},
				Action: s.format,
			},
			{
				Name:      "check",
				Usage:     "report syntax errors and warnings",
				ArgsUsage: "[files...]",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "strict", Usage: "fail on warnings"},
				},
				Action: s.check,
			},
			{
				Name:   "elements",
				Usage:  "list the known element types and their fields",
				Action: s.elements,
			},
		},
	}
}

func (s *smlc) before(c *cli.Context) error {
	var err error
	if path := c.String("config"); path != "" {
		s.cfg, err = config.Load(path)
	} else {
		s.cfg, err = config.LoadDir(".")
	}

	if err != nil {
		return err
	}

	if c.IsSet("log-level") {
		s.cfg.LogLevel = c.String("log-level")
	}

	level, err := log.ParseLevel(s.cfg.LogLevel)
	if err != nil {
		return err
	}

	log.SetOutput(s.stderr)
	log.SetLevel(level)

	return nil
}
