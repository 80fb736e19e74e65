// Copyright ©2025 The PhyloPipe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package alncmd implements a command to align protein sequences with
// MUSCLE.
package alncmd

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/js-arias/command"

	"github.com/phylopipe/phylopipe/align"
)

var Command = &command.Command{
	Usage: "align [-o|--output <file>] <sequence-file>",
	Short: "align protein sequences with MUSCLE",
	Long: `
Command align runs a local MUSCLE alignment on a protein FASTA file.

The argument of the command is the input FASTA file. By default the
alignment is written next to the input with an .afa extension; a
different path can be set with the flag --output, or -o.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var output string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&output, "output", "", "")
	c.Flags().StringVar(&output, "o", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) != 1 {
		return c.UsageError("expecting a sequence file")
	}
	in := args[0]
	out := output
	if out == "" {
		out = strings.TrimSuffix(in, filepath.Ext(in)) + ".afa"
	}

	m := align.Muscle{Log: log.New(c.Stderr(), "", log.LstdFlags)}
	if err := m.Align(in, out); err != nil {
		return err
	}
	fmt.Fprintf(c.Stderr(), "alignment saved in %s\n", out)
	return nil
}
