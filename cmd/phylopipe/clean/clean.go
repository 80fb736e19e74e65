// Copyright ©2025 The PhyloPipe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package clean implements a command to normalize the taxon labels of a
// Newick tree file.
package clean

import (
	"os"

	"github.com/js-arias/command"

	"github.com/phylopipe/phylopipe/phylo"
	"github.com/phylopipe/phylopipe/taxlabel"
)

var Command = &command.Command{
	Usage: `clean [--family <name>] [--raw]
	[-o|--output <file>] <tree-file>`,
	Short: "normalize the taxon labels of a Newick tree",
	Long: `
Command clean reads a Newick tree file, normalizes every taxon label to
its canonical <species>_<cluster-marker> form, and writes the tree back
in place, or to the path given with the flag --output, or -o.

The flag --family names a protein family to be stripped from the
labels.

By default the tree is parsed, relabelled and re-serialized; a parse
failure aborts the command. With the flag --raw the labels are rewritten
textually without parsing, leaving every other byte of the file,
branch lengths included, exactly as it was.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var family string
var output string
var raw bool

func setFlags(c *command.Command) {
	c.Flags().StringVar(&family, "family", "", "")
	c.Flags().StringVar(&output, "output", "", "")
	c.Flags().StringVar(&output, "o", "", "")
	c.Flags().BoolVar(&raw, "raw", false, "")
}

func run(c *command.Command, args []string) error {
	if len(args) != 1 {
		return c.UsageError("expecting a tree file")
	}
	in := args[0]
	out := output
	if out == "" {
		out = in
	}

	data, err := os.ReadFile(in)
	if err != nil {
		return err
	}

	if raw {
		cleaned := taxlabel.CleanNewick(string(data), family)
		return os.WriteFile(out, []byte(cleaned), 0644)
	}

	t, err := phylo.ParseString(string(data))
	if err != nil {
		return err
	}
	phylo.CleanLabels(t, family)
	f, err := os.Create(out)
	if err != nil {
		return err
	}
	defer f.Close()
	return phylo.Write(f, t)
}
