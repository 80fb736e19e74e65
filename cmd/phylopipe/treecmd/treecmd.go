// Copyright ©2025 The PhyloPipe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package treecmd implements a command to build a phylogenetic tree
// with MEGA-CC and normalize its taxon labels.
package treecmd

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/js-arias/command"

	"github.com/phylopipe/phylopipe/megacc"
	"github.com/phylopipe/phylopipe/pipeline"
)

var Command = &command.Command{
	Usage: `tree [--method <identifier>] [--boot <number>]
	[--configs <directory>] [--family <name>] [--wait <duration>]
	[-o|--output <file>] <alignment-file>`,
	Short: "build a phylogenetic tree with MEGA-CC",
	Long: `
Command tree runs MEGA-CC on a sequence alignment and normalizes the
taxon labels of the resulting Newick tree in place.

The argument of the command is the alignment file. The analysis is
selected by a pre-supplied MEGA-CC configuration file named
<method>_<boot>.mao inside the directory given with the flag --configs.
The tree method is set with the flag --method and the number of
bootstrap replications with the flag --boot.

MEGA-CC may report success before its output file is durable; the flag
--wait bounds how long the command polls for the file, accepting the
requested path or the same path with a .mega extension. The flag
--family names a protein family to be stripped from the taxon labels.

By default the tree is written next to the alignment with a .nwk
extension; a different path can be set with the flag --output, or -o.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var method string
var configs string
var family string
var output string
var boot int
var wait time.Duration

func setFlags(c *command.Command) {
	c.Flags().StringVar(&method, "method", "nj", "")
	c.Flags().StringVar(&configs, "configs", "mega_configs", "")
	c.Flags().StringVar(&family, "family", "", "")
	c.Flags().StringVar(&output, "output", "", "")
	c.Flags().StringVar(&output, "o", "", "")
	c.Flags().IntVar(&boot, "boot", 500, "")
	c.Flags().DurationVar(&wait, "wait", pipeline.DefaultWait, "")
}

func run(c *command.Command, args []string) error {
	if len(args) != 1 {
		return c.UsageError("expecting an alignment file")
	}
	aln := args[0]
	out := output
	if out == "" {
		out = strings.TrimSuffix(aln, filepath.Ext(aln)) + ".nwk"
	}

	logger := log.New(c.Stderr(), "", log.LstdFlags)
	p := pipeline.Pipeline{
		Builder: megacc.Builder{
			ConfigDir:    configs,
			Method:       method,
			Replications: boot,
			Log:          logger,
		},
		Log: logger,
	}
	cfg := pipeline.Config{
		Alignment: aln,
		Tree:      out,
		Family:    family,
		Wait:      wait,
	}
	tree, err := p.BuildTree(cfg)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.Stderr(), "tree saved in %s\n", tree)
	return nil
}
