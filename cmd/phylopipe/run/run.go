// Copyright ©2025 The PhyloPipe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package run implements a command to execute the whole workflow:
// filter, align, build tree, normalize labels.
package run

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/js-arias/command"

	"github.com/phylopipe/phylopipe/accession"
	"github.com/phylopipe/phylopipe/align"
	"github.com/phylopipe/phylopipe/megacc"
	"github.com/phylopipe/phylopipe/pipeline"
)

var Command = &command.Command{
	Usage: `run [--email <address>] [--skip-filter] [--batch <number>]
	[--family <name>] [--method <identifier>] [--boot <number>]
	[--configs <directory>] [--wait <duration>] <sequence-file>`,
	Short: "run the whole workflow on a sequence file",
	Long: `
Command run executes the workflow on a protein FASTA file: validate the
accession codes of the sequences, align the retained sequences with
MUSCLE, build a phylogenetic tree with MEGA-CC, and normalize the taxon
labels of the tree in place.

The argument of the command is the input FASTA file. Intermediate and
final files are written next to it: <name>_valid.fasta for the filtered
sequences, <name>.afa for the alignment and <name>.nwk for the tree
(MEGA-CC may instead land the tree at <name>.mega).

The accession filter needs an email address for NCBI, given with the
flag --email; the flag --skip-filter bypasses it. The remaining flags
are those of the filter and tree commands.
	`,
	SetFlags: setFlags,
	Run:      runCmd,
}

var email string
var family string
var method string
var configs string
var skipFilter bool
var batch int
var boot int
var wait time.Duration

func setFlags(c *command.Command) {
	c.Flags().StringVar(&email, "email", "", "")
	c.Flags().StringVar(&family, "family", "", "")
	c.Flags().StringVar(&method, "method", "nj", "")
	c.Flags().StringVar(&configs, "configs", "mega_configs", "")
	c.Flags().BoolVar(&skipFilter, "skip-filter", false, "")
	c.Flags().IntVar(&batch, "batch", accession.DefaultBatch, "")
	c.Flags().IntVar(&boot, "boot", 500, "")
	c.Flags().DurationVar(&wait, "wait", pipeline.DefaultWait, "")
}

func runCmd(c *command.Command, args []string) error {
	if len(args) != 1 {
		return c.UsageError("expecting a sequence file")
	}
	if !skipFilter && email == "" {
		return c.UsageError("expecting an email address (flag --email)")
	}

	input := args[0]
	base := strings.TrimSuffix(input, filepath.Ext(input))
	logger := log.New(c.Stderr(), "", log.LstdFlags)

	seqs := input
	if !skipFilter {
		seqs = base + "_valid" + filepath.Ext(input)
		if err := filterFile(input, seqs, logger); err != nil {
			logger.Printf("error: accession filter failed: %v", err)
			return err
		}
	}

	p := pipeline.Pipeline{
		Aligner: align.Muscle{Log: logger},
		Builder: megacc.Builder{
			ConfigDir:    configs,
			Method:       method,
			Replications: boot,
			Log:          logger,
		},
		Log: logger,
	}
	cfg := pipeline.Config{
		Sequences: seqs,
		Alignment: base + ".afa",
		Tree:      base + ".nwk",
		Family:    family,
		Wait:      wait,
	}
	tree, err := p.Run(cfg)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.Stderr(), "tree saved in %s\n", tree)
	return nil
}

func filterFile(input, output string, logger *log.Logger) error {
	in, err := os.Open(input)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.Create(output)
	if err != nil {
		return err
	}

	v := accession.Lookup{Tool: "phylopipe", Email: email, Log: logger}
	kept, total, err := accession.Filter(in, out, v, batch)
	if err != nil {
		out.Close()
		return err
	}
	logger.Printf("kept %d of %d sequences", kept, total)
	return out.Close()
}
