// Copyright ©2025 The PhyloPipe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package filter implements a command to drop sequences whose accession
// codes cannot be confirmed against a remote database.
package filter

import (
	"fmt"
	"log"
	"os"

	"github.com/js-arias/command"

	"github.com/phylopipe/phylopipe/accession"
)

var Command = &command.Command{
	Usage: `filter --email <address> [--batch <number>]
	[-o|--output <file>] <sequence-file>`,
	Short: "drop sequences with unknown accession codes",
	Long: `
Command filter reads a protein FASTA file and writes out the sequences
whose accession code exists in the NCBI protein database or, failing
that, in UniProtKB. Sequences carrying no accession code are kept.

The argument of the command is the input FASTA file. NCBI requires an
email address with every request, given with the flag --email.

By default the retained sequences are written to the standard output;
use the flag --output, or -o, to write them to a file. The flag --batch
sets the number of distinct codes validated per batch.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var email string
var output string
var batch int

func setFlags(c *command.Command) {
	c.Flags().StringVar(&email, "email", "", "")
	c.Flags().StringVar(&output, "output", "", "")
	c.Flags().StringVar(&output, "o", "", "")
	c.Flags().IntVar(&batch, "batch", accession.DefaultBatch, "")
}

func run(c *command.Command, args []string) error {
	if len(args) != 1 {
		return c.UsageError("expecting a sequence file")
	}
	if email == "" {
		return c.UsageError("expecting an email address (flag --email)")
	}

	in, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer in.Close()

	out := c.Stdout()
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	v := accession.Lookup{
		Tool:  "phylopipe",
		Email: email,
		Log:   log.New(c.Stderr(), "", log.LstdFlags),
	}
	kept, total, err := accession.Filter(in, out, v, batch)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.Stderr(), "kept %d of %d sequences\n", kept, total)
	return nil
}
