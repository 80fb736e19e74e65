// Copyright ©2025 The PhyloPipe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fetch implements a command to retrieve protein sequences
// from the NCBI protein database.
package fetch

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/biogo/ncbi/entrez"
	"github.com/js-arias/command"
)

var Command = &command.Command{
	Usage: `fetch --email <address> [--db <database>]
	[--retmax <number>] [--retry <number>]
	[-o|--output <file>] <query>`,
	Short: "retrieve protein sequences from NCBI",
	Long: `
Command fetch searches the NCBI protein database with an Entrez query and
retrieves the matching records in FASTA format.

The argument of the command is the Entrez query. NCBI requires an email
address with every request, given with the flag --email.

By default records are written to the standard output; use the flag
--output, or -o, to write them to a file. The flag --retmax sets the
number of records retrieved per request, and --retry the number of
attempts made for each request.
	`,
	SetFlags: setFlags,
	Run:      run,
}

const tool = "phylopipe"

var email string
var db string
var output string
var retMax int
var retries int

func setFlags(c *command.Command) {
	c.Flags().StringVar(&email, "email", "", "")
	c.Flags().StringVar(&db, "db", "protein", "")
	c.Flags().StringVar(&output, "output", "", "")
	c.Flags().StringVar(&output, "o", "", "")
	c.Flags().IntVar(&retMax, "retmax", 500, "")
	c.Flags().IntVar(&retries, "retry", 5, "")
}

func run(c *command.Command, args []string) error {
	if len(args) != 1 {
		return c.UsageError("expecting a single query")
	}
	if email == "" {
		return c.UsageError("expecting an email address (flag --email)")
	}

	var h entrez.History
	s, err := entrez.DoSearch(db, args[0], nil, &h, tool, email)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.Stderr(), "will retrieve %d records\n", s.Count)

	var of io.Writer = c.Stdout()
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return err
		}
		defer f.Close()
		of = f
	}

	buf := &bytes.Buffer{}
	p := &entrez.Parameters{RetMax: retMax, RetType: "fasta", RetMode: "text"}
	for p.RetStart = 0; p.RetStart < s.Count; p.RetStart += p.RetMax {
		if err := fetchPage(buf, p, &h); err != nil {
			return fmt.Errorf("retrieve from %d: %v", p.RetStart, err)
		}
		if _, err := io.Copy(of, buf); err != nil {
			return err
		}
	}
	return nil
}

// fetchPage retrieves a single page of records into buf, retrying failed
// requests up to the configured attempt count.
func fetchPage(buf *bytes.Buffer, p *entrez.Parameters, h *entrez.History) error {
	var err error
	for t := 0; t < retries; t++ {
		buf.Reset()
		var r io.ReadCloser
		r, err = entrez.Fetch(db, p, tool, email, h)
		if err != nil {
			continue
		}
		_, err = io.Copy(buf, r)
		r.Close()
		if err == nil {
			return nil
		}
	}
	return err
}
