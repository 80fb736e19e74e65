// Copyright ©2025 The PhyloPipe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package accession

import (
	"fmt"
	"io"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
)

// DefaultBatch is the number of distinct codes validated per batch.
const DefaultBatch = 100

// Filter reads protein FASTA from in and writes to out the sequences
// whose accession code is confirmed by v, together with all sequences
// carrying no code. Distinct codes are validated once each, in batches
// of the given size (DefaultBatch if batch is not positive); every
// sequence carrying an unconfirmed code is dropped. It returns the number
// of sequences kept and the total number read.
func Filter(in io.Reader, out io.Writer, v Validator, batch int) (kept, total int, err error) {
	if batch <= 0 {
		batch = DefaultBatch
	}
	r := fasta.NewReader(in, linear.NewSeq("", nil, alphabet.Protein))
	sc := seqio.NewScanner(r)
	var seqs []*linear.Seq
	for sc.Next() {
		seqs = append(seqs, sc.Seq().(*linear.Seq))
	}
	if err := sc.Error(); err != nil {
		return 0, 0, fmt.Errorf("read sequences: %v", err)
	}

	var codes []string
	seen := make(map[string]bool)
	for _, s := range seqs {
		if code, ok := Find(description(s)); ok && !seen[code] {
			seen[code] = true
			codes = append(codes, code)
		}
	}

	valid := make(map[string]bool, len(codes))
	for i := 0; i < len(codes); i += batch {
		end := i + batch
		if end > len(codes) {
			end = len(codes)
		}
		for _, code := range codes[i:end] {
			if v.Valid(code) {
				valid[code] = true
			}
		}
	}

	w := fasta.NewWriter(out, 60)
	for _, s := range seqs {
		if code, ok := Find(description(s)); ok && !valid[code] {
			continue
		}
		if _, err := w.Write(s); err != nil {
			return kept, len(seqs), fmt.Errorf("write sequence %q: %v", s.Name(), err)
		}
		kept++
	}
	return kept, len(seqs), nil
}

func description(s *linear.Seq) string {
	if s.Desc == "" {
		return s.ID
	}
	return s.ID + " " + s.Desc
}
