// Copyright ©2025 The PhyloPipe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package phylo reads, relabels and writes phylogenetic trees in the
// Newick format.
package phylo

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/TuftsBCB/io/newick"

	"github.com/phylopipe/phylopipe/taxlabel"
)

// Parse reads a single Newick tree from r.
func Parse(r io.Reader) (*newick.Tree, error) {
	t, err := newick.NewReader(r).ReadTree()
	if err != nil {
		return nil, fmt.Errorf("newick parse: %v", err)
	}
	return t, nil
}

// ParseString reads a single Newick tree from s.
func ParseString(s string) (*newick.Tree, error) {
	return Parse(strings.NewReader(s))
}

// CleanLabels applies taxlabel.Clean to the label of every labelled node
// of t, in place. Unlabelled nodes, topology and branch lengths are left
// untouched. Labels carry no cross-node state, so traversal order is
// immaterial.
func CleanLabels(t *newick.Tree, family string) {
	if t.Label != "" {
		t.Label = taxlabel.Clean(t.Label, family)
	}
	for i := range t.Children {
		CleanLabels(&t.Children[i], family)
	}
}

// String renders t as a single Newick tree terminated by a semicolon.
// Branch lengths are written in the shortest decimal form that parses
// back to the same value.
func String(t *newick.Tree) string {
	var sb strings.Builder
	writeNode(&sb, t)
	sb.WriteByte(';')
	return sb.String()
}

// Write writes t to w in Newick format with a trailing newline.
func Write(w io.Writer, t *newick.Tree) error {
	_, err := io.WriteString(w, String(t)+"\n")
	return err
}

func writeNode(sb *strings.Builder, t *newick.Tree) {
	if len(t.Children) != 0 {
		sb.WriteByte('(')
		for i := range t.Children {
			if i != 0 {
				sb.WriteByte(',')
			}
			writeNode(sb, &t.Children[i])
		}
		sb.WriteByte(')')
	}
	sb.WriteString(t.Label)
	if t.Length != nil {
		sb.WriteByte(':')
		sb.WriteString(strconv.FormatFloat(*t.Length, 'f', -1, 64))
	}
}
