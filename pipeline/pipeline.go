// Copyright ©2025 The PhyloPipe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pipeline sequences the alignment, tree-building and
// label-normalization steps of a run.
package pipeline

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/phylopipe/phylopipe/align"
	"github.com/phylopipe/phylopipe/phylo"
)

// A TreeBuilder builds a phylogenetic tree from the alignment file,
// requesting it be written to out. The call blocks until the tool has
// exited; a non-zero exit is reported as an error.
type TreeBuilder interface {
	BuildTree(alignment, out string) error
}

// DefaultWait is the default budget for the tree output file to appear
// after the tree builder reports success.
const DefaultWait = 5 * time.Second

// Config holds the file paths and label-cleaning parameters of a run.
type Config struct {
	Sequences string // input sequence file
	Alignment string // alignment written by the aligner
	Tree      string // tree file written by the builder

	Family string // protein-family hint stripped from taxon labels

	Wait time.Duration // budget for the tree file to appear; DefaultWait if zero
}

// Pipeline runs the steps strictly in sequence. All steps are blocking;
// every fatal condition is logged and returned.
type Pipeline struct {
	Aligner align.Aligner
	Builder TreeBuilder
	Log     *log.Logger
}

// Run aligns the input sequences, builds a tree from the alignment and
// normalizes the taxon labels of the tree file in place. It returns the
// path of the tree file written.
func (p Pipeline) Run(cfg Config) (string, error) {
	if err := p.Align(cfg); err != nil {
		return "", err
	}
	return p.BuildTree(cfg)
}

// Align runs the aligner on the configured sequence file.
func (p Pipeline) Align(cfg Config) error {
	p.logf("aligning %s", cfg.Sequences)
	if err := p.Aligner.Align(cfg.Sequences, cfg.Alignment); err != nil {
		p.logf("error: alignment failed: %v", err)
		return err
	}
	return nil
}

// BuildTree runs the tree builder on the configured alignment, waits for
// the output file to land, then normalizes its labels in place. The
// builder may write the tree at the requested path or at the same path
// with a .mega extension; if neither appears within the wait budget the
// run fails. It returns the path of the tree file written.
func (p Pipeline) BuildTree(cfg Config) (string, error) {
	p.logf("building tree from %s", cfg.Alignment)
	if err := p.Builder.BuildTree(cfg.Alignment, cfg.Tree); err != nil {
		p.logf("error: tree building failed: %v", err)
		return "", err
	}

	wait := cfg.Wait
	if wait == 0 {
		wait = DefaultWait
	}
	out, err := waitForFile(cfg.Tree, wait)
	if err != nil {
		p.logf("error: %v", err)
		return "", err
	}
	if out != cfg.Tree {
		p.logf("using alternative output file %s", out)
	}

	if err := CleanTreeFile(out, cfg.Family); err != nil {
		p.logf("error: %v", err)
		return "", err
	}
	p.logf("cleaned tree saved in %s", out)
	return out, nil
}

// CleanTreeFile parses the Newick tree in path, normalizes its labels
// and writes it back in place. A parse failure is fatal.
func CleanTreeFile(path, family string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read tree %s: %v", path, err)
	}
	t, err := phylo.ParseString(string(data))
	if err != nil {
		return fmt.Errorf("clean tree %s: %v", path, err)
	}
	phylo.CleanLabels(t, family)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("rewrite tree %s: %v", path, err)
	}
	if err := phylo.Write(f, t); err != nil {
		f.Close()
		return fmt.Errorf("rewrite tree %s: %v", path, err)
	}
	return f.Close()
}

// waitForFile polls for path, or for the same path with a .mega
// extension, until one exists or the budget is spent. The poll interval
// doubles from 100ms between checks.
func waitForFile(path string, budget time.Duration) (string, error) {
	alt := strings.TrimSuffix(path, filepath.Ext(path)) + ".mega"
	deadline := time.Now().Add(budget)
	for interval := 100 * time.Millisecond; ; interval *= 2 {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
		if _, err := os.Stat(alt); err == nil {
			return alt, nil
		}
		remain := time.Until(deadline)
		if remain <= 0 {
			break
		}
		if interval > remain {
			interval = remain
		}
		time.Sleep(interval)
	}
	return "", fmt.Errorf("tree output not produced: neither %s nor %s exists", path, alt)
}

func (p Pipeline) logf(format string, v ...interface{}) {
	if p.Log != nil {
		p.Log.Printf(format, v...)
	}
}
