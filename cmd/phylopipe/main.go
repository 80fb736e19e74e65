// Copyright ©2025 The PhyloPipe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// PhyloPipe is a tool to align protein sequences, build a phylogenetic
// tree from the alignment, and normalize the taxon labels of the tree.
package main

import (
	"github.com/js-arias/command"

	"github.com/phylopipe/phylopipe/cmd/phylopipe/alncmd"
	"github.com/phylopipe/phylopipe/cmd/phylopipe/clean"
	"github.com/phylopipe/phylopipe/cmd/phylopipe/fetch"
	"github.com/phylopipe/phylopipe/cmd/phylopipe/filter"
	"github.com/phylopipe/phylopipe/cmd/phylopipe/run"
	"github.com/phylopipe/phylopipe/cmd/phylopipe/treecmd"
)

var app = &command.Command{
	Usage: "phylopipe <command> [<argument>...]",
	Short: "a tool for protein sequence phylogenetics runs",
}

func init() {
	app.Add(fetch.Command)
	app.Add(filter.Command)
	app.Add(alncmd.Command)
	app.Add(treecmd.Command)
	app.Add(clean.Command)
	app.Add(run.Command)
}

func main() {
	app.Main()
}
