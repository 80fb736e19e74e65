// Copyright ©2025 The PhyloPipe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package megacc runs the MEGA-CC command line tool to build
// phylogenetic trees from sequence alignments.
package megacc

import (
	"bytes"
	"fmt"
	"log"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/biogo/external"
)

// MegaCC builds a megacc invocation. An analysis is selected by a
// pre-supplied .mao configuration file.
type MegaCC struct {
	// Usage: megacc -a <config.mao> -d <datafile> -o <outfile>
	Cmd string `buildarg:"{{if .}}{{.}}{{else}}megacc{{end}}"` // megacc

	// Files:
	Config  string `buildarg:"{{with .}}-a{{split}}{{.}}{{end}}"` // -a <file>
	Data    string `buildarg:"{{with .}}-d{{split}}{{.}}{{end}}"` // -d <file>
	OutFile string `buildarg:"{{with .}}-o{{split}}{{.}}{{end}}"` // -o <file>
}

// BuildCommand builds the megacc command line.
func (m MegaCC) BuildCommand() (*exec.Cmd, error) {
	cl, err := external.Build(m)
	if err != nil {
		return nil, err
	}
	return exec.Command(cl[0], cl[1:]...), nil
}

// ConfigFile returns the path of the configuration file selecting the
// given tree method and bootstrap replication count, following the
// <method>_<replications>.mao naming convention.
func ConfigFile(dir, method string, replications int) string {
	return filepath.Join(dir, fmt.Sprintf("%s_%d.mao", method, replications))
}

// Builder builds trees with megacc using a configuration file picked by
// method and bootstrap replication count from ConfigDir.
type Builder struct {
	ConfigDir    string
	Method       string
	Replications int
	Log          *log.Logger
}

// BuildTree runs megacc on the given alignment, requesting the tree be
// written to out. The tool's stdout and stderr are captured and logged
// for diagnostics only; its exit status decides success.
func (b Builder) BuildTree(alignment, out string) error {
	cfg := ConfigFile(b.ConfigDir, b.Method, b.Replications)
	cmd, err := MegaCC{Config: cfg, Data: alignment, OutFile: out}.BuildCommand()
	if err != nil {
		return fmt.Errorf("megacc: %v", err)
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if b.Log != nil {
		b.Log.Printf("building tree: %s", strings.Join(cmd.Args, " "))
	}
	err = cmd.Run()
	if b.Log != nil {
		if s := stdout.String(); s != "" {
			b.Log.Printf("megacc stdout: %s", s)
		}
		if s := stderr.String(); s != "" {
			b.Log.Printf("megacc stderr: %s", s)
		}
	}
	if err != nil {
		return fmt.Errorf("megacc: %v", err)
	}
	return nil
}
