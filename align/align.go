// Copyright ©2025 The PhyloPipe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package align runs multiple sequence alignments with an external
// alignment tool.
package align

import (
	"fmt"
	"log"
	"strings"

	"github.com/biogo/external/muscle"
)

// An Aligner aligns the sequences of the file in, writing the alignment
// to the file out. The call blocks until the tool has exited; a non-zero
// exit is reported as an error.
type Aligner interface {
	Align(in, out string) error
}

// Muscle is an Aligner running a local MUSCLE alignment.
type Muscle struct {
	Log *log.Logger
}

// Align runs MUSCLE on in, writing the alignment to out.
func (m Muscle) Align(in, out string) error {
	cmd, err := muscle.Muscle{InFile: in, OutFile: out, Quiet: true}.BuildCommand()
	if err != nil {
		return fmt.Errorf("muscle: %v", err)
	}
	if m.Log != nil {
		m.Log.Printf("aligning %s: %s", in, strings.Join(cmd.Args, " "))
	}
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("muscle: %v", err)
	}
	return nil
}
