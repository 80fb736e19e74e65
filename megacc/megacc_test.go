// Copyright ©2025 The PhyloPipe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package megacc

import (
	"path/filepath"
	"testing"

	check "gopkg.in/check.v1"
)

func Test(t *testing.T) { check.TestingT(t) }

type S struct{}

var _ = check.Suite(&S{})

func (s *S) TestBuildCommand(c *check.C) {
	cmd, err := MegaCC{
		Config:  "mega_configs/nj_500.mao",
		Data:    "alignment.afa",
		OutFile: "tree.nwk",
	}.BuildCommand()
	c.Assert(err, check.IsNil)
	c.Check(cmd.Args, check.DeepEquals, []string{
		"megacc",
		"-a", "mega_configs/nj_500.mao",
		"-d", "alignment.afa",
		"-o", "tree.nwk",
	})
}

func (s *S) TestBuildCommandCmd(c *check.C) {
	cmd, err := MegaCC{Cmd: "/opt/mega/megacc", Data: "in.afa"}.BuildCommand()
	c.Assert(err, check.IsNil)
	c.Check(cmd.Args, check.DeepEquals, []string{"/opt/mega/megacc", "-d", "in.afa"})
}

func (s *S) TestConfigFile(c *check.C) {
	for i, t := range []struct {
		dir    string
		method string
		reps   int
		want   string
	}{
		{"mega_configs", "nj", 500, filepath.Join("mega_configs", "nj_500.mao")},
		{"", "ml", 1000, "ml_1000.mao"},
	} {
		c.Check(ConfigFile(t.dir, t.method, t.reps), check.Equals, t.want, check.Commentf("Test %d", i))
	}
}
