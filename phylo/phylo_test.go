// Copyright ©2025 The PhyloPipe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package phylo

import (
	"strings"
	"testing"

	check "gopkg.in/check.v1"
)

func Test(t *testing.T) { check.TestingT(t) }

type S struct{}

var _ = check.Suite(&S{})

const rawTree = "(WP_072607337.1_alkene_reductase_Aquibium_oceanicum_---C51---Same_Domains:0.13368245,(Bacillus_subtilis---C3:0.5,Homo_sapiens:0.25)90:0.125);"

func (s *S) TestCleanLabels(c *check.C) {
	t, err := ParseString(rawTree)
	c.Assert(err, check.IsNil)

	CleanLabels(t, "alkene_reductase")
	c.Check(String(t), check.Equals,
		"(Aquibium_oceanicum_---C51:0.13368245,(Bacillus_subtilis_---C3:0.5,Homo_sapiens:0.25)90:0.125);")
}

// Cleaning must not disturb topology, branch lengths or support values.
func (s *S) TestCleanLabelsStructure(c *check.C) {
	t, err := ParseString(rawTree)
	c.Assert(err, check.IsNil)
	before, err := ParseString(rawTree)
	c.Assert(err, check.IsNil)

	CleanLabels(t, "alkene_reductase")

	c.Assert(len(t.Children), check.Equals, 2)
	c.Check(*t.Children[0].Length, check.Equals, *before.Children[0].Length)
	inner := &t.Children[1]
	c.Assert(len(inner.Children), check.Equals, 2)
	c.Check(inner.Label, check.Equals, "90")
	c.Check(*inner.Length, check.Equals, 0.125)
	c.Check(*inner.Children[0].Length, check.Equals, 0.5)
	c.Check(t.Children[0].Label, check.Equals, "Aquibium_oceanicum_---C51")
	c.Check(inner.Children[0].Label, check.Equals, "Bacillus_subtilis_---C3")
	c.Check(inner.Children[1].Label, check.Equals, "Homo_sapiens")
}

func (s *S) TestRoundTrip(c *check.C) {
	for i, in := range []string{
		"(A:0.1,B:0.2);",
		"((A:0.1,B:0.2)85:0.33,C:0.4)root;",
		"(Aquibium_oceanicum_---C51:0.13368245,Bacillus_subtilis_---C3:0.00001);",
	} {
		t, err := ParseString(in)
		c.Assert(err, check.IsNil, check.Commentf("Test %d", i))
		out := String(t)
		c.Check(out, check.Equals, in, check.Commentf("Test %d", i))

		// Re-parsing the output must give the same tree again.
		t2, err := ParseString(out)
		c.Assert(err, check.IsNil, check.Commentf("Test %d", i))
		c.Check(String(t2), check.Equals, out, check.Commentf("Test %d", i))
	}
}

func (s *S) TestParseError(c *check.C) {
	_, err := ParseString("(((")
	c.Check(err, check.NotNil)
	c.Check(strings.HasPrefix(err.Error(), "newick parse:"), check.Equals, true)
}

func (s *S) TestWrite(c *check.C) {
	t, err := ParseString("(A:0.1,B:0.2);")
	c.Assert(err, check.IsNil)
	var sb strings.Builder
	c.Assert(Write(&sb, t), check.IsNil)
	c.Check(sb.String(), check.Equals, "(A:0.1,B:0.2);\n")
}
