// Copyright ©2025 The PhyloPipe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package accession

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	check "gopkg.in/check.v1"
)

func Test(t *testing.T) { check.TestingT(t) }

type S struct{}

var _ = check.Suite(&S{})

func (s *S) TestFind(c *check.C) {
	for i, t := range []struct {
		desc string
		want string
		ok   bool
	}{
		{"seq1 WP_072607337.1 alkene reductase", "WP_072607337.1", true},
		{"WP_000000001.1_alkene_reductase_Aquibium_oceanicum", "WP_000000001.1", true},
		{"seq with no code", "", false},
		{"WP_12345.1 too short", "", false},
	} {
		got, ok := Find(t.desc)
		c.Check(got, check.Equals, t.want, check.Commentf("Test %d", i))
		c.Check(ok, check.Equals, t.ok, check.Commentf("Test %d", i))
	}
}

// stubValidator confirms the codes in valid and records every code it is
// asked about.
type stubValidator struct {
	valid map[string]bool
	asked []string
}

func (v *stubValidator) Valid(code string) bool {
	v.asked = append(v.asked, code)
	return v.valid[code]
}

func (s *S) TestFilter(c *check.C) {
	var in strings.Builder
	// Three sequences sharing one bad code.
	for i := 0; i < 3; i++ {
		fmt.Fprintf(&in, ">bad%d WP_000000001.1 hypothetical protein\nMKVLITGA\n", i)
	}
	// Two sequences with no code.
	fmt.Fprint(&in, ">plain0 hypothetical protein\nMKVLITGA\n")
	fmt.Fprint(&in, ">plain1\nMKVLITGA\n")
	// Five sequences with distinct good codes.
	valid := map[string]bool{}
	for i := 0; i < 5; i++ {
		code := fmt.Sprintf("WP_10000000%d.1", i)
		valid[code] = true
		fmt.Fprintf(&in, ">good%d %s alkene reductase\nMKVLITGA\n", i, code)
	}

	v := &stubValidator{valid: valid}
	var out strings.Builder
	kept, total, err := Filter(strings.NewReader(in.String()), &out, v, 2)
	c.Assert(err, check.IsNil)
	c.Check(total, check.Equals, 10)
	c.Check(kept, check.Equals, 7)
	c.Check(strings.Count(out.String(), ">"), check.Equals, 7)
	c.Check(strings.Contains(out.String(), "bad0"), check.Equals, false)
	c.Check(strings.Contains(out.String(), "plain0"), check.Equals, true)
	c.Check(strings.Contains(out.String(), "good4"), check.Equals, true)

	// Each distinct code is validated exactly once.
	c.Check(len(v.asked), check.Equals, 6)
	seen := map[string]bool{}
	for _, code := range v.asked {
		c.Check(seen[code], check.Equals, false, check.Commentf("code %s asked twice", code))
		seen[code] = true
	}
}

func (s *S) TestFilterEmpty(c *check.C) {
	var out strings.Builder
	kept, total, err := Filter(strings.NewReader(""), &out, &stubValidator{}, 0)
	c.Assert(err, check.IsNil)
	c.Check(kept, check.Equals, 0)
	c.Check(total, check.Equals, 0)
	c.Check(out.String(), check.Equals, "")
}

func (s *S) TestUniProtFallback(c *check.C) {
	for i, t := range []struct {
		status int
		body   string
		want   bool
	}{
		{http.StatusOK, `{"results":[{"primaryAccession":"A0A1V0UJ58"}]}`, true},
		{http.StatusOK, `{"results":[]}`, false},
		{http.StatusInternalServerError, "boom", false},
		{http.StatusOK, "not json", false},
	} {
		var query string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			query = r.URL.Query().Get("query")
			w.WriteHeader(t.status)
			fmt.Fprint(w, t.body)
		}))
		l := Lookup{Base: srv.URL, Client: srv.Client()}
		c.Check(l.uniprot("WP_072607337.1"), check.Equals, t.want, check.Commentf("Test %d", i))
		c.Check(query, check.Equals, "xref:refseq-WP_072607337.1", check.Commentf("Test %d", i))
		srv.Close()
	}
}

// An unreachable endpoint counts as "does not exist", not as an error.
func (s *S) TestUniProtUnreachable(c *check.C) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()
	l := Lookup{Base: srv.URL}
	c.Check(l.uniprot("WP_072607337.1"), check.Equals, false)
}
