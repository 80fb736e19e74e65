// Copyright ©2025 The PhyloPipe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package accession

import (
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/biogo/ncbi/entrez"
)

// A Validator reports whether an accession code refers to an existing
// database record. Implementations must not fail: a code that cannot be
// confirmed counts as absent.
type Validator interface {
	Valid(code string) bool
}

// DefaultUniProtBase is the UniProtKB search endpoint used by Lookup
// when no Base is set.
const DefaultUniProtBase = "https://rest.uniprot.org/uniprotkb/search"

// Lookup validates accession codes with a structured-record search of
// the NCBI protein database, falling back to a UniProtKB REST query
// filtered by RefSeq cross-reference when the primary lookup fails or
// finds nothing. Network and parse errors count as "does not exist".
type Lookup struct {
	Tool  string // tool name sent to Entrez
	Email string // email sent to Entrez

	Base   string       // UniProt endpoint; DefaultUniProtBase if empty
	Client *http.Client // HTTP client for the fallback; defaulted if nil

	Log *log.Logger
}

// Valid reports whether code exists in either database.
func (l Lookup) Valid(code string) bool {
	s, err := entrez.DoSearch("protein", code+"[Accession]", nil, nil, l.Tool, l.Email)
	if err == nil && s.Count > 0 {
		return true
	}
	if err != nil && l.Log != nil {
		l.Log.Printf("entrez lookup for %s failed: %v; trying UniProtKB", code, err)
	}
	return l.uniprot(code)
}

func (l Lookup) uniprot(code string) bool {
	base := l.Base
	if base == "" {
		base = DefaultUniProtBase
	}
	u, err := url.Parse(base)
	if err != nil {
		return false
	}
	q := u.Query()
	q.Set("query", "xref:refseq-"+code)
	q.Set("fields", "accession")
	q.Set("format", "json")
	q.Set("size", "1")
	u.RawQuery = q.Encode()

	client := l.Client
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	resp, err := client.Get(u.String())
	if err != nil {
		if l.Log != nil {
			l.Log.Printf("uniprot lookup for %s failed: %v", code, err)
		}
		return false
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		if l.Log != nil {
			l.Log.Printf("uniprot lookup for %s failed: %s", code, resp.Status)
		}
		return false
	}
	var v struct {
		Results []struct {
			PrimaryAccession string `json:"primaryAccession"`
		} `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
		if l.Log != nil {
			l.Log.Printf("uniprot response for %s unreadable: %v", code, err)
		}
		return false
	}
	return len(v.Results) > 0
}
