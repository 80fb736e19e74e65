// Copyright ©2025 The PhyloPipe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package accession extracts protein accession codes from sequence
// descriptions and filters sequence sets by validating the codes against
// remote databases.
package accession

import "regexp"

// A well-formed RefSeq protein accession code: WP, underscore, nine
// digits, a dot and a single version digit.
var codeRE = regexp.MustCompile(`WP_\d{9}\.\d`)

// Find returns the first accession code embedded in desc, and whether
// one was present.
func Find(desc string) (string, bool) {
	code := codeRE.FindString(desc)
	return code, code != ""
}
