// Copyright ©2025 The PhyloPipe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package taxlabel normalizes taxon labels produced by the annotation
// pipeline into canonical <species>_<cluster-marker> identifiers.
package taxlabel

import (
	"regexp"
	"strings"
)

var (
	accession    = regexp.MustCompile(`(?i)WP[\s_]\d{9}\.\d`)
	multispecies = regexp.MustCompile(`(?i)MULTISPECIES:\s*`)
	unclassified = regexp.MustCompile(`(?i)\bunclassified\b`)
	sameDomains  = regexp.MustCompile(`(?i)[-_\s]*Same[-_\s]*Domains`)

	// A species name followed by its cluster marker. The separator run is
	// optional so that markers abutting the name, as in
	// "Bacillus_subtilis---C3", are still found.
	cluster = regexp.MustCompile(`(?i)([A-Za-z0-9]+(?:[_\s][A-Za-z0-9.]+)*)[\s_-]*(---C\d+)`)
)

// Clean normalizes a single taxon label. It strips surrounding quotes,
// accession codes, the "MULTISPECIES:" marker, the named protein family
// (underscores and spaces in family match any separator run; an empty
// family skips this step), the word "unclassified" and any variant of the
// "Same Domains" marker, then extracts the species name and cluster
// marker. If the label carries more than one cluster marker the last one
// wins. A label without a cluster marker is returned as it stands after
// the removals. Clean is idempotent and never fails.
func Clean(label, family string) string {
	label = strings.Trim(label, `'"`)
	label = accession.ReplaceAllString(label, "")
	label = multispecies.ReplaceAllString(label, "")
	if family != "" {
		label = familyPattern(family).ReplaceAllString(label, "")
	}
	label = unclassified.ReplaceAllString(label, "")
	label = sameDomains.ReplaceAllString(label, "")
	label = strings.Trim(label, " _")

	m := cluster.FindAllStringSubmatch(label, -1)
	if m == nil {
		return label
	}
	last := m[len(m)-1]
	species := strings.ReplaceAll(strings.TrimSpace(last[1]), " ", "_")
	return species + "_" + last[2]
}

// familyPattern compiles a case-insensitive pattern for the family name
// with internal underscores and spaces matching any separator run.
func familyPattern(family string) *regexp.Regexp {
	p := regexp.QuoteMeta(family)
	p = strings.NewReplacer("_", `[\s_]+`, " ", `[\s_]+`).Replace(p)
	return regexp.MustCompile(`(?i)` + p)
}

// A label carrying a cluster marker, quoted or bare, with an optional
// branch-length suffix as the final group.
var newickLabel = regexp.MustCompile(`(?i)('[^':]*---C\d+[^':]*'|"[^":]*---C\d+[^":]*"|[A-Za-z0-9 _.\-]+---C\d+[A-Za-z0-9 _.\-]*)(:[0-9.eE+\-]+)?`)

// CleanNewick normalizes every labelled node of a Newick-formatted tree
// string without parsing it. Labels carrying a cluster marker are passed
// through Clean; any branch-length suffix is detached first and reattached
// verbatim. All other text, including branch lengths, punctuation and
// labels without a cluster marker, is left byte for byte as it was.
func CleanNewick(tree, family string) string {
	return newickLabel.ReplaceAllStringFunc(tree, func(m string) string {
		var branch string
		// Neither label alternative can contain a colon, so any colon
		// present introduces the branch length.
		if i := strings.LastIndex(m, ":"); i >= 0 {
			branch = m[i:]
			m = m[:i]
		}
		return Clean(m, family) + branch
	})
}
