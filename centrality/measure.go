// Package centrality: the fixed measure vocabulary and its name resolution.
// The vocabulary is a process-wide constant lookup table — no registration,
// no mutation. Resolution is case-insensitive, exact-match-first, then
// unambiguous-prefix, and reports every offending name of a request in one
// error.

package centrality

import (
	"fmt"
	"strings"
)

// Measure enumerates the centrality vocabulary. The zero value is
// OutStrength; values are contiguous so tables can index columns by them.
type Measure int

// The eight vocabulary entries, in canonical (default-report) order.
const (
	OutStrength Measure = iota // total outgoing transition weight
	InStrength                 // total incoming transition weight
	ClosenessIn                // closeness along reversed edges
	ClosenessOut               // closeness along directed out-edges
	Closeness                  // closeness with edges traversable both ways
	Betweenness                // randomized shortest-path betweenness
	Diffusion                  // accumulated matrix-power reachability
	Clustering                 // signed clustering coefficient

	// NumMeasures is the vocabulary size; not a Measure itself.
	NumMeasures = iota
)

// measureNames holds the canonical spelling of each vocabulary entry,
// indexed by Measure. Single source of truth for String and Resolve.
var measureNames = [NumMeasures]string{
	"OutStrength",
	"InStrength",
	"ClosenessIn",
	"ClosenessOut",
	"Closeness",
	"Betweenness",
	"Diffusion",
	"Clustering",
}

// String returns the canonical spelling, or "Measure(<n>)" for values
// outside the vocabulary (fmt convention for invalid enums).
func (m Measure) String() string {
	if m < 0 || int(m) >= NumMeasures {
		return fmt.Sprintf("Measure(%d)", int(m))
	}

	return measureNames[m]
}

// Valid reports whether m is a vocabulary entry. O(1).
func (m Measure) Valid() bool { return m >= 0 && int(m) < NumMeasures }

// AllMeasures returns the full vocabulary in canonical order.
// The slice is fresh on every call; callers may reorder it freely.
func AllMeasures() []Measure {
	out := make([]Measure, NumMeasures)
	for i := range out {
		out[i] = Measure(i)
	}

	return out
}

// Resolve maps requested measure names onto vocabulary entries.
//
// Matching rules (per name, case-insensitive):
//  1. exact match wins — "closeness" resolves to Closeness even though it
//     is also a prefix of ClosenessIn/ClosenessOut;
//  2. otherwise a prefix matching exactly one entry resolves to it
//     ("betw" → Betweenness);
//  3. otherwise the name is offending: unknown (no entry matched) or
//     ambiguous ("close" matches three entries).
//
// Every offending name is collected and reported in ONE ErrBadMeasure —
// never fail-fast on the first. Duplicates after resolution are dropped,
// keeping the first occurrence order, so the table column order always
// mirrors the (deduplicated) request.
//
// Complexity: O(len(names) · NumMeasures) string comparisons.
func Resolve(names []string) ([]Measure, error) {
	resolved := make([]Measure, 0, len(names))
	var offending []string

	var lower string
	var hit Measure
	var hits int
	for _, name := range names {
		lower = strings.ToLower(name)

		// 1) Exact match first (defeats prefix ambiguity for "closeness").
		hits = 0
		for m := 0; m < NumMeasures; m++ {
			if lower == strings.ToLower(measureNames[m]) {
				hit, hits = Measure(m), 1
				break
			}
		}

		// 2) Prefix scan only when no exact match was found.
		if hits == 0 {
			for m := 0; m < NumMeasures; m++ {
				if strings.HasPrefix(strings.ToLower(measureNames[m]), lower) {
					hit = Measure(m)
					hits++
				}
			}
		}

		// 3) Anything but exactly one hit is an offending name.
		if hits != 1 {
			offending = append(offending, name)
			continue
		}
		resolved = append(resolved, hit)
	}

	if len(offending) > 0 {
		return nil, fmt.Errorf("%w: %q", ErrBadMeasure, offending)
	}

	// Deduplicate, preserving first occurrence order.
	var seen [NumMeasures]bool
	out := resolved[:0]
	for _, m := range resolved {
		if seen[m] {
			continue
		}
		seen[m] = true
		out = append(out, m)
	}

	return out, nil
}
