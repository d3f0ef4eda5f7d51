// Package topology infers a rooted device hierarchy from flat
// neighbor-discovery adjacency data.
//
// The package has three collaborating pieces:
//
//   - a classifier that partitions device identifiers into backbone (P/PE)
//     and access devices by hostname convention ([IsBackbone], [Partition])
//   - a root finder that walks neighbor links from an arbitrary device until
//     it reaches a backbone device ([FindRoot])
//   - a tree builder that grows a rooted tree over the dependent devices,
//     reclassifying under-connected backbone peers as dependents
//     ([Builder], [Tree])
//
// All traversal state lives in run-scoped values owned by the caller; the
// package keeps no process-wide state. Neither [Tree] nor [Builder] is safe
// for concurrent use - give each construction run its own instances.
package topology

import "regexp"

// BackbonePattern matches backbone (P/PE) device hostnames: one or more
// dash-separated labels, then an optional "p", a literal "e", one or more
// digits, and a delimiter. "sweden-pe1.example.com" and "core-east-p2.net"
// match; "sweden-a1.example.com" does not.
//
// The convention is structural, not configurable: the redundancy rule and
// the dependent/peer split both hinge on this exact pattern.
var BackbonePattern = regexp.MustCompile(`^(?:\w+-)+pe?\d+\.`)

// IsBackbone reports whether the device identifier names a backbone device.
func IsBackbone(device string) bool {
	return BackbonePattern.MatchString(device)
}

// Partition splits devices into those matching pattern and those that do
// not. Both results preserve the relative order of the input, and together
// they partition it exactly. Partition never fails; empty or nil input
// yields two empty slices.
func Partition(devices []string, pattern *regexp.Regexp) (matching, rest []string) {
	matching = make([]string, 0, len(devices))
	rest = make([]string, 0, len(devices))
	for _, d := range devices {
		if pattern.MatchString(d) {
			matching = append(matching, d)
		} else {
			rest = append(rest, d)
		}
	}
	return matching, rest
}
