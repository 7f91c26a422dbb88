// Package hierarchy validates a child→parent tag hierarchy and expands
// entry tag sets with their ancestor closures.
package hierarchy

import "github.com/yic95/expense-input-format/internal/entry"

// Validate reports whether the hierarchy is acyclic. A tag mapped to
// itself counts as a cycle.
//
// Every node's parent chain is walked with a per-walk visited set; a walk
// that revisits one of its own nodes proves a cycle. Completed walks feed
// a global set of known-good nodes so later walks can stop early, keeping
// the total work linear in the number of edges.
func Validate(hier map[string]string) bool {
	valid := make(map[string]struct{}, len(hier))
	for node := range hier {
		if _, ok := valid[node]; ok {
			continue
		}
		walked := map[string]struct{}{node: {}}
		k := node
		for {
			parent, ok := hier[k]
			if !ok {
				break
			}
			if _, seen := walked[parent]; seen {
				return false
			}
			if _, ok := valid[parent]; ok {
				break
			}
			walked[parent] = struct{}{}
			k = parent
		}
		for n := range walked {
			valid[n] = struct{}{}
		}
	}
	return true
}

// Expand replaces each entry's tags with the deduplicated union of every
// tag's ancestor closure under hier, in first-seen order. It mutates the
// entries in place and returns the same slice.
//
// Expand assumes hier passed Validate. A per-entry guard stops a chain
// when the parent is already in the closure, so a cyclic hierarchy does
// not loop forever, but which ancestors survive in that case is
// unspecified: callers must validate first.
func Expand(entries []entry.Entry, hier map[string]string) []entry.Entry {
	for i := range entries {
		closure := make(map[string]struct{}, len(entries[i].Tags))
		var tags []string
		add := func(t string) {
			if _, ok := closure[t]; !ok {
				closure[t] = struct{}{}
				tags = append(tags, t)
			}
		}
		for _, t := range entries[i].Tags {
			add(t)
			tag := t
			for {
				parent, ok := hier[tag]
				if !ok {
					break
				}
				if _, seen := closure[parent]; seen {
					break
				}
				add(parent)
				tag = parent
			}
		}
		entries[i].Tags = tags
	}
	return entries
}
