// Package monitor contains the change-detection core: building
// normalized snapshots of monitored subdomains' records, diffing them
// against the last-known baseline, and driving the periodic check loop.
package monitor

import (
	"sort"

	"github.com/rjongens/dnswatch/internal/dnspod"
)

// RecordEntry is one (type, value) pair of a DNS record. Two entries
// are equal iff both fields match exactly; no case folding or other
// normalization is applied.
type RecordEntry struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// Snapshot maps a monitored subdomain label to its records at one point
// in time. A monitored name with no matching records is absent from the
// map, never present with an empty slice; comparison treats both the
// same, so the distinction is not allowed to leak into the data.
type Snapshot map[string][]RecordEntry

// NameSet converts a list of subdomain labels into a membership set.
func NameSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}

// BuildSnapshot filters the provider's record list down to the
// monitored names and groups the surviving (type, value) pairs by
// subdomain. Duplicates are preserved. Pure function of its inputs.
func BuildSnapshot(records []dnspod.Record, monitored map[string]struct{}) Snapshot {
	snap := make(Snapshot)
	for _, rec := range records {
		if _, ok := monitored[rec.Name]; !ok {
			continue
		}
		snap[rec.Name] = append(snap[rec.Name], RecordEntry{Type: rec.Type, Value: rec.Value})
	}
	return snap
}

// Canonical returns a sorted copy of entries, ordered by (type, value)
// ascending. The sort is stable, so fully equal entries keep their
// input order. Comparison and notification rendering both use this one
// ordering, which makes provider-side reordering invisible.
func Canonical(entries []RecordEntry) []RecordEntry {
	out := make([]RecordEntry, len(entries))
	copy(out, entries)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Type != out[j].Type {
			return out[i].Type < out[j].Type
		}
		return out[i].Value < out[j].Value
	})
	return out
}

// recordsEqual reports whether two canonicalized record lists are
// identical, duplicates counted.
func recordsEqual(a, b []RecordEntry) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// clone returns a deep copy of the snapshot.
func (s Snapshot) clone() Snapshot {
	if s == nil {
		return nil
	}
	out := make(Snapshot, len(s))
	for name, entries := range s {
		cp := make([]RecordEntry, len(entries))
		copy(cp, entries)
		out[name] = cp
	}
	return out
}
