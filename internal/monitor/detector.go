package monitor

import "sort"

// ChangeEvent reports that one subdomain's records differ between the
// baseline and the current snapshot. Old and New are in canonical
// order; either may be empty when the name appeared or disappeared.
type ChangeEvent struct {
	Name string
	Old  []RecordEntry
	New  []RecordEntry
}

// Detector compares each new snapshot against the last-known baseline.
//
// The baseline starts uninitialized, which is distinct from an empty
// snapshot: the first Detect call adopts the snapshot as the reference
// point and reports nothing, so a restart never floods the notifier
// with "every record changed". There is no way back to the
// uninitialized state short of a process restart.
//
// Detector is not safe for concurrent use; the Runner serializes all
// access.
type Detector struct {
	baseline    Snapshot
	initialized bool
}

// NewDetector returns a detector with an uninitialized baseline.
func NewDetector() *Detector {
	return &Detector{}
}

// Initialized reports whether a baseline has been established.
func (d *Detector) Initialized() bool {
	return d.initialized
}

// Baseline returns a deep copy of the current baseline. The second
// return value is false until the first Detect call.
func (d *Detector) Baseline() (Snapshot, bool) {
	if !d.initialized {
		return nil, false
	}
	return d.baseline.clone(), true
}

// Detect compares current against the baseline and returns one
// ChangeEvent per subdomain whose canonicalized record list differs.
// Events are ordered lexicographically by name, so notification order
// is deterministic within a cycle.
//
// The baseline is replaced wholesale: on the first call, and afterwards
// only when at least one event was emitted. An unchanged snapshot
// leaves it untouched.
func (d *Detector) Detect(current Snapshot) []ChangeEvent {
	if !d.initialized {
		d.baseline = current
		d.initialized = true
		return nil
	}

	names := make([]string, 0, len(d.baseline)+len(current))
	seen := make(map[string]struct{}, len(d.baseline)+len(current))
	for name := range d.baseline {
		names = append(names, name)
		seen[name] = struct{}{}
	}
	for name := range current {
		if _, ok := seen[name]; !ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	var events []ChangeEvent
	for _, name := range names {
		// A name absent from one side compares as an empty list.
		oldList := Canonical(d.baseline[name])
		newList := Canonical(current[name])
		if !recordsEqual(oldList, newList) {
			events = append(events, ChangeEvent{Name: name, Old: oldList, New: newList})
		}
	}

	if len(events) > 0 {
		d.baseline = current
	}
	return events
}
