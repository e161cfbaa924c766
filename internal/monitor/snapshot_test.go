package monitor

import (
	"testing"

	"github.com/rjongens/dnswatch/internal/dnspod"
	"github.com/stretchr/testify/assert"
)

func TestBuildSnapshotFiltersAndGroups(t *testing.T) {
	records := []dnspod.Record{
		{Name: "www", Type: "A", Value: "1.1.1.1"},
		{Name: "mail", Type: "MX", Value: "mx.example.com."},
		{Name: "www", Type: "A", Value: "2.2.2.2"},
		{Name: "@", Type: "NS", Value: "ns1.dnspod.net."},
	}
	monitored := NameSet([]string{"www", "api"})

	snap := BuildSnapshot(records, monitored)

	assert.Len(t, snap, 1)
	assert.Equal(t, []RecordEntry{
		{Type: "A", Value: "1.1.1.1"},
		{Type: "A", Value: "2.2.2.2"},
	}, snap["www"])

	// Monitored names with no matching records are absent, not empty.
	_, present := snap["api"]
	assert.False(t, present)
}

func TestBuildSnapshotPreservesDuplicates(t *testing.T) {
	records := []dnspod.Record{
		{Name: "www", Type: "A", Value: "1.1.1.1"},
		{Name: "www", Type: "A", Value: "1.1.1.1"},
	}

	snap := BuildSnapshot(records, NameSet([]string{"www"}))

	assert.Len(t, snap["www"], 2)
}

func TestBuildSnapshotIgnoresExtraFields(t *testing.T) {
	records := []dnspod.Record{
		{ID: "42", Name: "www", Type: "A", Value: "1.1.1.1", Line: "默认", TTL: "600", Enabled: "1"},
	}

	snap := BuildSnapshot(records, NameSet([]string{"www"}))

	assert.Equal(t, Snapshot{"www": {{Type: "A", Value: "1.1.1.1"}}}, snap)
}

func TestCanonicalOrdersByTypeThenValue(t *testing.T) {
	in := []RecordEntry{
		{Type: "CNAME", Value: "z.example.com."},
		{Type: "A", Value: "9.9.9.9"},
		{Type: "A", Value: "1.1.1.1"},
	}

	got := Canonical(in)

	assert.Equal(t, []RecordEntry{
		{Type: "A", Value: "1.1.1.1"},
		{Type: "A", Value: "9.9.9.9"},
		{Type: "CNAME", Value: "z.example.com."},
	}, got)

	// Input must be left untouched.
	assert.Equal(t, RecordEntry{Type: "CNAME", Value: "z.example.com."}, in[0])
}

func TestCanonicalIsCaseSensitive(t *testing.T) {
	got := Canonical([]RecordEntry{
		{Type: "TXT", Value: "b"},
		{Type: "TXT", Value: "B"},
	})

	// Exact byte comparison: uppercase sorts first.
	assert.Equal(t, []RecordEntry{
		{Type: "TXT", Value: "B"},
		{Type: "TXT", Value: "b"},
	}, got)
}
