package monitor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatMessage(t *testing.T) {
	ev := ChangeEvent{
		Name: "www",
		Old:  []RecordEntry{{Type: "A", Value: "1.1.1.1"}},
		New: []RecordEntry{
			{Type: "A", Value: "1.1.1.1"},
			{Type: "A", Value: "2.2.2.2"},
		},
	}

	msg := FormatMessage("example.com", ev)

	assert.Contains(t, msg, "`www.example.com`")
	assert.Contains(t, msg, "*Old records*:\n  - A: 1.1.1.1")
	assert.Contains(t, msg, "*New records*:\n  - A: 1.1.1.1\n  - A: 2.2.2.2")
}

func TestFormatMessageEmptySides(t *testing.T) {
	ev := ChangeEvent{
		Name: "api",
		Old:  []RecordEntry{{Type: "CNAME", Value: "x.example.com."}},
	}

	msg := FormatMessage("example.com", ev)

	assert.Contains(t, msg, "*New records*:\n(none)")
}
