package monitor

import (
	"fmt"
	"strings"
)

// FormatMessage renders a change event as the Markdown notification
// text sent to the notifier. Record lists are expected in canonical
// order (Detect emits them that way), so the rendered output is stable
// across provider-side reordering.
func FormatMessage(domain string, ev ChangeEvent) string {
	fqdn := ev.Name + "." + domain

	var b strings.Builder
	b.WriteString("⚠️ *DNS record change detected*\n\n")
	fmt.Fprintf(&b, "*Domain*: `%s`\n\n", fqdn)
	fmt.Fprintf(&b, "*Old records*:\n%s\n\n", formatRecords(ev.Old))
	fmt.Fprintf(&b, "*New records*:\n%s", formatRecords(ev.New))
	return b.String()
}

func formatRecords(entries []RecordEntry) string {
	if len(entries) == 0 {
		return "(none)"
	}
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = fmt.Sprintf("  - %s: %s", e.Type, e.Value)
	}
	return strings.Join(lines, "\n")
}
