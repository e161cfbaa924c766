package monitor

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rjongens/dnswatch/internal/dnspod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLister struct {
	records []dnspod.Record
	err     error
	calls   int
}

func (f *fakeLister) ListRecords(ctx context.Context, domain string) ([]dnspod.Record, error) {
	f.calls++
	return f.records, f.err
}

type fakeNotifier struct {
	messages []string
	err      error
}

func (f *fakeNotifier) Notify(ctx context.Context, text string) error {
	f.messages = append(f.messages, text)
	return f.err
}

type fakeJournal struct {
	events []ChangeEvent
	err    error
}

func (f *fakeJournal) Record(ctx context.Context, domain string, ev ChangeEvent) error {
	f.events = append(f.events, ev)
	return f.err
}

func newTestRunner(lister RecordLister, notifier Notifier, journal Journal) *Runner {
	return NewRunner(RunnerConfig{
		Domain:   "example.com",
		Names:    []string{"www", "api"},
		Interval: time.Second,
		Lister:   lister,
		Notifier: notifier,
		Journal:  journal,
	})
}

func TestCheckOnceFirstRunNoNotification(t *testing.T) {
	lister := &fakeLister{records: []dnspod.Record{{Name: "www", Type: "A", Value: "1.1.1.1"}}}
	notifier := &fakeNotifier{}
	r := newTestRunner(lister, notifier, nil)

	require.NoError(t, r.CheckOnce(context.Background()))

	assert.Empty(t, notifier.messages)
	base, ok := r.Baseline()
	require.True(t, ok)
	assert.Equal(t, Snapshot{"www": {{Type: "A", Value: "1.1.1.1"}}}, base)
}

func TestCheckOnceFetchFailureLeavesBaseline(t *testing.T) {
	lister := &fakeLister{records: []dnspod.Record{{Name: "www", Type: "A", Value: "1.1.1.1"}}}
	notifier := &fakeNotifier{}
	r := newTestRunner(lister, notifier, nil)

	require.NoError(t, r.CheckOnce(context.Background()))
	before, _ := r.Baseline()

	lister.err = errors.New("connection refused")
	lister.records = nil
	err := r.CheckOnce(context.Background())

	require.Error(t, err)
	after, ok := r.Baseline()
	require.True(t, ok)
	assert.Equal(t, before, after)
	assert.Empty(t, notifier.messages)

	st := r.Status()
	assert.Equal(t, uint64(1), st.Cycles)
	assert.Equal(t, uint64(1), st.FetchFailures)
}

func TestCheckOnceNotifiesOnChange(t *testing.T) {
	lister := &fakeLister{records: []dnspod.Record{{Name: "www", Type: "A", Value: "1.1.1.1"}}}
	notifier := &fakeNotifier{}
	journal := &fakeJournal{}
	r := newTestRunner(lister, notifier, journal)

	require.NoError(t, r.CheckOnce(context.Background()))

	lister.records = []dnspod.Record{{Name: "www", Type: "A", Value: "9.9.9.9"}}
	require.NoError(t, r.CheckOnce(context.Background()))

	require.Len(t, notifier.messages, 1)
	assert.Contains(t, notifier.messages[0], "`www.example.com`")
	require.Len(t, journal.events, 1)
	assert.Equal(t, "www", journal.events[0].Name)

	st := r.Status()
	assert.Equal(t, uint64(1), st.EventsEmitted)
	assert.False(t, st.LastChange.IsZero())
}

func TestCheckOnceNotifierFailureDoesNotAbort(t *testing.T) {
	lister := &fakeLister{records: []dnspod.Record{
		{Name: "www", Type: "A", Value: "1.1.1.1"},
		{Name: "api", Type: "A", Value: "2.2.2.2"},
	}}
	notifier := &fakeNotifier{err: errors.New("telegram unreachable")}
	journal := &fakeJournal{}
	r := newTestRunner(lister, notifier, journal)

	require.NoError(t, r.CheckOnce(context.Background()))

	// Both monitored names change; the failing notifier must not stop
	// the second event or the baseline update.
	lister.records = []dnspod.Record{
		{Name: "www", Type: "A", Value: "3.3.3.3"},
		{Name: "api", Type: "A", Value: "4.4.4.4"},
	}
	require.NoError(t, r.CheckOnce(context.Background()))

	assert.Len(t, notifier.messages, 2)
	assert.Len(t, journal.events, 2)
	assert.Equal(t, uint64(2), r.Status().NotifyFailures)

	// Baseline advanced despite notify failures: repeat cycle is quiet.
	require.NoError(t, r.CheckOnce(context.Background()))
	assert.Len(t, notifier.messages, 2)
}

func TestCheckOnceIgnoresUnmonitoredNames(t *testing.T) {
	lister := &fakeLister{records: []dnspod.Record{{Name: "www", Type: "A", Value: "1.1.1.1"}}}
	notifier := &fakeNotifier{}
	r := newTestRunner(lister, notifier, nil)

	require.NoError(t, r.CheckOnce(context.Background()))

	// A record outside the monitored set appears: no event.
	lister.records = []dnspod.Record{
		{Name: "www", Type: "A", Value: "1.1.1.1"},
		{Name: "shop", Type: "A", Value: "5.5.5.5"},
	}
	require.NoError(t, r.CheckOnce(context.Background()))

	assert.Empty(t, notifier.messages)
}

func TestRunStopsOnContextCancel(t *testing.T) {
	lister := &fakeLister{records: []dnspod.Record{{Name: "www", Type: "A", Value: "1.1.1.1"}}}
	r := newTestRunner(lister, &fakeNotifier{}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- r.Run(ctx) }()

	// The immediate first check runs before the ticker loop.
	assert.Eventually(t, func() bool { return r.Status().Cycles >= 1 }, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop after cancel")
	}
}
