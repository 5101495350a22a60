package transport

import (
	"errors"
	"testing"
)

type recordingSink struct {
	events []any
	err    error
	closed bool
}

func (r *recordingSink) Send(data any) error {
	r.events = append(r.events, data)
	return r.err
}

func (r *recordingSink) Close() error {
	r.closed = true
	return r.err
}

func TestMultiFansOutToAllTransports(t *testing.T) {
	a, b := &recordingSink{}, &recordingSink{}
	m := &Multi{Transports: []Transport{a, b}}

	ev := Progress{Frame: 3, Total: 10}
	if err := m.Send(ev); err != nil {
		t.Fatalf("Send() error: %v", err)
	}
	if len(a.events) != 1 || len(b.events) != 1 {
		t.Errorf("event counts = %d/%d, want 1/1", len(a.events), len(b.events))
	}

	if err := m.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}
	if !a.closed || !b.closed {
		t.Error("Close() should reach every transport")
	}
}

func TestMultiReportsFirstErrorButSendsToAll(t *testing.T) {
	failing := &recordingSink{err: errors.New("boom")}
	ok := &recordingSink{}
	m := &Multi{Transports: []Transport{failing, ok}}

	if err := m.Send(Progress{Frame: 1, Total: 1}); err == nil {
		t.Error("expected the failing transport's error")
	}
	if len(ok.events) != 1 {
		t.Error("later transports should still receive the event")
	}
}

func TestLoggingTransportNeverFails(t *testing.T) {
	lt := NewLoggingTransport()
	for i := 1; i <= 20; i++ {
		if err := lt.Send(Progress{Frame: i, Total: 20, Visualizer: "bar"}); err != nil {
			t.Fatalf("Send() error at frame %d: %v", i, err)
		}
	}
	// Non-progress payloads are logged at debug, not rejected.
	if err := lt.Send(struct{ X int }{1}); err != nil {
		t.Errorf("Send() error for generic payload: %v", err)
	}
	if err := lt.Close(); err != nil {
		t.Errorf("Close() error: %v", err)
	}
}
