package alerts

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestPushOrdersNewestFirst(t *testing.T) {
	s := NewStore()
	defer s.Close()

	s.Push(Info, "first")
	s.Push(Error, "second")

	got := s.Alerts()
	if len(got) != 2 {
		t.Fatalf("got %d alerts, want 2", len(got))
	}
	if got[0].Message != "second" || got[1].Message != "first" {
		t.Errorf("wrong order: %q, %q", got[0].Message, got[1].Message)
	}
}

func TestPushAssignsUniqueIDs(t *testing.T) {
	s := NewStore()
	defer s.Close()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := s.Push(Info, "x")
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
	}
}

func TestAutoDismiss(t *testing.T) {
	s := NewStore(WithTTL(20 * time.Millisecond))
	defer s.Close()

	s.Push(Warning, "transient")
	if len(s.Alerts()) != 1 {
		t.Fatal("alert not stored")
	}

	deadline := time.Now().Add(time.Second)
	for len(s.Alerts()) != 0 {
		if time.Now().After(deadline) {
			t.Fatal("alert was not auto-dismissed")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestDismiss(t *testing.T) {
	s := NewStore()
	defer s.Close()

	id := s.Push(Info, "a")
	s.Push(Info, "b")
	s.Dismiss(id)

	got := s.Alerts()
	if len(got) != 1 || got[0].Message != "b" {
		t.Errorf("dismiss removed the wrong alert: %v", got)
	}

	// Unknown ids are a no-op.
	s.Dismiss("missing")
	if len(s.Alerts()) != 1 {
		t.Error("dismissing an unknown id changed the list")
	}
}

func TestCloseCancelsTimers(t *testing.T) {
	var changes atomic.Int64
	s := NewStore(
		WithTTL(10*time.Millisecond),
		WithOnChange(func([]Alert) { changes.Add(1) }),
	)

	s.Push(Info, "a")
	s.Push(Info, "b")
	before := changes.Load()
	s.Close()

	time.Sleep(50 * time.Millisecond)
	if changes.Load() != before {
		t.Error("onChange fired after Close")
	}
	if id := s.Push(Info, "late"); id != "" {
		t.Error("push after Close returned an id")
	}
}

func TestOnPushReceivesAlert(t *testing.T) {
	var got Alert
	s := NewStore(WithOnPush(func(a Alert) { got = a }))
	defer s.Close()

	s.Pushf(Error, "fallo %d", 7)
	if got.Severity != Error || got.Message != "fallo 7" {
		t.Errorf("onPush got %+v", got)
	}
}
