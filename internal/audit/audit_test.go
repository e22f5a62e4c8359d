package audit

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLogger_LogAndEvents(t *testing.T) {
	dir := t.TempDir()
	logger := NewLogger(dir)

	now := time.Now().Truncate(time.Millisecond)

	events := []Event{
		{Timestamp: now, Type: EventCreate, Run: "run-1", Details: "repo=acme/widgets"},
		{Timestamp: now.Add(time.Second), Type: EventDiscover, Run: "run-1", Sandbox: "box-1"},
		{Timestamp: now.Add(2 * time.Second), Type: EventReady, Run: "run-1", Sandbox: "box-1"},
		{Timestamp: now.Add(3 * time.Second), Type: EventTeardown, Run: "run-1", Sandbox: "box-1"},
	}

	for _, e := range events {
		if err := logger.Log(e); err != nil {
			t.Fatalf("Log failed: %v", err)
		}
	}

	result, err := logger.Events("run-1")
	if err != nil {
		t.Fatalf("Events failed: %v", err)
	}
	if len(result) != len(events) {
		t.Fatalf("got %d events, want %d", len(result), len(events))
	}
	for i := range events {
		if result[i].Type != events[i].Type {
			t.Errorf("event %d type = %q, want %q", i, result[i].Type, events[i].Type)
		}
		if result[i].Sandbox != events[i].Sandbox {
			t.Errorf("event %d sandbox = %q, want %q", i, result[i].Sandbox, events[i].Sandbox)
		}
	}
}

func TestLogger_LogEvent_SetsTimestamp(t *testing.T) {
	logger := NewLogger(t.TempDir())

	if err := logger.LogEvent(EventError, "run-2", "box-1", "boom"); err != nil {
		t.Fatalf("LogEvent failed: %v", err)
	}

	events, err := logger.Events("run-2")
	if err != nil {
		t.Fatalf("Events failed: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	if events[0].Timestamp.IsZero() {
		t.Error("timestamp should be set automatically")
	}
	if events[0].Details != "boom" {
		t.Errorf("details = %q", events[0].Details)
	}
}

func TestLogger_Events_Missing(t *testing.T) {
	logger := NewLogger(t.TempDir())

	events, err := logger.Events("no-such-run")
	if err != nil {
		t.Fatalf("missing log should not error: %v", err)
	}
	if events != nil {
		t.Errorf("expected nil events, got %v", events)
	}
}

func TestLogger_Events_SkipsMalformedLines(t *testing.T) {
	dir := t.TempDir()
	logger := NewLogger(dir)

	if err := logger.LogEvent(EventCreate, "run-3", "", ""); err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(dir, "runs", "run-3.events.jsonl")
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.WriteString("not json\n"); err != nil {
		t.Fatal(err)
	}
	f.Close()

	if err := logger.LogEvent(EventTeardown, "run-3", "box-1", ""); err != nil {
		t.Fatal(err)
	}

	events, err := logger.Events("run-3")
	if err != nil {
		t.Fatalf("Events failed: %v", err)
	}
	if len(events) != 2 {
		t.Errorf("got %d events, want 2 (malformed line skipped)", len(events))
	}
}

func TestLogger_Remove(t *testing.T) {
	logger := NewLogger(t.TempDir())

	if err := logger.LogEvent(EventCreate, "run-4", "", ""); err != nil {
		t.Fatal(err)
	}
	if err := logger.Remove("run-4"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}

	events, _ := logger.Events("run-4")
	if events != nil {
		t.Error("events should be gone after Remove")
	}

	// Removing again is not an error.
	if err := logger.Remove("run-4"); err != nil {
		t.Errorf("second Remove should be a no-op: %v", err)
	}
}
