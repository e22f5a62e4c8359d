package system

import (
	"context"
	"errors"
	"testing"
)

func TestMockExecutor_RecordsCalls(t *testing.T) {
	m := NewMockExecutor()

	_, _ = m.Execute(context.Background(), "gh", "codespace", "list")
	_ = m.ExecuteInteractive(context.Background(), "gh", "codespace", "ssh", "-c", "box")

	calls := m.Calls()
	if len(calls) != 2 {
		t.Fatalf("expected 2 calls, got %d", len(calls))
	}
	if calls[0].Interactive {
		t.Error("Execute call should not be marked interactive")
	}
	if !calls[1].Interactive {
		t.Error("ExecuteInteractive call should be marked interactive")
	}
}

func TestMockExecutor_MatchesBySubstring(t *testing.T) {
	m := NewMockExecutor()
	m.Respond("codespace list", "NAME\tSTATE\n", nil)
	m.Respond("codespace delete", "", errors.New("boom"))

	out, err := m.Execute(context.Background(), "gh", "codespace", "list")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(out) != "NAME\tSTATE\n" {
		t.Errorf("unexpected output: %q", out)
	}

	_, err = m.Execute(context.Background(), "gh", "codespace", "delete", "-c", "box")
	if err == nil {
		t.Error("expected configured error for delete")
	}
}

func TestMockExecutor_FirstKeyWins(t *testing.T) {
	m := NewMockExecutor()
	m.Respond("codespace", "generic", nil)
	m.Respond("codespace list", "specific", nil)

	out, _ := m.Execute(context.Background(), "gh", "codespace", "list")
	if string(out) != "generic" {
		t.Errorf("expected first-registered key to win, got %q", out)
	}
}

func TestMockExecutor_UnmatchedSucceeds(t *testing.T) {
	m := NewMockExecutor()

	out, err := m.Execute(context.Background(), "gh", "codespace", "view")
	if err != nil {
		t.Fatalf("unmatched command should succeed, got %v", err)
	}
	if len(out) != 0 {
		t.Errorf("unmatched command should return empty output, got %q", out)
	}
}

func TestMockExecutor_CallsMatching(t *testing.T) {
	m := NewMockExecutor()

	_, _ = m.Execute(context.Background(), "gh", "codespace", "list")
	_, _ = m.Execute(context.Background(), "gh", "codespace", "view", "-c", "box")
	_, _ = m.Execute(context.Background(), "gh", "codespace", "view", "-c", "box")

	if got := len(m.CallsMatching("view")); got != 2 {
		t.Errorf("expected 2 view calls, got %d", got)
	}
}
