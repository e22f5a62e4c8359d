package controlplane

import "testing"

func TestParseViewState(t *testing.T) {
	tests := []struct {
		name string
		out  string
		want State
	}{
		{
			name: "colon separated",
			out:  "Name: fuzzy-waffle\nState: Available\nRepository: acme/widgets\n",
			want: StateAvailable,
		},
		{
			name: "lowercase label",
			out:  "state: Starting\n",
			want: StateStarting,
		},
		{
			name: "no colon",
			out:  "State Creating\n",
			want: StateCreating,
		},
		{
			name: "shutting normalized to shutdown",
			out:  "State: Shutting\n",
			want: StateShutdown,
		},
		{
			name: "missing state field",
			out:  "Name: fuzzy-waffle\nRepository: acme/widgets\n",
			want: StateUnknown,
		},
		{
			name: "empty output",
			out:  "",
			want: StateUnknown,
		},
		{
			name: "unrecognized token preserved",
			out:  "State: Rebuilding\n",
			want: State("Rebuilding"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseViewState(tt.out); got != tt.want {
				t.Errorf("parseViewState() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseList(t *testing.T) {
	out := "NAME\tDISPLAY NAME\tREPOSITORY\tBRANCH\tSTATE\tCREATED AT\n" +
		"fuzzy-waffle-abc\tvibectl-run-1\tacme/widgets\tmain\tAvailable\t2m ago\n" +
		"shiny-disco-def\tvibectl-run-2\tacme/gadgets\tdev\tShutdown\t1h ago\n" +
		"\n"

	sandboxes := parseList(out)
	if len(sandboxes) != 2 {
		t.Fatalf("expected 2 sandboxes, got %d", len(sandboxes))
	}

	if sandboxes[0].Name != "fuzzy-waffle-abc" {
		t.Errorf("name = %q", sandboxes[0].Name)
	}
	if sandboxes[0].Repo != "acme/widgets" {
		t.Errorf("repo = %q", sandboxes[0].Repo)
	}
	if sandboxes[0].State != StateAvailable {
		t.Errorf("state = %q", sandboxes[0].State)
	}
	if !sandboxes[0].Available() {
		t.Error("first sandbox should be available")
	}

	if sandboxes[1].State != StateShutdown {
		t.Errorf("second state = %q", sandboxes[1].State)
	}
	if sandboxes[1].Available() {
		t.Error("second sandbox should not be available")
	}
}

func TestParseList_SkipsHeadersAndSeparators(t *testing.T) {
	out := "NAME  REPOSITORY  STATE\n----  ----------  -----\nbox-1  acme/widgets  Available\n"

	sandboxes := parseList(out)
	if len(sandboxes) != 1 {
		t.Fatalf("expected 1 sandbox, got %d", len(sandboxes))
	}
	if sandboxes[0].Name != "box-1" {
		t.Errorf("name = %q", sandboxes[0].Name)
	}
}

func TestParseList_Empty(t *testing.T) {
	if got := parseList(""); got != nil {
		t.Errorf("expected nil for empty output, got %v", got)
	}
	if got := parseList("NAME\tSTATE\n"); got != nil {
		t.Errorf("expected nil for header-only output, got %v", got)
	}
}

func TestParseListState(t *testing.T) {
	out := "box-1\tacme/widgets\tmain\tCreating\nbox-2\tacme/widgets\tmain\tAvailable\n"

	if got := parseListState(out, "box-2"); got != StateAvailable {
		t.Errorf("state = %q, want Available", got)
	}
	if got := parseListState(out, "box-1"); got != StateCreating {
		t.Errorf("state = %q, want Creating", got)
	}
	if got := parseListState(out, "box-3"); got != StateUnknown {
		t.Errorf("state = %q, want Unknown for missing sandbox", got)
	}
}
