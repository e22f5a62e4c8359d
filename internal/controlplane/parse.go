package controlplane

import (
	"regexp"
	"strings"
)

// stateRegex extracts a state token from view output. The field label has
// appeared both with and without a colon across gh versions.
var stateRegex = regexp.MustCompile(`(?i)\bstate:?\s*(\w+)`)

// knownStates maps lowercase state tokens to canonical states.
var knownStates = map[string]State{
	"available": StateAvailable,
	"creating":  StateCreating,
	"starting":  StateStarting,
	"shutdown":  StateShutdown,
	"shutting":  StateShutdown,
	"stopped":   StateStopped,
}

// canonicalState normalizes a raw state token. Unrecognized tokens are
// preserved as-is so new control-plane states surface in output.
func canonicalState(token string) State {
	if s, ok := knownStates[strings.ToLower(token)]; ok {
		return s
	}
	if token == "" {
		return StateUnknown
	}
	return State(token)
}

// parseViewState extracts the sandbox state from view output.
func parseViewState(out string) State {
	for _, line := range strings.Split(out, "\n") {
		if !strings.Contains(strings.ToLower(line), "state") {
			continue
		}
		if m := stateRegex.FindStringSubmatch(line); m != nil {
			return canonicalState(m[1])
		}
	}
	return StateUnknown
}

// parseList parses the tabular list output into sandboxes. The layout is
// treated as untrusted: header and separator lines are skipped, the name
// is the first column, the repo is the first owner/name-shaped column, and
// the state is the first recognizable state token.
func parseList(out string) []Sandbox {
	var sandboxes []Sandbox
	for _, line := range strings.Split(out, "\n") {
		if !listDataLine(line) {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		sb := Sandbox{Name: fields[0], State: StateUnknown, Raw: line}
		for _, f := range fields[1:] {
			if sb.Repo == "" && strings.Count(f, "/") == 1 {
				sb.Repo = f
				continue
			}
			if sb.State == StateUnknown {
				if s, ok := knownStates[strings.ToLower(f)]; ok {
					sb.State = s
				}
			}
		}
		sandboxes = append(sandboxes, sb)
	}
	return sandboxes
}

// parseListState extracts the state of a named sandbox from list output.
func parseListState(out string, name string) State {
	for _, sb := range parseList(out) {
		if sb.Name == name {
			return sb.State
		}
	}
	return StateUnknown
}

// listDataLine reports whether a list output line carries sandbox data.
func listDataLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}
	if strings.HasPrefix(trimmed, "NAME") {
		return false
	}
	if strings.Contains(trimmed, "---") {
		return false
	}
	return true
}
