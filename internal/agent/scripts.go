package agent

import (
	"fmt"
	"strings"

	shellquote "github.com/kballard/go-shellquote"
)

// installScript fetches and runs the assistant installer. set -e makes a
// failed download abort instead of piping garbage into bash.
const installScript = "set -e; curl -fsSL https://claude.ai/install.sh | bash"

// profileFiles are the shell startup files the credential is written to.
// All three are covered because the sandbox image does not guarantee which
// one a given shell reads.
var profileFiles = []string{"~/.bashrc", "~/.profile", "~/.bash_profile"}

// credentialScript appends an export line for the credential to each shell
// startup file and exports it into the current shell. The value is quoted
// through shellquote so arbitrary credential content stays a single token.
func credentialScript(key, value string) string {
	exportLine := fmt.Sprintf("export %s=%s", key, shellquote.Join(value))

	lines := make([]string, 0, len(profileFiles)+1)
	for _, f := range profileFiles {
		lines = append(lines, fmt.Sprintf("echo %s >> %s", shellquote.Join(exportLine), f))
	}
	lines = append(lines, exportLine)
	return strings.Join(lines, "\n")
}

// verifyScript reads the credential back from a fresh shell.
func verifyScript(key string) string {
	return fmt.Sprintf(
		`source ~/.bashrc && [ -n "$%s" ] && echo 'credential verified' || echo 'credential not found'`,
		key,
	)
}

// launchScript builds the remote command that starts the assistant. It
// sources the startup files, re-exports the credential, changes into the
// checked-out workspace (falling back to the home directory), and runs
// the assistant.
func launchScript(key, value, prompt string) string {
	var b strings.Builder
	b.WriteString("source ~/.bashrc && source ~/.profile && ")
	fmt.Fprintf(&b, "export %s=%s && ", key, shellquote.Join(value))
	b.WriteString("cd /workspaces/* 2>/dev/null || cd ~ && ")

	if prompt != "" {
		fmt.Fprintf(&b, "claude -p %s", shellquote.Join(prompt))
	} else {
		b.WriteString("exec claude")
	}
	return b.String()
}
