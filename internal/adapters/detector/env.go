// Package detector provides CI and terminal environment detection.
package detector

import (
	"os"

	"golang.org/x/term"
)

// ciEnvVars are environment variables whose presence identifies a CI
// environment beyond the generic CI flag.
var ciEnvVars = []string{
	"GITHUB_ACTIONS",
	"GITLAB_CI",
	"CIRCLECI",
	"TRAVIS",
	"BUILDKITE",
}

// DetectCI reports whether the process runs under a recognized CI
// environment, using the given lookup function (typically os.LookupEnv).
func DetectCI(lookup func(string) (string, bool)) bool {
	if v, ok := lookup("CI"); ok && (v == "true" || v == "1") {
		return true
	}
	for _, key := range ciEnvVars {
		if v, ok := lookup(key); ok && v != "" && v != "false" {
			return true
		}
	}
	return false
}

// StdinIsTerminal reports whether stdin is attached to a terminal.
// Confirmation prompts are only possible when it is.
func StdinIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
