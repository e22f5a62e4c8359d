// Package errors defines the vibectl error type and exit-code mapping.
//
// Every failure class in the pipeline maps to a stable process exit code
// so callers scripting around vibectl can distinguish a creation failure
// (nothing to clean up) from a provisioning or session failure (teardown
// was attempted). Teardown failures never change the exit code determined
// by earlier stages; they are surfaced as warnings only.
package errors
