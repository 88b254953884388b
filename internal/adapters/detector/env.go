// Package detector decides whether reports are rendered with terminal styling.
package detector

import (
	"os"

	"golang.org/x/term"
)

// OutputMode represents the rendering mode for reports.
type OutputMode int

const (
	// ModeAuto defers to environment detection.
	ModeAuto OutputMode = iota
	// ModeStyled renders reports with colors and bold headers.
	ModeStyled
	// ModePlain renders reports as plain text.
	ModePlain
)

// String returns the flag value naming the mode.
func (m OutputMode) String() string {
	switch m {
	case ModeStyled:
		return "always"
	case ModePlain:
		return "never"
	default:
		return "auto"
	}
}

// DetectEnvironment returns the recommended output mode for stdout.
// It checks if stdout is a TTY and if CI environment variables are set.
func DetectEnvironment() OutputMode {
	return detect(term.IsTerminal(int(os.Stdout.Fd())), os.Getenv("CI")) //nolint:gosec // fd fits in int
}

func detect(isTTY bool, ci string) OutputMode {
	isCI := ci == "true" || ci == "1"
	if !isTTY || isCI {
		return ModePlain
	}
	return ModeStyled
}

// ResolveMode applies the user's --color flag to auto-detection.
// userFlag should be one of: "auto", "always", "never", or empty.
func ResolveMode(autoDetected OutputMode, userFlag string) OutputMode {
	switch userFlag {
	case "always":
		return ModeStyled
	case "never":
		return ModePlain
	default:
		return autoDetected
	}
}
