// Package detector selects how rendered tags are printed.
package detector

import (
	"os"

	"go.trai.ch/vitetag/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/term"
)

// OutputMode represents how tags are written to stdout.
type OutputMode int

const (
	// ModeAuto picks a mode from the environment.
	ModeAuto OutputMode = iota
	// ModeLines prints one tag per line.
	ModeLines
	// ModeInline prints the space separated tag string, as embedded in a page.
	ModeInline
)

// DetectEnvironment returns the recommended output mode.
// Interactive terminals get one tag per line; pipes and CI get the inline form.
func DetectEnvironment() OutputMode {
	isTTY := term.IsTerminal(int(os.Stdout.Fd())) //nolint:gosec // File descriptors fit in int

	ci := os.Getenv("CI")
	isCI := ci == "true" || ci == "1"

	if !isTTY || isCI {
		return ModeInline
	}
	return ModeLines
}

// ParseMode parses a --format value. An empty value means auto.
func ParseMode(format string) (OutputMode, error) {
	switch format {
	case "", "auto":
		return ModeAuto, nil
	case "lines":
		return ModeLines, nil
	case "inline":
		return ModeInline, nil
	default:
		return ModeAuto, zerr.With(zerr.Wrap(domain.ErrInvalidFormat, "unknown --format value"), "format", format)
	}
}

// ResolveMode returns requested unless it is ModeAuto, in which case autoDetected wins.
func ResolveMode(autoDetected, requested OutputMode) OutputMode {
	if requested == ModeAuto {
		return autoDetected
	}
	return requested
}
