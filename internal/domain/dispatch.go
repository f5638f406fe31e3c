package domain

import (
	"fmt"
	"io"
	"strings"
)

// SignalBell prefixes a stdout line that asks the wrapper to cd.
const SignalBell = '\a'

// OutcomeKind tags a DispatchOutcome.
type OutcomeKind int

const (
	// OutcomeChangeDirectory asks the wrapper to cd into Path.
	OutcomeChangeDirectory OutcomeKind = iota
	// OutcomePrintValue asks the wrapper to show Path as plain output.
	OutcomePrintValue
)

// DispatchOutcome is the decision made for one invocation.
type DispatchOutcome struct {
	Kind OutcomeKind
	Path string
}

// ChangeDirectory builds a cd outcome.
func ChangeDirectory(path string) DispatchOutcome {
	return DispatchOutcome{Kind: OutcomeChangeDirectory, Path: path}
}

// PrintValue builds a print-only outcome.
func PrintValue(path string) DispatchOutcome {
	return DispatchOutcome{Kind: OutcomePrintValue, Path: path}
}

// SignalLine renders the first stdout line without its newline.
func (o DispatchOutcome) SignalLine() string {
	if o.Kind == OutcomeChangeDirectory {
		return string(SignalBell) + o.Path
	}
	return o.Path
}

// WriteTo writes the signal line followed by a newline.
func (o DispatchOutcome) WriteTo(w io.Writer) (int64, error) {
	n, err := fmt.Fprintln(w, o.SignalLine())
	return int64(n), err
}

// ParseSignalLine is the wrapper side of the protocol: only the first line counts.
func ParseSignalLine(output string) DispatchOutcome {
	first, _, _ := strings.Cut(output, "\n")
	if len(first) > 0 && first[0] == SignalBell {
		return ChangeDirectory(first[1:])
	}
	return PrintValue(first)
}
