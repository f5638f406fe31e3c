// Package navigate turns a Windows path into the stdout signal consumed by the
// cdw shell wrappers.
//
// Wire contract, first line only is authoritative:
//
//	"\a" + path   the wrapper should cd into path (default)
//	path          the wrapper should print path (--convert)
//
// Verbose mode appends "Windows path: ..." and "WSL path: ..." lines after it.
package navigate

import (
	"fmt"
	"io"

	"github.com/doeshing/cdw/internal/domain"
	"github.com/doeshing/cdw/internal/pkg/logger"
	"github.com/doeshing/cdw/internal/ports"
)

// Request is one cdw invocation with a path argument.
type Request struct {
	WindowsPath string
	Convert     bool
	Verbose     bool
}

// Service translates and frames paths.
type Service struct {
	Translator domain.Translator
	// Logger defaults to a no-op logger.
	Logger ports.Logger
}

func (s *Service) log() ports.Logger {
	if s.Logger == nil {
		return logger.Nop()
	}
	return s.Logger
}

// Decide builds the outcome for req without writing anything.
func (s *Service) Decide(req Request) domain.DispatchOutcome {
	target := s.Translator.Translate(req.WindowsPath)
	if req.Convert {
		return domain.PrintValue(target)
	}
	return domain.ChangeDirectory(target)
}

// Run writes the signal line, then the verbose diagnostics, to out.
func (s *Service) Run(out io.Writer, req Request) (domain.DispatchOutcome, error) {
	outcome := s.Decide(req)
	s.log().Debug("path translated", map[string]interface{}{
		"windows_path": req.WindowsPath,
		"wsl_path":     outcome.Path,
		"convert":      req.Convert,
	})

	if _, err := outcome.WriteTo(out); err != nil {
		return outcome, fmt.Errorf("write signal: %w", err)
	}
	if req.Verbose {
		if _, err := fmt.Fprintf(out, "Windows path: %s\nWSL path: %s\n", req.WindowsPath, outcome.Path); err != nil {
			return outcome, fmt.Errorf("write diagnostics: %w", err)
		}
	}
	return outcome, nil
}
