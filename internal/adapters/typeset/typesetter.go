// Package typeset provides the exec adapter for the external typesetter.
package typeset

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"sort"
	"strings"

	"go.trai.ch/texd/internal/core/domain"
	"go.trai.ch/texd/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Typesetter = (*Typesetter)(nil)

// Typesetter runs an external LaTeX-to-SVG tool (tex2svg compatible: the
// equation is the last argument, the SVG document arrives on stdout).
type Typesetter struct {
	argv      []string
	macroArgs []string
}

// New creates a Typesetter for the given argv prefix. Macros are encoded
// once here and repeated on every invocation; names are sorted so the
// command line is deterministic.
func New(argv []string, macros map[string]domain.Macro) *Typesetter {
	names := make([]string, 0, len(macros))
	for name := range macros {
		names = append(names, name)
	}
	sort.Strings(names)

	macroArgs := make([]string, 0, len(names))
	for _, name := range names {
		m := macros[name]
		if m.Arity > 0 {
			macroArgs = append(macroArgs, fmt.Sprintf("--macro=%s[%d]=%s", name, m.Arity, m.Body))
		} else {
			macroArgs = append(macroArgs, fmt.Sprintf("--macro=%s=%s", name, m.Body))
		}
	}

	return &Typesetter{
		argv:      argv,
		macroArgs: macroArgs,
	}
}

// Typeset invokes the tool and returns its SVG output.
//
// The tool contract mirrors tex2svg: exit code 1 with a diagnostic on
// stderr means the input was malformed, which becomes a
// *domain.TypesetError. Anything else (missing binary, crash, other exit
// codes) is a tooling failure.
func (t *Typesetter) Typeset(ctx context.Context, equation string) (string, error) {
	if len(t.argv) == 0 {
		return "", domain.ErrNoTypesetter
	}

	args := make([]string, 0, len(t.argv)-1+len(t.macroArgs)+1)
	args = append(args, t.argv[1:]...)
	args = append(args, t.macroArgs...)
	args = append(args, equation)

	cmd := exec.CommandContext(ctx, t.argv[0], args...) //nolint:gosec // argv comes from trusted config

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 && stderr.Len() > 0 {
			return "", &domain.TypesetError{Message: diagnostic(&stderr)}
		}

		exitCode := -1
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return "", zerr.With(zerr.Wrap(err, "typesetter failed"), "exit_code", exitCode)
	}

	svg := stdout.String()
	if strings.TrimSpace(svg) == "" {
		return "", zerr.New("typesetter produced no output")
	}
	return svg, nil
}

// diagnostic extracts the first non-empty stderr line as the user-facing
// message; the rest of the tool's output is noise (stack frames, usage).
func diagnostic(stderr *bytes.Buffer) string {
	for _, line := range strings.Split(stderr.String(), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return line
		}
	}
	return "typesetting failed"
}
