// Package macros parses user macro definitions out of a LaTeX preamble.
package macros

import (
	"regexp"
	"strconv"
	"strings"

	"go.trai.ch/texd/internal/core/domain"
	"go.trai.ch/texd/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.MacroProvider = (*Parser)(nil)

var (
	// \newcommand{\name}[arity]{body} with optional \renewcommand and
	// optional arity. The body must be brace-balanced on one line; nested
	// braces inside the body are allowed by the greedy group.
	newcommandRe = regexp.MustCompile(`^\\(?:re)?newcommand\*?\{\\([A-Za-z@]+)\}(?:\[(\d+)\])?\{(.*)\}$`)

	// \def\name{body}
	defRe = regexp.MustCompile(`^\\def\\([A-Za-z@]+)\{(.*)\}$`)
)

// Parser implements ports.MacroProvider for line-oriented preambles.
// Definitions spanning multiple lines are not recognized; the host UI
// writes one definition per line.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse extracts macro definitions from the document. Later definitions of
// the same name win, matching TeX redefinition semantics. Lines that are
// not definitions (comments, blank lines, other preamble material) are
// ignored.
func (p *Parser) Parse(doc string) (map[string]domain.Macro, error) {
	macros := make(map[string]domain.Macro)

	for _, line := range strings.Split(doc, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}

		if m := newcommandRe.FindStringSubmatch(line); m != nil {
			arity := 0
			if m[2] != "" {
				n, err := strconv.Atoi(m[2])
				if err != nil {
					return nil, zerr.With(zerr.Wrap(err, "invalid macro arity"), "macro", m[1])
				}
				arity = n
			}
			macros[m[1]] = domain.Macro{Body: m[3], Arity: arity}
			continue
		}

		if m := defRe.FindStringSubmatch(line); m != nil {
			macros[m[1]] = domain.Macro{Body: m[2]}
		}
	}

	return macros, nil
}
