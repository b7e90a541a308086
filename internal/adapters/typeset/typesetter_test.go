package typeset_test

import (
	"context"
	"errors"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"

	"go.trai.ch/texd/internal/adapters/typeset"
	"go.trai.ch/texd/internal/core/domain"
)

// shArgv wraps a shell script into a typesetter argv. The script sees the
// macro arguments and the equation as positional parameters.
func shArgv(t *testing.T, script string) []string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("test tool requires a POSIX shell")
	}
	return []string{"sh", "-c", script, "typeset"}
}

func TestTypeset_Success(t *testing.T) {
	ts := typeset.New(shArgv(t, `printf '<svg fill="currentColor"/>'`), nil)

	svg, err := ts.Typeset(context.Background(), "x^2")
	require.NoError(t, err)
	require.Equal(t, `<svg fill="currentColor"/>`, svg)
}

func TestTypeset_PassesEquationAndMacros(t *testing.T) {
	macros := map[string]domain.Macro{
		"R":    {Body: `\mathbb{R}`},
		"norm": {Body: `\lVert #1 \rVert`, Arity: 1},
	}
	// Echo all arguments back so the test can observe the command line.
	ts := typeset.New(shArgv(t, `printf '%s\n' "$@"`), macros)

	out, err := ts.Typeset(context.Background(), "x \\in \\R")
	require.NoError(t, err)
	require.Contains(t, out, `--macro=R=\mathbb{R}`)
	require.Contains(t, out, `--macro=norm[1]=\lVert #1 \rVert`)
	require.Contains(t, out, "x \\in \\R")
}

func TestTypeset_MalformedInputIsTypesetError(t *testing.T) {
	ts := typeset.New(shArgv(t, `echo 'TeX parse error: Missing close brace' >&2; exit 1`), nil)

	_, err := ts.Typeset(context.Background(), "{")
	var terr *domain.TypesetError
	require.True(t, errors.As(err, &terr))
	require.Equal(t, "TeX parse error: Missing close brace", terr.Message)
}

func TestTypeset_OtherExitCodeIsToolingError(t *testing.T) {
	ts := typeset.New(shArgv(t, `echo 'segfault' >&2; exit 3`), nil)

	_, err := ts.Typeset(context.Background(), "x")
	require.Error(t, err)
	var terr *domain.TypesetError
	require.False(t, errors.As(err, &terr))
}

func TestTypeset_MissingBinaryIsToolingError(t *testing.T) {
	ts := typeset.New([]string{"definitely-not-a-real-tool-4f2a"}, nil)

	_, err := ts.Typeset(context.Background(), "x")
	require.Error(t, err)
	var terr *domain.TypesetError
	require.False(t, errors.As(err, &terr))
}

func TestTypeset_EmptyArgv(t *testing.T) {
	ts := typeset.New(nil, nil)

	_, err := ts.Typeset(context.Background(), "x")
	require.ErrorIs(t, err, domain.ErrNoTypesetter)
}
