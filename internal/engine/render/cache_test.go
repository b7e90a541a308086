package render_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"

	"go.trai.ch/texd/internal/core/domain"
	"go.trai.ch/texd/internal/core/ports/mocks"
	"go.trai.ch/texd/internal/engine/render"
)

func TestLookupTypeset_CachesSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	ts := mocks.NewMockTypesetter(ctrl)
	ts.EXPECT().Typeset(gomock.Any(), "x^2").Return("<svg/>", nil).Times(1)

	c := render.NewCache(ts)

	for range 3 {
		svg, err := c.LookupTypeset(context.Background(), "x^2")
		require.NoError(t, err)
		require.Equal(t, "<svg/>", svg)
	}
}

func TestLookupTypeset_CachesMalformedInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	ts := mocks.NewMockTypesetter(ctrl)
	ts.EXPECT().Typeset(gomock.Any(), "{").
		Return("", &domain.TypesetError{Message: "Missing close brace"}).
		Times(1)

	c := render.NewCache(ts)

	first := requireTypesetFailure(t, c, "{")
	second := requireTypesetFailure(t, c, "{")
	require.Equal(t, first.Message, second.Message)
}

func requireTypesetFailure(t *testing.T, c *render.Cache, equation string) *domain.TypesetError {
	t.Helper()
	_, err := c.LookupTypeset(context.Background(), equation)
	var terr *domain.TypesetError
	require.True(t, errors.As(err, &terr))
	return terr
}

func TestLookupTypeset_DoesNotCacheToolingFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	ts := mocks.NewMockTypesetter(ctrl)
	ts.EXPECT().Typeset(gomock.Any(), "x").
		Return("", zerr.New("converter crashed")).
		Times(2)

	c := render.NewCache(ts)

	_, err := c.LookupTypeset(context.Background(), "x")
	require.Error(t, err)

	// The retry reaches the tool again.
	_, err = c.LookupTypeset(context.Background(), "x")
	require.Error(t, err)
}

func TestLookupTypeset_DistinctEquationsDistinctEntries(t *testing.T) {
	ctrl := gomock.NewController(t)
	ts := mocks.NewMockTypesetter(ctrl)
	ts.EXPECT().Typeset(gomock.Any(), "a").Return("<svg>a</svg>", nil).Times(1)
	ts.EXPECT().Typeset(gomock.Any(), "b").Return("<svg>b</svg>", nil).Times(1)

	c := render.NewCache(ts)

	svg, err := c.LookupTypeset(context.Background(), "a")
	require.NoError(t, err)
	require.Equal(t, "<svg>a</svg>", svg)

	svg, err = c.LookupTypeset(context.Background(), "b")
	require.NoError(t, err)
	require.Equal(t, "<svg>b</svg>", svg)
}

func TestRenderedCache_PutLookup(t *testing.T) {
	c := render.NewCache(nil)

	key := render.Key(domain.RenderRequest{Equation: "x^2"})
	_, ok := c.LookupRendered(key)
	require.False(t, ok)

	re := domain.RenderedEquation{Equation: "x^2", Filename: "/w/a.png", Width: 1, Height: 1}
	c.PutRendered(key, re)

	got, ok := c.LookupRendered(key)
	require.True(t, ok)
	require.Equal(t, re, got)

	// Last writer wins.
	re2 := re
	re2.Filename = "/w/b.png"
	c.PutRendered(key, re2)
	got, _ = c.LookupRendered(key)
	require.Equal(t, "/w/b.png", got.Filename)
}
