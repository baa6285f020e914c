package errors

import (
	"log/slog"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAnnotatedError(t *testing.T) {
	err := New("test error", slog.String("id", "123"))
	require.Equal(t, "test error", err.Error())

	// Assert that wrapping sentinel errors work as expected.
	sentinel := NewSentinel("test error")
	require.NotErrorIs(t, err, NewSentinel("test error"))
	wrapped := Wrap(sentinel, "go left", slog.String("room", "Hall"))
	require.ErrorIs(t, wrapped, sentinel)
	require.Equal(t, "go left: test error", wrapped.Error())

	// Ensure log values are coming through.
	var annotated AnnotatedError
	require.True(t, As(err, &annotated))
	group := annotated.LogValue().Group()
	require.Contains(t, group, slog.String("id", "123"))

	// Assert there's a valid source
	sourceIdx := slices.IndexFunc(group, func(attr slog.Attr) bool {
		return attr.Key == "source"
	})
	require.GreaterOrEqual(t, sourceIdx, 0)
	source := group[sourceIdx]
	require.Contains(t, source.Value.String(), "annotatederror_test.go")
}

func TestWrap(t *testing.T) {
	require.NoError(t, Wrap(nil, "nothing to wrap"))

	sentinel := NewSentinel("no room")
	inner := Wrap(sentinel, "move", slog.String("direction", "left"))
	outer := Wrap(inner, "step", slog.String("token", "l"))

	require.ErrorIs(t, outer, sentinel)

	var annotated AnnotatedError
	require.True(t, As(outer, &annotated))
	require.Equal(t, []slog.Attr{
		slog.String("token", "l"),
		slog.String("direction", "left"),
	}, annotated.Attrs())
}

func TestSlogError(t *testing.T) {
	attr := SlogError(NewSentinel("plain"))
	require.Equal(t, "error", attr.Key)
	require.Equal(t, "plain", attr.Value.String())

	attr = SlogError(New("annotated", slog.Int("depth", 2)))
	require.Equal(t, slog.KindLogValuer, attr.Value.Kind())
	group := attr.Value.Resolve().Group()
	require.Contains(t, group, slog.Int("depth", 2))
}
