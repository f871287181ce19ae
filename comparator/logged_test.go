package comparator

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/neilotoole/slogt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amp-labs/amp-compare/errors"
	"github.com/amp-labs/amp-compare/logger"
)

func TestLogged(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	ctx := logger.WithLogger(t.Context(),
		slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	c := Logged(ctx, "by-number", ComparingSimpleNumber[int]())

	res, err := c.Compare(1, 2)
	require.NoError(t, err)
	assert.Equal(t, -1, res)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))

	assert.Equal(t, "compared", rec["msg"])
	assert.Equal(t, "by-number", rec["comparator"])
	assert.InDelta(t, 1, rec["a"], 0)
	assert.InDelta(t, 2, rec["b"], 0)
	assert.InDelta(t, -1, rec["result"], 0)
}

func TestLogged_Failure(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	ctx := logger.WithLogger(t.Context(),
		slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	_, err := Logged(ctx, "identity", MustComparing(Identity[any]())).Compare(1, "1")
	require.ErrorIs(t, err, errors.ErrIncomparableTypes)

	line := strings.TrimSpace(buf.String())
	assert.Contains(t, line, `"msg":"comparison failed"`)
	assert.Contains(t, line, `"error":"uncomparable items, only one is of type number"`)
}

func TestLogged_SortsLikeWrapped(t *testing.T) {
	t.Parallel()

	ctx := logger.WithLogger(t.Context(), slogt.New(t))

	byLast := MustComparing(Field[person]("lastName")).ThenComparing(Field[person]("age"))

	expected, err := byLast.Sort(people)
	require.NoError(t, err)

	got, err := Logged(ctx, "by-last-name", byLast).Sort(people)
	require.NoError(t, err)
	assert.Equal(t, expected, got)
}

func TestLogged_Muted(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	ctx := logger.WithLogger(t.Context(),
		slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	ctx = logger.WithMuted(ctx, true)

	_, err := Logged(ctx, "quiet", ComparingSimpleString[string]()).Sort([]string{"b", "a"})
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}

func TestLogged_KeepsConstructionError(t *testing.T) {
	t.Parallel()

	broken := MustComparing(Field[person]("age")).ThenComparing(Index[person](-2))

	c := Logged(t.Context(), "broken", broken)
	require.ErrorIs(t, c.Err(), errors.ErrInvalidExtractor)
}
