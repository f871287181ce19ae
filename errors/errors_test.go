package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentinelsWrap(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		sentinel error
		wrapped  error
		message  string
	}{
		{
			name:     "invalid extractor",
			sentinel: ErrInvalidExtractor,
			wrapped:  fmt.Errorf("%w: %s", ErrInvalidExtractor, "null"),
			message:  "invalid comparator or value-extractor: null",
		},
		{
			name:     "incomparable types",
			sentinel: ErrIncomparableTypes,
			wrapped:  fmt.Errorf("%w, only one is of type %s", ErrIncomparableTypes, "number"),
			message:  "uncomparable items, only one is of type number",
		},
		{
			name:     "wrong type",
			sentinel: ErrWrongType,
			wrapped:  fmt.Errorf("%w: got %T", ErrWrongType, 1),
			message:  "wrong type: got int",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.ErrorIs(t, tt.wrapped, tt.sentinel)
			assert.EqualError(t, tt.wrapped, tt.message)
		})
	}
}

func TestSentinelsAreDistinct(t *testing.T) {
	t.Parallel()

	assert.NotErrorIs(t, ErrInvalidExtractor, ErrIncomparableTypes)
	assert.NotErrorIs(t, ErrIncomparableTypes, ErrWrongType)
	assert.False(t, errors.Is(ErrWrongType, ErrInvalidExtractor))
}
