package transliteration

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslateBatch(t *testing.T) {
	reqs := []Request{
		{Text: "салам", Direction: "Cyrillic → Latin"},
		{Text: "", Direction: "Cyrillic → Latin"},
		{Text: "salam", Direction: ""},
		{Text: "سلام", Direction: "ar-lat"},
	}

	results, err := TranslateBatch(context.Background(), reqs, 2)
	require.NoError(t, err)
	require.Len(t, results, 4)

	assert.Equal(t, Result{Direction: CyrillicToLatin, Output: "salam"}, results[0])
	assert.ErrorIs(t, results[1].Err, ErrNoInput)
	assert.ErrorIs(t, results[2].Err, ErrNoDirection)
	assert.Equal(t, ArabicToLatin, results[3].Direction, "aliases resolve to the display direction")
	assert.Equal(t, "slam", results[3].Output)
	assert.NoError(t, results[3].Err)
}

func TestTranslateBatchKeepsOrder(t *testing.T) {
	reqs := make([]Request, 200)
	for i := range reqs {
		reqs[i] = Request{Text: fmt.Sprintf("аб%d", i), Direction: "cyr-lat"}
	}

	results, err := TranslateBatch(context.Background(), reqs, 8)
	require.NoError(t, err)
	for i, r := range results {
		assert.Equal(t, fmt.Sprintf("ap%d", i), r.Output)
	}
}

func TestTranslateBatchCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := TranslateBatch(ctx, []Request{{Text: "а", Direction: "cyr-lat"}}, 0)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTranslateBatchEmpty(t *testing.T) {
	results, err := TranslateBatch(context.Background(), nil, 4)
	require.NoError(t, err)
	assert.Empty(t, results)
}
