package bpe

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewModel_RestoresTrainedModel(t *testing.T) {
	corpus := strings.Repeat("restore me from merges alone. ", 20)
	trained, err := Train(corpus, 290)
	require.NoError(t, err)

	restored, err := NewModel(trained.Merges())
	require.NoError(t, err)

	assert.Equal(t, trained.Merges(), restored.Merges())
	assert.Equal(t, trained.vocab, restored.vocab)
	assert.Equal(t, trained.Encode(corpus), restored.Encode(corpus))
}

func TestNewModel_Empty(t *testing.T) {
	model, err := NewModel(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, model.NumMerges())
	assert.Equal(t, ByteVocabSize, model.VocabSize())
}

func TestNewModel_InvalidPairs(t *testing.T) {
	tests := []struct {
		name  string
		pairs []Pair
	}{
		{
			name:  "forward reference",
			pairs: []Pair{{97, 256}},
		},
		{
			name:  "negative id",
			pairs: []Pair{{-1, 97}},
		},
		{
			name:  "duplicate pair",
			pairs: []Pair{{97, 98}, {97, 98}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewModel(tt.pairs)
			assert.Error(t, err)
		})
	}
}
