package bpe

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func trainedModel(t *testing.T) *Model {
	t.Helper()
	corpus := strings.Repeat("the quick brown fox jumps over the lazy dog. ", 12) +
		strings.Repeat("Šířka naïve café 你好世界 ", 6)
	model, err := Train(corpus, 320)
	require.NoError(t, err)
	return model
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	model := trainedModel(t)

	tests := []struct {
		name string
		text string
	}{
		{name: "empty", text: ""},
		{name: "seen text", text: "the quick brown fox"},
		{name: "unseen ascii", text: "zebras vex jumpy wizards"},
		{name: "multi-byte runes", text: "héllo wörld 你好"},
		{name: "control bytes", text: "line1\nline2\tend\x00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ids := model.Encode(tt.text)
			got, err := model.Decode(ids)
			require.NoError(t, err)
			assert.Equal(t, tt.text, got)
		})
	}
}

func TestEncode_Idempotent(t *testing.T) {
	model := trainedModel(t)

	text := "the lazy dog jumps over the quick brown fox"
	ids := model.Encode(text)
	decoded, err := model.Decode(ids)
	require.NoError(t, err)
	assert.Equal(t, ids, model.Encode(decoded))
}

func TestEncode_UntrainedModelEmitsBytes(t *testing.T) {
	model, err := Train("", 256)
	require.NoError(t, err)
	assert.Equal(t, []int{104, 105, 33}, model.Encode("hi!"))
}

func TestDecode_UnknownID(t *testing.T) {
	model := trainedModel(t)

	_, err := model.Decode([]int{97, model.VocabSize() + 10})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not in vocabulary")
}

func TestDecode_InvalidUTF8Replaced(t *testing.T) {
	model, err := Train("", 256)
	require.NoError(t, err)

	// Each maximal ill-formed subpart becomes exactly one replacement
	// character: a truncated multi-byte sequence is one, adjacent dangling
	// lead bytes are one each.
	tests := []struct {
		name string
		ids  []int
		want string
	}{
		{
			name: "dangling lead byte",
			ids:  []int{0x61, 0xC3, 0x62},
			want: "a�b",
		},
		{
			name: "adjacent dangling lead bytes",
			ids:  []int{0x61, 0xC3, 0xC3, 0x62},
			want: "a��b",
		},
		{
			name: "truncated three byte sequence",
			ids:  []int{0xE2, 0x82},
			want: "�",
		},
		{
			name: "truncated four byte sequence",
			ids:  []int{0xF0, 0x9F, 0x98},
			want: "�",
		},
		{
			name: "stray continuation bytes",
			ids:  []int{0x80, 0x80, 0x41},
			want: "��A",
		},
		{
			name: "lead with continuation outside its range",
			ids:  []int{0xE0, 0x80, 0x41},
			want: "��A",
		},
		{
			name: "surrogate range rejected per byte position",
			ids:  []int{0xED, 0xA0, 0x80},
			want: "���",
		},
		{
			name: "valid text untouched",
			ids:  []int{0xE4, 0xBD, 0xA0},
			want: "你",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, err := model.Decode(tt.ids)
			require.NoError(t, err)
			assert.Equal(t, tt.want, text)
		})
	}
}

func TestModel_ConcurrentEncodeDecode(t *testing.T) {
	model := trainedModel(t)

	texts := []string{
		"the quick brown fox",
		"jumps over the lazy dog",
		"héllo wörld",
		"你好世界",
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(text string) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				got, err := model.Decode(model.Encode(text))
				assert.NoError(t, err)
				assert.Equal(t, text, got)
			}
		}(texts[i%len(texts)])
	}
	wg.Wait()
}

func BenchmarkTrain(b *testing.B) {
	corpus := strings.Repeat("the quick brown fox jumps over the lazy dog. ", 200)
	for _, s := range allStrategies {
		b.Run(s.String(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, err := Train(corpus, 512, WithStrategy(s))
				if err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkEncode(b *testing.B) {
	corpus := strings.Repeat("the quick brown fox jumps over the lazy dog. ", 200)
	model, err := Train(corpus, 512)
	if err != nil {
		b.Fatal(err)
	}
	text := strings.Repeat("quick brown foxes doze over lazy dogs. ", 20)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		model.Encode(text)
	}
}
