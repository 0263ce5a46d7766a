package vectorizer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBuildsSharedVocabulary(t *testing.T) {
	corpus := [][]string{
		{"python", "sql"},
		{"python", "react"},
	}

	v := New(corpus)
	assert.Equal(t, 3, v.VocabularySize())

	// Vocabulary order is first-seen, so vectors from the same
	// corpus are index-aligned.
	a := v.Vector(corpus[0])
	b := v.Vector(corpus[1])
	require.Len(t, a, 3)
	require.Len(t, b, 3)
	assert.Positive(t, a[0])
	assert.Positive(t, b[0])
}

func TestVectorTFIDFValues(t *testing.T) {
	// Two documents, "python" in both, "sql" in one.
	corpus := [][]string{
		{"python", "sql"},
		{"python"},
	}
	v := New(corpus)

	vec := v.Vector(corpus[0])
	require.Len(t, vec, 2)

	// tf = 1/2 for both terms. idf(python) = ln(2/3)+1, idf(sql) = ln(2/2)+1.
	wantPython := 0.5 * (math.Log(2.0/3.0) + 1)
	wantSQL := 0.5 * (math.Log(1.0) + 1)
	assert.InDelta(t, wantPython, vec[0], 1e-9)
	assert.InDelta(t, wantSQL, vec[1], 1e-9)

	// The rarer term outweighs the common one.
	assert.Greater(t, vec[1], vec[0])
}

func TestVectorEmptyDocument(t *testing.T) {
	v := New([][]string{{"python"}})
	vec := v.Vector(nil)
	require.Len(t, vec, 1)
	assert.Zero(t, vec[0])
}

func TestVectorIgnoresUnknownTerms(t *testing.T) {
	v := New([][]string{{"python"}})
	vec := v.Vector([]string{"haskell", "haskell"})
	assert.Zero(t, vec[0])
}

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b []float64
		want float64
	}{
		{"identical vectors", []float64{1, 2, 3}, []float64{1, 2, 3}, 1},
		{"orthogonal vectors", []float64{1, 0}, []float64{0, 1}, 0},
		{"opposite vectors", []float64{1, 0}, []float64{-1, 0}, -1},
		{"length mismatch fails closed", []float64{1, 2}, []float64{1, 2, 3}, 0},
		{"zero vector fails closed", []float64{0, 0}, []float64{1, 2}, 0},
		{"both empty", []float64{}, []float64{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, CosineSimilarity(tt.a, tt.b), 1e-9)
		})
	}
}

func TestSimilarityPercentRounding(t *testing.T) {
	// 45 degrees apart: cos = 0.7071..., reported as 70.71.
	a := []float64{1, 0}
	b := []float64{1, 1}
	assert.InDelta(t, 70.71, SimilarityPercent(a, b), 1e-9)

	assert.InDelta(t, 100, SimilarityPercent([]float64{2, 1}, []float64{2, 1}), 1e-9)
	assert.Zero(t, SimilarityPercent([]float64{0}, []float64{1}))
}

func TestSelfSimilarityWithinCorpus(t *testing.T) {
	corpus := [][]string{
		{"go", "postgres", "docker"},
		{"react", "css"},
	}
	v := New(corpus)
	vec := v.Vector(corpus[0])
	assert.InDelta(t, 1, CosineSimilarity(vec, vec), 1e-9)
}
