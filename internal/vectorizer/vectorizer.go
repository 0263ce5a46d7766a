// Package vectorizer builds TF-IDF vectors over a fixed corpus and
// measures cosine similarity between them.
package vectorizer

import (
	"math"
)

// Vectorizer holds the vocabulary and document frequencies of one
// corpus. The vocabulary is fixed at construction so every vector it
// produces shares the same index order; build a fresh Vectorizer per
// ranking call rather than reusing one across corpora.
type Vectorizer struct {
	vocabulary []string
	index      map[string]int
	idf        []float64
}

// New builds a Vectorizer from a corpus of tokenized documents.
// Vocabulary order is first-seen order across the documents, which
// keeps construction deterministic for a given corpus.
func New(corpus [][]string) *Vectorizer {
	v := &Vectorizer{index: make(map[string]int)}

	docFreq := make([]int, 0)
	for _, doc := range corpus {
		seen := make(map[string]bool, len(doc))
		for _, term := range doc {
			if _, ok := v.index[term]; !ok {
				v.index[term] = len(v.vocabulary)
				v.vocabulary = append(v.vocabulary, term)
				docFreq = append(docFreq, 0)
			}
			if !seen[term] {
				seen[term] = true
				docFreq[v.index[term]]++
			}
		}
	}

	// Smoothed IDF: ln(N/(1+df)) + 1. The +1 in the denominator keeps
	// terms present in every document from zeroing out entirely.
	n := float64(len(corpus))
	v.idf = make([]float64, len(v.vocabulary))
	for i, df := range docFreq {
		v.idf[i] = math.Log(n/(1+float64(df))) + 1
	}

	return v
}

// VocabularySize returns the number of distinct terms in the corpus.
func (v *Vectorizer) VocabularySize() int {
	return len(v.vocabulary)
}

// Vector returns the TF-IDF vector for a tokenized document, indexed
// by the corpus vocabulary. Terms outside the vocabulary are ignored;
// an empty document yields the zero vector.
func (v *Vectorizer) Vector(tokens []string) []float64 {
	vec := make([]float64, len(v.vocabulary))
	if len(tokens) == 0 {
		return vec
	}

	counts := make(map[int]int, len(tokens))
	for _, term := range tokens {
		if i, ok := v.index[term]; ok {
			counts[i]++
		}
	}

	total := float64(len(tokens))
	for i, c := range counts {
		vec[i] = (float64(c) / total) * v.idf[i]
	}
	return vec
}

// CosineSimilarity returns the cosine of the angle between two
// vectors. It fails closed: mismatched lengths or a zero-magnitude
// vector score 0 rather than erroring.
func CosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, magA, magB float64
	for i := range a {
		dot += a[i] * b[i]
		magA += a[i] * a[i]
		magB += b[i] * b[i]
	}
	if magA == 0 || magB == 0 {
		return 0
	}

	sim := dot / (math.Sqrt(magA) * math.Sqrt(magB))
	if math.IsNaN(sim) || math.IsInf(sim, 0) {
		return 0
	}
	return sim
}

// SimilarityPercent reports cosine similarity on a 0-100 scale,
// rounded to two decimals.
func SimilarityPercent(a, b []float64) float64 {
	return math.Round(CosineSimilarity(a, b)*100*100) / 100
}
