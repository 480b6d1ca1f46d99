// Package similarity measures text similarity between a résumé and a job
// description using a TF-IDF vector model with cosine similarity.
package similarity

import (
	"math"
	"strings"
	"unicode"
)

// stopWords are common English function words excluded from the vocabulary.
var stopWords = map[string]bool{
	"a": true, "an": true, "and": true, "are": true, "as": true, "at": true,
	"be": true, "but": true, "by": true, "for": true, "from": true,
	"had": true, "has": true, "have": true, "he": true, "her": true,
	"his": true, "i": true, "in": true, "is": true, "it": true, "its": true,
	"not": true, "of": true, "on": true, "or": true, "our": true,
	"she": true, "that": true, "the": true, "their": true, "they": true,
	"this": true, "to": true, "was": true, "we": true, "were": true,
	"will": true, "with": true, "you": true, "your": true,
}

// Score returns the TF-IDF cosine similarity between two texts, scaled to
// 0-100 and truncated to a whole number. Degenerate inputs (empty or
// stop-word-only vocabularies) fail soft to 0; the function never errors.
func Score(a, b string) float64 {
	tokensA := tokenize(a)
	tokensB := tokenize(b)
	if len(tokensA) == 0 || len(tokensB) == 0 {
		return 0
	}

	tfA := termFrequencies(tokensA)
	tfB := termFrequencies(tokensB)

	vocab := make(map[string]bool, len(tfA)+len(tfB))
	for t := range tfA {
		vocab[t] = true
	}
	for t := range tfB {
		vocab[t] = true
	}
	if len(vocab) == 0 {
		return 0
	}

	vecA := vectorize(tfA, tfB, vocab)
	vecB := vectorize(tfB, tfA, vocab)

	cos := cosine(vecA, vecB)
	if cos <= 0 {
		return 0
	}
	return math.Trunc(cos * 100)
}

// tokenize splits text into lowercase word tokens, dropping stop words and
// single characters.
func tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) < 2 || stopWords[f] {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}

func termFrequencies(tokens []string) map[string]float64 {
	tf := make(map[string]float64, len(tokens))
	for _, t := range tokens {
		tf[t]++
	}
	return tf
}

// vectorize builds the smoothed TF-IDF vector for one document over the
// shared vocabulary. With a two-document corpus, idf = ln((1+n)/(1+df))+1.
func vectorize(own, other map[string]float64, vocab map[string]bool) map[string]float64 {
	const docs = 2.0
	vec := make(map[string]float64, len(vocab))
	for term := range vocab {
		tf := own[term]
		if tf == 0 {
			continue
		}
		df := 1.0
		if other[term] > 0 {
			df = 2.0
		}
		idf := math.Log((1+docs)/(1+df)) + 1
		vec[term] = tf * idf
	}
	return normalize(vec)
}

func normalize(vec map[string]float64) map[string]float64 {
	var sum float64
	for _, v := range vec {
		sum += v * v
	}
	if sum == 0 {
		return vec
	}
	norm := math.Sqrt(sum)
	for t, v := range vec {
		vec[t] = v / norm
	}
	return vec
}

func cosine(a, b map[string]float64) float64 {
	var dot float64
	for t, v := range a {
		dot += v * b[t]
	}
	return dot
}
