package engine

import "math"

// cosine returns the cosine similarity of two vectors, 0 when either vector
// is all-zero (never NaN) or when lengths differ.
func cosine(a, b []float64) float64 {
	if len(a) == 0 || len(b) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, na, nb float64
	for i := 0; i < len(a); i++ {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

// similarityScores returns one cosine score per matrix row against the ideal
// vector. Deterministic for identical inputs.
func similarityScores(ideal []float64, matrix [][]float64) []float64 {
	scores := make([]float64, len(matrix))
	for i, row := range matrix {
		scores[i] = cosine(ideal, row)
	}
	return scores
}
