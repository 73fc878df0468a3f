package engine

import "sort"

// FeatureSpec names the columns an encoder consumes, split by kind.
type FeatureSpec struct {
	Numeric     []string
	Categorical []string
}

// FeatureRow is one raw catalog row (or ideal-item row) keyed by column name.
type FeatureRow struct {
	Numeric     map[string]float64
	Categorical map[string]string
}

// FeatureEncoder min-max-scales numeric columns to [0,1] and one-hot encodes
// categorical columns over the categories observed at fit time. Categories
// unseen at fit time transform to an all-zero indicator block rather than
// erroring, so an ideal-item row can always be encoded.
type FeatureEncoder struct {
	spec       FeatureSpec
	mins       map[string]float64
	maxs       map[string]float64
	categories map[string][]string
	width      int
}

// FitEncoder fits an encoder over the given rows. Returns nil when rows is
// empty; callers treat a nil encoder as "no recommendations for this
// catalog", not as an error.
func FitEncoder(spec FeatureSpec, rows []FeatureRow) *FeatureEncoder {
	if len(rows) == 0 {
		return nil
	}
	enc := &FeatureEncoder{
		spec:       spec,
		mins:       make(map[string]float64, len(spec.Numeric)),
		maxs:       make(map[string]float64, len(spec.Numeric)),
		categories: make(map[string][]string, len(spec.Categorical)),
	}
	for _, col := range spec.Numeric {
		lo, hi := rows[0].Numeric[col], rows[0].Numeric[col]
		for _, row := range rows[1:] {
			v := row.Numeric[col]
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
		enc.mins[col] = lo
		enc.maxs[col] = hi
	}
	for _, col := range spec.Categorical {
		seen := make(map[string]bool)
		for _, row := range rows {
			seen[row.Categorical[col]] = true
		}
		cats := make([]string, 0, len(seen))
		for c := range seen {
			cats = append(cats, c)
		}
		sort.Strings(cats)
		enc.categories[col] = cats
		enc.width += len(cats)
	}
	enc.width += len(spec.Numeric)
	return enc
}

// Width is the fixed output vector length; constant for the encoder's
// lifetime regardless of what Transform later sees.
func (e *FeatureEncoder) Width() int { return e.width }

// Transform encodes one row into a vector of Width() columns. Numeric values
// outside the fitted range clamp to [0,1] so every encoding stays
// non-negative and cosine scores stay in [0,1].
func (e *FeatureEncoder) Transform(row FeatureRow) []float64 {
	out := make([]float64, 0, e.width)
	for _, col := range e.spec.Numeric {
		lo, hi := e.mins[col], e.maxs[col]
		var v float64
		if hi > lo {
			v = (row.Numeric[col] - lo) / (hi - lo)
		}
		if v < 0 {
			v = 0
		} else if v > 1 {
			v = 1
		}
		out = append(out, v)
	}
	for _, col := range e.spec.Categorical {
		cats := e.categories[col]
		block := make([]float64, len(cats))
		val := row.Categorical[col]
		for i, c := range cats {
			if c == val {
				block[i] = 1
				break
			}
		}
		out = append(out, block...)
	}
	return out
}

// TransformAll encodes rows into an index-aligned matrix.
func (e *FeatureEncoder) TransformAll(rows []FeatureRow) [][]float64 {
	matrix := make([][]float64, len(rows))
	for i, row := range rows {
		matrix[i] = e.Transform(row)
	}
	return matrix
}
