package engine

import "testing"

func encoderFixture() (*FeatureEncoder, []FeatureRow) {
	spec := FeatureSpec{
		Numeric:     []string{"calories"},
		Categorical: []string{"type"},
	}
	rows := []FeatureRow{
		{Numeric: map[string]float64{"calories": 100}, Categorical: map[string]string{"type": "balanced"}},
		{Numeric: map[string]float64{"calories": 300}, Categorical: map[string]string{"type": "low_carb"}},
		{Numeric: map[string]float64{"calories": 500}, Categorical: map[string]string{"type": "high_protein"}},
	}
	return FitEncoder(spec, rows), rows
}

func TestFitEncoder_EmptyRowsReturnsNil(t *testing.T) {
	if enc := FitEncoder(FeatureSpec{Numeric: []string{"x"}}, nil); enc != nil {
		t.Fatalf("expected nil encoder for empty rows")
	}
}

func TestTransform_WidthStableForUnseenCategory(t *testing.T) {
	enc, rows := encoderFixture()
	want := enc.Width()

	for _, row := range rows {
		if got := len(enc.Transform(row)); got != want {
			t.Fatalf("width %d, want %d", got, want)
		}
	}
	unseen := FeatureRow{
		Numeric:     map[string]float64{"calories": 250},
		Categorical: map[string]string{"type": "keto"},
	}
	if got := len(enc.Transform(unseen)); got != want {
		t.Fatalf("unseen category changed width to %d, want %d", got, want)
	}
}

func TestTransform_UnseenCategoryEncodesZeroBlock(t *testing.T) {
	enc, _ := encoderFixture()
	vec := enc.Transform(FeatureRow{
		Numeric:     map[string]float64{"calories": 100},
		Categorical: map[string]string{"type": "keto"},
	})
	// One numeric column, then the one-hot block.
	for i, v := range vec[1:] {
		if v != 0 {
			t.Fatalf("one-hot column %d = %v for unseen category", i, v)
		}
	}
}

func TestTransform_MinMaxScaling(t *testing.T) {
	enc, rows := encoderFixture()

	if got := enc.Transform(rows[0])[0]; got != 0 {
		t.Fatalf("min value scaled to %v, want 0", got)
	}
	if got := enc.Transform(rows[2])[0]; got != 1 {
		t.Fatalf("max value scaled to %v, want 1", got)
	}
	if got := enc.Transform(rows[1])[0]; got != 0.5 {
		t.Fatalf("mid value scaled to %v, want 0.5", got)
	}
}

func TestTransform_OutOfRangeClampsToUnitInterval(t *testing.T) {
	enc, _ := encoderFixture()

	high := enc.Transform(FeatureRow{Numeric: map[string]float64{"calories": 9000}})
	if high[0] != 1 {
		t.Fatalf("above-max value scaled to %v, want 1", high[0])
	}
	low := enc.Transform(FeatureRow{Numeric: map[string]float64{"calories": -50}})
	if low[0] != 0 {
		t.Fatalf("below-min value scaled to %v, want 0", low[0])
	}
}

func TestTransform_ConstantColumnEncodesZero(t *testing.T) {
	spec := FeatureSpec{Numeric: []string{"calories"}}
	rows := []FeatureRow{
		{Numeric: map[string]float64{"calories": 400}},
		{Numeric: map[string]float64{"calories": 400}},
	}
	enc := FitEncoder(spec, rows)
	if got := enc.Transform(rows[0])[0]; got != 0 {
		t.Fatalf("constant column scaled to %v, want 0", got)
	}
}

func TestTransformAll_IndexAligned(t *testing.T) {
	enc, rows := encoderFixture()
	matrix := enc.TransformAll(rows)
	if len(matrix) != len(rows) {
		t.Fatalf("matrix has %d rows, want %d", len(matrix), len(rows))
	}
	for i, row := range rows {
		vec := enc.Transform(row)
		for j := range vec {
			if matrix[i][j] != vec[j] {
				t.Fatalf("row %d column %d out of alignment", i, j)
			}
		}
	}
}
