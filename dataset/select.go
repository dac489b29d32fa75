package dataset

// PositiveIndices returns the indices of strictly positive values.
func PositiveIndices(values []float64) []int {
	out := make([]int, 0, len(values))
	for i, v := range values {
		if v > 0 {
			out = append(out, i)
		}
	}

	return out
}

// Select returns the values at the given indices.
func Select(values []float64, indices []int) []float64 {
	out := make([]float64, len(indices))
	for i, idx := range indices {
		out[i] = values[idx]
	}

	return out
}
