package mathutil

// Vec is a float64 vector.
type Vec = []float64

// Mat is a 2D float64 matrix stored as row-major [][]float64.
type Mat = [][]float64

// NewMat creates a rows x cols matrix initialized to zero.
// All rows share one backing slice for cache locality.
func NewMat(rows, cols int) Mat {
	m := make(Mat, rows)
	data := make([]float64, rows*cols)
	for i := range m {
		m[i] = data[i*cols : (i+1)*cols]
	}
	return m
}

// SumVec returns the sum of all elements of v.
func SumVec(v Vec) float64 {
	sum := 0.0
	for _, x := range v {
		sum += x
	}
	return sum
}

// MeanVec returns the arithmetic mean of v, or 0 for an empty vector.
func MeanVec(v Vec) float64 {
	if len(v) == 0 {
		return 0
	}
	return SumVec(v) / float64(len(v))
}
