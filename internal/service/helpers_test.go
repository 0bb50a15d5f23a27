package service

// fixedRand fija las extracciones aleatorias para los tests.
type fixedRand struct {
	n int
	f float64
}

func (r fixedRand) Intn(n int) int {
	if r.n >= n {
		return n - 1
	}
	return r.n
}

func (r fixedRand) Float64() float64 {
	return r.f
}
