package service

import (
	"math/rand"
	"time"
)

// RandSource abstrae las extracciones aleatorias de la pipeline
// (fallback de rasgos faciales, desempate de arquetipo, jitter de
// compatibilidad) para poder fijarlas en tests.
type RandSource interface {
	Intn(n int) int
	Float64() float64
}

// newDefaultRand crea la fuente usada en producción.
func newDefaultRand() RandSource {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
