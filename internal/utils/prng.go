// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// PRNGService - обертка над генератором случайных чисел Go,
// которая позволяет получать предсказуемый (seeded) шум.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Float64 возвращает случайное число в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Signed возвращает случайное число в диапазоне [-1.0, 1.0).
func (s *PRNGService) Signed() float64 {
	return s.Float64()*2 - 1
}
