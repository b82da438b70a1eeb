// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// PRNGService — обёртка над генератором случайных чисел, чтобы вся симуляция
// брала случайность из одного засеянного источника и тик был воспроизводим.
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

// Intn возвращает случайное целое число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 возвращает случайное число в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// IntRange возвращает случайное целое в [min, max] включительно.
func (s *PRNGService) IntRange(min, max int) int {
	if max <= min {
		return min
	}
	return min + s.rng.Intn(max-min+1)
}

// FloatRange возвращает случайное число в [min, max).
func (s *PRNGService) FloatRange(min, max float64) float64 {
	return min + s.rng.Float64()*(max-min)
}

// Chance возвращает true с вероятностью p.
func (s *PRNGService) Chance(p float64) bool {
	return s.rng.Float64() < p
}
