package utils

import (
	"math"
	"math/rand"
	"time"
)

// Random is the randomness the simulation draws from. Production code uses
// PRNGService; tests pass a fixed seed to get a reproducible run.
type Random interface {
	Float64() float64
	Intn(n int) int
}

// PRNGService является оберткой над стандартным генератором случайных чисел Go,
// которая позволяет использовать предсказуемый (seeded) рандом во всей симуляции.
type PRNGService struct {
	rng  *rand.Rand
	seed int64
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	source := rand.NewSource(seed)
	return &PRNGService{
		rng:  rand.New(source),
		seed: seed,
	}
}

// Seed returns the seed the generator was created with.
func (s *PRNGService) Seed() int64 {
	return s.seed
}

// Intn возвращает случайное целое число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 возвращает случайное число с плавающей точкой в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Between returns a uniform value in [lo, lo+span).
func Between(r Random, lo, span float64) float64 {
	return lo + r.Float64()*span
}

// Centered returns a uniform value in [-half, half).
func Centered(r Random, half float64) float64 {
	return (r.Float64() - 0.5) * 2 * half
}

// Angle returns a uniform angle in [0, 2π).
func Angle(r Random) float64 {
	return r.Float64() * math.Pi * 2
}
