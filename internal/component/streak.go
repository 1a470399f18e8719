// internal/component/streak.go
package component

// Streak описывает падающую каплю дождя.
// VY is always positive; Z is fixed at spawn and drives perspective
// (higher Z is faster, longer and more opaque).
type Streak struct {
	X, Y      float64
	PrevY     float64 // Y до последнего шага, для проверки пересечения
	VX, VY    float64
	Length    float64
	Width     float64
	Alpha     float64
	Z         float64
	WindPhase float64
}
