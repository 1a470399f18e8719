package component

// Collider хранит снимок прямоугольника препятствия в экранных координатах.
type Collider struct {
	Left, Top     float64
	Right, Bottom float64
}

// Width returns the horizontal extent of the rectangle.
func (c Collider) Width() float64 { return c.Right - c.Left }

// Height returns the vertical extent of the rectangle.
func (c Collider) Height() float64 { return c.Bottom - c.Top }

// Empty reports whether the rectangle has no area.
func (c Collider) Empty() bool { return c.Width() <= 0 || c.Height() <= 0 }

// SpansX reports whether x lies within the horizontal bounds, edges included.
func (c Collider) SpansX(x float64) bool { return x >= c.Left && x <= c.Right }
