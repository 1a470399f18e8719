package component

// Droplet is a short-lived splash particle thrown out by an impact.
type Droplet struct {
	X, Y   float64
	VX, VY float64
	Life   float64 // seconds left
	Alpha  float64
	Width  float64
}

// Ripple is an expanding ring drawn at an impact point.
type Ripple struct {
	X, Y   float64
	Radius float64
	Life   float64 // 1 at spawn, fades geometrically
}
