package event

const (
	Impact             EventType = "Impact"             // капля ударилась о препятствие или пол
	Resized            EventType = "Resized"            // сменился размер окна и профиль
	VisibilityChanged  EventType = "VisibilityChanged"  // окно скрыто или показано
	DensityAdjusted    EventType = "DensityAdjusted"    // governor изменил масштаб
	ObstaclesRefreshed EventType = "ObstaclesRefreshed" // список препятствий пересобран
)

// ImpactData is the payload of Impact.
type ImpactData struct {
	X, Y  float64
	Floor bool
}

// GovernorData is the payload of DensityAdjusted.
type GovernorData struct {
	FPS    float64
	Scale  float64
	Target int
}
