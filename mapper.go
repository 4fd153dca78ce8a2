package main

// Vec is a position or delta, in either data-space or screen-space.
type Vec struct {
	X, Y float64
}

// Mapper converts between data-space (y grows upward) and screen-space
// pixels (y grows downward).
type Mapper struct {
	Scale  float64
	Height float64
}

func NewMapper(scale, height float64) Mapper {
	return Mapper{Scale: scale, Height: height}
}

func (m Mapper) ToScreen(x, y float64) (float64, float64) {
	return x * m.Scale, m.Height - y*m.Scale
}

// ToData converts a screen-space delta into a data-space delta.
func (m Mapper) ToData(dx, dy float64) (float64, float64) {
	return dx / m.Scale, -dy / m.Scale
}
