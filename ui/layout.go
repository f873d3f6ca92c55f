package ui

// Layout places a square board inside the window.
type Layout struct {
	OffsetX    float32
	OffsetY    float32
	GridLength float32
	CellSize   float32
}

// ComputeLayout fits a gridSize x gridSize board into the window, keeping at
// least padding pixels on every side and centring it on the long axis.
func ComputeLayout(screenW, screenH, padding int32, gridSize uint) Layout {
	length := min(screenW, screenH) - 2*padding
	if length < 0 {
		length = 0
	}
	l := Layout{
		OffsetX:    float32(screenW-length) / 2,
		OffsetY:    float32(screenH-length) / 2,
		GridLength: float32(length),
	}
	if gridSize > 0 {
		l.CellSize = l.GridLength / float32(gridSize)
	}
	return l
}

// CellOrigin is the top left pixel of cell (x, y).
func (l Layout) CellOrigin(x, y uint) (float32, float32) {
	return l.OffsetX + float32(x)*l.CellSize, l.OffsetY + float32(y)*l.CellSize
}
