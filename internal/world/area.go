package world

// Area is the rectangle a room occupies on the layout grid.
type Area struct {
	X, Y          int // Top-left corner position
	Width, Height int
}

// Center returns the center coordinates of the area.
func (a Area) Center() (int, int) {
	return a.X + a.Width/2, a.Y + a.Height/2
}

// Contains returns true if the given point is inside the area.
func (a Area) Contains(x, y int) bool {
	return x >= a.X && x < a.X+a.Width && y >= a.Y && y < a.Y+a.Height
}
