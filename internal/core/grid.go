package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Grid stores a 2D grid of cell values in row-major order.
type Grid[T any] struct {
	W, H int
	data []T
}

// NewGrid allocates a grid with the given dimensions.
func NewGrid[T any](w, h int) *Grid[T] {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid[T]{W: w, H: h, data: make([]T, w*h)}
}

// Size reports the grid dimensions.
func (g *Grid[T]) Size() Size { return Size{W: g.W, H: g.H} }

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid[T]) Cells() []T { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid[T]) Index(x, y int) int { return y*g.W + x }

// In reports whether (x, y) lies inside the grid.
func (g *Grid[T]) In(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// At returns a pointer to the cell at (x, y). Coordinates must be in bounds.
func (g *Grid[T]) At(x, y int) *T { return &g.data[y*g.W+x] }

// Each calls fn for every cell in row-major order.
func (g *Grid[T]) Each(fn func(*T)) {
	for i := range g.data {
		fn(&g.data[i])
	}
}

// Clear resets every cell to its zero value.
func (g *Grid[T]) Clear() {
	clear(g.data)
}
