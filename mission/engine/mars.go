package engine

import (
	"errors"
	"fmt"
	"sort"
)

// ErrCantBuildMars is returned when a grid is requested with a non-positive side.
var ErrCantBuildMars = errors.New("can't build Mars")

// Mars is the bounded, wrapping grid the rover drives on. Coordinates are
// 1-based: valid cells span [1, width] x [1, height]. A Mars value is never
// modified after NewMars returns.
type Mars struct {
	width     int
	height    int
	obstacles map[Position]struct{}
}

// NewMars builds a validated grid. Duplicate obstacles are collapsed.
func NewMars(width, height int, obstacles ...Position) (*Mars, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width and height must be positive, got %dx%d", ErrCantBuildMars, width, height)
	}

	set := make(map[Position]struct{}, len(obstacles))
	for _, o := range obstacles {
		set[o] = struct{}{}
	}

	return &Mars{
		width:     width,
		height:    height,
		obstacles: set,
	}, nil
}

// Width returns the number of columns.
func (m *Mars) Width() int {
	return m.width
}

// Height returns the number of rows.
func (m *Mars) Height() int {
	return m.height
}

// HasObstacles reports whether any obstacle was configured.
func (m *Mars) HasObstacles() bool {
	return len(m.obstacles) > 0
}

// IsObstacle reports whether p is one of the configured obstacles.
func (m *Mars) IsObstacle(p Position) bool {
	_, ok := m.obstacles[p]
	return ok
}

// Obstacles returns a sorted copy of the obstacle set.
func (m *Mars) Obstacles() []Position {
	out := make([]Position, 0, len(m.obstacles))
	for p := range m.obstacles {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}

// Contains reports whether p lies inside the grid bounds.
func (m *Mars) Contains(p Position) bool {
	return p.X >= 1 && p.X <= m.width && p.Y >= 1 && p.Y <= m.height
}
