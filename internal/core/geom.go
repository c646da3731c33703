// Package core provides the shared types of the apples game: world-space
// geometry, per-frame input, frame timing and a character screen the
// terminal frontend draws from. It has no dependency on Bubble Tea or
// Ebitengine.
package core

import "math"

// Vec2 is a 2D vector in world units. Used for positions and directions.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// LenSq returns the squared length of v.
func (v Vec2) LenSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// DistSq returns the squared Euclidean distance between v and o.
func (v Vec2) DistSq(o Vec2) float64 {
	return v.Sub(o).LenSq()
}

// Box is an axis-aligned box in world units.
type Box struct {
	Min, Max Vec2
}

// BoxAround returns the square of side size centered on c.
func BoxAround(c Vec2, size float64) Box {
	half := size / 2
	return Box{
		Min: Vec2{X: c.X - half, Y: c.Y - half},
		Max: Vec2{X: c.X + half, Y: c.Y + half},
	}
}

// Within reports whether the box lies inside [0, w] x [0, h].
// Touching an edge counts as inside.
func (b Box) Within(w, h float64) bool {
	return b.Min.X >= 0 && b.Max.X <= w && b.Min.Y >= 0 && b.Max.Y <= h
}

// ScaleXY scales the box per axis.
func (b Box) ScaleXY(sx, sy float64) Box {
	return Box{
		Min: Vec2{X: b.Min.X * sx, Y: b.Min.Y * sy},
		Max: Vec2{X: b.Max.X * sx, Y: b.Max.Y * sy},
	}
}

// CellRect is a rectangle of whole cells on a Screen.
type CellRect struct {
	X, Y int // Top-left cell
	W, H int
}

// CellsCovering returns the cells touched by b, where one world unit is one
// cell. The result is never empty.
func CellsCovering(b Box) CellRect {
	x0 := int(math.Floor(b.Min.X))
	y0 := int(math.Floor(b.Min.Y))
	x1 := max(int(math.Ceil(b.Max.X)), x0+1)
	y1 := max(int(math.Ceil(b.Max.Y)), y0+1)
	return CellRect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Right returns the x-coordinate one past the right edge.
func (r CellRect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r CellRect) Bottom() int {
	return r.Y + r.H
}

// Clip returns the part of r inside a w x h grid.
func (r CellRect) Clip(w, h int) CellRect {
	x0, y0 := max(r.X, 0), max(r.Y, 0)
	x1, y1 := min(r.Right(), w), min(r.Bottom(), h)
	if x1 <= x0 || y1 <= y0 {
		return CellRect{}
	}
	return CellRect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}
