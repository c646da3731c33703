package core

// ShapeKind selects the primitive a frontend draws for a shape.
type ShapeKind int

const (
	ShapeSquare ShapeKind = iota // Axis-aligned filled square
	ShapeCircle                  // Filled circle
)

// Shape is one drawable primitive in world units, centered on Center.
// Size is the side length of a square or the diameter of a circle.
type Shape struct {
	Kind   ShapeKind
	Center Vec2
	Size   float64
	Color  Color
}

// Scene is the per-frame hand-off from a game to its renderer.
// Shapes are drawn in order, so later shapes cover earlier ones.
type Scene struct {
	Width  float64
	Height float64
	Shapes []Shape
	Banner string // Optional centered message, empty for none
}

// Glyphs used when a scene is rasterized onto a character screen.
const (
	SquareGlyph = '█'
	CircleGlyph = '●'
)

// BannerColor is the color of scene banners on a character screen.
const BannerColor = ColorYellow

// DrawScene rasterizes a world-space scene onto the cell grid, scaling the
// world to fill the whole screen. Every shape covers at least one cell.
func DrawScene(dst *Screen, scene Scene) {
	if dst.Width() == 0 || dst.Height() == 0 || scene.Width <= 0 || scene.Height <= 0 {
		return
	}

	sx := float64(dst.Width()) / scene.Width
	sy := float64(dst.Height()) / scene.Height

	for _, sh := range scene.Shapes {
		glyph := SquareGlyph
		if sh.Kind == ShapeCircle {
			glyph = CircleGlyph
		}
		cells := CellsCovering(BoxAround(sh.Center, sh.Size).ScaleXY(sx, sy))
		dst.FillRect(cells, glyph, sh.Color)
	}

	if scene.Banner != "" {
		dst.DrawTextCentered(dst.Height()/2, scene.Banner, BannerColor)
	}
}
