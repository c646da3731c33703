package apples

import "github.com/vovakirdan/apples/internal/core"

// Direction represents the player's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirUp
	DirLeft
	DirDown
)

// directionVectors maps each direction to its screen-space unit vector.
// Y grows downward.
var directionVectors = [...]core.Vec2{
	DirRight: {X: 1, Y: 0},
	DirUp:    {X: 0, Y: -1},
	DirLeft:  {X: -1, Y: 0},
	DirDown:  {X: 0, Y: 1},
}

// Vector returns the unit vector for the direction.
// Unknown directions yield the zero vector.
func (d Direction) Vector() core.Vec2 {
	if d < 0 || int(d) >= len(directionVectors) {
		return core.Vec2{}
	}
	return directionVectors[d]
}

func (d Direction) String() string {
	switch d {
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirLeft:
		return "left"
	case DirDown:
		return "down"
	default:
		return "unknown"
	}
}

// Player is the square the user steers.
type Player struct {
	Position  core.Vec2
	Speed     float64 // Units per second
	Direction Direction
}

// Integrate moves the player along its direction for dt seconds.
func (p *Player) Integrate(dt float64) {
	p.Position = p.Position.Add(p.Direction.Vector().Scale(p.Speed * dt))
}

// Boost raises the player's speed. Negative amounts are ignored so speed
// never decreases within a session.
func (p *Player) Boost(amount float64) {
	if amount > 0 {
		p.Speed += amount
	}
}
