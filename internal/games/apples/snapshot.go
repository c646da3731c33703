package apples

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick     uint64
	Mode     Mode
	Phase    Phase
	Paused   bool
	NumEaten int
	Player   Player
	Apples   []Apple // Copy, safe to keep across frames
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	apples := make([]Apple, len(g.apples))
	copy(apples, g.apples)

	return Snapshot{
		Tick:     g.tick,
		Mode:     g.mode,
		Phase:    g.phase,
		Paused:   g.paused,
		NumEaten: g.numEaten,
		Player:   g.player,
		Apples:   apples,
	}
}
