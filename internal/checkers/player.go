package checkers

// Player is a participant with a name, a piece colour and the counters the
// engine maintains during play. It performs no validation of its own.
type Player struct {
	name            string
	colour          Colour
	kingCount       int
	tripleKingCount int
	capturedCount   int
}

// NewPlayer creates a player with all counters at zero.
func NewPlayer(name string, colour Colour) *Player {
	return &Player{name: name, colour: colour}
}

// Name returns the player's name.
func (p *Player) Name() string { return p.name }

// Colour returns the colour of the player's pieces.
func (p *Player) Colour() Colour { return p.colour }

// KingCount returns the number of kings the player owns.
func (p *Player) KingCount() int { return p.kingCount }

// IncrementKingCount adds one king.
func (p *Player) IncrementKingCount() { p.kingCount++ }

// DecrementKingCount removes one king.
func (p *Player) DecrementKingCount() { p.kingCount-- }

// TripleKingCount returns the number of triple kings the player owns.
func (p *Player) TripleKingCount() int { return p.tripleKingCount }

// IncrementTripleKingCount adds one triple king.
func (p *Player) IncrementTripleKingCount() { p.tripleKingCount++ }

// DecrementTripleKingCount removes one triple king.
func (p *Player) DecrementTripleKingCount() { p.tripleKingCount-- }

// CapturedPiecesCount returns the number of opponent pieces captured so far.
func (p *Player) CapturedPiecesCount() int { return p.capturedCount }

// IncrementCapturedPiecesCount adds n captured pieces. A single triple king
// jump can capture more than one piece.
func (p *Player) IncrementCapturedPiecesCount(n int) { p.capturedCount += n }

// SetPromotionCounts overwrites the king and triple king counters. It is
// used when a game loads a position that already contains promoted pieces.
func (p *Player) SetPromotionCounts(kings, tripleKings int) {
	p.kingCount = kings
	p.tripleKingCount = tripleKings
}
