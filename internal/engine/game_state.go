package engine

// WinningCaptureCount is the number of captures that wins the game: every
// opponent piece.
const WinningCaptureCount = 12

// NoWinner is returned by GameWinner while nobody has won.
const NoWinner = "Game has not ended"

// Winner returns the name of the first registered player whose captured
// count has reached WinningCaptureCount.
func (g *Game) Winner() (string, bool) {
	for _, p := range g.players {
		if p.CapturedPiecesCount() == WinningCaptureCount {
			return p.Name(), true
		}
	}
	return "", false
}

// GameWinner returns the winner's name or NoWinner. The game is not ended
// automatically; callers poll this after moves.
func (g *Game) GameWinner() string {
	if name, ok := g.Winner(); ok {
		return name
	}
	return NoWinner
}
