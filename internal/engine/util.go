package engine

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// sign returns the sign of x: -1, 0, or 1.
func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}

// diagonalDirections lists the four diagonal rays as {dRow, dCol}.
var diagonalDirections = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
