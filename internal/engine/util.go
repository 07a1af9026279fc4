package engine

import "github.com/lgbarn/termchess-go/internal/chess"

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

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// containsCoord reports whether c is in coords.
func containsCoord(coords []chess.Coord, c chess.Coord) bool {
	for _, x := range coords {
		if x == c {
			return true
		}
	}
	return false
}
