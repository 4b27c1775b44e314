package entity

const (
	CellEmpty    = "empty"
	CellPlayer   = "player"
	CellCat      = "cat"
	CellObstacle = "obstacle"
)

// Cell is a single position on the board. Coordinates are reassigned
// wholesale when the board shifts, a Cell never outlives one turn's layout.
type Cell struct {
	Row  int    `json:"row"`
	Col  int    `json:"col"`
	Kind string `json:"kind"`
}

// Manhattan - returns the Manhattan distance between two coordinates.
func Manhattan(aRow, aCol, bRow, bCol int) int {
	return abs(aRow-bRow) + abs(aCol-bCol)
}

// Manhattan - returns the Manhattan distance from the cell to a coordinate.
func (that *Cell) Manhattan(row, col int) int {
	return Manhattan(that.Row, that.Col, row, col)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
