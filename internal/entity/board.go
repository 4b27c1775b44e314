package entity

import (
	"errors"
	"fmt"
	"math/rand"
)

const DefaultBoardSize = 5

// Minimum Manhattan distance between a newly spawned cat and the player.
const minCatSpawnDistance = 2

var ErrInvalidBoardSize = errors.New("board size must be odd and at least 3")

// Board is an N x N grid of cells with the player pinned at the center.
// The board owns all spawning, shifting and query logic; callers never hold
// cell references across turns. Methods taking *rand.Rand leave seeding to
// the caller so tests can make placement deterministic.
type Board struct {
	Size  int      `json:"size"`
	Cells [][]Cell `json:"cells"`
}

// NewBoard - creates an empty board of the given odd size with the player
// at the center. Spawning the initial cats and obstacles is a separate step.
func NewBoard(size int) (*Board, error) {
	if size < 3 || size%2 == 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBoardSize, size)
	}

	cells := make([][]Cell, size)
	for row := range cells {
		cells[row] = make([]Cell, size)
		for col := range cells[row] {
			cells[row][col] = Cell{Row: row, Col: col, Kind: CellEmpty}
		}
	}

	board := &Board{Size: size, Cells: cells}
	center := board.Center()
	board.Cells[center][center].Kind = CellPlayer

	return board, nil
}

// Center - the fixed player coordinate on both axes.
func (that *Board) Center() int {
	return (that.Size - 1) / 2
}

func (that *Board) InBounds(row, col int) bool {
	return row >= 0 && row < that.Size && col >= 0 && col < that.Size
}

func (that *Board) At(row, col int) *Cell {
	return &that.Cells[row][col]
}

// IsDirectionClear - reports whether the single cell adjacent to the center
// in the given direction is empty. This is the sole movement-legality check.
func (that *Board) IsDirectionClear(dir Direction) bool {
	center := that.Center()
	dRow, dCol := dir.Delta()

	return that.Cells[center+dRow][center+dCol].Kind == CellEmpty
}

// IsGameOver - true iff a cat occupies one of the four cells orthogonally
// adjacent to the player. Pure query, no side effects.
func (that *Board) IsGameOver() bool {
	center := that.Center()
	neighbors := [4][2]int{
		{center, center - 1},
		{center, center + 1},
		{center - 1, center},
		{center + 1, center},
	}

	for _, pos := range neighbors {
		if that.Cells[pos[0]][pos[1]].Kind == CellCat {
			return true
		}
	}

	return false
}

// ShiftWorld - translates every non-player cell one step in dir and
// regenerates the vacated edge. Callers pass the opposite of the player's
// travel direction. Horizontal shifts sprinkle extra obstacles at the new
// edge column; vertical shifts regenerate the vacated row entirely.
func (that *Board) ShiftWorld(rng *rand.Rand, dir Direction, edgeObstacles int) {
	center := that.Center()
	// The center is guaranteed clear of shifted-in content by the clearance
	// check, so the player can be lifted off and re-pinned afterwards.
	that.Cells[center][center].Kind = CellEmpty

	switch dir {
	case DirectionLeft:
		for row := 0; row < that.Size; row++ {
			shifted := append([]Cell{}, that.Cells[row][1:]...)
			shifted = append(shifted, Cell{Row: row, Col: that.Size - 1, Kind: CellEmpty})
			that.Cells[row] = shifted
		}
		for i := 0; i < edgeObstacles; i++ {
			that.Cells[rng.Intn(that.Size)][that.Size-1].Kind = CellObstacle
		}
	case DirectionRight:
		for row := 0; row < that.Size; row++ {
			shifted := make([]Cell, 0, that.Size)
			shifted = append(shifted, Cell{Row: row, Col: 0, Kind: CellEmpty})
			shifted = append(shifted, that.Cells[row][:that.Size-1]...)
			that.Cells[row] = shifted
		}
		for i := 0; i < edgeObstacles; i++ {
			that.Cells[rng.Intn(that.Size)][0].Kind = CellObstacle
		}
	case DirectionUp:
		for row := 0; row < that.Size-1; row++ {
			that.Cells[row] = that.Cells[row+1]
		}
		that.Cells[that.Size-1] = that.generateRow(rng, that.Size-1)
	case DirectionDown:
		for row := that.Size - 1; row > 0; row-- {
			that.Cells[row] = that.Cells[row-1]
		}
		that.Cells[0] = that.generateRow(rng, 0)
	}

	that.renumber()
	that.Cells[center][center].Kind = CellPlayer
}

// generateRow - a fresh row of empty cells with size/3 obstacle picks.
// Picks are with replacement, duplicates collapse into a single obstacle.
func (that *Board) generateRow(rng *rand.Rand, index int) []Cell {
	row := make([]Cell, that.Size)
	for col := range row {
		row[col] = Cell{Row: index, Col: col, Kind: CellEmpty}
	}

	for i := 0; i < that.Size/3; i++ {
		row[rng.Intn(that.Size)].Kind = CellObstacle
	}

	return row
}

// SpawnCats - places count cats on random edge cells, rejecting occupied
// cells and cells closer than two steps to the player. Retries until done,
// a non-degenerate board always has room.
func (that *Board) SpawnCats(rng *rand.Rand, count int) {
	center := that.Center()

	for spawned := 0; spawned < count; {
		index := rng.Intn(that.Size)
		edges := [4][2]int{
			{0, index},
			{that.Size - 1, index},
			{index, 0},
			{index, that.Size - 1},
		}
		pos := edges[rng.Intn(len(edges))]

		cell := that.At(pos[0], pos[1])
		if cell.Kind != CellEmpty {
			continue
		}
		if cell.Manhattan(center, center) < minCatSpawnDistance {
			continue
		}

		cell.Kind = CellCat
		spawned++
	}
}

// SpawnObstacles - places count obstacles on random empty cells anywhere on
// the board.
func (that *Board) SpawnObstacles(rng *rand.Rand, count int) {
	for spawned := 0; spawned < count; {
		cell := that.At(rng.Intn(that.Size), rng.Intn(that.Size))
		if cell.Kind != CellEmpty {
			continue
		}

		cell.Kind = CellObstacle
		spawned++
	}
}

// CountKind - number of cells currently holding the given kind.
func (that *Board) CountKind(kind string) int {
	count := 0
	for row := range that.Cells {
		for col := range that.Cells[row] {
			if that.Cells[row][col].Kind == kind {
				count++
			}
		}
	}

	return count
}

// Snapshot - a row-major copy of the cell kinds for the caller to format
// into any presentation.
func (that *Board) Snapshot() [][]string {
	snapshot := make([][]string, that.Size)
	for row := range that.Cells {
		snapshot[row] = make([]string, that.Size)
		for col := range that.Cells[row] {
			snapshot[row][col] = that.Cells[row][col].Kind
		}
	}

	return snapshot
}

func (that *Board) renumber() {
	for row := range that.Cells {
		for col := range that.Cells[row] {
			that.Cells[row][col].Row = row
			that.Cells[row][col].Col = col
		}
	}
}
