package catsrun

import "github.com/iamshelldy/runfromcats-backend/internal/entity"

// pursueCats - moves every cat one greedy step toward the player, in
// row-major order of the cats present when the scan starts. Each cat sees
// the board as already mutated by earlier cats this turn. Capture is checked
// after every individual move; the scan stops on the first capture.
func pursueCats(board *entity.Board) bool {
	cats := make([][2]int, 0, board.Size)
	for row := 0; row < board.Size; row++ {
		for col := 0; col < board.Size; col++ {
			if board.At(row, col).Kind == entity.CellCat {
				cats = append(cats, [2]int{row, col})
			}
		}
	}

	for _, cat := range cats {
		moveCat(board, cat[0], cat[1])
		if board.IsGameOver() {
			return true
		}
	}

	return false
}

// moveCat - one greedy pursuit step for the cat at (row, col). Candidates
// are scanned as stay, left, right, up, down; off-board and occupied cells
// are discarded (stay is always retained), and the first candidate with a
// strictly smaller Manhattan distance to the center wins.
func moveCat(board *entity.Board, row, col int) {
	center := board.Center()

	bestRow, bestCol := row, col
	bestDistance := entity.Manhattan(row, col, center, center)

	candidates := [4][2]int{
		{row, col - 1},
		{row, col + 1},
		{row - 1, col},
		{row + 1, col},
	}

	for _, pos := range candidates {
		if !board.InBounds(pos[0], pos[1]) {
			continue
		}
		if board.At(pos[0], pos[1]).Kind != entity.CellEmpty {
			continue
		}

		if distance := entity.Manhattan(pos[0], pos[1], center, center); distance < bestDistance {
			bestDistance = distance
			bestRow, bestCol = pos[0], pos[1]
		}
	}

	board.At(row, col).Kind = entity.CellEmpty
	board.At(bestRow, bestCol).Kind = entity.CellCat
}
