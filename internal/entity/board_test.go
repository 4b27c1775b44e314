package entity

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoard(t *testing.T) {
	t.Run("Creates empty board with player at center", func(t *testing.T) {
		// Given: the default odd size
		board, err := NewBoard(5)
		require.NoError(t, err)

		// Then: the player sits at (2,2) and every other cell is empty
		assert.Equal(t, 2, board.Center())
		assert.Equal(t, CellPlayer, board.At(2, 2).Kind)
		assert.Equal(t, 1, board.CountKind(CellPlayer))
		assert.Equal(t, 24, board.CountKind(CellEmpty))
	})

	t.Run("Cells carry their own coordinates", func(t *testing.T) {
		board, err := NewBoard(5)
		require.NoError(t, err)

		for row := 0; row < board.Size; row++ {
			for col := 0; col < board.Size; col++ {
				assert.Equal(t, row, board.At(row, col).Row)
				assert.Equal(t, col, board.At(row, col).Col)
			}
		}
	})

	t.Run("Rejects even size", func(t *testing.T) {
		_, err := NewBoard(4)

		require.ErrorIs(t, err, ErrInvalidBoardSize)
	})

	t.Run("Rejects size below 3", func(t *testing.T) {
		_, err := NewBoard(1)

		require.ErrorIs(t, err, ErrInvalidBoardSize)
	})
}

func TestBoard_SpawnCats(t *testing.T) {
	t.Run("Spawns cats on edge cells away from the player", func(t *testing.T) {
		// Given: a fresh board and a seeded generator
		board, err := NewBoard(5)
		require.NoError(t, err)
		rng := rand.New(rand.NewSource(1))

		// When: spawning one cat
		board.SpawnCats(rng, 1)

		// Then: exactly one cat, on an edge, at Manhattan distance >= 2
		require.Equal(t, 1, board.CountKind(CellCat))

		for row := 0; row < board.Size; row++ {
			for col := 0; col < board.Size; col++ {
				cell := board.At(row, col)
				if cell.Kind != CellCat {
					continue
				}

				onEdge := row == 0 || row == board.Size-1 || col == 0 || col == board.Size-1
				assert.True(t, onEdge, "cat at (%d,%d) is not on an edge", row, col)
				assert.GreaterOrEqual(t, cell.Manhattan(board.Center(), board.Center()), 2)
			}
		}
	})

	t.Run("Retries occupied edge cells", func(t *testing.T) {
		// Given: a board whose top and bottom edges are fully blocked
		board, err := NewBoard(5)
		require.NoError(t, err)
		for col := 0; col < board.Size; col++ {
			board.At(0, col).Kind = CellObstacle
			board.At(board.Size-1, col).Kind = CellObstacle
		}
		rng := rand.New(rand.NewSource(7))

		// When: spawning two cats
		board.SpawnCats(rng, 2)

		// Then: both cats landed on the side edges
		require.Equal(t, 2, board.CountKind(CellCat))
		for row := 0; row < board.Size; row++ {
			for col := 0; col < board.Size; col++ {
				if board.At(row, col).Kind == CellCat {
					assert.True(t, col == 0 || col == board.Size-1)
				}
			}
		}
	})
}

func TestBoard_SpawnObstacles(t *testing.T) {
	// Given: a fresh board and a seeded generator
	board, err := NewBoard(5)
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(2))

	// When: spawning three obstacles
	board.SpawnObstacles(rng, 3)

	// Then: exactly three obstacles; the player cell is untouched
	assert.Equal(t, 3, board.CountKind(CellObstacle))
	assert.Equal(t, CellPlayer, board.At(2, 2).Kind)
	assert.Equal(t, 1, board.CountKind(CellPlayer))
}

func TestBoard_IsDirectionClear(t *testing.T) {
	t.Run("Clear when the adjacent cell is empty", func(t *testing.T) {
		board, err := NewBoard(5)
		require.NoError(t, err)

		assert.True(t, board.IsDirectionClear(DirectionUp))
		assert.True(t, board.IsDirectionClear(DirectionDown))
		assert.True(t, board.IsDirectionClear(DirectionLeft))
		assert.True(t, board.IsDirectionClear(DirectionRight))
	})

	t.Run("Blocked by an adjacent obstacle", func(t *testing.T) {
		// Given: an obstacle directly left of the player
		board, err := NewBoard(5)
		require.NoError(t, err)
		board.At(2, 1).Kind = CellObstacle

		assert.False(t, board.IsDirectionClear(DirectionLeft))
		assert.True(t, board.IsDirectionClear(DirectionRight))
	})

	t.Run("Repeated calls return the same result", func(t *testing.T) {
		// Given: an obstacle above the player
		board, err := NewBoard(5)
		require.NoError(t, err)
		board.At(1, 2).Kind = CellObstacle

		// Then: the query has no side effects
		for i := 0; i < 3; i++ {
			assert.False(t, board.IsDirectionClear(DirectionUp))
			assert.True(t, board.IsDirectionClear(DirectionDown))
		}
	})
}

func TestBoard_IsGameOver(t *testing.T) {
	t.Run("True when a cat is orthogonally adjacent", func(t *testing.T) {
		board, err := NewBoard(5)
		require.NoError(t, err)
		board.At(1, 2).Kind = CellCat

		assert.True(t, board.IsGameOver())
	})

	t.Run("False when the cat is two steps away", func(t *testing.T) {
		board, err := NewBoard(5)
		require.NoError(t, err)
		board.At(0, 2).Kind = CellCat

		assert.False(t, board.IsGameOver())
	})

	t.Run("False for a diagonal cat", func(t *testing.T) {
		board, err := NewBoard(5)
		require.NoError(t, err)
		board.At(1, 1).Kind = CellCat

		assert.False(t, board.IsGameOver())
	})

	t.Run("False with no cats at all", func(t *testing.T) {
		board, err := NewBoard(5)
		require.NoError(t, err)

		assert.False(t, board.IsGameOver())
	})
}

func TestBoard_ShiftWorld(t *testing.T) {
	t.Run("Horizontal shift translates content and renumbers", func(t *testing.T) {
		// Given: an obstacle at (0,1) and no edge sprinkling
		board, err := NewBoard(5)
		require.NoError(t, err)
		board.At(0, 1).Kind = CellObstacle
		rng := rand.New(rand.NewSource(3))

		// When: the world shifts right (player ran left)
		board.ShiftWorld(rng, DirectionRight, 0)

		// Then: the obstacle moved one column right; player stays pinned
		assert.Equal(t, CellObstacle, board.At(0, 2).Kind)
		assert.Equal(t, CellEmpty, board.At(0, 1).Kind)
		assert.Equal(t, CellPlayer, board.At(2, 2).Kind)
		assert.Equal(t, 0, board.At(0, 0).Row)
		assert.Equal(t, 0, board.At(0, 0).Col)
	})

	t.Run("Horizontal shift sprinkles obstacles at the leading edge", func(t *testing.T) {
		// Given: an empty board
		board, err := NewBoard(5)
		require.NoError(t, err)
		rng := rand.New(rand.NewSource(4))

		// When: the world shifts left with two edge obstacle drops
		board.ShiftWorld(rng, DirectionLeft, 2)

		// Then: the fresh rightmost column holds one or two obstacles
		// (the two picks may land on the same row)
		count := 0
		for row := 0; row < board.Size; row++ {
			if board.At(row, board.Size-1).Kind == CellObstacle {
				count++
			}
		}
		assert.GreaterOrEqual(t, count, 1)
		assert.LessOrEqual(t, count, 2)
	})

	t.Run("Vertical shift regenerates the vacated row", func(t *testing.T) {
		// Given: an obstacle at (1,0)
		board, err := NewBoard(5)
		require.NoError(t, err)
		board.At(1, 0).Kind = CellObstacle
		rng := rand.New(rand.NewSource(5))

		// When: the world shifts up (player ran down)
		board.ShiftWorld(rng, DirectionUp, 0)

		// Then: the obstacle moved up; the bottom row was regenerated with
		// size/3 obstacle picks
		assert.Equal(t, CellObstacle, board.At(0, 0).Kind)
		assert.Equal(t, CellPlayer, board.At(2, 2).Kind)

		bottomObstacles := 0
		for col := 0; col < board.Size; col++ {
			require.Equal(t, board.Size-1, board.At(board.Size-1, col).Row)
			if board.At(board.Size-1, col).Kind == CellObstacle {
				bottomObstacles++
			}
		}
		assert.Equal(t, 1, bottomObstacles)
	})

	t.Run("Shifting up then down does not restore the prior layout", func(t *testing.T) {
		// Given: two obstacles in the top row
		board, err := NewBoard(5)
		require.NoError(t, err)
		board.At(0, 0).Kind = CellObstacle
		board.At(0, 1).Kind = CellObstacle
		rng := rand.New(rand.NewSource(6))

		// When: the world shifts up and back down
		board.ShiftWorld(rng, DirectionUp, 0)
		board.ShiftWorld(rng, DirectionDown, 0)

		// Then: the top row was regenerated with a single obstacle pick, so
		// the original two-obstacle layout is gone. Shifting is lossy at the
		// vacated edge, not round-trippable.
		topObstacles := 0
		for col := 0; col < board.Size; col++ {
			if board.At(0, col).Kind == CellObstacle {
				topObstacles++
			}
		}
		assert.Equal(t, 1, topObstacles)
	})

	t.Run("Shift keeps exactly one player cell", func(t *testing.T) {
		board, err := NewBoard(5)
		require.NoError(t, err)
		rng := rand.New(rand.NewSource(8))

		for _, dir := range []Direction{DirectionUp, DirectionDown, DirectionLeft, DirectionRight} {
			board.ShiftWorld(rng, dir, 2)

			assert.Equal(t, 1, board.CountKind(CellPlayer))
			assert.Equal(t, CellPlayer, board.At(2, 2).Kind)
		}
	})
}

func TestBoard_Snapshot(t *testing.T) {
	// Given: a board with one of each kind
	board, err := NewBoard(5)
	require.NoError(t, err)
	board.At(0, 2).Kind = CellCat
	board.At(4, 4).Kind = CellObstacle

	// When: taking a snapshot
	snapshot := board.Snapshot()

	// Then: the snapshot mirrors the grid row-major
	require.Len(t, snapshot, 5)
	assert.Equal(t, CellCat, snapshot[0][2])
	assert.Equal(t, CellPlayer, snapshot[2][2])
	assert.Equal(t, CellObstacle, snapshot[4][4])
	assert.Equal(t, CellEmpty, snapshot[1][1])
}

func TestManhattan(t *testing.T) {
	assert.Equal(t, 0, Manhattan(2, 2, 2, 2))
	assert.Equal(t, 2, Manhattan(0, 2, 2, 2))
	assert.Equal(t, 4, Manhattan(0, 0, 2, 2))

	cell := &Cell{Row: 0, Col: 2}
	assert.Equal(t, 2, cell.Manhattan(2, 2))
}
