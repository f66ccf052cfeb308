package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkCycle(t *testing.T) {
	tests := []struct {
		name     string
		row, col int
	}{
		{name: "mine", row: 0, col: 0},
		{name: "safe", row: 1, col: 1},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			board, rec := newTestBoard(t,
				"O##",
				"###",
				"##O",
			)
			cell := board.CellAt(test.row, test.col)

			board.MarkAt(test.row, test.col)
			assert.Equal(t, Marked, cell.Mark())
			assert.Equal(t, Flag, cell.State())
			assert.Equal(t, 1, board.MinesRemaining())

			board.MarkAt(test.row, test.col)
			assert.Equal(t, MarkedQ, cell.Mark())
			assert.Equal(t, FlagQuestion, cell.State())
			assert.Equal(t, 2, board.MinesRemaining())

			board.MarkAt(test.row, test.col)
			assert.Equal(t, Unmarked, cell.Mark())
			assert.Equal(t, Unrevealed, cell.State())
			assert.Equal(t, 2, board.MinesRemaining())

			// MarkedQ -> Unmarked leaves the counter alone, so isn't announced
			assert.Equal(t, []int{1, 2}, rec.remaining)
			assert.Len(t, rec.changes, 3)
			assert.Equal(t, 0, board.markedCnt)
			assert.Equal(t, 0, board.markedMines)
			assert.True(t, board.IsActive())
		})
	}
}

func TestMarkRevealedIgnored(t *testing.T) {
	board, rec := newTestBoard(t,
		"O##",
		"###",
		"##O",
	)

	board.RevealAt(1, 1)
	rec.clear()

	board.MarkAt(1, 1)

	cell := board.CellAt(1, 1)
	assert.Equal(t, Unmarked, cell.Mark())
	assert.Equal(t, Number2, cell.State())
	assert.Empty(t, rec.changes)
	assert.Empty(t, rec.remaining)
	assert.Equal(t, 0, board.markedCnt)
}

func TestOverMarkingGoesNegative(t *testing.T) {
	board, rec := newTestBoard(t,
		"O###",
	)

	board.MarkAt(0, 1)
	board.MarkAt(0, 2)
	board.MarkAt(0, 3)

	assert.Equal(t, []int{0, -1, -2}, rec.remaining)
	assert.Equal(t, -2, board.MinesRemaining())
	assert.Equal(t, 0, rec.won)

	// question marks don't count, so turning the extras into them and
	// flagging the mine wins
	board.MarkAt(0, 1)
	board.MarkAt(0, 2)
	board.MarkAt(0, 3)
	assert.Equal(t, 0, rec.won)
	board.MarkAt(0, 0)

	assert.Equal(t, 1, rec.won)
	assert.Equal(t, Won, board.State())
	assert.False(t, board.IsActive())
	assert.Equal(t, []int{0, -1, -2, -1, 0, 1, 0}, rec.remaining)
}

func TestWinRequiresExactMarks(t *testing.T) {
	board, rec := newTestBoard(t,
		"O#O",
		"###",
	)

	board.MarkAt(0, 0)
	board.MarkAt(1, 1)
	// two marks for two mines, but one is wrong
	assert.Equal(t, 0, rec.won)
	assert.True(t, board.IsActive())

	board.MarkAt(0, 2)
	// every mine is marked, plus an extra
	assert.Equal(t, 0, rec.won)

	board.MarkAt(1, 1)
	assert.Equal(t, 1, rec.won)
	assert.Equal(t, 0, rec.lost)
	assert.Equal(t, Won, board.State())
	assert.Equal(t, MarkedQ, board.CellAt(1, 1).Mark())
}

func TestRevealingEverySafeCellDoesNotWin(t *testing.T) {
	board, rec := newTestBoard(t,
		"O##",
		"###",
		"###",
	)

	for _, cell := range board.Cells() {
		if !cell.IsMine() {
			board.RevealAt(cell.Row(), cell.Col())
		}
	}

	assert.Equal(t, 8, countRevealed(board))
	assert.Equal(t, 0, rec.won)
	assert.True(t, board.IsActive())

	board.MarkAt(0, 0)
	assert.Equal(t, 1, rec.won)
}

// Win fires exactly when the marked cells are the mines, for arbitrary
// sequences of marks
func TestWinCondition(t *testing.T) {
	r := rand.New(rand.NewSource(1))

	for i := 0; i < 200; i++ {
		board, rec := newRandomBoard(t, Config{Rows: 3, Cols: 4, Mines: 3, Seed: int64(i + 1)})

		for step := 0; step < 100 && board.IsActive(); step++ {
			board.MarkAt(r.Intn(board.Rows()), r.Intn(board.Cols()))

			marked, markedMines := 0, 0
			for _, cell := range board.Cells() {
				if cell.Mark() == Marked {
					marked++
					if cell.IsMine() {
						markedMines++
					}
				}
			}
			require.Equal(t, marked, board.markedCnt)
			require.Equal(t, markedMines, board.markedMines)
			require.Equal(t, board.NumMines()-marked, board.MinesRemaining())

			shouldWin := marked == board.NumMines() && marked == markedMines
			require.Equal(t, shouldWin, board.State() == Won, "game %d step %d", i, step)
			require.Equal(t, shouldWin, rec.won == 1)
		}
		require.LessOrEqual(t, rec.won, 1)
	}
}

func TestShowAllAfterLoss(t *testing.T) {
	board, rec := newTestBoard(t,
		"O##",
		"###",
		"##O",
	)

	board.MarkAt(0, 0)
	board.MarkAt(1, 1)
	board.RevealAt(0, 2)
	board.RevealAt(2, 0)
	board.RevealAt(2, 2)
	require.Equal(t, 1, rec.lost)
	require.Equal(t, 0, rec.won)

	rec.clear()
	board.ShowAll()

	// only the wrong flag changes; the losing mine was already shown
	assert.Equal(t, [][2]int{{1, 1}}, rec.changedCoords())

	expected := [][]CellState{
		{Flag, Number1, Empty},
		{Number1, FlagWrong, Number1},
		{Empty, Number1, MineLosing},
	}
	for row := range expected {
		for col, state := range expected[row] {
			assert.Equal(t, state, board.CellAt(row, col).State(), "(%d, %d)", row, col)
		}
	}

	assert.False(t, board.CellAt(0, 0).IsRevealed())
	assert.True(t, board.CellAt(1, 1).IsRevealed())
	assert.Equal(t, 2, board.CellAt(1, 1).AdjacentMines())
	assert.True(t, board.CellAt(2, 2).IsExploded())
}

func TestShowAllUncoversMissedMines(t *testing.T) {
	board, _ := newTestBoard(t,
		"OO#",
		"##O",
	)

	board.MarkAt(0, 1)
	board.MarkAt(0, 1)
	board.MarkAt(1, 0)
	board.RevealAt(1, 2)
	require.Equal(t, Lost, board.State())

	board.ShowAll()

	assert.Equal(t, Mine, board.CellAt(0, 0).State())
	// a question mark doesn't protect a mine from disclosure
	assert.Equal(t, Mine, board.CellAt(0, 1).State())
	assert.Equal(t, FlagWrong, board.CellAt(1, 0).State())
	assert.Equal(t, MineLosing, board.CellAt(1, 2).State())
	assert.Equal(t, Unrevealed, board.CellAt(0, 2).State())
	assert.Equal(t, Unrevealed, board.CellAt(1, 1).State())
}

func TestShowAllFromWonCallback(t *testing.T) {
	var board *Board
	observer := Callbacks{
		OnWon: func() {
			board.ShowAll()
		},
	}

	snapshot := &BoardSnapshot{SerializedBoard: layout("O#", "#O")}
	board, err := snapshot.CreateBoard(observer, false)
	require.NoError(t, err)

	board.MarkAt(0, 0)
	board.MarkAt(1, 1)

	assert.Equal(t, Won, board.State())
	for _, cell := range board.Cells() {
		assert.False(t, cell.IsRevealed(), "%v", cell)
	}
}

func TestCellViewState(t *testing.T) {
	tests := []struct {
		name     string
		view     CellView
		expected CellState
	}{
		{"covered", CellView{}, Unrevealed},
		{"covered mine", CellView{IsMine: true}, Unrevealed},
		{"flag", CellView{Mark: Marked}, Flag},
		{"question", CellView{Mark: MarkedQ, IsMine: true}, FlagQuestion},
		{"empty", CellView{Revealed: true}, Empty},
		{"number", CellView{Revealed: true, AdjacentMines: 3}, Number3},
		{"eight", CellView{Revealed: true, AdjacentMines: 8}, Number8},
		{"wrong flag", CellView{Revealed: true, Mark: Marked, AdjacentMines: 2}, FlagWrong},
		{"missed mine", CellView{Revealed: true, IsMine: true}, Mine},
		{"missed question mine", CellView{Revealed: true, IsMine: true, Mark: MarkedQ}, Mine},
		{"exploded", CellView{Revealed: true, IsMine: true, Exploded: true}, MineLosing},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, test.view.State())
		})
	}
}
