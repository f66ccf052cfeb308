package game

import (
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

type Board struct {
	rows, cols int // in number of cells
	numMines   int
	cells      [][]Cell

	state       BoardState
	active      bool
	markedCnt   int
	markedMines int

	seed int64
	rand *rand.Rand

	observer Observer
	log      *logrus.Entry
}

// NewBoard validates the config and allocates an idle board. Nothing is
// planted until Reset is called.
func NewBoard(config Config, observer Observer) (*Board, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return createBoard(config, observer), nil
}

func createBoard(config Config, observer Observer) *Board {
	if observer == nil {
		observer = Callbacks{}
	}

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	board := &Board{
		rows:     config.Rows,
		cols:     config.Cols,
		numMines: config.Mines,
		cells:    make([][]Cell, config.Rows),
		state:    Idle,
		seed:     seed,
		rand:     rand.New(rand.NewSource(seed)),
		observer: observer,
		log: Log.WithFields(logrus.Fields{
			"rows":  config.Rows,
			"cols":  config.Cols,
			"mines": config.Mines,
		}),
	}

	for row := 0; row < config.Rows; row++ {
		board.cells[row] = make([]Cell, config.Cols)

		for col := 0; col < config.Cols; col++ {
			cell := &board.cells[row][col]
			cell.board = board
			cell.row, cell.col = row, col
		}
	}

	return board
}

func (board *Board) Rows() int {
	return board.rows
}

func (board *Board) Cols() int {
	return board.cols
}

func (board *Board) NumMines() int {
	return board.numMines
}

func (board *Board) NumCells() int {
	return board.rows * board.cols
}

func (board *Board) Seed() int64 {
	return board.seed
}

func (board *Board) Rand() *rand.Rand {
	return board.rand
}

func (board *Board) State() BoardState {
	return board.state
}

// IsActive reports whether the board accepts input
func (board *Board) IsActive() bool {
	return board.active
}

// MinesRemaining is the displayed counter; it goes negative when the player
// has marked more cells than there are mines.
func (board *Board) MinesRemaining() int {
	return board.numMines - board.markedCnt
}

func (board *Board) inBounds(row, col int) bool {
	return row >= 0 && col >= 0 && row < board.rows && col < board.cols
}

func (board *Board) CellAt(row, col int) *Cell {
	if board.inBounds(row, col) {
		return &board.cells[row][col]
	}
	return nil
}

// Cells returns every cell in row-major order
func (board *Board) Cells() []*Cell {
	cells := make([]*Cell, 0, board.NumCells())
	for row := range board.cells {
		for col := range board.cells[row] {
			cells = append(cells, &board.cells[row][col])
		}
	}
	return cells
}

// Reset starts a new game on the same board: every cell is cleared and a
// fresh layout of mines is planted. Cells are redrawn once the layout is
// complete.
func (board *Board) Reset() {
	cells := board.Cells()
	for _, cell := range cells {
		cell.reset()
	}

	board.plantMines()
	for _, cell := range cells {
		board.markChanged(cell)
	}

	board.markedCnt = 0
	board.markedMines = 0
	board.notifyMinesRemaining()

	board.state = Ongoing
	board.active = true

	board.log.Debug("board reset")
}

// plantMines uses rejection sampling. It relies on Validate having left at
// least one free cell.
func (board *Board) plantMines() {
	for planted := 0; planted < board.numMines; {
		cell := board.CellAt(board.rand.Intn(board.rows), board.rand.Intn(board.cols))
		if cell.isMine {
			continue
		}

		cell.setMine()
		planted++
	}
}

// RevealAt reveals the cell at the given position, flooding outward from
// blank cells. Out-of-bounds positions and inactive boards are ignored.
func (board *Board) RevealAt(row, col int) {
	if cell := board.playableCell(row, col); cell != nil {
		cell.reveal()
	}
}

// MarkAt advances the mark on the cell at the given position
func (board *Board) MarkAt(row, col int) {
	if cell := board.playableCell(row, col); cell != nil {
		cell.toggleMark()
	}
}

func (board *Board) playableCell(row, col int) *Cell {
	if !board.active {
		return nil
	}
	return board.CellAt(row, col)
}

// ShowAll discloses the final board: mines the player missed and cells they
// flagged by mistake. It never cascades and ignores the usual reveal rules.
func (board *Board) ShowAll() {
	for _, cell := range board.Cells() {
		cell.show()
	}
}

func (board *Board) checkWon() {
	if board.markedCnt == board.numMines && board.markedCnt == board.markedMines {
		board.win()
	}
}

func (board *Board) win() {
	board.state = Won
	board.active = false

	board.log.Info("game won")
	board.observer.Won()
}

func (board *Board) lose(cell *Cell) {
	board.state = Lost
	board.active = false

	board.log.WithFields(logrus.Fields{
		"row": cell.row,
		"col": cell.col,
	}).Info("game lost")
	board.observer.Lost()
}

func (board *Board) markChanged(cell *Cell) {
	board.observer.CellChanged(cell.View())
}

func (board *Board) notifyMinesRemaining() {
	board.observer.MinesRemainingChanged(board.MinesRemaining())
}
