package game

import (
	"fmt"
)

type Cell struct {
	board *Board

	row, col      int
	adjacentMines int

	isMine, isRevealed, isExploded bool
	mark                           MarkState
}

func (cell *Cell) String() string {
	return fmt.Sprintf("Cell(%v, %v)", cell.row, cell.col)
}

func (cell *Cell) Row() int {
	return cell.row
}

func (cell *Cell) Col() int {
	return cell.col
}

func (cell *Cell) IsMine() bool {
	return cell.isMine
}

func (cell *Cell) IsRevealed() bool {
	return cell.isRevealed
}

func (cell *Cell) IsExploded() bool {
	return cell.isExploded
}

func (cell *Cell) Mark() MarkState {
	return cell.mark
}

// AdjacentMines is only meaningful for cells which are not mines themselves
func (cell *Cell) AdjacentMines() int {
	return cell.adjacentMines
}

func (cell *Cell) View() CellView {
	return CellView{
		Row:           cell.row,
		Col:           cell.col,
		Revealed:      cell.isRevealed,
		IsMine:        cell.isMine,
		Exploded:      cell.isExploded,
		Mark:          cell.mark,
		AdjacentMines: cell.adjacentMines,
	}
}

func (cell *Cell) State() CellState {
	return cell.View().State()
}

// Neighbors returns the in-bounds cells surrounding this one, row by row
func (cell *Cell) Neighbors() []*Cell {
	neighbors := make([]*Cell, 0, 8)
	cell.forEachNeighbor(func(neighbor *Cell) {
		neighbors = append(neighbors, neighbor)
	})
	return neighbors
}

func (cell *Cell) forEachNeighbor(visit func(*Cell)) {
	board := cell.board

	for row := cell.row - 1; row <= cell.row+1; row++ {
		for col := cell.col - 1; col <= cell.col+1; col++ {
			if row == cell.row && col == cell.col {
				continue
			}
			if neighbor := board.CellAt(row, col); neighbor != nil {
				visit(neighbor)
			}
		}
	}
}

// canReveal reports whether a reveal would do anything. Marked cells have to
// be unmarked before they can be revealed.
func (cell *Cell) canReveal() bool {
	return !cell.isRevealed && cell.mark == Unmarked
}

// setRevealed reveals the cell alone, with no flood. It returns false for a
// mine, after the board has been lost.
func (cell *Cell) setRevealed() bool {
	cell.isRevealed = true

	if cell.isMine {
		cell.isExploded = true
		cell.board.markChanged(cell)
		cell.board.lose(cell)
		return false
	}

	cell.board.markChanged(cell)
	return true
}

func (cell *Cell) reveal() {
	if cell.canReveal() {
		cell.board.flood(cell)
	}
}

func (cell *Cell) toggleMark() {
	if cell.isRevealed {
		return
	}

	delta := 0
	switch cell.mark {
	case Unmarked:
		delta = 1
	case Marked:
		delta = -1
	}

	board := cell.board
	board.markedCnt += delta
	if cell.isMine {
		board.markedMines += delta
	}
	if delta != 0 {
		board.notifyMinesRemaining()
	}

	cell.mark = cell.mark.next()
	board.markChanged(cell)

	board.checkWon()
}

// show is the end-of-game disclosure: missed mines and wrong flags are
// uncovered, correct flags stay put.
func (cell *Cell) show() {
	if cell.isRevealed {
		return
	}

	if cell.isMine {
		if cell.mark != Marked {
			cell.isRevealed = true
			cell.board.markChanged(cell)
		}
	} else if cell.mark == Marked {
		cell.isRevealed = true
		cell.board.markChanged(cell)
	}
}

func (cell *Cell) reset() {
	cell.isMine = false
	cell.isRevealed = false
	cell.isExploded = false
	cell.mark = Unmarked
	cell.adjacentMines = 0
}

func (cell *Cell) setMine() {
	cell.isMine = true

	cell.forEachNeighbor(func(neighbor *Cell) {
		if !neighbor.isMine {
			neighbor.adjacentMines++
		}
	})
}
