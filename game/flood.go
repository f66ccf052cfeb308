package game

import "github.com/gammazero/deque"

// flood reveals start and, while it keeps uncovering blank cells, everything
// reachable through them. Cells are visited in the same depth-first order as
// a recursive reveal of each neighbour in turn: neighbours are pushed in
// reverse and the reveal guards are rechecked when a cell is popped.
func (board *Board) flood(start *Cell) {
	var stack deque.Deque
	stack.PushBack(start)

	for stack.Len() > 0 {
		cell := stack.PopBack().(*Cell)
		if !cell.canReveal() {
			continue
		}

		if !cell.setRevealed() {
			// Stepped on a mine; the game is over
			return
		}

		if cell.adjacentMines > 0 {
			continue
		}

		neighbors := cell.Neighbors()
		for i := len(neighbors) - 1; i >= 0; i-- {
			if neighbors[i].canReveal() {
				stack.PushBack(neighbors[i])
			}
		}
	}
}
