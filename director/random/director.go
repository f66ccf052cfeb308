package random

import (
	"github.com/they4kman/websweep/game"
)

// Director reveals covered cells in a random order, never marking anything
type Director struct {
	board *game.Board
	order []*game.Cell
}

func (director *Director) Init(board *game.Board) {
	director.board = board
	director.order = board.Cells()

	board.Rand().Shuffle(len(director.order), func(i, j int) {
		director.order[i], director.order[j] = director.order[j], director.order[i]
	})
}

func (director *Director) Act() bool {
	for _, cell := range director.order {
		if !cell.IsRevealed() && cell.Mark() == game.Unmarked {
			director.board.RevealAt(cell.Row(), cell.Col())
			return true
		}
	}
	return false
}
