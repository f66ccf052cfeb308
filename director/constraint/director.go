package constraint

import (
	"fmt"
	"strings"

	"github.com/they4kman/websweep/director/random"
	"github.com/they4kman/websweep/game"
	"github.com/they4kman/websweep/util/collections"
)

// Director deduces safe cells and mines from the numbers on the board. It
// only guesses when no deduction applies, picking among the cells least
// likely to be mines.
type Director struct {
	board *game.Board
}

// Observation records that exactly numMines of cells are mines
type Observation struct {
	origin   *game.Cell
	numMines int
	cells    collections.Set[*game.Cell]
}

func (observation Observation) String() string {
	var cellsRepr strings.Builder
	for i, cell := range sortedCells(observation.cells) {
		if i > 0 {
			cellsRepr.WriteString(", ")
		}
		cellsRepr.WriteString(fmt.Sprintf("(%d, %d)", cell.Row(), cell.Col()))
	}

	var originRepr string
	if observation.origin == nil {
		originRepr = "?"
	} else {
		originRepr = fmt.Sprintf("(%d, %d)", observation.origin.Row(), observation.origin.Col())
	}

	return fmt.Sprintf("Obs[%8s, %d ε %s]", originRepr, observation.numMines, cellsRepr.String())
}

func (observation Observation) MineProbability() float32 {
	return float32(observation.numMines) / float32(len(observation.cells))
}

func (director *Director) Init(board *game.Board) {
	director.board = board
}

func (director *Director) Act() bool {
	if !director.board.IsActive() {
		return false
	}

	observations := director.observe()

	actors := []func([]*Observation) bool{
		director.actDeliberate,
		director.actSubsets,
		director.actRemaining,
		director.actLowestProbability,
	}
	for _, actor := range actors {
		if actor(observations) {
			return true
		}
	}

	randomDirector := &random.Director{}
	randomDirector.Init(director.board)
	return randomDirector.Act()
}

// observe collects one observation per revealed number with covered
// neighbours, in row-major order
func (director *Director) observe() []*Observation {
	var observations []*Observation

	for _, cell := range director.board.Cells() {
		if !cell.IsRevealed() || cell.IsMine() || cell.AdjacentMines() == 0 {
			continue
		}

		observation := &Observation{
			origin:   cell,
			numMines: cell.AdjacentMines(),
			cells:    collections.NewSet[*game.Cell](),
		}
		for _, neighbor := range cell.Neighbors() {
			if neighbor.IsRevealed() {
				continue
			}
			if neighbor.Mark() == game.Marked {
				observation.numMines--
			} else {
				observation.cells.Add(neighbor)
			}
		}

		if len(observation.cells) > 0 {
			observations = append(observations, observation)
		}
	}

	return observations
}

func (director *Director) actDeliberate(observations []*Observation) bool {
	for _, observation := range observations {
		if director.resolve(observation.cells, observation.numMines) {
			return true
		}
	}
	return false
}

// actSubsets splits observations which contain another: the cells only in
// the larger one hold the difference in mines
func (director *Director) actSubsets(observations []*Observation) bool {
	for _, observation := range observations {
		for _, other := range observations {
			if other == observation || len(other.cells) <= len(observation.cells) {
				continue
			}
			if _, isSubset := observation.cells.IntersectionEx(other.cells); !isSubset {
				continue
			}

			split := other.cells.Difference(observation.cells)
			if director.resolve(split, other.numMines-observation.numMines) {
				return true
			}
		}
	}
	return false
}

// actRemaining marks every covered cell once the count of them matches the
// mines left unmarked
func (director *Director) actRemaining([]*Observation) bool {
	unknown := collections.NewSet[*game.Cell]()
	for _, cell := range director.board.Cells() {
		if !cell.IsRevealed() && cell.Mark() != game.Marked {
			unknown.Add(cell)
		}
	}
	return director.resolve(unknown, director.board.MinesRemaining())
}

func (director *Director) actLowestProbability(observations []*Observation) bool {
	var lowest []*game.Cell
	var lowestProbability float32 = 1

	cellProbabilities := make(map[*game.Cell]float32)
	for _, observation := range observations {
		probability := observation.MineProbability()
		for cell := range observation.cells {
			if past, ok := cellProbabilities[cell]; !ok || probability < past {
				cellProbabilities[cell] = probability
			}
		}
	}

	for cell, probability := range cellProbabilities {
		switch {
		case probability >= 1:
			continue
		case probability < lowestProbability:
			lowestProbability = probability
			lowest = []*game.Cell{cell}
		case probability == lowestProbability:
			lowest = append(lowest, cell)
		}
	}
	if len(lowest) == 0 {
		return false
	}

	lowest = sortedCells(collections.NewSet(lowest...))
	director.reveal(lowest[director.board.Rand().Intn(len(lowest))])
	return true
}

// resolve acts on cells known to hold exactly numMines mines, if that
// settles all of them
func (director *Director) resolve(cells collections.Set[*game.Cell], numMines int) bool {
	if len(cells) == 0 {
		return false
	}

	switch numMines {
	case 0:
		for _, cell := range sortedCells(cells) {
			director.reveal(cell)
		}
		return true
	case len(cells):
		for _, cell := range sortedCells(cells) {
			director.flag(cell)
		}
		return true
	}
	return false
}

func (director *Director) reveal(cell *game.Cell) {
	// question marks have to be cleared before revealing
	if cell.Mark() == game.MarkedQ {
		director.board.MarkAt(cell.Row(), cell.Col())
	}
	director.board.RevealAt(cell.Row(), cell.Col())
}

func (director *Director) flag(cell *game.Cell) {
	for cell.Mark() != game.Marked && director.board.IsActive() {
		director.board.MarkAt(cell.Row(), cell.Col())
	}
}

func sortedCells(cells collections.Set[*game.Cell]) []*game.Cell {
	return cells.Sorted(func(a, b *game.Cell) bool {
		if a.Row() != b.Row() {
			return a.Row() < b.Row()
		}
		return a.Col() < b.Col()
	})
}
