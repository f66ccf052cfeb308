package game

import (
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// BoardSnapshot holds a board layout and its play state, one character per
// cell with rows separated by newlines.
//
//	non-mine: '#' covered, 'f' marked, 'q' question, '.' revealed, 'w' wrong flag shown
//	mine:     'O' covered, 'F' marked, 'Q' question, 'X' shown, '*' exploded
type BoardSnapshot struct {
	Seed            int64  `yaml:"seed"`
	SerializedBoard string `yaml:"board"`
}

func (snapshot *BoardSnapshot) Serialize() (string, error) {
	out, err := yaml.Marshal(snapshot)
	if err != nil {
		return "", errors.Wrap(err, "serializing snapshot")
	}
	return string(out), nil
}

func LoadSnapshot(in string) (*BoardSnapshot, error) {
	var snapshot BoardSnapshot
	if err := yaml.Unmarshal([]byte(in), &snapshot); err != nil {
		return nil, errors.Wrap(err, "parsing snapshot")
	}
	return &snapshot, nil
}

func (board *Board) Snapshot() *BoardSnapshot {
	var serialized strings.Builder

	for row := range board.cells {
		if row > 0 {
			serialized.WriteByte('\n')
		}
		for col := range board.cells[row] {
			serialized.WriteByte(board.cells[row][col].serialize())
		}
	}

	return &BoardSnapshot{
		Seed:            board.seed,
		SerializedBoard: serialized.String(),
	}
}

// CreateBoard rebuilds a board from the snapshot. With fresh set, only the
// mine layout is kept and the game starts over on it. The board's counters
// and state are derived from the cells: a board with an exploded mine is
// lost, one whose marks satisfy the win condition is won. Disclosed mines and
// wrong flags are rejected unless a mine has exploded.
func (snapshot *BoardSnapshot) CreateBoard(observer Observer, fresh bool) (*Board, error) {
	rows := strings.Split(strings.TrimRight(snapshot.SerializedBoard, "\n"), "\n")

	config := Config{
		Rows: len(rows),
		Cols: len(rows[0]),
		Seed: snapshot.Seed,
	}
	for i, row := range rows {
		if len(row) != config.Cols {
			return nil, errors.Wrapf(ErrInvalidDimensions,
				"row %d has %d cells, expected %d", i, len(row), config.Cols)
		}
		config.Mines += strings.Count(row, "O") + strings.Count(row, "F") +
			strings.Count(row, "Q") + strings.Count(row, "X") + strings.Count(row, "*")
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	board := createBoard(config, observer)

	var mines, disclosed []*Cell
	numExploded := 0
	for row := range rows {
		for col := 0; col < config.Cols; col++ {
			cell := board.CellAt(row, col)
			isMine, ok := cell.deserialize(rows[row][col])
			if !ok {
				return nil, errors.Errorf("unknown cell %q at (%d, %d)", rows[row][col], row, col)
			}
			if cell.isRevealed && !cell.isExploded && (isMine || cell.mark == Marked) {
				disclosed = append(disclosed, cell)
			}

			if fresh {
				cell.isRevealed = false
				cell.isExploded = false
				cell.mark = Unmarked
			}

			if isMine {
				mines = append(mines, cell)
			}
			if cell.isExploded {
				numExploded++
			}
			if cell.mark == Marked {
				board.markedCnt++
				if isMine {
					board.markedMines++
				}
			}
		}
	}
	if numExploded > 1 {
		return nil, errors.Errorf("%d exploded mines, at most one allowed", numExploded)
	}
	// Mines and wrong flags are only shown once a mine has gone off
	if !fresh && numExploded == 0 && len(disclosed) > 0 {
		return nil, errors.Errorf("%v disclosed, but no mine has exploded", disclosed[0])
	}

	for _, mine := range mines {
		mine.setMine()
	}

	switch {
	case numExploded > 0:
		board.state = Lost
	case board.markedCnt == board.numMines && board.markedCnt == board.markedMines:
		board.state = Won
	default:
		board.state = Ongoing
		board.active = true
	}

	for _, cell := range board.Cells() {
		board.markChanged(cell)
	}
	board.notifyMinesRemaining()

	board.log.WithField("state", board.state).Debug("board loaded from snapshot")

	return board, nil
}

func (cell *Cell) serialize() byte {
	if cell.isMine {
		switch {
		case cell.isExploded:
			return '*'
		case cell.isRevealed:
			return 'X'
		case cell.mark == Marked:
			return 'F'
		case cell.mark == MarkedQ:
			return 'Q'
		default:
			return 'O'
		}
	}

	switch {
	case cell.isRevealed && cell.mark == Marked:
		return 'w'
	case cell.isRevealed:
		return '.'
	case cell.mark == Marked:
		return 'f'
	case cell.mark == MarkedQ:
		return 'q'
	default:
		return '#'
	}
}

// deserialize sets the cell's play state; the mine flag is returned rather
// than set, so adjacency can be counted once every cell is known.
func (cell *Cell) deserialize(c byte) (isMine bool, ok bool) {
	switch c {
	case '*':
		cell.isRevealed = true
		cell.isExploded = true
		return true, true
	case 'X':
		cell.isRevealed = true
		return true, true
	case 'F':
		cell.mark = Marked
		return true, true
	case 'Q':
		cell.mark = MarkedQ
		return true, true
	case 'O':
		return true, true
	case 'w':
		cell.isRevealed = true
		cell.mark = Marked
	case '.':
		cell.isRevealed = true
	case 'f':
		cell.mark = Marked
	case 'q':
		cell.mark = MarkedQ
	case '#':
	default:
		return false, false
	}
	return false, true
}
