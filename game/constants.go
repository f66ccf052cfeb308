package game

type CellState int
type BoardState int
type MarkState int

const (
	Unrevealed CellState = iota - 1
	Empty
	Number1
	Number2
	Number3
	Number4
	Number5
	Number6
	Number7
	Number8
	Flag
	FlagQuestion
	FlagWrong
	Mine
	MineLosing
)

var CellStates = []CellState{
	Unrevealed,
	Empty,
	Number1,
	Number2,
	Number3,
	Number4,
	Number5,
	Number6,
	Number7,
	Number8,
	Flag,
	FlagQuestion,
	FlagWrong,
	Mine,
	MineLosing,
}

var cellStateNames = map[CellState]string{
	Unrevealed:   "unrevealed",
	Empty:        "empty",
	Number1:      "1",
	Number2:      "2",
	Number3:      "3",
	Number4:      "4",
	Number5:      "5",
	Number6:      "6",
	Number7:      "7",
	Number8:      "8",
	Flag:         "flag",
	FlagQuestion: "flag-question",
	FlagWrong:    "flag-wrong",
	Mine:         "mine",
	MineLosing:   "mine-losing",
}

func (state CellState) String() string {
	if name, ok := cellStateNames[state]; ok {
		return name
	}
	return "invalid"
}

// Mark states cycle Unmarked -> Marked -> MarkedQ -> Unmarked
const (
	Unmarked MarkState = iota
	Marked
	MarkedQ

	numMarkStates = 3
)

func (mark MarkState) next() MarkState {
	return (mark + 1) % numMarkStates
}

func (mark MarkState) String() string {
	switch mark {
	case Unmarked:
		return "UNMARKED"
	case Marked:
		return "MARKED"
	case MarkedQ:
		return "MARKEDQ"
	default:
		return "invalid"
	}
}

const (
	Idle BoardState = iota
	Ongoing
	Won
	Lost
)

func (state BoardState) String() string {
	switch state {
	case Idle:
		return "idle"
	case Ongoing:
		return "ongoing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "invalid"
	}
}
