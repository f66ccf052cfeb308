package game

// Observer is notified synchronously of everything a shell needs to redraw.
// Won and Lost fire at most once per game, after the board is final, so it
// is safe to call Board.ShowAll from them.
type Observer interface {
	Won()
	Lost()
	MinesRemainingChanged(count int)
	CellChanged(view CellView)
}

// Callbacks adapts plain funcs to an Observer. Nil fields are skipped.
type Callbacks struct {
	OnWon                   func()
	OnLost                  func()
	OnMinesRemainingChanged func(count int)
	OnCellChanged           func(view CellView)
}

func (callbacks Callbacks) Won() {
	if callbacks.OnWon != nil {
		callbacks.OnWon()
	}
}

func (callbacks Callbacks) Lost() {
	if callbacks.OnLost != nil {
		callbacks.OnLost()
	}
}

func (callbacks Callbacks) MinesRemainingChanged(count int) {
	if callbacks.OnMinesRemainingChanged != nil {
		callbacks.OnMinesRemainingChanged(count)
	}
}

func (callbacks Callbacks) CellChanged(view CellView) {
	if callbacks.OnCellChanged != nil {
		callbacks.OnCellChanged(view)
	}
}

// CellView is a copy of everything needed to pick a cell's icon
type CellView struct {
	Row, Col      int
	Revealed      bool
	IsMine        bool
	Exploded      bool
	Mark          MarkState
	AdjacentMines int
}

func (view CellView) State() CellState {
	if !view.Revealed {
		switch view.Mark {
		case Marked:
			return Flag
		case MarkedQ:
			return FlagQuestion
		default:
			return Unrevealed
		}
	}

	if view.IsMine {
		if view.Exploded {
			return MineLosing
		}
		return Mine
	}
	// only reachable through disclosure
	if view.Mark == Marked {
		return FlagWrong
	}
	return CellState(view.AdjacentMines)
}
