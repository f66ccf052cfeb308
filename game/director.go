package game

// Director plays a board on the player's behalf, through RevealAt and MarkAt
// only.
type Director interface {
	/**
	 * Attach the director to a board, ready for its first Act
	 */
	Init(*Board)

	/**
	 * Perform a single step of actions. Returns false when the director
	 * found nothing to do.
	 */
	Act() bool
}

// Direct lets the director act until the game ends, it gives up, or
// maxSteps actions have been taken (maxSteps <= 0 means no limit). It
// returns the number of steps taken.
func Direct(board *Board, director Director, maxSteps int) int {
	director.Init(board)

	steps := 0
	for board.IsActive() && (maxSteps <= 0 || steps < maxSteps) {
		if !director.Act() {
			break
		}
		steps++
	}
	return steps
}
