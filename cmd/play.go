package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/they4kman/websweep/director/constraint"
	"github.com/they4kman/websweep/director/random"
	"github.com/they4kman/websweep/game"
	"github.com/they4kman/websweep/render"
)

var (
	directorName string
	snapshotPath string
	loadFresh    bool
	maxSteps     int
	snapshotsDir string
)

var directors = map[string]func() game.Director{
	"random":     func() game.Director { return &random.Director{} },
	"constraint": func() game.Director { return &constraint.Director{} },
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game in the terminal",
	Long: `Play a game in the terminal. Commands, one per line:

	r ROW COL   reveal a cell
	m ROW COL   cycle a cell's mark (flag, question, none)
	n           start a new game
	s FILE      save a snapshot of the board
	q           quit
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sh := &shell{out: cmd.OutOrStdout()}

		if err := sh.load(); err != nil {
			return err
		}

		if directorName != "" {
			newDirector, ok := directors[directorName]
			if !ok {
				return errors.Errorf("unknown director %q", directorName)
			}
			return sh.direct(newDirector())
		}

		return sh.run(cmd.InOrStdin())
	},
}

// shell is the terminal collaborator of a board: it turns typed commands
// into board operations and redraws whenever a cell changes
type shell struct {
	board *game.Board
	out   io.Writer

	minesRemaining int
	dirty          bool
	message        string
}

func (sh *shell) Won() {
	sh.message = "You win!"
	sh.endGame()
}

func (sh *shell) Lost() {
	sh.message = "Boom. You lose."
	sh.endGame()
}

func (sh *shell) endGame() {
	sh.board.ShowAll()

	if snapshotsDir == "" {
		return
	}
	if err := os.MkdirAll(snapshotsDir, 0777); err != nil {
		sh.message += "\n" + err.Error()
		return
	}

	path := filepath.Join(snapshotsDir, replayFilename(sh.board, time.Now()))
	if err := saveSnapshot(sh.board, path); err != nil {
		sh.message += "\n" + err.Error()
	}
}

func (sh *shell) MinesRemainingChanged(count int) {
	sh.minesRemaining = count
	sh.dirty = true
}

func (sh *shell) CellChanged(game.CellView) {
	sh.dirty = true
}

func (sh *shell) load() error {
	if snapshotPath == "" {
		board, err := game.NewBoard(gameConfig, sh)
		if err != nil {
			return err
		}
		sh.board = board
		board.Reset()
		return nil
	}

	in, err := os.ReadFile(snapshotPath)
	if err != nil {
		return errors.Wrap(err, "reading snapshot")
	}
	snapshot, err := game.LoadSnapshot(string(in))
	if err != nil {
		return err
	}

	board, err := snapshot.CreateBoard(sh, loadFresh)
	if err != nil {
		return err
	}
	sh.board = board
	return nil
}

func (sh *shell) direct(director game.Director) error {
	steps := game.Direct(sh.board, director, maxSteps)
	if sh.board.IsActive() {
		sh.message = fmt.Sprintf("Director stopped after %d steps", steps)
	}
	sh.draw()
	return nil
}

func (sh *shell) run(in io.Reader) error {
	scanner := bufio.NewScanner(in)

	sh.draw()
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "q", "quit":
			return nil
		case "n", "new":
			sh.message = ""
			sh.board.Reset()
		case "r", "reveal", "m", "mark":
			row, col, err := parseCoords(fields[1:])
			if err != nil {
				sh.message = err.Error()
				break
			}
			if fields[0][0] == 'r' {
				sh.board.RevealAt(row, col)
			} else {
				sh.board.MarkAt(row, col)
			}
		case "s", "save":
			if len(fields) != 2 {
				sh.message = "usage: s FILE"
				break
			}
			if err := saveSnapshot(sh.board, fields[1]); err != nil {
				sh.message = err.Error()
			} else {
				sh.message = "Saved " + fields[1]
			}
		default:
			sh.message = fmt.Sprintf("unknown command %q", fields[0])
		}

		sh.draw()
	}

	return scanner.Err()
}

func (sh *shell) draw() {
	if sh.dirty {
		fmt.Fprint(sh.out, render.TextWithCoords(sh.board))
		sh.dirty = false
	}
	fmt.Fprintf(sh.out, "Mines: %03d\n", sh.minesRemaining)
	if sh.message != "" {
		fmt.Fprintln(sh.out, sh.message)
		sh.message = ""
	}
}

func parseCoords(fields []string) (int, int, error) {
	if len(fields) != 2 {
		return 0, 0, errors.New("expected ROW COL")
	}
	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, errors.Wrap(err, "row")
	}
	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, errors.Wrap(err, "col")
	}
	return row, col, nil
}

func saveSnapshot(board *game.Board, path string) error {
	serialized, err := board.Snapshot().Serialize()
	if err != nil {
		return err
	}
	return errors.Wrap(os.WriteFile(path, []byte(serialized), 0644), "writing snapshot")
}

func replayFilename(board *game.Board, t time.Time) string {
	filenameBuilder := strings.Builder{}

	filenameBuilder.WriteString(t.Format("20060102_150405_"))

	var stateStr string
	switch board.State() {
	case game.Won:
		stateStr = "win"
	case game.Lost:
		stateStr = "loss"
	default:
		stateStr = "other"
	}
	filenameBuilder.WriteString(stateStr)

	filenameBuilder.WriteString(".yaml")

	return filenameBuilder.String()
}

func init() {
	flags := playCmd.Flags()
	flags.StringVarP(&directorName, "director", "d", "", "Make the computer play: random or constraint")
	flags.StringVar(&snapshotPath, "snapshot", "", "Start from a saved board snapshot")
	flags.BoolVar(&loadFresh, "fresh", true, "Keep only the mine layout of the snapshot")
	flags.IntVar(&maxSteps, "steps", 0, "Stop the director after this many steps (0 for no limit)")
	flags.StringVar(&snapshotsDir, "snapshots-dir", "", "Directory where final snapshots of boards should be saved")
}
