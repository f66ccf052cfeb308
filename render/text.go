// Package render draws boards for shells which have no UI of their own.
package render

import (
	"fmt"
	"strings"

	"github.com/they4kman/websweep/game"
)

var glyphs = map[game.CellState]byte{
	game.Unrevealed:   '#',
	game.Empty:        '.',
	game.Number1:      '1',
	game.Number2:      '2',
	game.Number3:      '3',
	game.Number4:      '4',
	game.Number5:      '5',
	game.Number6:      '6',
	game.Number7:      '7',
	game.Number8:      '8',
	game.Flag:         'F',
	game.FlagQuestion: '?',
	game.FlagWrong:    'x',
	game.Mine:         '*',
	game.MineLosing:   '@',
}

func Glyph(state game.CellState) byte {
	if glyph, ok := glyphs[state]; ok {
		return glyph
	}
	return ' '
}

// Text draws one glyph per cell, one line per row
func Text(board *game.Board) string {
	var out strings.Builder
	for row := 0; row < board.Rows(); row++ {
		for col := 0; col < board.Cols(); col++ {
			out.WriteByte(Glyph(board.CellAt(row, col).State()))
		}
		out.WriteByte('\n')
	}
	return out.String()
}

// TextWithCoords is Text with column numbers on top and row numbers down
// the left, for typing coordinates in a terminal
func TextWithCoords(board *game.Board) string {
	var out strings.Builder

	out.WriteString("    ")
	for col := 0; col < board.Cols(); col++ {
		out.WriteByte('0' + byte(col%10))
	}
	out.WriteByte('\n')

	for row, line := range strings.Split(strings.TrimSuffix(Text(board), "\n"), "\n") {
		fmt.Fprintf(&out, "%3d %s\n", row, line)
	}
	return out.String()
}
