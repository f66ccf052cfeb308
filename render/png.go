package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/pkg/errors"
	"github.com/they4kman/websweep/game"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const DefaultCellSize = 16

var (
	borderColor   = colornames.Gray
	coveredColor  = colornames.Silver
	revealedColor = colornames.Gainsboro
)

var backgrounds = map[game.CellState]color.RGBA{
	game.Unrevealed:   coveredColor,
	game.Flag:         coveredColor,
	game.FlagQuestion: coveredColor,
	game.FlagWrong:    colornames.Orange,
	game.Mine:         revealedColor,
	game.MineLosing:   colornames.Red,
}

var labelColors = map[game.CellState]color.RGBA{
	game.Number1:      colornames.Blue,
	game.Number2:      colornames.Green,
	game.Number3:      colornames.Red,
	game.Number4:      colornames.Navy,
	game.Number5:      colornames.Maroon,
	game.Number6:      colornames.Teal,
	game.Number7:      colornames.Black,
	game.Number8:      colornames.Dimgray,
	game.Flag:         colornames.Red,
	game.FlagQuestion: colornames.Black,
	game.FlagWrong:    colornames.Black,
	game.Mine:         colornames.Black,
	game.MineLosing:   colornames.Black,
}

// Image draws the board with one cellSize square per cell
func Image(board *game.Board, cellSize int) *image.RGBA {
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}

	img := image.NewRGBA(image.Rect(0, 0, board.Cols()*cellSize, board.Rows()*cellSize))
	draw.Draw(img, img.Bounds(), image.NewUniform(borderColor), image.Point{}, draw.Src)

	face := basicfont.Face7x13
	drawer := font.Drawer{Dst: img, Face: face}

	for _, cell := range board.Cells() {
		state := cell.State()
		origin := image.Pt(cell.Col()*cellSize, cell.Row()*cellSize)
		inner := image.Rectangle{Min: origin, Max: origin.Add(image.Pt(cellSize, cellSize))}.Inset(1)

		background, ok := backgrounds[state]
		if !ok {
			background = revealedColor
		}
		draw.Draw(img, inner, image.NewUniform(background), image.Point{}, draw.Src)

		labelColor, ok := labelColors[state]
		if !ok {
			continue
		}
		label := string(Glyph(state))
		width := drawer.MeasureString(label).Ceil()

		drawer.Src = image.NewUniform(labelColor)
		drawer.Dot = fixed.P(
			origin.X+(cellSize-width)/2,
			origin.Y+(cellSize+face.Ascent-face.Descent)/2,
		)
		drawer.DrawString(label)
	}

	return img
}

func PNG(w io.Writer, board *game.Board, cellSize int) error {
	if err := png.Encode(w, Image(board, cellSize)); err != nil {
		return errors.Wrap(err, "encoding board png")
	}
	return nil
}
