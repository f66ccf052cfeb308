package cmd

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/they4kman/websweep/game"
	"github.com/they4kman/websweep/render"
)

var (
	outputPath string
	cellSize   int
)

var renderCmd = &cobra.Command{
	Use:   "render SNAPSHOT",
	Short: "Draw a saved board snapshot",
	Long: `Draw a saved board snapshot, as a PNG with -o or as text otherwise.
The snapshot is drawn as saved; mines are not disclosed unless the game
had ended.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := os.ReadFile(args[0])
		if err != nil {
			return errors.Wrap(err, "reading snapshot")
		}
		snapshot, err := game.LoadSnapshot(string(in))
		if err != nil {
			return err
		}
		board, err := snapshot.CreateBoard(nil, false)
		if err != nil {
			return err
		}

		if outputPath == "" {
			fmt.Fprint(cmd.OutOrStdout(), render.Text(board))
			return nil
		}

		file, err := os.Create(outputPath)
		if err != nil {
			return errors.Wrap(err, "creating output")
		}
		defer file.Close()

		return render.PNG(file, board, cellSize)
	},
}

func init() {
	renderCmd.Flags().StringVarP(&outputPath, "output", "o", "", "PNG file to write")
	renderCmd.Flags().IntVar(&cellSize, "cell-size", render.DefaultCellSize, "Size of each cell, in pixels")
}
