package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/they4kman/websweep/game"
)

var gameConfig = game.DefaultConfig()
var configPath string
var verbose bool

var rootCmd = &cobra.Command{
	Use:   "websweep",
	Short: "Play Minesweeper in the terminal",
	Long: `websweep is a Minesweeper game with tri-state marking: right-clicking
a cell cycles it through flagged, question-marked and unmarked. The game is
won by flagging every mine, and nothing else.

Run with no arguments to play manually
	websweep

Use the director flag to make the computer play for you
	websweep play --director constraint
`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			game.Log.SetLevel(logrus.DebugLevel)
		} else {
			game.Log.SetLevel(logrus.WarnLevel)
		}
		return resolveConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return playCmd.RunE(cmd, args)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// resolveConfig layers the config file under any flags given explicitly
func resolveConfig(cmd *cobra.Command) error {
	if configPath == "" {
		return gameConfig.Validate()
	}

	loaded, err := game.ReadConfig(configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if !flags.Changed("rows") {
		gameConfig.Rows = loaded.Rows
	}
	if !flags.Changed("cols") {
		gameConfig.Cols = loaded.Cols
	}
	if !flags.Changed("mines") {
		gameConfig.Mines = loaded.Mines
	}
	if !flags.Changed("seed") {
		gameConfig.Seed = loaded.Seed
	}

	return gameConfig.Validate()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.IntVarP(&gameConfig.Rows, "rows", "r", gameConfig.Rows, "Height of game board, in cells")
	flags.IntVarP(&gameConfig.Cols, "cols", "c", gameConfig.Cols, "Width of game board, in cells")
	flags.IntVarP(&gameConfig.Mines, "mines", "m", gameConfig.Mines, "Number of mines to place in the game board")
	flags.Int64Var(&gameConfig.Seed, "seed", 0, "Seed for mine placement (0 picks one from the clock)")
	flags.StringVar(&configPath, "config", "", "YAML file with rows, cols, mines and seed")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Log game events")

	rootCmd.Flags().AddFlagSet(playCmd.Flags())
	rootCmd.AddCommand(playCmd, renderCmd)
}
