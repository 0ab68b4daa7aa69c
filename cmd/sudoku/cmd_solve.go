package main

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tbjoern/sudoku-solver/internal/loader"
	"github.com/tbjoern/sudoku-solver/internal/solver"
)

var commandSolve = &cobra.Command{
	Use:   "solve <file>",
	Short: "Solve the first puzzle in a file and print the result",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := solveFile(args[0]); err != nil {
			logrus.Fatal(err)
		}
	},
}

func init() {
	mainCommand.AddCommand(commandSolve)
}

func solveFile(path string) error {
	grids, err := loader.ReadFile(path)
	if err != nil {
		return err
	}
	if len(grids) == 0 {
		return errors.Errorf("%s contains no puzzles", path)
	}
	grid := grids[0]
	os.Stdout.WriteString(grid.Render())

	engine := solver.NewEngine(grid)
	start := time.Now()
	solved := engine.Solve()

	os.Stdout.WriteString(grid.Render())
	os.Stdout.WriteString(grid.Check(true) + "\n")
	logrus.Infof("solved=%v nodes=%d dur=%v", solved, engine.Nodes(), time.Since(start).Round(time.Microsecond))
	return nil
}
