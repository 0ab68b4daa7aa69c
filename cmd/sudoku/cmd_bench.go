package main

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tbjoern/sudoku-solver/internal/loader"
	"github.com/tbjoern/sudoku-solver/internal/solver"
)

var benchFile string

var commandBench = &cobra.Command{
	Use:   "bench",
	Short: "Solve every puzzle in a file and print a verdict per puzzle",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := bench(benchFile); err != nil {
			logrus.Fatal(err)
		}
	},
}

func init() {
	commandBench.Flags().StringVar(&benchFile, "sudokus", "sudokus.txt", "puzzle collection to solve")
	mainCommand.AddCommand(commandBench)
}

func bench(path string) error {
	grids, err := loader.ReadFile(path)
	if err != nil {
		return err
	}
	start := time.Now()
	totalNodes := 0
	for _, grid := range grids {
		engine := solver.NewEngine(grid)
		engine.Solve()
		totalNodes += engine.Nodes()
	}
	dur := time.Since(start)

	fmt.Fprintln(os.Stdout, "Results:")
	for _, grid := range grids {
		fmt.Fprintf(os.Stdout, "%s: %s\n", grid.Name, grid.Check(true))
	}
	logrus.Infof("%d puzzles, %d nodes, %v", len(grids), totalNodes, dur.Round(time.Millisecond))
	return nil
}
