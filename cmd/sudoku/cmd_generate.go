package main

import (
	"context"
	"os"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tbjoern/sudoku-solver/internal/domain"
	"github.com/tbjoern/sudoku-solver/internal/generator"
	"github.com/tbjoern/sudoku-solver/internal/infrastructure/storage"
	"github.com/tbjoern/sudoku-solver/internal/solver"
)

var (
	generateDifficulty string
	generateSeed       int64
	generateSaveDir    string
)

var commandGenerate = &cobra.Command{
	Use:   "generate",
	Short: "Generate a uniquely solvable puzzle",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := generate(); err != nil {
			logrus.Fatal(err)
		}
	},
}

func init() {
	commandGenerate.Flags().StringVarP(&generateDifficulty, "difficulty", "d", "medium", "easy|medium|hard|expert")
	commandGenerate.Flags().Int64Var(&generateSeed, "seed", 0, "rng seed (0 = time-based)")
	commandGenerate.Flags().StringVar(&generateSaveDir, "save-dir", "", "also save the puzzle as JSON under this directory")
	mainCommand.AddCommand(commandGenerate)
}

func generate() error {
	seed := generateSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	diff := domain.ParseDifficulty(generateDifficulty)
	gen := generator.NewUniqueGenerator(solver.NewMarksSolver())
	p, st, err := gen.Generate(context.Background(), seed, diff)
	if err != nil {
		return err
	}

	grid := p.Board.Grid(diff.String() + " " + strconv.FormatInt(seed, 10))
	os.Stdout.WriteString(grid.Render())
	logrus.Infof("difficulty=%s seed=%d nodes=%d dur=%v", diff, seed, st.Nodes, st.Duration.Round(time.Millisecond))

	if generateSaveDir != "" {
		p.ID = strconv.FormatInt(seed, 10)
		if err := storage.NewFS(generateSaveDir).Save(context.Background(), p); err != nil {
			return err
		}
		logrus.Infof("saved puzzle %s", p.ID)
	}
	return nil
}
