package main

import (
	"github.com/spf13/cobra"
)

var (
	solverKind string
	difficulty string
	seed       int64
	saveDir    string
	outPrefix  string
	mazeWidth  int
	mazeHeight int
	colRules   string
	rowRules   string

	rootCmd = &cobra.Command{
		Use:   "puzzles",
		Short: "Solve and generate Sudoku, nonogram, and maze puzzles",
	}

	solveCmd = &cobra.Command{
		Use:   "solve [puzzle]",
		Short: "Solve an 81-character Sudoku string (0 or . for blanks)",
		Args:  cobra.ExactArgs(1),
		RunE:  runSolve,
	}

	generateCmd = &cobra.Command{
		Use:   "generate",
		Short: "Generate a Sudoku with a unique solution",
		Args:  cobra.NoArgs,
		RunE:  runGenerate,
	}

	mazeCmd = &cobra.Command{
		Use:   "maze",
		Short: "Generate a maze and its solution as PNG images",
		Args:  cobra.NoArgs,
		RunE:  runMaze,
	}

	nonogramCmd = &cobra.Command{
		Use:   "nonogram",
		Short: "Solve a nonogram from its run rules",
		Args:  cobra.NoArgs,
		RunE:  runNonogram,
	}
)

func init() {
	solveCmd.Flags().StringVar(&solverKind, "solver", "dlx", "solver to use: dlx|backtrack")
	solveCmd.Flags().StringVar(&outPrefix, "out", "", "write <out>.png and <out>_solved.png")

	generateCmd.Flags().StringVar(&difficulty, "difficulty", "medium", "easy|medium|hard|expert")
	generateCmd.Flags().Int64Var(&seed, "seed", 0, "generation seed (0 uses the clock)")
	generateCmd.Flags().StringVar(&saveDir, "save", "", "persist the puzzle under this directory")

	mazeCmd.Flags().IntVar(&mazeWidth, "width", 20, "maze width in cells")
	mazeCmd.Flags().IntVar(&mazeHeight, "height", 0, "maze height in cells (defaults to width)")
	mazeCmd.Flags().Int64Var(&seed, "seed", 0, "carving seed (0 uses the clock)")
	mazeCmd.Flags().StringVar(&outPrefix, "out", "maze", "write <out>.png and <out>_solved.png")

	nonogramCmd.Flags().StringVar(&colRules, "col", "", "column rules, e.g. 1,2;3;4;2;1")
	nonogramCmd.Flags().StringVar(&rowRules, "row", "", "row rules, e.g. 1,1;1;2;4;4")
	nonogramCmd.Flags().StringVar(&outPrefix, "out", "", "write <out>.png and <out>_solved.png")
	_ = nonogramCmd.MarkFlagRequired("col")
	_ = nonogramCmd.MarkFlagRequired("row")

	rootCmd.AddCommand(solveCmd, generateCmd, mazeCmd, nonogramCmd)
}
