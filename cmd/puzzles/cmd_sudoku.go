package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"svw.info/puzzles/internal/domain"
	"svw.info/puzzles/internal/generator"
	"svw.info/puzzles/internal/infrastructure/storage"
	"svw.info/puzzles/internal/ports"
	"svw.info/puzzles/internal/render"
	"svw.info/puzzles/internal/solver"
	"svw.info/puzzles/internal/sudoku"
)

func pickSolver(kind string) ports.Solver {
	if strings.HasPrefix(strings.ToLower(kind), "backtrack") {
		return solver.NewBacktrackingSolver()
	}
	return solver.NewDLXSolver()
}

func writePNG(path string, data []byte) error {
	return os.WriteFile(path, data, 0o644)
}

// writePair renders the puzzle and solution images next to each other.
func writePair(prefix string, unsolved, solved []byte) error {
	if err := writePNG(prefix+".png", unsolved); err != nil {
		return err
	}
	return writePNG(prefix+"_solved.png", solved)
}

func runSolve(cmd *cobra.Command, args []string) error {
	b, err := sudoku.Parse(args[0])
	if err != nil {
		return err
	}

	out, st, err := pickSolver(solverKind).Solve(cmd.Context(), b)
	if err != nil {
		return err
	}

	fmt.Println(render.BoardText(out))
	fmt.Printf("solved in %s (%d nodes)\n", st.Duration.Round(time.Microsecond), st.Nodes)

	if outPrefix != "" {
		unsolved, err := render.PNG(render.Sudoku(b))
		if err != nil {
			return err
		}
		solved, err := render.PNG(render.SudokuSolved(b, out))
		if err != nil {
			return err
		}
		return writePair(outPrefix, unsolved, solved)
	}
	return nil
}

func parseDifficulty(s string) domain.Difficulty {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return domain.Easy
	case "hard":
		return domain.Hard
	case "expert":
		return domain.Expert
	default:
		return domain.Medium
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g := generator.NewUniqueGenerator(solver.NewDLXSolver())
	p, st, err := g.Generate(cmd.Context(), seed, parseDifficulty(difficulty))
	if err != nil {
		return err
	}

	fmt.Println(render.BoardText(&p.Board))
	fmt.Printf("difficulty=%s givens=%d seed=%d (%s)\n",
		p.Difficulty, p.Board.Givens(), seed, st.Duration.Round(time.Millisecond))

	if saveDir != "" {
		if err := storage.NewFS(saveDir).Save(cmd.Context(), p); err != nil {
			return err
		}
		fmt.Println("saved as", p.ID)
	}
	return nil
}
