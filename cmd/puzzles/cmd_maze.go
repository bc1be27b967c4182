package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"svw.info/puzzles/internal/maze"
	"svw.info/puzzles/internal/render"
)

func runMaze(cmd *cobra.Command, args []string) error {
	if mazeHeight == 0 {
		mazeHeight = mazeWidth
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	m, st, err := maze.NewCarver().Carve(cmd.Context(), mazeWidth, mazeHeight, seed)
	if err != nil {
		return err
	}

	unsolved, err := render.PNG(render.Maze(m))
	if err != nil {
		return err
	}
	solved, err := render.PNG(render.MazeSolved(m))
	if err != nil {
		return err
	}
	if err := writePair(outPrefix, unsolved, solved); err != nil {
		return err
	}

	fmt.Printf("%dx%d maze, exit at column %d, path length %d (seed %d, %s)\n",
		m.Width, m.Height, m.Exit, len(m.Path), seed, st.Duration.Round(time.Millisecond))
	return nil
}
