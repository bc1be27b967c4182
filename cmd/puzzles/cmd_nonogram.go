package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"svw.info/puzzles/internal/domain"
	"svw.info/puzzles/internal/nonogram"
	"svw.info/puzzles/internal/render"
)

func runNonogram(cmd *cobra.Command, args []string) error {
	n, st, err := nonogram.NewService().SolveNonogram(cmd.Context(), colRules, rowRules)
	if err != nil {
		return err
	}

	var sb strings.Builder
	for r := 0; r < n.Height; r++ {
		for c := 0; c < n.Width; c++ {
			if n.At(r, c) == domain.Filled {
				sb.WriteString("##")
			} else {
				sb.WriteString("··")
			}
		}
		sb.WriteByte('\n')
	}
	fmt.Print(sb.String())
	fmt.Printf("%dx%d nonogram solved in %s (%d guesses)\n",
		n.Width, n.Height, st.Duration.Round(time.Microsecond), st.Nodes)

	if outPrefix != "" {
		unsolved, err := render.PNG(render.Nonogram(n))
		if err != nil {
			return err
		}
		solved, err := render.PNG(render.NonogramSolved(n))
		if err != nil {
			return err
		}
		return writePair(outPrefix, unsolved, solved)
	}
	return nil
}
