package maze

import (
	"context"
	"math/rand"
	"time"

	"svw.info/puzzles/internal/domain"
	"svw.info/puzzles/internal/ports"
)

// Carver implements ports.MazeCarver.
type Carver struct{}

func NewCarver() *Carver { return &Carver{} }

// Carve builds a maze from the given seed and solves it. The same seed and
// dimensions always produce the same maze.
func (cv *Carver) Carve(ctx context.Context, width, height int, seed int64) (*domain.Maze, ports.Stats, error) {
	start := time.Now()
	if width < 1 || height < 1 {
		return nil, ports.Stats{}, ErrDimension
	}
	if err := ctx.Err(); err != nil {
		return nil, ports.Stats{}, err
	}

	rng := rand.New(rand.NewSource(seed))
	walls := generate(width, height, rng)

	if err := ctx.Err(); err != nil {
		return nil, ports.Stats{}, err
	}
	exit, path := solve(width, height, walls)

	m := &domain.Maze{
		Width:  width,
		Height: height,
		Walls:  walls,
		Exit:   exit,
		Path:   path,
	}
	return m, ports.Stats{Nodes: width * height, Duration: time.Since(start)}, nil
}
