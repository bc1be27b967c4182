package render

import (
	"image"

	"svw.info/puzzles/internal/domain"
)

const (
	nonoCell   = 50  // pixel pitch of one grid cell
	nonoMargin = 150 // rule band along the top and left
)

// Nonogram draws the empty grid with its run rules: column rules stacked
// in the top band, row rules laid out in the left band.
func Nonogram(n *domain.Nonogram) *image.RGBA {
	img := blank(n.Width*nonoCell+nonoMargin, n.Height*nonoCell+nonoMargin)

	for x, runs := range n.ColRules {
		px := x*nonoCell + nonoMargin + 15
		for i, run := range runs {
			drawNumber(img, run, px, i*30+10, 4, black)
		}
	}
	for y, runs := range n.RowRules {
		py := y*nonoCell + nonoMargin + 10
		for i, run := range runs {
			drawNumber(img, run, i*30+10, py, 4, black)
		}
	}

	for x := 0; x <= n.Width; x++ {
		fillRect(img, x*nonoCell+nonoMargin, 0, 1, n.Height*nonoCell+nonoMargin, gray)
	}
	for y := 0; y <= n.Height; y++ {
		fillRect(img, 0, y*nonoCell+nonoMargin, n.Width*nonoCell+nonoMargin, 1, gray)
	}
	return img
}

// NonogramSolved draws the grid with every filled cell painted black.
func NonogramSolved(n *domain.Nonogram) *image.RGBA {
	img := Nonogram(n)
	for i, s := range n.Cells {
		if s != domain.Filled {
			continue
		}
		x := (i%n.Width)*nonoCell + nonoMargin + 1
		y := (i/n.Width)*nonoCell + nonoMargin + 1
		fillRect(img, x, y, nonoCell-1, nonoCell-1, black)
	}
	return img
}
