// Package render rasterizes puzzles to PNG images and renders terminal
// views of Sudoku boards.
//
// Every puzzle renders as a pair: the blank puzzle and the solved overlay
// drawn on top of it. Images use a plain white background with black
// structure; solution marks are red.
package render

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"strconv"
)

var (
	white = color.RGBA{255, 255, 255, 255}
	black = color.RGBA{0, 0, 0, 255}
	red   = color.RGBA{255, 0, 0, 255}
	gray  = color.RGBA{128, 128, 128, 255}
)

// PNG encodes an image as PNG bytes.
func PNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func blank(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{white}, image.Point{}, draw.Src)
	return img
}

func fillRect(img *image.RGBA, x, y, w, h int, c color.Color) {
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			img.Set(x+dx, y+dy, c)
		}
	}
}

// glyphs is a 5x7 bitmap font for the decimal digits, one row per byte,
// low five bits used.
var glyphs = [10][7]byte{
	{0b01110, 0b10001, 0b10011, 0b10101, 0b11001, 0b10001, 0b01110}, // 0
	{0b00100, 0b01100, 0b00100, 0b00100, 0b00100, 0b00100, 0b01110}, // 1
	{0b01110, 0b10001, 0b00001, 0b00010, 0b00100, 0b01000, 0b11111}, // 2
	{0b01110, 0b10001, 0b00001, 0b00110, 0b00001, 0b10001, 0b01110}, // 3
	{0b00010, 0b00110, 0b01010, 0b10010, 0b11111, 0b00010, 0b00010}, // 4
	{0b11111, 0b10000, 0b11110, 0b00001, 0b00001, 0b10001, 0b01110}, // 5
	{0b00110, 0b01000, 0b10000, 0b11110, 0b10001, 0b10001, 0b01110}, // 6
	{0b11111, 0b00001, 0b00010, 0b00100, 0b01000, 0b01000, 0b01000}, // 7
	{0b01110, 0b10001, 0b10001, 0b01110, 0b10001, 0b10001, 0b01110}, // 8
	{0b01110, 0b10001, 0b10001, 0b01111, 0b00001, 0b00010, 0b01100}, // 9
}

// drawDigit paints digit d with its top-left corner at (x, y), each font
// pixel scaled to a scale*scale block.
func drawDigit(img *image.RGBA, d, x, y, scale int, c color.Color) {
	for row := 0; row < 7; row++ {
		for col := 0; col < 5; col++ {
			if glyphs[d][row]&(1<<(4-col)) == 0 {
				continue
			}
			fillRect(img, x+col*scale, y+row*scale, scale, scale, c)
		}
	}
}

// drawNumber paints a decimal number left-aligned at (x, y) and returns
// the x coordinate just past the last digit.
func drawNumber(img *image.RGBA, n, x, y, scale int, c color.Color) int {
	for _, r := range strconv.Itoa(n) {
		drawDigit(img, int(r-'0'), x, y, scale, c)
		x += 6 * scale
	}
	return x
}
