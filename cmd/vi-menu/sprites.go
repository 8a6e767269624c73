package main

import (
	"errors"
	"image"
	"image/color"
	"log"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/vi-menu/asset"
)

const (
	spriteSize = 16
	sheetCells = 4
)

// sheetLoader serves a generated sheet when the thumbnail sheet is missing
// from the content directory, so the demo runs from a bare checkout
type sheetLoader struct {
	asset.Loader
	wrap func(image.Image) asset.Image
}

func (l sheetLoader) LoadImage(path string) (asset.Image, error) {
	img, err := l.Loader.LoadImage(path)
	if err != nil && path == thumbSheet && errors.Is(err, asset.ErrNotFound) {
		log.Printf("[demo] %s not found, using generated sheet", path)
		return l.wrap(generateSheet()), nil
	}
	return img, err
}

// generateSheet draws a 4x4 grid of round faces, hue varies per cell
func generateSheet() *image.RGBA {
	size := spriteSize * sheetCells
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	for cy := range sheetCells {
		for cx := range sheetCells {
			hue := float64(cy*sheetCells+cx) * 360 / float64(sheetCells*sheetCells)
			r, g, b := colorful.Hsv(hue, 0.6, 0.9).RGB255()
			drawFace(img, cx*spriteSize, cy*spriteSize, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return img
}

func drawFace(img *image.RGBA, ox, oy int, skin color.RGBA) {
	const c = spriteSize/2 - 0.5
	const radius = spriteSize/2 - 1
	eye := color.RGBA{A: 255}

	for y := range spriteSize {
		for x := range spriteSize {
			dx, dy := float64(x)-c, float64(y)-c
			if dx*dx+dy*dy > radius*radius {
				continue
			}
			px := skin
			switch {
			case (x == 5 || x == 10) && (y == 5 || y == 6):
				px = eye
			case y == 11 && x >= 5 && x <= 10:
				px = eye
			}
			img.SetRGBA(ox+x, oy+y, px)
		}
	}
}
