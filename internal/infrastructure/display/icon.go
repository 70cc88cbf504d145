package display

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/younwookim/pong/internal/infrastructure/config"
)

// Window icon edge lengths handed to the OS, which picks the best fit
var iconSizes = []int{16, 32, 48}

// caption returns the window title, e.g. "PONG" -> "Pong"
func caption(title string) string {
	return cases.Title(language.Und).String(title)
}

// icons renders the court in miniature at every icon size
func icons(p config.Palette) []image.Image {
	out := make([]image.Image, 0, len(iconSizes))
	for _, s := range iconSizes {
		out = append(out, icon(s, p.Background, p.Foreground))
	}
	return out
}

// icon draws two paddles and a ball on a square of edge size
func icon(size int, bg, fg color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	unit := size / 8
	fill := image.NewUniform(fg)
	paddle := image.Rect(0, 0, unit, 3*unit)
	top := (size - paddle.Dy()) / 2

	draw.Draw(img, paddle.Add(image.Pt(unit, top)), fill, image.Point{}, draw.Src)
	draw.Draw(img, paddle.Add(image.Pt(size-2*unit, top)), fill, image.Point{}, draw.Src)

	mid := size/2 - unit/2
	ball := image.Rect(mid, mid, mid+unit, mid+unit)
	draw.Draw(img, ball, fill, image.Point{}, draw.Src)
	return img
}
