package ui

import (
	"bytes"
	"image"
	"image/color"
	"image/png"

	"github.com/mrosell/deskgate/common"
)

// Tray icon colors.
var (
	iconFillColor   = color.RGBA{53, 132, 228, 255}  // Blue
	iconBorderColor = color.RGBA{26, 95, 180, 255}   // Dark blue
	iconDotColor    = color.RGBA{255, 255, 255, 255} // White
)

// GenerateTrayIcon renders the tray icon as PNG bytes: a filled circle
// with a border ring and a centered dot.
func GenerateTrayIcon() []byte {
	size := common.TrayIconSize
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	center := float64(size) / 2
	outer := center - 1
	inner := outer - 1.5
	dot := float64(size) / 6

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x) + 0.5 - center
			dy := float64(y) + 0.5 - center
			dist := dx*dx + dy*dy

			switch {
			case dist <= dot*dot:
				img.Set(x, y, iconDotColor)
			case dist <= inner*inner:
				img.Set(x, y, iconFillColor)
			case dist <= outer*outer:
				img.Set(x, y, iconBorderColor)
			}
		}
	}

	var buf bytes.Buffer
	png.Encode(&buf, img)
	return buf.Bytes()
}
