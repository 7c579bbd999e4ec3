// Package render rasterizes space-time trajectories: rows are generations,
// columns are cell positions.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"wolfram-ca/internal/ca"
)

// Reference palette: active cells black on a white background.
var (
	On  = color.RGBA{A: 255}
	Off = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// fillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		base := i * 4
		if c != 0 {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}

func toRGBA(c color.Color) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}

// paintRow draws generation step into img at the given integer scale.
func paintRow(img *image.RGBA, row []uint8, step, scale int, on, off color.RGBA) {
	for x, c := range row {
		col := off
		if c != 0 {
			col = on
		}
		for dy := 0; dy < scale; dy++ {
			y := step*scale + dy
			for dx := 0; dx < scale; dx++ {
				img.SetRGBA(x*scale+dx, y, col)
			}
		}
	}
}

// Image rasterizes a trajectory into an RGBA image, one scale×scale block per
// cell.
func Image(t *ca.Trajectory, on, off color.Color, scale int) *image.RGBA {
	if scale < 1 {
		scale = 1
	}
	if scale == 1 {
		img := image.NewRGBA(image.Rect(0, 0, t.Cells, t.Steps))
		fillBinaryRGBA(img.Pix, t.Grid(), on, off)
		return img
	}
	img := image.NewRGBA(image.Rect(0, 0, t.Cells*scale, t.Steps*scale))
	onC, offC := toRGBA(on), toRGBA(off)
	for step := 0; step < t.Steps; step++ {
		paintRow(img, t.Row(step), step, scale, onC, offC)
	}
	return img
}

// WritePNG renders the trajectory into a PNG file at path.
func WritePNG(path string, t *ca.Trajectory, on, off color.Color, scale int) error {
	img := Image(t, on, off, scale)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
