package render

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"

	"github.com/icza/mjpeg"

	"wolfram-ca/internal/ca"
)

// WriteAnimation writes an MJPEG AVI that reveals the trajectory one
// generation per frame, top to bottom.
func WriteAnimation(path string, t *ca.Trajectory, scale, fps int) error {
	if scale < 1 {
		scale = 1
	}
	if fps < 1 {
		fps = 25
	}
	w := t.Cells * scale
	h := t.Steps * scale
	aw, err := mjpeg.New(path, int32(w), int32(h), int32(fps))
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	frame := image.NewRGBA(image.Rect(0, 0, w, h))
	onC, offC := toRGBA(On), toRGBA(Off)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			frame.SetRGBA(x, y, offC)
		}
	}

	var buf bytes.Buffer
	for step := 0; step < t.Steps; step++ {
		paintRow(frame, t.Row(step), step, scale, onC, offC)
		buf.Reset()
		if err := jpeg.Encode(&buf, frame, &jpeg.Options{Quality: 90}); err != nil {
			aw.Close()
			return fmt.Errorf("encode frame %d: %w", step, err)
		}
		if err := aw.AddFrame(buf.Bytes()); err != nil {
			aw.Close()
			return fmt.Errorf("add frame %d: %w", step, err)
		}
	}
	return aw.Close()
}
