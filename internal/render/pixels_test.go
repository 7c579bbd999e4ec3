package render

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"wolfram-ca/internal/ca"
)

func testTrajectory(t *testing.T) *ca.Trajectory {
	t.Helper()
	traj, err := ca.Simulate(ca.Config{Rule: 90, Cells: 7, Steps: 4, Mode: ca.SeedCenter})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return traj
}

func TestImageDimensionsAndColors(t *testing.T) {
	traj := testTrajectory(t)
	img := Image(traj, On, Off, 1)

	bounds := img.Bounds()
	if bounds.Dx() != traj.Cells || bounds.Dy() != traj.Steps {
		t.Fatalf("image %dx%d, want %dx%d", bounds.Dx(), bounds.Dy(), traj.Cells, traj.Steps)
	}

	// Generation 0 has its single active cell at the lattice midpoint.
	if got := img.RGBAAt(3, 0); got != On {
		t.Fatalf("active cell color: got %v, want %v", got, On)
	}
	if got := img.RGBAAt(0, 0); got != Off {
		t.Fatalf("inactive cell color: got %v, want %v", got, Off)
	}
}

func TestImageScaling(t *testing.T) {
	traj := testTrajectory(t)
	img := Image(traj, On, Off, 3)

	bounds := img.Bounds()
	if bounds.Dx() != traj.Cells*3 || bounds.Dy() != traj.Steps*3 {
		t.Fatalf("image %dx%d, want %dx%d", bounds.Dx(), bounds.Dy(), traj.Cells*3, traj.Steps*3)
	}
	// Every pixel of the 3x3 block covering the seed cell carries the active
	// color.
	for dy := 0; dy < 3; dy++ {
		for dx := 0; dx < 3; dx++ {
			if got := img.RGBAAt(9+dx, dy); got != On {
				t.Fatalf("scaled pixel (%d,%d): got %v, want %v", 9+dx, dy, got, On)
			}
		}
	}
}

func TestWritePNG(t *testing.T) {
	traj := testTrajectory(t)
	path := filepath.Join(t.TempDir(), "rule_090.png")
	if err := WritePNG(path, traj, On, Off, 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat output: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("PNG file is empty")
	}
}

func TestFillBinaryRGBA(t *testing.T) {
	buf := make([]byte, 12)
	fillBinaryRGBA(buf, []uint8{0, 1, 0}, color.White, color.Black)
	if buf[4] != 255 || buf[5] != 255 || buf[6] != 255 {
		t.Fatalf("active pixel not white: %v", buf[4:8])
	}
	if buf[0] != 0 || buf[1] != 0 || buf[2] != 0 {
		t.Fatalf("inactive pixel not black: %v", buf[0:4])
	}
}
