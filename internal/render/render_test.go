package render

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/avik-so/lorenzlab/internal/dynamo"
	"github.com/avik-so/lorenzlab/internal/sim"
)

func TestMaximaPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "maxima.png")

	if err := MaximaPNG(path, []float64{38.2, 41.7, 35.9, 44.1}); err != nil {
		t.Fatalf("MaximaPNG failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Error("wrote empty PNG")
	}
}

func TestProjectionPNG(t *testing.T) {
	traj := &sim.Trajectory{
		Dt: 0.01,
		States: []dynamo.State{
			{0, 0.1, 0},
			{0.01, 0.12, 0.001},
			{-0.02, 0.15, 0.002},
		},
	}

	path := filepath.Join(t.TempDir(), "xz.png")
	if err := ProjectionPNG(path, traj, 0, 2); err != nil {
		t.Fatalf("ProjectionPNG failed: %v", err)
	}
	if info, err := os.Stat(path); err != nil || info.Size() == 0 {
		t.Error("expected non-empty file")
	}
}

func TestReturnMapHTML(t *testing.T) {
	var buf bytes.Buffer
	if err := ReturnMapHTML(&buf, []float64{38.2, 41.7, 35.9}); err != nil {
		t.Fatalf("ReturnMapHTML failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "<html") {
		t.Error("expected HTML document")
	}
	if !strings.Contains(out, "Return map") {
		t.Error("expected chart title in output")
	}
}
