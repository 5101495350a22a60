package render

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteSequence(t *testing.T) {
	dir := t.TempDir()
	frames := []*image.RGBA{
		image.NewRGBA(image.Rect(0, 0, 8, 6)),
		image.NewRGBA(image.Rect(0, 0, 8, 6)),
		image.NewRGBA(image.Rect(0, 0, 8, 6)),
	}

	paths, err := WriteSequence(dir, "out", frames)
	if err != nil {
		t.Fatalf("WriteSequence() error: %v", err)
	}
	if len(paths) != 3 {
		t.Fatalf("got %d paths, want 3", len(paths))
	}

	want := []string{"out_00000.png", "out_00001.png", "out_00002.png"}
	for i, p := range paths {
		if filepath.Base(p) != want[i] {
			t.Errorf("path %d = %s, want %s", i, filepath.Base(p), want[i])
		}
		f, err := os.Open(p)
		if err != nil {
			t.Fatalf("frame %d not written: %v", i, err)
		}
		cfg, err := png.DecodeConfig(f)
		f.Close()
		if err != nil {
			t.Fatalf("frame %d is not a PNG: %v", i, err)
		}
		if cfg.Width != 8 || cfg.Height != 6 {
			t.Errorf("frame %d is %dx%d, want 8x6", i, cfg.Width, cfg.Height)
		}
	}
}

func TestWriteSequenceCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "frames")
	frames := []*image.RGBA{image.NewRGBA(image.Rect(0, 0, 2, 2))}

	if _, err := WriteSequence(dir, "", frames); err != nil {
		t.Fatalf("WriteSequence() error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "frame_00000.png")); err != nil {
		t.Errorf("default prefix file missing: %v", err)
	}
}

func TestWriteSequenceRejectsEmpty(t *testing.T) {
	if _, err := WriteSequence(t.TempDir(), "out", nil); err == nil {
		t.Error("expected error for empty frame slice")
	}
}
