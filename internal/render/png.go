// SPDX-License-Identifier: MIT
//
// Package render persists finished image sequences to disk.
package render

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	applog "specviz/internal/log"
)

// WriteSequence writes frames into dir as <prefix>_00000.png,
// <prefix>_00001.png and so on, creating dir if needed. It returns the
// paths written, in frame order.
func WriteSequence(dir, prefix string, frames []*image.RGBA) ([]string, error) {
	if len(frames) == 0 {
		return nil, fmt.Errorf("render: no frames to write")
	}
	if prefix == "" {
		prefix = "frame"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("render: failed to create output directory '%s': %w", dir, err)
	}

	paths := make([]string, 0, len(frames))
	for i, frame := range frames {
		path := filepath.Join(dir, fmt.Sprintf("%s_%05d.png", prefix, i))
		if err := writePNG(path, frame); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}

	applog.Infof("Render: Wrote %d frames to %s", len(paths), dir)
	return paths, nil
}

func writePNG(path string, img *image.RGBA) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: failed to create '%s': %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("render: failed to encode '%s': %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("render: failed to close '%s': %w", path, err)
	}
	return nil
}
