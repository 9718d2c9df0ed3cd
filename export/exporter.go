package export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/abey79/rusteroid/engine"
)

// Exporter writes scene snapshots into a directory
type Exporter struct {
	dir         string
	strokeWidth float64
	now         func() time.Time
}

// NewExporter creates an exporter for dir; the directory is created on first export
func NewExporter(dir string, strokeWidth float64) *Exporter {
	return &Exporter{dir: dir, strokeWidth: strokeWidth, now: time.Now}
}

// Dir returns the target directory
func (e *Exporter) Dir() string {
	return e.dir
}

// Export snapshots the world under its update lock and writes it to a new file
func (e *Exporter) Export(world *engine.World) (string, error) {
	var scene engine.Scene
	world.RunSafe(func() {
		scene = engine.CollectScene(world)
	})
	return e.ExportScene(scene)
}

// ExportScene writes scene to a timestamped file and returns its path
func (e *Exporter) ExportScene(scene engine.Scene) (path string, err error) {
	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}

	name := fmt.Sprintf("rusteroid-%s-%06d.svg", e.now().Format("20060102-150405"), scene.Frame)
	path = filepath.Join(e.dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create export file: %w", err)
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()

	if err := WriteSVG(f, scene, Options{StrokeWidth: e.strokeWidth, DocumentID: uuid.New()}); err != nil {
		return "", err
	}
	return path, nil
}
