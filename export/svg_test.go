package export

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jakecoffman/cp/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abey79/rusteroid/component"
	"github.com/abey79/rusteroid/engine"
	"github.com/abey79/rusteroid/vmath"
)

func testScene() engine.Scene {
	return engine.Scene{
		Width:  200,
		Height: 100,
		Frame:  7,
		Items: []engine.SceneItem{
			{Entity: 1, Kind: engine.EntityAsteroid, Category: 2, Segments: []vmath.Segment{
				{A: cp.Vector{X: 0, Y: 0}, B: cp.Vector{X: 10, Y: 0}},
				{A: cp.Vector{X: 10, Y: 0}, B: cp.Vector{X: 0, Y: 10}},
			}},
			{Entity: 2, Kind: engine.EntityMissile, Segments: []vmath.Segment{
				{A: cp.Vector{X: 1, Y: 1}, B: cp.Vector{X: 1, Y: 5}},
			}},
			{Entity: 3, Kind: engine.EntityOther},
		},
	}
}

func TestWriteSVG(t *testing.T) {
	var buf bytes.Buffer
	id := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	require.NoError(t, WriteSVG(&buf, testScene(), Options{StrokeWidth: 0.5, DocumentID: id}))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, `<?xml version="1.0"?>`))
	assert.Contains(t, out, id.String())
	assert.Contains(t, out, `viewBox="-100 -50 200 100"`)
	assert.Contains(t, out, `stroke-width="0.5"`)
	assert.Equal(t, 2, strings.Count(out, "<path "), "one path per entity with a mesh")
	assert.Contains(t, out, `class="asteroid cat2"`)
	assert.Contains(t, out, "M0.000,0.000 L10.000,0.000 M10.000,0.000 L0.000,10.000")
	assert.Contains(t, out, `class="missile"`)
	assert.True(t, strings.HasSuffix(out, "</svg>\n"))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteSVG_PropagatesError(t *testing.T) {
	err := WriteSVG(failingWriter{}, testScene(), Options{})
	assert.ErrorContains(t, err, "disk full")
}

func TestExporter(t *testing.T) {
	dir := t.TempDir() + "/out"
	e := NewExporter(dir, 1)
	e.now = func() time.Time { return time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC) }

	w := engine.NewWorld()
	engine.SpawnMissile(w, cp.Vector{}, cp.Vector{}, 0, component.MissileComponent{TimeToLive: time.Second})

	path, err := e.Export(w)
	require.NoError(t, err)
	assert.Equal(t, dir+"/rusteroid-20240501-123000-000000.svg", path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(data), "<path "))
}
