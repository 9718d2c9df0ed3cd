package engine

import (
	"github.com/abey79/rusteroid/core"
	"github.com/abey79/rusteroid/vmath"
)

// EntityKind classifies scene items for styling
type EntityKind uint8

const (
	EntityAsteroid EntityKind = iota
	EntityMissile
	EntityOther
)

// SceneItem is one entity's mesh in world space
type SceneItem struct {
	Entity   core.Entity
	Kind     EntityKind
	Category int
	Segments []vmath.Segment
}

// Scene is a read-only snapshot handed to renderers and exporters
type Scene struct {
	Width  float64
	Height float64
	Frame  int64
	Items  []SceneItem
}

// CollectScene snapshots every entity that has both a mesh and a transform
// Entities without a mesh are skipped silently
// Caller must hold the world update lock or call through RunSafe
func CollectScene(w *World) Scene {
	scene := Scene{
		Width:  w.Resources.Config.FieldWidth,
		Height: w.Resources.Config.FieldHeight,
		Frame:  w.Resources.Time.FrameNumber,
	}

	for _, e := range w.Components.Body.GetAllEntities() {
		body, ok := w.Components.Body.GetComponent(e)
		if !ok || len(body.Mesh) == 0 {
			continue
		}
		tr, ok := w.Components.Transform.GetComponent(e)
		if !ok {
			continue
		}

		item := SceneItem{Entity: e, Kind: EntityOther}
		if ast, ok := w.Components.Asteroid.GetComponent(e); ok {
			item.Kind = EntityAsteroid
			item.Category = ast.Category
		} else if w.Components.Missile.HasEntity(e) {
			item.Kind = EntityMissile
		}

		affine := tr.Affine()
		item.Segments = make([]vmath.Segment, len(body.Mesh))
		for i, s := range body.Mesh {
			item.Segments[i] = affine.Segment(s)
		}
		scene.Items = append(scene.Items, item)
	}
	return scene
}
