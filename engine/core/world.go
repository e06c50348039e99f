package core

import (
	"github.com/1siamBot/hexgrid/engine/hexgrid"
	"github.com/1siamBot/hexgrid/engine/render3d"
)

// EntityID is the index of an entity in its World
type EntityID int

// InvalidEntity is never returned by Spawn
const InvalidEntity EntityID = -1

// Transform places an entity in world space
type Transform struct {
	Translation render3d.Vec3
	RotationX   float64 // radians
	Scale       float64 // uniform, 0 means 1
}

// Matrix returns the model matrix: scale, then rotate about X, then
// translate
func (t Transform) Matrix() render3d.Mat4 {
	s := t.Scale
	if s == 0 {
		s = 1
	}
	m := render3d.Mat4Translate(t.Translation.X, t.Translation.Y, t.Translation.Z)
	m = m.Mul(render3d.Mat4RotateX(t.RotationX))
	return m.Mul(render3d.Mat4Scale(s, s, s))
}

// Entity is one renderable record. Entities only reference shared assets
// through handles.
type Entity struct {
	ID        EntityID
	Cell      int // index into the grid's cells, -1 for non-tile entities
	Transform Transform
	Mesh      MeshHandle
	Material  MaterialHandle
	Biome     hexgrid.Biome
}

// World holds all entities in spawn order. Entities are never removed.
type World struct {
	entities []Entity
}

// NewWorld creates an empty world with room for capacity entities
func NewWorld(capacity int) *World {
	return &World{entities: make([]Entity, 0, capacity)}
}

// Spawn stores e and returns its ID. The ID field of e is overwritten.
func (w *World) Spawn(e Entity) EntityID {
	e.ID = EntityID(len(w.entities))
	w.entities = append(w.entities, e)
	return e.ID
}

// Get returns the entity with the given ID
func (w *World) Get(id EntityID) (Entity, bool) {
	if id < 0 || int(id) >= len(w.entities) {
		return Entity{}, false
	}
	return w.entities[id], true
}

// Len returns the number of entities
func (w *World) Len() int { return len(w.entities) }

// Each calls fn for every entity in spawn order
func (w *World) Each(fn func(e *Entity)) {
	for i := range w.entities {
		fn(&w.entities[i])
	}
}

// Query returns the IDs of all entities matching pred
func (w *World) Query(pred func(e *Entity) bool) []EntityID {
	var result []EntityID
	for i := range w.entities {
		if pred(&w.entities[i]) {
			result = append(result, EntityID(i))
		}
	}
	return result
}
