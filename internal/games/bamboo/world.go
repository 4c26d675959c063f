package bamboo

import (
	"github.com/vovakirdan/bamboo-breakout/internal/config"
	"github.com/vovakirdan/bamboo-breakout/internal/core"
)

// EntityID identifies an entity within one World. IDs start at 1.
type EntityID uint32

// Entity is a physical object in the arena. Pos is the center.
type Entity struct {
	ID       EntityID
	Category Category
	Pos      core.Vec
	Size     core.Vec
	Velocity core.Vec
	Dynamic  bool
}

// Bounds returns the entity's axis-aligned box.
func (e *Entity) Bounds() core.Box {
	return core.Box{Center: e.Pos, Size: e.Size}
}

// World owns every entity of a session.
// Entities are iterated in insertion order.
type World struct {
	width, height float64

	entities map[EntityID]*Entity
	order    []EntityID
	nextID   EntityID

	ball, paddle, border, bottom EntityID
}

// NewWorld builds the arena described by cfg with the blocks of profile p.
func NewWorld(cfg config.BambooConfig, p Profile) *World {
	w := &World{
		width:    cfg.Arena.Width,
		height:   cfg.Arena.Height,
		entities: make(map[EntityID]*Entity),
	}

	// Edge loop around the arena
	w.border = w.Add(Entity{
		Category: CategoryBorder,
		Pos:      core.V(w.width/2, w.height/2),
		Size:     core.V(w.width, w.height),
	}).ID

	// Sensor edge along y = 0
	w.bottom = w.Add(Entity{
		Category: CategoryBottom,
		Pos:      core.V(w.width/2, 0),
		Size:     core.V(w.width, 0),
	}).ID

	r := cfg.Ball.Radius
	w.ball = w.Add(Entity{
		Category: CategoryBall,
		Pos:      core.V(w.width/2, w.height/3),
		Size:     core.V(2*r, 2*r),
		Dynamic:  true,
	}).ID

	w.paddle = w.Add(Entity{
		Category: CategoryPaddle,
		Pos:      core.V(w.width/2, cfg.Paddle.Y),
		Size:     core.V(cfg.Paddle.Width, cfg.Paddle.Height),
	}).ID

	w.addBlocks(cfg.Blocks, p.Blocks, p.Stacked)
	return w
}

// addBlocks lays out count blocks centered horizontally, one or two rows.
func (w *World) addBlocks(cfg config.BlocksConfig, count int, stacked bool) {
	rows := []float64{cfg.RowHeight}
	if stacked {
		rows = append(rows, cfg.RowHeight+cfg.RowStep)
	}
	xOffset := (w.width - float64(count)*cfg.Width) / 2
	for _, row := range rows {
		for i := range count {
			w.Add(Entity{
				Category: CategoryBlock,
				Pos:      core.V(xOffset+(float64(i)+0.5)*cfg.Width, row*w.height),
				Size:     core.V(cfg.Width, cfg.Height),
			})
		}
	}
}

// Add inserts a copy of e with a fresh ID and returns the stored entity.
func (w *World) Add(e Entity) *Entity {
	w.nextID++
	e.ID = w.nextID
	stored := &e
	w.entities[e.ID] = stored
	w.order = append(w.order, e.ID)
	return stored
}

// Get looks up an entity. Removed entities are not found.
func (w *World) Get(id EntityID) (*Entity, bool) {
	e, ok := w.entities[id]
	return e, ok
}

// Remove deletes an entity and reports whether it was present.
func (w *World) Remove(id EntityID) bool {
	if _, ok := w.entities[id]; !ok {
		return false
	}
	delete(w.entities, id)
	for i, oid := range w.order {
		if oid == id {
			w.order = append(w.order[:i], w.order[i+1:]...)
			break
		}
	}
	return true
}

// Count returns the number of entities in category c.
func (w *World) Count(c Category) int {
	n := 0
	for _, e := range w.entities {
		if e.Category == c {
			n++
		}
	}
	return n
}

// Entities returns all entities in insertion order.
func (w *World) Entities() []*Entity {
	out := make([]*Entity, 0, len(w.order))
	for _, id := range w.order {
		out = append(out, w.entities[id])
	}
	return out
}

// Blocks returns the remaining blocks in insertion order.
func (w *World) Blocks() []*Entity {
	var out []*Entity
	for _, id := range w.order {
		if e := w.entities[id]; e.Category == CategoryBlock {
			out = append(out, e)
		}
	}
	return out
}

// Ball returns the ball.
func (w *World) Ball() *Entity { return w.entities[w.ball] }

// Paddle returns the paddle.
func (w *World) Paddle() *Entity { return w.entities[w.paddle] }

// Border returns the arena edge loop.
func (w *World) Border() *Entity { return w.entities[w.border] }

// Bottom returns the bottom sensor.
func (w *World) Bottom() *Entity { return w.entities[w.bottom] }

// Width returns the arena width.
func (w *World) Width() float64 { return w.width }

// Height returns the arena height.
func (w *World) Height() float64 { return w.height }

// Size returns the arena size.
func (w *World) Size() core.Vec { return core.V(w.width, w.height) }

// ClampPaddleX restricts x so the paddle stays fully inside the arena.
func (w *World) ClampPaddleX(x float64) float64 {
	half := w.Paddle().Size.X / 2
	return core.ClampF(x, half, w.width-half)
}

// ClampPoint restricts p to the arena.
func (w *World) ClampPoint(p core.Vec) core.Vec {
	return core.V(core.ClampF(p.X, 0, w.width), core.ClampF(p.Y, 0, w.height))
}
