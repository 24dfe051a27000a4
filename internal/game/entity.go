package game

import (
	"errors"

	"go.uber.org/zap"
)

// Kind is the closed tag selecting an entity's behavior and payload.
type Kind int

const (
	KindGeneric Kind = iota
	KindPlayer
	KindIngredient
	KindBin // ingredient dispenser
	KindStove
	KindDish
	KindSeat
	KindCustomer
	KindProjectile
)

// IngredientColor identifies an ingredient variety. Recipes are
// multisets over these.
type IngredientColor int

const (
	IngredientRed IngredientColor = iota
	IngredientGreen
	IngredientBlue
	IngredientPurple

	numIngredientColors // must stay last
)

// NoEntity marks an empty weak reference slot.
const NoEntity = -1

// Entity is the single record type for everything in the simulation.
// Kind-specific payloads hang off optional pointers; cross-entity links
// (Holding, seat/customer backrefs) are weak slot indices that must be
// liveness-checked before use.
type Entity struct {
	Active bool
	ID     int
	Kind   Kind

	Pos  Vec2
	Size Vec2 // full extent, centre-anchored
	Rot  float64
	Z    int

	Sprite uint32 // texture handle; 0 = draw Fill shape instead
	Round  bool   // no-sprite fallback draws a circle instead of a rect
	Fill   Color
	Alpha  float64 // 0..1 render alpha

	Vel      Vec2
	Acc      Vec2
	MaxSpeed float64
	Health   int

	Collider Collider // Shape == ShapeNone when absent

	Holding   int     // weak ref to a carried entity
	DropTimer float64 // > 0: counting down to fade-out despawn

	Ingredient IngredientColor // KindIngredient / KindBin
	Dish       DishKind        // KindDish

	Cook     *Cook         // KindStove
	Customer *CustomerData // KindCustomer
	Seat     *SeatData     // KindSeat
}

// SeatData is the per-seat payload: occupancy plus weak links to the
// seated customer and the dish placed on its table.
type SeatData struct {
	Occupied   bool
	CustomerID int
	DishID     int
	DishOffset Vec2 // where a placed dish lands, relative to the seat
}

// ErrEntitiesFull signals allocation against a fully occupied registry.
// Callers log and skip the spawn; the frame continues.
var ErrEntitiesFull = errors.New("entity registry full")

// Allocate finds the first inactive slot by linear scan, overwrites it
// with tmpl and activates it. A collider on the template is registered
// into its mask's set. Returns ErrEntitiesFull when no slot is free.
func (g *Game) Allocate(tmpl Entity) (int, error) {
	for i := range g.Entities {
		if g.Entities[i].Active {
			continue
		}
		tmpl.Active = true
		tmpl.ID = i
		if tmpl.Alpha == 0 {
			tmpl.Alpha = 1
		}
		if tmpl.Holding == 0 {
			tmpl.Holding = NoEntity
		}
		if tmpl.Collider.Shape == ShapeCircle && tmpl.Size.X != tmpl.Size.Y {
			logger.Warn("circle entity with non-square size",
				zap.Int("id", i),
				zap.Float64("w", tmpl.Size.X),
				zap.Float64("h", tmpl.Size.Y))
		}
		g.Entities[i] = tmpl
		if tmpl.Collider.Shape != ShapeNone {
			if err := g.Sets[tmpl.Collider.Mask].Add(i); err != nil {
				g.Entities[i].Active = false
				return NoEntity, err
			}
		}
		return i, nil
	}
	logger.Error("entity registry full", zap.Int("capacity", MaxEntities))
	return NoEntity, ErrEntitiesFull
}

// Destroy soft-deletes: clears Active and drops the id from its mask
// set. Slot memory stays inert until reallocated, which is what makes
// stale weak references safe to probe.
func (g *Game) Destroy(id int) {
	if id < 0 || id >= MaxEntities {
		return
	}
	e := &g.Entities[id]
	if !e.Active {
		return
	}
	e.Active = false
	if e.Collider.Shape != ShapeNone {
		g.Sets[e.Collider.Mask].Remove(id)
	}
}

// Entity returns the live entity for a weak id, or nil when the slot is
// out of range or inactive.
func (g *Game) Entity(id int) *Entity {
	if id < 0 || id >= MaxEntities {
		return nil
	}
	e := &g.Entities[id]
	if !e.Active {
		return nil
	}
	return e
}

// EachOfKind calls fn for every active entity of the given kind, in
// slot order. fn may mutate other entities but must not reenter the
// iteration.
func (g *Game) EachOfKind(kind Kind, fn func(id int, e *Entity)) {
	for i := range g.Entities {
		e := &g.Entities[i]
		if e.Active && e.Kind == kind {
			fn(i, e)
		}
	}
}

// ActiveCount reports how many slots are live. Test and HUD helper.
func (g *Game) ActiveCount() int {
	n := 0
	for i := range g.Entities {
		if g.Entities[i].Active {
			n++
		}
	}
	return n
}
