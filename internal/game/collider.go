package game

import (
	"errors"

	"go.uber.org/zap"
)

// ShapeKind tags a collider's geometry. ShapeNone marks "no collider".
type ShapeKind int

const (
	ShapeNone ShapeKind = iota
	ShapeCircle
	ShapeBox
)

// Mask selects which registry list a collider is tracked in.
type Mask int

const (
	MaskPlayer Mask = iota
	MaskTerrain
	MaskProjectile

	maskCount // must stay last
)

// Collider is carried by value inside an Entity. Circle uses Radius,
// box uses Half (half-extents). Position comes from the owning entity.
type Collider struct {
	Shape  ShapeKind
	Radius float64
	Half   Vec2
	Mask   Mask
}

func CircleCollider(radius float64, mask Mask) Collider {
	return Collider{Shape: ShapeCircle, Radius: radius, Mask: mask}
}

func BoxCollider(half Vec2, mask Mask) Collider {
	return Collider{Shape: ShapeBox, Half: half, Mask: mask}
}

// Contact describes one resolved narrow-phase overlap. Normal is unit
// length and points from the second argument toward the first, so the
// first entity separates by moving along it.
type Contact struct {
	Normal Vec2
	Depth  float64
}

// ErrColliderSetFull signals a broken capacity invariant: the set bound
// equals the entity cap, so a full set means ids are leaking.
var ErrColliderSetFull = errors.New("collider set full")

// ColliderSet is one mask's membership list: a fixed array of entity
// ids with swap-remove. Order is not preserved and never matters.
type ColliderSet struct {
	ids [MaxEntities]int
	n   int
}

func (s *ColliderSet) Len() int { return s.n }

func (s *ColliderSet) At(i int) int { return s.ids[i] }

func (s *ColliderSet) Add(id int) error {
	if s.n >= MaxEntities {
		logger.Error("collider set full", zap.Int("id", id))
		return ErrColliderSetFull
	}
	s.ids[s.n] = id
	s.n++
	return nil
}

// Remove drops id from the set by swap-remove. A missing id is a
// defensive warn + no-op; it means a double remove happened upstream.
func (s *ColliderSet) Remove(id int) {
	for i := 0; i < s.n; i++ {
		if s.ids[i] == id {
			s.n--
			s.ids[i] = s.ids[s.n]
			return
		}
	}
	logger.Warn("collider set remove: id not present", zap.Int("id", id))
}

// Contains reports membership. Linear scan; the sets are small.
func (s *ColliderSet) Contains(id int) bool {
	for i := 0; i < s.n; i++ {
		if s.ids[i] == id {
			return true
		}
	}
	return false
}

// Collide runs the narrow-phase test between two entities. Either
// entity lacking a collider means no contact, not an error.
func Collide(a, b *Entity) (Contact, bool) {
	if a == nil || b == nil || a.Collider.Shape == ShapeNone || b.Collider.Shape == ShapeNone {
		return Contact{}, false
	}
	switch {
	case a.Collider.Shape == ShapeCircle && b.Collider.Shape == ShapeCircle:
		return circleCircle(a.Pos, a.Collider.Radius, b.Pos, b.Collider.Radius)
	case a.Collider.Shape == ShapeCircle && b.Collider.Shape == ShapeBox:
		return circleBox(a.Pos, a.Collider.Radius, b.Pos, b.Collider.Half)
	case a.Collider.Shape == ShapeBox && b.Collider.Shape == ShapeCircle:
		c, ok := circleBox(b.Pos, b.Collider.Radius, a.Pos, a.Collider.Half)
		if ok {
			c.Normal = c.Normal.Scale(-1)
		}
		return c, ok
	default:
		return boxBox(a.Pos, a.Collider.Half, b.Pos, b.Collider.Half)
	}
}

func circleCircle(pa Vec2, ra float64, pb Vec2, rb float64) (Contact, bool) {
	d := pa.Sub(pb)
	m := d.Len()
	sum := ra + rb
	if m >= sum {
		return Contact{}, false
	}
	if m == 0 {
		// Coincident centres: no direction to separate along; push +y.
		return Contact{Normal: Vec2{0, 1}, Depth: sum}, true
	}
	return Contact{Normal: d.Scale(1 / m), Depth: sum - m}, true
}

func circleBox(pc Vec2, r float64, pb Vec2, half Vec2) (Contact, bool) {
	rel := pc.Sub(pb)
	closest := rel.Clamp(Vec2{-half.X, -half.Y}, half)
	d := rel.Sub(closest)
	m := d.Len()
	if m >= r {
		return Contact{}, false
	}
	if m == 0 {
		// Centre exactly on the box surface (or inside after the clamp
		// saturated). Direction is undefined; fall back to +y so the
		// response stays deterministic.
		return Contact{Normal: Vec2{0, 1}, Depth: r}, true
	}
	return Contact{Normal: d.Scale(1 / m), Depth: r - m}, true
}

func boxBox(pa, ha, pb, hb Vec2) (Contact, bool) {
	d := pa.Sub(pb)
	overlapX := ha.X + hb.X - absF(d.X)
	overlapY := ha.Y + hb.Y - absF(d.Y)
	if overlapX <= 0 || overlapY <= 0 {
		return Contact{}, false
	}
	// Minimum translation vector: separate along the axis with the
	// smaller overlap. Ties take the y axis.
	if overlapX < overlapY {
		n := Vec2{1, 0}
		if d.X < 0 {
			n.X = -1
		}
		return Contact{Normal: n, Depth: overlapX}, true
	}
	n := Vec2{0, 1}
	if d.Y < 0 {
		n.Y = -1
	}
	return Contact{Normal: n, Depth: overlapY}, true
}

func absF(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
