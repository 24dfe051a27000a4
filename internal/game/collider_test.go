package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func circleEnt(x, y, r float64) *Entity {
	return &Entity{Active: true, Pos: Vec2{x, y}, Collider: CircleCollider(r, MaskPlayer)}
}

func boxEnt(x, y, hx, hy float64) *Entity {
	return &Entity{Active: true, Pos: Vec2{x, y}, Collider: BoxCollider(Vec2{hx, hy}, MaskTerrain)}
}

func TestCircleCircleContact(t *testing.T) {
	a := circleEnt(0, 0, 64)
	b := circleEnt(100, 0, 64)

	c, ok := Collide(a, b)
	require.True(t, ok)
	require.InDelta(t, 28.0, c.Depth, 1e-9)
	require.InDelta(t, 1.0, c.Normal.Len(), 1e-9)
	// Normal points from b toward a.
	require.InDelta(t, -1.0, c.Normal.X, 1e-9)
	require.InDelta(t, 0.0, c.Normal.Y, 1e-9)
}

func TestCircleCircleSeparated(t *testing.T) {
	a := circleEnt(0, 0, 64)
	b := circleEnt(130, 0, 64)
	_, ok := Collide(a, b)
	require.False(t, ok)
}

func TestBoxBoxSmallerAxisWins(t *testing.T) {
	a := boxEnt(0, 0, 50, 50)
	b := boxEnt(80, 10, 50, 50)

	c, ok := Collide(a, b)
	require.True(t, ok)
	// x overlap 20, y overlap 90: x axis separates.
	require.InDelta(t, 20.0, c.Depth, 1e-9)
	require.Equal(t, Vec2{-1, 0}, c.Normal)

	// Swapping argument order flips the normal, not the depth.
	c2, ok := Collide(b, a)
	require.True(t, ok)
	require.InDelta(t, 20.0, c2.Depth, 1e-9)
	require.Equal(t, Vec2{1, 0}, c2.Normal)
}

func TestBoxBoxTieTakesYAxis(t *testing.T) {
	a := boxEnt(0, 0, 50, 50)
	b := boxEnt(60, 60, 50, 50)

	c, ok := Collide(a, b)
	require.True(t, ok)
	require.InDelta(t, 40.0, c.Depth, 1e-9)
	require.Equal(t, Vec2{0, -1}, c.Normal)
}

func TestCircleBoxContact(t *testing.T) {
	circle := circleEnt(0, 0, 30)
	box := boxEnt(70, 0, 50, 50)

	c, ok := Collide(circle, box)
	require.True(t, ok)
	require.InDelta(t, 10.0, c.Depth, 1e-9)
	require.Equal(t, Vec2{-1, 0}, c.Normal)

	// Box-first order flips the normal.
	c2, ok := Collide(box, circle)
	require.True(t, ok)
	require.InDelta(t, 10.0, c2.Depth, 1e-9)
	require.Equal(t, Vec2{1, 0}, c2.Normal)
}

func TestCircleBoxDegenerateCentreOnSurface(t *testing.T) {
	// Circle centre exactly on the box's right edge: the closest-point
	// delta is zero, so the documented +y fallback applies.
	circle := circleEnt(50, 0, 12)
	box := boxEnt(0, 0, 50, 50)

	c, ok := Collide(circle, box)
	require.True(t, ok)
	require.Equal(t, Vec2{0, 1}, c.Normal)
	require.InDelta(t, 12.0, c.Depth, 1e-9)
}

func TestCollideWithoutColliderIsNoContact(t *testing.T) {
	bare := &Entity{Active: true, Pos: Vec2{0, 0}}
	c := circleEnt(0, 0, 10)

	_, ok := Collide(bare, c)
	require.False(t, ok)
	_, ok = Collide(c, bare)
	require.False(t, ok)
	_, ok = Collide(nil, c)
	require.False(t, ok)
}

func TestColliderSetRoundTrip(t *testing.T) {
	var s ColliderSet
	require.NoError(t, s.Add(4))
	require.NoError(t, s.Add(7))
	require.NoError(t, s.Add(9))

	require.NoError(t, s.Add(5))
	s.Remove(5)

	// Membership is restored as a set; swap-remove may reorder.
	require.Equal(t, 3, s.Len())
	require.True(t, s.Contains(4))
	require.True(t, s.Contains(7))
	require.True(t, s.Contains(9))
	require.False(t, s.Contains(5))
}

func TestColliderSetRemoveAbsentIsNoop(t *testing.T) {
	var s ColliderSet
	require.NoError(t, s.Add(1))
	s.Remove(99)
	require.Equal(t, 1, s.Len())
	require.True(t, s.Contains(1))
}

func TestColliderSetFull(t *testing.T) {
	var s ColliderSet
	for i := 0; i < MaxEntities; i++ {
		require.NoError(t, s.Add(i))
	}
	require.ErrorIs(t, s.Add(MaxEntities), ErrColliderSetFull)
	require.Equal(t, MaxEntities, s.Len())
}
