package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProjectileDespawnsPastMargin(t *testing.T) {
	g := newBareGame()
	id, err := g.SpawnProjectile(Vec2{g.W - 10, 300}, Vec2{ProjectileSpeed, 0})
	require.NoError(t, err)

	stepGame(g, 3, 0.1)
	require.NotNil(t, g.Entity(id), "still inside the margin band")

	travel := (ProjectileMargin + 20) / (ProjectileSpeed * 0.1)
	stepGame(g, int(travel)+1, 0.1)
	require.Nil(t, g.Entity(id))
	require.Equal(t, 0, g.Sets[MaskProjectile].Len())
}

func TestProjectilesFlyThroughEachOther(t *testing.T) {
	g := newBareGame()
	origin := Vec2{300, 300}
	aim := Vec2{1, 0}
	for _, a := range []float64{-TriSpreadRad, 0, TriSpreadRad} {
		_, err := g.SpawnProjectile(origin, aim.Rotate(a).Scale(ProjectileSpeed))
		require.NoError(t, err)
	}

	// The launch frame is the worst case: all three overlap at the
	// origin before the spread opens up.
	stepGame(g, 1, 0.1)
	require.Equal(t, 3, countProjectiles(g))

	stepGame(g, 5, 0.1)
	require.Equal(t, 3, countProjectiles(g))
}

func TestProjectileHitDecrementsPlayerHealth(t *testing.T) {
	g := newBareGame()
	pid, err := g.SpawnPlayer(Vec2{400, 300})
	require.NoError(t, err)
	g.In.Cursor = Vec2{400, 300}

	proj, err := g.SpawnProjectile(Vec2{380, 300}, Vec2{ProjectileSpeed, 0})
	require.NoError(t, err)

	stepGame(g, 1, 0.1)

	require.Equal(t, 2, g.Entity(pid).Health)
	require.Nil(t, g.Entity(proj), "projectile is spent on impact")
	require.False(t, g.Over)
}

func TestProjectileShattersOnTerrain(t *testing.T) {
	g := newBareGame()
	_, err := g.Allocate(Entity{
		Kind:     KindGeneric,
		Pos:      Vec2{400, 300},
		Size:     Vec2{40, 200},
		Collider: BoxCollider(Vec2{20, 100}, MaskTerrain),
	})
	require.NoError(t, err)

	proj, err := g.SpawnProjectile(Vec2{370, 300}, Vec2{ProjectileSpeed, 0})
	require.NoError(t, err)

	stepGame(g, 1, 0.1)
	require.Nil(t, g.Entity(proj))
}

func TestProjectileKillingBlowEndsTheGame(t *testing.T) {
	g := newBareGame()
	pid, err := g.SpawnPlayer(Vec2{400, 300})
	require.NoError(t, err)
	g.In.Cursor = Vec2{400, 300}
	g.Entity(pid).Health = 1

	_, err = g.SpawnProjectile(Vec2{380, 300}, Vec2{ProjectileSpeed, 0})
	require.NoError(t, err)

	stepGame(g, 1, 0.1)

	require.Equal(t, 0, g.Entity(pid).Health)
	require.True(t, g.Over)
}
