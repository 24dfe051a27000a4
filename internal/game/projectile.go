package game

import "go.uber.org/zap"

// SpawnProjectile launches a thrown object at constant velocity.
func (g *Game) SpawnProjectile(pos, vel Vec2) (int, error) {
	id, err := g.Allocate(Entity{
		Kind:     KindProjectile,
		Pos:      pos,
		Size:     Vec2{ProjectileSize, ProjectileSize},
		Z:        ZProjectile,
		Round:    true,
		Fill:     Hex(0xF0E6D2),
		Vel:      vel,
		Collider: CircleCollider(ProjectileSize/2, MaskProjectile),
	})
	if err != nil {
		logger.Error("projectile spawn failed", zap.Error(err))
	}
	return id, err
}

func updateProjectile(g *Game, id int, e *Entity, dt float64) {
	e.Pos = e.Pos.Add(e.Vel.Scale(dt))

	// Despawn outside the playfield plus a margin.
	if e.Pos.X < -ProjectileMargin || e.Pos.X > g.W+ProjectileMargin ||
		e.Pos.Y < -ProjectileMargin || e.Pos.Y > g.H+ProjectileMargin {
		g.Destroy(id)
		return
	}

	// First hit wins. The scan covers the player and terrain sets, so
	// thrown plates shatter on walls and furniture as readily as on the
	// player. Projectiles never collide with each other; a spread
	// volley launches three from the same point and all must fly.
	for m := Mask(0); m < maskCount; m++ {
		if m == MaskProjectile {
			continue
		}
		set := &g.Sets[m]
		for i := 0; i < set.Len(); i++ {
			other := g.Entity(set.At(i))
			if other == nil {
				continue
			}
			if _, hit := Collide(e, other); hit {
				if other.Health > 0 {
					other.Health--
					if other.Kind == KindPlayer {
						PlaySound(SoundHit)
						if other.Health == 0 {
							g.gameOver()
						}
					}
				}
				g.Destroy(id)
				return
			}
		}
	}

	g.renderShape(e)
}
