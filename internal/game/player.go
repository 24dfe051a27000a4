package game

import "go.uber.org/zap"

// SpawnPlayer creates the player at pos with full health.
func (g *Game) SpawnPlayer(pos Vec2) (int, error) {
	id, err := g.Allocate(Entity{
		Kind:     KindPlayer,
		Pos:      pos,
		Size:     Vec2{PlayerSize, PlayerSize},
		Z:        ZActors,
		Round:    true,
		Fill:     Hex(0xF5F5F0),
		MaxSpeed: PlayerMaxSpeed,
		Health:   3,
		Collider: CircleCollider(PlayerSize/2, MaskPlayer),
	})
	if err != nil {
		return NoEntity, err
	}
	g.PlayerID = id
	g.Hands = pos
	return id, nil
}

func updatePlayer(g *Game, id int, e *Entity, dt float64) {
	in := &g.In

	// Accelerate toward held directions, decelerate toward zero
	// otherwise, one axis at a time.
	switch {
	case in.Left && !in.Right:
		e.Vel.X -= PlayerAccel * dt
	case in.Right && !in.Left:
		e.Vel.X += PlayerAccel * dt
	default:
		e.Vel.X = approach(e.Vel.X, 0, PlayerDecel*dt)
	}
	switch {
	case in.Up && !in.Down:
		e.Vel.Y -= PlayerAccel * dt
	case in.Down && !in.Up:
		e.Vel.Y += PlayerAccel * dt
	default:
		e.Vel.Y = approach(e.Vel.Y, 0, PlayerDecel*dt)
	}

	if m := e.Vel.Len(); m > e.MaxSpeed {
		e.Vel = e.Vel.Scale(e.MaxSpeed / m)
	}
	e.Pos = e.Pos.Add(e.Vel.Scale(dt))

	g.resolveTerrain(e)
	e.Pos = e.Pos.Clamp(Vec2{PlayerSize / 2, PlayerSize / 2},
		Vec2{g.W - PlayerSize/2, g.H - PlayerSize/2})

	g.updateHands(e, dt)
	g.carryHeld(e)

	if in.RightClicked() {
		if stove := g.hoveredStove(); stove != nil && g.StoveBeginCook(stove.ID) {
			in.ConsumeRightClick()
		}
	}
	if in.Clicked() {
		if e.Holding != NoEntity {
			g.tryDrop(e)
		} else {
			g.tryPickup(e)
		}
	}

	g.renderShape(e)
	g.Queue.Push(RenderCmd{Kind: CmdCircle, Pos: g.Hands, Size: Vec2{10, 10},
		Z: e.Z + 1, Color: Hex(0xF5F5F0).WithAlpha(200)})
}

// resolveTerrain pushes the player out of every overlapping terrain
// collider and kills the velocity component into the surface. Inelastic
// contact, no bounce.
func (g *Game) resolveTerrain(e *Entity) {
	set := &g.Sets[MaskTerrain]
	for i := 0; i < set.Len(); i++ {
		other := g.Entity(set.At(i))
		if other == nil {
			continue
		}
		c, hit := Collide(e, other)
		if !hit {
			continue
		}
		e.Pos = e.Pos.Add(c.Normal.Scale(c.Depth))
		if vn := e.Vel.Dot(c.Normal); vn < 0 {
			e.Vel = e.Vel.Sub(c.Normal.Scale(vn))
		}
	}
}

// updateHands moves the tethered hands cursor toward the mouse at a
// capped speed, then clamps it within reach of the player.
func (g *Game) updateHands(e *Entity, dt float64) {
	to := g.In.Cursor.Sub(g.Hands)
	if d := to.Len(); d > 0 {
		step := HandsSpeed * dt
		if step > d {
			step = d
		}
		g.Hands = g.Hands.Add(to.Scale(step / d))
	}
	off := g.Hands.Sub(e.Pos)
	if d := off.Len(); d > HandsRange {
		g.Hands = e.Pos.Add(off.Scale(HandsRange / d))
	}
}

// carryHeld keeps the held item pinned to the hands. A held entity
// destroyed out-of-band just clears the weak ref.
func (g *Game) carryHeld(e *Entity) {
	if e.Holding == NoEntity {
		return
	}
	held := g.Entity(e.Holding)
	if held == nil {
		logger.Warn("held entity is gone", zap.Int("held", e.Holding))
		e.Holding = NoEntity
		return
	}
	held.Pos = g.Hands
	held.DropTimer = 0
	held.Alpha = 1
}

// hoveredStove returns the stove under the hands, if any.
func (g *Game) hoveredStove() *Entity {
	var found *Entity
	g.EachOfKind(KindStove, func(_ int, e *Entity) {
		if found != nil {
			return
		}
		if withinBounds(g.Hands, e, HandsReach) {
			found = e
		}
	})
	return found
}

// hoveredSeat returns the seat under the hands, if any.
func (g *Game) hoveredSeat() *Entity {
	var found *Entity
	g.EachOfKind(KindSeat, func(_ int, e *Entity) {
		if found != nil {
			return
		}
		if withinBounds(g.Hands, e, HandsReach) {
			found = e
		}
	})
	return found
}

func withinBounds(p Vec2, e *Entity, slack float64) bool {
	return absF(p.X-e.Pos.X) <= e.Size.X/2+slack &&
		absF(p.Y-e.Pos.Y) <= e.Size.Y/2+slack
}

// tryDrop attempts context-sensitive placement of the held entity:
// ingredients go into a hovered idle stove, dishes onto a hovered
// occupied seat without a plate. A drop that fails every check lands
// on the floor and starts the decay countdown.
func (g *Game) tryDrop(p *Entity) {
	held := g.Entity(p.Holding)
	if held == nil {
		logger.Warn("drop of dead entity", zap.Int("held", p.Holding))
		p.Holding = NoEntity
		return
	}

	if held.Kind == KindIngredient {
		if stove := g.hoveredStove(); stove != nil && g.StoveAddIngredient(stove.ID, held.Ingredient) {
			g.Destroy(held.ID)
			p.Holding = NoEntity
			g.In.ConsumeClick()
			PlaySound(SoundDrop)
			return
		}
	}
	if held.Kind == KindDish {
		if seat := g.hoveredSeat(); seat != nil && seat.Seat != nil &&
			seat.Seat.Occupied && seat.Seat.DishID == NoEntity {
			seat.Seat.DishID = held.ID
			held.Pos = seat.Pos.Add(seat.Seat.DishOffset)
			p.Holding = NoEntity
			g.In.ConsumeClick()
			PlaySound(SoundDrop)
			return
		}
	}

	// Nowhere sensible: it goes on the floor and starts fading.
	held.Pos = g.Hands
	held.DropTimer = DropDecayTime
	p.Holding = NoEntity
	g.In.ConsumeClick()
	PlaySound(SoundDrop)
}

// tryPickup searches the hands' reach for something to grab: a bin
// dispenses a fresh ingredient, a finished stove hands over its dish,
// loose items come straight off the floor.
func (g *Game) tryPickup(p *Entity) {
	// Ingredient bins dispense on click.
	var bin *Entity
	g.EachOfKind(KindBin, func(_ int, e *Entity) {
		if bin == nil && withinBounds(g.Hands, e, HandsReach) {
			bin = e
		}
	})
	if bin != nil {
		id, err := g.SpawnIngredient(bin.Ingredient, g.Hands)
		if err != nil {
			return
		}
		p.Holding = id
		g.In.ConsumeClick()
		PlaySound(SoundPickup)
		return
	}

	// Finished stove: take the dish.
	if stove := g.hoveredStove(); stove != nil && stove.Cook != nil &&
		stove.Cook.State == CookReady {
		if dish := g.Entity(stove.Cook.DishID); dish != nil {
			p.Holding = dish.ID
			stove.Cook.DishID = NoEntity
			stove.Cook.State = CookIdle
			g.In.ConsumeClick()
			PlaySound(SoundPickup)
			return
		}
	}

	// Loose ingredients and dishes on the floor.
	var best *Entity
	bestD := HandsReach
	pick := func(_ int, e *Entity) {
		if g.dishOnSeat(e.ID) {
			return
		}
		if d := e.Pos.Sub(g.Hands).Len(); d < bestD {
			bestD = d
			best = e
		}
	}
	g.EachOfKind(KindIngredient, pick)
	g.EachOfKind(KindDish, pick)
	if best != nil {
		best.DropTimer = 0
		best.Alpha = 1
		p.Holding = best.ID
		g.In.ConsumeClick()
		PlaySound(SoundPickup)
	}
}
