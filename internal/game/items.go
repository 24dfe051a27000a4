package game

import "go.uber.org/zap"

// SpawnIngredient creates a loose ingredient of the given color.
func (g *Game) SpawnIngredient(color IngredientColor, pos Vec2) (int, error) {
	return g.Allocate(Entity{
		Kind:       KindIngredient,
		Pos:        pos,
		Size:       Vec2{14, 14},
		Z:          ZItems,
		Round:      true,
		Fill:       ingredientColorFill(color),
		Ingredient: color,
	})
}

// SpawnDish creates a plated dish.
func (g *Game) SpawnDish(kind DishKind, pos Vec2) (int, error) {
	return g.Allocate(Entity{
		Kind:  KindDish,
		Pos:   pos,
		Size:  Vec2{20, 20},
		Z:     ZItems,
		Round: true,
		Fill:  dishColor(kind),
		Dish:  kind,
	})
}

// isHeld reports whether the player is carrying the entity.
func (g *Game) isHeld(id int) bool {
	p := g.Entity(g.PlayerID)
	return p != nil && p.Holding == id
}

// tickDropDecay advances the fade-out countdown on a dropped item.
// Returns true when the entity expired and was destroyed.
func (g *Game) tickDropDecay(id int, e *Entity, dt float64) bool {
	if e.DropTimer <= 0 {
		return false
	}
	e.DropTimer -= dt
	if e.DropTimer <= 0 {
		g.Destroy(id)
		return true
	}
	e.Alpha = e.DropTimer / DropDecayTime
	return false
}

func updateIngredient(g *Game, id int, e *Entity, dt float64) {
	if !g.isHeld(id) {
		if g.tickDropDecay(id, e, dt) {
			return
		}
	}
	g.renderShape(e)
}

func updateDish(g *Game, id int, e *Entity, dt float64) {
	if !g.isHeld(id) && !g.dishOnSeat(id) {
		if g.tickDropDecay(id, e, dt) {
			return
		}
	}
	// Plate under the food.
	g.Queue.Push(RenderCmd{Kind: CmdCircle, Pos: e.Pos,
		Size: Vec2{e.Size.X * 1.4, e.Size.Y * 1.4}, Z: e.Z - 1,
		Color: Hex(0xE8E4DC).WithAlpha(alphaByte(e.Alpha))})
	g.renderShape(e)
}

// dishOnSeat reports whether some seat currently references the dish.
// Placed dishes do not decay.
func (g *Game) dishOnSeat(id int) bool {
	found := false
	g.EachOfKind(KindSeat, func(_ int, s *Entity) {
		if s.Seat != nil && s.Seat.DishID == id {
			found = true
		}
	})
	return found
}

func updateBin(g *Game, id int, e *Entity, dt float64) {
	g.Queue.Push(RenderCmd{Kind: CmdRect, Pos: e.Pos, Size: e.Size, Z: e.Z, Color: e.Fill})
	g.Queue.Push(RenderCmd{Kind: CmdCircle, Pos: e.Pos,
		Size: Vec2{e.Size.X * 0.55, e.Size.X * 0.55}, Z: e.Z + 1,
		Color: ingredientColorFill(e.Ingredient)})
}

func updateSeat(g *Game, id int, e *Entity, dt float64) {
	s := e.Seat
	if s == nil {
		logger.Warn("seat missing payload", zap.Int("id", id))
		return
	}
	// Defensive: a customer or dish destroyed out-of-band leaves a
	// stale weak ref. Drop it and move on.
	if s.Occupied && g.Entity(s.CustomerID) == nil {
		logger.Warn("seat occupied by dead customer", zap.Int("seat", id), zap.Int("customer", s.CustomerID))
		s.Occupied = false
		s.CustomerID = NoEntity
	}
	if s.DishID != NoEntity && g.Entity(s.DishID) == nil {
		s.DishID = NoEntity
	}

	// Table top, then the seat pad.
	g.Queue.Push(RenderCmd{Kind: CmdRectBorder, Pos: e.Pos, Size: e.Size, Z: e.Z,
		Color: e.Fill, Border: 3})
	g.Queue.Push(RenderCmd{Kind: CmdRect, Pos: e.Pos, Size: Vec2{e.Size.X - 6, e.Size.Y - 6},
		Z: e.Z, Color: Hex(0x6B4F35)})
}

func updateGeneric(g *Game, id int, e *Entity, dt float64) {
	if g.tickDropDecay(id, e, dt) {
		return
	}
	if e.Sprite != 0 || e.Size.X > 0 {
		g.renderShape(e)
	}
}

// renderShape enqueues the entity's default representation: its sprite
// if one is set, otherwise the flat shape + color fallback.
func (g *Game) renderShape(e *Entity) {
	if e.Sprite != 0 {
		g.Queue.Push(RenderCmd{Kind: CmdSprite, Pos: e.Pos, Size: e.Size, Z: e.Z,
			Rot: e.Rot, Alpha: e.Alpha, Tex: e.Sprite})
		return
	}
	c := e.Fill.WithAlpha(alphaByte(e.Alpha))
	if e.Round {
		g.Queue.Push(RenderCmd{Kind: CmdCircle, Pos: e.Pos, Size: e.Size, Z: e.Z, Color: c})
		return
	}
	g.Queue.Push(RenderCmd{Kind: CmdRect, Pos: e.Pos, Size: e.Size, Z: e.Z, Color: c})
}

func alphaByte(a float64) uint8 {
	return uint8(clampF(a, 0, 1) * 255)
}
