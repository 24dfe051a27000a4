package game

// buildKitchen lays out the static diner: border walls, the seat row,
// the ingredient bins and the stoves, then drops the player in the
// middle. All furniture carries terrain-mask box colliders.
func (g *Game) buildKitchen() {
	wallFill := Hex(0x3A3F4A)
	const wallT = 16.0

	wall := func(pos, size Vec2) {
		g.Allocate(Entity{
			Kind:     KindGeneric,
			Pos:      pos,
			Size:     size,
			Z:        ZFurniture,
			Fill:     wallFill,
			Collider: BoxCollider(Vec2{size.X / 2, size.Y / 2}, MaskTerrain),
		})
	}

	// Floor, then the four border walls.
	g.Allocate(Entity{
		Kind: KindGeneric,
		Pos:  Vec2{g.W / 2, g.H / 2},
		Size: Vec2{g.W, g.H},
		Z:    ZFloor,
		Fill: Hex(0x8A7660),
	})
	wall(Vec2{g.W / 2, wallT / 2}, Vec2{g.W, wallT})
	wall(Vec2{g.W / 2, g.H - wallT/2}, Vec2{g.W, wallT})
	wall(Vec2{wallT / 2, g.H / 2}, Vec2{wallT, g.H})
	wall(Vec2{g.W - wallT/2, g.H / 2}, Vec2{wallT, g.H})

	// Seat row along the top. Dishes land on the player-facing edge.
	const seatSize = 48.0
	seatY := wallT + 70
	for i := 0; i < 4; i++ {
		x := g.W*0.2 + float64(i)*g.W*0.2
		g.Allocate(Entity{
			Kind:     KindSeat,
			Pos:      Vec2{x, seatY},
			Size:     Vec2{seatSize, seatSize},
			Z:        ZFurniture,
			Fill:     Hex(0x50391F),
			Collider: BoxCollider(Vec2{seatSize / 2, seatSize / 2}, MaskTerrain),
			Seat: &SeatData{
				CustomerID: NoEntity,
				DishID:     NoEntity,
				DishOffset: Vec2{0, seatSize/2 + 14},
			},
		})
	}

	// Ingredient bins down the left wall, one per color.
	const binSize = 40.0
	for i := 0; i < int(numIngredientColors); i++ {
		g.Allocate(Entity{
			Kind:       KindBin,
			Pos:        Vec2{wallT + 46, g.H*0.35 + float64(i)*64},
			Size:       Vec2{binSize, binSize},
			Z:          ZFurniture,
			Fill:       Hex(0x5A5E68),
			Ingredient: IngredientColor(i),
			Collider:   BoxCollider(Vec2{binSize / 2, binSize / 2}, MaskTerrain),
		})
	}

	// Two stoves along the bottom.
	const stoveSize = 52.0
	for i := 0; i < 2; i++ {
		g.Allocate(Entity{
			Kind:     KindStove,
			Pos:      Vec2{g.W*0.4 + float64(i)*g.W*0.2, g.H - wallT - 60},
			Size:     Vec2{stoveSize, stoveSize},
			Z:        ZFurniture,
			Fill:     Hex(0x44474F),
			Collider: BoxCollider(Vec2{stoveSize / 2, stoveSize / 2}, MaskTerrain),
			Cook:     &Cook{DishID: NoEntity},
		})
	}

	g.SpawnPlayer(Vec2{g.W / 2, g.H / 2})
}
