package game

import (
	"math"

	"go.uber.org/zap"
)

// Mood is the customer's finite state. Transitions only move forward:
// ordering can sour or be served, angry can still be served, eating
// ends with the customer leaving. Nothing ever returns to ordering.
type Mood int

const (
	MoodOrdering Mood = iota
	MoodAngry
	MoodEating
)

// Archetype picks the customer's attack pattern (and sprite) when
// angry.
type Archetype int

const (
	ArchSingle  Archetype = iota // one aimed shot
	ArchSpread                   // three-way spread
	ArchBarrage                  // rotating ring of shots

	numArchetypes // must stay last
)

// orderWeights is the discrete distribution customers order from.
var orderWeights = map[DishKind]float64{
	DishSalad: 0.4,
	DishSoup:  0.3,
	DishPie:   0.2,
	DishStew:  0.1,
}

// CustomerData is the customer payload: its seat, order and timers.
type CustomerData struct {
	SeatID    int // weak ref to the occupied seat
	Order     DishKind
	Mood      Mood
	Arch      Archetype
	Wait      float64 // ordering patience countdown
	Eat       float64 // eating countdown
	FireTimer float64
	RingAngle float64 // barrage rotation phase
}

// rollOrder draws from the order distribution.
func rollOrder(r *Rand) DishKind {
	kinds := []DishKind{DishSalad, DishSoup, DishPie, DishStew}
	weights := make([]float64, len(kinds))
	for i, k := range kinds {
		weights[i] = orderWeights[k]
	}
	return kinds[r.Weighted(weights)]
}

func archetypeFill(a Archetype) Color {
	switch a {
	case ArchSingle:
		return Hex(0xD9A14B)
	case ArchSpread:
		return Hex(0x4BA8D9)
	}
	return Hex(0xC94B8E) // barrage
}

// SpawnCustomer seats a new customer with a random archetype and order.
// Fails when the seat reference is dead, lacks its payload, or is
// already taken.
func (g *Game) SpawnCustomer(seatID int) (int, error) {
	seat := g.Entity(seatID)
	if seat == nil || seat.Kind != KindSeat || seat.Seat == nil || seat.Seat.Occupied {
		return NoEntity, nil
	}
	arch := Archetype(g.Rand.Intn(int(numArchetypes)))
	order := rollOrder(g.Rand)

	id, err := g.Allocate(Entity{
		Kind:   KindCustomer,
		Pos:    seat.Pos.Add(Vec2{0, -seat.Size.Y*0.5 - 14}),
		Size:   Vec2{26, 26},
		Z:      ZActors,
		Round:  true,
		Fill:   archetypeFill(arch),
		Sprite: g.sprite(customerSpriteName(arch)),
		Customer: &CustomerData{
			SeatID:    seatID,
			Order:     order,
			Mood:      MoodOrdering,
			Arch:      arch,
			Wait:      g.Tuning.CustomerWaitTime,
			Eat:       CustomerEatTime,
			FireTimer: fireInterval(arch),
		},
	})
	if err != nil {
		return NoEntity, err
	}
	seat.Seat.Occupied = true
	seat.Seat.CustomerID = id
	return id, nil
}

func customerSpriteName(a Archetype) string {
	switch a {
	case ArchSingle:
		return "customer_single"
	case ArchSpread:
		return "customer_spread"
	}
	return "customer_barrage"
}

func fireInterval(a Archetype) float64 {
	switch a {
	case ArchSingle:
		return FireIntervalOne
	case ArchSpread:
		return FireIntervalTri
	}
	return FireIntervalRing
}

func updateCustomer(g *Game, id int, e *Entity, dt float64) {
	cd := e.Customer
	if cd == nil {
		logger.Warn("customer missing payload", zap.Int("id", id))
		return
	}
	seat := g.Entity(cd.SeatID)
	if seat == nil || seat.Seat == nil {
		logger.Warn("customer with dead seat", zap.Int("id", id), zap.Int("seat", cd.SeatID))
		return
	}

	switch cd.Mood {
	case MoodOrdering:
		if g.checkServedDish(cd, seat) {
			break
		}
		cd.Wait -= dt
		if cd.Wait <= 0 {
			cd.Mood = MoodAngry
			PlaySound(SoundAngry)
		}
	case MoodAngry:
		if g.checkServedDish(cd, seat) {
			break
		}
		g.customerFire(e, cd, dt)
	case MoodEating:
		cd.Eat -= dt
		if cd.Eat <= 0 {
			g.finishEating(id, cd, seat)
			return
		}
	}

	g.renderCustomer(e, cd, seat)
}

// checkServedDish inspects the seat's placed dish. A matching order
// moves the customer to eating (from ordering or angry alike); a
// mismatch throws the plate and sours the mood.
func (g *Game) checkServedDish(cd *CustomerData, seat *Entity) bool {
	dish := g.Entity(seat.Seat.DishID)
	if dish == nil {
		return false
	}
	if dish.Dish == cd.Order {
		cd.Mood = MoodEating
		PlaySound(SoundEat)
		return true
	}
	// Wrong order: the plate gets ejected.
	g.Destroy(seat.Seat.DishID)
	seat.Seat.DishID = NoEntity
	if cd.Mood != MoodAngry {
		cd.Mood = MoodAngry
		PlaySound(SoundAngry)
	}
	return false
}

func (g *Game) finishEating(id int, cd *CustomerData, seat *Entity) {
	if seat.Seat.DishID != NoEntity {
		g.Destroy(seat.Seat.DishID)
		seat.Seat.DishID = NoEntity
	}
	seat.Seat.Occupied = false
	seat.Seat.CustomerID = NoEntity
	g.Score += dishScore(cd.Order)
	g.Destroy(id)
}

// customerFire runs the archetype attack pattern, but only while the
// player stays outside the safe radius.
func (g *Game) customerFire(e *Entity, cd *CustomerData, dt float64) {
	if cd.Arch == ArchBarrage {
		cd.RingAngle += BarrageTurnRate * dt
	}
	player := g.Entity(g.PlayerID)
	if player == nil {
		return
	}
	if player.Pos.Sub(e.Pos).Len() <= CustomerSafeDist {
		return
	}
	cd.FireTimer -= dt
	if cd.FireTimer > 0 {
		return
	}
	cd.FireTimer = fireInterval(cd.Arch)

	aim := player.Pos.Sub(e.Pos).Normalize()
	switch cd.Arch {
	case ArchSingle:
		g.SpawnProjectile(e.Pos, aim.Scale(ProjectileSpeed))
	case ArchSpread:
		for _, a := range []float64{-TriSpreadRad, 0, TriSpreadRad} {
			g.SpawnProjectile(e.Pos, aim.Rotate(a).Scale(ProjectileSpeed))
		}
	case ArchBarrage:
		dir := Vec2{math.Cos(cd.RingAngle), math.Sin(cd.RingAngle)}
		g.SpawnProjectile(e.Pos, dir.Scale(ProjectileSpeed))
	}
	PlaySound(SoundThrow)
}

func (g *Game) renderCustomer(e *Entity, cd *CustomerData, seat *Entity) {
	g.renderShape(e)

	switch cd.Mood {
	case MoodOrdering:
		// Speech bubble with the wanted dish and a patience bar.
		bubble := e.Pos.Add(Vec2{0, -e.Size.Y - 6})
		g.Queue.Push(RenderCmd{Kind: CmdRectBorder, Pos: bubble, Size: Vec2{26, 24},
			Z: e.Z + 2, Color: Hex(0xF2EFE8), Border: 2})
		g.Queue.Push(RenderCmd{Kind: CmdCircle, Pos: bubble, Size: Vec2{14, 14},
			Z: e.Z + 3, Color: dishColor(cd.Order)})
		frac := clampF(cd.Wait/g.Tuning.CustomerWaitTime, 0, 1)
		g.Queue.Push(RenderCmd{Kind: CmdRect,
			Pos:  bubble.Add(Vec2{0, 15}),
			Size: Vec2{26 * frac, 3}, Z: e.Z + 3, Color: patienceColor(frac)})
	case MoodAngry:
		g.Queue.Push(RenderCmd{Kind: CmdCircle, Pos: e.Pos,
			Size: Vec2{e.Size.X + 8, e.Size.Y + 8}, Z: e.Z - 1,
			Color: Hex(0xD7443E).WithAlpha(110)})
	case MoodEating:
		frac := clampF(cd.Eat/CustomerEatTime, 0, 1)
		g.Queue.Push(RenderCmd{Kind: CmdRect,
			Pos:  e.Pos.Add(Vec2{0, -e.Size.Y*0.5 - 5}),
			Size: Vec2{22 * frac, 3}, Z: e.Z + 2, Color: Hex(0x7BC950)})
	}
}

func patienceColor(frac float64) Color {
	if frac > 0.6 {
		return Hex(0x3CDC3C)
	}
	if frac > 0.3 {
		return Hex(0xDCDC3C)
	}
	return Hex(0xDC3C3C)
}
