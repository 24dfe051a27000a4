package game

import (
	"math"

	"go.uber.org/zap"
)

// DishKind is what a finished cook produces.
type DishKind int

const (
	DishNone DishKind = iota
	DishSalad
	DishSoup
	DishPie
	DishStew
	DishBurnt // fallback when no recipe matches

	numDishKinds // must stay last
)

func (d DishKind) String() string {
	switch d {
	case DishSalad:
		return "salad"
	case DishSoup:
		return "soup"
	case DishPie:
		return "pie"
	case DishStew:
		return "stew"
	case DishBurnt:
		return "burnt"
	}
	return "none"
}

// recipe matches an exact, order-independent multiset of ingredient
// colors against a dish.
type recipe struct {
	counts [numIngredientColors]int
	dish   DishKind
}

var recipes = []recipe{
	{counts: [numIngredientColors]int{1, 1, 0, 0}, dish: DishSalad}, // red + green
	{counts: [numIngredientColors]int{2, 0, 0, 0}, dish: DishSoup},  // red + red
	{counts: [numIngredientColors]int{0, 0, 1, 1}, dish: DishPie},   // blue + purple
	{counts: [numIngredientColors]int{0, 2, 1, 0}, dish: DishStew},  // green x2 + blue
}

// resolveRecipe maps an ingredient multiset to a dish. Pure function of
// the counts; unmatched multisets burn.
func resolveRecipe(counts [numIngredientColors]int) DishKind {
	for _, r := range recipes {
		if r.counts == counts {
			return r.dish
		}
	}
	return DishBurnt
}

func dishColor(d DishKind) Color {
	switch d {
	case DishSalad:
		return Hex(0x7BC950)
	case DishSoup:
		return Hex(0xE05038)
	case DishPie:
		return Hex(0x9B6FD0)
	case DishStew:
		return Hex(0x4E9A8C)
	}
	return Hex(0x4A3B2A) // burnt
}

func dishScore(d DishKind) int {
	switch d {
	case DishSalad:
		return 10
	case DishSoup:
		return 15
	case DishPie:
		return 20
	case DishStew:
		return 25
	}
	return 0
}

func ingredientColorFill(c IngredientColor) Color {
	switch c {
	case IngredientRed:
		return Hex(0xD7443E)
	case IngredientGreen:
		return Hex(0x5BBF4C)
	case IngredientBlue:
		return Hex(0x3E7BD7)
	}
	return Hex(0x8E4CC9) // purple
}

// CookState is the stove's finite state.
type CookState int

const (
	CookIdle CookState = iota
	CookCooking
	CookReady
)

// Cook is the stove payload: accumulated ingredients, the cook timer
// and the animation phases.
type Cook struct {
	State       CookState
	Ingredients [MaxStoveIngredients]IngredientColor
	Count       int
	Timer       float64
	Spin        float64 // ingredient orbit phase while cooking
	Flicker     float64 // fire flicker phase
	DishID      int     // weak ref to the finished dish while ready
}

// StoveAddIngredient drops one ingredient color into an idle stove.
// Returns false when the stove is cooking, already holds a dish, or is
// at the ingredient bound.
func (g *Game) StoveAddIngredient(stoveID int, color IngredientColor) bool {
	e := g.Entity(stoveID)
	if e == nil || e.Kind != KindStove {
		return false
	}
	if e.Cook == nil {
		logger.Warn("stove missing cook payload", zap.Int("id", stoveID))
		return false
	}
	c := e.Cook
	if c.State != CookIdle || c.Count >= MaxStoveIngredients {
		return false
	}
	c.Ingredients[c.Count] = color
	c.Count++
	return true
}

// StoveBeginCook starts the fixed cook timer. Requires an idle stove
// with at least one ingredient.
func (g *Game) StoveBeginCook(stoveID int) bool {
	e := g.Entity(stoveID)
	if e == nil || e.Kind != KindStove {
		return false
	}
	if e.Cook == nil {
		logger.Warn("stove missing cook payload", zap.Int("id", stoveID))
		return false
	}
	c := e.Cook
	if c.State != CookIdle || c.Count == 0 {
		return false
	}
	c.State = CookCooking
	c.Timer = g.Tuning.StoveCookTime
	c.Spin = 0
	c.Flicker = 0
	PlaySound(SoundSizzle)
	return true
}

func updateStove(g *Game, id int, e *Entity, dt float64) {
	c := e.Cook
	if c == nil {
		logger.Warn("stove missing cook payload", zap.Int("id", id))
		return
	}

	switch c.State {
	case CookCooking:
		c.Spin += StoveSpinRate * dt
		c.Flicker += StoveFlickerRate * dt
		c.Timer -= dt
		if c.Timer <= 0 {
			g.finishCook(id, e, c)
		}
	case CookReady:
		// The dish entity is destroyed or carried off once picked up;
		// either way the slot reference goes stale and we return to idle.
		if g.Entity(c.DishID) == nil {
			c.DishID = NoEntity
			c.State = CookIdle
		}
	}

	g.renderStove(e, c)
}

// finishCook resolves the accumulated multiset against the recipe
// table, spawns the dish on the stove and resets the ingredient list.
func (g *Game) finishCook(id int, e *Entity, c *Cook) {
	var counts [numIngredientColors]int
	for i := 0; i < c.Count; i++ {
		counts[c.Ingredients[i]]++
	}
	dish := resolveRecipe(counts)

	dishID, err := g.SpawnDish(dish, e.Pos)
	if err != nil {
		// Registry exhausted: drop the cook, keep the stove usable.
		logger.Error("cook finished but dish spawn failed",
			zap.Int("stove", id), zap.Error(err))
		c.Count = 0
		c.State = CookIdle
		return
	}
	c.Count = 0
	c.DishID = dishID
	c.State = CookReady
	PlaySound(SoundDing)
}

func (g *Game) renderStove(e *Entity, c *Cook) {
	// Body + hob.
	g.Queue.Push(RenderCmd{Kind: CmdRect, Pos: e.Pos, Size: e.Size, Z: e.Z, Color: e.Fill})
	g.Queue.Push(RenderCmd{Kind: CmdCircle, Pos: e.Pos,
		Size: Vec2{e.Size.X * 0.7, e.Size.X * 0.7}, Z: e.Z + 1, Color: Hex(0x2B2B30)})

	switch c.State {
	case CookIdle:
		// Waiting ingredients sit in a row on the hob.
		for i := 0; i < c.Count; i++ {
			off := Vec2{float64(i)*9 - float64(c.Count-1)*4.5, 0}
			g.Queue.Push(RenderCmd{Kind: CmdCircle, Pos: e.Pos.Add(off),
				Size: Vec2{8, 8}, Z: e.Z + 2, Color: ingredientColorFill(c.Ingredients[i])})
		}
	case CookCooking:
		// Fire flicker under the hob.
		flick := 0.7 + 0.3*math.Sin(c.Flicker)
		g.Queue.Push(RenderCmd{Kind: CmdCircle, Pos: e.Pos.Add(Vec2{0, e.Size.Y * 0.28}),
			Size: Vec2{e.Size.X * 0.5 * flick, e.Size.X * 0.5 * flick},
			Z:    e.Z + 2, Color: Hex(0xE8762C)})
		// Ingredients orbit the pot centre.
		for i := 0; i < c.Count; i++ {
			ang := c.Spin + float64(i)*2*math.Pi/float64(c.Count)
			off := Vec2{math.Cos(ang), math.Sin(ang)}.Scale(e.Size.X * 0.22)
			g.Queue.Push(RenderCmd{Kind: CmdCircle, Pos: e.Pos.Add(off),
				Size: Vec2{7, 7}, Z: e.Z + 3, Color: ingredientColorFill(c.Ingredients[i])})
		}
	}
}
