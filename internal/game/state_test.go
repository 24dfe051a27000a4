package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func countKind(g *Game, k Kind) int {
	n := 0
	g.EachOfKind(k, func(int, *Entity) { n++ })
	return n
}

func TestInitBuildsTheKitchen(t *testing.T) {
	g := Init(WindowWidth, WindowHeight, 42)

	require.True(t, g.Menu)
	require.Equal(t, 4, countKind(g, KindSeat))
	require.Equal(t, int(numIngredientColors), countKind(g, KindBin))
	require.Equal(t, 2, countKind(g, KindStove))
	require.Equal(t, 1, countKind(g, KindPlayer))

	p := g.Entity(g.PlayerID)
	require.NotNil(t, p)
	require.Equal(t, Vec2{g.W / 2, g.H / 2}, p.Pos)
	require.Equal(t, 3, p.Health)

	// 1 floor + 4 walls as generics, everything else collidered terrain.
	require.Equal(t, 5, countKind(g, KindGeneric))
	require.Equal(t, 4+int(numIngredientColors)+2+4, g.Sets[MaskTerrain].Len())
}

func TestFirstFrameHasZeroDelta(t *testing.T) {
	g := Init(WindowWidth, WindowHeight, 1)
	g.Menu = false

	g.OnFrame(5000)
	require.Zero(t, g.Elapsed, "first frame must not advance time")

	g.OnFrame(5016)
	require.InDelta(t, 0.016, g.Elapsed, 1e-9)
}

func TestFrameDeltaIsClamped(t *testing.T) {
	g := Init(WindowWidth, WindowHeight, 1)
	g.Menu = false

	g.OnFrame(1000)
	g.OnFrame(9000) // an 8 second stall
	require.InDelta(t, 0.1, g.Elapsed, 1e-9)

	g.OnFrame(8500) // host clock went backwards
	require.InDelta(t, 0.1, g.Elapsed, 1e-9, "negative delta clamps to zero")
}

func TestMenuClickStartsTheRun(t *testing.T) {
	g := Init(WindowWidth, WindowHeight, 1)
	require.True(t, g.Menu)

	g.OnFrame(0)
	require.True(t, g.Menu, "no click, still on the menu")

	g.OnInputEvent(EventKeyDown, CodeMouseLeft)
	g.OnFrame(16)
	require.False(t, g.Menu)
	require.False(t, g.In.Clicked(), "the starting click is consumed")
}

func TestGameOverClickResets(t *testing.T) {
	g := Init(WindowWidth, WindowHeight, 9)
	g.Menu = false
	g.OnFrame(0)
	g.Score = 120
	g.gameOver()
	require.True(t, g.Over)

	g.OnInputEvent(EventKeyDown, CodeMouseLeft)
	g.OnFrame(16)

	require.False(t, g.Over)
	require.Zero(t, g.Score)
	require.Zero(t, g.Elapsed)
	require.Equal(t, 4, countKind(g, KindSeat))
	require.NotNil(t, g.Entity(g.PlayerID))
	require.Equal(t, 0, countKind(g, KindCustomer))
}

func TestPauseFreezesTheSimulation(t *testing.T) {
	g := Init(WindowWidth, WindowHeight, 1)
	g.Menu = false
	g.OnFrame(0)
	g.OnFrame(16)
	elapsed := g.Elapsed

	g.Paused = true
	for i := 0; i < 10; i++ {
		g.OnFrame(32 + float64(i)*16)
	}
	require.Equal(t, elapsed, g.Elapsed)

	g.Paused = false
	g.OnFrame(200)
	require.Greater(t, g.Elapsed, elapsed)
}

func TestCustomersSpawnOverTime(t *testing.T) {
	g := Init(WindowWidth, WindowHeight, 3)
	g.Menu = false

	ts := 0.0
	g.OnFrame(ts)
	for i := 0; i < 100; i++ {
		ts += 100
		g.OnFrame(ts)
	}

	// 10 seconds in, the 2 second warmup plus at least one spawn roll
	// have fired.
	n := countKind(g, KindCustomer)
	require.Positive(t, n)
	require.LessOrEqual(t, n, 4, "never more customers than seats")

	occupied := 0
	g.EachOfKind(KindSeat, func(_ int, e *Entity) {
		if e.Seat.Occupied {
			occupied++
		}
	})
	require.Equal(t, n, occupied)
}

func TestEqualSeedsReplayIdentically(t *testing.T) {
	run := func() (int, []Archetype) {
		g := Init(WindowWidth, WindowHeight, 77)
		g.Menu = false
		ts := 0.0
		g.OnFrame(ts)
		for i := 0; i < 200; i++ {
			ts += 100
			g.OnFrame(ts)
		}
		var archs []Archetype
		g.EachOfKind(KindCustomer, func(_ int, e *Entity) {
			archs = append(archs, e.Customer.Arch)
		})
		return countKind(g, KindCustomer), archs
	}

	n1, a1 := run()
	n2, a2 := run()
	require.Equal(t, n1, n2)
	require.Equal(t, a1, a2)
}
