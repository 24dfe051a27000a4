package game

// TextureLoader resolves sprite names to stable backend texture
// handles, loading lazily on first use. Handle 0 means "no sprite";
// entities then fall back to their flat shape + color.
type TextureLoader interface {
	LoadTexture(name string) uint32
}

// Game is the aggregate root: one instance per running game, mutated in
// place every frame by a single-threaded host-driven loop. Never shared
// across goroutines.
type Game struct {
	W, H float64

	In       Input
	Entities [MaxEntities]Entity
	Sets     [maskCount]ColliderSet
	Queue    *RenderQueue

	// External collaborators. Either may stay nil for headless runs.
	Backend  RenderBackend
	Textures TextureLoader

	Rand   *Rand
	Tuning Tuning

	Score   int
	Elapsed float64

	PlayerID int
	Hands    Vec2 // tethered cursor the player interacts through

	Menu   bool
	Paused bool
	Over   bool

	seed       uint64
	resets     uint64
	spawnTimer float64
	prevTS     float64
	started    bool
}

// Init constructs and seeds the game state. The playfield is width x
// height pixels; seed drives every random decision, so equal seeds
// replay identically.
func Init(width, height int, seed uint64) *Game {
	g := &Game{
		W:     float64(width),
		H:     float64(height),
		Queue: NewRenderQueue(),
		seed:  seed,
	}
	g.Tuning = Tuning{}.withDefaults()
	g.Reset()
	g.Menu = true
	return g
}

// Reset fully reconstructs the playfield for a new run. Each reset
// remixes the seed so replays vary while staying deterministic from
// Init's seed.
func (g *Game) Reset() {
	g.Entities = [MaxEntities]Entity{}
	g.Sets = [maskCount]ColliderSet{}
	g.resets++
	g.Rand = NewRand(splitmix64(g.seed + g.resets))
	g.Score = 0
	g.Elapsed = 0
	g.Over = false
	g.Menu = false
	g.PlayerID = NoEntity
	g.spawnTimer = 2.0
	g.buildKitchen()
}

// OnInputEvent pushes one discrete key/button transition into the
// snapshot.
func (g *Game) OnInputEvent(ev InputEventType, code InputCode) {
	g.In.Event(ev, code)
}

// OnMouseDelta accumulates relative cursor motion.
func (g *Game) OnMouseDelta(dx, dy float64) {
	g.In.MouseDelta(dx, dy, g.W, g.H)
}

// OnFrame runs one full simulation + render frame. tsMillis is the
// host's monotonic timestamp; the first frame gets dt = 0. The frame
// has no failure path: everything inside is log-and-continue.
func (g *Game) OnFrame(tsMillis float64) {
	dt := 0.0
	if g.started {
		dt = (tsMillis - g.prevTS) / 1000
	}
	g.started = true
	g.prevTS = tsMillis
	// A stalled host (debugger, window drag) must not produce a
	// catch-up teleport.
	dt = clampF(dt, 0, 0.1)

	g.In.decay()

	if g.Backend != nil {
		g.Backend.ClearFrame()
	}

	switch {
	case g.Menu:
		if g.In.Clicked() {
			g.In.ConsumeClick()
			g.Menu = false
			PlaySound(SoundSelect)
		}
	case g.Over:
		if g.In.Clicked() {
			g.In.ConsumeClick()
			g.Reset()
			PlaySound(SoundSelect)
		}
	case g.Paused:
		// Frozen: no spawns, no updates, screen keeps last layout.
	default:
		g.Elapsed += dt
		g.rollCustomerSpawn(dt)
		g.updateEntities(dt)
	}

	g.Queue.Drain(g.Backend)
	g.renderOverlay()
	g.Queue.ResetFrame()
}

// updateEntities dispatches every active slot in fixed index order.
// Updates may mutate other entities but never run concurrently.
func (g *Game) updateEntities(dt float64) {
	for i := range g.Entities {
		e := &g.Entities[i]
		if !e.Active {
			continue
		}
		switch e.Kind {
		case KindPlayer:
			updatePlayer(g, i, e, dt)
		case KindStove:
			updateStove(g, i, e, dt)
		case KindCustomer:
			updateCustomer(g, i, e, dt)
		case KindProjectile:
			updateProjectile(g, i, e, dt)
		case KindIngredient:
			updateIngredient(g, i, e, dt)
		case KindDish:
			updateDish(g, i, e, dt)
		case KindBin:
			updateBin(g, i, e, dt)
		case KindSeat:
			updateSeat(g, i, e, dt)
		default:
			updateGeneric(g, i, e, dt)
		}
	}
}

// rollCustomerSpawn seats a new customer on a jittered interval that
// tightens as the run goes on.
func (g *Game) rollCustomerSpawn(dt float64) {
	g.spawnTimer -= dt
	if g.spawnTimer > 0 {
		return
	}
	interval := g.Tuning.CustomerSpawnBase - g.Elapsed*0.05 + g.Rand.RangeF(-0.4, 0.4)
	if interval < CustomerSpawnMin {
		interval = CustomerSpawnMin
	}
	g.spawnTimer = interval

	var free []int
	g.EachOfKind(KindSeat, func(id int, e *Entity) {
		if e.Seat != nil && !e.Seat.Occupied {
			free = append(free, id)
		}
	})
	if len(free) == 0 {
		return
	}
	g.SpawnCustomer(free[g.Rand.Intn(len(free))])
}

func (g *Game) gameOver() {
	if g.Over {
		return
	}
	g.Over = true
	PlaySound(SoundGameOver)
}

// sprite resolves a sprite name through the texture loader, or 0 when
// running headless.
func (g *Game) sprite(name string) uint32 {
	if g.Textures == nil {
		return 0
	}
	return g.Textures.LoadTexture(name)
}
