package game

// Playfield dimensions (in world pixels). The window renders the
// playfield 1:1 by default.
const (
	WindowWidth  = 960
	WindowHeight = 720
)

// Entity registry capacity. Every collider set shares the same bound
// because an active collidered entity occupies exactly one slot.
const MaxEntities = 512

// Render queue arena bound. Commands past this are dropped with an
// error log; the frame continues.
const MaxRenderCmds = 4096

// Input edge latches, in frames. A click or cursor move stays visible
// to the simulation for this many frames.
const (
	ClickLatchFrames = 5
	MoveLatchFrames  = 5
)

// Player movement.
const (
	PlayerAccel    = 1400.0
	PlayerDecel    = 1800.0
	PlayerMaxSpeed = 260.0
	PlayerSize     = 28.0
	HandsSpeed     = 900.0 // max hands travel per second
	HandsRange     = 72.0  // max hands distance from the player centre
	HandsReach     = 26.0  // pick-up radius around the hands
)

// Stove.
const (
	StoveCookTime       = 6.0
	MaxStoveIngredients = 4
	StoveSpinRate       = 3.2 // rad/s ingredient spin while cooking
	StoveFlickerRate    = 11.0
)

// Customer.
const (
	CustomerWaitTime  = 20.0
	CustomerEatTime   = 8.0
	CustomerSafeDist  = 140.0 // no shots while the player is this close
	FireIntervalOne   = 1.6
	FireIntervalTri   = 2.4
	FireIntervalRing  = 0.22
	BarrageTurnRate   = 2.6 // rad/s rotation of the ring pattern
	TriSpreadRad      = 0.35
	CustomerSpawnBase = 7.0 // seconds between spawn rolls at game start
	CustomerSpawnMin  = 2.5
)

// Projectile.
const (
	ProjectileSpeed  = 180.0
	ProjectileSize   = 10.0
	ProjectileMargin = 64.0 // despawn once outside playfield + margin
)

// Dropped items fade out and despawn after this long on the floor.
const DropDecayTime = 5.0

// Draw order layers. Entities may offset within a layer.
const (
	ZFloor      = -10
	ZFurniture  = 0
	ZItems      = 5
	ZActors     = 10
	ZProjectile = 15
	ZOverlay    = 100
)

// Tuning collects the rates that are adjustable from the config file.
// Zero values mean "use the default".
type Tuning struct {
	CustomerSpawnBase float64
	CustomerWaitTime  float64
	StoveCookTime     float64
}

func (t Tuning) withDefaults() Tuning {
	if t.CustomerSpawnBase <= 0 {
		t.CustomerSpawnBase = CustomerSpawnBase
	}
	if t.CustomerWaitTime <= 0 {
		t.CustomerWaitTime = CustomerWaitTime
	}
	if t.StoveCookTime <= 0 {
		t.StoveCookTime = StoveCookTime
	}
	return t
}
