package game

// newBareGame returns a Game with an empty playfield: no kitchen, no
// player. Tests spawn exactly what they need.
func newBareGame() *Game {
	return &Game{
		W:        960,
		H:        720,
		Queue:    NewRenderQueue(),
		Rand:     NewRand(7),
		Tuning:   Tuning{}.withDefaults(),
		PlayerID: NoEntity,
	}
}

// stepGame runs plain simulation frames without a backend, resetting
// the frame arena like OnFrame does.
func stepGame(g *Game, frames int, dt float64) {
	for i := 0; i < frames; i++ {
		g.In.decay()
		g.updateEntities(dt)
		g.Queue.Drain(nil)
		g.Queue.ResetFrame()
	}
}

// drawCall records one backend invocation for assertions.
type drawCall struct {
	Op     string
	X, Y   float64
	W, H   float64
	R      float64
	Rot    float64
	Alpha  float64
	Color  Color
	Tex    uint32
	Border float64
}

// recordBackend is a RenderBackend that captures calls in order.
type recordBackend struct {
	calls  []drawCall
	clears int
}

func (r *recordBackend) DrawTexturedQuad(x, y, rot, w, h, alpha float64, tex uint32) {
	r.calls = append(r.calls, drawCall{Op: "sprite", X: x, Y: y, Rot: rot, W: w, H: h, Alpha: alpha, Tex: tex})
}

func (r *recordBackend) DrawColoredQuad(x, y, w, h float64, c Color) {
	r.calls = append(r.calls, drawCall{Op: "rect", X: x, Y: y, W: w, H: h, Color: c})
}

func (r *recordBackend) DrawBorderedQuad(x, y, w, h float64, c Color, border float64) {
	r.calls = append(r.calls, drawCall{Op: "border", X: x, Y: y, W: w, H: h, Color: c, Border: border})
}

func (r *recordBackend) DrawFilledCircle(x, y, radius float64, c Color) {
	r.calls = append(r.calls, drawCall{Op: "circle", X: x, Y: y, R: radius, Color: c})
}

func (r *recordBackend) ClearFrame() { r.clears++ }
