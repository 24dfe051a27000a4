package game

// Overlay UI renders through the immediate bypass: straight backend
// calls after the queue drains, so menus and digits always sit on top
// of the per-entity ordering.

// Seven-segment layout per digit, bits a..g.
//
//	 aaa
//	f   b
//	 ggg
//	e   c
//	 ddd
var segDigits = [10]uint8{
	0b0111111, // 0
	0b0000110, // 1
	0b1011011, // 2
	0b1001111, // 3
	0b1100110, // 4
	0b1101101, // 5
	0b1111101, // 6
	0b0000111, // 7
	0b1111111, // 8
	0b1101111, // 9
}

// drawDigit paints one seven-segment digit with top-left at (x, y).
// Cell is w x 2w, stroke w/4.
func drawDigit(b RenderBackend, d int, x, y, w float64, c Color) {
	if d < 0 || d > 9 {
		return
	}
	t := w / 4
	h := 2 * w
	segs := [7][4]float64{
		{x, y, w, t},                     // a
		{x + w - t, y, t, h / 2},         // b
		{x + w - t, y + h/2, t, h / 2},   // c
		{x, y + h - t, w, t},             // d
		{x, y + h/2, t, h / 2},           // e
		{x, y, t, h / 2},                 // f
		{x, y + h/2 - t/2, w, t},         // g
	}
	mask := segDigits[d]
	for i, s := range segs {
		if mask&(1<<i) != 0 {
			b.DrawColoredQuad(s[0], s[1], s[2], s[3], c)
		}
	}
}

// drawNumber right-aligns n at (right, y).
func drawNumber(b RenderBackend, n int, right, y, w float64, c Color) {
	if n < 0 {
		n = 0
	}
	x := right - w
	for {
		drawDigit(b, n%10, x, y, w, c)
		n /= 10
		if n == 0 {
			return
		}
		x -= w * 1.4
	}
}

func (g *Game) renderOverlay() {
	b := g.Backend
	if b == nil {
		return
	}

	// Score, top right.
	drawNumber(b, g.Score, g.W-28, 26, 16, Hex(0xF2EFE8))

	// Player health hearts, top left.
	if p := g.Entity(g.PlayerID); p != nil {
		for i := 0; i < p.Health; i++ {
			b.DrawFilledCircle(34+float64(i)*26, 36, 9, Hex(0xD7443E))
		}
	}

	switch {
	case g.Menu:
		g.renderMenuScreen(b, Hex(0x2A2E38))
	case g.Over:
		g.renderGameOverScreen(b)
	case g.Paused:
		b.DrawColoredQuad(0, 0, g.W, g.H, Color{0, 0, 0, 120})
		b.DrawColoredQuad(g.W/2-24, g.H/2-30, 16, 60, Hex(0xF2EFE8))
		b.DrawColoredQuad(g.W/2+8, g.H/2-30, 16, 60, Hex(0xF2EFE8))
	}
}

func (g *Game) renderMenuScreen(b RenderBackend, tint Color) {
	b.DrawColoredQuad(0, 0, g.W, g.H, tint.WithAlpha(200))
	b.DrawBorderedQuad(g.W/2-180, g.H/2-90, 360, 180, Hex(0xF2EFE8), 4)
	// The menu card shows the four dishes on offer.
	for i, d := range []DishKind{DishSalad, DishSoup, DishPie, DishStew} {
		x := g.W/2 - 120 + float64(i)*80
		b.DrawFilledCircle(x, g.H/2-16, 22, Hex(0xE8E4DC))
		b.DrawFilledCircle(x, g.H/2-16, 15, dishColor(d))
	}
	// Click-to-start pip.
	b.DrawFilledCircle(g.W/2, g.H/2+52, 8, Hex(0x7BC950))
}

func (g *Game) renderGameOverScreen(b RenderBackend) {
	b.DrawColoredQuad(0, 0, g.W, g.H, Color{40, 10, 10, 200})
	b.DrawBorderedQuad(g.W/2-160, g.H/2-80, 320, 160, Hex(0xD7443E), 4)
	drawNumber(b, g.Score, g.W/2+70, g.H/2-28, 28, Hex(0xF2EFE8))
	b.DrawFilledCircle(g.W/2, g.H/2+46, 8, Hex(0x7BC950))
}
