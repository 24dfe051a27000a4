package game

// InputEventType is the discrete event tag pushed in by the host.
type InputEventType int

const (
	EventKeyDown InputEventType = iota
	EventKeyUp
)

// InputCode names the inputs the simulation cares about. The host maps
// real key/button identifiers onto these before calling in.
type InputCode int

const (
	CodeUp InputCode = iota
	CodeDown
	CodeLeft
	CodeRight
	CodeMouseLeft
	CodeMouseRight
)

// Input is the per-frame snapshot the simulation reads. Edge conditions
// ("was clicked", "is moving") are short frame-count latches decremented
// once per frame rather than raw event timing, so a click registered
// between frames stays visible for a few updates.
type Input struct {
	Up, Down, Left, Right bool
	MouseLeft, MouseRight bool

	Cursor Vec2 // absolute, clamped to the playfield

	clickFrames  int // left-click latch
	rclickFrames int // right-click latch
	moveFrames   int // cursor-motion latch
}

// Event applies one discrete key/button transition.
func (in *Input) Event(ev InputEventType, code InputCode) {
	down := ev == EventKeyDown
	switch code {
	case CodeUp:
		in.Up = down
	case CodeDown:
		in.Down = down
	case CodeLeft:
		in.Left = down
	case CodeRight:
		in.Right = down
	case CodeMouseLeft:
		in.MouseLeft = down
		if down {
			in.clickFrames = ClickLatchFrames
		}
	case CodeMouseRight:
		in.MouseRight = down
		if down {
			in.rclickFrames = ClickLatchFrames
		}
	}
}

// MouseDelta accumulates relative cursor motion into the absolute
// cursor position, clamped to the playfield.
func (in *Input) MouseDelta(dx, dy, w, h float64) {
	in.Cursor.X = clampF(in.Cursor.X+dx, 0, w)
	in.Cursor.Y = clampF(in.Cursor.Y+dy, 0, h)
	in.moveFrames = MoveLatchFrames
}

// Clicked reports whether a left click happened within the latch window.
func (in *Input) Clicked() bool { return in.clickFrames > 0 }

// RightClicked reports a latched right click.
func (in *Input) RightClicked() bool { return in.rclickFrames > 0 }

// Moving reports whether the cursor moved within the latch window.
func (in *Input) Moving() bool { return in.moveFrames > 0 }

// ConsumeClick clears the left-click latch once a click is handled, so
// a single press cannot trigger two interactions.
func (in *Input) ConsumeClick() { in.clickFrames = 0 }

// ConsumeRightClick clears the right-click latch.
func (in *Input) ConsumeRightClick() { in.rclickFrames = 0 }

// decay ticks the edge latches down. Called once at the top of each
// frame, before any entity reads the snapshot.
func (in *Input) decay() {
	if in.clickFrames > 0 {
		in.clickFrames--
	}
	if in.rclickFrames > 0 {
		in.rclickFrames--
	}
	if in.moveFrames > 0 {
		in.moveFrames--
	}
}
