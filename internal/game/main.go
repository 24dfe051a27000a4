package game

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"
)

// DesktopOptions carries everything the desktop frontend needs from
// the caller. Zero values fall back to sensible defaults.
type DesktopOptions struct {
	Width  int
	Height int
	Seed   uint64
	Audio  bool
	Tuning Tuning
}

// RunDesktop opens a window and drives the simulation until close.
// It is the host side of the frame-driver contract: it owns the window,
// GL context and audio, translates real input into the simulation's
// event calls and pumps OnFrame with millisecond timestamps.
func RunDesktop(opts DesktopOptions) error {
	runtime.LockOSThread()

	if opts.Width <= 0 {
		opts.Width = WindowWidth
	}
	if opts.Height <= 0 {
		opts.Height = WindowHeight
	}
	if opts.Seed == 0 {
		opts.Seed = uint64(time.Now().UnixNano())
		if s := os.Getenv("DINER_SEED"); s != "" {
			if v, err := strconv.ParseUint(s, 10, 64); err == nil {
				opts.Seed = v
			}
		}
	}

	window, err := initWindow(opts.Width, opts.Height)
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	if opts.Audio {
		if err := InitAudio(); err != nil {
			logger.Warn("audio init failed, continuing without sound", zap.Error(err))
		}
	}

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)

	rend, err := NewRenderer(opts.Width, opts.Height)
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()

	g := Init(opts.Width, opts.Height, opts.Seed)
	g.Tuning = opts.Tuning.withDefaults()
	g.Backend = rend
	g.Textures = rend
	logger.Info("game initialized",
		zap.Int("width", opts.Width),
		zap.Int("height", opts.Height),
		zap.Uint64("seed", opts.Seed))

	wireInput(window, g)

	for !window.ShouldClose() {
		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
			continue
		}
		g.OnFrame(glfw.GetTime() * 1000)
		window.SwapBuffers()
	}
	return nil
}

// wireInput maps real keyboard/mouse events onto the simulation's
// input codes. The simulation never sees glfw types.
func wireInput(window *glfw.Window, g *Game) {
	keyCodes := map[glfw.Key]InputCode{
		glfw.KeyW:     CodeUp,
		glfw.KeyUp:    CodeUp,
		glfw.KeyS:     CodeDown,
		glfw.KeyDown:  CodeDown,
		glfw.KeyA:     CodeLeft,
		glfw.KeyLeft:  CodeLeft,
		glfw.KeyD:     CodeRight,
		glfw.KeyRight: CodeRight,
	}
	window.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		code, ok := keyCodes[key]
		if !ok {
			if key == glfw.KeyP && action == glfw.Press {
				g.Paused = !g.Paused
			}
			return
		}
		switch action {
		case glfw.Press:
			g.OnInputEvent(EventKeyDown, code)
		case glfw.Release:
			g.OnInputEvent(EventKeyUp, code)
		}
	})
	window.SetMouseButtonCallback(func(_ *glfw.Window, btn glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		var code InputCode
		switch btn {
		case glfw.MouseButtonLeft:
			code = CodeMouseLeft
		case glfw.MouseButtonRight:
			code = CodeMouseRight
		default:
			return
		}
		if action == glfw.Press {
			g.OnInputEvent(EventKeyDown, code)
		} else {
			g.OnInputEvent(EventKeyUp, code)
		}
	})
	var prevX, prevY float64
	var seen bool
	window.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		if seen {
			g.OnMouseDelta(x-prevX, y-prevY)
		} else {
			// First event: jump the cursor to the real position.
			g.OnMouseDelta(x-g.In.Cursor.X, y-g.In.Cursor.Y)
			seen = true
		}
		prevX, prevY = x, y
	})
}
