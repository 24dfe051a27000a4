package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRenderQueueDrainsBackToFront(t *testing.T) {
	q := NewRenderQueue()
	q.Push(RenderCmd{Kind: CmdRect, Z: ZActors, Color: Hex(0x111111)})
	q.Push(RenderCmd{Kind: CmdRect, Z: ZFloor, Color: Hex(0x222222)})
	q.Push(RenderCmd{Kind: CmdRect, Z: ZOverlay, Color: Hex(0x333333)})
	q.Push(RenderCmd{Kind: CmdRect, Z: ZFurniture, Color: Hex(0x444444)})

	got := q.Ordered()
	require.Len(t, got, 4)
	zs := make([]int, len(got))
	for i, c := range got {
		zs[i] = c.Z
	}
	require.Equal(t, []int{ZFloor, ZFurniture, ZActors, ZOverlay}, zs)
}

func TestRenderQueueEqualZKeepsPushOrder(t *testing.T) {
	q := NewRenderQueue()
	for i := 0; i < 5; i++ {
		q.Push(RenderCmd{Kind: CmdRect, Z: ZItems, Rot: float64(i)})
	}
	q.Push(RenderCmd{Kind: CmdRect, Z: ZFloor, Rot: 99})

	got := q.Ordered()
	require.Equal(t, 99.0, got[0].Rot)
	for i := 0; i < 5; i++ {
		require.Equal(t, float64(i), got[i+1].Rot, "same-z commands stay in push order")
	}
}

func TestRenderQueueDrainConvertsCentreToTopLeft(t *testing.T) {
	q := NewRenderQueue()
	q.Push(RenderCmd{
		Kind:  CmdRect,
		Pos:   Vec2{X: 100, Y: 100},
		Size:  Vec2{X: 20, Y: 10},
		Color: Hex(0xff0000),
	})
	q.Push(RenderCmd{
		Kind: CmdCircle,
		Pos:  Vec2{X: 40, Y: 60},
		Size: Vec2{X: 24, Y: 24},
		Z:    ZActors,
	})

	var b recordBackend
	q.Drain(&b)
	require.Len(t, b.calls, 2)

	rect := b.calls[0]
	require.Equal(t, "rect", rect.Op)
	require.Equal(t, 90.0, rect.X)
	require.Equal(t, 95.0, rect.Y)
	require.Equal(t, 20.0, rect.W)
	require.Equal(t, 10.0, rect.H)

	circ := b.calls[1]
	require.Equal(t, "circle", circ.Op)
	require.Equal(t, 40.0, circ.X)
	require.Equal(t, 60.0, circ.Y)
	require.Equal(t, 12.0, circ.R, "circle radius is half the X extent")
}

func TestRenderQueueDrainLeavesQueueEmpty(t *testing.T) {
	q := NewRenderQueue()
	q.Push(RenderCmd{Kind: CmdRect})
	q.Push(RenderCmd{Kind: CmdRect})

	var b recordBackend
	q.Drain(&b)
	require.Len(t, b.calls, 2)

	b.calls = nil
	q.Drain(&b)
	require.Empty(t, b.calls, "second drain replays nothing")

	q.ResetFrame()
	require.Equal(t, 0, q.Len())
}

func TestRenderQueueNilBackendConsumes(t *testing.T) {
	q := NewRenderQueue()
	q.Push(RenderCmd{Kind: CmdSprite})
	q.Drain(nil)

	var b recordBackend
	q.Drain(&b)
	require.Empty(t, b.calls)
}

func TestRenderQueueDropsPastCapacity(t *testing.T) {
	q := NewRenderQueue()
	for i := 0; i < MaxRenderCmds; i++ {
		q.Push(RenderCmd{Kind: CmdRect, Z: i})
	}
	require.Equal(t, MaxRenderCmds, q.Len())

	q.Push(RenderCmd{Kind: CmdRect, Z: -1})
	require.Equal(t, MaxRenderCmds, q.Len(), "overflowing command is dropped")

	got := q.Ordered()
	require.Len(t, got, MaxRenderCmds)
	require.Equal(t, 0, got[0].Z, "dropped command never entered the list")

	q.ResetFrame()
	q.Push(RenderCmd{Kind: CmdRect, Z: 7})
	require.Equal(t, 1, q.Len(), "reset restores capacity")
}
