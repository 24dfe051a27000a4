package game

import "go.uber.org/zap"

// RenderBackend is everything the simulation needs from a drawing
// surface. Quad positions handed to the backend are top-left anchored
// in screen pixel space; the queue converts from the simulation's
// centre-anchored commands before calling out.
type RenderBackend interface {
	DrawTexturedQuad(x, y, rot, w, h, alpha float64, tex uint32)
	DrawColoredQuad(x, y, w, h float64, c Color)
	DrawBorderedQuad(x, y, w, h float64, c Color, border float64)
	DrawFilledCircle(x, y, r float64, c Color)
	ClearFrame()
}

// CmdKind tags a render command variant.
type CmdKind int

const (
	CmdSprite CmdKind = iota
	CmdRect
	CmdRectBorder
	CmdCircle
)

// RenderCmd is one deferred draw call. Pos is the centre. Commands live
// in the per-frame arena and never survive past the drain.
type RenderCmd struct {
	Kind   CmdKind
	Pos    Vec2
	Size   Vec2
	Z      int
	Rot    float64
	Alpha  float64
	Color  Color
	Tex    uint32
	Border float64

	next int32 // intrusive z-ordered list link
}

// RenderQueue collects draw commands during entity updates and replays
// them back-to-front at end of frame. The backing slice is the frame
// arena: truncated wholesale by ResetFrame, never freed per command.
type RenderQueue struct {
	arena []RenderCmd
	head  int32
}

func NewRenderQueue() *RenderQueue {
	return &RenderQueue{head: -1}
}

func (q *RenderQueue) Len() int { return len(q.arena) }

// Push inserts cmd into the z-ascending list. Insertion keeps commands
// with equal z in push order. Past the arena bound the command is
// dropped with an error log and the frame continues.
func (q *RenderQueue) Push(cmd RenderCmd) {
	if len(q.arena) >= MaxRenderCmds {
		logger.Error("render queue full, dropping command",
			zap.Int("cap", MaxRenderCmds))
		return
	}
	idx := int32(len(q.arena))
	cmd.next = -1
	q.arena = append(q.arena, cmd)

	if q.head < 0 || q.arena[q.head].Z > cmd.Z {
		cmd2 := &q.arena[idx]
		cmd2.next = q.head
		q.head = idx
		return
	}
	// Walk to the last command with Z <= cmd.Z for stable ordering.
	at := q.head
	for q.arena[at].next >= 0 && q.arena[q.arena[at].next].Z <= cmd.Z {
		at = q.arena[at].next
	}
	q.arena[idx].next = q.arena[at].next
	q.arena[at].next = idx
}

// Drain replays all queued commands in ascending z order against the
// backend, then leaves the queue logically empty. A nil backend still
// consumes the queue.
func (q *RenderQueue) Drain(b RenderBackend) {
	for at := q.head; at >= 0; at = q.arena[at].next {
		if b == nil {
			continue
		}
		c := &q.arena[at]
		switch c.Kind {
		case CmdSprite:
			b.DrawTexturedQuad(c.Pos.X-c.Size.X/2, c.Pos.Y-c.Size.Y/2,
				c.Rot, c.Size.X, c.Size.Y, c.Alpha, c.Tex)
		case CmdRect:
			b.DrawColoredQuad(c.Pos.X-c.Size.X/2, c.Pos.Y-c.Size.Y/2,
				c.Size.X, c.Size.Y, c.Color)
		case CmdRectBorder:
			b.DrawBorderedQuad(c.Pos.X-c.Size.X/2, c.Pos.Y-c.Size.Y/2,
				c.Size.X, c.Size.Y, c.Color, c.Border)
		case CmdCircle:
			b.DrawFilledCircle(c.Pos.X, c.Pos.Y, c.Size.X/2, c.Color)
		}
	}
	q.head = -1
}

// ResetFrame invalidates the arena. Every RenderCmd from this frame is
// dead after this call.
func (q *RenderQueue) ResetFrame() {
	q.arena = q.arena[:0]
	q.head = -1
}

// Ordered returns the queued commands in drain order without consuming
// them. Test helper.
func (q *RenderQueue) Ordered() []RenderCmd {
	out := make([]RenderCmd, 0, len(q.arena))
	for at := q.head; at >= 0; at = q.arena[at].next {
		out = append(out, q.arena[at])
	}
	return out
}
