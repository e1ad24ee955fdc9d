package input

import (
	"time"

	"chosenoffset.com/gallery/internal/render"
)

// TicksPerSecond is the rate at which Poll is expected to be called.
const TicksPerSecond = 60

// Repeat describes keyboard autorepeat in frames: a held key acts on the
// frame it goes down, again after Delay frames, then every Interval frames.
type Repeat struct {
	Delay    int
	Interval int
}

// NewRepeat converts autorepeat timings to frames at TicksPerSecond.
func NewRepeat(delay, interval time.Duration) Repeat {
	tick := time.Second / TicksPerSecond
	r := Repeat{
		Delay:    int((delay + tick/2) / tick),
		Interval: int((interval + tick/2) / tick),
	}
	if r.Interval < 1 {
		r.Interval = 1
	}
	return r
}

// fires reports whether a key held for the given number of frames acts now.
func (r Repeat) fires(held int) bool {
	if held == 1 {
		return true
	}
	since := held - 1 - r.Delay
	interval := max(r.Interval, 1)
	return since >= 0 && since%interval == 0
}

var moveKeys = []render.Key{render.KeyW, render.KeyS, render.KeyA, render.KeyD}

// Poller samples an InputManager once per frame and queues the resulting commands.
type Poller struct {
	input     render.InputManager
	moveSpeed float64
	repeat    Repeat

	held map[render.Key]int

	lastX, lastY int
	primed       bool
}

// NewPoller creates a poller that maps movement keys to moves of moveSpeed
// units, repeated while held according to repeat.
func NewPoller(input render.InputManager, moveSpeed float64, repeat Repeat) *Poller {
	return &Poller{
		input:     input,
		moveSpeed: moveSpeed,
		repeat:    repeat,
		held:      make(map[render.Key]int, len(moveKeys)),
	}
}

// Poll queues this frame's commands. While locked the order is look, move,
// shoot, unlock; while unlocked it is move, lock.
func (p *Poller) Poll(q *Queue, locked bool) {
	if locked {
		p.pollLook(q)
	} else {
		p.primed = false
	}

	p.pollMoves(q)

	clicked := p.input.IsMouseButtonJustPressed(render.MouseButtonLeft)
	if !locked {
		if clicked {
			q.Push(Lock())
		}
		return
	}

	if clicked {
		q.Push(Shoot())
	}
	if p.input.IsKeyJustPressed(render.KeyEscape) || !p.input.IsFocused() {
		q.Push(Unlock())
	}
}

func (p *Poller) pollLook(q *Queue) {
	x, y := p.input.GetCursorPosition()
	if p.primed && (x != p.lastX || y != p.lastY) {
		q.Push(Look(float64(x-p.lastX), float64(y-p.lastY)))
	}
	p.lastX, p.lastY = x, y
	p.primed = true
}

func (p *Poller) pollMoves(q *Queue) {
	for _, k := range moveKeys {
		if !p.input.IsKeyPressed(k) {
			p.held[k] = 0
			continue
		}
		p.held[k]++
		if !p.repeat.fires(p.held[k]) {
			continue
		}
		switch k {
		case render.KeyW:
			q.Push(MoveForward(p.moveSpeed))
		case render.KeyS:
			q.Push(MoveForward(-p.moveSpeed))
		case render.KeyA:
			q.Push(MoveRight(-p.moveSpeed))
		case render.KeyD:
			q.Push(MoveRight(p.moveSpeed))
		}
	}
}
