// Package input turns raw device state into discrete game commands.
//
// Commands are queued as they are observed and drained once per frame in
// FIFO order, so a frame's behavior depends only on the queue contents.
package input

import "fmt"

// Kind identifies a command.
type Kind int

const (
	KindLock Kind = iota
	KindUnlock
	KindMoveForward
	KindMoveRight
	KindLook
	KindShoot
	KindResize
)

// String returns a name for logging.
func (k Kind) String() string {
	switch k {
	case KindLock:
		return "lock"
	case KindUnlock:
		return "unlock"
	case KindMoveForward:
		return "move_forward"
	case KindMoveRight:
		return "move_right"
	case KindLook:
		return "look"
	case KindShoot:
		return "shoot"
	case KindResize:
		return "resize"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Command is one discrete input action.
type Command struct {
	Kind   Kind
	Amount float64 // MoveForward, MoveRight
	DX, DY float64 // Look
	W, H   int     // Resize
}

func Lock() Command   { return Command{Kind: KindLock} }
func Unlock() Command { return Command{Kind: KindUnlock} }
func Shoot() Command  { return Command{Kind: KindShoot} }

// MoveForward moves along the view direction; negative is backward.
func MoveForward(amount float64) Command {
	return Command{Kind: KindMoveForward, Amount: amount}
}

// MoveRight strafes; negative is left.
func MoveRight(amount float64) Command {
	return Command{Kind: KindMoveRight, Amount: amount}
}

// Look rotates the view by a mouse delta in pixels.
func Look(dx, dy float64) Command {
	return Command{Kind: KindLook, DX: dx, DY: dy}
}

// Resize reports a new viewport size.
func Resize(w, h int) Command {
	return Command{Kind: KindResize, W: w, H: h}
}

// Queue is a FIFO of commands awaiting the next frame.
type Queue struct {
	pending []Command
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Push appends commands to the queue.
func (q *Queue) Push(cmds ...Command) {
	q.pending = append(q.pending, cmds...)
}

// Len returns the number of queued commands.
func (q *Queue) Len() int {
	return len(q.pending)
}

// Drain calls fn for every queued command in order and empties the queue.
// Commands pushed by fn are delivered in the same drain.
func (q *Queue) Drain(fn func(Command)) {
	for i := 0; i < len(q.pending); i++ {
		fn(q.pending[i])
	}
	clear(q.pending)
	q.pending = q.pending[:0]
}
