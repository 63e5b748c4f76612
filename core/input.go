package core

// Input is one frame of player intent. JumpPressed is the press edge and
// JumpHeld the level.
type Input struct {
	Left        bool `msgpack:"l"`
	Right       bool `msgpack:"r"`
	JumpPressed bool `msgpack:"jp"`
	JumpHeld    bool `msgpack:"jh"`
}

// Direction returns -1, 0 or 1 for the horizontal intent.
func (in Input) Direction() float64 {
	var d float64
	if in.Right {
		d++
	}
	if in.Left {
		d--
	}
	return d
}

// Controls is the held state of the player's buttons as the shell samples
// them, once per rendered frame.
type Controls struct {
	Left, Right, Jump bool
}

// InputLatch turns held controls into per-frame Input. A press seen between
// simulation frames is kept until a frame consumes it.
type InputLatch struct {
	wasHeld bool
	pressed bool
}

// Sample records the latest held state and latches a press edge.
func (l *InputLatch) Sample(c Controls) {
	if c.Jump && !l.wasHeld {
		l.pressed = true
	}
	l.wasHeld = c.Jump
}

// Next builds the Input for one simulation frame and consumes the latched
// press.
func (l *InputLatch) Next(c Controls) Input {
	in := Input{
		Left:        c.Left,
		Right:       c.Right,
		JumpPressed: l.pressed,
		JumpHeld:    c.Jump,
	}
	l.pressed = false
	return in
}

// Reset forgets any latched press, e.g. after a pause.
func (l *InputLatch) Reset() {
	*l = InputLatch{}
}
