package core

import "math"

// SessionState is the lifecycle of a Session.
type SessionState int

const (
	SessionIdle SessionState = iota
	SessionRunning
	SessionPaused
	SessionTornDown
)

func (s SessionState) String() string {
	switch s {
	case SessionIdle:
		return "idle"
	case SessionRunning:
		return "running"
	case SessionPaused:
		return "paused"
	case SessionTornDown:
		return "torn down"
	}
	return "unknown"
}

// Session drives a Level at a fixed timestep from variable frame times.
type Session struct {
	level      *Level
	state      SessionState
	acc        float64
	step       float64
	maxCatchUp int
	latch      InputLatch

	// OnFrame, if set, sees the exact Input of every simulated frame.
	OnFrame func(frame int, in Input)
}

func NewSession(level *Level) *Session {
	t := level.Tuning()
	maxCatchUp := t.Rules.MaxCatchUpFrames
	if maxCatchUp <= 0 {
		maxCatchUp = 1
	}
	return &Session{
		level:      level,
		step:       t.FrameSeconds(),
		maxCatchUp: maxCatchUp,
	}
}

func (s *Session) Level() *Level        { return s.level }
func (s *Session) State() SessionState { return s.state }

// Start begins running. It only has an effect on an idle session.
func (s *Session) Start() {
	if s.state == SessionIdle {
		s.state = SessionRunning
	}
}

// Pause stops time until Resume.
func (s *Session) Pause() {
	if s.state == SessionRunning {
		s.state = SessionPaused
	}
}

// Resume continues a paused session. Time spent paused is not simulated.
func (s *Session) Resume() {
	if s.state == SessionPaused {
		s.state = SessionRunning
		s.acc = 0
		s.latch.Reset()
	}
}

// Teardown ends the session for good and detaches the level's sink.
func (s *Session) Teardown() {
	if s.state == SessionTornDown {
		return
	}
	s.state = SessionTornDown
	s.level.SetSink(nil)
}

// Advance adds dt seconds of real time and runs the frames now due, at most
// MaxCatchUpFrames. Backlog beyond that is dropped. It returns the number of
// frames actually simulated.
func (s *Session) Advance(dt float64, c Controls) int {
	if s.state != SessionRunning {
		return 0
	}
	s.latch.Sample(c)
	if dt > 0 {
		s.acc += dt
	}
	n := int(math.Floor(s.acc/s.step + 1e-9))
	if n > s.maxCatchUp {
		n = s.maxCatchUp
		s.acc = 0
	} else {
		s.acc = math.Max(s.acc-float64(n)*s.step, 0)
	}
	ran := 0
	for ; ran < n && s.level.Outcome == Running; ran++ {
		in := s.latch.Next(c)
		s.level.Step(in)
		if s.OnFrame != nil {
			s.OnFrame(s.level.Frame, in)
		}
	}
	return ran
}
