package core

// DeathCause says what killed the player.
type DeathCause int

const (
	CauseHazard DeathCause = iota
	CauseEnemy
	CauseFall
)

func (c DeathCause) String() string {
	switch c {
	case CauseHazard:
		return "hazard"
	case CauseEnemy:
		return "enemy"
	case CauseFall:
		return "fall"
	}
	return "unknown"
}

// Event is something the level reports to the shell. The set is closed.
type Event interface {
	isEvent()
}

type CoinCollected struct {
	Value int
	X, Y  float64
}

type PlayerDied struct {
	Cause     DeathCause
	X, Y      float64
	LivesLeft int
}

type LevelWon struct {
	Score   int
	Elapsed float64
}

type LevelLost struct {
	Score   int
	Elapsed float64
}

type JumpStarted struct{}

// StatusMessage asks the shell to show Text for Duration seconds.
type StatusMessage struct {
	Text     string
	Duration float64
}

func (CoinCollected) isEvent() {}
func (PlayerDied) isEvent()    {}
func (LevelWon) isEvent()      {}
func (LevelLost) isEvent()     {}
func (JumpStarted) isEvent()   {}
func (StatusMessage) isEvent() {}

// EventSink receives level events synchronously, on the simulation thread.
type EventSink interface {
	Emit(Event)
}

// SinkFunc adapts a function to EventSink.
type SinkFunc func(Event)

func (f SinkFunc) Emit(e Event) { f(e) }

// MultiSink fans an event out to every sink in order.
type MultiSink []EventSink

func (m MultiSink) Emit(e Event) {
	for _, s := range m {
		if s != nil {
			s.Emit(e)
		}
	}
}

// Recorder keeps every event it receives.
type Recorder struct {
	Events []Event
}

func (r *Recorder) Emit(e Event) { r.Events = append(r.Events, e) }

// Reset drops recorded events.
func (r *Recorder) Reset() { r.Events = r.Events[:0] }

// EventsOf returns the recorded events of type T, in order.
func EventsOf[T Event](r *Recorder) []T {
	var out []T
	for _, e := range r.Events {
		if v, ok := e.(T); ok {
			out = append(out, v)
		}
	}
	return out
}

type discardSink struct{}

func (discardSink) Emit(Event) {}
