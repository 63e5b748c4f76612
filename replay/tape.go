// Package replay records the per-frame input of a level run and plays it
// back headless. A level simulated from the same tape and seed always ends
// in the same state.
package replay

import (
	"errors"
	"fmt"
	"io"
	"iter"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/automoto/override/core"
)

// FormatVersion is written into every tape.
const FormatVersion = 1

// Span is a run of identical frames.
type Span struct {
	Input core.Input `msgpack:"in"`
	Count int        `msgpack:"n"`
}

// Tape is a run-length encoded input recording.
type Tape struct {
	Version int    `msgpack:"v"`
	LevelID int    `msgpack:"level"`
	Seed    uint64 `msgpack:"seed"`
	Spans   []Span `msgpack:"spans"`
}

// NewTape starts an empty recording for a level.
func NewTape(levelID int, seed uint64) *Tape {
	return &Tape{Version: FormatVersion, LevelID: levelID, Seed: seed}
}

// Append records one frame.
func (t *Tape) Append(in core.Input) {
	if n := len(t.Spans); n > 0 && t.Spans[n-1].Input == in {
		t.Spans[n-1].Count++
		return
	}
	t.Spans = append(t.Spans, Span{Input: in, Count: 1})
}

// Len is the number of recorded frames.
func (t *Tape) Len() int {
	n := 0
	for _, s := range t.Spans {
		n += s.Count
	}
	return n
}

// Frames yields every recorded input in order.
func (t *Tape) Frames() iter.Seq[core.Input] {
	return func(yield func(core.Input) bool) {
		for _, s := range t.Spans {
			for range s.Count {
				if !yield(s.Input) {
					return
				}
			}
		}
	}
}

// Capture hooks a session so every simulated frame lands on the tape.
func (t *Tape) Capture(s *core.Session) {
	prev := s.OnFrame
	s.OnFrame = func(frame int, in core.Input) {
		t.Append(in)
		if prev != nil {
			prev(frame, in)
		}
	}
}

// Encode writes the tape as msgpack.
func (t *Tape) Encode(w io.Writer) error {
	if err := msgpack.NewEncoder(w).Encode(t); err != nil {
		return fmt.Errorf("encode tape: %w", err)
	}
	return nil
}

// ErrVersion is returned for tapes written by an unknown format version.
var ErrVersion = errors.New("unsupported tape version")

// Decode reads a tape written by Encode.
func Decode(r io.Reader) (*Tape, error) {
	var t Tape
	if err := msgpack.NewDecoder(r).Decode(&t); err != nil {
		return nil, fmt.Errorf("decode tape: %w", err)
	}
	if t.Version != FormatVersion {
		return nil, fmt.Errorf("%w: %d", ErrVersion, t.Version)
	}
	for i, s := range t.Spans {
		if s.Count <= 0 {
			return nil, fmt.Errorf("decode tape: span %d has count %d", i, s.Count)
		}
	}
	return &t, nil
}
