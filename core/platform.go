package core

import "github.com/solarlune/resolv"

// Solid is a static or moving rectangle bodies collide with.
type Solid struct {
	Body
	ID     int
	Moving bool
	OneWay bool
	Goal   bool
	Bounds Bounds

	slot int // index in the Platforms arena, -1 for static solids
	obj  *resolv.Object
}

// Bounds are optional reflection limits for a moving solid's edges.
type Bounds struct {
	Left, Right, Bottom, Top *float64
}

// PlatformRecord is one moving solid and its position at the start of the
// current carry window.
type PlatformRecord struct {
	Solid        *Solid
	PrevX, PrevY float64
}

// Delta is how far the platform moved since the last snapshot.
func (r *PlatformRecord) Delta() (dx, dy float64) {
	return r.Solid.X - r.PrevX, r.Solid.Y - r.PrevY
}

// Platforms is the arena of moving solids. Records are addressed by index
// and never removed while a level runs.
type Platforms struct {
	records []PlatformRecord
}

// Add appends a moving solid and snapshots its position.
func (p *Platforms) Add(s *Solid) int {
	s.slot = len(p.records)
	p.records = append(p.records, PlatformRecord{Solid: s, PrevX: s.X, PrevY: s.Y})
	return s.slot
}

func (p *Platforms) Len() int { return len(p.records) }

// At returns the record at index i.
func (p *Platforms) At(i int) *PlatformRecord { return &p.records[i] }

// Advance moves every platform one frame. A velocity component turns toward
// the interior when the matching edge has reached its bound; positions are
// not clamped, so a platform may overshoot by up to one step.
func (p *Platforms) Advance() {
	for i := range p.records {
		s := p.records[i].Solid
		b := s.Bounds
		if b.Left != nil && s.Left() <= *b.Left && s.VX < 0 {
			s.VX = -s.VX
		}
		if b.Right != nil && s.Right() >= *b.Right && s.VX > 0 {
			s.VX = -s.VX
		}
		if b.Bottom != nil && s.Bottom() <= *b.Bottom && s.VY < 0 {
			s.VY = -s.VY
		}
		if b.Top != nil && s.Top() >= *b.Top && s.VY > 0 {
			s.VY = -s.VY
		}
		s.Integrate()
	}
}

// Snapshot records every platform's current position as the start of the
// next carry window.
func (p *Platforms) Snapshot() {
	for i := range p.records {
		p.records[i].PrevX = p.records[i].Solid.X
		p.records[i].PrevY = p.records[i].Solid.Y
	}
}
