package core

import (
	"math"
	"slices"

	"github.com/automoto/override/shared/gamemath"
	"github.com/solarlune/resolv"
)

// Broadphase tags. Every solid carries TagSolid; moving and one-way solids
// carry their extra tag too.
const (
	TagSolid  = "solid"
	TagMoving = "moving"
	TagOneWay = "oneway"
)

// broadPad widens every broadphase box so thin shapes still occupy a cell
// and edge-adjacent neighbours are always returned.
const broadPad = 1.0

// Space is the broadphase over a level's solids. Static solids live in a
// resolv grid; resolv cells start at zero, so world coordinates are shifted
// by the origin of the level bounds. Moving solids can travel anywhere, so
// they are kept in a list and tested exactly on every query.
type Space struct {
	space            *resolv.Space
	originX, originY float64
	probe            *resolv.Object
	moving           []*Solid
}

// NewSpace covers bounds with cells of cellSize units.
func NewSpace(bounds gamemath.Rect, cellSize int) *Space {
	w := int(math.Ceil(bounds.Width())) + cellSize
	h := int(math.Ceil(bounds.Height())) + cellSize
	return &Space{
		space:   resolv.NewSpace(w, h, cellSize, cellSize),
		originX: bounds.Left(),
		originY: bounds.Bottom(),
		probe:   resolv.NewObject(0, 0, 1, 1),
	}
}

// Add registers a solid. A static solid's resolv object keeps a back
// pointer in Data.
func (s *Space) Add(sol *Solid) {
	if sol.Moving {
		s.moving = append(s.moving, sol)
		return
	}
	tags := []string{TagSolid}
	if sol.OneWay {
		tags = append(tags, TagOneWay)
	}
	r := sol.Rect().Inflate(broadPad)
	obj := resolv.NewObject(r.Left()-s.originX, r.Bottom()-s.originY, r.Width(), r.Height(), tags...)
	obj.SetShape(resolv.NewRectangle(0, 0, r.Width(), r.Height()))
	obj.Data = sol
	sol.obj = obj
	s.space.Add(obj)
}

// Query returns the solids with the given tag that may touch area, ordered
// by ID. Static candidates come from shared grid cells, so callers still do
// their own exact tests.
func (s *Space) Query(area gamemath.Rect, tag string) []*Solid {
	r := area.Inflate(broadPad)
	var out []*Solid
	if tag != TagMoving {
		out = s.queryStatic(r, tag)
	}
	for _, sol := range s.moving {
		if tag == TagOneWay && !sol.OneWay {
			continue
		}
		if r.Overlaps(sol.Rect().Inflate(broadPad)) {
			out = append(out, sol)
		}
	}
	slices.SortFunc(out, func(a, b *Solid) int { return a.ID - b.ID })
	return out
}

func (s *Space) queryStatic(r gamemath.Rect, tag string) []*Solid {
	s.probe.X = r.Left() - s.originX
	s.probe.Y = r.Bottom() - s.originY
	s.probe.W = r.Width()
	s.probe.H = r.Height()

	s.space.Add(s.probe)
	defer s.space.Remove(s.probe)

	check := s.probe.Check(0, 0, tag)
	if check == nil {
		return nil
	}
	objs := check.ObjectsByTags(tag)
	out := make([]*Solid, 0, len(objs))
	for _, o := range objs {
		if sol, ok := o.Data.(*Solid); ok {
			out = append(out, sol)
		}
	}
	return out
}
