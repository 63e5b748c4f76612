package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// StatusData is the transient status line (singleton component).
type StatusData struct {
	Text  string
	Fade  *gween.Sequence // alpha: in, hold, out
	Alpha float32
}

var Status = donburi.NewComponentType[StatusData]()
