package scenes

import (
	"github.com/automoto/override/progress"
	"github.com/automoto/override/shared/leveldata"
	"github.com/automoto/override/shared/navigation"
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene is one screen of the game.
type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

// Host is what scenes need from the game shell.
type Host interface {
	Nav() *navigation.Controller
	Levels() []*leveldata.Descriptor

	// Progress returns the stored progress, empty when it cannot be read.
	Progress() *progress.Progress

	// PlayLevel builds a fresh session for the level and switches to it.
	PlayLevel(id int)
	Quit()
}

// nextLevel returns the ID of the level after id, if any.
func nextLevel(all []*leveldata.Descriptor, id int) (int, bool) {
	for i, d := range all {
		if d.ID == id && i+1 < len(all) {
			return all[i+1].ID, true
		}
	}
	return 0, false
}

// firstUnfinished picks the level Play starts: the first never completed,
// or the first level when all are done.
func firstUnfinished(all []*leveldata.Descriptor, p *progress.Progress) (int, bool) {
	if len(all) == 0 {
		return 0, false
	}
	for _, d := range all {
		if !p.Completed(d.ID) {
			return d.ID, true
		}
	}
	return all[0].ID, true
}
