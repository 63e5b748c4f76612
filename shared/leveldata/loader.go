package leveldata

import (
	"fmt"
	"io/fs"
	"math"
	"path"
	"slices"
	"strconv"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Object group names recognised in TMX levels (case-insensitive).
const (
	GroupSpawn           = "spawn"
	GroupPlatforms       = "platforms"
	GroupMovingPlatforms = "movingplatforms"
	GroupCoins           = "coins"
	GroupHazards         = "hazards"
	GroupEnemies         = "enemies"
	GroupGoal            = "goal"
)

// enemyParams are the object properties copied into EnemySpec.Params.
var enemyParams = []string{
	"left_bound", "right_bound", "speed",
	"interval_min", "interval_max", "jump_strength",
	"amplitude", "phase_rate",
}

// LoadTMX parses a Tiled map into a descriptor. It takes an fs.FS so callers
// can pass embed.FS (built-in levels) or os.DirFS (user levels).
//
// Tiled places the origin at the top-left with y growing down; objects are
// flipped into world space using the map's pixel height.
func LoadTMX(fsys fs.FS, tmxPath string) (*Descriptor, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, &LevelDataError{Source: tmxPath, Reason: fmt.Sprintf("load TMX: %v", err)}
	}

	mapHeight := float64(levelMap.Height * levelMap.TileHeight)
	toWorld := func(o *tiled.Object) (cx, cy float64) {
		return o.X + o.Width/2, mapHeight - (o.Y + o.Height/2)
	}

	d := &Descriptor{Source: tmxPath}
	r := &propReader{source: tmxPath}
	if levelMap.Properties != nil {
		props := *levelMap.Properties
		r.at("map")
		d.ID = r.integer(props, "level_id")
		d.Name = props.GetString("name")
		d.EndX = r.number(props, "end_x")
		d.RequiresAllCoins = r.flag(props, "requires_all_coins")
		d.TimeLimit = r.optional(props, "time_limit")
		d.Gravity = r.optional(props, "gravity")
	}

	for _, og := range levelMap.ObjectGroups {
		group := strings.ToLower(strings.ReplaceAll(og.Name, "_", ""))
		for _, o := range og.Objects {
			x, y := toWorld(o)
			r.at(fmt.Sprintf("%s object %d", og.Name, o.ID))
			switch group {
			case GroupSpawn:
				d.Spawn = &Point{X: x, Y: y}
			case GroupPlatforms:
				d.Platforms = append(d.Platforms, PlatformSpec{
					X: x, Y: y, Width: o.Width, Height: o.Height,
					OneWay: r.flag(o.Properties, "one_way"),
					Goal:   r.flag(o.Properties, "goal"),
				})
			case GroupMovingPlatforms:
				// Boundaries are world-space values, not Tiled pixels.
				d.MovingPlatforms = append(d.MovingPlatforms, MovingPlatformSpec{
					X: x, Y: y, Width: o.Width, Height: o.Height,
					ChangeX:        r.number(o.Properties, "change_x"),
					ChangeY:        r.number(o.Properties, "change_y"),
					BoundaryLeft:   r.optional(o.Properties, "boundary_left"),
					BoundaryRight:  r.optional(o.Properties, "boundary_right"),
					BoundaryBottom: r.optional(o.Properties, "boundary_bottom"),
					BoundaryTop:    r.optional(o.Properties, "boundary_top"),
				})
			case GroupCoins:
				d.Coins = append(d.Coins, CoinSpec{
					X: x, Y: y,
					Value: r.integer(o.Properties, "value"),
				})
			case GroupHazards:
				d.Hazards = append(d.Hazards, HazardSpec{
					X: x, Y: y, Width: o.Width, Height: o.Height,
					Damage: r.integer(o.Properties, "damage"),
				})
			case GroupEnemies:
				spec := EnemySpec{
					Kind:   o.Properties.GetString("kind"),
					X:      x,
					Y:      y,
					Script: o.Properties.GetString("script"),
				}
				for _, name := range enemyParams {
					if v := r.optional(o.Properties, name); v != nil {
						if spec.Params == nil {
							spec.Params = map[string]float64{}
						}
						spec.Params[name] = *v
					}
				}
				d.Enemies = append(d.Enemies, spec)
			case GroupGoal:
				d.Goal = &RectSpec{X: x, Y: y, Width: o.Width, Height: o.Height}
			}
		}
	}

	if r.err != nil {
		return nil, r.err
	}
	if err := Validate(d); err != nil {
		return nil, err
	}
	return d, nil
}

// LoadFile loads a descriptor, choosing the decoder by extension.
func LoadFile(fsys fs.FS, p string) (*Descriptor, error) {
	switch strings.ToLower(path.Ext(p)) {
	case ".tmx":
		return LoadTMX(fsys, p)
	case ".yaml", ".yml":
		f, err := fsys.Open(p)
		if err != nil {
			return nil, fmt.Errorf("open level %s: %w", p, err)
		}
		defer f.Close()
		return DecodeYAML(f, p)
	}
	return nil, &LevelDataError{Source: p, Reason: "unsupported level file extension"}
}

// IsLevelFile reports whether p has an extension LoadFile understands.
func IsLevelFile(p string) bool {
	switch strings.ToLower(path.Ext(p)) {
	case ".tmx", ".yaml", ".yml":
		return true
	}
	return false
}

// LoadAllLevels discovers every level file in levelsDir within fsys and
// returns them ordered by ID, then by file name. Duplicate IDs are an error.
func LoadAllLevels(fsys fs.FS, levelsDir string) ([]*Descriptor, error) {
	entries, err := fs.ReadDir(fsys, levelsDir)
	if err != nil {
		return nil, fmt.Errorf("read levels dir %s: %w", levelsDir, err)
	}

	var levels []*Descriptor
	for _, entry := range entries {
		if entry.IsDir() || !IsLevelFile(entry.Name()) {
			continue
		}
		d, err := LoadFile(fsys, path.Join(levelsDir, entry.Name()))
		if err != nil {
			return nil, err
		}
		levels = append(levels, d)
	}
	if len(levels) == 0 {
		return nil, fmt.Errorf("no level files found in %s", levelsDir)
	}

	slices.SortFunc(levels, func(a, b *Descriptor) int {
		if a.ID != b.ID {
			return a.ID - b.ID
		}
		return strings.Compare(a.Source, b.Source)
	})
	for i := 1; i < len(levels); i++ {
		if levels[i].ID == levels[i-1].ID {
			return nil, &LevelDataError{
				Source: levels[i].Source,
				Field:  "id",
				Reason: fmt.Sprintf("duplicate level id %d (also in %s)", levels[i].ID, levels[i-1].Source),
			}
		}
	}
	return levels, nil
}

// propReader parses typed Tiled properties. The first malformed value is
// kept as a LevelDataError naming the map or object it came from.
type propReader struct {
	source string
	where  string
	err    *LevelDataError
}

func (r *propReader) at(where string) { r.where = where }

func (r *propReader) fail(name, value, want string) {
	if r.err != nil {
		return
	}
	r.err = &LevelDataError{
		Source: r.source,
		Field:  r.where + ": " + name,
		Reason: fmt.Sprintf("%q is not %s", value, want),
	}
}

// optional returns nil for an absent property.
func (r *propReader) optional(p tiled.Properties, name string) *float64 {
	s := p.GetString(name)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		r.fail(name, s, "a number")
		return nil
	}
	return &v
}

func (r *propReader) number(p tiled.Properties, name string) float64 {
	if v := r.optional(p, name); v != nil {
		return *v
	}
	return 0
}

func (r *propReader) integer(p tiled.Properties, name string) int {
	s := p.GetString(name)
	if s == "" {
		return 0
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		r.fail(name, s, "an integer")
		return 0
	}
	return v
}

func (r *propReader) flag(p tiled.Properties, name string) bool {
	s := p.GetString(name)
	if s == "" {
		return false
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		r.fail(name, s, "true or false")
		return false
	}
	return b
}
