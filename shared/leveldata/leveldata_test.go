package leveldata

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalYAML = `
id: 7
spawn: {x: 0, y: 100}
platforms:
  - {x: 0, y: 0, width: 200, height: 20}
end_x: 150
`

func validDescriptor() *Descriptor {
	return &Descriptor{
		ID:        1,
		Spawn:     &Point{X: 0, Y: 50},
		Platforms: []PlatformSpec{{X: 0, Y: 0, Width: 100, Height: 20}},
		EndX:      90,
	}
}

func ptr(v float64) *float64 { return &v }

func TestDecodeYAMLMinimal(t *testing.T) {
	d, err := DecodeYAML(strings.NewReader(minimalYAML), "mem.yaml")
	require.NoError(t, err)
	assert.Equal(t, 7, d.ID)
	assert.Equal(t, "mem.yaml", d.Source)
	assert.Equal(t, Point{X: 0, Y: 100}, *d.Spawn)
	assert.Equal(t, "Level 7", d.Title())
	assert.Nil(t, d.TimeLimit)
}

func TestDecodeYAMLReportsLevelDataErrors(t *testing.T) {
	tests := []struct {
		name  string
		doc   string
		field string
	}{
		{"missing spawn", "platforms:\n  - {x: 0, y: 0, width: 10, height: 10}\nend_x: 5\n", "spawn"},
		{"spawn without y", "spawn: {x: 1}\nplatforms:\n  - {x: 0, y: 0, width: 10, height: 10}\nend_x: 5\n", "spawn"},
		{"platform without width", "spawn: {x: 0, y: 0}\nplatforms:\n  - {x: 0, y: 0, height: 10}\nend_x: 5\n", "platforms"},
		{"moving platform without y", "spawn: {x: 0, y: 0}\nmoving_platforms:\n  - {x: 0, width: 10, height: 10}\nend_x: 5\n", "moving_platforms"},
		{"no geometry", "spawn: {x: 0, y: 0}\nend_x: 5\n", "platforms"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeYAML(strings.NewReader(tt.doc), "bad.yaml")
			var lde *LevelDataError
			require.True(t, errors.As(err, &lde), "got %v", err)
			assert.Equal(t, tt.field, lde.Field)
			assert.Equal(t, "bad.yaml", lde.Source)
		})
	}
}

func TestDecodeYAMLSyntaxErrorIsLevelDataError(t *testing.T) {
	_, err := DecodeYAML(strings.NewReader("spawn: [unterminated"), "broken.yaml")
	var lde *LevelDataError
	require.True(t, errors.As(err, &lde))
	assert.Contains(t, lde.Error(), "broken.yaml")

	_, err = DecodeYAML(strings.NewReader(""), "empty.yaml")
	require.True(t, errors.As(err, &lde))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(d *Descriptor)
		field  string
	}{
		{"zero width platform", func(d *Descriptor) { d.Platforms[0].Width = 0 }, "platforms[0]"},
		{"negative height platform", func(d *Descriptor) { d.Platforms[0].Height = -4 }, "platforms[0]"},
		{"inverted bounds", func(d *Descriptor) {
			d.MovingPlatforms = []MovingPlatformSpec{{X: 0, Y: 0, Width: 10, Height: 10, BoundaryLeft: ptr(50), BoundaryRight: ptr(10)}}
		}, "moving_platforms[0]"},
		{"negative coin", func(d *Descriptor) { d.Coins = []CoinSpec{{Value: -1}} }, "coins[0]"},
		{"negative hazard", func(d *Descriptor) { d.Hazards = []HazardSpec{{Width: -1}} }, "hazards[0]"},
		{"unknown enemy", func(d *Descriptor) { d.Enemies = []EnemySpec{{Kind: "dragon"}} }, "enemies[0]"},
		{"script missing", func(d *Descriptor) { d.Enemies = []EnemySpec{{Kind: KindScripted}} }, "enemies[0]"},
		{"no end", func(d *Descriptor) { d.EndX = 0 }, "end_x"},
		{"zero time limit", func(d *Descriptor) { d.TimeLimit = ptr(0) }, "time_limit"},
		{"negative gravity", func(d *Descriptor) { d.Gravity = ptr(-1) }, "gravity"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDescriptor()
			tt.mutate(d)
			var lde *LevelDataError
			require.True(t, errors.As(Validate(d), &lde))
			assert.Equal(t, tt.field, lde.Field)
		})
	}

	t.Run("goal platform is an end condition", func(t *testing.T) {
		d := validDescriptor()
		d.EndX = 0
		d.Platforms = append(d.Platforms, PlatformSpec{X: 50, Y: 0, Width: 10, Height: 10, Goal: true})
		assert.NoError(t, Validate(d))
	})
}

func TestEncodeYAMLRoundTrip(t *testing.T) {
	d := validDescriptor()
	d.TimeLimit = ptr(30)
	d.MovingPlatforms = []MovingPlatformSpec{{X: 5, Y: 5, Width: 10, Height: 4, ChangeY: 1, BoundaryBottom: ptr(0), BoundaryTop: ptr(40)}}

	var buf bytes.Buffer
	require.NoError(t, EncodeYAML(&buf, d))

	got, err := DecodeYAML(&buf, "")
	require.NoError(t, err)
	assert.Equal(t, d, got)
}

const testTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="10" height="10" tilewidth="10" tileheight="10" infinite="0">
 <properties>
  <property name="level_id" type="int" value="12"/>
  <property name="requires_all_coins" type="bool" value="true"/>
 </properties>
 <objectgroup id="1" name="Spawn">
  <object id="1" x="10" y="50"><point/></object>
 </objectgroup>
 <objectgroup id="2" name="Platforms">
  <object id="2" x="0" y="90" width="100" height="10"/>
  <object id="3" x="80" y="60" width="20" height="10">
   <properties><property name="goal" type="bool" value="true"/></properties>
  </object>
 </objectgroup>
 <objectgroup id="3" name="Hazards">
  <object id="4" x="40" y="80" width="10" height="10"/>
 </objectgroup>
 <objectgroup id="4" name="Enemies">
  <object id="5" x="30" y="70">
   <properties>
    <property name="kind" value="patrol"/>
    <property name="speed" type="float" value="3"/>
   </properties>
   <point/>
  </object>
 </objectgroup>
</map>
`

func TestLoadTMX(t *testing.T) {
	fsys := fstest.MapFS{"levels/test.tmx": {Data: []byte(testTMX)}}

	d, err := LoadFile(fsys, "levels/test.tmx")
	require.NoError(t, err)

	assert.Equal(t, 12, d.ID)
	assert.True(t, d.RequiresAllCoins)
	assert.Equal(t, Point{X: 10, Y: 50}, *d.Spawn)

	require.Len(t, d.Platforms, 2)
	assert.Equal(t, PlatformSpec{X: 50, Y: 5, Width: 100, Height: 10}, d.Platforms[0])
	assert.True(t, d.Platforms[1].Goal)
	assert.Equal(t, 35.0, d.Platforms[1].Y)

	require.Len(t, d.Hazards, 1)
	assert.Equal(t, 45.0, d.Hazards[0].X)
	assert.Equal(t, 15.0, d.Hazards[0].Y)

	require.Len(t, d.Enemies, 1)
	assert.Equal(t, 3.0, d.Enemies[0].Param("speed", 2))
	assert.Equal(t, 30.0, d.Enemies[0].Param("right_bound", 30))
}

func TestLoadTMXMissingSpawn(t *testing.T) {
	doc := strings.Replace(testTMX, `<object id="1" x="10" y="50"><point/></object>`, "", 1)
	fsys := fstest.MapFS{"l.tmx": {Data: []byte(doc)}}

	_, err := LoadTMX(fsys, "l.tmx")
	var lde *LevelDataError
	require.True(t, errors.As(err, &lde))
	assert.Equal(t, "spawn", lde.Field)
	assert.Equal(t, "l.tmx", lde.Source)
}

func movingGroup(props string) string {
	return ` <objectgroup id="5" name="MovingPlatforms">
  <object id="6" x="0" y="20" width="20" height="10">
   <properties>` + props + `</properties>
  </object>
 </objectgroup>
</map>`
}

func TestLoadTMXMovingPlatform(t *testing.T) {
	doc := strings.Replace(testTMX, "</map>", movingGroup(`
    <property name="change_x" type="float" value="1.5"/>
    <property name="boundary_left" type="float" value="-40"/>
    <property name="boundary_right" type="float" value="80"/>`), 1)

	d, err := LoadTMX(fstest.MapFS{"l.tmx": {Data: []byte(doc)}}, "l.tmx")
	require.NoError(t, err)
	require.Len(t, d.MovingPlatforms, 1)
	m := d.MovingPlatforms[0]
	assert.Equal(t, 1.5, m.ChangeX)
	require.NotNil(t, m.BoundaryLeft)
	assert.Equal(t, -40.0, *m.BoundaryLeft)
	assert.Nil(t, m.BoundaryTop)
}

func TestLoadTMXRejectsMalformedProperties(t *testing.T) {
	tests := []struct {
		name      string
		from, to  string
		wantField string
	}{
		{
			name:      "map time limit",
			from:      `<property name="level_id" type="int" value="12"/>`,
			to:        `<property name="level_id" type="int" value="12"/><property name="time_limit" value="x"/>`,
			wantField: "map: time_limit",
		},
		{
			name:      "fractional level id",
			from:      `value="12"`,
			to:        `value="12.5"`,
			wantField: "map: level_id",
		},
		{
			name:      "one-way flag",
			from:      `<object id="2" x="0" y="90" width="100" height="10"/>`,
			to:        `<object id="2" x="0" y="90" width="100" height="10"><properties><property name="one_way" value="maybe"/></properties></object>`,
			wantField: "Platforms object 2: one_way",
		},
		{
			name:      "enemy param",
			from:      `<property name="speed" type="float" value="3"/>`,
			to:        `<property name="speed" value="quick"/>`,
			wantField: "Enemies object 5: speed",
		},
		{
			name:      "platform speed",
			from:      "</map>",
			to:        movingGroup(`<property name="change_x" value="fast"/>`),
			wantField: "MovingPlatforms object 6: change_x",
		},
		{
			name:      "platform boundary",
			from:      "</map>",
			to:        movingGroup(`<property name="change_x" value="1"/><property name="boundary_left" value="abc"/>`),
			wantField: "MovingPlatforms object 6: boundary_left",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := strings.Replace(testTMX, tt.from, tt.to, 1)
			require.NotEqual(t, testTMX, doc)

			_, err := LoadTMX(fstest.MapFS{"l.tmx": {Data: []byte(doc)}}, "l.tmx")
			var lde *LevelDataError
			require.True(t, errors.As(err, &lde), "got %v", err)
			assert.Equal(t, tt.wantField, lde.Field)
			assert.Equal(t, "l.tmx", lde.Source)
		})
	}
}

func TestLoadAllLevelsRejectsDuplicateIDs(t *testing.T) {
	fsys := fstest.MapFS{
		"lv/a.yaml":    {Data: []byte(minimalYAML)},
		"lv/b.yml":     {Data: []byte(minimalYAML)},
		"lv/readme.md": {Data: []byte("# levels")},
	}
	_, err := LoadAllLevels(fsys, "lv")
	var lde *LevelDataError
	require.True(t, errors.As(err, &lde))
	assert.Equal(t, "id", lde.Field)

	_, err = LoadAllLevels(fstest.MapFS{"lv/readme.md": {Data: []byte("x")}}, "lv")
	assert.Error(t, err)
}

func TestLoadFileUnsupportedExtension(t *testing.T) {
	_, err := LoadFile(fstest.MapFS{"a.json": {Data: []byte("{}")}}, "a.json")
	var lde *LevelDataError
	assert.True(t, errors.As(err, &lde))
}
