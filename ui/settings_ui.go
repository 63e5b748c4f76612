package ui

import (
	"bytes"
	"image/color"

	"github.com/automoto/override/components"
	"github.com/automoto/override/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font/gofont/goregular"
)

var settingsRows = []components.SettingsOption{
	components.SettingsOptMusicVolume,
	components.SettingsOptSFXVolume,
	components.SettingsOptFullscreen,
	components.SettingsOptResolution,
}

// SettingsUI is the mouse-driven settings panel. Keyboard and gamepad edit
// the same values through systems.NewUpdateSettingsMenu.
type SettingsUI struct {
	UI *ebitenui.UI

	ecs    *ecs.ECS
	onBack func()

	nameLabels  map[components.SettingsOption]*widget.Label
	valueLabels map[components.SettingsOption]*widget.Label
	backButton  *widget.Button

	titleFace  text.Face
	normalFace text.Face
}

// NewSettingsUI builds the panel over the settings stored in e.
func NewSettingsUI(e *ecs.ECS, onBack func()) (*SettingsUI, error) {
	sui := &SettingsUI{
		ecs:         e,
		onBack:      onBack,
		nameLabels:  map[components.SettingsOption]*widget.Label{},
		valueLabels: map[components.SettingsOption]*widget.Label{},
	}
	if err := sui.loadFonts(); err != nil {
		return nil, err
	}
	sui.buildUI()
	sui.Refresh()
	return sui, nil
}

func (sui *SettingsUI) loadFonts() error {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return err
	}
	sui.titleFace = &text.GoTextFace{Source: fontSource, Size: 32}
	sui.normalFace = &text.GoTextFace{Source: fontSource, Size: 20}
	return nil
}

func (sui *SettingsUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{15, 25, 50, 255})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	content := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(16)),
			widget.RowLayoutOpts.Spacing(12),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	content.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("SETTINGS", &sui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 140, 0, 255},
		}),
	))
	for _, opt := range settingsRows {
		content.AddChild(sui.buildRow(opt))
	}

	sui.backButton = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(120, 32)),
		widget.ButtonOpts.Image(buttonImage()),
		widget.ButtonOpts.Text("Back", &sui.normalFace, buttonTextColor()),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			systems.CloseSettings(sui.ecs, sui.onBack)
		}),
	)
	content.AddChild(sui.backButton)

	rootContainer.AddChild(content)
	sui.UI = &ebitenui.UI{Container: rootContainer}
}

func (sui *SettingsUI) buildRow(opt components.SettingsOption) *widget.Container {
	padding := widget.Insets{Top: 4, Bottom: 4, Left: 8, Right: 8}
	row := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{40, 40, 60, 255})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(10),
		)),
	)

	name := widget.NewLabel(
		widget.LabelOpts.Text("", &sui.normalFace, &widget.LabelColor{Idle: color.RGBA{255, 255, 255, 255}}),
	)
	value := widget.NewLabel(
		widget.LabelOpts.Text("", &sui.normalFace, &widget.LabelColor{Idle: color.RGBA{255, 180, 50, 255}}),
	)
	sui.nameLabels[opt] = name
	sui.valueLabels[opt] = value

	row.AddChild(name)
	row.AddChild(sui.stepButton("<", opt, -1))
	row.AddChild(value)
	row.AddChild(sui.stepButton(">", opt, 1))
	return row
}

func (sui *SettingsUI) stepButton(label string, opt components.SettingsOption, dir int) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(36, 28)),
		widget.ButtonOpts.Image(buttonImage()),
		widget.ButtonOpts.Text(label, &sui.normalFace, buttonTextColor()),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			s := systems.GetOrCreateSettingsMenu(sui.ecs)
			s.SelectedOption = opt
			systems.AdjustSetting(sui.ecs, opt, dir)
		}),
	)
}

// Refresh copies the current settings into the widgets.
func (sui *SettingsUI) Refresh() {
	s := systems.GetOrCreateSettingsMenu(sui.ecs)
	for _, opt := range settingsRows {
		name, value := systems.SettingLabel(s, opt)
		if opt == s.SelectedOption {
			name = "> " + name
		}
		sui.nameLabels[opt].Label = name
		sui.valueLabels[opt].Label = value
	}
	if t := sui.backButton.Text(); t != nil {
		t.Label = "Back"
		if s.SelectedOption == components.SettingsOptBack {
			t.Label = "> Back <"
		}
	}
}

func buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
		Hover:    image.NewNineSliceColor(color.RGBA{80, 80, 100, 255}),
		Pressed:  image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
		Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 40, 255}),
	}
}

func buttonTextColor() *widget.ButtonTextColor {
	return &widget.ButtonTextColor{
		Idle:    color.RGBA{255, 255, 255, 255},
		Hover:   color.RGBA{255, 255, 200, 255},
		Pressed: color.RGBA{200, 200, 200, 255},
	}
}
