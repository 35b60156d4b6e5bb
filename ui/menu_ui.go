package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	cfg "github.com/automoto/hypermaze/config"
	"github.com/automoto/hypermaze/systems"
)

// MenuUI holds the ebitenui interface for the title menu
type MenuUI struct {
	UI *ebitenui.UI

	// Callbacks
	OnStart func()
	OnExit  func()

	// Widget references for updates
	controlsButton *widget.Button
	clockButton    *widget.Button
	fovButton      *widget.Button
	scaleButton    *widget.Button
	bestLabel      *widget.Label

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

var fovSteps = []float64{60, 75, 90, 105, 120}
var scaleSteps = []float64{0.75, 1.0, 1.25, 1.5}

// NewMenuUI creates the title menu with ebitenui
func NewMenuUI(onStart, onExit func()) *MenuUI {
	mui := &MenuUI{
		OnStart: onStart,
		OnExit:  onExit,
	}

	mui.loadFonts()
	mui.buildUI()

	return mui
}

func (mui *MenuUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	mui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   28,
	}
	mui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   16,
	}
	mui.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   12,
	}
}

func (mui *MenuUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 255})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text("HYPERMAZE", &mui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	contentContainer.AddChild(titleLabel)

	d := cfg.C.Dimensions
	dimsLabel := widget.NewLabel(
		widget.LabelOpts.Text(fmt.Sprintf("Maze: %dx%dx%dx%d", d[0], d[1], d[2], d[3]),
			&mui.normalFace, &widget.LabelColor{
				Idle: color.RGBA{180, 180, 200, 255},
			}),
	)
	contentContainer.AddChild(dimsLabel)

	mui.bestLabel = widget.NewLabel(
		widget.LabelOpts.Text(mui.bestText(), &mui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{180, 200, 180, 255},
		}),
	)
	contentContainer.AddChild(mui.bestLabel)

	startButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(160, 32)),
		widget.ButtonOpts.Image(mui.buttonImage()),
		widget.ButtonOpts.Text("START", &mui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{200, 255, 200, 255},
			Pressed: color.RGBA{150, 200, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if mui.OnStart != nil {
				mui.OnStart()
			}
		}),
	)
	contentContainer.AddChild(startButton)

	contentContainer.AddChild(mui.buildSettingsContainer())

	exitButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(160, 28)),
		widget.ButtonOpts.Image(mui.buttonImage()),
		widget.ButtonOpts.Text("EXIT", &mui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 200, 200, 255},
			Pressed: color.RGBA{200, 150, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if mui.OnExit != nil {
				mui.OnExit()
			}
		}),
	)
	contentContainer.AddChild(exitButton)

	rootContainer.AddChild(contentContainer)

	mui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

// buildSettingsContainer creates the cycle buttons for the persisted display
// settings. Each click advances the setting and saves it immediately.
func (mui *MenuUI) buildSettingsContainer() *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(4),
		)),
	)

	mui.controlsButton = mui.settingButton(mui.controlsText(), func() {
		cfg.C.DisplayControls = !cfg.C.DisplayControls
		mui.controlsButton.Text().Label = mui.controlsText()
	})
	container.AddChild(mui.controlsButton)

	mui.clockButton = mui.settingButton(mui.clockText(), func() {
		if cfg.C.DisplayClock == cfg.ClockStopwatch {
			cfg.C.DisplayClock = cfg.ClockNone
		} else {
			cfg.C.DisplayClock = cfg.ClockStopwatch
		}
		mui.clockButton.Text().Label = mui.clockText()
	})
	container.AddChild(mui.clockButton)

	mui.fovButton = mui.settingButton(mui.fovText(), func() {
		cfg.C.FOV = nextStep(fovSteps, cfg.C.FOV)
		mui.fovButton.Text().Label = mui.fovText()
	})
	container.AddChild(mui.fovButton)

	mui.scaleButton = mui.settingButton(mui.scaleText(), func() {
		cfg.C.UIScale = nextStep(scaleSteps, cfg.C.UIScale)
		mui.scaleButton.Text().Label = mui.scaleText()
	})
	container.AddChild(mui.scaleButton)

	return container
}

func (mui *MenuUI) settingButton(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(200, 26)),
		widget.ButtonOpts.Image(mui.buttonImage()),
		widget.ButtonOpts.Text(label, &mui.smallFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{220, 220, 220, 255},
			Hover:   color.RGBA{255, 255, 255, 255},
			Pressed: color.RGBA{180, 180, 180, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
			systems.SaveCurrentSettings()
		}),
	)
}

// nextStep returns the step after the closest match to v, wrapping around.
func nextStep(steps []float64, v float64) float64 {
	closest := 0
	for i, s := range steps {
		if abs(s-v) < abs(steps[closest]-v) {
			closest = i
		}
	}
	return steps[(closest+1)%len(steps)]
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

func (mui *MenuUI) controlsText() string {
	if cfg.C.DisplayControls {
		return "Controls overlay: ON"
	}
	return "Controls overlay: OFF"
}

func (mui *MenuUI) clockText() string {
	if cfg.C.DisplayClock == cfg.ClockStopwatch {
		return "Clock: STOPWATCH"
	}
	return "Clock: OFF"
}

func (mui *MenuUI) fovText() string {
	return fmt.Sprintf("Field of view: %.0f", cfg.C.FOV)
}

func (mui *MenuUI) scaleText() string {
	return fmt.Sprintf("UI scale: %.2f", cfg.C.UIScale)
}

func (mui *MenuUI) bestText() string {
	if best := systems.BestTime(systems.DimensionsKey()); best > 0 {
		return fmt.Sprintf("Best time: %s", systems.FormatClock(best))
	}
	return "No best time yet"
}

// Update processes UI events. Call once per game tick.
func (mui *MenuUI) Update() {
	mui.bestLabel.Label = mui.bestText()
	mui.UI.Update()
}

// Draw renders the menu.
func (mui *MenuUI) Draw(screen *ebiten.Image) {
	mui.UI.Draw(screen)
}

func (mui *MenuUI) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 60, 80, 255})
	hover := image.NewNineSliceColor(color.RGBA{80, 80, 100, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 40, 60, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}
