package ui

import (
	"bytes"
	"fmt"
	"image/color"

	cfg "github.com/automoto/parafall/config"
	"github.com/automoto/parafall/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// MenuUI holds the ebitenui interface for the title menu
type MenuUI struct {
	UI *ebitenui.UI

	// Callbacks
	OnStart func()

	// Widget references for updates
	fullscreenButton *widget.Button
	cloudsButton     *widget.Button

	// Fonts (stored as interface for ebitenui compatibility)
	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewMenuUI creates the title menu UI with ebitenui
func NewMenuUI(onStart func()) *MenuUI {
	mui := &MenuUI{
		OnStart: onStart,
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
		Size:   42,
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
	// Root container with AnchorLayout to fill the screen
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	// Content container with vertical layout, centered
	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
			widget.RowLayoutOpts.Spacing(10),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text(cfg.Menu.Title, &mui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	contentContainer.AddChild(titleLabel)

	subtitleLabel := widget.NewLabel(
		widget.LabelOpts.Text(cfg.Menu.Subtitle, &mui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{180, 190, 210, 255},
		}),
	)
	contentContainer.AddChild(subtitleLabel)

	startButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(200, 36),
		),
		widget.ButtonOpts.Image(mui.startButtonImage()),
		widget.ButtonOpts.Text("Jump!", &mui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			mui.OnStart()
		}),
	)
	contentContainer.AddChild(startButton)

	mui.fullscreenButton = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(200, 28),
		),
		widget.ButtonOpts.Image(mui.buttonImage()),
		widget.ButtonOpts.Text(fullscreenLabel(), &mui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{220, 220, 220, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			systems.ToggleFullscreen()
			mui.fullscreenButton.Text().Label = fullscreenLabel()
		}),
	)
	contentContainer.AddChild(mui.fullscreenButton)

	mui.cloudsButton = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(200, 28),
		),
		widget.ButtonOpts.Image(mui.buttonImage()),
		widget.ButtonOpts.Text(cloudsLabel(), &mui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{220, 220, 220, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			systems.ToggleClouds()
			mui.cloudsButton.Text().Label = cloudsLabel()
		}),
	)
	contentContainer.AddChild(mui.cloudsButton)

	hintLabel := widget.NewLabel(
		widget.LabelOpts.Text(
			"Arrows move - Up slows the fall - Space toggles the parachute",
			&mui.smallFace, &widget.LabelColor{
				Idle: color.RGBA{150, 160, 180, 255},
			}),
	)
	contentContainer.AddChild(hintLabel)

	rootContainer.AddChild(contentContainer)

	mui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

// Update must be called once per tick
func (mui *MenuUI) Update() {
	mui.UI.Update()
}

func fullscreenLabel() string {
	return fmt.Sprintf("Fullscreen: %s", onOff(systems.Settings().Fullscreen))
}

func cloudsLabel() string {
	return fmt.Sprintf("Clouds: %s", onOff(systems.Settings().ShowClouds))
}

func onOff(v bool) string {
	if v {
		return "On"
	}
	return "Off"
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

func (mui *MenuUI) startButtonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{40, 100, 40, 255})
	hover := image.NewNineSliceColor(color.RGBA{60, 140, 60, 255})
	pressed := image.NewNineSliceColor(color.RGBA{30, 80, 30, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 50, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}
