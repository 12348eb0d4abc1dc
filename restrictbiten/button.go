package restrictbiten

import (
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/oliverbestmann/byke"
	"github.com/oliverbestmann/byke/bykebiten"
	"github.com/oliverbestmann/byke/bykebiten/assets"
	"github.com/oliverbestmann/byke/bykebiten/color"
	"github.com/oliverbestmann/byke/gm"
)

// ButtonStyle describes the appearance of a button built by Button.
type ButtonStyle struct {
	Width           float64
	Height          float64
	BackgroundColor color.Color
	FontSize        float64
	TextColor       color.Color
}

// DefaultButtonStyle returns a 150x65 pixel dark gray button with white
// text at 28 points.
func DefaultButtonStyle() ButtonStyle {
	return ButtonStyle{
		Width:           150,
		Height:          65,
		BackgroundColor: color.Gray(0.25),
		FontSize:        28,
		TextColor:       color.White,
	}
}

// buttonBorderWidth is the stroke width around the button shape.
const buttonBorderWidth = 5.0

// Button builds a clickable button bundle: the zero value of the marker
// component B, a filled rectangle of the styled size with a border stroke,
// and a child entity showing the label centered on the button. Attach an
// observer for bykebiten.Clicked to the spawned entity to react to
// presses:
//
//	commands.
//		Spawn(restrictbiten.Button[QuitButton]("Quit", style)).
//		Observe(func(_ byke.On[bykebiten.Clicked]) { ... })
func Button[B byke.IsComponent[B]](label string, style ButtonStyle) byke.ErasedComponent {
	var marker B

	var shape bykebiten.Path
	shape.Rectangle(gm.RectWithCenterAndSize(gm.Vec{}, gm.Vec{X: style.Width, Y: style.Height}))

	return byke.Bundle(
		marker,
		shape,
		bykebiten.Fill{Color: style.BackgroundColor},
		bykebiten.Stroke{
			Width: buttonBorderWidth,
			Color: style.BackgroundColor,
		},
		bykebiten.Interactable{},

		byke.SpawnChild(
			bykebiten.Text{Text: label},
			bykebiten.TextFace{Face: &text.GoTextFace{
				Source: assets.FiraMono(),
				Size:   style.FontSize,
			}},
			bykebiten.ColorTint{Color: style.TextColor},
			bykebiten.Layer{Z: 1},
		),
	)
}
