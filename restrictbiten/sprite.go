// Package restrictbiten provides bundle builders for the bykebiten
// renderer: grid aligned square sprites and simple text buttons.
package restrictbiten

import (
	"github.com/oliverbestmann/byke"
	"github.com/oliverbestmann/byke/bykebiten"
	"github.com/oliverbestmann/byke/bykebiten/color"
	"github.com/oliverbestmann/byke/gm"
)

// SquareSprite describes a square of Size pixels placed on a grid of Grid
// sized cells. X and Y are grid coordinates, Z selects the render layer.
type SquareSprite struct {
	X, Y, Z float64
	Color   color.Color
	Size    float64
	Grid    float64
}

// DefaultSquareSprite returns a black square of 100 pixels on a 100 pixel
// grid, placed at the origin.
func DefaultSquareSprite() SquareSprite {
	return SquareSprite{
		Color: color.Black,
		Size:  100,
		Grid:  100,
	}
}

// SquareSpriteBundle maps the given SquareSprite onto a renderable bundle.
// The sprite is placed at (X*Grid, Y*Grid) with a custom size of
// (Size, Size). Values are passed through uninterpreted, there is no
// validation of negative sizes or out of range colors.
func SquareSpriteBundle(sprite SquareSprite) byke.ErasedComponent {
	return byke.Bundle(
		bykebiten.Sprite{
			CustomSize: bykebiten.Some(gm.Vec{X: sprite.Size, Y: sprite.Size}),
		},
		bykebiten.ColorTint{Color: sprite.Color},
		bykebiten.TransformFromXY(sprite.X*sprite.Grid, sprite.Y*sprite.Grid),
		bykebiten.Layer{Z: sprite.Z},
	)
}
