package entity

import (
	"image/color"

	"gridsnake/game/types"
)

// Food is the single item on the board. Its placement is owned by the
// food manager; the entity only records where it is.
type Food struct {
	Position types.Point
	Color    color.RGBA
}

func NewFood(c color.RGBA) *Food {
	return &Food{Color: c}
}

func (f *Food) MoveTo(p types.Point) {
	f.Position = p
}
