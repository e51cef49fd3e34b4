package components

import (
	"github.com/automoto/skirmish/ship"
	"github.com/yohamta/donburi"
)

// ShipData links a fleet entity to the presenter that draws it.
type ShipData struct {
	Presenter *ship.Presenter
}

var Ship = donburi.NewComponentType[ShipData]()
