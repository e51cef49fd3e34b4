package tags

import "github.com/yohamta/donburi"

var (
	Ship      = donburi.NewTag().SetName("Ship")
	LocalShip = donburi.NewTag().SetName("LocalShip")
)

// Resolv tags for the debug collision space
const (
	ResolvShip = "Ship"
)
