package systems

import (
	"fmt"

	cfg "github.com/automoto/skirmish/config"
	"github.com/automoto/skirmish/fonts"
	"github.com/automoto/skirmish/session"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/yohamta/donburi/ecs"
)

// NewHUDRenderer reports the fleet size and how far the local ship's
// prediction has been drifting from the server.
func NewHUDRenderer(fleet *Fleet, sess session.Reader, status func() string) func(*ecs.ECS, *ebiten.Image) {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		face, ok := fonts.HUD.Lookup()
		if !ok {
			return
		}

		info := hudLine(fleet, sess, status())
		margin := int(cfg.UI.HUDMargin)
		text.Draw(screen, info, face, margin, margin+int(cfg.UI.HUDFontSize), cfg.LightGreen)
	}
}

func hudLine(fleet *Fleet, sess session.Reader, status string) string {
	info := fmt.Sprintf("%s - Ships: %d", status, fleet.Len())
	if p, ok := fleet.Ship(sess.LocalClientID()); ok {
		info += fmt.Sprintf(" - Drift: %.1f", p.MeanDrift())
	}
	return info
}
