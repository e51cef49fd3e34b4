package scene

import (
	"github.com/automoto/skirmish/assets/animations"
	"github.com/hajimehoshi/ebiten/v2"
)

// AnimatedSprite cycles through frames while playing. Tick must be called
// once per game update.
type AnimatedSprite struct {
	Base
	Frames []*ebiten.Image

	anim    *animations.Animation
	playing bool
}

// NewAnimatedSprite builds a stopped animation. speed is in frames per tick.
func NewAnimatedSprite(frames []*ebiten.Image, speed float32) *AnimatedSprite {
	last := len(frames) - 1
	if last < 0 {
		last = 0
	}
	return &AnimatedSprite{
		Base:   newBase(),
		Frames: frames,
		anim:   animations.NewAnimation(0, last, 1, speed),
	}
}

func (a *AnimatedSprite) Play() {
	a.playing = true
}

func (a *AnimatedSprite) Stop() {
	a.playing = false
}

func (a *AnimatedSprite) Playing() bool {
	return a.playing
}

func (a *AnimatedSprite) CurrentFrame() int {
	return a.anim.Frame()
}

// Tick advances the animation if it is playing.
func (a *AnimatedSprite) Tick() {
	if a.playing {
		a.anim.Update()
	}
}

func (a *AnimatedSprite) draw(dst *ebiten.Image, parent ebiten.GeoM, alpha float32) {
	if len(a.Frames) == 0 {
		return
	}
	drawImage(dst, a.Frames[a.anim.Frame()], &a.Base, parent, alpha)
}
