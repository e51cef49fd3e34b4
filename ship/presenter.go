// Package ship presents one networked ship: it dead-reckons the ship between
// server snapshots and keeps its scene nodes in step with the viewport.
package ship

import (
	"errors"
	"fmt"
	"log"
	"time"
	"unicode/utf8"

	cfg "github.com/automoto/skirmish/config"
	"github.com/automoto/skirmish/effects"
	"github.com/automoto/skirmish/network"
	"github.com/automoto/skirmish/scene"
	"github.com/automoto/skirmish/session"
	"github.com/automoto/skirmish/shared/gamemath"
	"github.com/automoto/skirmish/shared/netcomponents"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/font"
)

var (
	// ErrRemoved is returned by every call made after Remove.
	ErrRemoved = errors.New("ship presenter removed")
	// ErrNoSession is returned by New when Options.Session is nil.
	ErrNoSession = errors.New("ship presenter needs a session reader")
)

// Options configures a Presenter.
type Options struct {
	Session session.Reader

	// Debug adds the collision circle to the ship container.
	Debug bool

	// Now drives prediction. Defaults to time.Now.
	Now func() time.Time

	// ScreenSize reports the renderer output size. Defaults to config.C.
	ScreenSize func() (int, int)

	LabelFace font.Face
}

// Presenter owns the scene nodes of a single ship. The hull, flame, health
// overlay and debug circle live in one container that rotates with the ship;
// the name label is a separate root node so it never inherits that rotation.
type Presenter struct {
	state     netcomponents.ShipStateData
	reckoner  *network.Reckoner
	predicted gamemath.Vec2

	root          *scene.Container
	container     *scene.Container
	sprite        *scene.Sprite
	thrust        *scene.AnimatedSprite
	thrustTween   *gween.Tween
	healthOverlay *scene.Graphics
	healthBar     *effects.HealthBar
	collision     *scene.Graphics
	label         *scene.Text

	session    session.Reader
	screenSize func() (int, int)

	removed        bool
	nameMissLogged bool
}

// New builds the ship's nodes, attaches them to root and places the ship at
// its initial predicted position. Nothing is attached when initial is invalid.
func New(root *scene.Container, texture *ebiten.Image, thrustFrames []*ebiten.Image, initial netcomponents.ShipStateData, opts Options) (*Presenter, error) {
	if opts.Session == nil {
		return nil, ErrNoSession
	}
	if err := initial.Validate(); err != nil {
		return nil, err
	}

	screenSize := opts.ScreenSize
	if screenSize == nil {
		screenSize = func() (int, int) { return cfg.C.Width, cfg.C.Height }
	}

	p := &Presenter{
		state:      initial,
		healthBar:  effects.NewHealthBar(),
		reckoner:   network.NewReckoner(initial.Position, initial.Velocity, opts.Now),
		root:       root,
		session:    opts.Session,
		screenSize: screenSize,
	}
	p.ingest(initial)

	p.container = scene.NewContainer()
	p.sprite = scene.NewSprite(texture)

	p.thrust = scene.NewAnimatedSprite(thrustFrames, cfg.Ship.ThrustSpeed)
	p.thrust.SetPosition(cfg.Ship.ThrustOffsetX, cfg.Ship.ThrustOffsetY)
	p.thrust.SetVisible(false)

	if opts.Debug {
		p.collision = scene.NewGraphics()
		p.collision.SetAlpha(cfg.Ship.DebugAlpha)
		p.collision.FillCircle(p.sprite.Width()/2, p.sprite.Height()/2, cfg.Ship.CollisionShape, cfg.Ship.DebugColor)
	}

	p.label = scene.NewText("", opts.LabelFace, cfg.Ship.LabelColor)
	p.label.SetVisible(false)

	root.AddChild(p.container)
	p.container.AddChild(p.sprite)
	p.container.AddChild(p.thrust)
	p.addHealthOverlay()
	if p.collision != nil {
		p.container.AddChild(p.collision)
	}
	root.AddChild(p.label)

	p.container.SetPivot(p.sprite.Width()/2, p.sprite.Height()/2)

	p.predict()
	return p, nil
}

func (p *Presenter) addHealthOverlay() {
	r := cfg.Ship.HealthBarRadius
	p.healthOverlay = scene.NewGraphics()
	p.healthOverlay.FilterArea = scene.Rect{X: 100, Y: 100, W: 2 * r, H: 2 * r}
	p.container.AddChild(p.healthOverlay)
}

// UpdateData replaces the ship state with an authoritative snapshot. Position
// and velocity reset the prediction baseline. Nothing is drawn here.
func (p *Presenter) UpdateData(s netcomponents.ShipStateData) error {
	if p.removed {
		return ErrRemoved
	}
	if err := s.Validate(); err != nil {
		return err
	}
	if s.ID != p.state.ID {
		return fmt.Errorf("%w: ship %s cannot take state for %s", netcomponents.ErrInvalidState, p.state.ID, s.ID)
	}
	p.reckoner.Correct(s.Position, s.Velocity)
	p.ingest(s)
	return nil
}

func (p *Presenter) ingest(s netcomponents.ShipStateData) {
	p.state = s
	p.healthBar.SetHPs(s.HP, s.MaxHP)
}

// Predict advances the dead-reckoned position. Call it exactly once per
// frame, before Update.
func (p *Presenter) Predict() error {
	if p.removed {
		return ErrRemoved
	}
	p.predict()
	return nil
}

func (p *Presenter) predict() {
	p.reckoner.Advance()
	p.predicted = p.reckoner.Position()
}

// Update lays out the ship's nodes for the current frame.
func (p *Presenter) Update(vp gamemath.Viewport) error {
	if p.removed {
		return ErrRemoved
	}

	p.updateThrust()

	world := gamemath.ToWorld(p.predicted)
	x, y := gamemath.WorldToScreen(world.X, world.Y, vp)
	p.container.SetPosition(x, y)

	if OutOfView(x, y, vp) {
		p.healthOverlay.SetFilters()
	} else {
		p.healthOverlay.FilterArea = OverlayRect(x, y)
		p.healthOverlay.SetFilters(p.healthBar)
	}

	p.container.Rotation = p.state.Facing

	p.updateLabel(x, y)
	return nil
}

func (p *Presenter) updateThrust() {
	if !p.state.InputThrust {
		p.thrust.SetVisible(false)
		p.thrust.Stop()
		p.thrustTween = nil
		return
	}

	if !p.thrust.Visible() {
		p.thrustTween = gween.New(0, 1, cfg.Ship.ThrustFadeIn, ease.OutQuad)
	}
	p.thrust.SetVisible(true)
	p.thrust.Play()

	if p.thrustTween != nil {
		alpha, done := p.thrustTween.Update(1 / float32(cfg.C.TPS))
		p.thrust.SetAlpha(alpha)
		if done {
			p.thrustTween = nil
		}
	}
	p.thrust.Tick()
}

func (p *Presenter) updateLabel(x, y float64) {
	id := p.state.ID
	if id == p.session.LocalClientID() {
		p.label.SetVisible(false)
		return
	}

	name, ok := p.session.DisplayName(id)
	if !ok && !p.nameMissLogged {
		if cfg.Debug.Verbose {
			log.Printf("[ship] no display name for %s", id)
		}
		p.nameMissLogged = true
	}
	p.label.SetText(name)

	if id == p.session.KilledBy() {
		p.label.SetColor(cfg.Ship.KillerColor)
	} else {
		p.label.SetColor(cfg.Ship.LabelColor)
	}

	width := float64(utf8.RuneCountInString(name)) * cfg.Ship.LabelCharWidth
	p.label.SetPosition(x-width/2, y+p.sprite.Height())
	p.label.SetVisible(true)
}

// Remove detaches the ship from the scene. The presenter is unusable after.
func (p *Presenter) Remove() error {
	if p.removed {
		return ErrRemoved
	}
	p.root.RemoveChild(p.container)
	p.root.RemoveChild(p.label)
	p.removed = true
	return nil
}

// Viewport describes a camera centred on this ship's predicted position.
func (p *Presenter) Viewport() (gamemath.Viewport, error) {
	if p.removed {
		return gamemath.Viewport{}, ErrRemoved
	}
	world := gamemath.ToWorld(p.predicted)
	w, h := p.screenSize()
	return gamemath.Viewport{
		X:      world.X,
		Y:      world.Y,
		Width:  float64(w),
		Height: float64(h),
	}, nil
}

func (p *Presenter) ID() string { return p.state.ID }

// State returns the last ingested snapshot.
func (p *Presenter) State() netcomponents.ShipStateData { return p.state }

// Predicted returns the cached predicted position in fixed-point units.
func (p *Presenter) Predicted() gamemath.Vec2 { return p.predicted }

func (p *Presenter) Removed() bool { return p.removed }

// Drift returns the prediction error discarded by the latest correction.
func (p *Presenter) Drift() float64 { return p.reckoner.LastDrift() }

// MeanDrift averages the prediction error over recent corrections.
func (p *Presenter) MeanDrift() float64 { return p.reckoner.Log.MeanDrift() }

func (p *Presenter) Container() *scene.Container { return p.container }

func (p *Presenter) Sprite() *scene.Sprite { return p.sprite }

func (p *Presenter) Thrust() *scene.AnimatedSprite { return p.thrust }

func (p *Presenter) HealthOverlay() *scene.Graphics { return p.healthOverlay }

func (p *Presenter) HealthBar() *effects.HealthBar { return p.healthBar }

// CollisionShape is nil unless the presenter was built with Options.Debug.
func (p *Presenter) CollisionShape() *scene.Graphics { return p.collision }

func (p *Presenter) Label() *scene.Text { return p.label }
