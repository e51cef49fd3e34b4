package systems

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/automoto/skirmish/archetypes"
	cfg "github.com/automoto/skirmish/config"
	"github.com/automoto/skirmish/components"
	"github.com/automoto/skirmish/scene"
	"github.com/automoto/skirmish/session"
	"github.com/automoto/skirmish/ship"
	"github.com/automoto/skirmish/shared/gamemath"
	"github.com/automoto/skirmish/shared/netcomponents"
	"github.com/automoto/skirmish/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

var (
	ErrShipExists  = errors.New("ship already spawned")
	ErrUnknownShip = errors.New("unknown ship")
)

// FleetOptions carries what every presenter in the fleet shares.
type FleetOptions struct {
	Session      session.Reader
	Texture      *ebiten.Image
	ThrustFrames []*ebiten.Image
	Debug        bool
	Now          func() time.Time
	ScreenSize   func() (int, int)
	LabelFace    font.Face
}

// Fleet keeps exactly one presenter per live ship id. Ships only come and go
// through Spawn and Despawn; Apply calls them explicitly while reconciling a
// snapshot.
type Fleet struct {
	ecs     *ecs.ECS
	root    *scene.Container
	opts    FleetOptions
	entries map[string]donburi.Entity
	space   *resolv.Space
}

func NewFleet(e *ecs.ECS, root *scene.Container, opts FleetOptions) *Fleet {
	return &Fleet{
		ecs:     e,
		root:    root,
		opts:    opts,
		entries: make(map[string]donburi.Entity),
		space:   resolv.NewSpace(cfg.Arena.Width, cfg.Arena.Height, cfg.Arena.CellSize, cfg.Arena.CellSize),
	}
}

// Spawn creates the presenter for a ship id that is not yet live.
func (f *Fleet) Spawn(state netcomponents.ShipStateData) error {
	if _, ok := f.entries[state.ID]; ok {
		return fmt.Errorf("%w: %s", ErrShipExists, state.ID)
	}

	p, err := ship.New(f.root, f.opts.Texture, f.opts.ThrustFrames, state, ship.Options{
		Session:    f.opts.Session,
		Debug:      f.opts.Debug,
		Now:        f.opts.Now,
		ScreenSize: f.opts.ScreenSize,
		LabelFace:  f.opts.LabelFace,
	})
	if err != nil {
		return fmt.Errorf("spawn ship %s: %w", state.ID, err)
	}

	entry := archetypes.Ship.Spawn(f.ecs)
	components.Ship.SetValue(entry, components.ShipData{Presenter: p})
	netcomponents.ShipState.SetValue(entry, state)

	w, h := p.Sprite().Width(), p.Sprite().Height()
	obj := resolv.NewObject(0, 0, w, h, tags.ResolvShip)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = entry
	f.space.Add(obj)
	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	syncCollider(obj, p)

	f.entries[state.ID] = entry.Entity()
	f.syncLocalTag(entry, state.ID)

	log.Printf("[fleet] spawned ship %s", state.ID)
	return nil
}

// Despawn removes a live ship and its presenter.
func (f *Fleet) Despawn(id string) error {
	entry, ok := f.entry(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownShip, id)
	}

	if err := components.Ship.Get(entry).Presenter.Remove(); err != nil {
		return fmt.Errorf("despawn ship %s: %w", id, err)
	}
	if obj := components.Object.Get(entry).Object; obj != nil {
		f.space.Remove(obj)
	}
	entry.Remove()
	delete(f.entries, id)

	log.Printf("[fleet] despawned ship %s", id)
	return nil
}

// Update feeds a snapshot to a live ship.
func (f *Fleet) Update(state netcomponents.ShipStateData) error {
	entry, ok := f.entry(state.ID)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownShip, state.ID)
	}
	if err := components.Ship.Get(entry).Presenter.UpdateData(state); err != nil {
		return err
	}
	netcomponents.ShipState.SetValue(entry, state)
	return nil
}

// Apply reconciles the fleet with a full snapshot: unknown ids are spawned,
// known ids updated and ids missing from the snapshot despawned. Invalid
// states are skipped and reported; the ship keeps its previous state.
func (f *Fleet) Apply(states []netcomponents.ShipStateData) error {
	var errs []error
	present := make(map[string]bool, len(states))

	for _, s := range states {
		present[s.ID] = true
		var err error
		if _, ok := f.entries[s.ID]; ok {
			err = f.Update(s)
		} else {
			err = f.Spawn(s)
		}
		if err != nil {
			errs = append(errs, err)
		}
	}

	for id := range f.entries {
		if !present[id] {
			if err := f.Despawn(id); err != nil {
				errs = append(errs, err)
			}
		}
	}

	return errors.Join(errs...)
}

// Ship returns the presenter for a live id.
func (f *Fleet) Ship(id string) (*ship.Presenter, bool) {
	entry, ok := f.entry(id)
	if !ok {
		return nil, false
	}
	return components.Ship.Get(entry).Presenter, true
}

func (f *Fleet) Len() int {
	return len(f.entries)
}

// Space exposes the debug collision space.
func (f *Fleet) Space() *resolv.Space {
	return f.space
}

func (f *Fleet) entry(id string) (*donburi.Entry, bool) {
	entity, ok := f.entries[id]
	if !ok || !f.ecs.World.Valid(entity) {
		return nil, false
	}
	return f.ecs.World.Entry(entity), true
}

// syncLocalTag keeps tags.LocalShip on whichever ship the session says is
// ours. The local id can arrive after the ship was spawned.
func (f *Fleet) syncLocalTag(entry *donburi.Entry, id string) {
	isLocal := f.opts.Session != nil && id == f.opts.Session.LocalClientID()
	hasTag := entry.HasComponent(tags.LocalShip)
	switch {
	case isLocal && !hasTag:
		entry.AddComponent(tags.LocalShip)
	case !isLocal && hasTag:
		entry.RemoveComponent(tags.LocalShip)
	}
}

// PredictShips advances every ship's dead-reckoned position. It runs before
// the camera so the camera follows this frame's prediction.
func (f *Fleet) PredictShips(e *ecs.ECS) {
	for id := range f.entries {
		entry, ok := f.entry(id)
		if !ok {
			continue
		}
		p := components.Ship.Get(entry).Presenter
		if err := p.Predict(); err != nil {
			log.Printf("[fleet] predict %s: %v", id, err)
			continue
		}
		syncCollider(components.Object.Get(entry).Object, p)
		f.syncLocalTag(entry, id)
	}
}

// LayoutShips positions every ship's nodes for the camera's viewport.
func (f *Fleet) LayoutShips(e *ecs.ECS) {
	vp := currentViewport(e)
	for id := range f.entries {
		entry, ok := f.entry(id)
		if !ok {
			continue
		}
		if err := components.Ship.Get(entry).Presenter.Update(vp); err != nil {
			log.Printf("[fleet] update %s: %v", id, err)
		}
	}
}

// syncCollider centres the ship's collision object on its predicted world
// position.
func syncCollider(obj *resolv.Object, p *ship.Presenter) {
	if obj == nil {
		return
	}
	world := gamemath.ToWorld(p.Predicted())
	obj.X = world.X - obj.W/2
	obj.Y = world.Y - obj.H/2
	obj.Update()
}

func currentViewport(e *ecs.ECS) gamemath.Viewport {
	if entry, ok := components.Camera.First(e.World); ok {
		return components.Camera.Get(entry).Viewport()
	}
	return gamemath.Viewport{Width: float64(cfg.C.Width), Height: float64(cfg.C.Height)}
}
