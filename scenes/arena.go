package scenes

import (
	"log"
	"sync"

	"github.com/automoto/skirmish/assets"
	cfg "github.com/automoto/skirmish/config"
	"github.com/automoto/skirmish/fonts"
	"github.com/automoto/skirmish/scene"
	"github.com/automoto/skirmish/session"
	"github.com/automoto/skirmish/shared/messages"
	"github.com/automoto/skirmish/systems"
	"github.com/automoto/skirmish/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SnapshotFeed supplies authoritative ship snapshots. network.Client and
// DemoFeed implement it.
type SnapshotFeed interface {
	LatestSnapshot() *messages.ShipSnapshot
	Status() string
}

// ArenaScene applies incoming snapshots to the fleet and runs the ship
// systems once per tick.
type ArenaScene struct {
	ecs     *ecs.ECS
	feed    SnapshotFeed
	session *session.State
	fleet   *systems.Fleet
	once    sync.Once
}

func NewArenaScene(feed SnapshotFeed, sess *session.State) *ArenaScene {
	return &ArenaScene{
		feed:    feed,
		session: sess,
	}
}

func (as *ArenaScene) Update() {
	as.once.Do(as.configure)

	if snap := as.feed.LatestSnapshot(); snap != nil {
		if err := as.fleet.Apply(snap.Ships); err != nil {
			log.Printf("[arena] snapshot %d: %v", snap.Tick, err)
		}
	}

	as.ecs.Update()
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	if as.ecs == nil {
		return
	}
	as.ecs.Draw(screen)
}

// Fleet is nil until the first Update.
func (as *ArenaScene) Fleet() *systems.Fleet {
	return as.fleet
}

func (as *ArenaScene) configure() {
	if err := assets.LoadShaders(); err != nil {
		log.Println("[arena] failed to load shaders:", err)
	}

	as.ecs = ecs.NewECS(donburi.NewWorld())
	factory.CreateCamera(as.ecs)

	labelFace, ok := fonts.Label.Lookup()
	if !ok {
		log.Println("[arena] label font not loaded, ship names will not be drawn")
	}

	as.fleet = systems.NewFleet(as.ecs, scene.NewContainer(), systems.FleetOptions{
		Session:      as.session,
		Texture:      assets.ShipTexture(),
		ThrustFrames: assets.ThrustFrames(),
		Debug:        cfg.Debug.CollisionShapes,
		LabelFace:    labelFace,
	})

	// Prediction runs before the camera so it follows this frame's position.
	as.ecs.AddSystem(as.fleet.PredictShips)
	as.ecs.AddSystem(systems.NewCameraSystem(as.fleet, as.session))
	as.ecs.AddSystem(as.fleet.LayoutShips)

	as.ecs.AddRenderer(cfg.Default, systems.DrawBackdrop)
	as.ecs.AddRenderer(cfg.Default, as.fleet.DrawShips)
	as.ecs.AddRenderer(cfg.Default, as.fleet.DrawDebug)
	as.ecs.AddRenderer(cfg.Default, systems.NewHUDRenderer(as.fleet, as.session, as.feed.Status))
}
