package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/skirmish/config"
	"github.com/automoto/skirmish/fonts"
	"github.com/automoto/skirmish/network"
	"github.com/automoto/skirmish/scenes"
	"github.com/automoto/skirmish/session"
	"github.com/automoto/skirmish/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/gofont/goregular"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(scene Scene) *Game {
	if err := fonts.LoadFontWithSize(fonts.Label, goregular.TTF, config.Ship.LabelFontSize); err != nil {
		log.Printf("Warning: %v", err)
	}
	if err := fonts.LoadFontWithSize(fonts.HUD, goregular.TTF, config.UI.HUDFontSize); err != nil {
		log.Printf("Warning: %v", err)
	}

	return &Game{
		bounds: image.Rectangle{},
		scene:  scene,
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	// Initialize persistence and load saved settings; flags override them
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettings(saved)
	}

	addr := flag.String("addr", config.Network.ServerAddress, "Arena server address (host:port)")
	name := flag.String("name", config.Network.PlayerName, "Display name sent when joining")
	offline := flag.Bool("offline", config.Debug.Offline, "Fly a local demo fleet instead of connecting")
	shapes := flag.Bool("shapes", config.Debug.CollisionShapes, "Draw ship collision shapes")
	verbose := flag.Bool("verbose", config.Debug.Verbose, "Log cosmetic misses such as unknown ship names")
	save := flag.Bool("save", false, "Remember these settings for the next run")
	flag.Parse()

	config.Network.ServerAddress = *addr
	config.Network.PlayerName = *name
	config.Debug.Offline = *offline
	config.Debug.CollisionShapes = *shapes
	config.Debug.Verbose = *verbose

	if *save {
		_ = systems.SaveSettings(systems.CurrentSettings())
	}

	sess := session.NewState()
	var feed scenes.SnapshotFeed
	if config.Debug.Offline {
		feed = scenes.NewDemoFeed(sess, nil)
	} else {
		client := network.NewClient(sess)
		client.Connect(config.Network.ServerAddress, config.Network.Version, config.Network.PlayerName)
		defer client.Disconnect()
		feed = client
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("skirmish")
	ebiten.SetTPS(config.C.TPS)

	if err := ebiten.RunGame(NewGame(scenes.NewArenaScene(feed, sess))); err != nil {
		log.Fatal(err)
	}
}
