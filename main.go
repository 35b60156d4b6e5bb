package main

import (
	"image"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"

	"github.com/automoto/hypermaze/config"
	"github.com/automoto/hypermaze/fonts"
	"github.com/automoto/hypermaze/scenes"
	"github.com/automoto/hypermaze/systems"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	fonts.Load(config.C.Resources)

	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewMenuScene(g)

	return g
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

// configPath resolves the settings file, with an env override for running
// from a different working directory.
func configPath() string {
	if p := os.Getenv("HYPERMAZE_CONFIG"); p != "" {
		return p
	}
	return "config.txt"
}

func main() {
	// Optional .env for local overrides; absence is fine.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Could not load .env: %v", err)
	}

	c, err := config.Load(configPath())
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	config.C = c
	log.Printf("Graphics card selection: %s", c.Card)

	ebiten.SetWindowTitle("Hypermaze")
	ebiten.SetWindowSize(c.Width, c.Height)
	ebiten.SetFullscreen(!c.Window)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	if c.TargetFPS > 0 {
		ebiten.SetTPS(c.TargetFPS)
	} else {
		ebiten.SetTPS(ebiten.SyncWithFPS)
		ebiten.SetVsyncEnabled(false)
	}

	// Initialize persistence and load saved settings. InitPersistence logs
	// its own warning on failure and the game runs without saved data.
	_ = systems.InitPersistence()
	systems.ApplySavedSettings()

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
