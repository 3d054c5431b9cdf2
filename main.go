package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/playerinput/config"
	"github.com/automoto/playerinput/fonts"
	"github.com/automoto/playerinput/input"
	"github.com/automoto/playerinput/scenes"
	"github.com/automoto/playerinput/systems"
	"github.com/hajimehoshi/ebiten/v2"
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
	flag.StringVar(&config.Debug.SettingsFile, "settings", "", "YAML settings override, reloaded on change")
	flag.BoolVar(&config.Debug.SaveSettings, "save", false, "persist the effective settings on start")
	flag.StringVar(&config.Debug.ExportFile, "export", "", "write the effective settings to a YAML file")
	flag.BoolVar(&config.Debug.LogEdges, "log-edges", false, "log every rising edge")
	flag.Parse()

	if err := fonts.LoadDefaults(config.HUD.TitleFontSize, config.HUD.TextFontSize); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	base, settings := systems.ResolveSettings(config.Debug.SettingsFile)
	if config.Debug.SaveSettings {
		if err := systems.SaveSettings(&settings); err != nil {
			log.Printf("Warning: Could not save settings: %v", err)
		}
	}

	if config.Debug.ExportFile != "" {
		if err := config.WriteSettingsFile(config.Debug.ExportFile, settings); err != nil {
			log.Printf("Warning: Could not export settings: %v", err)
		}
	}

	var watcher *config.SettingsWatcher
	if config.Debug.SettingsFile != "" {
		w, err := config.WatchSettingsFile(config.Debug.SettingsFile, base)
		if err != nil {
			log.Printf("Warning: Could not watch %s: %v", config.Debug.SettingsFile, err)
		} else {
			watcher = w
			defer watcher.Close()
		}
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle(config.C.Title)

	scene := scenes.NewInputViewScene(input.NewSession(), settings, watcher)
	if err := ebiten.RunGame(NewGame(scene)); err != nil {
		log.Fatal(err)
	}
}
