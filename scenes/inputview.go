package scenes

import (
	"image/color"
	"log"
	"sync"

	cfg "github.com/automoto/playerinput/config"
	"github.com/automoto/playerinput/input"
	"github.com/automoto/playerinput/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// InputViewScene shows both players' controllers live
type InputViewScene struct {
	ecs      *ecs.ECS
	session  *input.Session
	settings cfg.Settings
	watcher  *cfg.SettingsWatcher
	once     sync.Once
}

// NewInputViewScene creates the scene. watcher may be nil.
func NewInputViewScene(session *input.Session, settings cfg.Settings, watcher *cfg.SettingsWatcher) *InputViewScene {
	return &InputViewScene{
		session:  session,
		settings: settings,
		watcher:  watcher,
	}
}

func (s *InputViewScene) Update() {
	s.once.Do(s.configure)
	s.ecs.Update()
}

func (s *InputViewScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if s.ecs == nil {
		return
	}
	s.ecs.Draw(screen)
}

func (s *InputViewScene) configure() {
	s.ecs = ecs.NewECS(donburi.NewWorld())

	systems.SpawnPlayerSlots(s.ecs, &s.settings, s.session)

	// Settings reload runs first so a new controller samples this frame
	s.ecs.AddSystem(s.reloadSettings)
	s.ecs.AddSystem(systems.NewUpdateInput(s.session))
	s.ecs.AddSystem(systems.UpdatePlayerView)

	s.ecs.AddRenderer(cfg.Default, systems.DrawInputHUD)
	s.ecs.AddRenderer(cfg.Overlay, systems.DrawInputError)
}

// reloadSettings applies settings delivered by the file watcher
func (s *InputViewScene) reloadSettings(e *ecs.ECS) {
	if s.watcher == nil {
		return
	}
	next, ok := s.watcher.Poll()
	if !ok {
		return
	}
	log.Println("[inputview] settings file changed, reapplying")
	s.settings = next
	systems.ApplySettings(e, &s.settings, s.session)
}
