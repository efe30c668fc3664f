package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/nagini/internal/application/game"
	"github.com/younwookim/nagini/internal/application/scene"
	"github.com/younwookim/nagini/internal/application/scene/about"
	"github.com/younwookim/nagini/internal/application/scene/gameover"
	"github.com/younwookim/nagini/internal/application/scene/menu"
	"github.com/younwookim/nagini/internal/application/scene/playing"
	"github.com/younwookim/nagini/internal/application/session"
	"github.com/younwookim/nagini/internal/application/state"
	"github.com/younwookim/nagini/internal/application/system"
	"github.com/younwookim/nagini/internal/infrastructure/config"
	"github.com/younwookim/nagini/internal/infrastructure/graphics"
	"github.com/younwookim/nagini/internal/infrastructure/sound"
)

func main() {
	configDir := flag.String("config", "", "Directory containing game.json (default: built-in)")
	recordFlag := flag.String("record", "", "Record each finished game to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Verify a recorded game without opening a window")
	seedFlag := flag.Uint64("seed", 0, "Fixed apple seed for every game (0 = random)")
	flag.Parse()

	if *replayFlag != "" {
		if err := verifyReplay(*replayFlag); err != nil {
			log.Fatalf("Replay failed: %v", err)
		}
		return
	}

	cfg, err := config.Load(*configDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctrl := newController(cfg, *seedFlag)
	session.Attach(ctrl, session.Options{
		RecordPath: *recordFlag,
		Sounds:     sound.NewBeeper(cfg.Audio),
	})

	fonts, err := graphics.LoadFonts()
	if err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	dir := scene.NewDirector(ctrl, system.NewKeyboardInput())
	dir.Register(state.StateMenu, menu.New(dir, fonts, cfg.Display.Title))
	dir.Register(state.StateAbout, about.New(dir, fonts, cfg.About))
	dir.Register(state.StatePlaying, playing.New(dir, fonts, cfg.Grid.ShowLines))
	dir.Register(state.StateGameOver, gameover.New(dir, fonts))

	d := cfg.Display
	g := game.New(dir.Current(), d.ScreenWidth, d.ScreenHeight, d.Framerate)
	g.OnTransition = func(from, to scene.Scene) {
		log.Printf("[Game] %T -> %T", from, to)
	}

	ebiten.SetWindowSize(d.ScreenWidth*d.Scale, d.ScreenHeight*d.Scale)
	ebiten.SetWindowTitle(d.Title)
	ebiten.SetTPS(d.Framerate)

	// RunGame returns nil when a scene ends the game with ebiten.Termination
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

// newController creates the controller, pinning the apple seed when seed is
// non-zero
func newController(cfg *config.GameConfig, seed uint64) *system.Controller {
	ctrl := system.NewController(cfg.Board(), cfg.LoopTiming())
	if seed != 0 {
		ctrl.SetSeedSource(func() uint64 { return seed })
		log.Printf("[Game] fixed seed: %d", seed)
	}
	return ctrl
}
