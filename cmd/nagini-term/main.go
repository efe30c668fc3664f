package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"
	"github.com/younwookim/nagini/internal/application/session"
	"github.com/younwookim/nagini/internal/application/system"
	"github.com/younwookim/nagini/internal/infrastructure/config"
	"github.com/younwookim/nagini/internal/infrastructure/terminal"
)

func main() {
	configDir := flag.String("config", "", "Directory containing game.json (default: built-in)")
	recordFlag := flag.String("record", "", "Record each finished game to file")
	logFlag := flag.String("log", "", "Write logs to file instead of discarding them")
	muteFlag := flag.Bool("mute", false, "Disable sound")
	flag.Parse()

	cfg, err := config.Load(*configDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *muteFlag {
		cfg.Audio.Enabled = false
	}

	// The screen owns stdout, so logs go to a file or nowhere
	if *logFlag != "" {
		f, err := os.OpenFile(*logFlag, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to init screen: %v", err)
	}
	defer screen.Fini()

	snd, err := terminal.NewSound(cfg.Audio)
	if err != nil {
		// Non-fatal, the game runs without sound
		log.Printf("[Sound] %v", err)
	}
	defer snd.Close()

	ctrl := system.NewController(cfg.Board(), cfg.LoopTiming())
	session.Attach(ctrl, session.Options{RecordPath: *recordFlag, Sounds: snd})

	view := terminal.NewView(screen, cfg.Board(), cfg.Display.Title, cfg.About)
	runner := terminal.NewRunner(screen, ctrl, view)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := runner.Run(ctx); err != nil && ctx.Err() == nil {
		log.Printf("[Terminal] %v", err)
	}
}
