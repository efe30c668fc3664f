package main

import (
	"fmt"
	"log"

	"github.com/younwookim/nagini/internal/application/replay"
)

// verifyReplay re-runs a recording headlessly and checks its result
func verifyReplay(filename string) error {
	data, err := replay.LoadReplay(filename)
	if err != nil {
		return err
	}

	log.Printf("[Replay] %s session=%s seed=%d events=%d board=%dx%d/%d",
		filename, data.Session, data.Seed, len(data.Events), data.Board.Width, data.Board.Height, data.Board.Unit)

	result, err := replay.Verify(*data)
	if err != nil {
		return fmt.Errorf("%s: %w", filename, err)
	}

	log.Printf("[Replay] verified: score=%d ticks=%d", result.Score, result.Ticks)
	return nil
}
