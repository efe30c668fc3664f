package replay

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/younwookim/nagini/internal/application/state"
	"github.com/younwookim/nagini/internal/application/system"
	"github.com/younwookim/nagini/internal/domain/entity"
)

// ErrMismatch is returned when a replay does not reproduce the recorded result
var ErrMismatch = errors.New("replay diverged from recording")

// Replayer hands recorded steering back to a controller tick by tick
type Replayer struct {
	data ReplayData
	next int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{data: data}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}

	return &data, nil
}

// EventsAt returns the headings recorded after tick ticks and advances past them.
// Events must be consumed in tick order.
func (r *Replayer) EventsAt(tick int) []entity.Heading {
	var out []entity.Heading
	for r.next < len(r.data.Events) && r.data.Events[r.next].T <= tick {
		if r.data.Events[r.next].T == tick {
			out = append(out, r.data.Events[r.next].H)
		}
		r.next++
	}
	return out
}

// Done reports whether every event has been handed out
func (r *Replayer) Done() bool {
	return r.next >= len(r.data.Events)
}

// Seed returns the seed used for the replay
func (r *Replayer) Seed() uint64 {
	return r.data.Seed
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.next = 0
}

// Run plays the recording on ctrl until the game ends and returns the outcome
func (r *Replayer) Run(ctrl *system.Controller) Result {
	r.Reset()
	ctrl.StartSeeded(r.data.Seed)

	g := ctrl.Grid()
	limit := g.Cols() + g.Rows() + 1
	if n := len(r.data.Events); n > 0 {
		limit += r.data.Events[n-1].T
	}

	for ctrl.State() == state.StatePlaying && ctrl.Ticks() <= limit {
		for _, h := range r.EventsAt(ctrl.Ticks()) {
			ctrl.Turn(h)
		}
		ctrl.Tick()
	}

	return Result{Score: ctrl.Score(), Ticks: ctrl.Ticks()}
}

// Verify replays data headlessly and checks it reproduces the recorded result
func Verify(data ReplayData) (Result, error) {
	b := data.Board
	if b.Unit <= 0 || b.Width < b.Unit || b.Height < b.Unit {
		return Result{}, fmt.Errorf("invalid board %dx%d unit %d", b.Width, b.Height, b.Unit)
	}

	ctrl := system.NewController(data.Grid(), system.DefaultTiming())
	got := NewReplayer(data).Run(ctrl)

	if data.Result == nil {
		return got, ErrUnfinished
	}
	if got != *data.Result {
		return got, fmt.Errorf("%w: recorded score %d in %d ticks, replayed score %d in %d ticks",
			ErrMismatch, data.Result.Score, data.Result.Ticks, got.Score, got.Ticks)
	}
	return got, nil
}
