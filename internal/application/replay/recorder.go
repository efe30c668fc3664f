package replay

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/younwookim/nagini/internal/domain/entity"
)

// ErrUnfinished is returned when saving a session that has not ended
var ErrUnfinished = errors.New("session has no result")

// Recorder handles steering recording for replay
type Recorder struct {
	data      ReplayData
	recording bool
}

// NewRecorder creates a new recorder with seed for deterministic replay
func NewRecorder(seed uint64, grid entity.Grid) *Recorder {
	return &Recorder{
		data: ReplayData{
			Version:   FormatVersion,
			Session:   uuid.New().String(),
			Seed:      seed,
			Board:     BoardOf(grid),
			StartTime: time.Now().Format(time.RFC3339),
			Events:    make([]SteerEvent, 0, 64),
		},
		recording: true,
	}
}

// RecordSteer records a heading change applied after tick ticks
func (r *Recorder) RecordSteer(tick int, h entity.Heading) {
	if !r.recording {
		return
	}
	r.data.Events = append(r.data.Events, SteerEvent{T: tick, H: h})
}

// Finish stores the final score and stops recording
func (r *Recorder) Finish(score, ticks int) {
	r.data.Result = &Result{Score: score, Ticks: ticks}
	r.recording = false
}

// Save writes the replay data to a file
func (r *Recorder) Save(filename string) error {
	if r.data.Result == nil {
		return ErrUnfinished
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r.data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}

	return nil
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// EventCount returns the number of recorded steering events
func (r *Recorder) EventCount() int {
	return len(r.data.Events)
}

// GetData returns the replay data (for testing)
func (r *Recorder) GetData() ReplayData {
	return r.data
}

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("replay_%s.json", time.Now().Format("20060102_150405"))
}
