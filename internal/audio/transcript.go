// Package audio assembles daily devotional MP3s from per-chapter clips by
// orchestrating ffmpeg: concatenation with inter-chapter gaps, pitch-
// preserving speed-up, volume adjustment, and background-music mixing.
package audio

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
)

// Event is a single entry in an assembly run transcript.
type Event struct {
	Type       string   `json:"t"`
	Seq        int      `json:"seq"`
	Command    string   `json:"command,omitempty"`
	Args       []string `json:"args,omitempty"`
	DurationMS int64    `json:"duration_ms,omitempty"`
	Message    string   `json:"message,omitempty"`
	Output     string   `json:"output,omitempty"`
}

// Known event types
const (
	EventCommand = "COMMAND"
	EventWarn    = "WARN"
	EventError   = "ERROR"
)

// Transcript records every external command an assembly run executes,
// tagged with a unique run ID, so a finished file can be traced back to
// the exact ffmpeg invocations that produced it.
type Transcript struct {
	RunID  string  `json:"run_id"`
	Events []Event `json:"-"`
}

// NewTranscript creates a transcript with a fresh run ID.
func NewTranscript() *Transcript {
	return &Transcript{RunID: uuid.NewString()}
}

// Append adds an event, assigning the next sequence number.
func (t *Transcript) Append(ev Event) {
	ev.Seq = len(t.Events) + 1
	t.Events = append(t.Events, ev)
}

// Write writes the transcript as JSONL, one event per line. The first
// line carries the run ID.
func (t *Transcript) Write(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create transcript: %w", err)
	}
	defer file.Close()

	header, err := json.Marshal(map[string]string{"t": "RUN", "run_id": t.RunID})
	if err != nil {
		return fmt.Errorf("marshal run header: %w", err)
	}
	if _, err := file.Write(append(header, '\n')); err != nil {
		return fmt.Errorf("write run header: %w", err)
	}
	for _, ev := range t.Events {
		data, err := json.Marshal(ev)
		if err != nil {
			return fmt.Errorf("marshal event %d: %w", ev.Seq, err)
		}
		if _, err := file.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("write event %d: %w", ev.Seq, err)
		}
	}
	return nil
}

// ReadTranscript parses a transcript JSONL file.
func ReadTranscript(path string) (*Transcript, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open transcript: %w", err)
	}
	defer file.Close()

	t := &Transcript{}
	scanner := bufio.NewScanner(file)
	first := true
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		if first {
			first = false
			var header struct {
				RunID string `json:"run_id"`
			}
			if err := json.Unmarshal([]byte(line), &header); err != nil {
				return nil, fmt.Errorf("parse run header: %w", err)
			}
			t.RunID = header.RunID
			continue
		}
		var ev Event
		if err := json.Unmarshal([]byte(line), &ev); err != nil {
			return nil, fmt.Errorf("parse event: %w", err)
		}
		t.Events = append(t.Events, ev)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read transcript: %w", err)
	}
	return t, nil
}
