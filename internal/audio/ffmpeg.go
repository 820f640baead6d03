package audio

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/viaifoundation/firstlight/internal/logging"
)

// Runner executes ffmpeg/ffprobe commands and records them in an optional
// transcript.
type Runner struct {
	FFmpeg     string
	FFprobe    string
	Transcript *Transcript
}

// NewRunner returns a runner using ffmpeg/ffprobe from PATH.
func NewRunner() *Runner {
	return &Runner{FFmpeg: "ffmpeg", FFprobe: "ffprobe"}
}

// run executes a command, capturing stderr for diagnostics. ffmpeg writes
// its progress chatter to stderr, so it is only surfaced on failure.
func (r *Runner) run(ctx context.Context, name string, args ...string) error {
	logging.LoggerFromContext(ctx).Debug("exec", "command", name, "args", strings.Join(args, " "))
	start := time.Now()

	cmd := exec.CommandContext(ctx, name, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	err := cmd.Run()
	elapsed := time.Since(start)

	if r.Transcript != nil {
		ev := Event{
			Type:       EventCommand,
			Command:    name,
			Args:       args,
			DurationMS: elapsed.Milliseconds(),
		}
		if err != nil {
			ev.Type = EventError
			ev.Message = err.Error()
			ev.Output = tail(stderr.String(), 2000)
		}
		r.Transcript.Append(ev)
	}
	if err != nil {
		return fmt.Errorf("%s: %w\n%s", name, err, tail(stderr.String(), 2000))
	}
	return nil
}

// probeDuration returns the duration of an audio file via ffprobe.
func (r *Runner) probeDuration(ctx context.Context, path string) (time.Duration, error) {
	cmd := exec.CommandContext(ctx, r.FFprobe,
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return 0, fmt.Errorf("ffprobe %s: %w\n%s", path, err, tail(stderr.String(), 500))
	}
	seconds, err := strconv.ParseFloat(strings.TrimSpace(stdout.String()), 64)
	if err != nil {
		return 0, fmt.Errorf("ffprobe %s: parse duration: %w", path, err)
	}
	return time.Duration(seconds * float64(time.Second)), nil
}

// atempoChain builds ffmpeg atempo filters for a playback speed. A single
// atempo accepts at most 2.0, so higher speeds chain filters
// (3x = atempo=2,atempo=1.5). Speeds <= 1 yield no filters.
func atempoChain(speed float64) []string {
	var parts []string
	r := speed
	for r > 2.0 {
		parts = append(parts, "atempo=2")
		r /= 2.0
	}
	if r > 1.0 {
		parts = append(parts, fmt.Sprintf("atempo=%g", r))
	}
	return parts
}

func tail(s string, n int) string {
	if len(s) <= n {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(s[len(s)-n:])
}
