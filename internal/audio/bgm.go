package audio

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/viaifoundation/firstlight/core/errors"
	"github.com/viaifoundation/firstlight/internal/logging"
)

// MixOptions controls the background-music mix of an assembled speech file.
type MixOptions struct {
	Speech      string // assembled speech MP3
	Track       string // background track
	Output      string
	IntroMS     int // music alone before the speech starts
	TailMS      int // music alone after the speech ends
	BGMVolumeDB int // applied after loudness normalization, usually negative
	FadeMS      int // fade-in/out length at the ends of the music bed
	Bitrate     string
}

// SelectTrack picks a background track from dir. A non-empty specific name
// wins; otherwise a non-negative index rotates through the sorted track
// list, and a nil-safe rng picks at random when index is negative.
func SelectTrack(dir, specific string, index int, rng *rand.Rand) (string, error) {
	tracks, err := ListTracks(dir)
	if err != nil {
		return "", err
	}
	if len(tracks) == 0 {
		return "", &errors.NotFoundError{Resource: "background track", ID: dir}
	}
	if specific != "" {
		for _, t := range tracks {
			if t == specific || strings.TrimSuffix(t, trackExt(t)) == specific {
				return t, nil
			}
		}
		return "", &errors.NotFoundError{Resource: "background track", ID: specific}
	}
	if index >= 0 {
		return tracks[index%len(tracks)], nil
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return tracks[rng.Intn(len(tracks))], nil
}

// BuildMixArgs builds the ffmpeg argument list for mixing a background
// track under a speech file. The track loops for the whole output, is
// loudness-normalized and attenuated, and fades in and out; the speech is
// delayed by the intro so the music opens alone.
func BuildMixArgs(opts MixOptions, speechDur time.Duration) ([]string, error) {
	if opts.Speech == "" || opts.Track == "" {
		return nil, &errors.ValidationError{Field: "inputs", Message: "speech and track paths are required"}
	}
	if opts.Output == "" {
		return nil, &errors.ValidationError{Field: "output", Message: "output path is empty"}
	}
	bitrate := opts.Bitrate
	if bitrate == "" {
		bitrate = DefaultBitrate
	}

	total := time.Duration(opts.IntroMS)*time.Millisecond + speechDur + time.Duration(opts.TailMS)*time.Millisecond
	totalSec := total.Seconds()
	fadeSec := float64(opts.FadeMS) / 1000

	var filter strings.Builder
	fmt.Fprintf(&filter, "[1:a]atrim=0:%.3f,loudnorm=I=-18:TP=-2:LRA=11", totalSec)
	if opts.BGMVolumeDB != 0 {
		fmt.Fprintf(&filter, ",volume=%ddB", opts.BGMVolumeDB)
	}
	if fadeSec > 0 {
		fmt.Fprintf(&filter, ",afade=t=in:st=0:d=%.3f,afade=t=out:st=%.3f:d=%.3f",
			fadeSec, totalSec-fadeSec, fadeSec)
	}
	filter.WriteString("[bgm];")
	if opts.IntroMS > 0 {
		fmt.Fprintf(&filter, "[0:a]adelay=%d|%d[sp];", opts.IntroMS, opts.IntroMS)
	} else {
		filter.WriteString("[0:a]anull[sp];")
	}
	filter.WriteString("[sp][bgm]amix=inputs=2:duration=longest:normalize=0[out]")

	args := []string{
		"-y", "-hide_banner",
		"-i", opts.Speech,
		"-stream_loop", "-1", "-i", opts.Track,
		"-filter_complex", filter.String(),
		"-map", "[out]",
		"-t", fmt.Sprintf("%.3f", totalSec),
		"-c:a", "libmp3lame",
		"-b:a", bitrate,
		opts.Output,
	}
	return args, nil
}

// Mix probes the speech duration and runs the background-music mix.
func (r *Runner) Mix(ctx context.Context, opts MixOptions) error {
	speechDur, err := r.probeDuration(ctx, opts.Speech)
	if err != nil {
		return err
	}
	logging.DebugContext(ctx, "mix durations",
		"speech", speechDur.Round(time.Millisecond),
		"intro_ms", opts.IntroMS, "tail_ms", opts.TailMS)
	args, err := BuildMixArgs(opts, speechDur)
	if err != nil {
		return err
	}
	return r.run(ctx, r.FFmpeg, args...)
}
