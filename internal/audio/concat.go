package audio

import (
	"context"
	"fmt"
	"strings"

	"github.com/viaifoundation/firstlight/core/errors"
)

// DefaultBitrate is the MP3 bitrate of assembled output files.
const DefaultBitrate = "320k"

// ConcatOptions controls chapter concatenation.
type ConcatOptions struct {
	Files          []string // chapter MP3s in reading order
	Output         string
	GapMS          int     // silence between chapters
	SpeechVolumeDB int     // 0 = no change
	Speed          float64 // playback speed, <= 1 means unchanged
	Bitrate        string  // defaults to DefaultBitrate
}

// BuildConcatArgs builds the ffmpeg argument list for a concatenation
// run: each input is padded with the inter-chapter gap (except the last),
// the padded streams are concatenated, and any speed/volume filters are
// applied to the joined stream before the MP3 encode.
func BuildConcatArgs(opts ConcatOptions) ([]string, error) {
	if len(opts.Files) == 0 {
		return nil, &errors.ValidationError{Field: "files", Message: "no chapter files to concatenate"}
	}
	if opts.Output == "" {
		return nil, &errors.ValidationError{Field: "output", Message: "output path is empty"}
	}
	bitrate := opts.Bitrate
	if bitrate == "" {
		bitrate = DefaultBitrate
	}

	args := []string{"-y", "-hide_banner"}
	for _, f := range opts.Files {
		args = append(args, "-i", f)
	}

	var filter strings.Builder
	n := len(opts.Files)
	for i := 0; i < n; i++ {
		if i > 0 {
			filter.WriteString(";")
		}
		if i < n-1 && opts.GapMS > 0 {
			fmt.Fprintf(&filter, "[%d:a]apad=pad_dur=%.3f[a%d]", i, float64(opts.GapMS)/1000, i)
		} else {
			fmt.Fprintf(&filter, "[%d:a]anull[a%d]", i, i)
		}
	}
	filter.WriteString(";")
	for i := 0; i < n; i++ {
		fmt.Fprintf(&filter, "[a%d]", i)
	}
	fmt.Fprintf(&filter, "concat=n=%d:v=0:a=1[cat]", n)

	post := atempoChain(opts.Speed)
	if opts.SpeechVolumeDB != 0 {
		post = append(post, fmt.Sprintf("volume=%ddB", opts.SpeechVolumeDB))
	}
	mapLabel := "[cat]"
	if len(post) > 0 {
		fmt.Fprintf(&filter, ";[cat]%s[out]", strings.Join(post, ","))
		mapLabel = "[out]"
	}

	args = append(args,
		"-filter_complex", filter.String(),
		"-map", mapLabel,
		"-c:a", "libmp3lame",
		"-b:a", bitrate,
		opts.Output)
	return args, nil
}

// Concat runs the concatenation.
func (r *Runner) Concat(ctx context.Context, opts ConcatOptions) error {
	args, err := BuildConcatArgs(opts)
	if err != nil {
		return err
	}
	return r.run(ctx, r.FFmpeg, args...)
}
