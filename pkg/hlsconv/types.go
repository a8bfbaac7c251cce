package hlsconv

import (
	"context"
	"fmt"

	"github.com/m1k1o/go-m3u8/pkg/asset"
)

type FailurePolicy string

const (
	// leave partially written asset directory for inspection
	KeepOnFailure FailurePolicy = "keep"
	// remove asset directory when conversion fails
	RemoveOnFailure FailurePolicy = "remove"
)

func ParseFailurePolicy(s string) (FailurePolicy, error) {
	switch FailurePolicy(s) {
	case "", KeepOnFailure:
		return KeepOnFailure, nil
	case RemoveOnFailure:
		return RemoveOnFailure, nil
	}
	return "", fmt.Errorf("unknown failure policy %q", s)
}

type Config struct {
	BaseDir string // directory that holds videos/

	FFmpegBinary  string
	FFprobeBinary string

	OnFailure FailurePolicy
	Verify    bool // fail when manifest is missing after transcode
	Probe     bool // log input metadata before transcode
}

func (c Config) withDefaultValues() Config {
	if c.FFmpegBinary == "" {
		c.FFmpegBinary = "ffmpeg"
	}
	if c.FFprobeBinary == "" {
		c.FFprobeBinary = "ffprobe"
	}
	if c.OnFailure == "" {
		c.OnFailure = KeepOnFailure
	}
	return c
}

// Job is a single input to HLS transcode.
type Job struct {
	InputPath      string
	SegmentPattern string // e.g. videos/<id>/<id>%d.ts
	ManifestPath   string
}

// Args returns ffmpeg arguments for the job. The set is fixed.
func (j Job) Args() []string {
	return []string{
		"-hwaccel", "auto",
		"-i", j.InputPath,
		"-hls_time", "10",
		"-hls_list_size", "0", // keep all segments in the playlist
		"-c:v", "libx264",
		"-c:a", "aac",
		"-f", "hls",
		"-hls_segment_filename", j.SegmentPattern,
		j.ManifestPath,
	}
}

type Result struct {
	Success    bool
	ExitCode   int
	Diagnostic string // captured stderr
}

// Transcoder runs a job to completion. A returned error means the process
// could not be started at all.
type Transcoder interface {
	Transcode(ctx context.Context, job Job) (Result, error)
}

type Converter interface {
	Convert(ctx context.Context, inputPath string, id string) (*asset.Asset, error)
}
