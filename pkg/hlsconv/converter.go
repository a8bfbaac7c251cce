package hlsconv

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/m1k1o/go-m3u8/pkg/asset"
)

var _ Converter = (*ConverterCtx)(nil)

type ConverterCtx struct {
	logger     zerolog.Logger
	config     Config
	layout     asset.Layout
	transcoder Transcoder
}

// New creates a converter. When transcoder is nil, ffmpeg from config is used.
func New(config *Config, transcoder Transcoder) *ConverterCtx {
	c := config.withDefaultValues()

	if transcoder == nil {
		transcoder = NewFFmpeg(c.FFmpegBinary)
	}

	return &ConverterCtx{
		logger:     log.With().Str("module", "hlsconv").Str("submodule", "converter").Logger(),
		config:     c,
		layout:     asset.NewLayout(c.BaseDir),
		transcoder: transcoder,
	}
}

func (c *ConverterCtx) Layout() asset.Layout {
	return c.layout
}

// Convert transcodes input into a new asset named id. It blocks until the
// transcoder exits.
func (c *ConverterCtx) Convert(ctx context.Context, inputPath string, id string) (*asset.Asset, error) {
	logger := c.logger.With().Str("id", id).Str("input", inputPath).Logger()

	if err := CheckInput(inputPath); err != nil {
		return nil, err
	}

	if c.config.Probe {
		c.probe(ctx, logger, inputPath)
	}

	a := c.layout.New(id)
	if err := os.MkdirAll(a.Dir, 0755); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDirectoryCreation, err)
	}

	start := time.Now()
	logger.Info().Str("manifest", a.Manifest).Msg("starting conversion")

	result, err := c.transcoder.Transcode(ctx, Job{
		InputPath:      inputPath,
		SegmentPattern: c.layout.SegmentPattern(id),
		ManifestPath:   a.Manifest,
	})

	if err != nil {
		c.cleanup(logger, a)
		return nil, fmt.Errorf("%w: %w", ErrTranscoderSpawn, err)
	}

	if !result.Success {
		logger.Warn().Int("exit-code", result.ExitCode).Msg("transcoder exited with an error")
		c.cleanup(logger, a)
		return nil, &TranscoderExitError{
			ExitCode:   result.ExitCode,
			Diagnostic: result.Diagnostic,
		}
	}

	if c.config.Verify {
		if _, err := os.Stat(a.Manifest); err != nil {
			c.cleanup(logger, a)
			return nil, fmt.Errorf("%w: %w", ErrManifestMissing, err)
		}
	}

	segments, err := c.layout.Segments(id)
	if err != nil {
		logger.Warn().Err(err).Msg("unable to list segments")
	}
	a.Segments = segments

	logger.Info().
		Int("segments", len(a.Segments)).
		Dur("elapsed", time.Since(start)).
		Msg("conversion finished")

	return &a, nil
}

// CheckInput reports an *InputNotFoundError unless inputPath is a readable file.
func CheckInput(inputPath string) error {
	info, err := os.Stat(inputPath)
	if err != nil {
		return &InputNotFoundError{Path: inputPath, Err: err}
	}

	if info.IsDir() {
		return &InputNotFoundError{Path: inputPath, Err: fmt.Errorf("%s is a directory", inputPath)}
	}

	// must be readable, not only present
	f, err := os.Open(inputPath)
	if err != nil {
		return &InputNotFoundError{Path: inputPath, Err: err}
	}

	return f.Close()
}

func (c *ConverterCtx) probe(ctx context.Context, logger zerolog.Logger, inputPath string) {
	data, err := ProbeMedia(ctx, c.config.FFprobeBinary, inputPath)
	if err != nil {
		logger.Warn().Err(err).Msg("unable to probe input")
		return
	}

	event := logger.Info().
		Strs("format", data.FormatName).
		Dur("duration", data.Duration).
		Int("audios", len(data.Audio))

	if data.Video != nil {
		event = event.
			Str("video-codec", data.Video.Codec).
			Int("width", data.Video.Width).
			Int("height", data.Video.Height)
	}

	event.Msg("probed input")
}

func (c *ConverterCtx) cleanup(logger zerolog.Logger, a asset.Asset) {
	if c.config.OnFailure != RemoveOnFailure {
		logger.Info().Str("dir", a.Dir).Msg("keeping asset directory after failure")
		return
	}

	if err := os.RemoveAll(a.Dir); err != nil {
		logger.Err(err).Str("dir", a.Dir).Msg("unable to remove asset directory")
		return
	}

	logger.Info().Str("dir", a.Dir).Msg("removed asset directory after failure")
}
