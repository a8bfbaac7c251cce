package hlsconv

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os/exec"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/m1k1o/go-m3u8/internal/utils"
)

type FFmpegCtx struct {
	logger zerolog.Logger
	binary string
}

func NewFFmpeg(binary string) *FFmpegCtx {
	return &FFmpegCtx{
		logger: log.With().Str("module", "hlsconv").Str("submodule", "ffmpeg").Logger(),
		binary: binary,
	}
}

func (f *FFmpegCtx) Transcode(ctx context.Context, job Job) (Result, error) {
	cmd := exec.CommandContext(ctx, f.binary, job.Args()...)
	configureProcessGroup(cmd)

	// stderr is both kept for the caller and streamed to debug log
	var stderr bytes.Buffer
	cmd.Stderr = io.MultiWriter(&stderr, utils.LogWriter(f.logger, zerolog.DebugLevel))

	f.logger.Debug().Strs("args", cmd.Args).Msg("starting transcoder")

	if err := cmd.Start(); err != nil {
		return Result{}, err
	}

	err := cmd.Wait()
	if err == nil {
		return Result{
			Success:    true,
			Diagnostic: stderr.String(),
		}, nil
	}

	result := Result{
		Success:    false,
		ExitCode:   -1,
		Diagnostic: stderr.String(),
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		result.ExitCode = exitErr.ExitCode()
	} else if result.Diagnostic == "" {
		result.Diagnostic = err.Error()
	}

	return result, nil
}
