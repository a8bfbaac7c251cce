package hlsconv

import (
	"errors"
	"strings"
)

var (
	ErrInputNotFound     = errors.New("input not found")
	ErrDirectoryCreation = errors.New("unable to create asset directory")
	ErrTranscoderSpawn   = errors.New("unable to start transcoder")
	ErrTranscoderExit    = errors.New("transcoder exited with error")
	ErrManifestMissing   = errors.New("manifest missing after transcode")
)

type InputNotFoundError struct {
	Path string
	Err  error
}

func (e *InputNotFoundError) Error() string {
	return "Input file does not exist: " + e.Path
}

func (e *InputNotFoundError) Is(target error) bool {
	return target == ErrInputNotFound
}

func (e *InputNotFoundError) Unwrap() error {
	return e.Err
}

type TranscoderExitError struct {
	ExitCode   int
	Diagnostic string
}

func (e *TranscoderExitError) Error() string {
	return "FFmpeg conversion failed:\n" + strings.TrimSpace(e.Diagnostic)
}

func (e *TranscoderExitError) Is(target error) bool {
	return target == ErrTranscoderExit
}
