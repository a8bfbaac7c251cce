package segment

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/m1k1o/go-m3u8/pkg/asset"
	"github.com/m1k1o/go-m3u8/pkg/videoid"
)

// names shorter than this are only served when they carry the segment extension
const minNameLength = 15

var (
	ErrInvalidName = errors.New("invalid resource name")
	ErrNotFound    = errors.New("resource not found")
	ErrFileIO      = errors.New("resource read failed")
)

var nameRegex = regexp.MustCompile(`^[0-9A-Za-z._-]+$`)

func isLongEnough(name string) bool {
	return len(name) >= minNameLength
}

func hasSegmentExtension(name string) bool {
	return strings.HasSuffix(name, asset.SegmentExt)
}

// ExtractID validates a requested resource name and returns the asset
// identifier it belongs to.
//
// A name passes the length/extension gate unless it is both shorter than
// 15 characters and lacks the .ts extension. It must then consist of
// [0-9A-Za-z._-] only, contain no "..", and start with a valid identifier.
// For a short .ts name this means exactly "<id>.ts".
func ExtractID(name string) (string, error) {
	if !isLongEnough(name) && !hasSegmentExtension(name) {
		return "", fmt.Errorf("%w: %q is too short", ErrInvalidName, name)
	}

	if !nameRegex.MatchString(name) || strings.Contains(name, "..") {
		return "", fmt.Errorf("%w: %q contains forbidden characters", ErrInvalidName, name)
	}

	if len(name) < videoid.Length {
		return "", fmt.Errorf("%w: %q has no identifier prefix", ErrInvalidName, name)
	}

	id := name[:videoid.Length]
	if !videoid.Valid(id) {
		return "", fmt.Errorf("%w: %q is not a valid identifier", ErrInvalidName, id)
	}

	return id, nil
}

type Resolver struct {
	layout asset.Layout
}

func New(layout asset.Layout) *Resolver {
	return &Resolver{
		layout: layout,
	}
}

// Resolve maps a requested name to its path inside the asset directory.
// It does not touch the filesystem.
func (r *Resolver) Resolve(name string) (string, error) {
	id, err := ExtractID(name)
	if err != nil {
		return "", err
	}

	dir := r.layout.Dir(id)
	filePath := filepath.Join(dir, name)

	// must stay directly inside the asset directory
	if filepath.Dir(filePath) != filepath.Clean(dir) {
		return "", fmt.Errorf("%w: %q escapes asset directory", ErrInvalidName, name)
	}

	return filePath, nil
}

// Open resolves name and opens the file. Every open failure is reported as
// ErrNotFound, a failure after the file was opened as ErrFileIO.
func (r *Resolver) Open(name string) (*os.File, os.FileInfo, error) {
	filePath, err := r.Resolve(name)
	if err != nil {
		return nil, nil, err
	}

	file, err := os.Open(filePath)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrNotFound, err)
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, nil, fmt.Errorf("%w: %v", ErrFileIO, err)
	}

	if info.IsDir() {
		file.Close()
		return nil, nil, fmt.Errorf("%w: %s is a directory", ErrNotFound, filePath)
	}

	return file, info, nil
}
