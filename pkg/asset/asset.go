package asset

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// name of the directory under base dir, that holds all assets
const VideosDirName = "videos"

const (
	ManifestExt = ".m3u8"
	SegmentExt  = ".ts"
)

// Asset describes the on-disk result of one conversion.
type Asset struct {
	ID       string   `yaml:"id"`
	Dir      string   `yaml:"dir"`
	Manifest string   `yaml:"manifest"`
	Segments []string `yaml:"segments"`
}

// Layout maps identifiers to paths below <base>/videos.
type Layout struct {
	root string
}

func NewLayout(baseDir string) Layout {
	return Layout{
		root: filepath.Join(baseDir, VideosDirName),
	}
}

func (l Layout) Root() string {
	return l.root
}

func (l Layout) Dir(id string) string {
	return filepath.Join(l.root, id)
}

func (l Layout) ManifestPath(id string) string {
	return filepath.Join(l.Dir(id), ManifestName(id))
}

// SegmentPattern is the printf-style pattern handed to ffmpeg. A literal %
// in the directory is escaped as %%.
func (l Layout) SegmentPattern(id string) string {
	dir := strings.ReplaceAll(l.Dir(id), "%", "%%")
	return filepath.Join(dir, id+"%d"+SegmentExt)
}

func (l Layout) New(id string) Asset {
	return Asset{
		ID:       id,
		Dir:      l.Dir(id),
		Manifest: l.ManifestPath(id),
	}
}

// Segments lists segment files of an asset ordered by their index.
func (l Layout) Segments(id string) ([]string, error) {
	entries, err := os.ReadDir(l.Dir(id))
	if err != nil {
		return nil, err
	}

	regex := regexp.MustCompile(`^` + regexp.QuoteMeta(id) + `([0-9]+)` + regexp.QuoteMeta(SegmentExt) + `$`)

	type segment struct {
		index int
		name  string
	}

	segments := []segment{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		matches := regex.FindStringSubmatch(entry.Name())
		if len(matches) != 2 {
			continue
		}

		index, err := strconv.Atoi(matches[1])
		if err != nil {
			continue
		}

		segments = append(segments, segment{index, entry.Name()})
	}

	sort.Slice(segments, func(i, j int) bool {
		return segments[i].index < segments[j].index
	})

	paths := make([]string, 0, len(segments))
	for _, s := range segments {
		paths = append(paths, filepath.Join(l.Dir(id), s.name))
	}

	return paths, nil
}

func ManifestName(id string) string {
	return id + ManifestExt
}

func SegmentName(id string, index int) string {
	return fmt.Sprintf("%s%d%s", id, index, SegmentExt)
}
