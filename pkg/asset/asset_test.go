package asset

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLayout(t *testing.T) {
	l := NewLayout("/srv")
	escaped := NewLayout("/srv/100%")

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"root", l.Root(), "/srv/videos"},
		{"dir", l.Dir("AAAAAAAAAAA"), "/srv/videos/AAAAAAAAAAA"},
		{"manifest", l.ManifestPath("AAAAAAAAAAA"), "/srv/videos/AAAAAAAAAAA/AAAAAAAAAAA.m3u8"},
		{"segment pattern", l.SegmentPattern("AAAAAAAAAAA"), "/srv/videos/AAAAAAAAAAA/AAAAAAAAAAA%d.ts"},
		{"segment pattern escapes percent", escaped.SegmentPattern("AAAAAAAAAAA"), "/srv/100%%/videos/AAAAAAAAAAA/AAAAAAAAAAA%d.ts"},
		{"dir keeps percent", escaped.Dir("AAAAAAAAAAA"), "/srv/100%/videos/AAAAAAAAAAA"},
		{"segment name", SegmentName("AAAAAAAAAAA", 12), "AAAAAAAAAAA12.ts"},
		{"manifest name", ManifestName("AAAAAAAAAAA"), "AAAAAAAAAAA.m3u8"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestLayout_Segments(t *testing.T) {
	l := NewLayout(t.TempDir())
	id := "BBBBBBBBBBB"

	if err := os.MkdirAll(l.Dir(id), 0755); err != nil {
		t.Fatal(err)
	}

	files := []string{
		ManifestName(id),
		SegmentName(id, 10),
		SegmentName(id, 2),
		SegmentName(id, 0),
		SegmentName(id, 1),
		"CCCCCCCCCCC0.ts",
		id + "x.ts",
	}
	for _, name := range files {
		if err := os.WriteFile(filepath.Join(l.Dir(id), name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	got, err := l.Segments(id)
	if err != nil {
		t.Fatalf("Segments() error = %v", err)
	}

	want := []string{
		filepath.Join(l.Dir(id), SegmentName(id, 0)),
		filepath.Join(l.Dir(id), SegmentName(id, 1)),
		filepath.Join(l.Dir(id), SegmentName(id, 2)),
		filepath.Join(l.Dir(id), SegmentName(id, 10)),
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Segments() = %v, want %v", got, want)
	}
}

func TestLayout_SegmentsMissingDir(t *testing.T) {
	l := NewLayout(t.TempDir())

	if _, err := l.Segments("DDDDDDDDDDD"); !os.IsNotExist(err) {
		t.Errorf("Segments() error = %v, want not exist", err)
	}
}
