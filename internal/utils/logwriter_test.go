package utils

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
)

func TestLogWriter(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"single line", "hello\n", []string{"hello"}},
		{"multiple lines", "one\ntwo\n", []string{"one", "two"}},
		{"progress redraw", "frame=1\rframe=2\r", []string{"frame=1", "frame=2"}},
		{"blank lines", "\n  \n\nend", []string{"end"}},
		{"empty", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			w := LogWriter(zerolog.New(&buf), zerolog.WarnLevel)

			n, err := w.Write([]byte(tt.input))
			if err != nil || n != len(tt.input) {
				t.Fatalf("Write() = %d, %v", n, err)
			}

			var got []string
			dec := json.NewDecoder(&buf)
			for dec.More() {
				var event struct {
					Level   string `json:"level"`
					Message string `json:"message"`
				}
				if err := dec.Decode(&event); err != nil {
					t.Fatal(err)
				}
				if event.Level != "warn" {
					t.Errorf("level = %q, want warn", event.Level)
				}
				got = append(got, event.Message)
			}

			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("line %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}
