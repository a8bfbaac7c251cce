package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi"
)

func newTestServer(config *Config) http.Handler {
	s := New(config)
	s.Mount(func(r *chi.Mux) {
		r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("pong"))
		})
	})
	return s.Handler()
}

func get(t *testing.T, h http.Handler, target string, header map[string]string) (*http.Response, string) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	res := rec.Result()
	body, _ := io.ReadAll(res.Body)
	return res, string(body)
}

func TestServer_NotFound(t *testing.T) {
	h := newTestServer(&Config{})

	res, body := get(t, h, "/missing", nil)
	if res.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", res.StatusCode)
	}
	if body != "404 not found\n" {
		t.Errorf("body = %q", body)
	}

	if res, _ := get(t, h, "/metrics", nil); res.StatusCode != http.StatusNotFound {
		t.Errorf("/metrics status = %d without metrics enabled", res.StatusCode)
	}
}

func TestServer_Metrics(t *testing.T) {
	h := newTestServer(&Config{Metrics: true})

	if _, body := get(t, h, "/ping", nil); body != "pong" {
		t.Fatalf("/ping body = %q", body)
	}

	res, body := get(t, h, "/metrics", nil)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("/metrics status = %d", res.StatusCode)
	}
	if !strings.Contains(body, `m3u8_http_requests_total{method="GET",route="/ping",status="200"}`) {
		t.Errorf("/metrics does not contain /ping request counter:\n%s", body)
	}
}

func TestServer_CORS(t *testing.T) {
	tests := []struct {
		name   string
		config Config
		origin string
		want   string
	}{
		{"disabled", Config{}, "http://player.example", ""},
		{"any origin", Config{CORS: true}, "http://player.example", "*"},
		{"allowed origin", Config{CORS: true, CORSOrigins: []string{"http://player.example"}}, "http://player.example", "http://player.example"},
		{"other origin", Config{CORS: true, CORSOrigins: []string{"http://player.example"}}, "http://evil.example", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestServer(&tt.config)

			res, _ := get(t, h, "/ping", map[string]string{"Origin": tt.origin})
			if got := res.Header.Get("Access-Control-Allow-Origin"); got != tt.want {
				t.Errorf("Access-Control-Allow-Origin = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestServer_PProf(t *testing.T) {
	h := newTestServer(&Config{PProf: true})

	if res, _ := get(t, h, pprofPath+"/", nil); res.StatusCode != http.StatusOK {
		t.Errorf("%s/ status = %d", pprofPath, res.StatusCode)
	}
}

func TestServer_Head(t *testing.T) {
	tests := []struct {
		name   string
		config Config
	}{
		{"plain", Config{}},
		{"cors", Config{CORS: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestServer(&tt.config)

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodHead, "/ping", nil))

			if rec.Code != http.StatusOK {
				t.Errorf("HEAD /ping status = %d, want 200", rec.Code)
			}
		})
	}
}
