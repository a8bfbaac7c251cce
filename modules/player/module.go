package player

import (
	_ "embed"
	"html"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/go-chi/chi"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/m1k1o/go-m3u8/internal/metrics"
)

//go:embed watch.html
var watchHTML string

type ModuleCtx struct {
	logger zerolog.Logger
	mu     sync.RWMutex
	config Config
}

func New(config *Config) *ModuleCtx {
	module := &ModuleCtx{
		logger: log.With().Str("module", "player").Logger(),
		config: config.withDefaultValues(),
	}

	if !strings.Contains(module.config.Template, placeholder) {
		module.logger.Warn().Msgf("player template does not contain %s", placeholder)
	}

	return module
}

func (m *ModuleCtx) Shutdown() {

}

func (m *ModuleCtx) ConfigReload(config *Config) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.config = config.withDefaultValues()
}

func (m *ModuleCtx) Mount(r chi.Router) {
	r.Get("/watch", m.ServeHTTP)
}

// Render substitutes id into the page template.
func (m *ModuleCtx) Render(id string) string {
	// the id ends up in an HTML attribute and a query string
	escaped := html.EscapeString(url.QueryEscape(id))

	m.mu.RLock()
	defer m.mu.RUnlock()

	return strings.ReplaceAll(m.config.Template, placeholder, escaped)
}

func (m *ModuleCtx) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("v")
	if id == "" {
		http.Error(w, "400 missing video id", http.StatusBadRequest)
		return
	}

	metrics.PlayerPagesTotal.Inc()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(m.Render(id)))
}
