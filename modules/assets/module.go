package assets

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/m1k1o/go-m3u8/internal/metrics"
	"github.com/m1k1o/go-m3u8/pkg/asset"
	"github.com/m1k1o/go-m3u8/pkg/segment"
)

const (
	kindManifest = "manifest"
	kindSegment  = "segment"
)

type ModuleCtx struct {
	logger   zerolog.Logger
	config   Config
	resolver *segment.Resolver
}

func New(config *Config) *ModuleCtx {
	return &ModuleCtx{
		logger:   log.With().Str("module", "assets").Logger(),
		config:   *config,
		resolver: segment.New(asset.NewLayout(config.BaseDir)),
	}
}

func (m *ModuleCtx) Shutdown() {

}

func (m *ModuleCtx) Mount(r chi.Router) {
	r.Get("/api/watch", m.ServeManifest)
	r.Get("/api/{name}", m.ServeResource)
	r.Get("/{name}", m.ServeResource)
}

// ServeManifest serves manifest of asset given by v query parameter.
func (m *ModuleCtx) ServeManifest(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("v")
	if id == "" {
		http.Error(w, "400 missing video id", http.StatusBadRequest)
		return
	}

	m.serve(w, r, asset.ManifestName(id))
}

// ServeResource serves manifest or segment given by its file name.
func (m *ModuleCtx) ServeResource(w http.ResponseWriter, r *http.Request) {
	name, err := url.PathUnescape(chi.URLParam(r, "name"))
	if err != nil {
		http.Error(w, "404 not found", http.StatusNotFound)
		return
	}

	m.serve(w, r, name)
}

func (m *ModuleCtx) serve(w http.ResponseWriter, r *http.Request, name string) {
	kind := kindSegment
	if strings.HasSuffix(name, asset.ManifestExt) {
		kind = kindManifest
	}

	logger := m.logger.With().Str("name", name).Str("kind", kind).Logger()

	file, info, err := m.resolver.Open(name)
	if err != nil {
		switch {
		case errors.Is(err, segment.ErrInvalidName):
			metrics.AssetLookupsTotal.WithLabelValues(kind, metrics.LookupRejected).Inc()
			logger.Debug().Err(err).Msg("rejected resource name")
			http.Error(w, "404 not found", http.StatusNotFound)
		case errors.Is(err, segment.ErrNotFound):
			metrics.AssetLookupsTotal.WithLabelValues(kind, metrics.LookupMissing).Inc()
			logger.Debug().Err(err).Msg("resource not found")
			http.Error(w, "404 not found", http.StatusNotFound)
		default:
			metrics.AssetLookupsTotal.WithLabelValues(kind, metrics.LookupError).Inc()
			logger.Warn().Err(err).Msg("unable to read resource")
			http.Error(w, "500 unable to read resource", http.StatusInternalServerError)
		}
		return
	}
	defer file.Close()

	metrics.AssetLookupsTotal.WithLabelValues(kind, metrics.LookupFound).Inc()

	switch {
	case strings.HasSuffix(name, asset.ManifestExt):
		w.Header().Set("Content-Type", "application/vnd.apple.mpegurl")
	case strings.HasSuffix(name, asset.SegmentExt):
		w.Header().Set("Content-Type", "video/MP2T")
	}

	http.ServeContent(w, r, name, info.ModTime(), file)
}
