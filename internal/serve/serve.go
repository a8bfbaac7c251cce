package serve

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/m1k1o/go-m3u8/internal/config"
	"github.com/m1k1o/go-m3u8/internal/server"
	"github.com/m1k1o/go-m3u8/modules"
	"github.com/m1k1o/go-m3u8/modules/assets"
	"github.com/m1k1o/go-m3u8/modules/player"
)

func NewCommand(root *config.Root) *Main {
	return &Main{
		RootConfig:   root,
		ServerConfig: &config.Server{},
	}
}

type Main struct {
	RootConfig   *config.Root
	ServerConfig *config.Server

	logger zerolog.Logger
	server *server.ServerManagerCtx
	assets *assets.ModuleCtx
	player *player.ModuleCtx
}

func (main *Main) Preflight() {
	main.logger = log.With().Str("service", "main").Logger()
}

// build creates the server with every module mounted.
func (main *Main) build() {
	config := main.ServerConfig

	main.server = server.New(&server.Config{
		Bind:        config.Bind(),
		SSLCert:     config.Cert,
		SSLKey:      config.Key,
		Proxy:       config.Proxy,
		PProf:       config.PProf,
		Metrics:     config.Metrics,
		CORS:        config.CORS,
		CORSOrigins: config.CORSOrigins,
	})

	main.player = player.New(main.playerConfig())
	main.assets = assets.New(&assets.Config{
		BaseDir: main.RootConfig.BaseDir,
	})

	main.server.Mount(func(r *chi.Mux) {
		for _, module := range main.modules() {
			module.Mount(r)
		}
	})
	main.logger.Info().Msg("player and assets registered")
}

func (main *Main) start() {
	main.build()
	main.server.Start()
	main.logger.Info().Msgf("serving videos from basedir %s", main.RootConfig.BaseDir)
}

func (main *Main) playerConfig() *player.Config {
	path := main.ServerConfig.PlayerTemplate
	if path == "" {
		return &player.Config{}
	}

	template, err := os.ReadFile(path)
	if err != nil {
		main.logger.Warn().Err(err).Str("path", path).Msg("unable to read player template, using default")
		return &player.Config{}
	}

	return &player.Config{Template: string(template)}
}

// ConfigReload applies settings that can change without restart.
func (main *Main) ConfigReload() {
	if main.player == nil {
		return
	}

	main.player.ConfigReload(main.playerConfig())
	main.logger.Info().Msg("player config reloaded")
}

func (main *Main) shutdown() {
	err := main.server.Shutdown()
	main.logger.Err(err).Msg("http manager shutdown")

	for _, module := range main.modules() {
		module.Shutdown()
	}
	main.logger.Info().Msg("modules shutdown")
}

// modules returns started modules in mount order.
func (main *Main) modules() []modules.Module {
	var list []modules.Module
	if main.player != nil {
		list = append(list, main.player)
	}
	if main.assets != nil {
		list = append(list, main.assets)
	}
	return list
}

func (main *Main) Run(cmd *cobra.Command, args []string) {
	main.logger.Info().Msg("starting main server")
	main.start()
	main.logger.Info().Msg("main ready")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	sig := <-quit

	main.logger.Warn().Msgf("received %s, attempting graceful shutdown", sig)
	main.shutdown()
	main.logger.Info().Msg("shutdown complete")
}
