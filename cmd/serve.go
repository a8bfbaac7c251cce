package cmd

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/m1k1o/go-m3u8/internal/config"
	"github.com/m1k1o/go-m3u8/internal/serve"
)

func init() {
	service := serve.NewCommand(rootConfig)

	command := &cobra.Command{
		Use:   "serve",
		Short: "serve converted videos",
		Long:  `serve converted videos, their manifests and segments, together with a player page`,
		Run:   service.Run,
	}

	configs := []config.Config{
		service.ServerConfig,
	}

	onInitialize = append(onInitialize, func() {
		for _, cfg := range configs {
			cfg.Set()
		}
		service.Preflight()
	})

	onConfigLoad = append(onConfigLoad, func() {
		for _, cfg := range configs {
			cfg.Set()
		}
		service.ConfigReload()
	})

	for _, cfg := range configs {
		if err := cfg.Init(command); err != nil {
			log.Panic().Err(err).Msg("unable to run serve command")
		}
	}

	rootCmd.AddCommand(command)
}
