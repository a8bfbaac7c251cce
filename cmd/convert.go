package cmd

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/m1k1o/go-m3u8/internal/config"
	"github.com/m1k1o/go-m3u8/internal/convert"
)

func init() {
	service := convert.NewCommand(rootConfig)

	command := &cobra.Command{
		Use:   "convert",
		Short: "convert video file to HLS",
		Long:  `convert video file to HLS manifest and segments stored under videos/<id>`,
		Args:  cobra.NoArgs,
		Run:   service.Run,
	}

	configs := []config.Config{
		service.ConvertConfig,
	}

	onInitialize = append(onInitialize, func() {
		for _, cfg := range configs {
			cfg.Set()
		}
		service.Preflight()
	})

	for _, cfg := range configs {
		if err := cfg.Init(command); err != nil {
			log.Panic().Err(err).Msg("unable to run convert command")
		}
	}

	rootCmd.AddCommand(command)
}
