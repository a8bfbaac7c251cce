package config

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	OutputText = "text"
	OutputYAML = "yaml"
)

type Convert struct {
	Input string

	FFmpegBinary  string
	FFprobeBinary string

	OnFailure string
	Verify    bool
	Probe     bool
	Output    string

	MetricsTextfile string
}

func (Convert) Init(cmd *cobra.Command) error {
	cmd.Flags().StringP("input", "i", "", "path to the input video file")
	if err := viper.BindPFlag("input", cmd.Flags().Lookup("input")); err != nil {
		return err
	}

	if err := cmd.MarkFlagRequired("input"); err != nil {
		return err
	}

	cmd.PersistentFlags().String("ffmpeg-binary", "ffmpeg", "ffmpeg executable")
	if err := viper.BindPFlag("ffmpeg-binary", cmd.PersistentFlags().Lookup("ffmpeg-binary")); err != nil {
		return err
	}

	cmd.PersistentFlags().String("ffprobe-binary", "ffprobe", "ffprobe executable")
	if err := viper.BindPFlag("ffprobe-binary", cmd.PersistentFlags().Lookup("ffprobe-binary")); err != nil {
		return err
	}

	cmd.PersistentFlags().String("on-failure", "keep", "what to do with the asset directory when conversion fails (keep, remove)")
	if err := viper.BindPFlag("on-failure", cmd.PersistentFlags().Lookup("on-failure")); err != nil {
		return err
	}

	cmd.PersistentFlags().Bool("verify", false, "fail when the manifest is missing after transcode")
	if err := viper.BindPFlag("verify", cmd.PersistentFlags().Lookup("verify")); err != nil {
		return err
	}

	cmd.PersistentFlags().Bool("probe", false, "log input metadata using ffprobe before transcode")
	if err := viper.BindPFlag("probe", cmd.PersistentFlags().Lookup("probe")); err != nil {
		return err
	}

	cmd.PersistentFlags().String("output", OutputText, "result format printed on stdout (text, yaml)")
	if err := viper.BindPFlag("output", cmd.PersistentFlags().Lookup("output")); err != nil {
		return err
	}

	cmd.PersistentFlags().String("metrics-textfile", "", "write conversion metrics to this file in prometheus text format")
	if err := viper.BindPFlag("metrics-textfile", cmd.PersistentFlags().Lookup("metrics-textfile")); err != nil {
		return err
	}

	return nil
}

func (c *Convert) Set() {
	c.Input = viper.GetString("input")

	c.FFmpegBinary = viper.GetString("ffmpeg-binary")
	c.FFprobeBinary = viper.GetString("ffprobe-binary")

	c.OnFailure = viper.GetString("on-failure")
	c.Verify = viper.GetBool("verify")
	c.Probe = viper.GetBool("probe")

	c.MetricsTextfile = viper.GetString("metrics-textfile")

	c.Output = viper.GetString("output")
	if c.Output != OutputText && c.Output != OutputYAML {
		log.Warn().Str("output", c.Output).Msg("unknown output format, using text")
		c.Output = OutputText
	}
}
