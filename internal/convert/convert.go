package convert

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/m1k1o/go-m3u8/internal/config"
	"github.com/m1k1o/go-m3u8/internal/metrics"
	"github.com/m1k1o/go-m3u8/pkg/asset"
	"github.com/m1k1o/go-m3u8/pkg/hlsconv"
	"github.com/m1k1o/go-m3u8/pkg/videoid"
)

func NewCommand(root *config.Root) *Main {
	return &Main{
		RootConfig:    root,
		ConvertConfig: &config.Convert{},

		generate: videoid.Generate,
		exit:     os.Exit,
	}
}

type Main struct {
	RootConfig    *config.Root
	ConvertConfig *config.Convert

	logger     zerolog.Logger
	transcoder hlsconv.Transcoder // nil runs ffmpeg
	generate   func() string
	exit       func(code int)
}

func (main *Main) Preflight() {
	main.logger = log.With().Str("service", "convert").Logger()
}

func (main *Main) Run(cmd *cobra.Command, args []string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := main.convert(ctx, cmd.OutOrStdout())
	main.writeMetrics()

	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %s\n", err)
		stop()
		main.exit(1)
	}
}

// writeMetrics exports conversion metrics for the node_exporter textfile collector.
func (main *Main) writeMetrics() {
	path := main.ConvertConfig.MetricsTextfile
	if path == "" {
		return
	}

	if err := prometheus.WriteToTextfile(path, prometheus.DefaultGatherer); err != nil {
		main.logger.Warn().Err(err).Str("path", path).Msg("unable to write metrics textfile")
		return
	}

	main.logger.Debug().Str("path", path).Msg("metrics textfile written")
}

func (main *Main) convert(ctx context.Context, stdout io.Writer) error {
	start := time.Now()

	a, err := main.run(ctx, stdout)
	metrics.ConversionDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.ConversionsTotal.WithLabelValues(metrics.ConversionFailure).Inc()
		return err
	}

	metrics.ConversionsTotal.WithLabelValues(metrics.ConversionSuccess).Inc()
	main.logger.Info().Str("id", a.ID).Str("manifest", a.Manifest).Msg("conversion successful")

	if main.ConvertConfig.Output == config.OutputYAML {
		return writeYAML(stdout, a)
	}

	fmt.Fprintln(stdout, "Conversion successful!")
	fmt.Fprintf(stdout, "Playlist: %s\n", a.Manifest)
	return nil
}

func (main *Main) run(ctx context.Context, stdout io.Writer) (*asset.Asset, error) {
	conf := main.ConvertConfig

	// nothing is printed for input that cannot be converted
	if err := hlsconv.CheckInput(conf.Input); err != nil {
		return nil, err
	}

	policy, err := hlsconv.ParseFailurePolicy(conf.OnFailure)
	if err != nil {
		return nil, err
	}

	converter := hlsconv.New(&hlsconv.Config{
		BaseDir:       main.RootConfig.BaseDir,
		FFmpegBinary:  conf.FFmpegBinary,
		FFprobeBinary: conf.FFprobeBinary,
		OnFailure:     policy,
		Verify:        conf.Verify,
		Probe:         conf.Probe,
	}, main.transcoder)

	id := main.generate()

	if conf.Output != config.OutputYAML {
		fmt.Fprintf(stdout, "Starting conversion: %s -> %s\n", conf.Input, converter.Layout().ManifestPath(id))
		fmt.Fprintf(stdout, "Video ID: %s\n", id)
	}

	return converter.Convert(ctx, conf.Input, id)
}

func writeYAML(w io.Writer, a *asset.Asset) error {
	out, err := yaml.Marshal(a)
	if err != nil {
		return err
	}

	_, err = w.Write(out)
	return err
}
