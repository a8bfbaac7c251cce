package hlsconv

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

type ProbeMediaData struct {
	FormatName []string
	Duration   time.Duration

	Video *ProbeVideoData
	Audio []ProbeAudioData
}

type ProbeVideoData struct {
	Codec  string
	Width  int
	Height int
}

type ProbeAudioData struct {
	Codec string
}

func ProbeMedia(ctx context.Context, ffprobeBinary string, inputFilePath string) (*ProbeMediaData, error) {
	args := []string{
		"-v", "error", // hide debug information
		"-show_format",  // container information
		"-show_streams", // codec information
		"-of", "json",
		inputFilePath,
	}

	cmd := exec.CommandContext(ctx, ffprobeBinary, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("%w: %s", err, msg)
		}
		return nil, err
	}

	return parseProbeOutput(stdout.Bytes())
}

func parseProbeOutput(data []byte) (*ProbeMediaData, error) {
	out := struct {
		Streams []struct {
			CodecName string `json:"codec_name"`
			CodecType string `json:"codec_type"`
			Width     int    `json:"width"`
			Height    int    `json:"height"`
		} `json:"streams"`
		Format struct {
			FormatName string `json:"format_name"`
			Duration   string `json:"duration"`
		} `json:"format"`
	}{}

	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}

	media := ProbeMediaData{}
	for _, stream := range out.Streams {
		switch stream.CodecType {
		case "video":
			// first video stream wins
			if media.Video != nil {
				continue
			}
			media.Video = &ProbeVideoData{
				Codec:  stream.CodecName,
				Width:  stream.Width,
				Height: stream.Height,
			}
		case "audio":
			media.Audio = append(media.Audio, ProbeAudioData{
				Codec: stream.CodecName,
			})
		}
	}

	if out.Format.FormatName != "" {
		media.FormatName = strings.Split(out.Format.FormatName, ",")
	}

	if out.Format.Duration != "" {
		var err error
		media.Duration, err = time.ParseDuration(out.Format.Duration + "s")
		if err != nil {
			return nil, fmt.Errorf("unable to parse format duration: %w", err)
		}
	}

	return &media, nil
}
