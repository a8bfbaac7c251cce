package player

const placeholder = "{{VIDEO_ID}}"

type Config struct {
	// custom page template, must contain {{VIDEO_ID}}
	Template string
}

func (c Config) withDefaultValues() Config {
	if c.Template == "" {
		c.Template = watchHTML
	}
	return c
}
