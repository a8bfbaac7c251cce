package assets

type Config struct {
	BaseDir string // directory that holds videos/
}
