package config

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type Config interface {
	Init(cmd *cobra.Command) error
	Set()
}

// Root holds settings shared by all commands.
type Root struct {
	BaseDir string
}

func (Root) Init(cmd *cobra.Command) error {
	cmd.PersistentFlags().String("basedir", "", "base directory holding the videos/ folder (default current directory)")
	if err := viper.BindPFlag("basedir", cmd.PersistentFlags().Lookup("basedir")); err != nil {
		return err
	}

	return nil
}

func (r *Root) Set() {
	r.BaseDir = viper.GetString("basedir")
	if r.BaseDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			cwd = "."
		}
		r.BaseDir = cwd
	}
}
