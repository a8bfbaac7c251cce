package config

import (
	"net"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type Server struct {
	Host  string
	Port  int
	Cert  string
	Key   string
	Proxy bool
	PProf bool

	Metrics     bool
	CORS        bool
	CORSOrigins []string

	PlayerTemplate string
}

func (Server) Init(cmd *cobra.Command) error {
	cmd.PersistentFlags().String("host", "0.0.0.0", "address to listen on")
	if err := viper.BindPFlag("host", cmd.PersistentFlags().Lookup("host")); err != nil {
		return err
	}

	cmd.PersistentFlags().Int("port", 8080, "port to listen on, PORT environment variable is honoured")
	if err := viper.BindPFlag("port", cmd.PersistentFlags().Lookup("port")); err != nil {
		return err
	}

	// bare PORT, without prefix
	if err := viper.BindEnv("port", "PORT"); err != nil {
		return err
	}

	cmd.PersistentFlags().String("sslcert", "", "path to the SSL cert")
	if err := viper.BindPFlag("sslcert", cmd.PersistentFlags().Lookup("sslcert")); err != nil {
		return err
	}

	cmd.PersistentFlags().String("sslkey", "", "path to the SSL key")
	if err := viper.BindPFlag("sslkey", cmd.PersistentFlags().Lookup("sslkey")); err != nil {
		return err
	}

	cmd.PersistentFlags().Bool("proxy", false, "allow reverse proxies")
	if err := viper.BindPFlag("proxy", cmd.PersistentFlags().Lookup("proxy")); err != nil {
		return err
	}

	cmd.PersistentFlags().Bool("pprof", false, "enable pprof endpoint available at /debug/pprof")
	if err := viper.BindPFlag("pprof", cmd.PersistentFlags().Lookup("pprof")); err != nil {
		return err
	}

	cmd.PersistentFlags().Bool("metrics", false, "enable prometheus endpoint available at /metrics")
	if err := viper.BindPFlag("metrics", cmd.PersistentFlags().Lookup("metrics")); err != nil {
		return err
	}

	cmd.PersistentFlags().Bool("cors", false, "allow cross-origin requests")
	if err := viper.BindPFlag("cors", cmd.PersistentFlags().Lookup("cors")); err != nil {
		return err
	}

	cmd.PersistentFlags().StringSlice("cors-origins", []string{"*"}, "origins allowed when cors is enabled")
	if err := viper.BindPFlag("cors-origins", cmd.PersistentFlags().Lookup("cors-origins")); err != nil {
		return err
	}

	cmd.PersistentFlags().String("player-template", "", "path to custom player page, {{VIDEO_ID}} is replaced by id")
	if err := viper.BindPFlag("player-template", cmd.PersistentFlags().Lookup("player-template")); err != nil {
		return err
	}

	return nil
}

func (s *Server) Set() {
	s.Host = viper.GetString("host")
	s.Port = viper.GetInt("port")
	if s.Port <= 0 {
		s.Port = 8080
	}

	s.Cert = viper.GetString("sslcert")
	s.Key = viper.GetString("sslkey")
	s.Proxy = viper.GetBool("proxy")
	s.PProf = viper.GetBool("pprof")

	s.Metrics = viper.GetBool("metrics")
	s.CORS = viper.GetBool("cors")
	s.CORSOrigins = viper.GetStringSlice("cors-origins")

	s.PlayerTemplate = viper.GetString("player-template")
}

func (s *Server) Bind() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}
