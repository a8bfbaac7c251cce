package server

type Config struct {
	Bind    string
	SSLCert string
	SSLKey  string
	Proxy   bool
	PProf   bool
	Metrics bool

	CORS        bool
	CORSOrigins []string
}

func (c Config) withDefaultValues() Config {
	if c.Bind == "" {
		c.Bind = "0.0.0.0:8080"
	}
	if c.CORS && len(c.CORSOrigins) == 0 {
		c.CORSOrigins = []string{"*"}
	}
	return c
}
