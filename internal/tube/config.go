package tube

import "tubemap.nanjingmetro.org/internal/appconf"

// Config configures a Manager. An empty MapPath selects the bundled Nanjing
// Metro document; DBPath defaults to an in-memory index.
type Config struct {
	MapPath string
	DBPath  string
	Env     appconf.Environment
	Verbose bool
}

func (config Config) dbPath() string {
	if config.DBPath == "" {
		return ":memory:"
	}
	return config.DBPath
}
