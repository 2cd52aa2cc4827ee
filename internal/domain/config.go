package domain

// FileConfig mirrors the optional on-disk config file.
type FileConfig struct {
	DefaultSavePath string     `mapstructure:"default_save_path"`
	Qbit            QbitConfig `mapstructure:"qbittorrent"`
}

type QbitConfig struct {
	Host     string `mapstructure:"host"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

// Overrides holds values set explicitly on the command line. An empty
// string means the flag was not given.
type Overrides struct {
	Host     string
	Username string
	Password string
	DryRun   bool
	Verbose  bool
}

// Settings is the effective configuration for one invocation, produced
// by config.Resolve and read-only afterwards. Username and Password are
// both-or-neither: login is only attempted when both are set.
type Settings struct {
	Host            string
	Username        string
	Password        string
	DefaultSavePath string
	DryRun          bool
	Verbose         bool
}
