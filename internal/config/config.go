package config

import "github.com/kelseyhightower/envconfig"

type Config struct {
	Sportsbook Sportsbook
	NFLFastR   NFLFastR
	ADP        ADP
}

type Sportsbook struct {
	APIKey string `envconfig:"SPORTSBOOK_API_KEY" required:"true"`
	Host   string `envconfig:"SPORTSBOOK_HOST" default:"sportsbook-odds.p.rapidapi.com"`
	// BaseURL overrides the URL derived from Host, for proxies and tests.
	BaseURL string `envconfig:"SPORTSBOOK_BASE_URL"`
}

type NFLFastR struct {
	Season   int    `envconfig:"SEASON" required:"true"`
	CacheDir string `envconfig:"PBP_CACHE_DIR" default:"."`
}

type ADP struct {
	CSVPath string `envconfig:"ADP_CSV"`
}

func New() (*Config, error) {
	var c Config
	err := envconfig.Process("", &c)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
