package catalog

import "time"

// Config holds the settings for the line catalog accessor. LinesURL may
// be either an HTTP(S) endpoint (the upstream WordPress lines API) or a
// path to a local JSON file with the same envelope.
type Config struct {
	LinesURL        string
	RefreshInterval time.Duration
	FetchTimeout    time.Duration
	Verbose         bool
}

func (config Config) refreshInterval() time.Duration {
	if config.RefreshInterval <= 0 {
		return time.Hour
	}
	return config.RefreshInterval
}

func (config Config) fetchTimeout() time.Duration {
	if config.FetchTimeout <= 0 {
		return 30 * time.Second
	}
	return config.FetchTimeout
}
