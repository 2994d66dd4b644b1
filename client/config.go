package client

import (
	"sync"
	"time"

	"github.com/skillsenselab/webtest/config"
	"github.com/skillsenselab/webtest/logger"
	"github.com/skillsenselab/webtest/server"
)

// Config configures a TestClient.
type Config struct {
	// Timeout is the whole-request timeout. Zero disables it.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout" validate:"min=0"`
	// CookieJar enables cookie persistence across requests from this client.
	CookieJar bool `yaml:"cookie_jar" mapstructure:"cookie_jar"`
	// BaseHeaders are applied to every request issued by the client.
	BaseHeaders map[string]string `yaml:"base_headers" mapstructure:"base_headers"`
	// Server configures the ephemeral server backing the client.
	Server server.Config `yaml:"server" mapstructure:"server"`
}

// ApplyDefaults fills in defaults for the embedded server configuration.
// Timeout is left alone so that an explicit zero keeps the timeout disabled;
// the process-wide default is seeded by New before options run.
func (c *Config) ApplyDefaults() {
	c.Server.ApplyDefaults()
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if err := config.ValidateStruct(c); err != nil {
		return err
	}
	return c.Server.Validate()
}

// Option customizes a TestClient.
type Option func(*Config)

// WithCookieJar enables or disables cookie persistence across requests.
func WithCookieJar(enabled bool) Option {
	return func(c *Config) { c.CookieJar = enabled }
}

// WithTimeout sets the whole-request timeout. Zero disables it.
func WithTimeout(d time.Duration) Option {
	return func(c *Config) { c.Timeout = d }
}

// WithBaseHeaders sets headers applied to every request from the client.
func WithBaseHeaders(headers map[string]string) Option {
	return func(c *Config) { c.BaseHeaders = headers }
}

// WithH2C makes the ephemeral server accept HTTP/2 cleartext.
func WithH2C() Option {
	return func(c *Config) { c.Server.H2C = true }
}

// Process-wide defaults, loaded once from the environment.
var (
	loadOnce sync.Once
	settings config.Settings
)

func loadDefaults() config.Settings {
	loadOnce.Do(func() {
		s, err := config.Load()
		if err != nil {
			// Malformed environment settings are a harness bug; fall back to
			// built-in defaults but surface the problem.
			logger.Error("invalid webtest settings, using defaults", map[string]interface{}{
				"error": err.Error(),
			})
			s = config.Settings{}
			s.ApplyDefaults()
		}
		settings = s
		logger.SetGlobalLogger(logger.New(&settings.Log))
	})
	return settings
}
