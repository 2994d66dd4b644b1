package config

import (
	"time"

	"github.com/skillsenselab/webtest/logger"
)

const defaultTimeout = 30 * time.Second

// Settings holds harness-wide defaults.
type Settings struct {
	// Log configures harness logging.
	Log logger.Config `yaml:"log" mapstructure:"log"`
	// Client configures defaults applied to every new TestClient.
	Client ClientDefaults `yaml:"client" mapstructure:"client"`
}

// ClientDefaults are the per-client settings a TestClient starts from.
type ClientDefaults struct {
	// Timeout is the whole-request timeout for the underlying HTTP client.
	// Zero disables the timeout.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout" validate:"min=0"`
	// CookieJar enables cookie persistence across requests by default.
	CookieJar bool `yaml:"cookie_jar" mapstructure:"cookie_jar"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (s *Settings) ApplyDefaults() {
	s.Log.ApplyDefaults()
	if s.Client.Timeout == 0 {
		s.Client.Timeout = defaultTimeout
	}
}

// Validate checks that the settings are valid.
func (s *Settings) Validate() error {
	if err := s.Log.Validate(); err != nil {
		return err
	}
	return ValidateStruct(&s.Client)
}
