package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPrefix  = "WEBTEST"
	configName = "webtest"
)

// Load reads harness settings from the environment, an optional .env file,
// and an optional webtest.yml in the working directory. Missing files are
// not errors; only malformed content is.
func Load() (Settings, error) {
	return LoadFrom("")
}

// LoadFrom is Load with an explicit directory to search for webtest.yml and
// .env. An empty dir means the current working directory.
func LoadFrom(dir string) (Settings, error) {
	var settings Settings

	if dir == "" {
		dir = "."
	}

	// .env is loaded first so viper's AutomaticEnv sees its values.
	envFile := dir + "/.env"
	if _, err := os.Stat(envFile); err == nil {
		if err := godotenv.Load(envFile); err != nil {
			return settings, fmt.Errorf("config: load %s: %w", envFile, err)
		}
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("log.level", "error")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.output", "stderr")
	v.SetDefault("client.timeout", "30s")
	v.SetDefault("client.cookie_jar", false)

	v.SetConfigName(configName)
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return settings, fmt.Errorf("config: read %s.yml: %w", configName, err)
		}
	}

	if err := v.Unmarshal(&settings); err != nil {
		return settings, fmt.Errorf("config: unmarshal settings: %w", err)
	}

	settings.ApplyDefaults()
	if err := settings.Validate(); err != nil {
		return settings, err
	}
	return settings, nil
}
