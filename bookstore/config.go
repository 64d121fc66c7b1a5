package bookstore

import (
	"errors"
	"fmt"
	"os"
	"time"

	"go.uber.org/config"
)

type Config struct {
	API   APISettings
	Flows struct {
		Lookup   FlowSettings
		Login    FlowSettings
		Register FlowSettings
	}
}

type APISettings struct {
	BaseURL   string        `yaml:"baseURL"`
	Timeout   time.Duration `yaml:"timeout"`
	Endpoints struct {
		User          string `yaml:"user"`
		Authorized    string `yaml:"authorized"`
		GenerateToken string `yaml:"generateToken"`
	} `yaml:"endpoints"`
}

// FlowSettings configures the files and pacing of one batch flow.
type FlowSettings struct {
	Input  string        `yaml:"input"`
	Output string        `yaml:"output"`
	Delay  time.Duration `yaml:"delay"`
}

// FlowSettings returns the settings for the named flow.
func (c Config) FlowSettings(name FlowName) (FlowSettings, error) {
	switch name {
	case LookupFlow:
		return c.Flows.Lookup, nil
	case LoginFlow:
		return c.Flows.Login, nil
	case RegisterFlow:
		return c.Flows.Register, nil
	default:
		return FlowSettings{}, fmt.Errorf("unknown flow %q", name)
	}
}

// RequestTimeout returns the configured per-request timeout, or HTTPRequestTimeout.
func (c Config) RequestTimeout() time.Duration {
	if c.API.Timeout > 0 {
		return c.API.Timeout
	}
	return HTTPRequestTimeout
}

func (c Config) Validate() error {
	if c.API.BaseURL == "" {
		return errors.New("api.baseURL must not be empty")
	}
	if c.API.Endpoints.User == "" || c.API.Endpoints.Authorized == "" || c.API.Endpoints.GenerateToken == "" {
		return errors.New("api.endpoints must all be set")
	}
	return nil
}

type LookupEnvFunc func(key string) (string, bool)

type YAMLConfigUnmarshaler struct {
	LookupEnv LookupEnvFunc
}

func (u YAMLConfigUnmarshaler) Unmarshal(sources ...ConfigFile) (Config, error) {
	var result Config
	var options []config.YAMLOption
	for _, s := range sources {
		if s.Length > 0 {
			options = append(options, config.Source(s.Reader))
		}
	}
	var lookup func(string) (string, bool) = os.LookupEnv
	if u.LookupEnv != nil {
		lookup = u.LookupEnv
	}
	options = append(options, config.Expand(lookup))
	yaml, err := config.NewYAML(options...)
	if err != nil {
		return result, fmt.Errorf("failed to read yaml config %w", err)
	}
	readError := func(key string, cause error) error {
		return fmt.Errorf("failed to read '%s' from yaml config %w", key, cause)
	}
	key := "api"
	err = yaml.Get(key).Populate(&result.API)
	if err != nil {
		return result, readError(key, err)
	}
	key = "flows"
	err = yaml.Get(key).Populate(&result.Flows)
	if err != nil {
		return result, readError(key, err)
	}
	return result, nil
}
