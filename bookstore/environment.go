package bookstore

import (
	"fmt"
)

// configOptions holds optional configuration for LoadConfig.
type configOptions struct {
	files     []string
	sources   []ConfigFile
	lookupEnv LookupEnvFunc
}

// ConfigOption is a functional option for configuring LoadConfig.
type ConfigOption func(*configOptions)

// ConfigWithFile layers the YAML file at path over the defaults.
// An empty path is ignored so callers can pass an unset flag straight through.
func ConfigWithFile(path string) ConfigOption {
	return func(o *configOptions) {
		if path != "" {
			o.files = append(o.files, path)
		}
	}
}

// ConfigWithSource layers an in-memory YAML source over the defaults and any files.
func ConfigWithSource(source ConfigFile) ConfigOption {
	return func(o *configOptions) {
		o.sources = append(o.sources, source)
	}
}

// ConfigWithLookupEnv replaces os.LookupEnv for ${VAR:default} expansion.
func ConfigWithLookupEnv(lookup LookupEnvFunc) ConfigOption {
	return func(o *configOptions) {
		o.lookupEnv = lookup
	}
}

// LoadConfig reads the embedded defaults, then each configured file and source in order,
// expanding ${VAR:default} references from the environment.
func LoadConfig(opts ...ConfigOption) (Config, error) {
	var options configOptions
	for _, opt := range opts {
		opt(&options)
	}

	sources := []ConfigFile{DefaultsConfigFile()}
	for _, f := range options.files {
		file, err := MustFindConfigFile(f)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config file %w", err)
		}
		sources = append(sources, file)
	}
	sources = append(sources, options.sources...)

	result, err := YAMLConfigUnmarshaler{LookupEnv: options.lookupEnv}.Unmarshal(sources...)
	if err != nil {
		return result, fmt.Errorf("failed to load config %w", err)
	}
	if err = result.Validate(); err != nil {
		return result, err
	}
	return result, nil
}
