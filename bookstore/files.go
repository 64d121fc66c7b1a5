package bookstore

import (
	"bytes"
	_ "embed"
	"io"
	"os"
)

//go:embed defaults.yaml
var defaultsYAML []byte

type ConfigFile struct {
	Name   string
	Reader io.Reader
	Length int
}

// DefaultsConfigFile returns the embedded defaults every config is layered over.
func DefaultsConfigFile() ConfigFile {
	return ConfigFile{
		Name:   "defaults.yaml",
		Reader: bytes.NewReader(defaultsYAML),
		Length: len(defaultsYAML),
	}
}

// MustFindConfigFile reads a user supplied YAML config file.
func MustFindConfigFile(name string) (ConfigFile, error) {
	var result ConfigFile
	contents, err := os.ReadFile(name)
	if err == nil {
		result.Name = name
		result.Reader = bytes.NewReader(contents)
		result.Length = len(contents)
	}
	return result, err
}
