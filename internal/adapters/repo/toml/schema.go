package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version int          `toml:"version"`
	Kinds   []kindSchema `toml:"kinds"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported config schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type kindSchema struct {
	Kind       string         `toml:"kind"`
	Name       string         `toml:"name"`
	Aliases    []string       `toml:"aliases,omitempty"`
	DataFile   string         `toml:"data_file"`
	CurrentEnv string         `toml:"current_env,omitempty"`
	Sources    []sourceSchema `toml:"sources"`
}

type sourceSchema struct {
	Dir        string `toml:"dir"`
	Pattern    string `toml:"pattern"`
	TrimPrefix string `toml:"trim_prefix,omitempty"`
	TrimSuffix string `toml:"trim_suffix,omitempty"`
}
