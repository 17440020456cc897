package domain

import (
	"fmt"
	"strings"
)

type PoolKind string

// SourceConfig describes one glob that contributes items to a pool kind.
// Item names are file base names with TrimPrefix and TrimSuffix removed.
type SourceConfig struct {
	Dir        string
	Pattern    string
	TrimPrefix string
	TrimSuffix string
}

// KindConfig is everything a pool service needs to know about one kind.
type KindConfig struct {
	Kind       PoolKind
	Name       string
	Aliases    []string
	DataFile   string
	CurrentEnv string
	Sources    []SourceConfig
}

func (k KindConfig) Validate() error {
	if strings.TrimSpace(string(k.Kind)) == "" {
		return fmt.Errorf("kind is required")
	}
	if strings.TrimSpace(k.Name) == "" {
		return fmt.Errorf("kind %s: name is required", k.Kind)
	}
	if strings.TrimSpace(k.DataFile) == "" {
		return fmt.Errorf("kind %s: data file is required", k.Kind)
	}
	if len(k.Sources) == 0 {
		return fmt.Errorf("kind %s: at least one source is required", k.Kind)
	}
	for i, source := range k.Sources {
		if strings.TrimSpace(source.Pattern) == "" {
			return fmt.Errorf("kind %s: source %d: pattern is required", k.Kind, i)
		}
	}

	return nil
}

func (k *KindConfig) NormalizeAliases() {
	if k == nil {
		return
	}

	aliases := make([]string, 0, len(k.Aliases))
	seen := map[string]struct{}{string(k.Kind): {}}
	for _, alias := range k.Aliases {
		trimmed := strings.TrimSpace(alias)
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; ok {
			continue
		}
		seen[trimmed] = struct{}{}
		aliases = append(aliases, trimmed)
	}

	k.Aliases = aliases
}

func (k KindConfig) Matches(name string) bool {
	name = strings.TrimSpace(name)
	if name == string(k.Kind) {
		return true
	}
	for _, alias := range k.Aliases {
		if alias == name {
			return true
		}
	}
	return false
}

type Kinds []KindConfig

func (ks Kinds) Resolve(name string) (KindConfig, error) {
	for _, kind := range ks {
		if kind.Matches(name) {
			return kind, nil
		}
	}
	return KindConfig{}, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// Merge returns ks with overrides replacing kinds of the same name and new
// kinds appended in order.
func (ks Kinds) Merge(overrides Kinds) Kinds {
	merged := make(Kinds, len(ks))
	copy(merged, ks)

	for _, override := range overrides {
		replaced := false
		for i := range merged {
			if merged[i].Kind == override.Kind {
				merged[i] = override
				replaced = true
				break
			}
		}
		if !replaced {
			merged = append(merged, override)
		}
	}

	return merged
}
