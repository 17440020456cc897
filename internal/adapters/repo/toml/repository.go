package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/pool-cli/internal/domain"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	configName      = "config"
	configType      = "toml"
	configPathKey   = "config.path"
	dataDirKey      = "data_dir"
	maxAttemptsKey  = "pick.max_attempts"
	logLevelKey     = "log.level"
	configFileMode  = 0o644
	configDirMode   = 0o755
	configDir       = ".config/pool"
	configFile      = "config.toml"
	tempFilePattern = ".config-*.toml.tmp"
	defaultLogLevel = "warn"
)

type Settings struct {
	ConfigPath      string
	DataDir         string
	MaxPickAttempts int
	LogLevel        string
}

// Repository reads pool settings and kind definitions from one TOML file.
// Scalar settings go through viper; kinds are decoded from the same file.
type Repository struct {
	path     string
	homeDir  string
	settings Settings
}

func NewRepository(cfg *viper.Viper) (*Repository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	cfg.SetConfigType(configType)
	if explicit := cfg.GetString(configPathKey); explicit != "" {
		cfg.SetConfigFile(expandPath(explicit, homeDir, homeDir))
	} else {
		cfg.SetConfigName(configName)
		cfg.AddConfigPath(filepath.Join(homeDir, configDir))
	}
	cfg.SetDefault(dataDirKey, homeDir)
	cfg.SetDefault(maxAttemptsKey, domain.DefaultMaxPickAttempts)
	cfg.SetDefault(logLevelKey, defaultLogLevel)

	err = cfg.ReadInConfig()
	if err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	path := cfg.ConfigFileUsed()
	if path == "" {
		path = filepath.Join(homeDir, configDir, configFile)
	}
	path, err = normalizePath(path)
	if err != nil {
		return nil, err
	}

	dataDir := cfg.GetString(dataDirKey)
	if strings.TrimSpace(dataDir) == "" {
		return nil, errors.New("data dir is empty")
	}
	dataDir, err = normalizePath(expandPath(dataDir, homeDir, homeDir))
	if err != nil {
		return nil, err
	}

	return &Repository{
		path:    path,
		homeDir: homeDir,
		settings: Settings{
			ConfigPath:      path,
			DataDir:         dataDir,
			MaxPickAttempts: cfg.GetInt(maxAttemptsKey),
			LogLevel:        cfg.GetString(logLevelKey),
		},
	}, nil
}

func (r *Repository) Settings() Settings {
	return r.settings
}

// Kinds returns the built-in kinds overridden and extended by the kinds of the
// config file.
func (r *Repository) Kinds(ctx context.Context) (domain.Kinds, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := r.readSchema()
	if err != nil {
		return nil, err
	}

	configured := make(domain.Kinds, 0, len(file.Kinds))
	for _, entry := range file.Kinds {
		kind := r.fromKindSchema(entry)
		kind.NormalizeAliases()
		if err := kind.Validate(); err != nil {
			return nil, fmt.Errorf("invalid kind in %s: %w", r.path, err)
		}
		configured = append(configured, kind)
	}

	return DefaultKinds(r.settings.DataDir).Merge(configured), nil
}

// WriteDefaults writes the built-in kinds to the config file. An existing file
// is only replaced when force is set.
func (r *Repository) WriteDefaults(ctx context.Context, force bool) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if !force {
		if _, err := os.Stat(r.path); err == nil {
			return "", fmt.Errorf("config file %s already exists", r.path)
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("stat config file: %w", err)
		}
	}

	file := fileSchema{}
	file.applyDefaults()
	for _, kind := range DefaultKinds(r.settings.DataDir) {
		file.Kinds = append(file.Kinds, toKindSchema(kind))
	}

	if err := writeTOMLFile(r.path, file); err != nil {
		return "", err
	}

	return r.path, nil
}

func (r *Repository) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fileSchema{}, nil
		}
		return fileSchema{}, fmt.Errorf("read config file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode config file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func (r *Repository) fromKindSchema(schema kindSchema) domain.KindConfig {
	sources := make([]domain.SourceConfig, 0, len(schema.Sources))
	for _, source := range schema.Sources {
		sources = append(sources, domain.SourceConfig{
			Dir:        expandPath(source.Dir, r.homeDir, ""),
			Pattern:    source.Pattern,
			TrimPrefix: source.TrimPrefix,
			TrimSuffix: source.TrimSuffix,
		})
	}

	dataFile := schema.DataFile
	if strings.TrimSpace(dataFile) != "" {
		dataFile = expandPath(dataFile, r.homeDir, r.settings.DataDir)
	}

	return domain.KindConfig{
		Kind:       domain.PoolKind(strings.TrimSpace(schema.Kind)),
		Name:       schema.Name,
		Aliases:    schema.Aliases,
		DataFile:   dataFile,
		CurrentEnv: strings.TrimSpace(schema.CurrentEnv),
		Sources:    sources,
	}
}

func toKindSchema(kind domain.KindConfig) kindSchema {
	sources := make([]sourceSchema, 0, len(kind.Sources))
	for _, source := range kind.Sources {
		sources = append(sources, sourceSchema{
			Dir:        source.Dir,
			Pattern:    source.Pattern,
			TrimPrefix: source.TrimPrefix,
			TrimSuffix: source.TrimSuffix,
		})
	}

	return kindSchema{
		Kind:       string(kind.Kind),
		Name:       kind.Name,
		Aliases:    kind.Aliases,
		DataFile:   kind.DataFile,
		CurrentEnv: kind.CurrentEnv,
		Sources:    sources,
	}
}

// expandPath resolves a leading "~" against home and, when base is set, a
// relative path against base.
func expandPath(path, home, base string) string {
	path = strings.TrimSpace(path)
	switch {
	case path == "~":
		return home
	case strings.HasPrefix(path, "~/"):
		return filepath.Join(home, path[2:])
	case base != "" && path != "" && !filepath.IsAbs(path) && !strings.HasPrefix(path, "$"):
		return filepath.Join(base, path)
	default:
		return path
	}
}

func normalizePath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve path %q: %w", path, err)
	}

	return filepath.Clean(absPath), nil
}

func writeTOMLFile(path string, file any) error {
	if err := os.MkdirAll(filepath.Dir(path), configDirMode); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := tempFile.Chmod(configFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tempName, path); err != nil {
		return fmt.Errorf("replace file: %w", err)
	}

	cleanup = false
	return nil
}
