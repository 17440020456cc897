package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bnema/pool-cli/internal/adapters/catalog/env"
	"github.com/bnema/pool-cli/internal/adapters/catalog/glob"
	"github.com/bnema/pool-cli/internal/adapters/catalog/union"
	poolinfo "github.com/bnema/pool-cli/internal/adapters/render/poolinfo"
	"github.com/bnema/pool-cli/internal/adapters/repo/jsonfile"
	tomlrepo "github.com/bnema/pool-cli/internal/adapters/repo/toml"
	"github.com/bnema/pool-cli/internal/application"
	"github.com/bnema/pool-cli/internal/domain"
	"github.com/bnema/pool-cli/internal/ports"
	envparse "github.com/caarlos0/env/v11"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const envPrefix = "pool"

// envConfig holds the settings read straight from the process environment.
type envConfig struct {
	ConfigPath string `env:"POOL_CONFIG"`
	Verbose    bool   `env:"POOL_VERBOSE"`
	NoColor    string `env:"NO_COLOR"`
}

type app struct {
	config       *tomlrepo.Repository
	settings     tomlrepo.Settings
	env          envConfig
	fs           afero.Fs
	clock        ports.Clock
	dice         domain.Dice
	logger       *zap.Logger
	infoRenderer func(application.Info, poolinfo.RenderOptions) (string, error)
}

func wireApp() (*app, error) {
	var envCfg envConfig
	if err := envparse.Parse(&envCfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	config := viper.New()
	config.SetEnvPrefix(envPrefix)
	config.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	config.AutomaticEnv()
	if envCfg.ConfigPath != "" {
		config.Set("config.path", envCfg.ConfigPath)
	}

	repo, err := tomlrepo.NewRepository(config)
	if err != nil {
		return nil, fmt.Errorf("wire config repository: %w", err)
	}

	return &app{
		config:       repo,
		settings:     repo.Settings(),
		env:          envCfg,
		fs:           afero.NewOsFs(),
		clock:        ports.SystemClock{},
		dice:         domain.SystemDice{},
		logger:       zap.NewNop(),
		infoRenderer: poolinfo.Render,
	}, nil
}

func (a *app) initLogger(w io.Writer, verbose bool) error {
	level := zapcore.WarnLevel
	if raw := strings.TrimSpace(a.settings.LogLevel); raw != "" {
		parsed, err := zapcore.ParseLevel(raw)
		if err != nil {
			return fmt.Errorf("parse log level %q: %w", raw, err)
		}
		level = parsed
	}
	if verbose || a.env.Verbose {
		level = zapcore.DebugLevel
	}

	a.logger = newLogger(w, level)
	return nil
}

func newLogger(w io.Writer, level zapcore.Level) *zap.Logger {
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.TimeKey = ""
	encoderConfig.CallerKey = ""

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.AddSync(w), level)
	return zap.New(core)
}

func (a *app) resolveKind(ctx context.Context, name string) (domain.KindConfig, error) {
	kinds, err := a.config.Kinds(ctx)
	if err != nil {
		return domain.KindConfig{}, err
	}

	return kinds.Resolve(name)
}

func (a *app) poolService(kind domain.KindConfig) (*application.PoolService, error) {
	store, err := jsonfile.NewStore(a.fs, kind.DataFile, a.clock)
	if err != nil {
		return nil, fmt.Errorf("wire %s record store: %w", kind.Kind, err)
	}

	sources := make([]ports.ItemSource, 0, len(kind.Sources))
	for _, source := range kind.Sources {
		sources = append(sources, glob.NewSource(a.fs, source, os.Getenv))
	}
	items, err := union.NewSourceChecked(sources...)
	if err != nil {
		return nil, fmt.Errorf("wire %s item sources: %w", kind.Kind, err)
	}

	picker := domain.NewPicker(a.dice, a.settings.MaxPickAttempts)

	return application.NewPoolService(kind, store, items, env.NewCurrentItem(kind.CurrentEnv), picker, a.logger), nil
}

func (a *app) renderOptions() poolinfo.RenderOptions {
	return poolinfo.RenderOptions{Plain: a.env.NoColor != ""}
}
