package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/ensigniasec/report-repair/internal/animate"
	"github.com/ensigniasec/report-repair/internal/board"
	"github.com/ensigniasec/report-repair/internal/validate"
)

const (
	defaultConfigPath = "~/.config/report-repair/config.yaml"
	maxConfigSize     = 1 << 20
)

// ErrUnknownFormat is returned for config files that are neither YAML nor TOML.
var ErrUnknownFormat = errors.New("unknown config file format")

// Config holds the presentation settings. None of them change the search.
type Config struct {
	FrameInterval  time.Duration `validate:"gt=0"`
	PaceDecay      float64       `validate:"gt=0,lte=1"`
	CellsPerColumn int           `validate:"gte=1,lte=200"`
	AltScreen      bool
}

// Default is 1/4 s frames, 0.9 decay and 20 rows per column.
func Default() Config {
	return Config{
		FrameInterval:  animate.DefaultBaseline,
		PaceDecay:      animate.DefaultDecay,
		CellsPerColumn: board.DefaultPerColumn,
		AltScreen:      true,
	}
}

type rawConfig struct {
	FrameInterval  string   `yaml:"frame_interval" toml:"frame_interval"`
	PaceDecay      *float64 `yaml:"pace_decay" toml:"pace_decay"`
	CellsPerColumn *int     `yaml:"cells_per_column" toml:"cells_per_column"`
	AltScreen      *bool    `yaml:"alt_screen" toml:"alt_screen"`
}

// Load reads the config at path. An empty path means the default location,
// which may be absent; an explicit path must exist.
func Load(path string) (Config, error) {
	explicit := strings.TrimSpace(path) != ""
	if !explicit {
		path = defaultConfigPath
	}
	resolved, err := expandTilde(strings.TrimSpace(path))
	if err != nil {
		return Config{}, err
	}

	data, err := readFile(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			logrus.Debugf("no config at %s, using defaults", resolved)
			return Default(), nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}

	var raw rawConfig
	if err := unmarshal(resolved, data, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", resolved, err)
	}

	cfg, err := raw.apply(Default())
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", resolved, err)
	}
	if err := validate.Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", resolved, err)
	}
	logrus.Debugf("loaded config from %s", resolved)
	return cfg, nil
}

func (r rawConfig) apply(cfg Config) (Config, error) {
	if s := strings.TrimSpace(r.FrameInterval); s != "" {
		d, err := time.ParseDuration(s)
		if err != nil {
			return Config{}, fmt.Errorf("frame_interval: %w", err)
		}
		cfg.FrameInterval = d
	}
	if r.PaceDecay != nil {
		cfg.PaceDecay = *r.PaceDecay
	}
	if r.CellsPerColumn != nil {
		cfg.CellsPerColumn = *r.CellsPerColumn
	}
	if r.AltScreen != nil {
		cfg.AltScreen = *r.AltScreen
	}
	return cfg, nil
}

func readFile(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.Size() > maxConfigSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", info.Size(), maxConfigSize)
	}
	return os.ReadFile(path)
}

// unmarshal decodes data using the path's extension to choose YAML or TOML.
func unmarshal(path string, data []byte, v any) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, v)
	case ".toml":
		return toml.Unmarshal(data, v)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
}

// expandTilde expands the tilde in a path to the user's home directory.
func expandTilde(path string) (string, error) {
	if len(path) == 0 || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
