package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/lixenwraith/galton/engine"
	"github.com/lixenwraith/galton/galton"
	"github.com/lixenwraith/galton/parameter"
)

const (
	// FileName is the config file base name, searched without extension
	FileName  = "galton"
	// EnvPrefix prefixes environment overrides, e.g. GALTON_BOARD_PAIRS
	EnvPrefix = "GALTON"
)

// ErrInvalidSettings wraps every validation failure reported by Load
var ErrInvalidSettings = errors.New("invalid settings")

// AudioSettings controls the sound cues
type AudioSettings struct {
	Enabled bool
	Volume  float64
}

// LogSettings controls the debug log file
type LogSettings struct {
	Enabled bool
	Level   string
	Dir     string
}

// Settings is the resolved application configuration
type Settings struct {
	Board    galton.Config
	Seed     uint64 // 0 seeds from the clock
	Session  engine.SessionConfig
	TickRate int
	Audio    AudioSettings
	Log      LogSettings

	// ConfigFile is the file that was read, empty when running on defaults
	ConfigFile string
}

// TickInterval is the wall time between two simulation steps
func (s *Settings) TickInterval() time.Duration {
	return time.Second / time.Duration(s.TickRate)
}

// LogLevel parses Log.Level, Validate has already rejected unknown names
func (s *Settings) LogLevel() zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(s.Log.Level))
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}

// Validate checks every section, board and session rules included
func (s *Settings) Validate() error {
	if err := s.Board.Validate(); err != nil {
		return fmt.Errorf("%w: board: %w", ErrInvalidSettings, err)
	}
	if err := s.Session.Validate(); err != nil {
		return fmt.Errorf("%w: batch: %w", ErrInvalidSettings, err)
	}
	if s.TickRate <= 0 {
		return fmt.Errorf("%w: tick rate %d must be positive", ErrInvalidSettings, s.TickRate)
	}
	if s.Audio.Volume < 0 || s.Audio.Volume > 1 {
		return fmt.Errorf("%w: audio volume %v outside [0,1]", ErrInvalidSettings, s.Audio.Volume)
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(s.Log.Level)); err != nil {
		return fmt.Errorf("%w: log level %q", ErrInvalidSettings, s.Log.Level)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("board.pairs", parameter.DefaultBouncerPairs)
	v.SetDefault("board.maxParticles", parameter.DefaultMaxParticles)
	v.SetDefault("board.cellHeight", parameter.DefaultCellHeight)
	v.SetDefault("board.cellWidth", parameter.DefaultCellWidth)
	v.SetDefault("board.seed", 0)

	v.SetDefault("batch.size", parameter.ParticleBatchSize)
	v.SetDefault("batch.spawnInterval", parameter.ParticleSpawnInterval)
	v.SetDefault("batch.initialDelay", parameter.InitialSpawnDelay)
	v.SetDefault("batch.cooldown", parameter.BatchCooldown)

	v.SetDefault("tick.rate", parameter.TickRate)

	v.SetDefault("audio.enabled", true)
	v.SetDefault("audio.volume", parameter.DefaultAudioVolume)

	v.SetDefault("log.enabled", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.dir", "logs")
}

// DefaultSearchPaths are the working directory and $HOME/.config/galton
func DefaultSearchPaths() []string {
	paths := []string{"."}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", FileName))
	}
	return paths
}

// Load resolves settings from defaults, an optional galton.{toml,json,yaml} file found in searchPaths,
// GALTON_* environment variables and overrides, in increasing priority
// A missing file is not an error; a malformed one is
func Load(overrides map[string]any, searchPaths ...string) (*Settings, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName(FileName)
	for _, p := range searchPaths {
		v.AddConfigPath(p)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if len(searchPaths) > 0 {
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	for key, val := range overrides {
		v.Set(key, val)
	}

	s := &Settings{
		Board: galton.Config{
			BouncerPairs: v.GetInt("board.pairs"),
			MaxParticles: v.GetInt("board.maxParticles"),
			CellHeight:   v.GetInt("board.cellHeight"),
			CellWidth:    v.GetInt("board.cellWidth"),
		},
		Seed: v.GetUint64("board.seed"),
		Session: engine.SessionConfig{
			BatchSize:     v.GetInt("batch.size"),
			SpawnInterval: v.GetDuration("batch.spawnInterval"),
			InitialDelay:  v.GetDuration("batch.initialDelay"),
			Cooldown:      v.GetDuration("batch.cooldown"),
		},
		TickRate: v.GetInt("tick.rate"),
		Audio: AudioSettings{
			Enabled: v.GetBool("audio.enabled"),
			Volume:  v.GetFloat64("audio.volume"),
		},
		Log: LogSettings{
			Enabled: v.GetBool("log.enabled"),
			Level:   v.GetString("log.level"),
			Dir:     v.GetString("log.dir"),
		},
		ConfigFile: v.ConfigFileUsed(),
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}
