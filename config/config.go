// Package config assembles game settings from defaults, .env files and the environment
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/lixenwraith/math-snake/audio"
	"github.com/lixenwraith/math-snake/engine"
)

// Environment keys
const (
	envPrefix = "MATH_SNAKE_"

	KeyGridWidth    = envPrefix + "GRID_WIDTH"
	KeyGridHeight   = envPrefix + "GRID_HEIGHT"
	KeyMaxLength    = envPrefix + "MAX_LENGTH"
	KeyInitialLives = envPrefix + "INITIAL_LIVES"
	KeySpeed        = envPrefix + "SPEED"
	KeySeed         = envPrefix + "SEED"
	KeyAudioEnabled = envPrefix + "AUDIO_ENABLED"
	KeyMasterVolume = envPrefix + "MASTER_VOLUME" // Percent, 0-100
	KeySampleRate   = envPrefix + "SAMPLE_RATE"
)

// DefaultEnvFile is read when Load is given no files
const DefaultEnvFile = ".env"

var ErrInvalidConfig = errors.New("invalid config")

// Config is the full runtime configuration
type Config struct {
	Engine engine.Config
	Audio  *audio.AudioConfig
	Seed   uint64 // Zero selects a time-based seed
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Engine: engine.DefaultConfig(),
		Audio:  audio.DefaultAudioConfig(),
	}
}

// Load layers defaults, then files (missing files are skipped), then the process
// environment, and validates the result
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{DefaultEnvFile}
	}

	fileValues := make(map[string]string)
	for _, path := range files {
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			continue
		}
		values, err := godotenv.Read(path)
		if err != nil {
			return Config{}, fmt.Errorf("read %s: %w", path, err)
		}
		for k, v := range values {
			fileValues[k] = v
		}
	}

	src := source{file: fileValues}
	cfg := Default()

	ints := []struct {
		key string
		dst *int
	}{
		{KeyGridWidth, &cfg.Engine.Grid.Width},
		{KeyGridHeight, &cfg.Engine.Grid.Height},
		{KeyMaxLength, &cfg.Engine.MaxLength},
		{KeyInitialLives, &cfg.Engine.InitialLives},
		{KeySpeed, &cfg.Engine.DefaultSpeed},
		{KeySampleRate, &cfg.Audio.SampleRate},
	}
	for _, f := range ints {
		if err := src.int(f.key, f.dst); err != nil {
			return Config{}, err
		}
	}

	if v, ok := src.lookup(KeySeed); ok {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, KeySeed, v, err)
		}
		cfg.Seed = seed
	}

	if v, ok := src.lookup(KeyAudioEnabled); ok {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, KeyAudioEnabled, v, err)
		}
		cfg.Audio.Enabled = enabled
	}

	var volume int
	if _, ok := src.lookup(KeyMasterVolume); ok {
		if err := src.int(KeyMasterVolume, &volume); err != nil {
			return Config{}, err
		}
		if volume < 0 || volume > 100 {
			return Config{}, fmt.Errorf("%w: %s=%d not in [0,100]", ErrInvalidConfig, KeyMasterVolume, volume)
		}
		cfg.Audio.MasterVolume = float64(volume) / 100.0
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the engine rules and audio settings
func (c Config) Validate() error {
	if err := c.Engine.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.Audio == nil {
		return fmt.Errorf("%w: missing audio settings", ErrInvalidConfig)
	}
	if c.Audio.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate %d", ErrInvalidConfig, c.Audio.SampleRate)
	}
	return nil
}

// source resolves a key from the environment first, then from loaded files
type source struct {
	file map[string]string
}

func (s source) lookup(key string) (string, bool) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v, true
	}
	v, ok := s.file[key]
	return v, ok && v != ""
}

func (s source) int(key string, dst *int) error {
	v, ok := s.lookup(key)
	if !ok {
		return nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, key, v, err)
	}
	*dst = i
	return nil
}
