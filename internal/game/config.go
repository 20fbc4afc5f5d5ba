package game

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/samdwyer/monbound/internal/battle"
	"github.com/samdwyer/monbound/internal/camera"
	"github.com/samdwyer/monbound/internal/encounter"
	"github.com/samdwyer/monbound/internal/gamedata"
	"github.com/samdwyer/monbound/internal/movement"
	"github.com/samdwyer/monbound/internal/trainer"
)

// Config holds game configuration options.
type Config struct {
	// Seed labels the session's random source. The same seed replays the
	// same encounters, damage rolls and trainer facings. Empty means a
	// clock-based seed.
	Seed string
	// MapID selects a map from maps.json.
	MapID string

	ViewportWidth   int
	ViewportHeight  int
	MoveSpeed       float64 // tiles per second
	CameraLerp      float64
	EncounterChance float64
	FoeDelay        time.Duration
	SightRange      int
	RotateMin       time.Duration
	RotateMax       time.Duration
	MaxFrameDelta   time.Duration
	FrameRate       int

	TraceSampleRatio float64
}

// DefaultConfig returns the standard tuning.
func DefaultConfig() Config {
	return Config{
		MapID:            gamedata.DefaultMapID,
		ViewportWidth:    camera.DefaultViewportWidth,
		ViewportHeight:   camera.DefaultViewportHeight,
		MoveSpeed:        movement.DefaultSpeed,
		CameraLerp:       camera.DefaultLerp,
		EncounterChance:  encounter.DefaultChance,
		FoeDelay:         battle.DefaultFoeDelay,
		SightRange:       trainer.DefaultSightRange,
		RotateMin:        trainer.DefaultRotateMin,
		RotateMax:        trainer.DefaultRotateMax,
		MaxFrameDelta:    100 * time.Millisecond,
		FrameRate:        60,
		TraceSampleRatio: 1,
	}
}

// EnvFileKey names a .env file that replaces the process environment as the
// configuration source.
const EnvFileKey = "MONBOUND_ENV_FILE"

// LoadConfig reads the file named by MONBOUND_ENV_FILE when it is set, and
// the process environment otherwise.
func LoadConfig() (Config, error) {
	if path := strings.TrimSpace(os.Getenv(EnvFileKey)); path != "" {
		return ConfigFromFile(path)
	}
	return ConfigFromEnv()
}

// ConfigFromFile overlays the MONBOUND_* keys of a .env file on the defaults.
func ConfigFromFile(path string) (Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err := ConfigFromDotenv(string(content))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ConfigFromEnv overlays MONBOUND_* process environment variables on the defaults.
func ConfigFromEnv() (Config, error) {
	return configFromLookup(os.LookupEnv)
}

// ConfigFromDotenv parses .env-formatted text and overlays it on the defaults.
func ConfigFromDotenv(text string) (Config, error) {
	env, err := godotenv.Unmarshal(text)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse env text: %w", err)
	}
	return configFromLookup(func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	})
}

func configFromLookup(lookup func(string) (string, bool)) (Config, error) {
	cfg := DefaultConfig()
	p := envParser{lookup: lookup}

	p.str("MONBOUND_SEED", &cfg.Seed)
	p.str("MONBOUND_MAP", &cfg.MapID)
	p.int("MONBOUND_VIEWPORT_WIDTH", &cfg.ViewportWidth)
	p.int("MONBOUND_VIEWPORT_HEIGHT", &cfg.ViewportHeight)
	p.float("MONBOUND_MOVE_SPEED", &cfg.MoveSpeed)
	p.float("MONBOUND_CAMERA_LERP", &cfg.CameraLerp)
	p.float("MONBOUND_ENCOUNTER_CHANCE", &cfg.EncounterChance)
	p.duration("MONBOUND_FOE_DELAY", &cfg.FoeDelay)
	p.int("MONBOUND_SIGHT_RANGE", &cfg.SightRange)
	p.duration("MONBOUND_ROTATE_MIN", &cfg.RotateMin)
	p.duration("MONBOUND_ROTATE_MAX", &cfg.RotateMax)
	p.duration("MONBOUND_MAX_FRAME_DELTA", &cfg.MaxFrameDelta)
	p.int("MONBOUND_FPS", &cfg.FrameRate)
	p.float("MONBOUND_TRACE_SAMPLE", &cfg.TraceSampleRatio)

	if p.err != nil {
		return Config{}, p.err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the simulation cannot run with.
func (c Config) Validate() error {
	switch {
	case c.ViewportWidth <= 0 || c.ViewportHeight <= 0:
		return fmt.Errorf("viewport must be positive, got %dx%d", c.ViewportWidth, c.ViewportHeight)
	case c.MoveSpeed <= 0:
		return fmt.Errorf("move speed must be positive, got %v", c.MoveSpeed)
	case c.CameraLerp <= 0 || c.CameraLerp > 1:
		return fmt.Errorf("camera lerp must be in (0,1], got %v", c.CameraLerp)
	case c.EncounterChance < 0 || c.EncounterChance > 1:
		return fmt.Errorf("encounter chance must be in [0,1], got %v", c.EncounterChance)
	case c.RotateMax <= c.RotateMin:
		return fmt.Errorf("rotate max %v must exceed rotate min %v", c.RotateMax, c.RotateMin)
	case c.MaxFrameDelta <= 0:
		return fmt.Errorf("max frame delta must be positive, got %v", c.MaxFrameDelta)
	case c.MoveSpeed*c.MaxFrameDelta.Seconds() >= 1:
		// Step only checks the destination tile, so a full tile per frame
		// could pass through a wall.
		return fmt.Errorf("move speed %v over max frame delta %v covers a whole tile", c.MoveSpeed, c.MaxFrameDelta)
	case c.FrameRate <= 0:
		return fmt.Errorf("frame rate must be positive, got %d", c.FrameRate)
	}
	return nil
}

// FrameInterval returns the time between rendered frames.
func (c Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.FrameRate)
}

// envParser records the first parse error and skips the rest.
type envParser struct {
	lookup func(string) (string, bool)
	err    error
}

func (p *envParser) get(key string) (string, bool) {
	if p.err != nil {
		return "", false
	}
	v, ok := p.lookup(key)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	return v, v != ""
}

func (p *envParser) str(key string, dst *string) {
	if v, ok := p.get(key); ok {
		*dst = v
	}
}

func (p *envParser) int(key string, dst *int) {
	v, ok := p.get(key)
	if !ok {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		p.err = fmt.Errorf("invalid %s: %w", key, err)
		return
	}
	*dst = n
}

func (p *envParser) float(key string, dst *float64) {
	v, ok := p.get(key)
	if !ok {
		return
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		p.err = fmt.Errorf("invalid %s: %w", key, err)
		return
	}
	*dst = f
}

func (p *envParser) duration(key string, dst *time.Duration) {
	v, ok := p.get(key)
	if !ok {
		return
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		p.err = fmt.Errorf("invalid %s: %w", key, err)
		return
	}
	*dst = d
}
