// Package config loads ballfall settings from an optional .env file, BALLFALL_*
// environment variables and command-line flags, in increasing precedence.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/plus3/ballfall/sim"
)

const envPrefix = "BALLFALL_"

// ErrInvalidConfig is wrapped by every value that fails to parse or validate.
var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Width   int
	Height  int
	Title   string
	Debug   bool
	Sound   bool
	Seed    uint64 // 0 picks a random seed
	EnvFile string
	Params  sim.Params
}

func Default() *Config {
	return &Config{
		Width:   1280,
		Height:  720,
		Title:   "ballfall",
		EnvFile: ".env",
		Params:  sim.DefaultParams(),
	}
}

// Load builds a Config from the process environment and args (without the
// program name).
func Load(args []string) (*Config, error) {
	envFile := ".env"
	if v, ok := os.LookupEnv(envPrefix + "ENV_FILE"); ok {
		envFile = v
	}
	return load(args, envFile, os.LookupEnv)
}

func load(args []string, envFile string, lookup func(string) (string, bool)) (*Config, error) {
	cfg := Default()
	cfg.EnvFile = envFile

	fileEnv, err := readEnvFile(envFile)
	if err != nil {
		return nil, err
	}
	get := func(key string) (string, bool) {
		if v, ok := lookup(envPrefix + key); ok {
			return v, true
		}
		v, ok := fileEnv[envPrefix+key]
		return v, ok
	}
	if err := cfg.applyEnv(get); err != nil {
		return nil, err
	}

	flags := cfg.flagSet()
	if err := flags.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func readEnvFile(path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}
	values, err := godotenv.Read(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return values, nil
}

func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	if err := c.Params.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

func (c *Config) applyEnv(get func(string) (string, bool)) error {
	ints := map[string]*int{
		"WIDTH":      &c.Width,
		"HEIGHT":     &c.Height,
		"MAX_BODIES": &c.Params.MaxBodies,
	}
	for key, dst := range ints {
		if v, ok := get(key); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%w: %s%s=%q: %w", ErrInvalidConfig, envPrefix, key, v, err)
			}
			*dst = n
		}
	}

	floats := map[string]*float64{
		"GRAVITY":         &c.Params.Gravity,
		"DAMPING":         &c.Params.Damping,
		"RESTITUTION":     &c.Params.Restitution,
		"FLOOR_HEIGHT":    &c.Params.FloorHeight,
		"RADIUS":          &c.Params.Radius,
		"SPAWN_VY":        &c.Params.SpawnVY,
		"SPAWN_VX_SPREAD": &c.Params.SpawnVXSpread,
		"MAX_DELTA":       &c.Params.MaxDelta,
	}
	for key, dst := range floats {
		if v, ok := get(key); ok {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return fmt.Errorf("%w: %s%s=%q: %w", ErrInvalidConfig, envPrefix, key, v, err)
			}
			*dst = f
		}
	}

	bools := map[string]*bool{
		"DEBUG": &c.Debug,
		"SOUND": &c.Sound,
	}
	for key, dst := range bools {
		if v, ok := get(key); ok {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("%w: %s%s=%q: %w", ErrInvalidConfig, envPrefix, key, v, err)
			}
			*dst = b
		}
	}

	if v, ok := get("SEED"); ok {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %sSEED=%q: %w", ErrInvalidConfig, envPrefix, v, err)
		}
		c.Seed = seed
	}
	if v, ok := get("TITLE"); ok {
		c.Title = v
	}
	return nil
}

// flagSet binds every field to a flag whose default is the value already
// loaded from the environment.
func (c *Config) flagSet() *flag.FlagSet {
	set := flag.NewFlagSet("ballfall", flag.ContinueOnError)
	set.IntVar(&c.Width, "width", c.Width, "window width in pixels")
	set.IntVar(&c.Height, "height", c.Height, "window height in pixels")
	set.StringVar(&c.Title, "title", c.Title, "window title")
	set.BoolVar(&c.Debug, "debug", c.Debug, "show the debug overlay at startup")
	set.BoolVar(&c.Sound, "sound", c.Sound, "play a click on every bounce")
	set.Uint64Var(&c.Seed, "seed", c.Seed, "random seed, 0 for a random one")

	p := &c.Params
	set.Float64Var(&p.Gravity, "gravity", p.Gravity, "gravity in px/s²")
	set.Float64Var(&p.Damping, "damping", p.Damping, "wall and floor bounce damping")
	set.Float64Var(&p.Restitution, "restitution", p.Restitution, "body to body restitution")
	set.Float64Var(&p.FloorHeight, "floor", p.FloorHeight, "floor platform height in pixels")
	set.IntVar(&p.MaxBodies, "max", p.MaxBodies, "maximum live bodies")
	set.Float64Var(&p.Radius, "radius", p.Radius, "radius of spawned bodies")
	set.Float64Var(&p.SpawnVY, "spawn-vy", p.SpawnVY, "initial downward velocity")
	set.Float64Var(&p.SpawnVXSpread, "spawn-vx", p.SpawnVXSpread, "spread of the initial horizontal velocity")
	set.Float64Var(&p.MaxDelta, "max-delta", p.MaxDelta, "largest frame delta in seconds, 0 disables")
	return set
}
