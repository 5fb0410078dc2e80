package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/starlight-duel/starlight/internal/input"
	"github.com/starlight-duel/starlight/internal/ship"
)

var ErrInvalid = errors.New("invalid config")

type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Audio   AudioConfig   `yaml:"audio"`
	Ship    ShipConfig    `yaml:"ship"`
	Match   MatchConfig   `yaml:"match"`
	Menu    MenuConfig    `yaml:"menu"`
	Inputs  InputsConfig  `yaml:"inputs"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	SampleRate int     `yaml:"sample_rate"`
	EngineTone float64 `yaml:"engine_tone"` // Hz at pitch 1
	Volume     float64 `yaml:"volume"`      // beep volume, base 2; 0 is unchanged
}

type ShipConfig struct {
	BoostCost    float64 `yaml:"boost_cost"`
	BrakeCost    float64 `yaml:"brake_cost"`
	DefaultPitch float64 `yaml:"default_pitch"`
	BoostPitch   float64 `yaml:"boost_pitch"`
	BrakePitch   float64 `yaml:"brake_pitch"`
	PitchRate    float64 `yaml:"pitch_rate"`
	BoostSpeed   float64 `yaml:"boost_speed"`
	BrakeSpeed   float64 `yaml:"brake_speed"`
	RailZones    bool    `yaml:"rail_zones"`
	StartMode    string  `yaml:"start_mode"`
}

type MatchConfig struct {
	P1Frame             string  `yaml:"p1_frame"`
	P2Frame             string  `yaml:"p2_frame"`
	SpawnGraceTicks     int     `yaml:"spawn_grace_ticks"`
	HitBand             float64 `yaml:"hit_band"`
	ShieldRechargeTicks int     `yaml:"shield_recharge_ticks"` // 0 never recharges
	EnergyDrain         bool    `yaml:"energy_drain"`
	EnergyRegen         float64 `yaml:"energy_regen"` // per tick while idle
}

type MenuConfig struct {
	MoveDelay        float64 `yaml:"move_delay"` // seconds
	HighlightPadding int     `yaml:"highlight_padding"`
}

type InputsConfig struct {
	P1 input.Map `yaml:"p1"`
	P2 input.Map `yaml:"p2"`
}

// Default returns the stock settings. Load starts from these, so a file
// only needs the keys it changes.
func Default() *Config {
	p2 := input.DefaultMap()
	p2.Keyboard = input.AltKeyboard()
	return &Config{
		Logging: LoggingConfig{Level: "info", Format: "console"},
		Audio:   AudioConfig{Enabled: true, SampleRate: 44100, EngineTone: 110, Volume: -1},
		Ship: ShipConfig{
			BoostCost:    2,
			BrakeCost:    1.5,
			DefaultPitch: 1,
			BoostPitch:   1.5,
			BrakePitch:   0.5,
			PitchRate:    0.8,
			BoostSpeed:   2,
			BrakeSpeed:   0.5,
			StartMode:    "rail",
		},
		Match: MatchConfig{
			P1Frame:         "interceptor",
			P2Frame:         "bulwark",
			SpawnGraceTicks: 120,
			HitBand:         1.5,
			EnergyRegen:     0.02,
		},
		Menu:   MenuConfig{MoveDelay: 0.1, HighlightPadding: 1},
		Inputs: InputsConfig{P1: input.DefaultMap(), P2: p2},
	}
}

// Load reads path over the defaults and validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks ranges and binding names. Ships read these numbers at
// spawn, so anything wrong has to be caught here.
func (c *Config) Validate() error {
	s := c.Ship
	if s.BoostCost < 0 || s.BrakeCost < 0 {
		return fmt.Errorf("%w: ship costs must not be negative", ErrInvalid)
	}
	for name, p := range map[string]float64{
		"default_pitch": s.DefaultPitch,
		"boost_pitch":   s.BoostPitch,
		"brake_pitch":   s.BrakePitch,
	} {
		if p <= 0 || p > 3 {
			return fmt.Errorf("%w: ship.%s %v outside (0, 3]", ErrInvalid, name, p)
		}
	}
	if err := c.ShipTuning().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if _, ok := ship.ParseMovementMode(s.StartMode); !ok {
		return fmt.Errorf("%w: ship.start_mode %q", ErrInvalid, s.StartMode)
	}

	m := c.Match
	if m.SpawnGraceTicks < 0 || m.ShieldRechargeTicks < 0 {
		return fmt.Errorf("%w: match tick counts must not be negative", ErrInvalid)
	}
	if m.HitBand <= 0 {
		return fmt.Errorf("%w: match.hit_band %v", ErrInvalid, m.HitBand)
	}
	if m.EnergyRegen < 0 {
		return fmt.Errorf("%w: match.energy_regen %v", ErrInvalid, m.EnergyRegen)
	}
	if m.P1Frame == "" || m.P2Frame == "" {
		return fmt.Errorf("%w: match frames must be set", ErrInvalid)
	}

	if c.Menu.MoveDelay < 0 || c.Menu.HighlightPadding < 0 {
		return fmt.Errorf("%w: menu values must not be negative", ErrInvalid)
	}
	if c.Audio.Enabled && (c.Audio.SampleRate <= 0 || c.Audio.EngineTone <= 0) {
		return fmt.Errorf("%w: audio needs a sample rate and engine tone", ErrInvalid)
	}

	if err := c.Inputs.P1.Validate(); err != nil {
		return fmt.Errorf("%w: inputs.p1: %w", ErrInvalid, err)
	}
	if err := c.Inputs.P2.Validate(); err != nil {
		return fmt.Errorf("%w: inputs.p2: %w", ErrInvalid, err)
	}
	return nil
}

// ShipTuning converts the ship section for ship.Config.
func (c *Config) ShipTuning() ship.Tuning {
	return ship.Tuning{
		BoostPitch: c.Ship.BoostPitch,
		BrakePitch: c.Ship.BrakePitch,
		PitchRate:  c.Ship.PitchRate,
		BoostSpeed: c.Ship.BoostSpeed,
		BrakeSpeed: c.Ship.BrakeSpeed,
		RailZones:  c.Ship.RailZones,
	}
}

// EnergyCosts is the cost table every ship's pool is built with.
func (c *Config) EnergyCosts() map[ship.EnergyUse]float64 {
	return map[ship.EnergyUse]float64{
		ship.UseBoost: c.Ship.BoostCost,
		ship.UseBrake: c.Ship.BrakeCost,
	}
}

// StartMode returns the parsed ship.start_mode.
func (c *Config) StartMode() ship.MovementMode {
	m, _ := ship.ParseMovementMode(c.Ship.StartMode)
	return m
}
