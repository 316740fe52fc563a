// Package rulesconfig selects a named rule preset and its tiebreaker
// parameters from a TOML document.
//
// The ordering core defines no file format; this package is the thin
// configuration surface for tools that have to pick a regulation at
// runtime.
package rulesconfig

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/BurntSushi/toml"

	"github.com/worldcupsim/gostandings/core"
	"github.com/worldcupsim/gostandings/fairplay"
)

const (
	PresetFifa2018     = "fifa2018"
	PresetUefaEuro2020 = "euro2020"
)

var (
	ErrUnknownPreset = errors.New("unknown rules preset")
	ErrNoRanking     = errors.New("the preset needs a ranking table")
)

// Config is the root configuration structure, populated from a TOML
// document.
type Config struct {
	// Name of the rule preset, one of the Preset constants
	Preset string `toml:"preset"`

	// Seed for the drawing of lots; only read by presets that
	// break final ties randomly
	DrawSeed int64 `toml:"draw_seed"`

	// External ranking table; required by presets that break
	// final ties by ranking
	Ranking []RankingEntry `toml:"ranking"`

	// Externally decided pairwise outcomes. When present they
	// replace the preset's own tiebreaker so that historical
	// standings can be reproduced exactly.
	Manual []ManualOutcome `toml:"manual"`
}

// A RankingEntry is one row of the external ranking table.
type RankingEntry struct {
	Team core.TeamId   `toml:"team"`
	Rank core.TeamRank `toml:"rank"`
}

// A ManualOutcome records that one team was placed ahead of another
// by a decision outside the engine.
type ManualOutcome struct {
	Winner core.TeamId `toml:"winner"`
	Loser  core.TeamId `toml:"loser"`
}

// Load reads and validates a TOML configuration file.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, err
	}

	switch cfg.Preset {
	case PresetFifa2018:
	case PresetUefaEuro2020:
		if len(cfg.Ranking) == 0 && len(cfg.Manual) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrNoRanking, cfg.Preset)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPreset, cfg.Preset)
	}

	return &cfg, nil
}

// Rules builds the configured rule set for the given groups.
//
// The groups are needed up front so a ranking tiebreaker can verify
// that it knows every team before any ordering runs.
func (c *Config) Rules(groups []*core.Group) (*core.Rules, error) {
	switch c.Preset {
	case PresetFifa2018:
		tiebreaker, err := c.tiebreaker(groups, c.randomTiebreaker())
		if err != nil {
			return nil, err
		}
		return core.NewRules(core.Fifa2018SubRules(fairplay.Fifa2018()), tiebreaker), nil

	case PresetUefaEuro2020:
		tiebreaker, err := c.tiebreaker(groups, nil)
		if err != nil {
			return nil, err
		}
		return core.NewRules(core.UefaEuro2020SubRules(fairplay.UefaEuro2020()), tiebreaker), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownPreset, c.Preset)
}

// tiebreaker picks the configured final tiebreaker: manual outcomes
// beat everything, then the preset default, then the ranking table.
func (c *Config) tiebreaker(groups []*core.Group, preset core.Tiebreaker) (core.Tiebreaker, error) {
	if len(c.Manual) > 0 {
		return c.manualTiebreaker(), nil
	}
	if preset != nil {
		return preset, nil
	}

	ranks := make(map[core.TeamId]core.TeamRank, len(c.Ranking))
	for _, entry := range c.Ranking {
		ranks[entry.Team] = entry.Rank
	}

	return core.NewRankingTiebreaker(groups, ranks)
}

func (c *Config) randomTiebreaker() *core.RandomTiebreaker {
	rng := rand.New(rand.NewSource(c.DrawSeed))
	return core.NewRandomTiebreaker(rng)
}

func (c *Config) manualTiebreaker() core.ManualTiebreaker {
	manual := make(core.ManualTiebreaker, len(c.Manual))
	for _, outcome := range c.Manual {
		manual[[2]core.TeamId{outcome.Winner, outcome.Loser}] = -1
	}
	return manual
}
