package rulesconfig

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/worldcupsim/gostandings/core"
)

func writeConfig(t *testing.T, document string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rules.toml")
	if err := os.WriteFile(path, []byte(document), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func drawnGameGroup(t *testing.T) *core.Group {
	t.Helper()
	game, err := core.NewPlayedGame(0, 0, 1, core.Score{}, core.FairPlayScore{}, time.Time{})
	if err != nil {
		t.Fatal(err)
	}
	group, err := core.NewGroup(nil, []*core.PlayedGame{game})
	if err != nil {
		t.Fatal(err)
	}
	return group
}

func TestLoadEuroPreset(t *testing.T) {
	path := writeConfig(t, `
preset = "euro2020"

[[ranking]]
team = 0
rank = 2

[[ranking]]
team = 1
rank = 1
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	group := drawnGameGroup(t)
	rules, err := cfg.Rules([]*core.Group{group})
	if err != nil {
		t.Fatal(err)
	}

	// Everything is tied; the configured ranking decides
	if !reflect.DeepEqual(rules.Order(group), core.GroupOrder{1, 0}) {
		t.Fatal("the configured ranking tiebreaker was not applied")
	}
}

func TestLoadFifaPresetWithSeed(t *testing.T) {
	path := writeConfig(t, `
preset = "fifa2018"
draw_seed = 42
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	group := drawnGameGroup(t)
	rules, err := cfg.Rules([]*core.Group{group})
	if err != nil {
		t.Fatal(err)
	}

	order := rules.Order(group)
	if len(order) != 2 || order[0] == order[1] {
		t.Fatal("the drawn lot did not produce a strict order")
	}
}

func TestManualOutcomesReplaceTiebreaker(t *testing.T) {
	path := writeConfig(t, `
preset = "fifa2018"

[[manual]]
winner = 1
loser = 0
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	group := drawnGameGroup(t)
	rules, err := cfg.Rules([]*core.Group{group})
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(rules.Order(group), core.GroupOrder{1, 0}) {
		t.Fatal("the manual outcome was not replayed")
	}
}

func TestLoadUnknownPreset(t *testing.T) {
	path := writeConfig(t, `preset = "fifa1994"`)

	if _, err := Load(path); !errors.Is(err, ErrUnknownPreset) {
		t.Fatal("an unknown preset name did not fail the load")
	}
}

func TestLoadEuroWithoutRanking(t *testing.T) {
	path := writeConfig(t, `preset = "euro2020"`)

	if _, err := Load(path); !errors.Is(err, ErrNoRanking) {
		t.Fatal("the euro preset without a ranking table did not fail the load")
	}
}

func TestRulesUnrankedTeam(t *testing.T) {
	path := writeConfig(t, `
preset = "euro2020"

[[ranking]]
team = 0
rank = 1
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	group := drawnGameGroup(t)
	if _, err := cfg.Rules([]*core.Group{group}); !errors.Is(err, core.ErrUnrankedTeam) {
		t.Fatal("a group team missing from the ranking table did not fail the build")
	}
}
