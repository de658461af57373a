package app

import (
	"errors"
	"testing"

	"github.com/decker502/liquidsim/pkg/config"
	"github.com/decker502/liquidsim/pkg/scenes"
)

func testScenarios(t *testing.T) *config.ScenarioFile {
	t.Helper()
	file, err := config.ParseScenarioFile([]byte(`
scenarios:
  - name: small
    columns: 4
    rows: 3
    regions:
      - { kind: water, col: 1, row: 0, fill: 1 }
  - name: wide
    columns: 20
    rows: 5
`))
	if err != nil {
		t.Fatal(err)
	}
	return file
}

func newTestApp(t *testing.T, scenario string) *App {
	t.Helper()
	a, err := NewApp(Config{
		Verbose:        true,
		Scenarios:      testScenarios(t),
		Scenario:       scenario,
		DisableStorage: true,
	})
	if err != nil {
		t.Fatalf("NewApp() error: %v", err)
	}
	return a
}

func TestNewAppBlank(t *testing.T) {
	a := newTestApp(t, "")
	if w, h := a.Layout(1920, 1080); w != 1000 || h != 700 {
		t.Errorf("Layout() = %dx%d, want 1000x700", w, h)
	}
	if _, ok := a.GetSceneManager().GetCurrentScene().(*scenes.SimulationScene); !ok {
		t.Error("current scene should be a SimulationScene")
	}
	if a.Settings().Persistent() {
		t.Error("settings should not persist with DisableStorage")
	}
}

func TestNewAppScenario(t *testing.T) {
	a := newTestApp(t, "small")
	if w, h := a.Layout(1000, 700); w != 40 || h != 30 {
		t.Errorf("Layout() = %dx%d, want 40x30", w, h)
	}
	if got := a.GetSceneManager().CurrentScenario(); got != "small" {
		t.Errorf("CurrentScenario() = %q, want small", got)
	}
}

func TestNewAppUnknownScenario(t *testing.T) {
	_, err := NewApp(Config{
		Verbose:        true,
		Scenarios:      testScenarios(t),
		Scenario:       "missing",
		DisableStorage: true,
	})
	if !errors.Is(err, ErrUnknownScenario) {
		t.Errorf("NewApp() error = %v, want ErrUnknownScenario", err)
	}

	_, err = NewApp(Config{Verbose: true, Scenario: "small", DisableStorage: true})
	if !errors.Is(err, ErrUnknownScenario) {
		t.Errorf("NewApp() without scenario file error = %v, want ErrUnknownScenario", err)
	}
}

func TestLoadScenarioIndex(t *testing.T) {
	a := newTestApp(t, "")

	a.loadScenarioIndex(2)
	if got := a.GetSceneManager().CurrentScenario(); got != "wide" {
		t.Errorf("after key 2: scenario = %q, want wide", got)
	}
	if w, h := a.Layout(0, 0); w != 200 || h != 50 {
		t.Errorf("Layout() = %dx%d, want 200x50", w, h)
	}

	// 超出预设数量的数字键被忽略
	a.loadScenarioIndex(9)
	if got := a.GetSceneManager().CurrentScenario(); got != "wide" {
		t.Errorf("after key 9: scenario = %q, want wide", got)
	}

	a.loadScenarioIndex(0)
	if got := a.GetSceneManager().CurrentScenario(); got != "" {
		t.Errorf("after key 0: scenario = %q, want blank", got)
	}

	a.SaveOnExit()
}
