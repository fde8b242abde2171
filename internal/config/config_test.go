package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	gcore "github.com/vovakirdan/gravitate/internal/games/gravitate/core"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	return path
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg GravitateConfig
	if err := yaml.Unmarshal(defaultGravitateYAML, &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if cfg != DefaultGravitateConfig() {
		t.Errorf("embedded = %+v, hardcoded = %+v", cfg, DefaultGravitateConfig())
	}
}

func TestLoadFallsBackToDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadGravitate("")
	if err != nil {
		t.Fatalf("LoadGravitate failed: %v", err)
	}
	if cfg != DefaultGravitateConfig() {
		t.Errorf("got %+v, want defaults", cfg)
	}
}

func TestLoadUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := filepath.Join(home, ".gravitate", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, dir, "gravitate.yaml", "board:\n  columns: 15\n")

	cfg, err := LoadGravitate("")
	if err != nil {
		t.Fatalf("LoadGravitate failed: %v", err)
	}
	if cfg.Board.Columns != 15 || cfg.Board.Rows != 9 {
		t.Errorf("got board %+v, want 15x9", cfg.Board)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "custom.yaml", `
board:
  rows: 12
  max_colors: 6
scoring:
  rule: bonus
`)

	cfg, err := LoadGravitate(path)
	if err != nil {
		t.Fatalf("LoadGravitate failed: %v", err)
	}
	if cfg.Board.Rows != 12 || cfg.Board.MaxColors != 6 || cfg.Scoring.Rule != RuleBonus {
		t.Errorf("unexpected config %+v", cfg)
	}
	// Missing fields keep defaults
	if cfg.Board.Columns != 9 || cfg.Board.DelayMs != 250 {
		t.Errorf("defaults lost: %+v", cfg.Board)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadGravitate(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := writeFile(t, dir, "bad.yaml", "board: [not, a, map")
	if _, err := LoadGravitate(bad); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name  string
		in    GravitateConfig
		want  GravitateConfig
		notes int
	}{
		{
			name:  "defaults untouched",
			in:    DefaultGravitateConfig(),
			want:  DefaultGravitateConfig(),
			notes: 0,
		},
		{
			name:  "everything out of range",
			in:    GravitateConfig{Board: BoardConfig{Columns: 2, Rows: 99, MaxColors: 40, DelayMs: -5}, Scoring: ScoringConfig{Rule: "golf"}},
			want:  GravitateConfig{Board: BoardConfig{Columns: SizeMin, Rows: SizeMax, MaxColors: ColorsMax, DelayMs: DelayMsMin}, Scoring: ScoringConfig{Rule: RuleClassic}},
			notes: 5,
		},
		{
			name:  "empty rule defaults silently",
			in:    GravitateConfig{Board: BoardConfig{Columns: 9, Rows: 9, MaxColors: 2, DelayMs: 2000}},
			want:  GravitateConfig{Board: BoardConfig{Columns: 9, Rows: 9, MaxColors: ColorsMin, DelayMs: DelayMsMax}, Scoring: ScoringConfig{Rule: RuleClassic}},
			notes: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.in
			notes := cfg.Clamp()
			if cfg != tt.want {
				t.Errorf("Clamp() = %+v, want %+v", cfg, tt.want)
			}
			if len(notes) != tt.notes {
				t.Errorf("got %d notes %v, want %d", len(notes), notes, tt.notes)
			}
		})
	}
}

func TestLimitsMatchEngine(t *testing.T) {
	if ColorsMin != gcore.MinColors || ColorsMax != gcore.MaxColors {
		t.Errorf("color limits [%d, %d] differ from engine [%d, %d]", ColorsMin, ColorsMax, gcore.MinColors, gcore.MaxColors)
	}
}

func TestApplyEnv(t *testing.T) {
	cfg := DefaultGravitateConfig()
	err := ApplyEnv(&cfg, map[string]string{
		"GRAVITATE_COLUMNS":  "11",
		"GRAVITATE_ROWS":     " 7 ",
		"GRAVITATE_DELAY_MS": "",
		"GRAVITATE_SCORING":  "BONUS",
		"OTHER":              "ignored",
	})
	if err != nil {
		t.Fatalf("ApplyEnv failed: %v", err)
	}
	if cfg.Board.Columns != 11 || cfg.Board.Rows != 7 || cfg.Board.DelayMs != 250 || cfg.Scoring.Rule != RuleBonus {
		t.Errorf("unexpected config %+v", cfg)
	}

	if err := ApplyEnv(&cfg, map[string]string{"GRAVITATE_MAX_COLORS": "many"}); err == nil {
		t.Error("expected error for non-numeric value")
	}
}

func TestEnvironReadsDotenv(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, ".env", "GRAVITATE_COLUMNS=13\nGRAVITATE_ROWS=6\nUNRELATED=1\n")
	t.Setenv("GRAVITATE_ROWS", "8")

	env, err := Environ(path)
	if err != nil {
		t.Fatalf("Environ failed: %v", err)
	}
	if env["GRAVITATE_COLUMNS"] != "13" {
		t.Errorf("dotenv value missing: %v", env)
	}
	if env["GRAVITATE_ROWS"] != "8" {
		t.Errorf("process env should win, got %q", env["GRAVITATE_ROWS"])
	}
	if _, ok := env["UNRELATED"]; ok {
		t.Error("non-prefixed key leaked")
	}

	if _, err := Environ(filepath.Join(dir, "absent.env")); err != nil {
		t.Errorf("missing dotenv should not fail: %v", err)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "gravitate.yaml")
	cfg := DefaultGravitateConfig()
	cfg.Board.Columns = 17
	cfg.Scoring.Rule = RuleBonus

	written, err := Save(cfg, path)
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if written != path {
		t.Errorf("Save wrote %s, want %s", written, path)
	}

	loaded, err := LoadGravitate(path)
	if err != nil {
		t.Fatalf("LoadGravitate failed: %v", err)
	}
	if loaded != cfg {
		t.Errorf("loaded %+v, want %+v", loaded, cfg)
	}
}

func TestPresets(t *testing.T) {
	tests := []struct {
		preset             DifficultyPreset
		cols, rows, colors int
	}{
		{DifficultyEasy, 7, 7, 3},
		{DifficultyNormal, 9, 9, 4},
		{DifficultyHard, 12, 12, 6},
		{DifficultyFixed, 20, 5, 10},
	}
	for _, tt := range tests {
		cfg := GravitateConfig{Board: BoardConfig{Columns: 20, Rows: 5, MaxColors: 10}}
		ApplyPreset(&cfg, tt.preset)
		if cfg.Board.Columns != tt.cols || cfg.Board.Rows != tt.rows || cfg.Board.MaxColors != tt.colors {
			t.Errorf("%s: got %+v", tt.preset, cfg.Board)
		}
		if notes := cfg.Clamp(); len(notes) != 0 {
			t.Errorf("%s preset produced out-of-range values: %v", tt.preset, notes)
		}
	}

	if _, err := ParsePreset("nightmare"); err == nil || !strings.Contains(err.Error(), "nightmare") {
		t.Errorf("ParsePreset: expected error naming the preset, got %v", err)
	}
	if p, err := ParsePreset(""); err != nil || p != DifficultyFixed {
		t.Errorf("ParsePreset(\"\") = %v, %v", p, err)
	}
}

func TestDelay(t *testing.T) {
	cfg := DefaultGravitateConfig()
	if cfg.Delay() != 250*time.Millisecond {
		t.Errorf("Delay() = %v", cfg.Delay())
	}
}
