package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const configFile = "gravitate.yaml"

// LoadGravitate loads Gravitate configuration.
// Search order: customPath -> ~/.gravitate/configs/gravitate.yaml -> ./configs/gravitate.yaml -> embedded default
//
// Fields missing from a file keep their default values.
func LoadGravitate(customPath string) (GravitateConfig, error) {
	cfg := DefaultGravitateConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return DefaultGravitateConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := UserConfigPath(); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			loaded := cfg
			if err := yaml.Unmarshal(data, &loaded); err == nil {
				return loaded, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", configFile)); err == nil {
		loaded := cfg
		if err := yaml.Unmarshal(data, &loaded); err == nil {
			return loaded, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultGravitateYAML, &cfg); err != nil {
		return DefaultGravitateConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Save writes cfg as YAML. An empty path means the user config file.
// Returns the path written.
func Save(cfg GravitateConfig, path string) (string, error) {
	if path == "" {
		path = UserConfigPath()
		if path == "" {
			return "", fmt.Errorf("cannot locate home directory for config")
		}
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write config %s: %w", path, err)
	}
	return path, nil
}

// UserConfigPath returns the path to the user config file, or empty if home is unavailable.
func UserConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".gravitate", "configs", configFile)
}

const envPrefix = "GRAVITATE_"

// Environ collects GRAVITATE_* variables from an optional dotenv file,
// overlaid by the process environment. A missing dotenv file is not an error.
func Environ(dotenvPath string) (map[string]string, error) {
	env := make(map[string]string)

	if dotenvPath != "" {
		if _, err := os.Stat(dotenvPath); err == nil {
			vals, err := godotenv.Read(dotenvPath)
			if err != nil {
				return nil, fmt.Errorf("failed to read env file %s: %w", dotenvPath, err)
			}
			for k, v := range vals {
				if strings.HasPrefix(k, envPrefix) {
					env[k] = v
				}
			}
		}
	}

	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if ok && strings.HasPrefix(k, envPrefix) {
			env[k] = v
		}
	}
	return env, nil
}

// ApplyEnv overrides config fields from GRAVITATE_* variables:
// COLUMNS, ROWS, MAX_COLORS, DELAY_MS and SCORING.
func ApplyEnv(cfg *GravitateConfig, env map[string]string) error {
	ints := []struct {
		key string
		dst *int
	}{
		{envPrefix + "COLUMNS", &cfg.Board.Columns},
		{envPrefix + "ROWS", &cfg.Board.Rows},
		{envPrefix + "MAX_COLORS", &cfg.Board.MaxColors},
		{envPrefix + "DELAY_MS", &cfg.Board.DelayMs},
	}
	for _, f := range ints {
		v := strings.TrimSpace(env[f.key])
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s=%q: %w", f.key, v, err)
		}
		*f.dst = n
	}

	if v := strings.TrimSpace(env[envPrefix+"SCORING"]); v != "" {
		cfg.Scoring.Rule = strings.ToLower(v)
	}
	return nil
}
