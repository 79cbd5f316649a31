// Package config loads svnrevert configuration from YAML.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/chmouel/svnrevert/internal/theme"
	"gopkg.in/yaml.v3"
)

// RevertErrorPolicy decides what happens when reverting one directory fails.
type RevertErrorPolicy string

const (
	// RevertErrorsContinue records the failure in the revert output and moves
	// on to the next directory.
	RevertErrorsContinue RevertErrorPolicy = "continue"
	// RevertErrorsAbort stops at the first failing directory.
	RevertErrorsAbort RevertErrorPolicy = "abort"
)

// AppConfig defines the svnrevert configuration options.
type AppConfig struct {
	SvnBinary          string
	SvnArgs            []string // Global arguments passed to every svn call (e.g. --non-interactive)
	RecursiveExternals bool     // Follow externals declared inside externals (default: true)
	RevertErrors       RevertErrorPolicy
	Theme              string
	DebugLog           string
	DryRun             bool
}

// DefaultConfig returns the default configuration values.
func DefaultConfig() *AppConfig {
	return &AppConfig{
		SvnBinary:          "svn",
		SvnArgs:            []string{},
		RecursiveExternals: true,
		RevertErrors:       RevertErrorsContinue,
		Theme:              theme.DraculaName,
	}
}

func normalizeArgsList(value any) []string {
	if value == nil {
		return []string{}
	}

	switch v := value.(type) {
	case string:
		text := strings.TrimSpace(v)
		if text == "" {
			return []string{}
		}
		return strings.Fields(text)
	case []any:
		args := []string{}
		for _, item := range v {
			if item == nil {
				continue
			}
			text := strings.TrimSpace(fmt.Sprintf("%v", item))
			if text != "" {
				args = append(args, text)
			}
		}
		return args
	}

	return []string{}
}

func coerceBool(value any, defaultVal bool) bool {
	if value == nil {
		return defaultVal
	}

	switch v := value.(type) {
	case bool:
		return v
	case int:
		return v != 0
	case string:
		text := strings.ToLower(strings.TrimSpace(v))
		switch text {
		case "1", "true", "yes", "y", "on":
			return true
		case "0", "false", "no", "n", "off":
			return false
		}
	}
	return defaultVal
}

// NormalizeRevertErrors returns the canonical policy or "" when unknown.
func NormalizeRevertErrors(value string) RevertErrorPolicy {
	switch RevertErrorPolicy(strings.ToLower(strings.TrimSpace(value))) {
	case RevertErrorsContinue:
		return RevertErrorsContinue
	case RevertErrorsAbort:
		return RevertErrorsAbort
	default:
		return ""
	}
}

// NormalizeThemeName returns the canonical theme name if it is supported.
func NormalizeThemeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case theme.DraculaName, theme.CleanLightName, theme.NoneName:
		return name
	default:
		return ""
	}
}

// applyValues overlays known keys from data onto cfg. Unknown keys and
// invalid values are ignored.
func applyValues(cfg *AppConfig, data map[string]any) {
	if svnBinary, ok := data["svn_binary"].(string); ok {
		svnBinary = strings.TrimSpace(svnBinary)
		if svnBinary != "" {
			cfg.SvnBinary = svnBinary
		}
	}

	if _, ok := data["svn_args"]; ok {
		cfg.SvnArgs = normalizeArgsList(data["svn_args"])
	}

	cfg.RecursiveExternals = coerceBool(data["recursive_externals"], cfg.RecursiveExternals)
	cfg.DryRun = coerceBool(data["dry_run"], cfg.DryRun)

	if policy, ok := data["revert_errors"].(string); ok {
		if normalized := NormalizeRevertErrors(policy); normalized != "" {
			cfg.RevertErrors = normalized
		}
	}

	if themeName, ok := data["theme"].(string); ok {
		if normalized := NormalizeThemeName(themeName); normalized != "" {
			cfg.Theme = normalized
		}
	}

	if debugLog, ok := data["debug_log"].(string); ok {
		debugLog = strings.TrimSpace(debugLog)
		if debugLog != "" {
			cfg.DebugLog = debugLog
		}
	}
}

func parseConfig(data map[string]any) *AppConfig {
	cfg := DefaultConfig()
	applyValues(cfg, data)
	return cfg
}

// ApplyCLIOverrides applies "key=value" overrides given on the command line.
// Keys use the same names as the YAML file.
func (c *AppConfig) ApplyCLIOverrides(overrides []string) error {
	data := make(map[string]any, len(overrides))
	for _, override := range overrides {
		key, value, ok := strings.Cut(override, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return fmt.Errorf("invalid config override %q: expected key=value", override)
		}
		switch key {
		case "svn_binary", "svn_args", "recursive_externals", "revert_errors", "theme", "debug_log", "dry_run":
		default:
			return fmt.Errorf("unknown config key %q", key)
		}
		data[key] = value
	}
	applyValues(c, data)
	return nil
}

func getConfigDir() string {
	if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
		return xdgConfigHome
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config")
}

// LoadConfig reads the configuration from a YAML file. Without an explicit
// path it looks for config.yaml then config.yml under the svnrevert config
// directory; a missing file yields the defaults.
func LoadConfig(configPath string) (*AppConfig, error) {
	var paths []string

	if configPath != "" {
		expanded, err := ExpandPath(configPath)
		if err != nil {
			return DefaultConfig(), err
		}
		paths = []string{expanded}
	} else {
		configBase := filepath.Join(getConfigDir(), "svnrevert")
		paths = []string{
			filepath.Join(configBase, "config.yaml"),
			filepath.Join(configBase, "config.yml"),
		}
	}

	for _, path := range paths {
		// #nosec G304 -- the config path is chosen by the local user
		data, err := os.ReadFile(path)
		if os.IsNotExist(err) && configPath == "" {
			continue
		}
		if err != nil {
			return DefaultConfig(), fmt.Errorf("failed to read %s: %w", path, err)
		}

		var yamlData map[string]any
		if err := yaml.Unmarshal(data, &yamlData); err != nil {
			return DefaultConfig(), fmt.Errorf("failed to parse %s: %w", path, err)
		}
		return parseConfig(yamlData), nil
	}

	return DefaultConfig(), nil
}

// ExpandPath expands a leading ~ and environment variables in path.
func ExpandPath(path string) (string, error) {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(home, path[1:])
	}
	return os.ExpandEnv(path), nil
}
