package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

const (
	// envPrefix guards which environment variables participate in layering.
	envPrefix = "REPOBOOK_"

	// maxConfigFileSize caps the config file read.
	maxConfigFileSize = 1 << 20

	localConfigFile = "repobook.yaml"
)

// Load resolves the effective configuration. Layering, lowest to highest
// precedence: built-in defaults, ~/.config/repobook/config.yaml, a
// repobook.yaml in the working directory, then REPOBOOK_* environment
// variables. explicitPath replaces both file layers when non-empty, and a
// missing explicit file is an error while missing default files are not.
// CLI flag overrides are applied by the caller afterwards.
func Load(explicitPath string) (Config, error) {
	k := koanf.New(".")

	if explicitPath != "" {
		if err := loadFile(k, explicitPath, true); err != nil {
			return Config{}, err
		}
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			_ = loadFile(k, filepath.Join(home, ".config", "repobook", "config.yaml"), false)
		}
		if err := loadFile(k, localConfigFile, false); err != nil {
			return Config{}, err
		}
	}

	// REPOBOOK_OUTPUT_FORMAT -> output.format,
	// REPOBOOK_LIMITS_MAX_FILE_SIZE_MB -> limits.max_file_size_mb.
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		lower := strings.ToLower(strings.TrimPrefix(s, envPrefix))
		parts := strings.SplitN(lower, "_", 2)
		if len(parts) == 1 {
			return lower
		}
		return parts[0] + "." + parts[1]
	}), nil); err != nil {
		return Config{}, fmt.Errorf("failed to load environment overrides: %w", err)
	}

	cfg := Default()
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	return cfg, nil
}

// loadFile merges one YAML file into k. When required is false a missing file
// is skipped silently.
func loadFile(k *koanf.Koanf, path string, required bool) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) && !required {
			return nil
		}
		return fmt.Errorf("cannot read config file %q: %w", path, err)
	}
	if info.Size() > maxConfigFileSize {
		return fmt.Errorf("config file %q exceeds %d bytes", path, maxConfigFileSize)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("cannot read config file %q: %w", path, err)
	}
	if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
		return fmt.Errorf("failed to parse config file %q: %w", path, err)
	}
	return nil
}
