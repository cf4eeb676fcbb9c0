package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const fileName = "blocchi.yaml"

// Load reads the configuration.
// Search order: customPath -> ~/.blocchi/config.yaml -> ./configs/blocchi.yaml -> embedded default -> hardcoded.
// Only an explicit customPath that is missing or broken is an error; the
// implicit locations are skipped when unreadable. Fields a file leaves out
// keep their default values.
func Load(customPath string) (Config, error) {
	return load(customPath, searchPaths())
}

func load(customPath string, candidates []string) (Config, error) {
	if customPath != "" {
		cfg, err := readFile(customPath)
		if err != nil {
			return cfg, err
		}
		return cfg, cfg.Validate()
	}

	for _, path := range candidates {
		cfg, err := readFile(path)
		if err != nil {
			continue
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config %s: %w", path, err)
		}
		return cfg, nil
	}

	cfg, err := parse(defaultYAML)
	if err != nil {
		return Default(), nil
	}
	return cfg, nil
}

// searchPaths returns the implicit config locations in priority order.
func searchPaths() []string {
	var paths []string
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".blocchi", "config.yaml"))
	}
	return append(paths, filepath.Join("configs", fileName))
}

func readFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), fmt.Errorf("config %s not found: %w", path, err)
		}
		return Default(), fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := parse(data)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

func parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), err
	}
	return cfg, nil
}
