package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Manifest is a parsed tox.toml: package metadata plus the tree's entry
// point, per SPEC_FULL §6.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

// Config is the TOML schema of tox.toml.
type Config struct {
	Package PackageConfig `toml:"package"`
	Run     RunConfig     `toml:"run"`
}

// PackageConfig is the `[package]` table.
type PackageConfig struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
}

// RunConfig is the `[run]` table.
type RunConfig struct {
	Main string `toml:"main"`
}

// FindToxToml walks up from startDir to locate tox.toml, the way the
// teacher's FindSurgeToml locates surge.toml.
func FindToxToml(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "tox.toml")
		if _, statErr := os.Stat(candidate); statErr == nil {
			return candidate, true, nil
		} else if !errors.Is(statErr, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, statErr)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// LoadManifest locates and parses tox.toml starting from startDir.
func LoadManifest(startDir string) (*Manifest, bool, error) {
	path, ok, err := FindToxToml(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	cfg, err := loadConfig(path)
	if err != nil {
		return nil, true, err
	}
	return &Manifest{Path: path, Root: filepath.Dir(path), Config: cfg}, true, nil
}

func loadConfig(path string) (Config, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("package") {
		return Config{}, fmt.Errorf("%s: missing [package]", path)
	}
	if !meta.IsDefined("package", "name") || strings.TrimSpace(cfg.Package.Name) == "" {
		return Config{}, fmt.Errorf("%s: missing [package].name", path)
	}
	if !meta.IsDefined("run") {
		return Config{}, fmt.Errorf("%s: missing [run]", path)
	}
	if !meta.IsDefined("run", "main") || strings.TrimSpace(cfg.Run.Main) == "" {
		return Config{}, fmt.Errorf("%s: missing [run].main", path)
	}
	return cfg, nil
}

// EntryPath resolves the manifest's [run].main entry point to an absolute
// path rooted at the manifest's directory.
func (m *Manifest) EntryPath() string {
	return filepath.Join(m.Root, filepath.FromSlash(strings.TrimSpace(m.Config.Run.Main)))
}
