// Package config loads pinlock settings from pinlock.yml or pinlock.toml.
package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"

	"github.com/frederic-klein/pinlock/internal/pip"
)

// DefaultLockFile is the lock file name used when nothing else is configured.
const DefaultLockFile = "requirements.lock"

// ErrUnsupportedFormat is returned for config files that are neither YAML nor TOML.
var ErrUnsupportedFormat = zerr.New("unsupported config file format")

// FileNames are the config files looked up by Discover, in order.
var FileNames = []string{"pinlock.yml", "pinlock.yaml", "pinlock.toml"}

// Config holds the settings of a project.
type Config struct {
	// LockFile is the path of the lock file.
	LockFile string `yaml:"lock_file" toml:"lock_file"`
	// Python is the interpreter of the virtual environment to freeze.
	Python string `yaml:"python" toml:"python"`
	// Exclude lists packages never written to the lock.
	Exclude []string `yaml:"exclude" toml:"exclude"`
}

// Default returns the settings used without a config file.
func Default() Config {
	python := filepath.Join(".venv", "bin", "python")
	if runtime.GOOS == "windows" {
		python = filepath.Join(".venv", "Scripts", "python.exe")
	}
	return Config{
		LockFile: DefaultLockFile,
		Python:   python,
		Exclude:  append([]string(nil), pip.DefaultExclude...),
	}
}

// Load reads a config file on top of the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return cfg, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		err = yaml.Unmarshal(data, &cfg)
	case ".toml":
		_, err = toml.Decode(string(data), &cfg)
	default:
		return cfg, zerr.With(zerr.Wrap(ErrUnsupportedFormat, "failed to load config file"), "path", path)
	}
	if err != nil {
		return cfg, zerr.With(zerr.Wrap(err, "failed to parse config file"), "path", path)
	}

	return cfg, nil
}

// Discover returns the first config file found in dir, or "" if there is none.
func Discover(dir string) string {
	for _, name := range FileNames {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}
