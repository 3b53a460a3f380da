// Package config builds the engine configuration from the installation
// root, an optional YAML analyzer file, the environment and command flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"slices"

	"github.com/joho/godotenv"
	"github.com/revelaction/segtree/engine"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

const (
	EnvDir  = "SEGTREE_DIR"
	EnvLang = "SEGTREE_LANG"
)

var ErrDataDirNotFound = errors.New("data directory not found")

// File is the YAML analyzer configuration.
//
//	lang: es
//	dict: /path/to/dicc.db
//	stages:
//	  compound: true
//	  ner: false
type File struct {
	Lang   string          `yaml:"lang"`
	Dict   string          `yaml:"dict"`
	Stages map[string]bool `yaml:"stages"`
}

// Options are the command flag values. Empty fields are not set.
type Options struct {
	ConfigPath string
	Lang       string
	DictPath   string
}

func LoadFile(path string) (*File, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var f File
	if err := yaml.Unmarshal(content, &f); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &f, nil
}

// InstallDir returns the installation root, and whether it is the default
// because SEGTREE_DIR is not set.
func InstallDir() (string, bool) {
	if dir := os.Getenv(EnvDir); dir != "" {
		return dir, false
	}

	if runtime.GOOS == "windows" {
		return `C:\Program Files`, true
	}

	return "/usr/local", true
}

// DataDir returns the data directory under the installation root.
func DataDir(installDir string) (string, error) {
	dir := filepath.Join(installDir, "share", "segtree")

	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrDataDirNotFound, dir)
	}

	return dir, nil
}

// Load returns the engine configuration. Precedence, lowest first: the
// defaults, the YAML file, the environment and the flags.
func Load(opts Options, log *zap.Logger) (engine.Config, error) {
	// .env is optional
	_ = godotenv.Load()

	install, isDefault := InstallDir()
	if isDefault {
		log.Warn(EnvDir+" not set, using default installation directory", zap.String("dir", install))
	}

	dataDir, err := DataDir(install)
	if err != nil {
		return engine.Config{}, err
	}

	cfg := engine.Config{
		Lang:    engine.DefaultLang,
		DataDir: dataDir,
		Stages:  engine.DefaultStages(),
	}

	if opts.ConfigPath != "" {
		f, err := LoadFile(opts.ConfigPath)
		if err != nil {
			return engine.Config{}, err
		}

		if err := apply(&cfg, f); err != nil {
			return engine.Config{}, fmt.Errorf("%s: %w", opts.ConfigPath, err)
		}
	}

	if lang := os.Getenv(EnvLang); lang != "" {
		cfg.Lang = lang
	}

	if opts.Lang != "" {
		cfg.Lang = opts.Lang
	}

	if opts.DictPath != "" {
		cfg.DictPath = opts.DictPath
	}

	if err := ValidateLang(cfg.Lang); err != nil {
		return engine.Config{}, err
	}

	log.Debug("configuration loaded",
		zap.String("lang", cfg.Lang),
		zap.String("data", cfg.DataDir),
		zap.String("dict", cfg.DictPath))

	return cfg, nil
}

func apply(cfg *engine.Config, f *File) error {
	if f.Lang != "" {
		cfg.Lang = f.Lang
	}

	if f.Dict != "" {
		cfg.DictPath = f.Dict
	}

	names := make([]string, 0, len(f.Stages))
	for name := range f.Stages {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		if err := cfg.Stages.Set(name, f.Stages[name]); err != nil {
			return err
		}
	}

	return nil
}

// ValidateLang checks that code is a well formed BCP 47 language code.
func ValidateLang(code string) error {
	if _, err := language.Parse(code); err != nil {
		return fmt.Errorf("invalid language %q: %w", code, err)
	}
	return nil
}
