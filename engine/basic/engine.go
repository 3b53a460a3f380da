// Package basic is a small rule based analysis engine. It needs a lexicon
// for the analysis language and implements every stage of engine.Engine with
// simple, deterministic rules.
package basic

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/revelaction/segtree/engine"
	"github.com/revelaction/segtree/storage"
	"github.com/revelaction/segtree/storage/filesystem"
	"github.com/revelaction/segtree/storage/sqlite/zombiezen"
	"go.uber.org/zap"
)

const (
	lexiconFile   = "dicc.src"
	lexiconDBFile = "dicc.db"
	sensesFile    = "senses.src"
)

type Engine struct {
	cfg  engine.Config
	dict storage.DictReader
	log  *zap.Logger

	// closes the dictionary, if the engine opened it
	closer io.Closer

	// multiwords by their first word
	multiwords map[string][][]string

	// snowball stemmer language, empty if unsupported
	stemLang string

	contractions map[string][]string
}

var _ engine.Engine = (*Engine)(nil)

type Option func(*Engine)

func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		e.log = l
	}
}

// WithDictionary makes the engine use d instead of opening the dictionary
// of the language data directory.
func WithDictionary(d storage.DictReader) Option {
	return func(e *Engine) {
		e.dict = d
	}
}

// New creates an engine for cfg. Unless a dictionary is given with
// WithDictionary, the language data directory must exist and hold a lexicon.
func New(cfg engine.Config, opts ...Option) (*Engine, error) {
	e := &Engine{
		cfg:          cfg,
		log:          zap.NewNop(),
		stemLang:     stemLanguages[cfg.Lang],
		contractions: contractions[cfg.Lang],
	}

	for _, o := range opts {
		o(e)
	}

	if e.dict == nil {
		info, err := os.Stat(cfg.LangDir())
		if err != nil {
			return nil, fmt.Errorf("language data for %q: %w", cfg.Lang, err)
		}

		if !info.IsDir() {
			return nil, fmt.Errorf("language data for %q: %s is not a directory", cfg.Lang, cfg.LangDir())
		}

		dict, closer, err := OpenDictionary(cfg)
		if err != nil {
			return nil, err
		}

		e.dict, e.closer = dict, closer
	}

	if err := e.loadMultiwords(); err != nil {
		e.Close()
		return nil, err
	}

	e.log.Debug("engine ready",
		zap.String("lang", cfg.Lang),
		zap.Int("multiwords", len(e.multiwords)),
		zap.Bool("stemmer", e.stemLang != ""))

	return e, nil
}

// Close releases the dictionary opened by New.
func (e *Engine) Close() error {
	if e.closer != nil {
		err := e.closer.Close()
		e.closer = nil
		return err
	}
	return nil
}

// DictPath returns the dictionary used for cfg: the configured path, or the
// SQLite lexicon of the language if present, or its text lexicon.
func DictPath(cfg engine.Config) string {
	if cfg.DictPath != "" {
		return cfg.DictPath
	}

	db := cfg.LangFile(lexiconDBFile)
	if _, err := os.Stat(db); err == nil {
		return db
	}

	return cfg.LangFile(lexiconFile)
}

// OpenDictionary opens the dictionary of cfg. Paths ending in .db are
// SQLite stores, other paths are text lexicons, with the senses file of the
// language next to them.
func OpenDictionary(cfg engine.Config) (storage.DictReader, io.Closer, error) {
	path := DictPath(cfg)

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil, fmt.Errorf("dictionary not found: %s", path)
		}
		return nil, nil, err
	}

	if filepath.Ext(path) == ".db" {
		pool, err := zombiezen.NewPool(path)
		if err != nil {
			return nil, nil, err
		}
		return zombiezen.NewDictStore(pool), pool, nil
	}

	store, err := filesystem.NewDictStore(path, cfg.LangFile(sensesFile))
	if err != nil {
		return nil, nil, err
	}

	return store, nil, nil
}

func (e *Engine) loadMultiwords() error {
	e.multiwords = map[string][][]string{}
	if !e.cfg.Stages.MultiwordsDetection {
		return nil
	}

	mws, err := e.dict.Multiwords()
	if err != nil {
		return fmt.Errorf("loading multiwords: %w", err)
	}

	for _, mw := range mws {
		parts := strings.Split(mw, "_")
		e.multiwords[parts[0]] = append(e.multiwords[parts[0]], parts)
	}

	return nil
}
