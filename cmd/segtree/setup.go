package main

import (
	"io"
	"iter"

	"github.com/revelaction/segtree/config"
	"github.com/revelaction/segtree/engine/basic"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger returns a console logger writing to w, at warn level or, if
// verbose, at debug level.
func newLogger(w io.Writer, verbose bool) *zap.Logger {
	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(w), level)
	return zap.New(core)
}

// newEngine loads the configuration and builds the analysis engine.
func newEngine(opts EngineOptions, log *zap.Logger) (*basic.Engine, error) {
	cfg, err := config.Load(config.Options{
		ConfigPath: opts.ConfigPath,
		Lang:       opts.Lang,
		DictPath:   opts.DictPath,
	}, log)
	if err != nil {
		return nil, err
	}

	return basic.New(cfg, basic.WithLogger(log))
}

// onFirst calls fn with the first line of seq before yielding it, or with
// the empty string if seq has no lines.
func onFirst(seq iter.Seq[string], fn func(line string)) iter.Seq[string] {
	return func(yield func(string) bool) {
		seen := false
		for line := range seq {
			if !seen {
				seen = true
				fn(line)
			}

			if !yield(line) {
				return
			}
		}

		if !seen {
			fn("")
		}
	}
}
