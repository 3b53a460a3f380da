package main

import (
	"github.com/revelaction/segtree/file"
	"github.com/revelaction/segtree/langident"
	"github.com/revelaction/segtree/pipeline"
	"github.com/revelaction/segtree/render"
	"go.uber.org/zap"
)

func analyzeCommand(opts AnalyzeOptions, files []string, ui UI) error {
	log := newLogger(ui.Err, opts.Verbose)
	defer log.Sync()

	r, err := render.New(opts.Format, ui.Out)
	if err != nil {
		return err
	}

	eng, err := newEngine(opts.EngineOptions, log)
	if err != nil {
		return err
	}
	defer eng.Close()

	ident, err := langident.New()
	if err != nil {
		return err
	}

	var lines file.Lines
	var headerErr error

	// the language is guessed once, on the first line
	src := onFirst(lines.Files(ui.In, files), func(line string) {
		code := ident.Identify(line)
		log.Debug("language identified", zap.String("lang", code))

		if lr, ok := r.(render.LanguageRenderer); ok {
			headerErr = lr.Language(code)
		}
	})

	p := pipeline.New(eng, pipeline.WithLogger(log))
	for s, err := range p.Run(src) {
		if err != nil {
			return err
		}

		if headerErr != nil {
			return headerErr
		}

		if err := r.Render(s); err != nil {
			return err
		}
	}

	if headerErr != nil {
		return headerErr
	}

	return lines.Err()
}
