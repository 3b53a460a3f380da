package main

import (
	"fmt"
	"slices"

	"github.com/revelaction/segtree/file"
	"github.com/revelaction/segtree/pipeline"
	"github.com/revelaction/segtree/stat"
)

func statCommand(opts StatOptions, files []string, ui UI) error {
	log := newLogger(ui.Err, opts.Verbose)
	defer log.Sync()

	eng, err := newEngine(opts.EngineOptions, log)
	if err != nil {
		return err
	}
	defer eng.Close()

	var lines file.Lines
	hdl := stat.NewHandler()

	p := pipeline.New(eng, pipeline.WithLogger(log))
	for s, err := range p.Run(lines.Files(ui.In, files)) {
		if err != nil {
			return err
		}
		hdl.Aggregate(s)
	}

	if err := lines.Err(); err != nil {
		return err
	}

	stats := hdl.Get()
	fmt.Fprintf(ui.Out, "Num sentences %d, num words %d, num words per sentence %d\n", stats.NumSentences, stats.NumWords, stats.WordsPerSentenceMean)
	fmt.Fprintf(ui.Out, "Max constituency depth %d, max dependency depth %d, num chunks %d\n", stats.MaxParseDepth, stats.MaxDepDepth, stats.NumChunks)

	sizes := make([]int, 0, len(stats.WordsPerSentenceDis))
	for n := range stats.WordsPerSentenceDis {
		sizes = append(sizes, n)
	}
	slices.Sort(sizes)

	for _, n := range sizes {
		fmt.Fprintf(ui.Out, "%4d words: %d\n", n, stats.WordsPerSentenceDis[n])
	}

	return nil
}
