package main

import (
	"fmt"
	"slices"

	"github.com/c-bata/go-prompt"
	"github.com/revelaction/segtree/pipeline"
	"github.com/revelaction/segtree/render"
)

var replSuggestions = []prompt.Suggest{
	{Text: "quit", Description: "Leave the interactive mode"},
}

// replCommand reads lines from an interactive prompt and prints their
// analysis. Every line is split in its own session.
func replCommand(opts ReplOptions, ui UI) error {
	log := newLogger(ui.Err, opts.Verbose)
	defer log.Sync()

	eng, err := newEngine(opts.EngineOptions, log)
	if err != nil {
		return err
	}
	defer eng.Close()

	p := pipeline.New(eng, pipeline.WithLogger(log))
	format := opts.Format

	fmt.Fprintln(ui.Out, "🔑 Ctrl+F: next Format, 🔧 quit")

	history := []string{}

	for {
		in := prompt.Input("🔖 ", replCompleter,
			prompt.OptionTitle("segtree repl"),
			prompt.OptionPrefixTextColor(prompt.Yellow),
			prompt.OptionPreviewSuggestionTextColor(prompt.Blue),
			prompt.OptionSelectedSuggestionBGColor(prompt.LightGray),
			prompt.OptionSuggestionBGColor(prompt.DarkGray),
			prompt.OptionHistory(history),
			prompt.OptionAddKeyBind(prompt.KeyBind{
				Key: prompt.ControlF,
				Fn: func(buf *prompt.Buffer) {
					format = render.NextFormat(format)
					fmt.Fprintln(ui.Out, "Format set to: "+format)
				}}),
		)

		if in == "quit" {
			return nil
		}

		if in == "" {
			continue
		}

		history = append(history, in)

		r, err := render.New(format, ui.Out)
		if err != nil {
			return err
		}

		for s, err := range p.Run(slices.Values([]string{in})) {
			if err != nil {
				fprintErr(ui.Err, err)
				break
			}

			if err := r.Render(s); err != nil {
				fprintErr(ui.Err, err)
				break
			}
		}
	}
}

func replCompleter(in prompt.Document) []prompt.Suggest {
	w := in.GetWordBeforeCursor()
	if w == "" {
		return []prompt.Suggest{}
	}
	return prompt.FilterHasPrefix(replSuggestions, w, true)
}
