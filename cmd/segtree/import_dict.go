package main

import (
	"fmt"

	"github.com/gosuri/uiprogress"
	"github.com/revelaction/segtree/storage/filesystem"
	"github.com/revelaction/segtree/storage/sqlite/zombiezen"
)

// entries written per transaction
const importBatchSize = 5000

func importDictCommand(opts ImportDictOptions, ui UI) error {
	src, err := filesystem.NewDictStore(opts.From, opts.Senses)
	if err != nil {
		return err
	}

	pool, err := zombiezen.NewPool(opts.To)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := zombiezen.CreateSchemas(pool, zombiezen.DictSchema); err != nil {
		return fmt.Errorf("failed to create dictionary tables: %w", err)
	}

	dst := zombiezen.NewDictStore(pool)

	fmt.Fprintf(ui.Out, "Reading dictionary from %s...\n", opts.From)
	entries := src.Entries()
	senses := src.SenseEntries()

	batches := (len(entries)+importBatchSize-1)/importBatchSize + 1

	uiprogress.Start()
	bar := uiprogress.AddBar(batches)
	bar.AppendCompleted()
	bar.PrependElapsed()

	for start := 0; start < len(entries); start += importBatchSize {
		end := min(start+importBatchSize, len(entries))
		if err := dst.WriteEntries(entries[start:end]); err != nil {
			uiprogress.Stop()
			return fmt.Errorf("failed to write entries %d-%d: %w", start, end, err)
		}
		bar.Incr()
	}

	if err := dst.WriteSenses(senses); err != nil {
		uiprogress.Stop()
		return fmt.Errorf("failed to write senses: %w", err)
	}
	bar.Incr()
	uiprogress.Stop()

	fmt.Fprintf(ui.Out, "Successfully imported %d entries and %d senses from %s to %s\n", len(entries), len(senses), opts.From, opts.To)
	return nil
}
