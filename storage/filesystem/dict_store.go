package filesystem

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	sent "github.com/revelaction/segtree/sentence"
	"github.com/revelaction/segtree/storage"
)

const commentPrefix = "#"

// DictStore is a dictionary read from text files and kept in memory.
//
// The lexicon file has one form per line followed by its lemma/tag pairs:
//
//	casas casa NCFP000 casar VMIP2S0
//
// The optional senses file has one lemma and coarse part of speech per line
// followed by its senses, with an optional score:
//
//	casa n 02913152-n:0.7 03544360-n
type DictStore struct {
	entries map[string][]sent.Analysis
	senses  map[string][]sent.Sense

	// ordered copies, for export
	entryList []storage.Entry
	senseList []storage.SenseEntry
}

var _ storage.DictReader = (*DictStore)(nil)

// NewDictStore loads the lexicon at diccPath and, if it exists, the senses
// file at sensesPath.
func NewDictStore(diccPath, sensesPath string) (*DictStore, error) {
	f, err := os.Open(diccPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	entries, err := ParseEntries(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", diccPath, err)
	}

	var senses []storage.SenseEntry
	if sensesPath != "" {
		sf, err := os.Open(sensesPath)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			// senses are optional
		case err != nil:
			return nil, err
		default:
			defer sf.Close()
			senses, err = ParseSenses(sf)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", sensesPath, err)
			}
		}
	}

	return NewMemDictStore(entries, senses), nil
}

// NewMemDictStore builds a store from already parsed entries and senses.
func NewMemDictStore(entries []storage.Entry, senses []storage.SenseEntry) *DictStore {
	h := &DictStore{
		entries:   map[string][]sent.Analysis{},
		senses:    map[string][]sent.Sense{},
		entryList: entries,
		senseList: senses,
	}

	for _, e := range entries {
		form := strings.ToLower(e.Form)
		h.entries[form] = append(h.entries[form], sent.Analysis{Lemma: e.Lemma, Tag: e.Tag})
	}

	for _, s := range senses {
		key := senseKey(s.Lemma, s.Pos)
		h.senses[key] = append(h.senses[key], sent.Sense{Id: s.Sense, Score: s.Score})
	}

	return h
}

func (h *DictStore) Lookup(form string) ([]sent.Analysis, error) {
	analyses := h.entries[strings.ToLower(form)]
	if len(analyses) == 0 {
		return nil, nil
	}

	// callers may modify the result
	out := make([]sent.Analysis, len(analyses))
	copy(out, analyses)
	return out, nil
}

func (h *DictStore) Senses(lemma, pos string) ([]sent.Sense, error) {
	senses := h.senses[senseKey(lemma, pos)]
	if len(senses) == 0 {
		return nil, nil
	}

	out := make([]sent.Sense, len(senses))
	copy(out, senses)
	return out, nil
}

func (h *DictStore) Multiwords() ([]string, error) {
	var mw []string
	for form := range h.entries {
		if storage.IsMultiword(form) {
			mw = append(mw, form)
		}
	}

	return mw, nil
}

// Entries returns the lexicon entries in file order.
func (h *DictStore) Entries() []storage.Entry {
	return h.entryList
}

// SenseEntries returns the senses in file order.
func (h *DictStore) SenseEntries() []storage.SenseEntry {
	return h.senseList
}

// ParseEntries reads lexicon lines from r.
func ParseEntries(r io.Reader) ([]storage.Entry, error) {
	var entries []storage.Entry

	err := scanLines(r, func(n int, fields []string) error {
		if len(fields) < 3 || len(fields)%2 == 0 {
			return fmt.Errorf("line %d: expected a form followed by lemma/tag pairs", n)
		}

		for i := 1; i < len(fields); i += 2 {
			entries = append(entries, storage.Entry{Form: fields[0], Lemma: fields[i], Tag: fields[i+1]})
		}
		return nil
	})

	return entries, err
}

// ParseSenses reads senses lines from r.
func ParseSenses(r io.Reader) ([]storage.SenseEntry, error) {
	var senses []storage.SenseEntry

	err := scanLines(r, func(n int, fields []string) error {
		if len(fields) < 3 {
			return fmt.Errorf("line %d: expected a lemma, a part of speech and at least one sense", n)
		}

		for _, s := range fields[2:] {
			se := storage.SenseEntry{Lemma: fields[0], Pos: fields[1], Sense: s}
			if id, score, ok := strings.Cut(s, ":"); ok {
				v, err := strconv.ParseFloat(score, 64)
				if err != nil {
					return fmt.Errorf("line %d: invalid score %q: %w", n, score, err)
				}
				se.Sense, se.Score = id, v
			}
			senses = append(senses, se)
		}
		return nil
	})

	return senses, err
}

func scanLines(r io.Reader, fn func(n int, fields []string) error) error {
	scan := bufio.NewScanner(r)
	n := 0
	for scan.Scan() {
		n++
		line := strings.TrimSpace(scan.Text())
		if line == "" || strings.HasPrefix(line, commentPrefix) {
			continue
		}

		if err := fn(n, strings.Fields(line)); err != nil {
			return err
		}
	}

	return scan.Err()
}

func senseKey(lemma, pos string) string {
	return strings.ToLower(lemma) + "\x00" + strings.ToLower(pos)
}
