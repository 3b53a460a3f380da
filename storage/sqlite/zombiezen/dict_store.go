package zombiezen

import (
	"context"
	"fmt"
	"strings"

	sent "github.com/revelaction/segtree/sentence"
	"github.com/revelaction/segtree/storage"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

type DictStore struct {
	pool *sqlitex.Pool
}

var _ storage.DictRepository = (*DictStore)(nil)

func NewDictStore(pool *sqlitex.Pool) *DictStore {
	return &DictStore{pool: pool}
}

func (h *DictStore) Lookup(form string) ([]sent.Analysis, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer h.pool.Put(conn)

	var analyses []sent.Analysis
	err = sqlitex.Execute(conn, "SELECT lemma, tag FROM entries WHERE form = ? ORDER BY rowid", &sqlitex.ExecOptions{
		Args: []interface{}{strings.ToLower(form)},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			analyses = append(analyses, sent.Analysis{
				Lemma: stmt.ColumnText(0),
				Tag:   stmt.ColumnText(1),
			})
			return nil
		},
	})
	if err != nil {
		return nil, err
	}

	return analyses, nil
}

func (h *DictStore) Senses(lemma, pos string) ([]sent.Sense, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer h.pool.Put(conn)

	var senses []sent.Sense
	err = sqlitex.Execute(conn, "SELECT sense, score FROM senses WHERE lemma = ? AND pos = ? ORDER BY rowid", &sqlitex.ExecOptions{
		Args: []interface{}{strings.ToLower(lemma), strings.ToLower(pos)},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			senses = append(senses, sent.Sense{
				Id:    stmt.ColumnText(0),
				Score: stmt.ColumnFloat(1),
			})
			return nil
		},
	})
	if err != nil {
		return nil, err
	}

	return senses, nil
}

func (h *DictStore) Multiwords() ([]string, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer h.pool.Put(conn)

	var mw []string
	err = sqlitex.Execute(conn, `SELECT DISTINCT form FROM entries WHERE form LIKE '%\_%' ESCAPE '\' ORDER BY form`, &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			if form := stmt.ColumnText(0); storage.IsMultiword(form) {
				mw = append(mw, form)
			}
			return nil
		},
	})
	if err != nil {
		return nil, err
	}

	return mw, nil
}

// WriteEntries inserts the entries in one transaction.
func (h *DictStore) WriteEntries(entries []storage.Entry) (err error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer h.pool.Put(conn)

	// Start Transaction
	defer sqlitex.Save(conn)(&err)

	for _, e := range entries {
		err = sqlitex.Execute(conn, "INSERT INTO entries (form, lemma, tag) VALUES (?, ?, ?)", &sqlitex.ExecOptions{
			Args: []interface{}{strings.ToLower(e.Form), e.Lemma, e.Tag},
		})
		if err != nil {
			return fmt.Errorf("failed to insert entry %s: %w", e.Form, err)
		}
	}

	return nil
}

// WriteSenses inserts the senses in one transaction.
func (h *DictStore) WriteSenses(senses []storage.SenseEntry) (err error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer h.pool.Put(conn)

	defer sqlitex.Save(conn)(&err)

	for _, s := range senses {
		err = sqlitex.Execute(conn, "INSERT INTO senses (lemma, pos, sense, score) VALUES (?, ?, ?, ?)", &sqlitex.ExecOptions{
			Args: []interface{}{strings.ToLower(s.Lemma), strings.ToLower(s.Pos), s.Sense, s.Score},
		})
		if err != nil {
			return fmt.Errorf("failed to insert sense %s: %w", s.Sense, err)
		}
	}

	return nil
}
