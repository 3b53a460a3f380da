package basic

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/revelaction/segtree/engine"
	"github.com/revelaction/segtree/render"
	sent "github.com/revelaction/segtree/sentence"
	"github.com/revelaction/segtree/storage"
	"github.com/revelaction/segtree/storage/filesystem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testEntries = []storage.Entry{
	{Form: "el", Lemma: "el", Tag: "DA0MS0"},
	{Form: "la", Lemma: "el", Tag: "DA0FS0"},
	{Form: "gato", Lemma: "gato", Tag: "NCMS000"},
	{Form: "perro", Lemma: "perro", Tag: "NCMS000"},
	{Form: "duerme", Lemma: "dormir", Tag: "VMIP3S0"},
	{Form: "casa", Lemma: "casa", Tag: "NCFS000"},
	{Form: "casa", Lemma: "casar", Tag: "VMIP3S0"},
	{Form: "en", Lemma: "en", Tag: "SPS00"},
	{Form: "de", Lemma: "de", Tag: "SPS00"},
	{Form: "a", Lemma: "a", Tag: "SPS00"},
	{Form: "con", Lemma: "con", Tag: "SPS00"},
	{Form: "hola", Lemma: "hola", Tag: "I"},
	{Form: "hablo", Lemma: "hablar", Tag: "VMIP1S0"},
	{Form: "alemán", Lemma: "alemán", Tag: "AQ0MS00"},
	{Form: "a_pesar_de", Lemma: "a_pesar_de", Tag: "SPS00"},
	{Form: "todo", Lemma: "todo", Tag: "PI0MS000"},
}

var testSenses = []storage.SenseEntry{
	{Lemma: "gato", Pos: "n", Sense: "02121620-n", Score: 0.9},
	{Lemma: "dormir", Pos: "v", Sense: "00014742-v", Score: 1},
}

func newTestEngine(t *testing.T, mod func(*engine.Config)) *Engine {
	t.Helper()

	cfg := engine.Config{Lang: "es", Stages: engine.DefaultStages()}
	if mod != nil {
		mod(&cfg)
	}

	e, err := New(cfg, WithDictionary(filesystem.NewMemDictStore(testEntries, testSenses)))
	require.NoError(t, err)
	return e
}

// analyze runs the whole engine over text, splitting with a new session.
func analyze(t *testing.T, e *Engine, text string) []*sent.Sentence {
	t.Helper()

	words, err := e.Tokenize(text)
	require.NoError(t, err)

	ss, err := e.OpenSession()
	require.NoError(t, err)
	defer ss.Close()

	ls, err := ss.Split(words, true)
	require.NoError(t, err)

	require.NoError(t, e.AnalyzeMorphology(ls))
	require.NoError(t, e.Tag(ls))
	require.NoError(t, e.AnnotateSenses(ls))
	require.NoError(t, e.ParseConstituency(ls))
	require.NoError(t, e.ParseDependency(ls))

	return ls
}

func TestEngine_Sentence(t *testing.T) {
	e := newTestEngine(t, nil)
	ls := analyze(t, e, "El gato duerme en la casa del perro.")
	require.Len(t, ls, 1)
	s := ls[0]

	assert.Equal(t, "El gato duerme en la casa de el perro .", s.Text())
	assert.Equal(t, []string{"el", "gato", "dormir", "en", "el", "casa", "de", "el", "perro", "."}, s.Lemmas())

	// the determiner favours the noun reading
	assert.Equal(t, "NCFS000", s.Words[5].Tag)
	assert.Equal(t, "02121620-n:0.9", s.Words[1].SensesString())
	assert.Equal(t, "", s.Words[0].SensesString())

	parse, err := render.ParseTree(s.ParseTree, 0)
	require.NoError(t, err)
	assert.Equal(t, "S_[\n"+
		"  sn_[\n"+
		"    (El el DA0MS0)\n"+
		"    +(gato gato NCMS000)\n"+
		"  ]\n"+
		"  +grup-verb_[\n"+
		"    +(duerme dormir VMIP3S0)\n"+
		"  ]\n"+
		"  sp_[\n"+
		"    +(en en SPS00)\n"+
		"    sn_[\n"+
		"      (la el DA0FS0)\n"+
		"      +(casa casa NCFS000)\n"+
		"    ]\n"+
		"  ]\n"+
		"  sp_[\n"+
		"    +(de de SPS00)\n"+
		"    sn_[\n"+
		"      (el el DA0MS0)\n"+
		"      +(perro perro NCMS000)\n"+
		"    ]\n"+
		"  ]\n"+
		"  F-term_[\n"+
		"    +(. . Fp)\n"+
		"  ]\n"+
		"]\n", parse)

	dep, err := render.DepTree(s.DepTree, 0)
	require.NoError(t, err)
	assert.Equal(t, "top/grup-verb/(duerme dormir VMIP3S0) [\n"+
		"  subj/sn/(gato gato NCMS000) [\n"+
		"    espec/d/(El el DA0MS0)\n"+
		"  ]\n"+
		"  sp-obj/sp/(en en SPS00) [\n"+
		"    sn/sn/(casa casa NCFS000) [\n"+
		"      espec/d/(la el DA0FS0)\n"+
		"    ]\n"+
		"  ]\n"+
		"  sp-obj/sp/(de de SPS00) [\n"+
		"    sn/sn/(perro perro NCMS000) [\n"+
		"      espec/d/(el el DA0MS0)\n"+
		"    ]\n"+
		"  ]\n"+
		"  f/F-term/(. . Fp)\n"+
		"]\n", dep)

	// complements are stored before the subject
	children := s.DepTree.Children
	require.Len(t, children, 4)
	assert.Equal(t, 3, children[0].ChunkOrd)
	assert.Equal(t, 1, children[3].ChunkOrd)
	assert.Equal(t, "subj", children[3].LinkLabel)
}

func TestEngine_OneWordSentence(t *testing.T) {
	e := newTestEngine(t, nil)
	ls := analyze(t, e, "Hola")
	require.Len(t, ls, 1)

	s := ls[0]
	assert.True(t, s.ParseTree.IsLeaf())

	dep, err := render.DepTree(s.DepTree, 0)
	require.NoError(t, err)
	assert.Equal(t, "top//(Hola hola I)\n", dep)
}

func TestEngine_NoVerb(t *testing.T) {
	e := newTestEngine(t, nil)
	ls := analyze(t, e, "la casa del perro")
	require.Len(t, ls, 1)

	s := ls[0]
	assert.Equal(t, "sn", s.DepTree.Label)
	assert.Equal(t, "casa", s.DepTree.Word.Form)
	require.Len(t, s.DepTree.Children, 2)
	assert.Equal(t, "espec", s.DepTree.Children[0].LinkLabel)
	assert.Equal(t, "sp-obj", s.DepTree.Children[1].LinkLabel)
}

func TestParseDependency_NoTree(t *testing.T) {
	e := newTestEngine(t, nil)
	err := e.ParseDependency([]*sent.Sentence{{Words: []sent.Word{{Form: "x"}}}})
	assert.Error(t, err)
}

func TestParseConstituency_EmptySentence(t *testing.T) {
	e := newTestEngine(t, nil)
	assert.Error(t, e.ParseConstituency([]*sent.Sentence{{}}))
}

func TestNew_MissingLanguageData(t *testing.T) {
	cfg := engine.Config{Lang: "es", DataDir: t.TempDir(), Stages: engine.DefaultStages()}
	_, err := New(cfg)
	assert.Error(t, err)
}

func TestNew_MissingLexicon(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "es"), 0755))

	cfg := engine.Config{Lang: "es", DataDir: dir, Stages: engine.DefaultStages()}
	_, err := New(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dictionary not found")
}

func TestNew_TextLexicon(t *testing.T) {
	dir := t.TempDir()
	langDir := filepath.Join(dir, "es")
	require.NoError(t, os.Mkdir(langDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(langDir, "dicc.src"), []byte("hola hola I\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(langDir, "senses.src"), []byte("hola i x-1\n"), 0644))

	cfg := engine.Config{Lang: "es", DataDir: dir, Stages: engine.DefaultStages()}
	e, err := New(cfg)
	require.NoError(t, err)
	defer e.Close()

	ls := analyze(t, e, "Hola")
	require.Len(t, ls, 1)
	assert.Equal(t, "I", ls[0].Words[0].Tag)
}

func TestDictPath(t *testing.T) {
	dir := t.TempDir()
	langDir := filepath.Join(dir, "es")
	require.NoError(t, os.Mkdir(langDir, 0755))

	cfg := engine.Config{Lang: "es", DataDir: dir}
	assert.Equal(t, filepath.Join(langDir, "dicc.src"), DictPath(cfg))

	require.NoError(t, os.WriteFile(filepath.Join(langDir, "dicc.db"), nil, 0644))
	assert.Equal(t, filepath.Join(langDir, "dicc.db"), DictPath(cfg))

	cfg.DictPath = "/tmp/other.src"
	assert.Equal(t, "/tmp/other.src", DictPath(cfg))
}
