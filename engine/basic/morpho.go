package basic

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/kljensen/snowball"
	sent "github.com/revelaction/segtree/sentence"
)

const (
	tagNumber     = "Z"
	tagPercentage = "Zp"
	tagDate       = "W"
	tagProperNoun = "NP00000"
	tagOtherPunct = "Fz"
)

var (
	dateRe    = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{2,4})$`)
	percentRe = regexp.MustCompile(`^\d+(?:[.,]\d+)*%$`)
	numberRe  = regexp.MustCompile(`^\d+(?:[.,]\d+)*$`)
)

var punctuationTags = map[string]string{
	".":   "Fp",
	",":   "Fc",
	";":   "Fx",
	":":   "Fd",
	"...": "Fs",
	"¿":   "Fia",
	"?":   "Fit",
	"¡":   "Faa",
	"!":   "Fat",
	"(":   "Fpa",
	")":   "Fpt",
	"[":   "Fca",
	"]":   "Fct",
	"{":   "Fla",
	"}":   "Flt",
	"«":   "Fra",
	"»":   "Frc",
	`"`:   "Fe",
	"'":   "Fe",
	"“":   "Fra",
	"”":   "Frc",
	"-":   "Fg",
	"/":   "Fh",
	"%":   "Ft",
}

// snowball stemmer names by language code
var stemLanguages = map[string]string{
	"es": "spanish",
	"en": "english",
	"fr": "french",
	"ru": "russian",
	"sv": "swedish",
	"no": "norwegian",
	"hu": "hungarian",
}

var contractions = map[string]map[string][]string{
	"es": {
		"del": {"de", "el"},
		"al":  {"a", "el"},
	},
	"ca": {
		"del":  {"de", "el"},
		"al":   {"a", "el"},
		"pel":  {"per", "el"},
		"dels": {"de", "els"},
		"als":  {"a", "els"},
		"pels": {"per", "els"},
	},
	"pt": {
		"do": {"de", "o"},
		"da": {"de", "a"},
		"no": {"em", "o"},
		"na": {"em", "a"},
	},
}

// AnalyzeMorphology fills the candidate analyses of every word, running the
// submodules enabled in the engine configuration.
func (e *Engine) AnalyzeMorphology(ls []*sent.Sentence) error {
	for _, s := range ls {
		if e.cfg.Stages.RetokContractions {
			s.Words = e.splitContractions(s.Words)
		}

		if e.cfg.Stages.MultiwordsDetection {
			s.Words = e.joinMultiwords(s.Words)
		}

		for i := range s.Words {
			if err := e.analyzeWord(&s.Words[i], i); err != nil {
				return fmt.Errorf("word %q: %w", s.Words[i].Form, err)
			}
		}

		s.Reindex()
	}

	return nil
}

func (e *Engine) splitContractions(words []sent.Word) []sent.Word {
	if len(e.contractions) == 0 {
		return words
	}

	out := make([]sent.Word, 0, len(words))
	for _, w := range words {
		parts, ok := e.contractions[strings.ToLower(w.Form)]
		if !ok {
			out = append(out, w)
			continue
		}

		for i, p := range parts {
			if i == 0 && isCapitalized(w.Form) {
				p = capitalize(p)
			}
			out = append(out, sent.Word{Form: p})
		}
	}

	return out
}

// joinMultiwords replaces the longest known multiword starting at each
// position by a single word, its forms joined by "_".
func (e *Engine) joinMultiwords(words []sent.Word) []sent.Word {
	if len(e.multiwords) == 0 {
		return words
	}

	out := make([]sent.Word, 0, len(words))
	for i := 0; i < len(words); {
		n := e.multiwordAt(words[i:])
		if n < 2 {
			out = append(out, words[i])
			i++
			continue
		}

		forms := make([]string, 0, n)
		for _, w := range words[i : i+n] {
			forms = append(forms, w.Form)
		}

		out = append(out, sent.Word{Form: strings.Join(forms, "_")})
		i += n
	}

	return out
}

// multiwordAt returns the number of words of the longest multiword at the
// start of words, or 0.
func (e *Engine) multiwordAt(words []sent.Word) int {
	best := 0
	for _, parts := range e.multiwords[strings.ToLower(words[0].Form)] {
		if len(parts) > len(words) || len(parts) <= best {
			continue
		}

		match := true
		for j, p := range parts {
			if strings.ToLower(words[j].Form) != p {
				match = false
				break
			}
		}

		if match {
			best = len(parts)
		}
	}

	return best
}

// analyzeWord fills the analyses of w, the word at position pos of its
// sentence.
func (e *Engine) analyzeWord(w *sent.Word, pos int) error {
	st := e.cfg.Stages
	lower := strings.ToLower(w.Form)
	w.Analyses = nil

	switch {
	case st.PunctuationDetection && isPunctuation(w.Form):
		tag, ok := punctuationTags[w.Form]
		if !ok {
			tag = tagOtherPunct
		}
		w.Analyses = []sent.Analysis{{Lemma: w.Form, Tag: tag}}
	case st.DatesDetection && dateRe.MatchString(w.Form):
		w.Analyses = []sent.Analysis{{Lemma: dateLemma(w.Form), Tag: tagDate}}
	case st.QuantitiesDetection && percentRe.MatchString(w.Form):
		w.Analyses = []sent.Analysis{{Lemma: w.Form, Tag: tagPercentage}}
	case st.NumbersDetection && numberRe.MatchString(w.Form):
		w.Analyses = []sent.Analysis{{Lemma: w.Form, Tag: tagNumber}}
	}

	if len(w.Analyses) == 0 && st.DictionarySearch {
		as, err := e.dict.Lookup(lower)
		if err != nil {
			return err
		}
		w.Analyses = as
	}

	if len(w.Analyses) == 0 && st.CompoundAnalysis && strings.Contains(lower, "-") {
		as, err := e.compound(lower)
		if err != nil {
			return err
		}
		w.Analyses = as
	}

	if len(w.Analyses) == 0 && st.NERecognition && pos > 0 && isCapitalized(w.Form) {
		w.Analyses = []sent.Analysis{{Lemma: lower, Tag: tagProperNoun}}
	}

	if len(w.Analyses) == 0 && st.AffixAnalysis {
		w.Analyses = e.affix(lower)
	}

	if st.ProbabilityAssignment {
		if len(w.Analyses) == 0 {
			w.Analyses = openClassGuesses(lower)
		}
		assignProbabilities(w.Analyses)
	}

	return nil
}

// compound analyses a hyphenated form by its last part.
func (e *Engine) compound(lower string) ([]sent.Analysis, error) {
	i := strings.LastIndex(lower, "-")
	prefix, last := lower[:i+1], lower[i+1:]

	as, err := e.dict.Lookup(last)
	if err != nil {
		return nil, err
	}

	for j := range as {
		as[j].Lemma = prefix + as[j].Lemma
	}

	return as, nil
}

type suffixRule struct {
	suffix string
	tag    string
	lemma  func(lower, stem string) string
}

func same(lower, _ string) string { return lower }

func trim(n int) func(lower, stem string) string {
	return func(lower, _ string) string { return lower[:len(lower)-n] }
}

func stemPlus(end string) func(lower, stem string) string {
	return func(_, stem string) string { return stem + end }
}

// Spanish suffix rules, longest suffixes first.
var suffixRules = map[string][]suffixRule{
	"es": {
		{"ciones", "NCFP000", trim(2)},
		{"siones", "NCFP000", trim(2)},
		{"mente", "RG", same},
		{"iendo", "VMG0000", stemPlus("er")},
		{"ando", "VMG0000", stemPlus("ar")},
		{"ción", "NCFS000", same},
		{"sión", "NCFS000", same},
		{"ar", "VMN0000", same},
		{"er", "VMN0000", same},
		{"ir", "VMN0000", same},
		{"os", "NCMP000", trim(1)},
		{"as", "NCFP000", trim(1)},
		{"o", "NCMS000", same},
		{"a", "NCFS000", same},
	},
}

// affix guesses the analyses of an unknown word from its ending. Languages
// without suffix rules get a common noun reading of the word stem.
func (e *Engine) affix(lower string) []sent.Analysis {
	if e.stemLang == "" {
		return nil
	}

	stem, err := snowball.Stem(lower, e.stemLang, true)
	if err != nil {
		return nil
	}

	rules, ok := suffixRules[e.cfg.Lang]
	if !ok {
		return []sent.Analysis{{Lemma: stem, Tag: "NC00000"}}
	}

	for _, r := range rules {
		if strings.HasSuffix(lower, r.suffix) && len(lower) > len(r.suffix)+1 {
			return []sent.Analysis{{Lemma: r.lemma(lower, stem), Tag: r.tag}}
		}
	}

	return nil
}

// openClassGuesses returns the readings given to words no other submodule
// could analyse.
func openClassGuesses(lower string) []sent.Analysis {
	return []sent.Analysis{
		{Lemma: lower, Tag: "NCMS000", Prob: 0.5},
		{Lemma: lower, Tag: "AQ0CS00", Prob: 0.3},
		{Lemma: lower, Tag: "VMIP3S0", Prob: 0.2},
	}
}

// assignProbabilities normalizes the probabilities of as, uniform if none is
// set, and sorts as by descending probability.
func assignProbabilities(as []sent.Analysis) {
	if len(as) == 0 {
		return
	}

	var sum float64
	for _, a := range as {
		sum += a.Prob
	}

	for i := range as {
		if sum == 0 {
			as[i].Prob = 1 / float64(len(as))
		} else {
			as[i].Prob /= sum
		}
	}

	slices.SortStableFunc(as, func(a, b sent.Analysis) int {
		switch {
		case a.Prob > b.Prob:
			return -1
		case a.Prob < b.Prob:
			return 1
		}
		return 0
	})
}

// dateLemma normalizes d/m/y dates to [??:dd/mm/yyyy:??.??:??].
func dateLemma(form string) string {
	m := dateRe.FindStringSubmatch(form)
	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	return fmt.Sprintf("[??:%02d/%02d/%s:??.??:??]", day, month, m[3])
}

func isPunctuation(form string) bool {
	for _, r := range form {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			return false
		}
	}
	return form != ""
}

func isCapitalized(form string) bool {
	r, _ := utf8.DecodeRuneInString(form)
	return unicode.IsUpper(r)
}

func capitalize(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[n:]
}
