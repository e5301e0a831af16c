package textanalyzer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/dlclark/regexp2"
	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"
)

// Segmenter splits a normalized document into sentences of tokens.
// Empty input yields no sentences.
type Segmenter interface {
	Segment(text string) [][]string
}

// sentenceTokenizer is the subset of the Punkt tokenizer the segmenter uses.
type sentenceTokenizer interface {
	Tokenize(text string) []*sentences.Sentence
}

// PunktSegmenter splits sentences with the English Punkt model and words with
// Treebank-style rules.
type PunktSegmenter struct {
	sentences sentenceTokenizer
}

// NewPunktSegmenter loads the English Punkt model.
func NewPunktSegmenter() (*PunktSegmenter, error) {
	tok, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, fmt.Errorf("load punkt model: %w", err)
	}
	return &PunktSegmenter{sentences: tok}, nil
}

// LoadSegmenter builds the default segmenter, retrying once on failure.
func LoadSegmenter(ctx context.Context, retryDelay time.Duration, log *slog.Logger) (*PunktSegmenter, error) {
	var seg *PunktSegmenter
	attempt := 0
	op := func() error {
		attempt++
		s, err := NewPunktSegmenter()
		if err != nil {
			log.Warn("segmenter init failed", slog.Int("attempt", attempt), slog.Any("error", err))
			return err
		}
		seg = s
		return nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewConstantBackOff(retryDelay), 1), ctx)
	if err := backoff.Retry(op, policy); err != nil {
		return nil, fmt.Errorf("segmenter: %w", err)
	}
	return seg, nil
}

// Segment implements Segmenter.
func (p *PunktSegmenter) Segment(text string) [][]string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var out [][]string
	for _, s := range p.sentences.Tokenize(text) {
		tokens := WordTokenize(s.Text)
		if len(tokens) == 0 {
			continue
		}
		out = append(out, tokens)
	}
	return out
}

type rewriteRule struct {
	re   *regexp2.Regexp
	repl string
}

func rule(pattern, repl string) rewriteRule {
	return rewriteRule{re: regexp2.MustCompile(pattern, regexp2.None), repl: repl}
}

func applyRules(text string, rules []rewriteRule) string {
	for _, r := range rules {
		out, err := r.re.Replace(text, r.repl, -1, -1)
		if err != nil {
			// Only a match timeout can fail here and none is configured.
			continue
		}
		text = out
	}
	return text
}

var startingQuotes = []rewriteRule{
	rule("(`+)", " $1 "),
	rule(`^"`, "``"),
	rule("(``)", " $1 "),
	rule(`([ (\[{<])("|'{2})`, "$1 `` "),
	rule(`(?i)(')(?!re|ve|ll|m|t|s|d|n)(\w)\b`, "$1 $2"),
}

const finalPeriod = `([^.])(\.)([\])}>"']*)\s*$`

// The second pass keeps the period next to any closing brackets or quotes.
var (
	finalPeriodSplit = rule(finalPeriod, "$1 $2 $3 ")
	finalPeriodKeep  = rule(finalPeriod, "$1 $2$3 ")
)

var punctuation = []rewriteRule{
	finalPeriodSplit,
	rule(`([:,])([^\d])`, " $1 $2"),
	rule(`([:,])$`, " $1 "),
	rule(`\.{2,}`, " $0 "),
	rule(`[;@#$%&]`, " $0 "),
	finalPeriodKeep,
	rule(`[?!]`, " $0 "),
	rule(`([^'])' `, "$1 ' "),
	rule(`[*]`, " $0 "),
	rule(`[\][(){}<>]`, " $0 "),
	rule(`--`, " -- "),
}

var endingQuotes = []rewriteRule{
	rule(`''`, " '' "),
	rule(`"`, " '' "),
	rule(`(\S)('')`, "$1 $2 "),
	rule(`([^' ])('[sS]|'[mM]|'[dD]|') `, "$1 $2 "),
	rule(`([^' ])('ll|'LL|'re|'RE|'ve|'VE|n't|N'T) `, "$1 $2 "),
}

var contractions = []rewriteRule{
	rule(`(?i)\b(can)(not)\b`, " $1 $2 "),
	rule(`(?i)\b(d)('ye)\b`, " $1 $2 "),
	rule(`(?i)\b(gim)(me)\b`, " $1 $2 "),
	rule(`(?i)\b(gon)(na)\b`, " $1 $2 "),
	rule(`(?i)\b(got)(ta)\b`, " $1 $2 "),
	rule(`(?i)\b(lem)(me)\b`, " $1 $2 "),
	rule(`(?i)\b(more)('n)\b`, " $1 $2 "),
	rule(`(?i)\b(wan)(na)(?=\s)`, " $1 $2 "),
	rule(`(?i) ('t)(is)\b`, " $1 $2 "),
	rule(`(?i) ('t)(was)\b`, " $1 $2 "),
}

// WordTokenize splits one sentence into word and punctuation tokens using
// Penn Treebank conventions: punctuation stands alone, clitics such as "n't"
// and "'s" are split from their host, double quotes become `` and ''.
func WordTokenize(sentence string) []string {
	text := applyRules(sentence, startingQuotes)
	text = applyRules(text, punctuation)
	text = " " + text + " "
	text = applyRules(text, endingQuotes)
	text = applyRules(text, contractions)
	return strings.Fields(text)
}
