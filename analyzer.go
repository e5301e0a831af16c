package textanalyzer

import "log/slog"

// Analyzer runs the full pipeline: normalize, segment, measure.
type Analyzer struct {
	segmenter Segmenter
	estimator *Estimator
	counter   *TokenCounter
	log       *slog.Logger
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithTokenCounter makes the analyzer fill Stats.LLMTokens.
func WithTokenCounter(c *TokenCounter) Option {
	return func(a *Analyzer) { a.counter = c }
}

// WithLogger sets the logger used for debug output.
func WithLogger(log *slog.Logger) Option {
	return func(a *Analyzer) { a.log = log }
}

// NewAnalyzer wires a segmenter and a pronunciation lexicon into an Analyzer.
func NewAnalyzer(seg Segmenter, lex Lexicon, opts ...Option) *Analyzer {
	a := &Analyzer{
		segmenter: seg,
		estimator: NewEstimator(lex),
		log:       slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Tokenize normalizes raw text and splits it into sentences of tokens.
func (a *Analyzer) Tokenize(raw string) [][]string {
	return a.segment(Normalize(raw))
}

func (a *Analyzer) segment(doc string) [][]string {
	sentences := a.segmenter.Segment(doc)
	a.log.Debug("document segmented",
		slog.Int("bytes", len(doc)),
		slog.Int("sentences", len(sentences)),
		slog.Int("tokens", TotalTokens(sentences)))
	return sentences
}

// Analyze computes the stats for raw text.
func (a *Analyzer) Analyze(raw string) Stats {
	doc := Normalize(raw)
	sentences := a.segment(doc)
	stats := Analyze(sentences, a.estimator)
	if a.counter != nil {
		stats.LLMTokens = a.counter.CountTokens(doc)
	}
	a.log.Debug("document analyzed",
		slog.Int("sentences", stats.Sentences),
		slog.Int("words", stats.Words),
		slog.Int("syllables", stats.Syllables))
	return stats
}

// Report returns the plain-text report for raw text.
func (a *Analyzer) Report(raw string) string {
	return a.Analyze(raw).Render()
}
