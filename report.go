package textanalyzer

import (
	"fmt"
	"strings"
)

// Stats holds every metric reported for one document. LLMTokens is 0 when
// the analyzer has no token counter.
type Stats struct {
	TellSayUsage      int     `json:"told_said_usage"`
	ConjunctionUsage  int     `json:"but_and_usage"`
	WHAdverbUsage     int     `json:"wh_adverb_usage"`
	AverageWordLength float64 `json:"average_word_length"`
	UniqueWordFrac    float64 `json:"unique_word_fraction"`
	Syllables         int     `json:"syllables"`
	Words             int     `json:"words"`
	Sentences         int     `json:"sentences"`
	FleschReadingEase float64 `json:"flesch_reading_ease"`
	LLMTokens         int     `json:"llm_tokens"`
}

// Analyze computes all metrics for a tokenized document in report order.
func Analyze(sentences [][]string, est *Estimator) Stats {
	var s Stats
	s.TellSayUsage = CountWordUsage(sentences, TellSayWords)
	s.ConjunctionUsage = CountWordUsage(sentences, ConjunctionWords)
	s.WHAdverbUsage = CountWordUsage(sentences, WHAdverbs)
	s.AverageWordLength = AverageWordLength(sentences)
	s.UniqueWordFrac = UniqueWordFraction(sentences)
	s.Syllables = TotalSyllables(sentences, est)
	s.Words = TotalWords(sentences)
	s.Sentences = TotalSentences(sentences)
	s.FleschReadingEase = FleschReadingEase(s.Sentences, s.Words, s.Syllables)
	return s
}

// Render formats the stats as the plain-text report. Every line, including
// the last, ends in a newline.
func (s Stats) Render() string {
	var b strings.Builder
	b.WriteString("Adverb usage:\n")
	fmt.Fprintf(&b, "- 'told'/'said' usage: %d\n", s.TellSayUsage)
	fmt.Fprintf(&b, "- 'but'/'and' usage: %d\n", s.ConjunctionUsage)
	fmt.Fprintf(&b, "- WH-adverb usage: %d\n", s.WHAdverbUsage)
	fmt.Fprintf(&b, "Average word length: %.2f\n", s.AverageWordLength)
	fmt.Fprintf(&b, "Unique word fraction: %.2f\n", s.UniqueWordFrac)
	fmt.Fprintf(&b, "Total number of syllables: %d\n", s.Syllables)
	fmt.Fprintf(&b, "Total number of words: %d\n", s.Words)
	fmt.Fprintf(&b, "Total number of sentences: %d\n", s.Sentences)
	fmt.Fprintf(&b, "Flesch Reading Ease Score: %.2f\n", s.FleschReadingEase)
	return b.String()
}

// BuildReport analyzes sentences and renders the report.
func BuildReport(sentences [][]string, est *Estimator) string {
	return Analyze(sentences, est).Render()
}
