package textanalyzer

import (
	"strings"
	"unicode"

	"github.com/nnikolov3/text-analyzer/lexicon"
)

// Lexicon is a read-only pronunciation lookup keyed by lowercase word.
// Variants are returned in lexicon order.
type Lexicon interface {
	Lookup(word string) ([]lexicon.Pronunciation, bool)
}

// Outcome identifies which syllable policy applies to a token.
type Outcome int

const (
	// OutcomeFound: the word is in the lexicon.
	OutcomeFound Outcome = iota
	// OutcomePunctuationMiss: not in the lexicon and not purely alphabetic.
	OutcomePunctuationMiss
	// OutcomeWordMiss: not in the lexicon but purely alphabetic.
	OutcomeWordMiss
)

func (o Outcome) String() string {
	switch o {
	case OutcomeFound:
		return "found"
	case OutcomePunctuationMiss:
		return "punctuation-miss"
	case OutcomeWordMiss:
		return "word-miss"
	default:
		return "unknown"
	}
}

// missPolicy holds the syllable estimate for tokens the lexicon does not know.
var missPolicy = map[Outcome]int{
	OutcomePunctuationMiss: 0,
	OutcomeWordMiss:        1,
}

// IsWord reports whether token is non-empty and made only of letters.
func IsWord(token string) bool {
	if token == "" {
		return false
	}
	for _, r := range token {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// Estimator counts syllables using a pronunciation lexicon.
type Estimator struct {
	lex Lexicon
}

// NewEstimator returns an Estimator backed by lex. A nil lexicon behaves as
// an empty one.
func NewEstimator(lex Lexicon) *Estimator {
	return &Estimator{lex: lex}
}

func (e *Estimator) lookup(word string) ([]lexicon.Pronunciation, bool) {
	if e.lex == nil {
		return nil, false
	}
	prons, ok := e.lex.Lookup(strings.ToLower(word))
	return prons, ok && len(prons) > 0
}

// Classify reports which policy Syllables applies to word.
func (e *Estimator) Classify(word string) Outcome {
	if _, ok := e.lookup(word); ok {
		return OutcomeFound
	}
	if !IsWord(word) {
		return OutcomePunctuationMiss
	}
	return OutcomeWordMiss
}

// Syllables returns the syllable count of word. Known words use the first
// listed pronunciation, never the shortest or longest variant.
func (e *Estimator) Syllables(word string) int {
	prons, ok := e.lookup(word)
	if ok {
		return lexicon.StressCount(prons[0])
	}
	return missPolicy[e.Classify(word)]
}
