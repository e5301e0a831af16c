package textanalyzer

// Target word sets for the stylistic usage counts.
var (
	TellSayWords     = []string{"told", "said"}
	ConjunctionWords = []string{"but", "and"}
	WHAdverbs        = []string{"when", "where", "why", "how", "whence", "whereby", "whereupon"}
)

// Flesch Reading Ease coefficients.
const (
	fleschBase           = 206.835
	fleschSentenceWeight = 1.015
	fleschSyllableWeight = 84.6
)

// CountWordUsage counts tokens exactly equal to any of targets, summed over
// all sentences.
func CountWordUsage(sentences [][]string, targets []string) int {
	if len(targets) == 0 {
		return 0
	}
	set := make(map[string]struct{}, len(targets))
	for _, t := range targets {
		set[t] = struct{}{}
	}

	count := 0
	for _, sentence := range sentences {
		for _, token := range sentence {
			if _, ok := set[token]; ok {
				count++
			}
		}
	}
	return count
}

// TotalTokens returns the number of tokens across all sentences, punctuation
// included.
func TotalTokens(sentences [][]string) int {
	n := 0
	for _, sentence := range sentences {
		n += len(sentence)
	}
	return n
}

// UniqueWordFraction returns distinct tokens over all tokens, or 0 when there
// are no tokens.
func UniqueWordFraction(sentences [][]string) float64 {
	total := TotalTokens(sentences)
	if total == 0 {
		return 0.0
	}
	seen := make(map[string]struct{}, total)
	for _, sentence := range sentences {
		for _, token := range sentence {
			seen[token] = struct{}{}
		}
	}
	return float64(len(seen)) / float64(total)
}

// AverageWordLength returns the mean token length in bytes, or 0 when there
// are no tokens.
func AverageWordLength(sentences [][]string) float64 {
	total := TotalTokens(sentences)
	if total == 0 {
		return 0
	}
	chars := 0
	for _, sentence := range sentences {
		for _, token := range sentence {
			chars += len(token)
		}
	}
	return float64(chars) / float64(total)
}

// TotalSyllables sums the syllable estimate of every token.
func TotalSyllables(sentences [][]string, est *Estimator) int {
	total := 0
	for _, sentence := range sentences {
		for _, token := range sentence {
			total += est.Syllables(token)
		}
	}
	return total
}

// TotalWords counts purely alphabetic tokens.
func TotalWords(sentences [][]string) int {
	total := 0
	for _, sentence := range sentences {
		for _, token := range sentence {
			if IsWord(token) {
				total++
			}
		}
	}
	return total
}

// TotalSentences returns the number of sentences.
func TotalSentences(sentences [][]string) int {
	return len(sentences)
}

// FleschReadingEase computes the Flesch Reading Ease score. It returns 0 when
// there are no sentences or no words.
func FleschReadingEase(sentences, words, syllables int) float64 {
	if sentences == 0 || words == 0 {
		return 0.0
	}
	return fleschBase -
		fleschSentenceWeight*(float64(words)/float64(sentences)) -
		fleschSyllableWeight*(float64(syllables)/float64(words))
}
