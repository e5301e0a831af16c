// Package lexicon loads the CMU Pronouncing Dictionary and answers
// word-to-pronunciation lookups.
package lexicon

// Pronunciation is one ARPAbet transcription, e.g. ["K", "AE1", "T"].
// Vowel phonemes carry a trailing stress digit (0, 1 or 2).
type Pronunciation []string

// Dictionary maps lowercase words to their pronunciations in file order.
// It is read-only once loaded.
type Dictionary struct {
	entries map[string][]Pronunciation
}

// NewDictionary creates an empty dictionary.
func NewDictionary() *Dictionary {
	return &Dictionary{entries: make(map[string][]Pronunciation)}
}

// Add appends a pronunciation variant for word.
func (d *Dictionary) Add(word string, p Pronunciation) {
	d.entries[word] = append(d.entries[word], p)
}

// Lookup returns all pronunciation variants for word, primary first.
func (d *Dictionary) Lookup(word string) ([]Pronunciation, bool) {
	prons, ok := d.entries[word]
	return prons, ok
}

// Len returns the number of distinct words.
func (d *Dictionary) Len() int {
	return len(d.entries)
}

// StressCount returns the number of phonemes carrying a stress digit, which
// is the syllable count of the transcription.
func StressCount(p Pronunciation) int {
	n := 0
	for _, ph := range p {
		if ph == "" {
			continue
		}
		last := ph[len(ph)-1]
		if last >= '0' && last <= '9' {
			n++
		}
	}
	return n
}
