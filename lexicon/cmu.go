package lexicon

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// errSkipLine signals that a line carries no entry (comment, blank, malformed).
var errSkipLine = errors.New("skip line")

// ErrEmptyLexicon is returned when a source parses to zero entries.
var ErrEmptyLexicon = errors.New("lexicon: no entries parsed")

// Stats holds parser statistics for logging.
type Stats struct {
	TotalLines   int
	CommentLines int
	ParsedLines  int
	UniqueWords  int
}

// Parse reads a CMU dict stream. Both the classic release ("WORD  W ER1 D",
// ";;;" comments) and the cmusphinx .dict release ("word(2) w er1 d # note")
// are accepted. Words are lowercased; phonemes are uppercased.
func Parse(r io.Reader) (*Dictionary, Stats, error) {
	d := NewDictionary()
	var stats Stats

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		stats.TotalLines++
		line := scanner.Text()

		word, pron, err := parseLine(line)
		if errors.Is(err, errSkipLine) {
			if isComment(line) {
				stats.CommentLines++
			}
			continue
		}

		stats.ParsedLines++
		d.Add(word, pron)
	}

	if err := scanner.Err(); err != nil {
		return nil, stats, fmt.Errorf("scan cmu dict: %w", err)
	}

	stats.UniqueWords = d.Len()
	if stats.UniqueWords == 0 {
		return nil, stats, ErrEmptyLexicon
	}
	return d, stats, nil
}

func isComment(line string) bool {
	return strings.HasPrefix(line, ";;;") || strings.HasPrefix(line, "#")
}

// parseLine parses a single dictionary line into a word and pronunciation.
func parseLine(line string) (string, Pronunciation, error) {
	if isComment(line) {
		return "", nil, errSkipLine
	}
	if i := strings.Index(line, " #"); i >= 0 {
		line = line[:i]
	}

	fields := strings.Fields(line)
	if len(fields) < 2 {
		return "", nil, errSkipLine
	}

	word := stripVariant(fields[0])
	if word == "" {
		return "", nil, errSkipLine
	}

	pron := make(Pronunciation, len(fields)-1)
	for i, ph := range fields[1:] {
		pron[i] = strings.ToUpper(ph)
	}
	return strings.ToLower(word), pron, nil
}

// stripVariant turns "HOUSE(2)" into "HOUSE". Entries without a well-formed
// numeric suffix are returned unchanged.
func stripVariant(raw string) string {
	open := strings.IndexByte(raw, '(')
	if open <= 0 || !strings.HasSuffix(raw, ")") {
		return raw
	}
	num := raw[open+1 : len(raw)-1]
	if num == "" {
		return raw
	}
	for i := 0; i < len(num); i++ {
		if num[i] < '0' || num[i] > '9' {
			return raw
		}
	}
	return raw[:open]
}
