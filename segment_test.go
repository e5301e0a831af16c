package textanalyzer

import (
	"context"
	"log/slog"
	"reflect"
	"strings"
	"testing"

	"github.com/neurosnap/sentences"
)

// terminatorSplitter ends a sentence at '.', '!' or '?' followed by a space
// or the end of the text.
type terminatorSplitter struct{}

func (terminatorSplitter) Tokenize(text string) []*sentences.Sentence {
	var out []*sentences.Sentence
	start := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '.', '!', '?':
			if i+1 == len(text) || text[i+1] == ' ' {
				out = append(out, &sentences.Sentence{Start: start, End: i + 1, Text: text[start : i+1]})
				start = i + 1
			}
		}
	}
	if strings.TrimSpace(text[start:]) != "" {
		out = append(out, &sentences.Sentence{Start: start, End: len(text), Text: text[start:]})
	}
	return out
}

func newTestSegmenter() *PunktSegmenter {
	return &PunktSegmenter{sentences: terminatorSplitter{}}
}

func TestWordTokenize(t *testing.T) {
	tests := []struct {
		name     string
		sentence string
		want     []string
	}{
		{"final period", "the cat sat.", []string{"the", "cat", "sat", "."}},
		{"exclamation", "the dog ran fast!", []string{"the", "dog", "ran", "fast", "!"}},
		{"comma and question", "why and how, but when?", []string{"why", "and", "how", ",", "but", "when", "?"}},
		{"negation clitic", "i don't know.", []string{"i", "do", "n't", "know", "."}},
		{"possessive clitic", "it's john's book.", []string{"it", "'s", "john", "'s", "book", "."}},
		{"cannot", "i cannot go", []string{"i", "can", "not", "go"}},
		{"double quotes", `he said "hi" to me.`, []string{"he", "said", "``", "hi", "''", "to", "me", "."}},
		{"quoted sentence", `he said "hi."`, []string{"he", "said", "``", "hi", ".", "''"}},
		{"ellipsis", "well... ok", []string{"well", "...", "ok"}},
		{"parens", "a (b) c", []string{"a", "(", "b", ")", "c"}},
		{"double dash", "one--two", []string{"one", "--", "two"}},
		{"numbers keep separators", "100,000 and 3:30", []string{"100,000", "and", "3:30"}},
		{"leading space", " the end!", []string{"the", "end", "!"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WordTokenize(tt.sentence)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("WordTokenize(%q) = %q, want %q", tt.sentence, got, tt.want)
			}
		})
	}
}

func TestWordTokenizeEmpty(t *testing.T) {
	for _, s := range []string{"", "   "} {
		if got := WordTokenize(s); len(got) != 0 {
			t.Errorf("WordTokenize(%q) = %q, want no tokens", s, got)
		}
	}
}

func TestSegment(t *testing.T) {
	seg := newTestSegmenter()

	tests := []struct {
		name string
		text string
		want [][]string
	}{
		{"empty", "", nil},
		{"whitespace", "   ", nil},
		{
			"two sentences",
			"the cat sat. the dog ran fast!",
			[][]string{
				{"the", "cat", "sat", "."},
				{"the", "dog", "ran", "fast", "!"},
			},
		},
		{"unterminated", "no full stop here", [][]string{{"no", "full", "stop", "here"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := seg.Segment(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Segment(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func loadPunkt(t testing.TB) *PunktSegmenter {
	t.Helper()
	seg, err := LoadSegmenter(context.Background(), 0, slog.New(slog.DiscardHandler))
	if err != nil {
		t.Fatalf("LoadSegmenter() error: %v", err)
	}
	return seg
}

func TestPunktSegmenter(t *testing.T) {
	seg := loadPunkt(t)

	tests := []struct {
		name string
		text string
		want [][]string
	}{
		{"empty", "", nil},
		{"single sentence", "hello world.", [][]string{{"hello", "world", "."}}},
		{
			"two sentences",
			Normalize("The cat sat. The dog ran fast!"),
			[][]string{
				{"the", "cat", "sat", "."},
				{"the", "dog", "ran", "fast", "!"},
			},
		},
		{
			"comma stays inside sentence",
			Normalize("Why and how, but when?"),
			[][]string{{"why", "and", "how", ",", "but", "when", "?"}},
		},
		{
			"abbreviation does not end sentence",
			Normalize("Mr. Smith said hi. He left."),
			[][]string{
				{"mr.", "smith", "said", "hi", "."},
				{"he", "left", "."},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := seg.Segment(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Segment(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestPunktSegmenterPunctuationOnly(t *testing.T) {
	seg := loadPunkt(t)
	for _, text := range []string{"!!!", "?!.,;", "..."} {
		got := seg.Segment(text)
		if TotalWords(got) != 0 {
			t.Errorf("Segment(%q) = %q, want no alphabetic tokens", text, got)
		}
	}
}
