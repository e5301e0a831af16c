package textanalyzer

import (
	"reflect"
	"testing"
)

type fixedSegmenter [][]string

func (f fixedSegmenter) Segment(string) [][]string { return f }

func TestAnalyzerScenarios(t *testing.T) {
	segmenters := map[string]Segmenter{
		"terminator": newTestSegmenter(),
		"punkt":      loadPunkt(t),
	}

	tests := []struct {
		name  string
		input string
		want  Stats
	}{
		{
			name:  "cat and dog",
			input: "The cat sat. The dog ran fast!",
			want: Stats{
				AverageWordLength: 24.0 / 9.0,
				UniqueWordFrac:    8.0 / 9.0,
				Syllables:         7,
				Words:             7,
				Sentences:         2,
				FleschReadingEase: FleschReadingEase(2, 7, 7),
			},
		},
		{
			name:  "wh adverbs",
			input: "Why and how, but when?",
			want: Stats{
				ConjunctionUsage:  2,
				WHAdverbUsage:     3,
				AverageWordLength: 18.0 / 7.0,
				UniqueWordFrac:    1,
				Syllables:         5,
				Words:             5,
				Sentences:         1,
				FleschReadingEase: FleschReadingEase(1, 5, 5),
			},
		},
		{
			name:  "empty",
			input: "",
			want:  Stats{},
		},
		{
			name:  "accented and unknown words",
			input: "Zoë saïd blorp.",
			want: Stats{
				TellSayUsage:      1,
				AverageWordLength: 13.0 / 4.0,
				UniqueWordFrac:    1,
				Syllables:         3,
				Words:             3,
				Sentences:         1,
				FleschReadingEase: FleschReadingEase(1, 3, 3),
			},
		},
	}

	for segName, seg := range segmenters {
		a := NewAnalyzer(seg, testLexicon())
		for _, tt := range tests {
			t.Run(segName+"/"+tt.name, func(t *testing.T) {
				got := a.Analyze(tt.input)
				if got.TellSayUsage != tt.want.TellSayUsage ||
					got.ConjunctionUsage != tt.want.ConjunctionUsage ||
					got.WHAdverbUsage != tt.want.WHAdverbUsage {
					t.Errorf("usage = %d/%d/%d, want %d/%d/%d",
						got.TellSayUsage, got.ConjunctionUsage, got.WHAdverbUsage,
						tt.want.TellSayUsage, tt.want.ConjunctionUsage, tt.want.WHAdverbUsage)
				}
				if !almostEqual(got.AverageWordLength, tt.want.AverageWordLength) {
					t.Errorf("AverageWordLength = %v, want %v", got.AverageWordLength, tt.want.AverageWordLength)
				}
				if !almostEqual(got.UniqueWordFrac, tt.want.UniqueWordFrac) {
					t.Errorf("UniqueWordFrac = %v, want %v", got.UniqueWordFrac, tt.want.UniqueWordFrac)
				}
				if got.Syllables != tt.want.Syllables || got.Words != tt.want.Words || got.Sentences != tt.want.Sentences {
					t.Errorf("syllables/words/sentences = %d/%d/%d, want %d/%d/%d",
						got.Syllables, got.Words, got.Sentences,
						tt.want.Syllables, tt.want.Words, tt.want.Sentences)
				}
				if !almostEqual(got.FleschReadingEase, tt.want.FleschReadingEase) {
					t.Errorf("FleschReadingEase = %v, want %v", got.FleschReadingEase, tt.want.FleschReadingEase)
				}
				if got.LLMTokens != 0 {
					t.Errorf("LLMTokens = %d without a counter, want 0", got.LLMTokens)
				}
			})
		}
	}
}

func TestAnalyzerTokenize(t *testing.T) {
	a := NewAnalyzer(newTestSegmenter(), nil)
	got := a.Tokenize("  The CAT sat.  ")
	want := [][]string{{"the", "cat", "sat", "."}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize() = %q, want %q", got, want)
	}
}

func TestAnalyzerPassesNormalizedText(t *testing.T) {
	var seen string
	seg := segmenterFunc(func(text string) [][]string {
		seen = text
		return nil
	})
	NewAnalyzer(seg, nil).Analyze("  Ça Va?  ")
	if seen != "ca va?" {
		t.Errorf("segmenter received %q, want %q", seen, "ca va?")
	}
}

type segmenterFunc func(string) [][]string

func (f segmenterFunc) Segment(text string) [][]string { return f(text) }

func TestAnalyzerWithTokenCounter(t *testing.T) {
	a := NewAnalyzer(fixedSegmenter{{"hello", "world"}}, nil, WithTokenCounter(NewTokenCounter()))
	s := a.Analyze("hello world")
	if s.LLMTokens <= 0 {
		t.Errorf("LLMTokens = %d, want > 0", s.LLMTokens)
	}
	if s.Words != 2 {
		t.Errorf("Words = %d, want 2", s.Words)
	}
}
