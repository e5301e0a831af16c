package textanalyzer

import (
	"fmt"
	"strings"

	"github.com/tiktoken-go/tokenizer"
)

// TokenCounter counts LLM tokens in a document.
type TokenCounter struct {
	encoding tokenizer.Encoding
}

// NewTokenCounter creates a counter using the GPT-4 cl100k_base encoding.
func NewTokenCounter() *TokenCounter {
	return &TokenCounter{
		encoding: tokenizer.Cl100kBase,
	}
}

// NewTokenCounterWithEncoding creates a counter with the specified encoding.
func NewTokenCounterWithEncoding(encoding tokenizer.Encoding) *TokenCounter {
	return &TokenCounter{
		encoding: encoding,
	}
}

// Encoding returns the configured encoding name.
func (t *TokenCounter) Encoding() tokenizer.Encoding {
	return t.encoding
}

// Validate reports whether the configured encoding can be loaded.
func (t *TokenCounter) Validate() error {
	if _, err := tokenizer.Get(t.encoding); err != nil {
		return fmt.Errorf("failed to get tokenizer for encoding %s: %w", t.encoding, err)
	}
	return nil
}

// CountTokens returns the number of tokens in content using tiktoken.
func (t *TokenCounter) CountTokens(content string) int {
	if content == "" {
		return 0
	}

	codec, err := tokenizer.Get(t.encoding)
	if err != nil {
		// Fallback to simple estimation if tiktoken fails
		return t.fallbackCount(content)
	}

	n, err := codec.Count(content)
	if err != nil {
		return t.fallbackCount(content)
	}

	return n
}

// fallbackCount counts whitespace-separated words.
func (t *TokenCounter) fallbackCount(content string) int {
	return len(strings.Fields(content))
}
