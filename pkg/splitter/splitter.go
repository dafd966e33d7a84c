package splitter

import (
	"strings"
	"unicode/utf8"

	lru "github.com/hashicorp/golang-lru/v2"
)

// CacheSize is the maximum number of entries in the split result cache.
// At ~100 bytes per entry, 100k entries uses approximately 10MB of memory.
const CacheSize = 100_000

// Config fixes the splitting policy for the lifetime of a Splitter.
type Config struct {
	// HideConnectingCharacters strips a matched connecting-character
	// suffix from emitted parts.
	HideConnectingCharacters bool
	// StrictMode only accepts splits where every part is a dictionary
	// word; the truncation fallbacks are disabled.
	StrictMode bool
	// Cache memoizes SplitWord results in an LRU cache.
	Cache bool
}

// Splitter decomposes a single compound word into its smallest dictionary
// parts, e.g. "erhebungsfehler" into "erhebung" and "fehler". It expects
// one word with no punctuation or whitespace inside.
//
// The lexicon is read-only after construction, so a Splitter is safe for
// concurrent use.
type Splitter struct {
	lex   *Lexicon
	cfg   Config
	cache *lru.Cache[string, []string]
}

// NewSplitter creates a splitter over the given lexicon.
func NewSplitter(lex *Lexicon, cfg Config) *Splitter {
	s := &Splitter{lex: lex, cfg: cfg}
	if cfg.Cache {
		s.cache, _ = lru.New[string, []string](CacheSize)
	}
	return s
}

// SplitWord splits a compound word into its parts, ordered left to right.
// If the word cannot be split (because it is unknown or not a compound),
// a single part holding the input itself is returned. The empty string
// yields no parts.
//
// Parts are emitted lowercase; joining them, with any hidden connecting
// characters re-inserted, reconstructs the lowercased input.
func (s *Splitter) SplitWord(str string) []string {
	if str == "" {
		return nil
	}
	trimmed := strings.TrimSpace(str)
	if utf8.RuneCountInString(trimmed) < 2 {
		return []string{trimmed}
	}

	if s.cache != nil {
		if parts, ok := s.cache.Get(str); ok {
			return parts
		}
	}

	parts := s.split(strings.ToLower(trimmed), str)

	if s.cache != nil {
		s.cache.Add(str, parts)
	}
	return parts
}

// split runs the boundary search and, in lenient mode, the two truncation
// fallbacks. When everything fails the original input is returned as a
// single part.
func (s *Splitter) split(word, original string) []string {
	parts, ok := s.findTupel(word)
	if !ok && !s.cfg.StrictMode {
		parts, ok = s.truncateSplit(word)
	}
	if !ok && !s.cfg.StrictMode {
		parts, ok = s.truncateSplitReverse(word)
	}
	if !ok {
		return []string{original}
	}
	return parts
}

// findTupel searches for a left-to-right partition of word into two or
// more dictionary words. The prefix grows one rune at a time; the first
// prefix whose remainder also splits wins. A remainder that cannot be
// split abandons the prefix and the search resumes at the next length.
// ok=false means no split was found, distinct from an empty result.
func (s *Splitter) findTupel(word string) ([]string, bool) {
	runes := []rune(word)
	if len(runes) < 2 {
		return nil, false
	}

	for i := 1; i <= len(runes); i++ {
		left := string(runes[:i])
		right := string(runes[i:])
		leftCleaned := s.lex.StripConnector(left)

		var part string
		switch {
		case s.lex.IsWord(leftCleaned):
			if s.cfg.HideConnectingCharacters {
				part = leftCleaned
			} else {
				part = left
			}
		case s.lex.IsWord(left):
			part = left
		default:
			continue
		}

		rest, ok := s.findTupel(right)
		if !ok {
			// The remainder does not split, so this prefix was not ok.
			continue
		}
		parts := make([]string, 0, len(rest)+1)
		parts = append(parts, part)
		parts = append(parts, rest...)
		return parts, true
	}

	// No prefix led to a full split; the whole string may still qualify
	// as a single word, possibly after stripping a connector.
	wholeIsWord := s.lex.IsWord(word)
	cleaned := s.lex.StripConnector(word)
	if !wholeIsWord && !s.lex.IsWord(cleaned) {
		return nil, false
	}
	if s.cfg.HideConnectingCharacters && !wholeIsWord {
		return []string{cleaned}, true
	}
	return []string{word}, true
}

// truncateSplit cuts an unsplittable prefix off the beginning: the first
// cut position whose suffix splits wins, and the cut-off fragment becomes
// the leading part.
func (s *Splitter) truncateSplit(word string) ([]string, bool) {
	runes := []rune(word)
	for i := 0; i < len(runes)-2; i++ {
		tail, ok := s.findTupel(string(runes[i:]))
		if !ok {
			continue
		}
		head := string(runes[:i])
		if s.cfg.StrictMode && !s.lex.IsWord(head) {
			continue
		}
		parts := make([]string, 0, len(tail)+1)
		parts = append(parts, head)
		parts = append(parts, tail...)
		return parts, true
	}
	return nil, false
}

// truncateSplitReverse cuts an unsplittable fragment off the end, walking
// the cut position right to left; the fragment becomes the final part.
func (s *Splitter) truncateSplitReverse(word string) ([]string, bool) {
	runes := []rune(word)
	for i := len(runes) - 1; i > 1; i-- {
		head, ok := s.findTupel(string(runes[:i]))
		if !ok {
			continue
		}
		tail := string(runes[i:])
		if s.cfg.StrictMode && !s.lex.IsWord(tail) {
			continue
		}
		parts := make([]string, 0, len(head)+1)
		parts = append(parts, head...)
		parts = append(parts, tail)
		return parts, true
	}
	return nil, false
}

// Lexicon returns the lexicon the splitter was built over.
func (s *Splitter) Lexicon() *Lexicon {
	return s.lex
}

// Close releases lexicon resources (call when done with the splitter).
func (s *Splitter) Close() error {
	return s.lex.Close()
}

// ClearCache clears the memoization cache.
func (s *Splitter) ClearCache() {
	if s.cache != nil {
		s.cache.Purge()
	}
}

// CacheSize returns the number of cached entries (0 if cache is disabled).
func (s *Splitter) CacheSize() int {
	if s.cache == nil {
		return 0
	}
	return s.cache.Len()
}

// CacheEnabled returns true if caching is enabled.
func (s *Splitter) CacheEnabled() bool {
	return s.cache != nil
}
