package splitter

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/blevesearch/vellum"
	"github.com/charmbracelet/log"
	"golang.org/x/text/unicode/norm"
)

// DefaultMinWordLength is the minimum word length used when no option
// overrides it. Short fragments are ignored to avoid over-fragmentation.
const DefaultMinWordLength = 4

// Lexicon supplies the three facts the splitter consumes: the word set,
// the minimum acceptable word length, and the ordered list of connecting
// characters. Words live in an FST for lookups, with a plain map as the
// source of truth for modifications.
type Lexicon struct {
	fst             *vellum.FST
	words           map[string]struct{} // Source of truth for modifications
	minWordLength   int
	connectingChars []string
	fstPath         string
	txtPath         string
	mu              sync.RWMutex
}

// LexiconOption configures a Lexicon at construction time.
type LexiconOption func(*Lexicon)

// WithMinWordLength sets the minimum length below which a string never
// counts as a word, regardless of set membership.
func WithMinWordLength(n int) LexiconOption {
	return func(l *Lexicon) { l.minWordLength = n }
}

// WithConnectingCharacters sets the connecting-character list. Order
// matters: when several suffixes could match, the first declared wins.
func WithConnectingCharacters(chars ...string) LexiconOption {
	return func(l *Lexicon) { l.connectingChars = append([]string(nil), chars...) }
}

// NewLexicon loads a plain-text dictionary (one word per line, '#' starts
// a comment) into an FST. An existing sibling .fst file is reused,
// otherwise one is built and written next to the text file.
func NewLexicon(txtPath string, opts ...LexiconOption) (*Lexicon, error) {
	fstPath := strings.TrimSuffix(txtPath, ".txt") + ".fst"

	l := &Lexicon{
		words:         make(map[string]struct{}, 35000),
		minWordLength: DefaultMinWordLength,
		fstPath:       fstPath,
		txtPath:       txtPath,
	}
	for _, opt := range opts {
		opt(l)
	}

	if err := l.loadTextFile(); err != nil {
		return nil, err
	}

	if err := l.loadOrBuildFST(); err != nil {
		return nil, err
	}

	log.Debugf("lexicon: loaded %d words from %s", len(l.words), txtPath)
	return l, nil
}

// NewLexiconFromWords builds a fully in-memory Lexicon from a supplied
// word set. Nothing is written to disk; mutations rebuild the FST in
// memory.
func NewLexiconFromWords(words []string, opts ...LexiconOption) (*Lexicon, error) {
	l := &Lexicon{
		words:         make(map[string]struct{}, len(words)),
		minWordLength: DefaultMinWordLength,
	}
	for _, opt := range opts {
		opt(l)
	}

	for _, word := range words {
		if w := normalizeWord(word); w != "" {
			l.words[w] = struct{}{}
		}
	}

	if err := l.rebuildFST(); err != nil {
		return nil, err
	}
	return l, nil
}

// normalizeWord is applied to every word on ingest and lookup: trim,
// Unicode NFC, lowercase. NFC keeps precomposed and decomposed umlauts
// from comparing unequal.
func normalizeWord(s string) string {
	return strings.ToLower(norm.NFC.String(strings.TrimSpace(s)))
}

// loadTextFile reads words from the source text file.
func (l *Lexicon) loadTextFile() error {
	file, err := os.Open(l.txtPath)
	if err != nil {
		return fmt.Errorf("open lexicon: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		l.words[normalizeWord(line)] = struct{}{}
	}
	return scanner.Err()
}

// loadOrBuildFST loads an existing FST or builds a new one.
func (l *Lexicon) loadOrBuildFST() error {
	if fst, err := vellum.Open(l.fstPath); err == nil {
		l.fst = fst
		return nil
	}

	log.Debugf("lexicon: building FST at %s", l.fstPath)
	return l.rebuildFST()
}

// IsWord reports whether s, after trimming, is long enough and a member
// of the word set. The empty string is never a word.
func (l *Lexicon) IsWord(s string) bool {
	if s == "" {
		return false
	}
	trimmed := strings.TrimSpace(s)
	if utf8.RuneCountInString(trimmed) < l.minWordLength {
		return false
	}
	return l.Contains(trimmed)
}

// Contains checks set membership (case-insensitive, NFC-normalized).
func (l *Lexicon) Contains(word string) bool {
	key := normalizeWord(word)

	l.mu.RLock()
	defer l.mu.RUnlock()

	_, exists, _ := l.fst.Get([]byte(key))
	return exists
}

// StripConnector returns s with the first matching connecting-character
// suffix removed (case-insensitive), or s unchanged if none matches.
// Only one suffix is ever stripped; ties go to declaration order, not to
// the longest match.
func (l *Lexicon) StripConnector(s string) string {
	runes := []rune(s)
	for _, cc := range l.connectingChars {
		n := utf8.RuneCountInString(cc)
		if len(runes) < n {
			continue
		}
		if strings.EqualFold(string(runes[len(runes)-n:]), cc) {
			return string(runes[:len(runes)-n])
		}
	}
	return s
}

// MinWordLength returns the minimum acceptable word length.
func (l *Lexicon) MinWordLength() int {
	return l.minWordLength
}

// ConnectingCharacters returns a copy of the connecting-character list in
// declaration order.
func (l *Lexicon) ConnectingCharacters() []string {
	return append([]string(nil), l.connectingChars...)
}

// AddWord adds a word and rebuilds the FST.
func (l *Lexicon) AddWord(word string) error {
	key := normalizeWord(word)
	if key == "" {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.words[key] = struct{}{}
	return l.rebuildFSTLocked()
}

// RemoveWord removes a word and rebuilds the FST.
func (l *Lexicon) RemoveWord(word string) error {
	key := normalizeWord(word)

	l.mu.Lock()
	defer l.mu.Unlock()

	delete(l.words, key)
	return l.rebuildFSTLocked()
}

// Rebuild rebuilds the FST from the current word set and, for file-backed
// lexicons, persists both the FST and the text file.
func (l *Lexicon) Rebuild() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rebuildFSTLocked()
}

// rebuildFST is the unguarded variant used during construction, before
// the Lexicon is shared.
func (l *Lexicon) rebuildFST() error {
	return l.rebuildFSTLocked()
}

// rebuildFSTLocked rebuilds without locking (caller must hold the lock).
func (l *Lexicon) rebuildFSTLocked() error {
	if l.fst != nil {
		l.fst.Close()
		l.fst = nil
	}

	sortedWords := make([]string, 0, len(l.words))
	for word := range l.words {
		sortedWords = append(sortedWords, word)
	}
	sort.Strings(sortedWords)

	if l.fstPath == "" {
		var buf bytes.Buffer
		if err := buildFST(&buf, sortedWords); err != nil {
			return err
		}
		fst, err := vellum.Load(buf.Bytes())
		if err != nil {
			return err
		}
		l.fst = fst
		return nil
	}

	fstFile, err := os.Create(l.fstPath)
	if err != nil {
		return fmt.Errorf("create fst: %w", err)
	}
	if err := buildFST(fstFile, sortedWords); err != nil {
		fstFile.Close()
		return err
	}
	fstFile.Close()

	fst, err := vellum.Open(l.fstPath)
	if err != nil {
		return err
	}
	l.fst = fst

	return l.saveTextFile(sortedWords)
}

// buildFST writes an FST over the sorted word list to w.
func buildFST(w io.Writer, sortedWords []string) error {
	builder, err := vellum.New(w, nil)
	if err != nil {
		return err
	}

	for _, word := range sortedWords {
		if err := builder.Insert([]byte(word), 0); err != nil {
			builder.Close()
			return err
		}
	}

	return builder.Close()
}

// saveTextFile writes the current word set back to the text file.
func (l *Lexicon) saveTextFile(sortedWords []string) error {
	file, err := os.Create(l.txtPath)
	if err != nil {
		return fmt.Errorf("save lexicon: %w", err)
	}
	defer file.Close()

	for _, word := range sortedWords {
		if _, err := file.WriteString(word + "\n"); err != nil {
			return err
		}
	}
	return nil
}

// WordCount returns the number of words in the lexicon.
func (l *Lexicon) WordCount() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.words)
}

// Close releases FST resources.
func (l *Lexicon) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.fst != nil {
		err := l.fst.Close()
		l.fst = nil
		return err
	}
	return nil
}
