package splitter

// GermanMinWordLength is the minimum part length for German. Anything
// shorter fragments compounds too aggressively.
const GermanMinWordLength = 4

// germanConnectingChars lists the German interfix forms in try order.
var germanConnectingChars = []string{"s", "innen", "-"}

// GermanConnectingCharacters returns the default German
// connecting-character list.
func GermanConnectingCharacters() []string {
	return append([]string(nil), germanConnectingChars...)
}

// NewGermanLexicon loads a plain-text dictionary with the German defaults.
func NewGermanLexicon(txtPath string) (*Lexicon, error) {
	return NewLexicon(txtPath,
		WithMinWordLength(GermanMinWordLength),
		WithConnectingCharacters(germanConnectingChars...),
	)
}

// NewGermanSplitter creates a splitter with the German defaults:
// connecting characters hidden, lenient matching, caching on.
func NewGermanSplitter(txtPath string) (*Splitter, error) {
	lex, err := NewGermanLexicon(txtPath)
	if err != nil {
		return nil, err
	}
	return NewSplitter(lex, Config{
		HideConnectingCharacters: true,
		Cache:                    true,
	}), nil
}
