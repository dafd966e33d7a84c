package splitter

import (
	"testing"
)

var benchWords = []string{
	"wasser", "kraft", "werk", "brand", "schutz", "konzept",
	"stahl", "beton", "decke", "haus", "boot", "erhebung", "fehler",
}

func BenchmarkSplitWord_Compound(b *testing.B) {
	lex := newTestLexicon(b, benchWords, 3, "s")
	s := NewSplitter(lex, Config{HideConnectingCharacters: true, Cache: true})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.ClearCache() // Clear cache to measure actual splitting
		s.SplitWord("brandschutzkonzept")
	}
}

func BenchmarkSplitWord_CacheHit(b *testing.B) {
	lex := newTestLexicon(b, benchWords, 3, "s")
	s := NewSplitter(lex, Config{HideConnectingCharacters: true, Cache: true})
	s.SplitWord("brandschutzkonzept") // Prime the cache

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.SplitWord("brandschutzkonzept")
	}
}

func BenchmarkSplitWord_TruncationFallback(b *testing.B) {
	lex := newTestLexicon(b, benchWords, 3, "s")
	s := NewSplitter(lex, Config{HideConnectingCharacters: true})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.SplitWord("xqzhaus")
	}
}

func BenchmarkLexicon_Contains(b *testing.B) {
	lex := newTestLexicon(b, benchWords, 3, "s")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		lex.Contains("brand")
	}
}

func BenchmarkLexicon_StripConnector(b *testing.B) {
	lex := newTestLexicon(b, benchWords, 3, "s", "innen", "-")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		lex.StripConnector("erhebungs")
	}
}
